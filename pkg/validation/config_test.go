/*
Copyright 2024 The Kubermatic Kubernetes Platform contributors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package validation

import (
	"testing"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/features"
)

func validConfig() *platformv1.PlatformConfig {
	return &platformv1.PlatformConfig{
		ClusterName: "kafka-platform",
		Environment: platformv1.TierDev,
	}
}

func TestValidatePlatformConfig(t *testing.T) {
	testcases := []struct {
		name          string
		config        *platformv1.PlatformConfig
		gates         features.FeatureGate
		expectedErrs  int
		expectedField string
		expectedType  field.ErrorType
	}{
		{
			name:   "minimal dev config is valid",
			config: validConfig(),
		},
		{
			name: "unknown environment tier",
			config: &platformv1.PlatformConfig{
				ClusterName: "kafka-platform",
				Environment: "qa",
			},
			expectedErrs:  1,
			expectedField: "environment",
			expectedType:  field.ErrorTypeNotSupported,
		},
		{
			name: "missing cluster name",
			config: &platformv1.PlatformConfig{
				Environment: platformv1.TierDev,
			},
			expectedErrs:  1,
			expectedField: "clusterName",
			expectedType:  field.ErrorTypeRequired,
		},
		{
			name: "cluster name with invalid characters",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.ClusterName = "Kafka_Platform"
				return c
			}(),
			expectedErrs:  1,
			expectedField: "clusterName",
			expectedType:  field.ErrorTypeInvalid,
		},
		{
			name: "malformed VPC CIDR",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.Network.VPCCIDR = "10.0.0.0/33"
				return c
			}(),
			expectedErrs:  1,
			expectedField: "network.vpcCIDR",
			expectedType:  field.ErrorTypeInvalid,
		},
		{
			name: "even broker replica count is a quorum violation",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.Environment = platformv1.TierProd
				c.Kafka.BrokerReplicas = ptr.To[int32](4)
				return c
			}(),
			expectedErrs:  1,
			expectedField: "kafka.brokerReplicas",
			expectedType:  field.ErrorTypeInvalid,
		},
		{
			name: "broker replica count below three is a quorum violation",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.Kafka.BrokerReplicas = ptr.To[int32](1)
				return c
			}(),
			expectedErrs:  1,
			expectedField: "kafka.brokerReplicas",
			expectedType:  field.ErrorTypeInvalid,
		},
		{
			name: "odd controller count of five is fine",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.Kafka.ControllerReplicas = ptr.To[int32](5)
				return c
			}(),
		},
		{
			name: "SASL without secrets manager is a missing dependency",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.Kafka.EnableSASLAuthentication = ptr.To(true)
				return c
			}(),
			expectedErrs:  1,
			expectedField: "enableSecretsManager",
			expectedType:  field.ErrorTypeRequired,
		},
		{
			name: "TLS without DNS is a missing dependency",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.Kafka.EnableTLS = ptr.To(true)
				return c
			}(),
			expectedErrs:  1,
			expectedField: "enableDNS",
			expectedType:  field.ErrorTypeRequired,
		},
		{
			name: "DNS feature without a domain",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.EnableDNS = true
				c.OperatorEmail = "platform@example.com"
				return c
			}(),
			expectedErrs:  1,
			expectedField: "dns.domain",
			expectedType:  field.ErrorTypeRequired,
		},
		{
			name: "DNS feature without a contact email",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.EnableDNS = true
				c.DNS = &platformv1.DNSConfig{Domain: "kafka.example.com"}
				return c
			}(),
			expectedErrs:  1,
			expectedField: "operatorEmail",
			expectedType:  field.ErrorTypeRequired,
		},
		{
			name: "malformed operator email",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.OperatorEmail = "not-an-email"
				return c
			}(),
			expectedErrs:  1,
			expectedField: "operatorEmail",
			expectedType:  field.ErrorTypeInvalid,
		},
		{
			name: "retention outside the allowed set",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.BackupRetentionDays = ptr.To[int32](11)
				return c
			}(),
			expectedErrs:  1,
			expectedField: "backupRetentionDays",
			expectedType:  field.ErrorTypeNotSupported,
		},
		{
			name: "RDS override block without the feature flag",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.RDS = &platformv1.RDSConfig{InstanceClass: ptr.To("db.t3.medium")}
				return c
			}(),
			expectedErrs:  1,
			expectedField: "rds",
			expectedType:  field.ErrorTypeForbidden,
		},
		{
			name: "unsupported RDS engine",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.EnableRDS = true
				c.RDS = &platformv1.RDSConfig{Engine: ptr.To("oracle")}
				return c
			}(),
			expectedErrs:  1,
			expectedField: "rds.engine",
			expectedType:  field.ErrorTypeNotSupported,
		},
		{
			name: "provisioned throughput with bursting mode",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.EnableEFS = true
				c.EFS = &platformv1.EFSConfig{
					ThroughputMode:   ptr.To(platformv1.ThroughputModeBursting),
					ProvisionedMiBps: ptr.To[int32](128),
				}
				return c
			}(),
			expectedErrs:  1,
			expectedField: "efs.provisionedMiBps",
			expectedType:  field.ErrorTypeForbidden,
		},
		{
			name: "unsupported kafka operator version",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.Kafka.OperatorVersion = ptr.To("1.5.0")
				return c
			}(),
			expectedErrs:  1,
			expectedField: "kafka.operatorVersion",
			expectedType:  field.ErrorTypeInvalid,
		},
		{
			name: "single NAT outside dev is allowed without the strict gate",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.Environment = platformv1.TierStaging
				c.Network.SingleNATGateway = ptr.To(true)
				return c
			}(),
		},
		{
			name: "single NAT outside dev is rejected with the strict gate",
			config: func() *platformv1.PlatformConfig {
				c := validConfig()
				c.Environment = platformv1.TierStaging
				c.Network.SingleNATGateway = ptr.To(true)
				return c
			}(),
			gates:         features.FeatureGate{features.StrictNATPolicy: true},
			expectedErrs:  1,
			expectedField: "network.singleNATGateway",
			expectedType:  field.ErrorTypeForbidden,
		},
		{
			name: "all violations are collected in one pass",
			config: &platformv1.PlatformConfig{
				Environment: "qa",
				Network: platformv1.NetworkConfig{
					VPCCIDR: "not-a-cidr",
				},
				Kafka: platformv1.KafkaConfig{
					BrokerReplicas: ptr.To[int32](2),
				},
			},
			expectedErrs: 4, // cluster name, tier, CIDR, quorum
		},
	}

	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidatePlatformConfig(tt.config, tt.gates)

			if len(errs) != tt.expectedErrs {
				t.Fatalf("expected %d errors, got %d: %v", tt.expectedErrs, len(errs), errs)
			}

			if tt.expectedField == "" {
				return
			}

			found := false
			for _, err := range errs {
				if err.Field == tt.expectedField {
					found = true
					if err.Type != tt.expectedType {
						t.Errorf("expected error on %s to be %q, got %q", tt.expectedField, tt.expectedType, err.Type)
					}
				}
			}

			if !found {
				t.Errorf("expected an error on field %s, got %v", tt.expectedField, errs)
			}
		})
	}
}
