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

package defaulting

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"k8s.io/utils/ptr"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
)

func TestDefaultPlatformConfigDoesNotMutateInput(t *testing.T) {
	config := &platformv1.PlatformConfig{
		ClusterName: "kafka-platform",
		Environment: platformv1.TierDev,
	}
	original := config.DeepCopy()

	if _, err := DefaultPlatformConfig(config, builtinTierDefaults[platformv1.TierDev], zap.NewNop().Sugar()); err != nil {
		t.Fatalf("defaulting failed: %v", err)
	}

	if diff := cmp.Diff(original, config); diff != "" {
		t.Fatalf("input config was mutated:\n%s", diff)
	}
}

func TestDefaultPlatformConfigFillsAllTunables(t *testing.T) {
	config := &platformv1.PlatformConfig{
		ClusterName: "kafka-platform",
		Environment: platformv1.TierStaging,
	}

	defaulted, err := DefaultPlatformConfig(config, builtinTierDefaults[platformv1.TierStaging], zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("defaulting failed: %v", err)
	}

	if defaulted.Region != DefaultRegion {
		t.Errorf("expected region default, got %q", defaulted.Region)
	}
	if defaulted.Network.VPCCIDR != DefaultVPCCIDR {
		t.Errorf("expected VPC CIDR default, got %q", defaulted.Network.VPCCIDR)
	}
	if got := len(defaulted.Network.AvailabilityZones); got != 3 {
		t.Errorf("expected 3 derived availability zones for staging, got %d", got)
	}
	if defaulted.Network.AvailabilityZones[0] != "us-east-1a" {
		t.Errorf("expected zones derived from the region, got %v", defaulted.Network.AvailabilityZones)
	}

	for name, p := range map[string]any{
		"network.singleNATGateway": defaulted.Network.SingleNATGateway,
		"kubernetes.nodeCount":     defaulted.Kubernetes.NodeCount,
		"kubernetes.instanceType":  defaulted.Kubernetes.InstanceType,
		"kubernetes.version":       defaulted.Kubernetes.Version,
		"kafka.brokerReplicas":     defaulted.Kafka.BrokerReplicas,
		"kafka.controllerReplicas": defaulted.Kafka.ControllerReplicas,
		"kafka.brokerStorageGB":    defaulted.Kafka.BrokerStorageGB,
		"kafka.operatorVersion":    defaulted.Kafka.OperatorVersion,
		"kafka.enableSASL":         defaulted.Kafka.EnableSASLAuthentication,
		"kafka.enableTLS":          defaulted.Kafka.EnableTLS,
		"multiAZ":                  defaulted.MultiAZ,
		"deletionProtection":       defaulted.DeletionProtection,
		"backupRetentionDays":      defaulted.BackupRetentionDays,
		"encryptionAtRest":         defaulted.EncryptionAtRest,
	} {
		if isNil(p) {
			t.Errorf("tunable %s was not defaulted", name)
		}
	}
}

func isNil(p any) bool {
	switch v := p.(type) {
	case *bool:
		return v == nil
	case *int32:
		return v == nil
	case *string:
		return v == nil
	default:
		return p == nil
	}
}

func TestDefaultPlatformConfigOverridePrecedence(t *testing.T) {
	config := &platformv1.PlatformConfig{
		ClusterName: "kafka-platform",
		Environment: platformv1.TierProd,
		Kubernetes: platformv1.KubernetesConfig{
			NodeCount: ptr.To[int32](12),
		},
		Kafka: platformv1.KafkaConfig{
			BrokerStorageGB: ptr.To[int32](2000),
		},
	}

	defaulted, err := DefaultPlatformConfig(config, builtinTierDefaults[platformv1.TierProd], zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("defaulting failed: %v", err)
	}

	if *defaulted.Kubernetes.NodeCount != 12 {
		t.Errorf("explicit node count must win over the tier default, got %d", *defaulted.Kubernetes.NodeCount)
	}
	if *defaulted.Kafka.BrokerStorageGB != 2000 {
		t.Errorf("explicit storage must win over the tier default, got %d", *defaulted.Kafka.BrokerStorageGB)
	}

	// overriding one field must not reset any other field
	if *defaulted.Kubernetes.InstanceType != builtinTierDefaults[platformv1.TierProd].InstanceType {
		t.Errorf("unrelated fields must keep the tier default, got %q", *defaulted.Kubernetes.InstanceType)
	}
	if *defaulted.Kafka.BrokerReplicas != builtinTierDefaults[platformv1.TierProd].BrokerReplicas {
		t.Errorf("unrelated fields must keep the tier default, got %d", *defaulted.Kafka.BrokerReplicas)
	}
}

func TestDefaultPlatformConfigFeatureBlocks(t *testing.T) {
	config := &platformv1.PlatformConfig{
		ClusterName: "kafka-platform",
		Environment: platformv1.TierProd,
		EnableRDS:   true,
		RDS: &platformv1.RDSConfig{
			AllocatedStorageGB: ptr.To[int32](500),
		},
	}

	defaulted, err := DefaultPlatformConfig(config, builtinTierDefaults[platformv1.TierProd], zap.NewNop().Sugar())
	if err != nil {
		t.Fatalf("defaulting failed: %v", err)
	}

	if *defaulted.RDS.AllocatedStorageGB != 500 {
		t.Errorf("explicit RDS storage must win, got %d", *defaulted.RDS.AllocatedStorageGB)
	}
	if *defaulted.RDS.InstanceClass != builtinTierDefaults[platformv1.TierProd].RDS.InstanceClass {
		t.Errorf("RDS instance class must come from the tier default, got %q", *defaulted.RDS.InstanceClass)
	}
	if !*defaulted.RDS.MultiAZ {
		t.Error("prod RDS must inherit the resolved multi-AZ policy")
	}

	// disabled features must stay absent, not become zero-valued
	if defaulted.ElastiCache != nil || defaulted.EFS != nil || defaulted.LoadBalancer != nil || defaulted.SecretsManager != nil {
		t.Error("disabled feature blocks must not be created by defaulting")
	}
}
