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

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
)

func validPlan() *platformv1.DeploymentPlan {
	return &platformv1.DeploymentPlan{
		ClusterName: "kafka-platform",
		Environment: platformv1.TierDev,
		Region:      "us-east-1",
		Network: platformv1.NetworkPlan{
			VPCCIDR:           "10.0.0.0/16",
			AvailabilityZones: []string{"us-east-1a", "us-east-1b"},
			NATGatewayCount:   1,
		},
		Kubernetes: platformv1.KubernetesPlan{
			NodeCount:    2,
			InstanceType: "t3.large",
			Version:      "1.30",
		},
		Kafka: platformv1.KafkaPlan{
			BrokerReplicas:     3,
			ControllerReplicas: 3,
			BrokerStorageGB:    100,
			OperatorVersion:    "2.9.0",
		},
		BackupRetentionDays: 7,
	}
}

func TestValidateDeploymentPlan(t *testing.T) {
	testcases := []struct {
		name    string
		mutate  func(plan *platformv1.DeploymentPlan)
		wantErr bool
	}{
		{
			name:   "baseline plan is consistent",
			mutate: func(plan *platformv1.DeploymentPlan) {},
		},
		{
			name: "SASL without a secrets-manager sub-plan",
			mutate: func(plan *platformv1.DeploymentPlan) {
				plan.Kafka.SASLAuthentication = true
			},
			wantErr: true,
		},
		{
			name: "SASL with a secrets-manager sub-plan",
			mutate: func(plan *platformv1.DeploymentPlan) {
				plan.Kafka.SASLAuthentication = true
				plan.SecretsManager = &platformv1.SecretsManagerPlan{RotationDays: 90}
			},
		},
		{
			name: "TLS without a DNS sub-plan",
			mutate: func(plan *platformv1.DeploymentPlan) {
				plan.Kafka.TLS = true
			},
			wantErr: true,
		},
		{
			name: "TLS with an empty domain",
			mutate: func(plan *platformv1.DeploymentPlan) {
				plan.Kafka.TLS = true
				plan.DNS = &platformv1.DNSPlan{}
			},
			wantErr: true,
		},
		{
			name: "cluster-mode cache without replicas per shard",
			mutate: func(plan *platformv1.DeploymentPlan) {
				plan.ElastiCache = &platformv1.ElastiCachePlan{
					NodeType:    "cache.r6g.large",
					Shards:      3,
					ClusterMode: true,
				}
			},
			wantErr: true,
		},
		{
			name: "provisioned EFS without a throughput value",
			mutate: func(plan *platformv1.DeploymentPlan) {
				plan.EFS = &platformv1.EFSPlan{ThroughputMode: platformv1.ThroughputModeProvisioned}
			},
			wantErr: true,
		},
		{
			name: "more NAT gateways than availability zones",
			mutate: func(plan *platformv1.DeploymentPlan) {
				plan.Network.NATGatewayCount = 5
			},
			wantErr: true,
		},
		{
			name: "multi-AZ with a single availability zone",
			mutate: func(plan *platformv1.DeploymentPlan) {
				plan.MultiAZ = true
				plan.Network.AvailabilityZones = []string{"us-east-1a"}
			},
			wantErr: true,
		},
		{
			name: "quorum violation surfaces in the plan pass as well",
			mutate: func(plan *platformv1.DeploymentPlan) {
				plan.Kafka.ControllerReplicas = 4
			},
			wantErr: true,
		},
	}

	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			plan := validPlan()
			tt.mutate(plan)

			errs := ValidateDeploymentPlan(plan)
			if (len(errs) > 0) != tt.wantErr {
				t.Fatalf("expected wantErr=%v, got %v", tt.wantErr, errs)
			}
		})
	}
}
