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
	"fmt"
	"os"

	"dario.cat/mergo"
	"sigs.k8s.io/yaml"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
)

// All Default* constants live here. Values that differ between tiers are
// kept in the tier table below instead.

const (
	DefaultRegion               = "us-east-1"
	DefaultVPCCIDR              = "10.0.0.0/16"
	DefaultKubernetesVersion    = "1.30"
	DefaultKafkaOperatorVersion = "2.9.0"
	DefaultRDSEngine            = "postgres"
	DefaultLBIdleTimeoutSeconds = 60

	// DefaultProdLBIdleTimeoutSeconds keeps long-lived consumer connections
	// alive behind the production load balancer.
	DefaultProdLBIdleTimeoutSeconds = 3600
)

// TierDefaults is the complete baseline configuration for one environment
// tier. The table is immutable after process start; resolution reads it,
// never writes it.
type TierDefaults struct {
	Region  string `json:"region"`
	VPCCIDR string `json:"vpcCIDR"`

	// AvailabilityZoneCount is the number of zones derived from the region
	// when the user does not name zones explicitly.
	AvailabilityZoneCount int32 `json:"availabilityZoneCount"`
	SingleNATGateway      bool  `json:"singleNATGateway"`

	NodeCount         int32  `json:"nodeCount"`
	InstanceType      string `json:"instanceType"`
	KubernetesVersion string `json:"kubernetesVersion"`

	BrokerReplicas       int32  `json:"brokerReplicas"`
	ControllerReplicas   int32  `json:"controllerReplicas"`
	BrokerStorageGB      int32  `json:"brokerStorageGB"`
	KafkaOperatorVersion string `json:"kafkaOperatorVersion"`

	MultiAZ             bool  `json:"multiAZ"`
	DeletionProtection  bool  `json:"deletionProtection"`
	EncryptionAtRest    bool  `json:"encryptionAtRest"`
	BackupRetentionDays int32 `json:"backupRetentionDays"`

	RDS            RDSDefaults            `json:"rds"`
	ElastiCache    ElastiCacheDefaults    `json:"elastiCache"`
	EFS            EFSDefaults            `json:"efs"`
	LoadBalancer   LoadBalancerDefaults   `json:"loadBalancer"`
	SecretsManager SecretsManagerDefaults `json:"secretsManager"`
}

type RDSDefaults struct {
	Engine             string `json:"engine"`
	InstanceClass      string `json:"instanceClass"`
	AllocatedStorageGB int32  `json:"allocatedStorageGB"`
}

type ElastiCacheDefaults struct {
	NodeType         string `json:"nodeType"`
	Shards           int32  `json:"shards"`
	ReplicasPerShard int32  `json:"replicasPerShard"`
	ClusterMode      bool   `json:"clusterMode"`
}

type EFSDefaults struct {
	ThroughputMode   string `json:"throughputMode"`
	ProvisionedMiBps int32  `json:"provisionedMiBps"`
}

type LoadBalancerDefaults struct {
	Scheme             string `json:"scheme"`
	IdleTimeoutSeconds int32  `json:"idleTimeoutSeconds"`
}

type SecretsManagerDefaults struct {
	RotationDays int32  `json:"rotationDays"`
	KMSKeyAlias  string `json:"kmsKeyAlias"`
}

// builtinTierDefaults holds the baked-in tier policy. Durability-related
// values (retention, replica counts, storage) must never decrease from
// dev to staging to prod; TestTierEscalationMonotonicity enforces this.
var builtinTierDefaults = map[platformv1.Tier]TierDefaults{
	platformv1.TierDev: {
		Region:                DefaultRegion,
		VPCCIDR:               DefaultVPCCIDR,
		AvailabilityZoneCount: 2,
		SingleNATGateway:      true,
		NodeCount:             2,
		InstanceType:          "t3.large",
		KubernetesVersion:     DefaultKubernetesVersion,
		BrokerReplicas:        3,
		ControllerReplicas:    3,
		BrokerStorageGB:       100,
		KafkaOperatorVersion:  DefaultKafkaOperatorVersion,
		MultiAZ:               false,
		DeletionProtection:    false,
		EncryptionAtRest:      false,
		BackupRetentionDays:   7,
		RDS: RDSDefaults{
			Engine:             DefaultRDSEngine,
			InstanceClass:      "db.t3.medium",
			AllocatedStorageGB: 20,
		},
		ElastiCache: ElastiCacheDefaults{
			NodeType:         "cache.t3.micro",
			Shards:           1,
			ReplicasPerShard: 0,
			ClusterMode:      false,
		},
		EFS: EFSDefaults{
			ThroughputMode: platformv1.ThroughputModeBursting,
		},
		LoadBalancer: LoadBalancerDefaults{
			Scheme:             platformv1.LBSchemeInternal,
			IdleTimeoutSeconds: DefaultLBIdleTimeoutSeconds,
		},
		SecretsManager: SecretsManagerDefaults{
			RotationDays: 90,
		},
	},
	platformv1.TierStaging: {
		Region:                DefaultRegion,
		VPCCIDR:               DefaultVPCCIDR,
		AvailabilityZoneCount: 3,
		SingleNATGateway:      false,
		NodeCount:             3,
		InstanceType:          "m5.large",
		KubernetesVersion:     DefaultKubernetesVersion,
		BrokerReplicas:        3,
		ControllerReplicas:    3,
		BrokerStorageGB:       250,
		KafkaOperatorVersion:  DefaultKafkaOperatorVersion,
		MultiAZ:               false,
		DeletionProtection:    false,
		EncryptionAtRest:      true,
		BackupRetentionDays:   14,
		RDS: RDSDefaults{
			Engine:             DefaultRDSEngine,
			InstanceClass:      "db.t3.large",
			AllocatedStorageGB: 50,
		},
		ElastiCache: ElastiCacheDefaults{
			NodeType:         "cache.t3.small",
			Shards:           1,
			ReplicasPerShard: 1,
			ClusterMode:      false,
		},
		EFS: EFSDefaults{
			ThroughputMode: platformv1.ThroughputModeBursting,
		},
		LoadBalancer: LoadBalancerDefaults{
			Scheme:             platformv1.LBSchemeInternal,
			IdleTimeoutSeconds: DefaultLBIdleTimeoutSeconds,
		},
		SecretsManager: SecretsManagerDefaults{
			RotationDays: 60,
		},
	},
	platformv1.TierProd: {
		Region:                DefaultRegion,
		VPCCIDR:               DefaultVPCCIDR,
		AvailabilityZoneCount: 3,
		SingleNATGateway:      false,
		NodeCount:             6,
		InstanceType:          "m5.2xlarge",
		KubernetesVersion:     DefaultKubernetesVersion,
		BrokerReplicas:        5,
		ControllerReplicas:    5,
		BrokerStorageGB:       1000,
		KafkaOperatorVersion:  DefaultKafkaOperatorVersion,
		MultiAZ:               true,
		DeletionProtection:    true,
		EncryptionAtRest:      true,
		BackupRetentionDays:   30,
		RDS: RDSDefaults{
			Engine:             DefaultRDSEngine,
			InstanceClass:      "db.r5.large",
			AllocatedStorageGB: 100,
		},
		ElastiCache: ElastiCacheDefaults{
			NodeType:         "cache.r6g.large",
			Shards:           3,
			ReplicasPerShard: 2,
			ClusterMode:      true,
		},
		EFS: EFSDefaults{
			ThroughputMode:   platformv1.ThroughputModeProvisioned,
			ProvisionedMiBps: 128,
		},
		LoadBalancer: LoadBalancerDefaults{
			Scheme:             platformv1.LBSchemeInternetFacing,
			IdleTimeoutSeconds: DefaultProdLBIdleTimeoutSeconds,
		},
		SecretsManager: SecretsManagerDefaults{
			RotationDays: 30,
		},
	},
}

// NewTierDefaults returns a copy of the built-in tier policy table.
func NewTierDefaults() map[platformv1.Tier]TierDefaults {
	table := make(map[platformv1.Tier]TierDefaults, len(builtinTierDefaults))
	for tier, defaults := range builtinTierDefaults {
		table[tier] = defaults
	}

	return table
}

// LoadTierDefaults reads a YAML file with per-tier overrides and merges it
// over the built-in table, values from the file winning. The file only
// needs to mention the fields it wants to change, e.g.
//
//	prod:
//	  nodeCount: 9
//	  instanceType: m5.4xlarge
//
// The merged table is still subject to the usual validation when used.
func LoadTierDefaults(filename string) (map[platformv1.Tier]TierDefaults, error) {
	table := NewTierDefaults()
	if filename == "" {
		return table, nil
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	overlay := make(map[string]any)
	if err := yaml.Unmarshal(content, &overlay); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	base := make(map[string]any)
	encoded, err := yaml.Marshal(table)
	if err != nil {
		return nil, fmt.Errorf("failed to encode built-in defaults: %w", err)
	}
	if err := yaml.Unmarshal(encoded, &base); err != nil {
		return nil, fmt.Errorf("failed to decode built-in defaults: %w", err)
	}

	// mergo.WithOverride ensures that values from the overlay file
	// overwrite the built-in baseline.
	if err := mergo.Merge(&base, overlay, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge defaults from %s: %w", filename, err)
	}

	merged, err := yaml.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged defaults: %w", err)
	}

	result := map[platformv1.Tier]TierDefaults{}
	if err := yaml.UnmarshalStrict(merged, &result); err != nil {
		return nil, fmt.Errorf("%s is not a valid tier defaults overlay: %w", filename, err)
	}

	return result, nil
}

// DefaultsFor returns the baseline for the given tier from the table.
func DefaultsFor(table map[platformv1.Tier]TierDefaults, tier platformv1.Tier) (TierDefaults, error) {
	defaults, ok := table[tier]
	if !ok {
		return TierDefaults{}, fmt.Errorf("no defaults known for environment tier %q", tier)
	}

	return defaults, nil
}
