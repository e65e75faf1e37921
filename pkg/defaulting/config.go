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
	"errors"

	"go.uber.org/zap"

	"k8s.io/utils/ptr"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
)

// azSuffixes are the zone letters used when zones are derived from the
// region instead of being named explicitly.
var azSuffixes = []string{"a", "b", "c", "d", "e", "f"}

// DefaultPlatformConfig returns a copy of the given config with every unset
// tunable filled in from the tier baseline. The input is never modified.
// Overrides are layered per field: an explicit value always wins over the
// baseline, and setting one field does not reset any other.
func DefaultPlatformConfig(config *platformv1.PlatformConfig, defaults TierDefaults, logger *zap.SugaredLogger) (*platformv1.PlatformConfig, error) {
	if config == nil {
		return nil, errors.New("config must not be nil")
	}

	logger.Debugw("Applying tier defaults", "tier", config.Environment)

	configCopy := config.DeepCopy()

	if configCopy.Region == "" {
		configCopy.Region = defaults.Region
		logger.Debugw("Defaulting field", "field", "region", "value", configCopy.Region)
	}

	defaultNetwork(configCopy, defaults, logger)
	defaultKubernetes(configCopy, defaults, logger)
	defaultKafka(configCopy, defaults, logger)
	defaultTierPolicies(configCopy, defaults, logger)
	defaultFeatures(configCopy, defaults, logger)

	return configCopy, nil
}

func defaultNetwork(config *platformv1.PlatformConfig, defaults TierDefaults, logger *zap.SugaredLogger) {
	network := &config.Network

	if network.VPCCIDR == "" {
		network.VPCCIDR = defaults.VPCCIDR
		logger.Debugw("Defaulting field", "field", "network.vpcCIDR", "value", network.VPCCIDR)
	}

	if len(network.AvailabilityZones) == 0 {
		count := int(defaults.AvailabilityZoneCount)
		if count > len(azSuffixes) {
			count = len(azSuffixes)
		}

		for i := 0; i < count; i++ {
			network.AvailabilityZones = append(network.AvailabilityZones, config.Region+azSuffixes[i])
		}
		logger.Debugw("Defaulting field", "field", "network.availabilityZones", "value", network.AvailabilityZones)
	}

	if network.SingleNATGateway == nil {
		network.SingleNATGateway = ptr.To(defaults.SingleNATGateway)
		logger.Debugw("Defaulting field", "field", "network.singleNATGateway", "value", *network.SingleNATGateway)
	}
}

func defaultKubernetes(config *platformv1.PlatformConfig, defaults TierDefaults, logger *zap.SugaredLogger) {
	kubernetes := &config.Kubernetes

	if kubernetes.NodeCount == nil {
		kubernetes.NodeCount = ptr.To(defaults.NodeCount)
		logger.Debugw("Defaulting field", "field", "kubernetes.nodeCount", "value", *kubernetes.NodeCount)
	}

	if kubernetes.InstanceType == nil {
		kubernetes.InstanceType = ptr.To(defaults.InstanceType)
		logger.Debugw("Defaulting field", "field", "kubernetes.instanceType", "value", *kubernetes.InstanceType)
	}

	if kubernetes.Version == nil {
		kubernetes.Version = ptr.To(defaults.KubernetesVersion)
		logger.Debugw("Defaulting field", "field", "kubernetes.version", "value", *kubernetes.Version)
	}
}

func defaultKafka(config *platformv1.PlatformConfig, defaults TierDefaults, logger *zap.SugaredLogger) {
	kafka := &config.Kafka

	if kafka.BrokerReplicas == nil {
		kafka.BrokerReplicas = ptr.To(defaults.BrokerReplicas)
		logger.Debugw("Defaulting field", "field", "kafka.brokerReplicas", "value", *kafka.BrokerReplicas)
	}

	if kafka.ControllerReplicas == nil {
		kafka.ControllerReplicas = ptr.To(defaults.ControllerReplicas)
		logger.Debugw("Defaulting field", "field", "kafka.controllerReplicas", "value", *kafka.ControllerReplicas)
	}

	if kafka.BrokerStorageGB == nil {
		kafka.BrokerStorageGB = ptr.To(defaults.BrokerStorageGB)
		logger.Debugw("Defaulting field", "field", "kafka.brokerStorageGB", "value", *kafka.BrokerStorageGB)
	}

	if kafka.OperatorVersion == nil {
		kafka.OperatorVersion = ptr.To(defaults.KafkaOperatorVersion)
		logger.Debugw("Defaulting field", "field", "kafka.operatorVersion", "value", *kafka.OperatorVersion)
	}

	// Authentication features stay off unless requested; turning them on
	// by tier would silently pull in the secrets-manager and DNS features.
	if kafka.EnableSASLAuthentication == nil {
		kafka.EnableSASLAuthentication = ptr.To(false)
	}

	if kafka.EnableTLS == nil {
		kafka.EnableTLS = ptr.To(false)
	}
}

func defaultTierPolicies(config *platformv1.PlatformConfig, defaults TierDefaults, logger *zap.SugaredLogger) {
	if config.MultiAZ == nil {
		config.MultiAZ = ptr.To(defaults.MultiAZ)
		logger.Debugw("Defaulting field", "field", "multiAZ", "value", *config.MultiAZ)
	}

	if config.DeletionProtection == nil {
		config.DeletionProtection = ptr.To(defaults.DeletionProtection)
		logger.Debugw("Defaulting field", "field", "deletionProtection", "value", *config.DeletionProtection)
	}

	if config.BackupRetentionDays == nil {
		config.BackupRetentionDays = ptr.To(defaults.BackupRetentionDays)
		logger.Debugw("Defaulting field", "field", "backupRetentionDays", "value", *config.BackupRetentionDays)
	}

	if config.EncryptionAtRest == nil {
		config.EncryptionAtRest = ptr.To(defaults.EncryptionAtRest)
		logger.Debugw("Defaulting field", "field", "encryptionAtRest", "value", *config.EncryptionAtRest)
	}
}

// defaultFeatures fills in the override blocks of enabled features.
// Disabled features are left alone entirely: their sub-plans must stay
// absent from the resolved plan, not become zero-valued.
func defaultFeatures(config *platformv1.PlatformConfig, defaults TierDefaults, logger *zap.SugaredLogger) {
	if config.EnableRDS {
		if config.RDS == nil {
			config.RDS = &platformv1.RDSConfig{}
		}

		defaultField(&config.RDS.Engine, defaults.RDS.Engine, "rds.engine", logger)
		defaultField(&config.RDS.InstanceClass, defaults.RDS.InstanceClass, "rds.instanceClass", logger)
		defaultField(&config.RDS.AllocatedStorageGB, defaults.RDS.AllocatedStorageGB, "rds.allocatedStorageGB", logger)
		defaultField(&config.RDS.MultiAZ, *config.MultiAZ, "rds.multiAZ", logger)
		defaultField(&config.RDS.BackupRetentionDays, *config.BackupRetentionDays, "rds.backupRetentionDays", logger)
	}

	if config.EnableElastiCache {
		if config.ElastiCache == nil {
			config.ElastiCache = &platformv1.ElastiCacheConfig{}
		}

		defaultField(&config.ElastiCache.NodeType, defaults.ElastiCache.NodeType, "elastiCache.nodeType", logger)
		defaultField(&config.ElastiCache.Shards, defaults.ElastiCache.Shards, "elastiCache.shards", logger)
		defaultField(&config.ElastiCache.ReplicasPerShard, defaults.ElastiCache.ReplicasPerShard, "elastiCache.replicasPerShard", logger)
		defaultField(&config.ElastiCache.ClusterMode, defaults.ElastiCache.ClusterMode, "elastiCache.clusterMode", logger)
	}

	if config.EnableEFS {
		if config.EFS == nil {
			config.EFS = &platformv1.EFSConfig{}
		}

		defaultField(&config.EFS.ThroughputMode, defaults.EFS.ThroughputMode, "efs.throughputMode", logger)

		if ptr.Deref(config.EFS.ThroughputMode, "") == platformv1.ThroughputModeProvisioned && config.EFS.ProvisionedMiBps == nil {
			defaultField(&config.EFS.ProvisionedMiBps, defaults.EFS.ProvisionedMiBps, "efs.provisionedMiBps", logger)
		}
	}

	if config.EnableLoadBalancer {
		if config.LoadBalancer == nil {
			config.LoadBalancer = &platformv1.LoadBalancerConfig{}
		}

		defaultField(&config.LoadBalancer.Scheme, defaults.LoadBalancer.Scheme, "loadBalancer.scheme", logger)
		defaultField(&config.LoadBalancer.IdleTimeoutSeconds, defaults.LoadBalancer.IdleTimeoutSeconds, "loadBalancer.idleTimeoutSeconds", logger)
	}

	if config.EnableSecretsManager {
		if config.SecretsManager == nil {
			config.SecretsManager = &platformv1.SecretsManagerConfig{}
		}

		defaultField(&config.SecretsManager.RotationDays, defaults.SecretsManager.RotationDays, "secretsManager.rotationDays", logger)

		if config.SecretsManager.KMSKeyAlias == nil && defaults.SecretsManager.KMSKeyAlias != "" {
			defaultField(&config.SecretsManager.KMSKeyAlias, defaults.SecretsManager.KMSKeyAlias, "secretsManager.kmsKeyAlias", logger)
		}
	}

	// The DNS block carries no tier-defaultable fields; the domain is
	// genuinely user-specific and validated instead.
	if config.EnableDNS && config.DNS == nil {
		config.DNS = &platformv1.DNSConfig{}
	}
}

func defaultField[T any](field **T, value T, path string, logger *zap.SugaredLogger) {
	if *field != nil {
		return
	}

	*field = &value
	logger.Debugw("Defaulting field", "field", path, "value", value)
}
