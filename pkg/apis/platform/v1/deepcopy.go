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

package v1

// DeepCopy returns an independent copy of the config. The resolver relies
// on this to guarantee that the caller's input is never mutated.
func (c *PlatformConfig) DeepCopy() *PlatformConfig {
	if c == nil {
		return nil
	}

	out := *c

	out.Tags = copyMap(c.Tags)
	out.Network = *c.Network.DeepCopy()
	out.Kubernetes = *c.Kubernetes.DeepCopy()
	out.Kafka = *c.Kafka.DeepCopy()

	out.MultiAZ = copyPtr(c.MultiAZ)
	out.DeletionProtection = copyPtr(c.DeletionProtection)
	out.BackupRetentionDays = copyPtr(c.BackupRetentionDays)
	out.EncryptionAtRest = copyPtr(c.EncryptionAtRest)

	out.RDS = c.RDS.DeepCopy()
	out.ElastiCache = c.ElastiCache.DeepCopy()
	out.EFS = c.EFS.DeepCopy()
	out.LoadBalancer = c.LoadBalancer.DeepCopy()
	out.DNS = c.DNS.DeepCopy()
	out.SecretsManager = c.SecretsManager.DeepCopy()

	return &out
}

func (c *NetworkConfig) DeepCopy() *NetworkConfig {
	if c == nil {
		return nil
	}

	out := *c
	if c.AvailabilityZones != nil {
		out.AvailabilityZones = make([]string, len(c.AvailabilityZones))
		copy(out.AvailabilityZones, c.AvailabilityZones)
	}
	out.SingleNATGateway = copyPtr(c.SingleNATGateway)
	out.NATGatewayCount = copyPtr(c.NATGatewayCount)

	return &out
}

func (c *KubernetesConfig) DeepCopy() *KubernetesConfig {
	if c == nil {
		return nil
	}

	out := *c
	out.NodeCount = copyPtr(c.NodeCount)
	out.InstanceType = copyPtr(c.InstanceType)
	out.Version = copyPtr(c.Version)

	return &out
}

func (c *KafkaConfig) DeepCopy() *KafkaConfig {
	if c == nil {
		return nil
	}

	out := *c
	out.BrokerReplicas = copyPtr(c.BrokerReplicas)
	out.ControllerReplicas = copyPtr(c.ControllerReplicas)
	out.BrokerStorageGB = copyPtr(c.BrokerStorageGB)
	out.OperatorVersion = copyPtr(c.OperatorVersion)
	out.EnableSASLAuthentication = copyPtr(c.EnableSASLAuthentication)
	out.EnableTLS = copyPtr(c.EnableTLS)

	return &out
}

func (c *RDSConfig) DeepCopy() *RDSConfig {
	if c == nil {
		return nil
	}

	out := *c
	out.Engine = copyPtr(c.Engine)
	out.InstanceClass = copyPtr(c.InstanceClass)
	out.AllocatedStorageGB = copyPtr(c.AllocatedStorageGB)
	out.MultiAZ = copyPtr(c.MultiAZ)
	out.BackupRetentionDays = copyPtr(c.BackupRetentionDays)

	return &out
}

func (c *ElastiCacheConfig) DeepCopy() *ElastiCacheConfig {
	if c == nil {
		return nil
	}

	out := *c
	out.NodeType = copyPtr(c.NodeType)
	out.Shards = copyPtr(c.Shards)
	out.ReplicasPerShard = copyPtr(c.ReplicasPerShard)
	out.ClusterMode = copyPtr(c.ClusterMode)

	return &out
}

func (c *EFSConfig) DeepCopy() *EFSConfig {
	if c == nil {
		return nil
	}

	out := *c
	out.ThroughputMode = copyPtr(c.ThroughputMode)
	out.ProvisionedMiBps = copyPtr(c.ProvisionedMiBps)

	return &out
}

func (c *LoadBalancerConfig) DeepCopy() *LoadBalancerConfig {
	if c == nil {
		return nil
	}

	out := *c
	out.Scheme = copyPtr(c.Scheme)
	out.IdleTimeoutSeconds = copyPtr(c.IdleTimeoutSeconds)

	return &out
}

func (c *DNSConfig) DeepCopy() *DNSConfig {
	if c == nil {
		return nil
	}

	out := *c
	out.HostedZoneID = copyPtr(c.HostedZoneID)

	return &out
}

func (c *SecretsManagerConfig) DeepCopy() *SecretsManagerConfig {
	if c == nil {
		return nil
	}

	out := *c
	out.RotationDays = copyPtr(c.RotationDays)
	out.KMSKeyAlias = copyPtr(c.KMSKeyAlias)

	return &out
}

func copyPtr[T any](p *T) *T {
	if p == nil {
		return nil
	}

	v := *p
	return &v
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}

	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
