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

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// Tier classifies a deployment environment and drives the default
// sizing and durability policy applied during resolution.
type Tier string

const (
	TierDev     Tier = "dev"
	TierStaging Tier = "staging"
	TierProd    Tier = "prod"
)

// AllTiers is the closed set of recognized environment tiers.
var AllTiers = sets.New(TierDev, TierStaging, TierProd)

// EFS throughput modes.
const (
	ThroughputModeBursting    = "bursting"
	ThroughputModeProvisioned = "provisioned"
)

// Load balancer schemes.
const (
	LBSchemeInternal       = "internal"
	LBSchemeInternetFacing = "internet-facing"
)

// Supported RDS engines.
var AllRDSEngines = sets.New("postgres", "mysql")

// PlatformConfig is the raw, user-supplied configuration for one platform
// deployment. Every tunable is a pointer so that an explicit override can
// be distinguished from "use the tier default"; nil means the tier baseline
// wins. A PlatformConfig is never mutated by the resolver.
type PlatformConfig struct {
	// ClusterName is the name of the platform installation. It is used as
	// a prefix for all provisioned resources.
	ClusterName string `json:"clusterName"`

	// Environment selects the tier policy (dev, staging or prod).
	Environment Tier `json:"environment"`

	// Region is the AWS region the platform is deployed into.
	Region string `json:"region,omitempty"`

	// OperatorEmail is the contact address used for certificate issuance.
	// Required when the DNS/certificate feature is enabled.
	OperatorEmail string `json:"operatorEmail,omitempty"`

	// Tags are propagated verbatim onto every provisioned resource.
	Tags map[string]string `json:"tags,omitempty"`

	Network    NetworkConfig    `json:"network,omitempty"`
	Kubernetes KubernetesConfig `json:"kubernetes,omitempty"`
	Kafka      KafkaConfig      `json:"kafka,omitempty"`

	// MultiAZ overrides the tier policy for multi-availability-zone
	// deployments (on by default in prod).
	MultiAZ *bool `json:"multiAZ,omitempty"`

	// DeletionProtection overrides the tier policy for resource deletion
	// protection (on by default in prod).
	DeletionProtection *bool `json:"deletionProtection,omitempty"`

	// BackupRetentionDays overrides the tier backup retention period.
	BackupRetentionDays *int32 `json:"backupRetentionDays,omitempty"`

	// EncryptionAtRest overrides the tier policy for storage encryption.
	EncryptionAtRest *bool `json:"encryptionAtRest,omitempty"`

	// Feature gates for the optional sub-plans. A disabled feature is
	// entirely absent from the resolved plan, it is not zero-valued.
	EnableRDS            bool `json:"enableRDS,omitempty"`
	EnableElastiCache    bool `json:"enableElastiCache,omitempty"`
	EnableEFS            bool `json:"enableEFS,omitempty"`
	EnableLoadBalancer   bool `json:"enableLoadBalancer,omitempty"`
	EnableDNS            bool `json:"enableDNS,omitempty"`
	EnableSecretsManager bool `json:"enableSecretsManager,omitempty"`

	RDS            *RDSConfig            `json:"rds,omitempty"`
	ElastiCache    *ElastiCacheConfig    `json:"elastiCache,omitempty"`
	EFS            *EFSConfig            `json:"efs,omitempty"`
	LoadBalancer   *LoadBalancerConfig   `json:"loadBalancer,omitempty"`
	DNS            *DNSConfig            `json:"dns,omitempty"`
	SecretsManager *SecretsManagerConfig `json:"secretsManager,omitempty"`
}

// NetworkConfig configures the VPC layout.
type NetworkConfig struct {
	// VPCCIDR is the address block for the VPC, e.g. "10.0.0.0/16".
	VPCCIDR string `json:"vpcCIDR,omitempty"`

	// AvailabilityZones lists the zones to spread subnets across. When
	// empty, a tier-dependent number of zones is derived from the region.
	AvailabilityZones []string `json:"availabilityZones,omitempty"`

	// SingleNATGateway requests one shared NAT gateway instead of one per
	// availability zone. Outside the dev tier this is flagged as a policy
	// warning (or rejected, depending on the StrictNATPolicy feature gate).
	SingleNATGateway *bool `json:"singleNATGateway,omitempty"`

	// NATGatewayCount overrides the derived NAT gateway count.
	NATGatewayCount *int32 `json:"natGatewayCount,omitempty"`
}

// KubernetesConfig configures the EKS worker fleet.
type KubernetesConfig struct {
	NodeCount    *int32  `json:"nodeCount,omitempty"`
	InstanceType *string `json:"instanceType,omitempty"`
	Version      *string `json:"version,omitempty"`
}

// KafkaConfig configures the Confluent platform deployment.
type KafkaConfig struct {
	// BrokerReplicas is the Kafka broker count. Brokers are quorum-bearing,
	// so the count must be odd and at least 3, regardless of tier.
	BrokerReplicas *int32 `json:"brokerReplicas,omitempty"`

	// ControllerReplicas is the KRaft controller count. Same quorum rule
	// as for brokers.
	ControllerReplicas *int32 `json:"controllerReplicas,omitempty"`

	BrokerStorageGB *int32  `json:"brokerStorageGB,omitempty"`
	OperatorVersion *string `json:"operatorVersion,omitempty"`

	// EnableSASLAuthentication turns on SASL/PLAIN listeners. Credentials
	// need a secrets store, so enabling this requires the secrets-manager
	// feature as well.
	EnableSASLAuthentication *bool `json:"enableSASLAuthentication,omitempty"`

	// EnableTLS turns on TLS listeners, which requires the DNS/certificate
	// feature for a resolvable broker domain.
	EnableTLS *bool `json:"enableTLS,omitempty"`
}

// RDSConfig configures the optional relational database.
type RDSConfig struct {
	Engine              *string `json:"engine,omitempty"`
	InstanceClass       *string `json:"instanceClass,omitempty"`
	AllocatedStorageGB  *int32  `json:"allocatedStorageGB,omitempty"`
	MultiAZ             *bool   `json:"multiAZ,omitempty"`
	BackupRetentionDays *int32  `json:"backupRetentionDays,omitempty"`
}

// ElastiCacheConfig configures the optional Redis cache.
type ElastiCacheConfig struct {
	NodeType *string `json:"nodeType,omitempty"`
	Shards   *int32  `json:"shards,omitempty"`

	// ReplicasPerShard must be at least 1 when ClusterMode is enabled.
	ReplicasPerShard *int32 `json:"replicasPerShard,omitempty"`
	ClusterMode      *bool  `json:"clusterMode,omitempty"`
}

// EFSConfig configures the optional shared filesystem.
type EFSConfig struct {
	// ThroughputMode is either "bursting" or "provisioned".
	ThroughputMode *string `json:"throughputMode,omitempty"`

	// ProvisionedMiBps is required for (and only valid with) the
	// provisioned throughput mode.
	ProvisionedMiBps *int32 `json:"provisionedMiBps,omitempty"`
}

// LoadBalancerConfig configures the optional ingress load balancer.
type LoadBalancerConfig struct {
	// Scheme is either "internal" or "internet-facing".
	Scheme             *string `json:"scheme,omitempty"`
	IdleTimeoutSeconds *int32  `json:"idleTimeoutSeconds,omitempty"`
}

// DNSConfig configures the optional Route53/ACM integration.
type DNSConfig struct {
	// Domain is the base domain for broker and ingress records. Required
	// when the DNS feature is enabled.
	Domain string `json:"domain,omitempty"`

	// HostedZoneID pins the records to an existing hosted zone instead of
	// creating a new one.
	HostedZoneID *string `json:"hostedZoneID,omitempty"`
}

// SecretsManagerConfig configures the optional secrets store.
type SecretsManagerConfig struct {
	RotationDays *int32  `json:"rotationDays,omitempty"`
	KMSKeyAlias  *string `json:"kmsKeyAlias,omitempty"`
}
