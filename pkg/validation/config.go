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
	"fmt"
	"net"
	"regexp"
	"strconv"

	semverlib "github.com/Masterminds/semver/v3"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/features"
)

const (
	// MaxClusterNameLength is the maximum allowed length for cluster names.
	// The name prefixes load balancer and IAM role names, and AWS ALB names
	// are capped at 32 characters; leaving room for the suffixes we add
	// caps the usable length at 24.
	MaxClusterNameLength = 24

	// MinQuorumReplicas is the smallest replica count for quorum-bearing
	// services (Kafka brokers, KRaft controllers).
	MinQuorumReplicas = 3

	// MinBrokerStorageGB is the storage floor per Kafka broker.
	MinBrokerStorageGB = 20

	// MinRDSStorageGB and MaxRDSStorageGB are the AWS limits for gp3-backed
	// RDS instances.
	MinRDSStorageGB = 20
	MaxRDSStorageGB = 65536

	// MaxEFSProvisionedMiBps is the AWS limit for provisioned throughput.
	MaxEFSProvisionedMiBps = 1024

	// MaxAvailabilityZones is the most zones a single deployment spreads
	// across.
	MaxAvailabilityZones = 6
)

var (
	// AllowedBackupRetentionDays is the discrete set of retention periods
	// accepted by the backup services we configure.
	AllowedBackupRetentionDays = sets.New[int32](1, 3, 5, 7, 14, 30, 35)

	allowedRetentionValues = func() []string {
		values := []string{}
		for _, days := range sets.List(AllowedBackupRetentionDays) {
			values = append(values, strconv.Itoa(int(days)))
		}
		return values
	}()

	clusterNameRegexp  = regexp.MustCompile(`^[a-z]([a-z0-9-]*[a-z0-9])?$`)
	regionRegexp       = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d$`)
	instanceTypeRegexp = regexp.MustCompile(`^[a-z][a-z0-9-]*\.[a-z0-9]+$`)
	rdsClassRegexp     = regexp.MustCompile(`^db\.[a-z][a-z0-9-]*\.[a-z0-9]+$`)
	cacheNodeRegexp    = regexp.MustCompile(`^cache\.[a-z][a-z0-9-]*\.[a-z0-9]+$`)
	emailRegexp        = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	domainRegexp       = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)+[a-z]{2,}$`)
	kubeVersionRegexp  = regexp.MustCompile(`^\d+\.\d+$`)

	allThroughputModes = sets.New(platformv1.ThroughputModeBursting, platformv1.ThroughputModeProvisioned)
	allLBSchemes       = sets.New(platformv1.LBSchemeInternal, platformv1.LBSchemeInternetFacing)
)

// ValidatePlatformConfig validates the raw, not-yet-defaulted config. All
// violations are collected and returned together so a single run reports
// every problem; nothing here stops at the first error.
func ValidatePlatformConfig(config *platformv1.PlatformConfig, gates features.FeatureGate) field.ErrorList {
	allErrs := field.ErrorList{}

	if config.ClusterName == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("clusterName"), "no cluster name specified"))
	} else {
		if !clusterNameRegexp.MatchString(config.ClusterName) {
			allErrs = append(allErrs, field.Invalid(field.NewPath("clusterName"), config.ClusterName, "must consist of lowercase alphanumerics and dashes, starting with a letter"))
		}
		if len(config.ClusterName) > MaxClusterNameLength {
			allErrs = append(allErrs, field.Invalid(field.NewPath("clusterName"), config.ClusterName, fmt.Sprintf("must not be longer than %d characters", MaxClusterNameLength)))
		}
	}

	if !platformv1.AllTiers.Has(config.Environment) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("environment"), config.Environment, sets.List(platformv1.AllTiers)))
	}

	if config.Region != "" && !regionRegexp.MatchString(config.Region) {
		allErrs = append(allErrs, field.Invalid(field.NewPath("region"), config.Region, "not a valid AWS region name"))
	}

	if config.OperatorEmail != "" && !emailRegexp.MatchString(config.OperatorEmail) {
		allErrs = append(allErrs, field.Invalid(field.NewPath("operatorEmail"), config.OperatorEmail, "not a valid email address"))
	}

	allErrs = append(allErrs, validateNetworkConfig(&config.Network, config.Environment, gates, field.NewPath("network"))...)
	allErrs = append(allErrs, validateKubernetesConfig(&config.Kubernetes, field.NewPath("kubernetes"))...)
	allErrs = append(allErrs, validateKafkaConfig(&config.Kafka, field.NewPath("kafka"))...)

	if config.BackupRetentionDays != nil && !AllowedBackupRetentionDays.Has(*config.BackupRetentionDays) {
		allErrs = append(allErrs, field.NotSupported(field.NewPath("backupRetentionDays"), *config.BackupRetentionDays, allowedRetentionValues))
	}

	allErrs = append(allErrs, validateFeatureBlocks(config)...)
	allErrs = append(allErrs, validateFeatureDependencies(config)...)

	return allErrs
}

func validateNetworkConfig(network *platformv1.NetworkConfig, tier platformv1.Tier, gates features.FeatureGate, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if network.VPCCIDR != "" {
		if _, _, err := net.ParseCIDR(network.VPCCIDR); err != nil {
			allErrs = append(allErrs, field.Invalid(fldPath.Child("vpcCIDR"), network.VPCCIDR, fmt.Sprintf("not a valid CIDR block: %v", err)))
		}
	}

	if len(network.AvailabilityZones) > MaxAvailabilityZones {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("availabilityZones"), network.AvailabilityZones, fmt.Sprintf("at most %d availability zones are supported", MaxAvailabilityZones)))
	}

	seen := sets.New[string]()
	for i, az := range network.AvailabilityZones {
		if az == "" {
			allErrs = append(allErrs, field.Required(fldPath.Child("availabilityZones").Index(i), "availability zone name must not be empty"))
			continue
		}
		if seen.Has(az) {
			allErrs = append(allErrs, field.Duplicate(fldPath.Child("availabilityZones").Index(i), az))
		}
		seen.Insert(az)
	}

	if network.NATGatewayCount != nil {
		if *network.NATGatewayCount < 1 {
			allErrs = append(allErrs, field.Invalid(fldPath.Child("natGatewayCount"), *network.NATGatewayCount, "at least one NAT gateway is required for outbound traffic"))
		}
		if azs := len(network.AvailabilityZones); azs > 0 && *network.NATGatewayCount > int32(azs) {
			allErrs = append(allErrs, field.Invalid(fldPath.Child("natGatewayCount"), *network.NATGatewayCount, "cannot exceed the number of availability zones"))
		}
		if ptr.Deref(network.SingleNATGateway, false) && *network.NATGatewayCount > 1 {
			allErrs = append(allErrs, field.Forbidden(fldPath.Child("natGatewayCount"), "cannot request more than one NAT gateway together with singleNATGateway"))
		}
	}

	// Whether a single NAT gateway outside dev is rejected or merely
	// flagged as a warning is an operator policy decision.
	if gates.Enabled(features.StrictNATPolicy) && tier != platformv1.TierDev && ptr.Deref(network.SingleNATGateway, false) {
		allErrs = append(allErrs, field.Forbidden(fldPath.Child("singleNATGateway"), fmt.Sprintf("a single NAT gateway is only permitted in the %s tier", platformv1.TierDev)))
	}

	return allErrs
}

func validateKubernetesConfig(kubernetes *platformv1.KubernetesConfig, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if kubernetes.NodeCount != nil && *kubernetes.NodeCount < 1 {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("nodeCount"), *kubernetes.NodeCount, "at least one worker node is required"))
	}

	if kubernetes.InstanceType != nil && !instanceTypeRegexp.MatchString(*kubernetes.InstanceType) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("instanceType"), *kubernetes.InstanceType, "not a valid EC2 instance type"))
	}

	if kubernetes.Version != nil && !kubeVersionRegexp.MatchString(*kubernetes.Version) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("version"), *kubernetes.Version, "must be a <major>.<minor> Kubernetes version"))
	}

	return allErrs
}

func validateKafkaConfig(kafka *platformv1.KafkaConfig, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	// Quorum oddness is a hard invariant, not a default: an even override
	// is rejected, never silently coerced.
	if err := validateQuorumReplicas(kafka.BrokerReplicas, fldPath.Child("brokerReplicas")); err != nil {
		allErrs = append(allErrs, err)
	}
	if err := validateQuorumReplicas(kafka.ControllerReplicas, fldPath.Child("controllerReplicas")); err != nil {
		allErrs = append(allErrs, err)
	}

	if kafka.BrokerStorageGB != nil && *kafka.BrokerStorageGB < MinBrokerStorageGB {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("brokerStorageGB"), *kafka.BrokerStorageGB, fmt.Sprintf("broker storage must be at least %d GB", MinBrokerStorageGB)))
	}

	if kafka.OperatorVersion != nil {
		if err := validateOperatorVersion(*kafka.OperatorVersion); err != nil {
			allErrs = append(allErrs, field.Invalid(fldPath.Child("operatorVersion"), *kafka.OperatorVersion, err.Error()))
		}
	}

	return allErrs
}

// validateQuorumReplicas enforces the leader-election correctness rule for
// replicated services: counts must be odd and at least MinQuorumReplicas.
func validateQuorumReplicas(count *int32, fldPath *field.Path) *field.Error {
	if count == nil {
		return nil
	}

	if *count < MinQuorumReplicas || *count%2 == 0 {
		return field.Invalid(fldPath, *count, fmt.Sprintf("quorum-bearing replica count must be odd and at least %d", MinQuorumReplicas))
	}

	return nil
}

func validateOperatorVersion(version string) error {
	parsed, err := semverlib.NewVersion(version)
	if err != nil {
		return fmt.Errorf("not a valid semantic version: %w", err)
	}

	supportedConstraint, _ := semverlib.NewConstraint(">= 2.0.0, < 3.0.0")
	if !supportedConstraint.Check(parsed) {
		return fmt.Errorf("operator version %s is outside the supported 2.x release line", version)
	}

	return nil
}

// validateFeatureBlocks rejects override blocks for features that are not
// enabled. A block without its feature gate is almost always a config file
// mistake and silently ignoring it would hide the intent.
func validateFeatureBlocks(config *platformv1.PlatformConfig) field.ErrorList {
	allErrs := field.ErrorList{}

	if config.RDS != nil && !config.EnableRDS {
		allErrs = append(allErrs, field.Forbidden(field.NewPath("rds"), "rds settings are specified but enableRDS is false"))
	}
	if config.ElastiCache != nil && !config.EnableElastiCache {
		allErrs = append(allErrs, field.Forbidden(field.NewPath("elastiCache"), "elastiCache settings are specified but enableElastiCache is false"))
	}
	if config.EFS != nil && !config.EnableEFS {
		allErrs = append(allErrs, field.Forbidden(field.NewPath("efs"), "efs settings are specified but enableEFS is false"))
	}
	if config.LoadBalancer != nil && !config.EnableLoadBalancer {
		allErrs = append(allErrs, field.Forbidden(field.NewPath("loadBalancer"), "loadBalancer settings are specified but enableLoadBalancer is false"))
	}
	if config.DNS != nil && !config.EnableDNS {
		allErrs = append(allErrs, field.Forbidden(field.NewPath("dns"), "dns settings are specified but enableDNS is false"))
	}
	if config.SecretsManager != nil && !config.EnableSecretsManager {
		allErrs = append(allErrs, field.Forbidden(field.NewPath("secretsManager"), "secretsManager settings are specified but enableSecretsManager is false"))
	}

	if config.EnableRDS && config.RDS != nil {
		allErrs = append(allErrs, validateRDSConfig(config.RDS, field.NewPath("rds"))...)
	}
	if config.EnableElastiCache && config.ElastiCache != nil {
		allErrs = append(allErrs, validateElastiCacheConfig(config.ElastiCache, field.NewPath("elastiCache"))...)
	}
	if config.EnableEFS && config.EFS != nil {
		allErrs = append(allErrs, validateEFSConfig(config.EFS, field.NewPath("efs"))...)
	}
	if config.EnableLoadBalancer && config.LoadBalancer != nil {
		allErrs = append(allErrs, validateLoadBalancerConfig(config.LoadBalancer, field.NewPath("loadBalancer"))...)
	}
	if config.EnableSecretsManager && config.SecretsManager != nil {
		allErrs = append(allErrs, validateSecretsManagerConfig(config.SecretsManager, field.NewPath("secretsManager"))...)
	}
	if config.EnableDNS {
		allErrs = append(allErrs, validateDNSConfig(config.DNS, config.OperatorEmail, field.NewPath("dns"))...)
	}

	return allErrs
}

// validateFeatureDependencies checks the prerequisites between features
// that are already decidable on the raw config, so that a broken
// combination fails before any defaulting happens.
func validateFeatureDependencies(config *platformv1.PlatformConfig) field.ErrorList {
	allErrs := field.ErrorList{}

	if ptr.Deref(config.Kafka.EnableSASLAuthentication, false) && !config.EnableSecretsManager {
		allErrs = append(allErrs, field.Required(field.NewPath("enableSecretsManager"), "SASL authentication requires the secrets manager to store broker credentials"))
	}

	if ptr.Deref(config.Kafka.EnableTLS, false) && !config.EnableDNS {
		allErrs = append(allErrs, field.Required(field.NewPath("enableDNS"), "TLS listeners require the DNS/certificate feature for a resolvable broker domain"))
	}

	return allErrs
}

func validateRDSConfig(rds *platformv1.RDSConfig, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if rds.Engine != nil && !platformv1.AllRDSEngines.Has(*rds.Engine) {
		allErrs = append(allErrs, field.NotSupported(fldPath.Child("engine"), *rds.Engine, sets.List(platformv1.AllRDSEngines)))
	}

	if rds.InstanceClass != nil && !rdsClassRegexp.MatchString(*rds.InstanceClass) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("instanceClass"), *rds.InstanceClass, "not a valid RDS instance class"))
	}

	if rds.AllocatedStorageGB != nil {
		if *rds.AllocatedStorageGB < MinRDSStorageGB || *rds.AllocatedStorageGB > MaxRDSStorageGB {
			allErrs = append(allErrs, field.Invalid(fldPath.Child("allocatedStorageGB"), *rds.AllocatedStorageGB, fmt.Sprintf("must be between %d and %d GB", MinRDSStorageGB, MaxRDSStorageGB)))
		}
	}

	if rds.BackupRetentionDays != nil && !AllowedBackupRetentionDays.Has(*rds.BackupRetentionDays) {
		allErrs = append(allErrs, field.NotSupported(fldPath.Child("backupRetentionDays"), *rds.BackupRetentionDays, allowedRetentionValues))
	}

	return allErrs
}

func validateElastiCacheConfig(cache *platformv1.ElastiCacheConfig, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if cache.NodeType != nil && !cacheNodeRegexp.MatchString(*cache.NodeType) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("nodeType"), *cache.NodeType, "not a valid ElastiCache node type"))
	}

	if cache.Shards != nil && *cache.Shards < 1 {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("shards"), *cache.Shards, "at least one shard is required"))
	}

	if cache.ReplicasPerShard != nil && *cache.ReplicasPerShard < 0 {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("replicasPerShard"), *cache.ReplicasPerShard, "must not be negative"))
	}

	return allErrs
}

func validateEFSConfig(efs *platformv1.EFSConfig, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	mode := ptr.Deref(efs.ThroughputMode, "")
	if mode != "" && !allThroughputModes.Has(mode) {
		allErrs = append(allErrs, field.NotSupported(fldPath.Child("throughputMode"), mode, sets.List(allThroughputModes)))
	}

	if efs.ProvisionedMiBps != nil {
		if mode == platformv1.ThroughputModeBursting {
			allErrs = append(allErrs, field.Forbidden(fldPath.Child("provisionedMiBps"), "provisioned throughput cannot be combined with the bursting mode"))
		}
		if *efs.ProvisionedMiBps < 1 || *efs.ProvisionedMiBps > MaxEFSProvisionedMiBps {
			allErrs = append(allErrs, field.Invalid(fldPath.Child("provisionedMiBps"), *efs.ProvisionedMiBps, fmt.Sprintf("must be between 1 and %d MiB/s", MaxEFSProvisionedMiBps)))
		}
	}

	return allErrs
}

func validateLoadBalancerConfig(lb *platformv1.LoadBalancerConfig, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if lb.Scheme != nil && !allLBSchemes.Has(*lb.Scheme) {
		allErrs = append(allErrs, field.NotSupported(fldPath.Child("scheme"), *lb.Scheme, sets.List(allLBSchemes)))
	}

	if lb.IdleTimeoutSeconds != nil && (*lb.IdleTimeoutSeconds < 1 || *lb.IdleTimeoutSeconds > 4000) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("idleTimeoutSeconds"), *lb.IdleTimeoutSeconds, "must be between 1 and 4000 seconds"))
	}

	return allErrs
}

func validateDNSConfig(dns *platformv1.DNSConfig, operatorEmail string, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if dns == nil || dns.Domain == "" {
		allErrs = append(allErrs, field.Required(fldPath.Child("domain"), "a base domain is required when the DNS/certificate feature is enabled"))
	} else if !domainRegexp.MatchString(dns.Domain) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("domain"), dns.Domain, "not a valid DNS domain"))
	}

	if operatorEmail == "" {
		allErrs = append(allErrs, field.Required(field.NewPath("operatorEmail"), "certificate issuance requires a contact email address"))
	}

	return allErrs
}

func validateSecretsManagerConfig(sm *platformv1.SecretsManagerConfig, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if sm.RotationDays != nil && (*sm.RotationDays < 1 || *sm.RotationDays > 365) {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("rotationDays"), *sm.RotationDays, "must be between 1 and 365 days"))
	}

	return allErrs
}
