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

// Package resolver turns a raw platform configuration into a fully
// resolved deployment plan. Resolution is a pure function of its input:
// it performs no I/O, generates no secrets and never mutates the given
// config, so a Resolver is safe for concurrent use.
package resolver

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/defaulting"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/features"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/validation"
)

// ResolutionError aggregates every violation found during a resolution
// run. The resolver never stops at the first problem, so a single run
// reports everything an operator has to fix.
type ResolutionError struct {
	Errors field.ErrorList
}

func (e *ResolutionError) Error() string {
	return e.Errors.ToAggregate().Error()
}

// Resolver resolves platform configurations against a tier defaults table.
type Resolver struct {
	tierDefaults map[platformv1.Tier]defaulting.TierDefaults
	featureGates features.FeatureGate
	log          *zap.SugaredLogger
}

// New creates a Resolver. A nil defaults table selects the built-in tier
// policy; a nil logger disables defaulting logs.
func New(tierDefaults map[platformv1.Tier]defaulting.TierDefaults, gates features.FeatureGate, log *zap.SugaredLogger) *Resolver {
	if tierDefaults == nil {
		tierDefaults = defaulting.NewTierDefaults()
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Resolver{
		tierDefaults: tierDefaults,
		featureGates: gates,
		log:          log,
	}
}

// Resolve validates the raw config, layers the tier baseline under the
// user's overrides, applies the tier-conditioned derivation rules and
// returns the resolved plan. On any violation it returns a
// *ResolutionError carrying the complete list of problems and no plan;
// partially resolved plans are never returned.
func (r *Resolver) Resolve(config *platformv1.PlatformConfig) (*platformv1.DeploymentPlan, error) {
	if config == nil {
		return nil, errors.New("config must not be nil")
	}

	if errs := validation.ValidatePlatformConfig(config, r.featureGates); len(errs) > 0 {
		return nil, &ResolutionError{Errors: errs}
	}

	defaults, err := defaulting.DefaultsFor(r.tierDefaults, config.Environment)
	if err != nil {
		return nil, err
	}

	defaulted, err := defaulting.DefaultPlatformConfig(config, defaults, r.log)
	if err != nil {
		return nil, err
	}

	plan := buildPlan(defaulted)
	plan.Warnings = policyWarnings(defaulted)

	if errs := validation.ValidateDeploymentPlan(plan); len(errs) > 0 {
		return nil, &ResolutionError{Errors: errs}
	}

	return plan, nil
}

// buildPlan maps the fully defaulted config onto the plan shape. Every
// pointer dereference here is safe because defaulting fills all tunables
// of enabled features.
func buildPlan(config *platformv1.PlatformConfig) *platformv1.DeploymentPlan {
	plan := &platformv1.DeploymentPlan{
		ClusterName: config.ClusterName,
		Environment: config.Environment,
		Region:      config.Region,
		Tags:        config.Tags,

		Network: platformv1.NetworkPlan{
			VPCCIDR:           config.Network.VPCCIDR,
			AvailabilityZones: config.Network.AvailabilityZones,
			NATGatewayCount:   natGatewayCount(&config.Network),
		},
		Kubernetes: platformv1.KubernetesPlan{
			NodeCount:    *config.Kubernetes.NodeCount,
			InstanceType: *config.Kubernetes.InstanceType,
			Version:      *config.Kubernetes.Version,
		},
		Kafka: platformv1.KafkaPlan{
			BrokerReplicas:     *config.Kafka.BrokerReplicas,
			ControllerReplicas: *config.Kafka.ControllerReplicas,
			BrokerStorageGB:    *config.Kafka.BrokerStorageGB,
			OperatorVersion:    *config.Kafka.OperatorVersion,
			SASLAuthentication: *config.Kafka.EnableSASLAuthentication,
			TLS:                *config.Kafka.EnableTLS,
		},

		MultiAZ:             *config.MultiAZ,
		DeletionProtection:  *config.DeletionProtection,
		BackupRetentionDays: *config.BackupRetentionDays,
		EncryptionAtRest:    *config.EncryptionAtRest,
	}

	if config.EnableRDS {
		plan.RDS = &platformv1.RDSPlan{
			Engine:              *config.RDS.Engine,
			InstanceClass:       *config.RDS.InstanceClass,
			AllocatedStorageGB:  *config.RDS.AllocatedStorageGB,
			MultiAZ:             *config.RDS.MultiAZ,
			BackupRetentionDays: *config.RDS.BackupRetentionDays,
			DeletionProtection:  plan.DeletionProtection,
		}
	}

	if config.EnableElastiCache {
		plan.ElastiCache = &platformv1.ElastiCachePlan{
			NodeType:         *config.ElastiCache.NodeType,
			Shards:           *config.ElastiCache.Shards,
			ReplicasPerShard: *config.ElastiCache.ReplicasPerShard,
			ClusterMode:      *config.ElastiCache.ClusterMode,
		}
	}

	if config.EnableEFS {
		plan.EFS = &platformv1.EFSPlan{
			ThroughputMode:   *config.EFS.ThroughputMode,
			ProvisionedMiBps: ptr.Deref(config.EFS.ProvisionedMiBps, 0),
			Encrypted:        plan.EncryptionAtRest,
		}
	}

	if config.EnableLoadBalancer {
		plan.LoadBalancer = &platformv1.LoadBalancerPlan{
			Scheme:             *config.LoadBalancer.Scheme,
			IdleTimeoutSeconds: *config.LoadBalancer.IdleTimeoutSeconds,
		}
	}

	if config.EnableDNS {
		plan.DNS = &platformv1.DNSPlan{
			Domain:             config.DNS.Domain,
			HostedZoneID:       ptr.Deref(config.DNS.HostedZoneID, ""),
			CertificateContact: config.OperatorEmail,
		}
	}

	if config.EnableSecretsManager {
		plan.SecretsManager = &platformv1.SecretsManagerPlan{
			RotationDays: *config.SecretsManager.RotationDays,
			KMSKeyAlias:  ptr.Deref(config.SecretsManager.KMSKeyAlias, ""),
		}
	}

	return plan
}

// natGatewayCount derives the number of NAT gateways: an explicit count
// wins, a single-NAT request collapses to one gateway, everything else
// gets one gateway per availability zone.
func natGatewayCount(network *platformv1.NetworkConfig) int32 {
	if network.NATGatewayCount != nil {
		return *network.NATGatewayCount
	}

	if ptr.Deref(network.SingleNATGateway, false) {
		return 1
	}

	return int32(len(network.AvailabilityZones))
}

// policyWarnings collects the advisory findings that are allowed but worth
// flagging to an operator. They attach to the plan instead of failing it.
func policyWarnings(config *platformv1.PlatformConfig) []platformv1.PolicyWarning {
	var warnings []platformv1.PolicyWarning

	if config.Environment != platformv1.TierDev && ptr.Deref(config.Network.SingleNATGateway, false) {
		warnings = append(warnings, platformv1.PolicyWarning{
			Field:   "network.singleNATGateway",
			Message: fmt.Sprintf("a single NAT gateway outside the %s tier removes zone redundancy for outbound traffic", platformv1.TierDev),
		})
	}

	if config.Environment == platformv1.TierProd && !*config.EncryptionAtRest {
		warnings = append(warnings, platformv1.PolicyWarning{
			Field:   "encryptionAtRest",
			Message: "encryption at rest is disabled in the prod tier",
		})
	}

	return warnings
}
