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

	"k8s.io/apimachinery/pkg/util/validation/field"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
)

// ValidateDeploymentPlan runs the cross-field consistency pass over a fully
// derived plan. The resolver calls this as its final step, so a plan that
// reaches the caller is guaranteed to satisfy every invariant here.
func ValidateDeploymentPlan(plan *platformv1.DeploymentPlan) field.ErrorList {
	allErrs := field.ErrorList{}

	if err := validateQuorumReplicas(&plan.Kafka.BrokerReplicas, field.NewPath("kafka", "brokerReplicas")); err != nil {
		allErrs = append(allErrs, err)
	}
	if err := validateQuorumReplicas(&plan.Kafka.ControllerReplicas, field.NewPath("kafka", "controllerReplicas")); err != nil {
		allErrs = append(allErrs, err)
	}

	if plan.Kafka.SASLAuthentication && plan.SecretsManager == nil {
		allErrs = append(allErrs, field.Required(field.NewPath("secretsManager"), "SASL authentication requires a secrets-manager sub-plan to store broker credentials"))
	}

	if plan.Kafka.TLS {
		if plan.DNS == nil {
			allErrs = append(allErrs, field.Required(field.NewPath("dns"), "TLS listeners require a DNS/certificate sub-plan"))
		} else if plan.DNS.Domain == "" {
			allErrs = append(allErrs, field.Required(field.NewPath("dns", "domain"), "TLS listeners require a broker domain"))
		}
	}

	if plan.ElastiCache != nil && plan.ElastiCache.ClusterMode && plan.ElastiCache.ReplicasPerShard < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("elastiCache", "replicasPerShard"), plan.ElastiCache.ReplicasPerShard, "cluster mode requires at least one replica per shard"))
	}

	if plan.EFS != nil && plan.EFS.ThroughputMode == platformv1.ThroughputModeProvisioned && plan.EFS.ProvisionedMiBps < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("efs", "provisionedMiBps"), plan.EFS.ProvisionedMiBps, "provisioned throughput mode requires a throughput value"))
	}

	if plan.Network.NATGatewayCount < 1 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("network", "natGatewayCount"), plan.Network.NATGatewayCount, "at least one NAT gateway is required for outbound traffic"))
	}
	if azs := int32(len(plan.Network.AvailabilityZones)); plan.Network.NATGatewayCount > azs {
		allErrs = append(allErrs, field.Invalid(field.NewPath("network", "natGatewayCount"), plan.Network.NATGatewayCount, fmt.Sprintf("cannot exceed the number of availability zones (%d)", azs)))
	}

	if plan.MultiAZ && len(plan.Network.AvailabilityZones) < 2 {
		allErrs = append(allErrs, field.Invalid(field.NewPath("network", "availabilityZones"), plan.Network.AvailabilityZones, "a multi-AZ deployment needs at least two availability zones"))
	}

	return allErrs
}
