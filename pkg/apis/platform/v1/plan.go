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

// DeploymentPlan is the fully resolved deployment configuration. Every
// field holds a concrete value; optional features appear as nil sub-plans
// and are omitted entirely when the plan is serialized, so the downstream
// provisioning layer cannot mistake "present with defaults" for "not
// requested". A DeploymentPlan is only ever produced in a fully valid
// state; partially resolved plans are never returned.
type DeploymentPlan struct {
	ClusterName string            `json:"clusterName"`
	Environment Tier              `json:"environment"`
	Region      string            `json:"region"`
	Tags        map[string]string `json:"tags,omitempty"`

	Network    NetworkPlan    `json:"network"`
	Kubernetes KubernetesPlan `json:"kubernetes"`
	Kafka      KafkaPlan      `json:"kafka"`

	MultiAZ             bool  `json:"multiAZ"`
	DeletionProtection  bool  `json:"deletionProtection"`
	BackupRetentionDays int32 `json:"backupRetentionDays"`
	EncryptionAtRest    bool  `json:"encryptionAtRest"`

	RDS            *RDSPlan            `json:"rds,omitempty"`
	ElastiCache    *ElastiCachePlan    `json:"elastiCache,omitempty"`
	EFS            *EFSPlan            `json:"efs,omitempty"`
	LoadBalancer   *LoadBalancerPlan   `json:"loadBalancer,omitempty"`
	DNS            *DNSPlan            `json:"dns,omitempty"`
	SecretsManager *SecretsManagerPlan `json:"secretsManager,omitempty"`

	// Warnings are non-fatal policy findings surfaced to the operator.
	// They never block resolution.
	Warnings []PolicyWarning `json:"warnings,omitempty"`
}

// PolicyWarning flags a notable but allowed configuration choice.
type PolicyWarning struct {
	// Field is the path of the offending configuration field.
	Field string `json:"field"`

	// Message explains the policy concern in operator-readable terms.
	Message string `json:"message"`
}

type NetworkPlan struct {
	VPCCIDR           string   `json:"vpcCIDR"`
	AvailabilityZones []string `json:"availabilityZones"`
	NATGatewayCount   int32    `json:"natGatewayCount"`
}

type KubernetesPlan struct {
	NodeCount    int32  `json:"nodeCount"`
	InstanceType string `json:"instanceType"`
	Version      string `json:"version"`
}

type KafkaPlan struct {
	BrokerReplicas     int32  `json:"brokerReplicas"`
	ControllerReplicas int32  `json:"controllerReplicas"`
	BrokerStorageGB    int32  `json:"brokerStorageGB"`
	OperatorVersion    string `json:"operatorVersion"`
	SASLAuthentication bool   `json:"saslAuthentication"`
	TLS                bool   `json:"tls"`
}

type RDSPlan struct {
	Engine              string `json:"engine"`
	InstanceClass       string `json:"instanceClass"`
	AllocatedStorageGB  int32  `json:"allocatedStorageGB"`
	MultiAZ             bool   `json:"multiAZ"`
	BackupRetentionDays int32  `json:"backupRetentionDays"`
	DeletionProtection  bool   `json:"deletionProtection"`
}

type ElastiCachePlan struct {
	NodeType         string `json:"nodeType"`
	Shards           int32  `json:"shards"`
	ReplicasPerShard int32  `json:"replicasPerShard"`
	ClusterMode      bool   `json:"clusterMode"`
}

type EFSPlan struct {
	ThroughputMode   string `json:"throughputMode"`
	ProvisionedMiBps int32  `json:"provisionedMiBps,omitempty"`
	Encrypted        bool   `json:"encrypted"`
}

type LoadBalancerPlan struct {
	Scheme             string `json:"scheme"`
	IdleTimeoutSeconds int32  `json:"idleTimeoutSeconds"`
}

type DNSPlan struct {
	Domain       string `json:"domain"`
	HostedZoneID string `json:"hostedZoneID,omitempty"`

	// CertificateContact is the address registered with the certificate
	// authority for expiry and incident notices.
	CertificateContact string `json:"certificateContact"`
}

type SecretsManagerPlan struct {
	RotationDays int32  `json:"rotationDays"`
	KMSKeyAlias  string `json:"kmsKeyAlias,omitempty"`
}
