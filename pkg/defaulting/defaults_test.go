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
	"os"
	"path/filepath"
	"testing"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
)

func TestTierDefaultsCompleteness(t *testing.T) {
	table := NewTierDefaults()

	for _, tier := range []platformv1.Tier{platformv1.TierDev, platformv1.TierStaging, platformv1.TierProd} {
		defaults, err := DefaultsFor(table, tier)
		if err != nil {
			t.Fatalf("no defaults for tier %s: %v", tier, err)
		}

		if defaults.Region == "" || defaults.VPCCIDR == "" || defaults.InstanceType == "" {
			t.Errorf("tier %s has incomplete base defaults: %+v", tier, defaults)
		}
		if defaults.BrokerReplicas < 3 || defaults.BrokerReplicas%2 == 0 {
			t.Errorf("tier %s default broker count %d violates the quorum rule", tier, defaults.BrokerReplicas)
		}
		if defaults.ControllerReplicas < 3 || defaults.ControllerReplicas%2 == 0 {
			t.Errorf("tier %s default controller count %d violates the quorum rule", tier, defaults.ControllerReplicas)
		}
		if defaults.RDS.InstanceClass == "" || defaults.ElastiCache.NodeType == "" {
			t.Errorf("tier %s has incomplete feature defaults: %+v", tier, defaults)
		}
	}
}

// A higher tier must never default to a less durable configuration than a
// lower one.
func TestTierEscalationMonotonicity(t *testing.T) {
	table := NewTierDefaults()

	dev := table[platformv1.TierDev]
	staging := table[platformv1.TierStaging]
	prod := table[platformv1.TierProd]

	ascending := func(name string, values ...int32) {
		for i := 1; i < len(values); i++ {
			if values[i] < values[i-1] {
				t.Errorf("%s must not decrease from tier to tier, got %v", name, values)
				return
			}
		}
	}

	ascending("backupRetentionDays", dev.BackupRetentionDays, staging.BackupRetentionDays, prod.BackupRetentionDays)
	ascending("nodeCount", dev.NodeCount, staging.NodeCount, prod.NodeCount)
	ascending("brokerReplicas", dev.BrokerReplicas, staging.BrokerReplicas, prod.BrokerReplicas)
	ascending("brokerStorageGB", dev.BrokerStorageGB, staging.BrokerStorageGB, prod.BrokerStorageGB)
	ascending("rds.allocatedStorageGB", dev.RDS.AllocatedStorageGB, staging.RDS.AllocatedStorageGB, prod.RDS.AllocatedStorageGB)

	if dev.DeletionProtection || dev.MultiAZ {
		t.Error("dev must not default to prod-grade durability settings")
	}
	if !prod.DeletionProtection || !prod.MultiAZ || !prod.EncryptionAtRest {
		t.Error("prod must default to deletion protection, multi-AZ and encryption at rest")
	}
}

func TestDefaultsForUnknownTier(t *testing.T) {
	if _, err := DefaultsFor(NewTierDefaults(), "qa"); err == nil {
		t.Fatal("expected an error for an unknown tier")
	}
}

func TestLoadTierDefaultsOverlay(t *testing.T) {
	overlay := filepath.Join(t.TempDir(), "defaults.yaml")
	content := `
prod:
  nodeCount: 9
  instanceType: m5.4xlarge
`
	if err := os.WriteFile(overlay, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write overlay file: %v", err)
	}

	table, err := LoadTierDefaults(overlay)
	if err != nil {
		t.Fatalf("failed to load overlay: %v", err)
	}

	prod := table[platformv1.TierProd]
	if prod.NodeCount != 9 {
		t.Errorf("expected overridden node count 9, got %d", prod.NodeCount)
	}
	if prod.InstanceType != "m5.4xlarge" {
		t.Errorf("expected overridden instance type, got %q", prod.InstanceType)
	}

	// fields absent from the overlay keep the built-in baseline
	if prod.BrokerReplicas != builtinTierDefaults[platformv1.TierProd].BrokerReplicas {
		t.Errorf("unrelated fields must keep the baseline, got broker count %d", prod.BrokerReplicas)
	}
	if dev := table[platformv1.TierDev]; dev.NodeCount != builtinTierDefaults[platformv1.TierDev].NodeCount {
		t.Errorf("unrelated tiers must keep the baseline, got dev node count %d", dev.NodeCount)
	}
}

func TestLoadTierDefaultsRejectsUnknownFields(t *testing.T) {
	overlay := filepath.Join(t.TempDir(), "defaults.yaml")
	content := `
prod:
  nodeCout: 9
`
	if err := os.WriteFile(overlay, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write overlay file: %v", err)
	}

	if _, err := LoadTierDefaults(overlay); err == nil {
		t.Fatal("expected an error for a misspelled field")
	}
}

func TestLoadTierDefaultsWithoutFile(t *testing.T) {
	table, err := LoadTierDefaults("")
	if err != nil {
		t.Fatalf("expected the built-in table, got error: %v", err)
	}
	if len(table) != len(builtinTierDefaults) {
		t.Fatalf("expected %d tiers, got %d", len(builtinTierDefaults), len(table))
	}
}
