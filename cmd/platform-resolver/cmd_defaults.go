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

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/defaulting"
)

func DefaultsCommand(logger *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "defaults [tier]",
		Short:        "Print the effective tier defaults",
		Long:         "Prints the baseline configuration per environment tier, including any overrides from --tier-defaults, as YAML",
		RunE:         DefaultsFunc(logger),
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
	}

	return cmd
}

func DefaultsFunc(logger *logrus.Logger) cobraFuncE {
	return handleErrors(logger, func(cmd *cobra.Command, args []string) error {
		table, err := defaulting.LoadTierDefaults(options.TierDefaultsFile)
		if err != nil {
			return err
		}

		var output any = table

		if len(args) == 1 {
			tier := platformv1.Tier(args[0])
			defaults, err := defaulting.DefaultsFor(table, tier)
			if err != nil {
				return err
			}
			output = defaults
		}

		encoded, err := yaml.Marshal(output)
		if err != nil {
			return fmt.Errorf("failed to encode tier defaults: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), string(encoded))

		return nil
	})
}
