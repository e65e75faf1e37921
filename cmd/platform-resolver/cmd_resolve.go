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
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/resolver"
)

type ResolveOptions struct {
	Config string
	Output string
}

func ResolveCommand(logger *logrus.Logger) *cobra.Command {
	opt := ResolveOptions{
		Output: "json",
	}

	cmd := &cobra.Command{
		Use:          "resolve",
		Short:        "Resolve a platform configuration into a deployment plan",
		Long:         "Validates the given configuration, layers the tier defaults under it and prints the fully resolved deployment plan for the provisioning layer",
		RunE:         ResolveFunc(logger, &opt),
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			if opt.Config == "" {
				opt.Config = os.Getenv("CONFIG_YAML")
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opt.Config, "config", "", "path to the platform configuration file")
	cmd.PersistentFlags().StringVarP(&opt.Output, "output", "o", opt.Output, "output encoding for the plan (json or yaml)")

	return cmd
}

func ResolveFunc(logger *logrus.Logger, opt *ResolveOptions) cobraFuncE {
	return handleErrors(logger, func(cmd *cobra.Command, args []string) error {
		plan, err := resolvePlan(logger, opt.Config)
		if err != nil {
			return err
		}

		for _, warning := range plan.Warnings {
			logger.Warnf("%s: %s", warning.Field, warning.Message)
		}

		var encoded []byte
		switch opt.Output {
		case "json":
			encoded, err = json.MarshalIndent(plan, "", "  ")
		case "yaml":
			encoded, err = yaml.Marshal(plan)
		default:
			return fmt.Errorf("invalid output encoding %q, must be json or yaml", opt.Output)
		}
		if err != nil {
			return fmt.Errorf("failed to encode the deployment plan: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

		return nil
	})
}

// resolvePlan is shared between the resolve and validate commands.
func resolvePlan(logger *logrus.Logger, configFile string) (*platformv1.DeploymentPlan, error) {
	if configFile == "" {
		return nil, errors.New("no configuration file given (--config or $CONFIG_YAML)")
	}

	config, err := loadPlatformConfig(configFile)
	if err != nil {
		return nil, err
	}

	res, err := newResolver(logger)
	if err != nil {
		return nil, err
	}

	plan, err := res.Resolve(config)
	if err != nil {
		var resolutionErr *resolver.ResolutionError
		if errors.As(err, &resolutionErr) {
			logResolutionErrors(logger, resolutionErr)
			return nil, errors.New("the configuration cannot be resolved")
		}

		return nil, err
	}

	return plan, nil
}
