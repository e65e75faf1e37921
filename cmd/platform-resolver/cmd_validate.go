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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type ValidateOptions struct {
	Config string
}

func ValidateCommand(logger *logrus.Logger) *cobra.Command {
	opt := ValidateOptions{}

	cmd := &cobra.Command{
		Use:          "validate",
		Short:        "Validate a platform configuration without emitting a plan",
		Long:         "Runs the full resolution including all cross-field consistency checks and reports every violation, but discards the resulting plan",
		RunE:         ValidateFunc(logger, &opt),
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			if opt.Config == "" {
				opt.Config = os.Getenv("CONFIG_YAML")
			}
		},
	}

	cmd.PersistentFlags().StringVar(&opt.Config, "config", "", "path to the platform configuration file")

	return cmd
}

func ValidateFunc(logger *logrus.Logger, opt *ValidateOptions) cobraFuncE {
	return handleErrors(logger, func(cmd *cobra.Command, args []string) error {
		plan, err := resolvePlan(logger, opt.Config)
		if err != nil {
			return err
		}

		for _, warning := range plan.Warnings {
			logger.Warnf("%s: %s", warning.Field, warning.Message)
		}

		logger.Info("✅ The configuration is valid.")

		return nil
	})
}
