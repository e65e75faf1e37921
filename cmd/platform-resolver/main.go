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
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/log"
	platformversion "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/version/platform"
)

// Options are the global flags shared by all subcommands.
type Options struct {
	Verbose          bool
	LogFormat        log.Format
	FeatureGates     string
	TierDefaultsFile string
}

var options = Options{
	LogFormat: log.FormatConsole,
}

func main() {
	logger := log.NewLogrus()
	versions := platformversion.NewDefaultVersions()

	rootCmd := &cobra.Command{
		Use:           "platform-resolver",
		Short:         "Resolves an environment configuration into a deployment plan for the Kafka platform",
		Version:       versions.Platform,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if options.Verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	pFlags := rootCmd.PersistentFlags()
	pFlags.BoolVarP(&options.Verbose, "verbose", "v", false, "enable more verbose output")
	pFlags.Var(&options.LogFormat, "log-format", fmt.Sprintf("output format for resolver logs, one of %v", log.AvailableFormats))
	pFlags.StringVar(&options.FeatureGates, "feature-gates", "", "comma separated key=value pairs of policy feature gates (e.g. StrictNATPolicy=true)")
	pFlags.StringVar(&options.TierDefaultsFile, "tier-defaults", "", "YAML file with overrides for the built-in tier defaults")

	rootCmd.AddCommand(
		ResolveCommand(logger),
		ValidateCommand(logger),
		DefaultsCommand(logger),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
