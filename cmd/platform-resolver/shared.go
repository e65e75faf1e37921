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
	"sigs.k8s.io/yaml"

	platformv1 "github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/apis/platform/v1"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/defaulting"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/features"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/log"
	"github.com/jastiranjeeth-tech/kafka-eks-mq-openshift-rosa-sub002/pkg/resolver"
)

type cobraFuncE func(cmd *cobra.Command, args []string) error

func handleErrors(logger *logrus.Logger, action cobraFuncE) cobraFuncE {
	return func(cmd *cobra.Command, args []string) error {
		err := action(cmd, args)
		if err != nil {
			logger.Errorf("❌ Operation failed: %v.", err)
		}

		return err
	}
}

func loadPlatformConfig(filename string) (*platformv1.PlatformConfig, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config := &platformv1.PlatformConfig{}
	if err := yaml.UnmarshalStrict(content, config); err != nil {
		return nil, fmt.Errorf("%s is not a valid platform configuration: %w", filename, err)
	}

	return config, nil
}

// newResolver assembles a resolver from the global flags: feature gates,
// the optional tier defaults overlay and a zap logger whose debug level
// follows --verbose.
func newResolver(logger *logrus.Logger) (*resolver.Resolver, error) {
	gates, err := features.NewFeatures(options.FeatureGates)
	if err != nil {
		return nil, fmt.Errorf("invalid --feature-gates: %w", err)
	}

	tierDefaults, err := defaulting.LoadTierDefaults(options.TierDefaultsFile)
	if err != nil {
		return nil, err
	}

	zapLogger := log.New(options.Verbose, options.LogFormat).Sugar()

	return resolver.New(tierDefaults, gates, zapLogger), nil
}

// logResolutionErrors prints every violation of a failed resolution, so a
// single invocation reports everything an operator has to fix.
func logResolutionErrors(logger *logrus.Logger, err *resolver.ResolutionError) {
	for _, fieldErr := range err.Errors {
		logger.Errorf("Invalid configuration: %v", fieldErr)
	}
}
