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

package log

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format describes the encoding of the log output.
type Format string

var _ pflag.Value = new(Format)

const (
	FormatJSON    Format = "JSON"
	FormatConsole Format = "Console"
)

// AvailableFormats lists the valid values for the --log-format flag.
var AvailableFormats = []Format{FormatJSON, FormatConsole}

func (f *Format) String() string {
	return string(*f)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	for _, available := range AvailableFormats {
		if strings.EqualFold(s, string(available)) {
			*f = available
			return nil
		}
	}

	return fmt.Errorf("invalid log format %q, must be one of %v", s, AvailableFormats)
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "string"
}

// NewDefault creates a non-debug console logger.
func NewDefault() *zap.Logger {
	return New(false, FormatConsole)
}

// New creates a zap logger; debug enables the per-field defaulting output
// of the resolver.
func New(debug bool, format Format) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	cfg := zap.Config{
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Level:             zap.NewAtomicLevelAt(zapcore.InfoLevel),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		EncoderConfig:     encoderConfig,
		Encoding:          "json",
	}

	if format == FormatConsole {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		// the config above is static and known-good
		panic(fmt.Sprintf("failed to create logger: %v", err))
	}

	return logger
}
