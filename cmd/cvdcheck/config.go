// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghchinoy/cvdcheck/internal/checker"
)

var cfgFile string

func initConfig() {
	// A .env file beside the project may carry CVDCHECK_* variables.
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find config directory per XDG spec
		configDir, err := os.UserConfigDir()
		if err != nil {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				configDir = filepath.Join(homeDir, ".config")
			}
		}

		if configDir != "" {
			viper.AddConfigPath(filepath.Join(configDir, "cvdcheck"))

			// os.UserConfigDir is ~/Library/Application Support on macOS; also
			// look in ~/.config/cvdcheck.
			if homeDir, err := os.UserHomeDir(); err == nil {
				viper.AddConfigPath(filepath.Join(homeDir, ".config", "cvdcheck"))
			}

			viper.SetConfigType("yaml")
			viper.SetConfigName("config")
		}
	}

	viper.SetEnvPrefix("CVDCHECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && cfgFile != "" {
		log.Fatalf("Error reading config %s: %v", cfgFile, err)
	}

	// Explicitly passed flags win over the config file and environment.
	if fromConfig("text", "text") {
		textMode = viper.GetBool("text")
	}
	if fromConfig("failFast", "fail_fast") {
		failFast = viper.GetBool("fail_fast")
	}
	if fromConfig("skipTests", "skip_tests") {
		skipTests = viper.GetStringSlice("skip_tests")
	}
	if fromConfig("deficiencies", "deficiencies") {
		deficiencyNames = viper.GetStringSlice("deficiencies")
	}
	if fromConfig("no-color", "no_color") {
		noColor = viper.GetBool("no_color")
	}
	if os.Getenv("NO_COLOR") != "" {
		noColor = true
	}
	applyColorProfile(noColor)
}

// fromConfig reports whether the value for flag should come from the
// config key, which is the case when the flag was not passed explicitly.
func fromConfig(flag, key string) bool {
	f := rootCmd.Flag(flag)
	return (f == nil || !f.Changed) && viper.IsSet(key)
}

// checkerConfig turns the resolved flags and config keys into a
// checker.Config. Without --text the textContrast rule is skipped.
func checkerConfig() (checker.Config, error) {
	cfg := checker.DefaultConfig()
	cfg.Deficiencies = splitList(deficiencyNames)
	cfg.SkipRules = splitList(skipTests)
	cfg.FailFast = failFast
	if !textMode {
		cfg.SkipRules = append(cfg.SkipRules, checker.RuleTextContrast)
	}

	thresholds := map[string]*float64{
		"thresholds.information_loss":  &cfg.Thresholds.InformationLoss,
		"thresholds.indistinguishable": &cfg.Thresholds.Indistinguishable,
		"thresholds.text_contrast":     &cfg.Thresholds.TextContrast,
	}
	for key, dst := range thresholds {
		if !viper.IsSet(key) {
			continue
		}
		v := viper.GetFloat64(key)
		if v <= 0 {
			return checker.Config{}, fmt.Errorf("%s must be positive, got %v", key, viper.Get(key))
		}
		*dst = v
	}
	return cfg, nil
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := checkerConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	used := viper.ConfigFileUsed()
	if used == "" {
		used = "<none>"
	}
	deficiencies := "all"
	if len(cfg.Deficiencies) > 0 {
		deficiencies = strings.Join(cfg.Deficiencies, ", ")
	}
	skipped := "<none>"
	if len(cfg.SkipRules) > 0 {
		skipped = strings.Join(cfg.SkipRules, ", ")
	}

	fmt.Fprintf(out, "Config File Used: %s\n", used)
	fmt.Fprintf(out, "Deficiencies: %s\n", deficiencies)
	fmt.Fprintf(out, "Skipped Rules: %s\n", skipped)
	fmt.Fprintf(out, "Fail Fast: %v\n", cfg.FailFast)
	fmt.Fprintf(out, "Thresholds: informationLoss >= %g, indistinguishable <= %g, textContrast < %g\n",
		cfg.Thresholds.InformationLoss, cfg.Thresholds.Indistinguishable, cfg.Thresholds.TextContrast)
	return nil
}
