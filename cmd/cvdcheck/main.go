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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ghchinoy/cvdcheck/internal/checker"
	"github.com/ghchinoy/cvdcheck/internal/cvd"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	color0          string
	color1          string
	textMode        bool
	skipTests       []string
	deficiencyNames []string
	failFast        bool
	jsonOutput      bool
	useTUI          bool
	noColor         bool

	rootCmd = &cobra.Command{
		Use:   "cvdcheck [color0] [color1]",
		Short: "Check a color pair against color-vision deficiencies",
		Long: `cvdcheck simulates how two colors look to people with color-vision
deficiencies and reports pairs that become too close to tell apart, or too
low in contrast to read as text on one another.`,
		Example: `  cvdcheck "#d02020" "#208020"
  cvdcheck --color0 navy --color1 white --text
  cvdcheck red green --skipTests indistinguishable --json`,
		Args:          cobra.MaximumNArgs(2),
		RunE:          runCheck,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

var errNeedTwoColors = errors.New("need two colors: pass them as arguments or with --color0 and --color1")

// resolveColors fills the color slots from the flags first, then from the
// positional arguments in order.
func resolveColors(flag0, flag1 string, args []string) (string, string, error) {
	slots := [2]string{flag0, flag1}
	for _, arg := range args {
		switch {
		case slots[0] == "":
			slots[0] = arg
		case slots[1] == "":
			slots[1] = arg
		default:
			return "", "", fmt.Errorf("too many colors: %q", arg)
		}
	}
	if slots[0] == "" || slots[1] == "" {
		return "", "", errNeedTwoColors
	}
	return slots[0], slots[1], nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	spec0, spec1, err := resolveColors(color0, color1, args)
	if err != nil {
		return err
	}
	cfg, err := checkerConfig()
	if err != nil {
		return err
	}
	c, err := checker.New(spec0, spec1, cfg)
	if err != nil {
		return err
	}

	if useTUI && !jsonOutput {
		return runTUI(c)
	}

	report, err := c.Check()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, report)
	}
	writeReport(out, report)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func runDeficiencies(cmd *cobra.Command, _ []string) error {
	names := cvd.Default().Names()
	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, names)
	}
	for _, name := range names {
		fmt.Fprintln(out, StyleID.Render(name))
	}
	return nil
}

func runVersion(cmd *cobra.Command, _ []string) {
	fmt.Fprintf(cmd.OutOrStdout(), "cvdcheck %s\n", version)
}

func main() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.config/cvdcheck/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&textMode, "text", false, "Check the pair as text on a background (enables textContrast)")
	rootCmd.PersistentFlags().StringSliceVar(&skipTests, "skipTests", nil, "Rule ids to skip (comma separated or repeated)")
	rootCmd.PersistentFlags().StringSliceVarP(&deficiencyNames, "deficiencies", "d", nil, "Deficiencies to simulate (default all)")
	rootCmd.PersistentFlags().BoolVar(&failFast, "failFast", false, "Stop with an error at the first failing rule")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print the raw report as JSON")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors in the output")
	rootCmd.Flags().StringVarP(&color0, "color0", "0", "", "First color (foreground)")
	rootCmd.Flags().StringVarP(&color1, "color1", "1", "", "Second color (background)")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "Show results interactively as each deficiency is simulated")

	rootCmd.SetHelpFunc(colorizedHelpFunc)

	var lintCmd = &cobra.Command{
		Use:   "lint [palette-file]",
		Short: "Check every pair of a palette file",
		Long: `Check every foreground/background pair listed in a YAML, JSON or TOML
palette file. Pairs marked "text: true" are also checked for text contrast.
Exits non-zero when any pair fails a rule.`,
		Args: cobra.ExactArgs(1),
		RunE: runLint,
	}
	lintCmd.Flags().BoolVarP(&watchPalette, "watch", "w", false, "Re-run whenever the palette file changes")

	var deficienciesCmd = &cobra.Command{
		Use:     "deficiencies",
		Aliases: []string{"list"},
		Short:   "List the simulated deficiencies",
		Args:    cobra.NoArgs,
		RunE:    runDeficiencies,
	}

	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "View the active configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cvdcheck",
		Run:   runVersion,
	}

	rootCmd.AddCommand(lintCmd, deficienciesCmd, configCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", StyleFail.Render("Error:"), err)
		os.Exit(1)
	}
}

// splitList flattens comma separated entries, as found in environment
// variables and config files, and drops blanks.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
