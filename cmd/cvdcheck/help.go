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
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	groupHeaderRE   = regexp.MustCompile(`(?m)^([A-Z][A-Za-z &]+:)[ \t]*$`)
	sectionHeaderRE = regexp.MustCompile(`(?m)^(Usage|Flags|Examples|Aliases|Available Commands|Global Flags):`)
	cmdLineRE       = regexp.MustCompile(`(?m)^(  )([a-z][a-z0-9]*(?:-[a-z0-9]+)*)(\s{2,})(.*)$`)
	flagLineRE      = regexp.MustCompile(`(?m)^(\s+)(-\w,\s+--[\w-]+|--[\w-]+)(\s+)(strings|string|int|duration|bool|float64)?(\s*.*)$`)
	defaultRE       = regexp.MustCompile(`(\(default[^)]*\))`)
)

// colorizedHelpFunc wraps Cobra's default help with semantic coloring.
func colorizedHelpFunc(cmd *cobra.Command, _ []string) {
	// Help runs before initConfig, so NO_COLOR is checked here as well.
	plain := noColor || os.Getenv("NO_COLOR") != ""

	var output strings.Builder
	if cmd.Long != "" {
		output.WriteString(cmd.Long)
		output.WriteString("\n\n")
	} else if cmd.Short != "" {
		output.WriteString(cmd.Short)
		output.WriteString("\n\n")
	}
	output.WriteString(cmd.UsageString())

	out := cmd.OutOrStdout()
	if plain {
		fmt.Fprint(out, output.String())
		return
	}
	fmt.Fprint(out, colorizeHelpOutput(output.String()))
}

// colorizeHelpOutput applies semantic colors to help text via regex.
func colorizeHelpOutput(help string) string {
	result := groupHeaderRE.ReplaceAllStringFunc(help, func(match string) string {
		return StyleAccent.Render(match)
	})

	result = sectionHeaderRE.ReplaceAllStringFunc(result, func(match string) string {
		return StyleAccent.Render(match)
	})

	// "  lint   Check every pair of a palette file"
	result = cmdLineRE.ReplaceAllStringFunc(result, func(match string) string {
		parts := cmdLineRE.FindStringSubmatch(match)
		if len(parts) != 5 {
			return match
		}
		return parts[1] + StyleCommand.Render(parts[2]) + parts[3] + parts[4]
	})

	// "  -d, --deficiencies strings   Deficiencies to simulate"
	result = flagLineRE.ReplaceAllStringFunc(result, func(match string) string {
		parts := flagLineRE.FindStringSubmatch(match)
		if len(parts) < 6 {
			return match
		}
		indent, flags, spacing, typeStr, desc := parts[1], parts[2], parts[3], parts[4], parts[5]
		if typeStr != "" {
			return indent + StyleCommand.Render(flags) + spacing + StyleMuted.Render(typeStr) + desc
		}
		return indent + StyleCommand.Render(flags) + spacing + desc
	})

	return defaultRE.ReplaceAllStringFunc(result, func(match string) string {
		return StyleMuted.Render(match)
	})
}
