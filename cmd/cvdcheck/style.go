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
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// UI semantic tokens. The status colors come from the Okabe-Ito palette:
// Pass, Warn and Fail stay apart under every simulated deficiency.
var (
	// Accent is for headers and section titles.
	StyleAccent = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{
		Light: "#cc79a7",
		Dark:  "#e0a3c6",
	})

	// Command is for command names and flags in help output.
	StyleCommand = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{
		Light: "#009e73",
		Dark:  "#35c99b",
	})

	// Muted is for metrics, defaults and other supplemental detail.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#6e6e6e",
		Dark:  "#a6a6a6",
	})

	// Pass marks a filter or palette pair with no failing rule.
	StylePass = lipgloss.NewStyle().Bold(true).Foreground(statusColors[0])

	// Warn is for failed rules in a normal run.
	StyleWarn = lipgloss.NewStyle().Bold(true).Foreground(statusColors[1])

	// Fail is for errors and fail-fast violations.
	StyleFail = lipgloss.NewStyle().Bold(true).Foreground(statusColors[2])

	// ID is for deficiency names and rule ids.
	StyleID = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#007f8c",
		Dark:  "#6fd0dc",
	})
)

// statusColors holds Pass, Warn and Fail in that order.
var statusColors = [3]lipgloss.AdaptiveColor{
	{Light: "#0072b2", Dark: "#56b4e9"},
	{Light: "#e69f00", Dark: "#f0e442"},
	{Light: "#d55e00", Dark: "#e66100"},
}

const swatchBlock = "██"

// swatch draws a block in the given hex color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(swatchBlock)
}

// applyColorProfile drops all ANSI styling when disabled is set.
func applyColorProfile(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
