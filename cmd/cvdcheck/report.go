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
	"io"
	"strings"

	"github.com/ghchinoy/cvdcheck/internal/checker"
)

// writeReport renders r as text: one block per filter, then a summary.
func writeReport(w io.Writer, r *checker.Report) {
	width := nameWidth(r.Filters)
	for _, f := range r.Filters {
		fmt.Fprint(w, renderFilter(f, width))
	}
	fmt.Fprintln(w, renderSummary(r))
}

func nameWidth(filters []checker.FilterResult) int {
	width := 0
	for _, f := range filters {
		width = max(width, len(f.Deficiency))
	}
	return width
}

// renderFilter draws the simulated swatches of f, its metrics, and a
// warning line per failed rule.
func renderFilter(f checker.FilterResult, width int) string {
	var b strings.Builder
	hex := f.Metrics.Colors
	fmt.Fprintf(&b, "Checked %s %s %s  %s\n",
		StyleID.Render(fmt.Sprintf("%-*s", width+1, f.Deficiency+":")),
		swatch(hex[0]), swatch(hex[1]),
		StyleMuted.Render(hex[0]+" "+hex[1]))
	fmt.Fprintf(&b, "  %s\n", StyleMuted.Render(metricsLine(f.Metrics)))
	for _, id := range f.Failed() {
		fmt.Fprintf(&b, "  %s %s %s\n",
			StyleWarn.Render("Warning:"), f.Warnings[id].Description, StyleMuted.Render("("+id+")"))
	}
	return b.String()
}

func metricsLine(m checker.Metrics) string {
	ratio := fmt.Sprintf("ratio %.2f", m.RelativeRatio)
	if m.Degenerate {
		ratio = "ratio n/a (colors collapse)"
	}
	return fmt.Sprintf("distance %.2f  contrast %.2f:1  %s", m.AbsoluteDistance, m.AbsoluteContrast, ratio)
}

func renderSummary(r *checker.Report) string {
	failed := 0
	for _, f := range r.Filters {
		failed += len(f.Failed())
	}
	line := fmt.Sprintf("Simulated %d deficiencies: total distance %.2f, average %.2f",
		r.Meta.Count, r.Meta.Total, r.Meta.Average)
	if failed == 0 {
		return line + "\n" + StylePass.Render("No problems found")
	}
	noun := "warnings"
	if failed == 1 {
		noun = "warning"
	}
	return line + "\n" + StyleWarn.Render(fmt.Sprintf("%d %s", failed, noun))
}
