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

package checker

import (
	"slices"

	"github.com/ghchinoy/cvdcheck/internal/cvd"
)

// Default rule thresholds. Distances are CIEDE2000 ΔE, contrast is the WCAG
// ratio.
const (
	DefaultInformationLoss   = 5.0
	DefaultIndistinguishable = 2.0
	DefaultTextContrast      = 4.5

	// DefaultRatioCap stands in for an infinite relative ratio when a
	// simulated pair collapses to the same color.
	DefaultRatioCap = 1e6
)

// degenerateDistance is the filtered distance at or below which the
// relative ratio is not computed by division.
const degenerateDistance = 1e-9

// Thresholds configures the default rule set. Zero fields take the defaults,
// so a threshold of exactly zero cannot be expressed. To flag only pairs that
// collapse completely, set Indistinguishable to a tiny positive value such as
// 1e-9.
type Thresholds struct {
	InformationLoss   float64 `json:"informationLoss" mapstructure:"information_loss"`
	Indistinguishable float64 `json:"indistinguishable" mapstructure:"indistinguishable"`
	TextContrast      float64 `json:"textContrast" mapstructure:"text_contrast"`
}

// DefaultThresholds returns the standard thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		InformationLoss:   DefaultInformationLoss,
		Indistinguishable: DefaultIndistinguishable,
		TextContrast:      DefaultTextContrast,
	}
}

func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.InformationLoss == 0 {
		t.InformationLoss = d.InformationLoss
	}
	if t.Indistinguishable == 0 {
		t.Indistinguishable = d.Indistinguishable
	}
	if t.TextContrast == 0 {
		t.TextContrast = d.TextContrast
	}
	return t
}

// DegeneratePolicy selects what happens when a simulated pair has (near)
// zero distance and the relative ratio would divide by zero.
type DegeneratePolicy int

const (
	// DegenerateCap reports the ratio as Config.RatioCap and marks the
	// metrics as degenerate.
	DegenerateCap DegeneratePolicy = iota
	// DegenerateError stops the check with a *DegenerateMetricError.
	DegenerateError
)

// Config is the immutable configuration of a Checker.
type Config struct {
	// Deficiencies to simulate, in report order. Empty means every entry of
	// the catalog in catalog order.
	Deficiencies []string
	// SkipRules lists rule ids that are not evaluated.
	SkipRules []string
	// FailFast turns the first failing rule into a *ContrastViolation.
	FailFast bool

	Thresholds Thresholds
	Degenerate DegeneratePolicy
	// RatioCap replaces the relative ratio of a degenerate pair and bounds
	// every other ratio. Zero means DefaultRatioCap.
	RatioCap float64

	// Catalog supplies the deficiency transforms. Nil means cvd.Default().
	Catalog *cvd.Catalog
}

// DefaultConfig checks every default deficiency against every rule.
func DefaultConfig() Config {
	return Config{
		Thresholds: DefaultThresholds(),
		RatioCap:   DefaultRatioCap,
		Catalog:    cvd.Default(),
	}
}

func (c Config) withDefaults() Config {
	c.Thresholds = c.Thresholds.withDefaults()
	if c.RatioCap <= 0 {
		c.RatioCap = DefaultRatioCap
	}
	if c.Catalog == nil {
		c.Catalog = cvd.Default()
	}
	if len(c.Deficiencies) == 0 {
		c.Deficiencies = c.Catalog.Names()
	}
	c.Deficiencies = slices.Clone(c.Deficiencies)
	c.SkipRules = slices.Clone(c.SkipRules)
	return c
}

// Summary is the part of the configuration echoed in a Report.
type Summary struct {
	Deficiencies []string   `json:"deficiencies"`
	SkipRules    []string   `json:"skipTests"`
	FailFast     bool       `json:"failFast"`
	Thresholds   Thresholds `json:"thresholds"`
}
