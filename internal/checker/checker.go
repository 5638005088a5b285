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

// Package checker evaluates whether a pair of colors stays distinguishable
// and readable under simulated color-vision deficiencies.
//
// A Checker holds two colors and a Config. Check measures the unfiltered
// pair, simulates each configured deficiency, evaluates the rule set against
// every filtered pair, and aggregates the distances into a Report.
package checker

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ghchinoy/cvdcheck/internal/color"
	"github.com/ghchinoy/cvdcheck/internal/cvd"
)

// Checker is immutable; Check may be called any number of times.
type Checker struct {
	colors color.Pair
	cfg    Config
	rules  []Rule
}

// New parses both color specs and validates cfg. Nothing is returned on
// error.
func New(spec0, spec1 string, cfg Config) (*Checker, error) {
	pair, err := color.ParsePair(spec0, spec1)
	if err != nil {
		return nil, err
	}
	return NewFromColors(pair, cfg)
}

// NewFromColors is New for already parsed colors.
func NewFromColors(pair color.Pair, cfg Config) (*Checker, error) {
	cfg = cfg.withDefaults()

	seen := make(map[string]bool, len(cfg.Deficiencies))
	deficiencies := cfg.Deficiencies[:0]
	for _, name := range cfg.Deficiencies {
		if _, ok := cfg.Catalog.Lookup(name); !ok || name == TrichromatName {
			return nil, &UnknownDeficiencyError{Name: name}
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		deficiencies = append(deficiencies, name)
	}
	cfg.Deficiencies = deficiencies

	skip := make(map[string]bool, len(cfg.SkipRules))
	for i, id := range cfg.SkipRules {
		canonical, ok := CanonicalRuleID(id)
		if !ok {
			return nil, &UnknownRuleError{ID: id}
		}
		cfg.SkipRules[i] = canonical
		skip[canonical] = true
	}
	slices.Sort(cfg.SkipRules)
	cfg.SkipRules = slices.Compact(cfg.SkipRules)

	var rules []Rule
	for _, r := range Rules(cfg.Thresholds) {
		if !skip[r.ID] {
			rules = append(rules, r)
		}
	}

	return &Checker{colors: pair, cfg: cfg, rules: rules}, nil
}

// Colors returns the unfiltered pair.
func (c *Checker) Colors() color.Pair {
	return c.colors
}

// Config returns a copy of the resolved configuration.
func (c *Checker) Config() Config {
	cfg := c.cfg
	cfg.Deficiencies = slices.Clone(cfg.Deficiencies)
	cfg.SkipRules = slices.Clone(cfg.SkipRules)
	return cfg
}

// Rules returns the active rules, skipped ones removed.
func (c *Checker) Rules() []Rule {
	return slices.Clone(c.rules)
}

// As returns a Checker for the pair as seen with the named deficiency.
func (c *Checker) As(deficiency string) (*Checker, error) {
	pair, err := Simulate(c.cfg.Catalog, c.colors, deficiency)
	if err != nil {
		return nil, err
	}
	return &Checker{colors: pair, cfg: c.cfg, rules: c.rules}, nil
}

// Simulate runs both colors of pair through the named transform.
func Simulate(catalog *cvd.Catalog, pair color.Pair, deficiency string) (color.Pair, error) {
	transform, ok := catalog.Lookup(deficiency)
	if !ok {
		return color.Pair{}, &UnknownDeficiencyError{Name: deficiency}
	}
	var out color.Pair
	for i, c := range pair {
		filtered, err := color.Parse(transform(c.Hex()))
		if err != nil {
			return color.Pair{}, fmt.Errorf("%s transform of %s: %w", deficiency, c.Hex(), err)
		}
		out[i] = filtered
	}
	return out, nil
}

// Measure computes the absolute metrics of a pair. RelativeRatio is 1, as
// for a baseline. Contrast is always taken as Contrast(pair[0], pair[1]).
func Measure(pair color.Pair) Metrics {
	return Metrics{
		Colors:           pair.Hex(),
		AbsoluteDistance: color.Distance(pair[0], pair[1]),
		AbsoluteContrast: color.Contrast(pair[0], pair[1]),
		RelativeRatio:    1.0,
	}
}

// relativeRatio is baseline/filtered, bounded by limit. A filtered distance
// of (near) zero yields limit and degenerate=true.
func relativeRatio(baseline, filtered, limit float64) (ratio float64, degenerate bool) {
	if filtered <= degenerateDistance {
		return limit, true
	}
	ratio = baseline / filtered
	if ratio > limit {
		ratio = limit
	}
	return ratio, false
}

func (c *Checker) evaluate(name string, pair color.Pair, m Metrics) FilterResult {
	warnings := make(map[string]Warning, len(c.rules))
	for _, r := range c.rules {
		warnings[r.ID] = Warning{Description: r.Description, Failed: r.Evaluate(m)}
	}
	return FilterResult{
		Deficiency: name,
		Colors:     pair,
		Metrics:    m,
		Warnings:   warnings,
	}
}

// violation returns the first failing rule of res as an error, in rule
// order.
func (c *Checker) violation(res FilterResult) error {
	for _, r := range c.rules {
		if res.Warnings[r.ID].Failed {
			return &ContrastViolation{
				Deficiency:  res.Deficiency,
				RuleID:      r.ID,
				Description: r.Description,
				Original:    c.colors,
				Filtered:    res.Colors,
			}
		}
	}
	return nil
}

// Results yields the baseline result, then one result per deficiency. It
// stops after yielding an error: a simulation failure, a
// *DegenerateMetricError under DegenerateError, or a *ContrastViolation in
// fail-fast mode.
func (c *Checker) Results() iter.Seq2[FilterResult, error] {
	return func(yield func(FilterResult, error) bool) {
		baseline := Measure(c.colors)
		res := c.evaluate(TrichromatName, c.colors, baseline)
		if c.cfg.FailFast {
			if err := c.violation(res); err != nil {
				yield(FilterResult{}, err)
				return
			}
		}
		if !yield(res, nil) {
			return
		}

		for _, name := range c.cfg.Deficiencies {
			pair, err := Simulate(c.cfg.Catalog, c.colors, name)
			if err != nil {
				yield(FilterResult{}, err)
				return
			}
			m := Measure(pair)
			ratio, degenerate := relativeRatio(baseline.AbsoluteDistance, m.AbsoluteDistance, c.cfg.RatioCap)
			if degenerate && c.cfg.Degenerate == DegenerateError {
				yield(FilterResult{}, &DegenerateMetricError{Deficiency: name, Distance: m.AbsoluteDistance})
				return
			}
			m.RelativeRatio = ratio
			m.Degenerate = degenerate

			res := c.evaluate(name, pair, m)
			if c.cfg.FailFast {
				if err := c.violation(res); err != nil {
					yield(FilterResult{}, err)
					return
				}
			}
			if !yield(res, nil) {
				return
			}
		}
	}
}

// Check evaluates every filter and returns a fresh Report.
func (c *Checker) Check() (*Report, error) {
	report := &Report{
		Filters: make([]FilterResult, 0, len(c.cfg.Deficiencies)+1),
		Options: Summary{
			Deficiencies: slices.Clone(c.cfg.Deficiencies),
			SkipRules:    slices.Clone(c.cfg.SkipRules),
			FailFast:     c.cfg.FailFast,
			Thresholds:   c.cfg.Thresholds,
		},
	}
	if report.Options.SkipRules == nil {
		report.Options.SkipRules = []string{}
	}

	for res, err := range c.Results() {
		if err != nil {
			return nil, err
		}
		if len(report.Filters) > 0 {
			report.Meta.Total += res.Metrics.AbsoluteDistance
			report.Meta.Count++
		}
		report.Filters = append(report.Filters, res)
	}
	if report.Meta.Count > 0 {
		report.Meta.Average = report.Meta.Total / float64(report.Meta.Count)
	}
	return report, nil
}
