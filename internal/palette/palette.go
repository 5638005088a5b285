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
// Package palette checks every foreground/background pair of a design
// palette in one run.
package palette

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/ghchinoy/cvdcheck/internal/checker"
)

// ErrEmptyPalette is returned by Load when the file defines no pairs.
var ErrEmptyPalette = errors.New("palette has no pairs")

// Pair is one entry of a palette file.
type Pair struct {
	Name       string `mapstructure:"name" json:"name"`
	Foreground string `mapstructure:"foreground" json:"foreground"`
	Background string `mapstructure:"background" json:"background"`
	// Text enables the textContrast rule for this pair.
	Text bool `mapstructure:"text" json:"text"`
}

// Palette is a decoded palette file. Deficiencies and Skip, when set,
// override the base configuration passed to Lint.
type Palette struct {
	Path         string   `mapstructure:"-" json:"-"`
	Deficiencies []string `mapstructure:"deficiencies" json:"deficiencies,omitempty"`
	Skip         []string `mapstructure:"skip" json:"skip,omitempty"`
	Pairs        []Pair   `mapstructure:"pairs" json:"pairs"`
}

// Load reads a YAML, JSON or TOML palette, chosen by file extension.
func Load(path string) (*Palette, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading palette %s: %w", path, err)
	}

	p := &Palette{Path: path}
	if err := v.Unmarshal(p); err != nil {
		return nil, fmt.Errorf("decoding palette %s: %w", path, err)
	}
	if len(p.Pairs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyPalette)
	}
	for i := range p.Pairs {
		pair := &p.Pairs[i]
		if pair.Foreground == "" || pair.Background == "" {
			return nil, fmt.Errorf("%s: pair %d (%s) needs both foreground and background", path, i, pair.Name)
		}
		if pair.Name == "" {
			pair.Name = pair.Foreground + "/" + pair.Background
		}
	}
	return p, nil
}

// Result is the report for one palette pair.
type Result struct {
	Pair   Pair            `json:"pair"`
	Report *checker.Report `json:"report"`
}

// Failed reports whether any rule failed for this pair.
func (r Result) Failed() bool {
	return r.Report != nil && r.Report.HasFailures()
}

// Lint checks each pair in file order. Pairs without Text skip the
// textContrast rule. Under base.FailFast the first violation ends the run and
// is returned along with the results gathered so far.
func Lint(p *Palette, base checker.Config) ([]Result, error) {
	if len(p.Deficiencies) > 0 {
		base.Deficiencies = p.Deficiencies
	}
	if len(p.Skip) > 0 {
		base.SkipRules = append(append([]string(nil), base.SkipRules...), p.Skip...)
	}

	results := make([]Result, 0, len(p.Pairs))
	for _, pair := range p.Pairs {
		cfg := base
		if !pair.Text {
			cfg.SkipRules = append(append([]string(nil), base.SkipRules...), checker.RuleTextContrast)
		}
		c, err := checker.New(pair.Foreground, pair.Background, cfg)
		if err != nil {
			return results, fmt.Errorf("%s: %w", pair.Name, err)
		}
		report, err := c.Check()
		if err != nil {
			return results, fmt.Errorf("%s: %w", pair.Name, err)
		}
		results = append(results, Result{Pair: pair, Report: report})
	}
	return results, nil
}
