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
	"bytes"
	"encoding/json"

	"github.com/ghchinoy/cvdcheck/internal/color"
)

// TrichromatName keys the unfiltered baseline in a Report.
const TrichromatName = "trichromat"

// Metrics describes one (possibly simulated) pair.
type Metrics struct {
	Colors           [2]string `json:"colors"`
	AbsoluteDistance float64   `json:"absoluteDistance"`
	AbsoluteContrast float64   `json:"absoluteContrast"`
	// RelativeRatio is the baseline distance over this distance; 1 for the
	// baseline itself.
	RelativeRatio float64 `json:"relativeRatio"`
	// Degenerate is set when RelativeRatio was capped because the distance
	// was zero.
	Degenerate bool `json:"degenerate,omitempty"`
}

// Warning is the outcome of one rule.
type Warning struct {
	Description string `json:"description"`
	Failed      bool   `json:"failed"`
}

// FilterResult is the evaluation of one deficiency, or of the baseline.
type FilterResult struct {
	Deficiency string             `json:"deficiency"`
	Colors     color.Pair         `json:"colors"`
	Metrics    Metrics            `json:"metrics"`
	Warnings   map[string]Warning `json:"warnings"`
}

// Failed lists the failing rule ids in rule order.
func (f FilterResult) Failed() []string {
	var ids []string
	for _, id := range RuleIDs() {
		if w, ok := f.Warnings[id]; ok && w.Failed {
			ids = append(ids, id)
		}
	}
	return ids
}

// Meta aggregates the simulated filters; the baseline is not counted.
type Meta struct {
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

// Report is the result of Checker.Check. Filters holds the baseline first,
// then each deficiency in configured order.
type Report struct {
	Filters []FilterResult
	Meta    Meta
	Options Summary
}

// Filter returns the result for a deficiency name, or for TrichromatName.
func (r *Report) Filter(name string) (FilterResult, bool) {
	for _, f := range r.Filters {
		if f.Deficiency == name {
			return f, true
		}
	}
	return FilterResult{}, false
}

// Names lists the filter names in report order.
func (r *Report) Names() []string {
	names := make([]string, len(r.Filters))
	for i, f := range r.Filters {
		names[i] = f.Deficiency
	}
	return names
}

// HasFailures reports whether any rule failed in any filter.
func (r *Report) HasFailures() bool {
	for _, f := range r.Filters {
		if len(f.Failed()) > 0 {
			return true
		}
	}
	return false
}

// MarshalJSON writes filters as an object keyed by name, keeping report
// order.
func (r Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"filters":{`)
	for i, f := range r.Filters {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Deficiency)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteString(`},"meta":`)
	meta, err := json.Marshal(r.Meta)
	if err != nil {
		return nil, err
	}
	buf.Write(meta)
	buf.WriteString(`,"options":`)
	opts, err := json.Marshal(r.Options)
	if err != nil {
		return nil, err
	}
	buf.Write(opts)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
