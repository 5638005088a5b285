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
	"errors"
	"fmt"

	"github.com/ghchinoy/cvdcheck/internal/color"
	"github.com/ghchinoy/cvdcheck/internal/cvd"
)

// Sentinel errors for errors.Is. Invalid colors match color.ErrInvalidColor.
var (
	ErrUnknownDeficiency = cvd.ErrUnknownDeficiency
	ErrUnknownRule       = errors.New("unknown rule")
	ErrDegenerateMetric  = errors.New("degenerate metric")
	ErrContrastViolation = errors.New("contrast violation")
)

// UnknownDeficiencyError names a deficiency missing from the catalog.
type UnknownDeficiencyError struct {
	Name string
}

func (e *UnknownDeficiencyError) Error() string {
	return fmt.Sprintf("unknown deficiency %q", e.Name)
}

func (e *UnknownDeficiencyError) Unwrap() error {
	return ErrUnknownDeficiency
}

// UnknownRuleError names a rule id that does not exist.
type UnknownRuleError struct {
	ID string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("unknown rule %q", e.ID)
}

func (e *UnknownRuleError) Unwrap() error {
	return ErrUnknownRule
}

// DegenerateMetricError is returned under DegenerateError when a simulated
// pair has no measurable distance.
type DegenerateMetricError struct {
	Deficiency string
	Distance   float64
}

func (e *DegenerateMetricError) Error() string {
	return fmt.Sprintf("%s: relative ratio undefined, filtered distance is %g", e.Deficiency, e.Distance)
}

func (e *DegenerateMetricError) Unwrap() error {
	return ErrDegenerateMetric
}

// ContrastViolation is the fail-fast form of a failing rule.
type ContrastViolation struct {
	Deficiency  string
	RuleID      string
	Description string
	Original    color.Pair
	Filtered    color.Pair
}

func (e *ContrastViolation) Error() string {
	return fmt.Sprintf("%s (%s %s -> %s %s): %s",
		e.Deficiency,
		e.Original[0].Hex(), e.Original[1].Hex(),
		e.Filtered[0].Hex(), e.Filtered[1].Hex(),
		e.Description)
}

func (e *ContrastViolation) Unwrap() error {
	return ErrContrastViolation
}
