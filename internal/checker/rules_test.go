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
	"strings"
	"testing"

	"github.com/ghchinoy/cvdcheck/internal/color"
)

func TestRulesBoundaries(t *testing.T) {
	rules := Rules(Thresholds{})
	byID := make(map[string]Rule)
	for _, r := range rules {
		byID[r.ID] = r
	}

	tests := []struct {
		rule string
		m    Metrics
		fail bool
	}{
		{RuleInformationLoss, Metrics{RelativeRatio: 5.0}, true},
		{RuleInformationLoss, Metrics{RelativeRatio: 4.999}, false},
		{RuleIndistinguishable, Metrics{AbsoluteDistance: 2.0}, true},
		{RuleIndistinguishable, Metrics{AbsoluteDistance: 2.001}, false},
		{RuleTextContrast, Metrics{AbsoluteContrast: 4.5}, false},
		{RuleTextContrast, Metrics{AbsoluteContrast: 4.499}, true},
	}
	for _, tt := range tests {
		if got := byID[tt.rule].Evaluate(tt.m); got != tt.fail {
			t.Errorf("%s(%+v) = %v, want %v", tt.rule, tt.m, got, tt.fail)
		}
	}
}

func TestThresholdsZeroMeansDefault(t *testing.T) {
	indistinguishable := func(th Thresholds) Rule {
		for _, r := range Rules(th) {
			if r.ID == RuleIndistinguishable {
				return r
			}
		}
		t.Fatal("no indistinguishable rule")
		return Rule{}
	}

	if !indistinguishable(Thresholds{Indistinguishable: 0}).Evaluate(Metrics{AbsoluteDistance: 1}) {
		t.Error("zero Indistinguishable did not fall back to the default")
	}
	exact := indistinguishable(Thresholds{Indistinguishable: 1e-9})
	if exact.Evaluate(Metrics{AbsoluteDistance: 1}) {
		t.Error("1e-9 threshold failed a distance of 1")
	}
	if !exact.Evaluate(Metrics{AbsoluteDistance: 0}) {
		t.Error("1e-9 threshold passed a collapsed pair")
	}
}

func TestCanonicalRuleID(t *testing.T) {
	tests := []struct {
		in, want string
		ok       bool
	}{
		{"informationLoss", RuleInformationLoss, true},
		{"textContrast", RuleTextContrast, true},
		{"lowContrast", RuleTextContrast, true},
		{"TextContrast", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CanonicalRuleID(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CanonicalRuleID(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCheckerRulesSkipped(t *testing.T) {
	c, err := New("#000", "#fff", Config{SkipRules: []string{"lowContrast", "textContrast"}})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range c.Rules() {
		if r.ID == RuleTextContrast {
			t.Error("textContrast still active")
		}
	}
	if got := c.Config().SkipRules; len(got) != 1 || got[0] != RuleTextContrast {
		t.Errorf("SkipRules = %v, want [textContrast]", got)
	}
}

func TestErrorMessages(t *testing.T) {
	pair := color.Pair{color.MustParse("#d02020"), color.MustParse("#208020")}
	v := &ContrastViolation{
		Deficiency:  "deuteranopia",
		RuleID:      RuleInformationLoss,
		Description: "Colors are much closer than with full color vision",
		Original:    pair,
		Filtered:    pair,
	}
	for _, want := range []string{"deuteranopia", "#d02020", "#208020"} {
		if !strings.Contains(v.Error(), want) {
			t.Errorf("violation %q lacks %q", v.Error(), want)
		}
	}
	if !errors.Is(v, ErrContrastViolation) {
		t.Error("violation does not match ErrContrastViolation")
	}
	if !errors.Is(&UnknownDeficiencyError{Name: "x"}, ErrUnknownDeficiency) {
		t.Error("UnknownDeficiencyError does not match ErrUnknownDeficiency")
	}
	if !strings.Contains((&UnknownRuleError{ID: "prettiness"}).Error(), "prettiness") {
		t.Error("UnknownRuleError does not name the id")
	}
}
