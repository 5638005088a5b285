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

// Rule ids.
const (
	RuleInformationLoss   = "informationLoss"
	RuleIndistinguishable = "indistinguishable"
	RuleTextContrast      = "textContrast"
)

// ruleAliases maps older ids onto current ones.
var ruleAliases = map[string]string{
	"lowContrast": RuleTextContrast,
}

// Rule is a named check over the metrics of one filtered pair. Evaluate
// reports true when the pair FAILS the rule.
type Rule struct {
	ID          string
	Description string
	Evaluate    func(Metrics) bool
}

// Rules returns the standard rule set for the given thresholds.
func Rules(t Thresholds) []Rule {
	t = t.withDefaults()
	return []Rule{
		{
			ID:          RuleInformationLoss,
			Description: "Colors are much closer than with full color vision",
			Evaluate: func(m Metrics) bool {
				return m.RelativeRatio >= t.InformationLoss
			},
		},
		{
			ID:          RuleIndistinguishable,
			Description: "Colors are functionally indistinguishable",
			Evaluate: func(m Metrics) bool {
				return m.AbsoluteDistance <= t.Indistinguishable
			},
		},
		{
			ID:          RuleTextContrast,
			Description: "Colors are unreadable as text/background",
			Evaluate: func(m Metrics) bool {
				return m.AbsoluteContrast < t.TextContrast
			},
		},
	}
}

// RuleIDs lists the rule ids in evaluation order.
func RuleIDs() []string {
	return []string{RuleInformationLoss, RuleIndistinguishable, RuleTextContrast}
}

// CanonicalRuleID resolves aliases and reports whether id names a rule.
func CanonicalRuleID(id string) (string, bool) {
	if alias, ok := ruleAliases[id]; ok {
		return alias, true
	}
	for _, known := range RuleIDs() {
		if id == known {
			return id, true
		}
	}
	return "", false
}
