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
package palette

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ghchinoy/cvdcheck/internal/checker"
)

const brandYAML = `
deficiencies: [protanopia, deuteranopia, achromatopsia]
pairs:
  - name: body
    foreground: "#336699"
    background: white
    text: true
  - name: status
    foreground: "#d02020"
    background: "#208020"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	p, err := Load(writeFile(t, "brand.yaml", brandYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(p.Pairs) != 2 {
		t.Fatalf("got %d pairs, want 2", len(p.Pairs))
	}
	if p.Pairs[0].Name != "body" || !p.Pairs[0].Text || p.Pairs[0].Background != "white" {
		t.Errorf("first pair = %+v", p.Pairs[0])
	}
	if p.Pairs[1].Text {
		t.Error("second pair should default to text: false")
	}
	if len(p.Deficiencies) != 3 || p.Deficiencies[2] != "achromatopsia" {
		t.Errorf("Deficiencies = %v", p.Deficiencies)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "p.json", `{"pairs": [{"foreground": "#000", "background": "#fff"}]}`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := p.Pairs[0].Name; got != "#000/#fff" {
		t.Errorf("unnamed pair = %q, want #000/#fff", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		is      error
	}{
		{"no pairs", "empty.yaml", "deficiencies: [protanopia]\n", ErrEmptyPalette},
		{"missing background", "half.yaml", "pairs:\n  - foreground: red\n", nil},
		{"malformed", "bad.json", "{pairs: ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("Load succeeded, want error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Load error = %v, want %v", err, tt.is)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestLint(t *testing.T) {
	p, err := Load(writeFile(t, "brand.yaml", brandYAML))
	if err != nil {
		t.Fatal(err)
	}
	results, err := Lint(p, checker.DefaultConfig())
	if err != nil {
		t.Fatalf("Lint: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}

	body, status := results[0], results[1]
	if body.Failed() {
		t.Errorf("body pair failed")
	}
	if got := body.Report.Names(); len(got) != 4 {
		t.Errorf("body filters = %v, want trichromat plus three", got)
	}
	if _, ok := body.Report.Filters[0].Warnings[checker.RuleTextContrast]; !ok {
		t.Error("text pair is missing the textContrast rule")
	}

	if !status.Failed() {
		t.Error("isoluminant red/green status pair passed")
	}
	for _, f := range status.Report.Filters {
		if _, ok := f.Warnings[checker.RuleTextContrast]; ok {
			t.Errorf("%s: non-text pair evaluated textContrast", f.Deficiency)
		}
	}
	deut, _ := status.Report.Filter("deuteranopia")
	if !deut.Warnings[checker.RuleInformationLoss].Failed {
		t.Error("status pair should lose information under deuteranopia")
	}
}

func TestLintFailFast(t *testing.T) {
	p, err := Load(writeFile(t, "brand.yaml", brandYAML))
	if err != nil {
		t.Fatal(err)
	}
	cfg := checker.DefaultConfig()
	cfg.FailFast = true
	results, err := Lint(p, cfg)

	var v *checker.ContrastViolation
	if !errors.As(err, &v) {
		t.Fatalf("Lint error = %v, want a violation", err)
	}
	if v.Deficiency != "protanopia" {
		t.Errorf("violation under %s, want protanopia", v.Deficiency)
	}
	if len(results) != 1 || results[0].Pair.Name != "body" {
		t.Errorf("results before the violation = %+v", results)
	}
}

func TestLintUnknownDeficiency(t *testing.T) {
	p := &Palette{
		Deficiencies: []string{"tetrachromacy"},
		Pairs:        []Pair{{Name: "x", Foreground: "#000", Background: "#fff"}},
	}
	if _, err := Lint(p, checker.DefaultConfig()); !errors.Is(err, checker.ErrUnknownDeficiency) {
		t.Errorf("Lint error = %v, want ErrUnknownDeficiency", err)
	}
}

func TestWatch(t *testing.T) {
	path := writeFile(t, "brand.yaml", brandYAML)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func() error {
			select {
			case changed <- struct{}{}:
			default:
			}
			return nil
		}, func(err error) { t.Logf("watch: %v", err) })
	}()

	// The watcher starts asynchronously; keep touching the file until it
	// notices.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-changed:
			break loop
		case <-tick.C:
			if err := os.WriteFile(path, []byte(brandYAML), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no change notification")
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "brand.yaml")
	if err := Watch(context.Background(), path, 0, nil, nil); err == nil {
		t.Error("Watch on a missing directory succeeded")
	}
}
