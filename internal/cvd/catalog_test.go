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

package cvd

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestDefaultNames(t *testing.T) {
	want := []string{
		"protanomaly", "protanopia",
		"deuteranomaly", "deuteranopia",
		"tritanomaly", "tritanopia",
		"achromatomaly", "achromatopsia",
	}
	if got := Default().Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Default().Names() = %v, want %v", got, want)
	}
	if Default().Len() != len(want) {
		t.Errorf("Default().Len() = %d, want %d", Default().Len(), len(want))
	}
}

func TestDefaultTransforms(t *testing.T) {
	tests := []struct {
		in   string
		want map[string]string
	}{
		{
			in: "#ff0000",
			want: map[string]string{
				"protanomaly":   "#b8510f",
				"protanopia":    "#907f17",
				"deuteranomaly": "#c44d00",
				"deuteranopia":  "#a27900",
				"tritanomaly":   "#fe0a00",
				"tritanopia":    "#fd1000",
				"achromatomaly": "#7f2323",
				"achromatopsia": "#363636",
			},
		},
		{
			in: "#00ff00",
			want: map[string]string{
				"protanopia":    "#f9dc00",
				"deuteranopia":  "#ffd69a",
				"tritanopia":    "#76edff",
				"achromatopsia": "#b6b6b6",
			},
		},
		{
			in: "#336699",
			want: map[string]string{
				"protanopia":    "#506196",
				"deuteranopia":  "#44639a",
				"tritanomaly":   "#226b83",
				"achromatomaly": "#4f6174",
				"achromatopsia": "#5f5f5f",
			},
		},
		{
			in: "#d02020",
			want: map[string]string{
				"deuteranopia": "#88650b",
				"protanopia":   "#776b32",
			},
		},
		{
			in: "#208020",
			want: map[string]string{
				"deuteranopia": "#8c692b",
				"protanopia":   "#7d6f1b",
			},
		},
		{
			in: "#101010",
			want: map[string]string{
				"deuteranopia":  "#130f10",
				"achromatopsia": "#101010",
			},
		},
		{
			in: "#202020",
			want: map[string]string{
				"protanopia":   "#212020",
				"deuteranopia": "#241f20",
			},
		},
	}

	for _, tt := range tests {
		for name, want := range tt.want {
			t.Run(tt.in+"/"+name, func(t *testing.T) {
				got, err := Default().Apply(name, tt.in)
				if err != nil {
					t.Fatalf("Apply(%s, %s): %v", name, tt.in, err)
				}
				if got != want {
					t.Errorf("Apply(%s, %s) = %s, want %s", name, tt.in, got, want)
				}
			})
		}
	}
}

func TestExtremesAreFixedPoints(t *testing.T) {
	for _, name := range Default().Names() {
		for _, in := range []string{"#000000", "#ffffff"} {
			got, err := Default().Apply(name, in)
			if err != nil {
				t.Fatalf("Apply(%s, %s): %v", name, in, err)
			}
			if got != in {
				t.Errorf("Apply(%s, %s) = %s, want unchanged", name, in, got)
			}
		}
	}
}

func TestGreysKeepLightness(t *testing.T) {
	for v := 0; v < 256; v += 5 {
		in := colorful.Color{R: float64(v) / 255, G: float64(v) / 255, B: float64(v) / 255}
		wantL, _, _ := in.Lab()
		for _, name := range Default().Names() {
			got, err := Default().Apply(name, in.Hex())
			if err != nil {
				t.Fatalf("Apply(%s, %s): %v", name, in.Hex(), err)
			}
			out, err := colorful.Hex(got)
			if err != nil {
				t.Fatalf("Apply(%s, %s) = %q: %v", name, in.Hex(), got, err)
			}
			l, a, b := out.Lab()
			if math.Abs(l-wantL)*100 > 0.5 {
				t.Errorf("%s(%s) = %s, lightness %.2f, want %.2f", name, in.Hex(), got, l*100, wantL*100)
			}
			if c := math.Hypot(a, b) * 100; c > 15 {
				t.Errorf("%s(%s) = %s, chroma %.2f, want a near neutral grey", name, in.Hex(), got, c)
			}
		}
	}
}

func TestAchromatopsiaIsGrey(t *testing.T) {
	for _, in := range []string{"#ff0000", "#00ff00", "#0000ff", "#336699", "#c0ffee"} {
		got, _ := Default().Apply("achromatopsia", in)
		if got[1:3] != got[3:5] || got[3:5] != got[5:7] {
			t.Errorf("achromatopsia(%s) = %s, want a grey", in, got)
		}
	}
}

func TestTransformOutputIsHex(t *testing.T) {
	inputs := []string{"#123456", "#fedcba", "#808080", "#010101", "#fefefe", "#00ffff", "#ff00ff", "#ffff00"}
	for _, name := range Default().Names() {
		for _, in := range inputs {
			got, _ := Default().Apply(name, in)
			if len(got) != 7 || !strings.HasPrefix(got, "#") {
				t.Errorf("Apply(%s, %s) = %q, not a #rrggbb color", name, in, got)
			}
		}
	}
}

func TestTransformBadInput(t *testing.T) {
	tf, ok := Default().Lookup("deuteranopia")
	if !ok {
		t.Fatal("deuteranopia missing from default catalog")
	}
	if got := tf("not-a-color"); got != "" {
		t.Errorf("transform of bad input = %q, want empty", got)
	}
}

func TestApplyUnknown(t *testing.T) {
	_, err := Default().Apply("tetrachromat", "#ffffff")
	if !errors.Is(err, ErrUnknownDeficiency) {
		t.Fatalf("Apply unknown: got %v, want ErrUnknownDeficiency", err)
	}
	if !strings.Contains(err.Error(), "tetrachromat") {
		t.Errorf("error %q does not name the deficiency", err)
	}
	if _, ok := Default().Lookup("tetrachromat"); ok {
		t.Error("Lookup found a deficiency that does not exist")
	}
}

func TestNewCatalog(t *testing.T) {
	identity := func(hex string) string { return hex }

	c, err := NewCatalog(Deficiency{"b", identity}, Deficiency{"a", identity})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if got := c.Names(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("Names() = %v, want insertion order", got)
	}

	tests := []struct {
		name string
		defs []Deficiency
	}{
		{"duplicate", []Deficiency{{"a", identity}, {"a", identity}}},
		{"empty name", []Deficiency{{"", identity}}},
		{"nil transform", []Deficiency{{"a", nil}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewCatalog(tt.defs...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
