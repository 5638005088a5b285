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

package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrInvalidColor is the sentinel wrapped by every InvalidColorError.
var ErrInvalidColor = errors.New("invalid color")

// InvalidColorError reports a color spec that could not be parsed.
type InvalidColorError struct {
	Spec string
	Err  error
}

func (e *InvalidColorError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid color %q", e.Spec)
	}
	return fmt.Sprintf("invalid color %q: %v", e.Spec, e.Err)
}

// Unwrap lets errors.Is match ErrInvalidColor.
func (e *InvalidColorError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidColor}
	}
	return []error{ErrInvalidColor, e.Err}
}

var (
	hexRE  = regexp.MustCompile(`^#?([0-9a-f]{3}|[0-9a-f]{6})$`)
	funcRE = regexp.MustCompile(`^(rgba?|hsla?)\(\s*([^)]*)\)$`)
)

// Parse reads a color spec. Accepted forms are "#rgb", "#rrggbb" (the "#" is
// optional), SVG/CSS color names, rgb()/rgba() and hsl()/hsla(). Alpha is
// ignored.
func Parse(spec string) (Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return Color{}, &InvalidColorError{Spec: spec, Err: errors.New("empty color")}
	}

	if named, ok := colornames.Map[s]; ok {
		c, _ := colorful.MakeColor(named)
		return Color{c: c}, nil
	}

	if hexRE.MatchString(s) {
		if s[0] != '#' {
			s = "#" + s
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, &InvalidColorError{Spec: spec, Err: err}
		}
		return Color{c: c}, nil
	}

	if m := funcRE.FindStringSubmatch(s); m != nil {
		c, err := parseFunc(m[1], m[2])
		if err != nil {
			return Color{}, &InvalidColorError{Spec: spec, Err: err}
		}
		return c, nil
	}

	return Color{}, &InvalidColorError{Spec: spec, Err: errors.New("unknown color format")}
}

// MustParse is like Parse but panics on error.
func MustParse(spec string) Color {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// ParsePair parses two specs into a Pair.
func ParsePair(spec0, spec1 string) (Pair, error) {
	c0, err := Parse(spec0)
	if err != nil {
		return Pair{}, err
	}
	c1, err := Parse(spec1)
	if err != nil {
		return Pair{}, err
	}
	return Pair{c0, c1}, nil
}

func parseFunc(name, body string) (Color, error) {
	args := splitArgs(body)
	if len(args) != 3 && len(args) != 4 {
		return Color{}, fmt.Errorf("%s() takes 3 or 4 arguments, got %d", name, len(args))
	}
	if len(args) == 4 {
		if _, err := parseUnit(args[3], 1); err != nil {
			return Color{}, fmt.Errorf("alpha: %w", err)
		}
	}

	if strings.HasPrefix(name, "rgb") {
		var ch [3]float64
		for i := range ch {
			v, err := parseUnit(args[i], 255)
			if err != nil {
				return Color{}, fmt.Errorf("channel %d: %w", i, err)
			}
			ch[i] = v
		}
		return Color{c: colorful.Color{R: ch[0], G: ch[1], B: ch[2]}}, nil
	}

	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, fmt.Errorf("hue: %w", err)
	}
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return Color{}, fmt.Errorf("hue %s is not finite", args[0])
	}
	if !strings.HasSuffix(args[1], "%") || !strings.HasSuffix(args[2], "%") {
		return Color{}, errors.New("saturation and lightness must be percentages")
	}
	sat, err := parseUnit(args[1], 1)
	if err != nil {
		return Color{}, fmt.Errorf("saturation: %w", err)
	}
	light, err := parseUnit(args[2], 1)
	if err != nil {
		return Color{}, fmt.Errorf("lightness: %w", err)
	}
	h = mod360(h)
	return Color{c: colorful.Hsl(h, sat, light).Clamped()}, nil
}

// parseUnit reads either "NN%" or a plain number in [0, limit] and returns a
// value in [0, 1].
func parseUnit(s string, limit float64) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || v < 0 || v > 100 {
			return 0, fmt.Errorf("%s out of range", s)
		}
		return v / 100, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || v < 0 || v > limit {
		return 0, fmt.Errorf("%s out of range [0, %g]", s, limit)
	}
	return v / limit, nil
}

func splitArgs(body string) []string {
	body = strings.ReplaceAll(body, "/", " ")
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return fields
}

func mod360(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
