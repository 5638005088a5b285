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

// Package color is the canonical color representation used by the checker.
// It parses user supplied color specs, serializes them back to hex, and
// computes the perceptual distance and WCAG contrast between two colors.
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an immutable sRGB color.
type Color struct {
	c colorful.Color
}

// Pair is an ordered pair of colors, usually foreground then background.
type Pair [2]Color

// FromRGB255 builds a Color from 8-bit channels.
func FromRGB255(r, g, b uint8) Color {
	return Color{c: colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}}
}

// FromColorful wraps a go-colorful value, clamped into the sRGB gamut.
func FromColorful(c colorful.Color) Color {
	return Color{c: c.Clamped()}
}

// Colorful returns the underlying go-colorful value.
func (c Color) Colorful() colorful.Color {
	return c.c
}

// Hex returns the canonical lowercase "#rrggbb" serialization.
func (c Color) Hex() string {
	return c.c.Clamped().Hex()
}

// RGB255 returns the 8-bit channels.
func (c Color) RGB255() (r, g, b uint8) {
	return c.c.Clamped().RGB255()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText encodes the color as its hex string.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Hex returns both colors of the pair as hex strings.
func (p Pair) Hex() [2]string {
	return [2]string{p[0].Hex(), p[1].Hex()}
}

// Distance is the CIEDE2000 color difference on the usual 0..100 lightness
// scale, averaged over both argument orders so that it is exactly symmetric.
func Distance(a, b Color) float64 {
	if a.c == b.c {
		return 0
	}
	ab := a.c.DistanceCIEDE2000(b.c)
	ba := b.c.DistanceCIEDE2000(a.c)
	return (ab + ba) / 2.0 * 100.0
}

// Luminance is the WCAG relative luminance, 0 for black and 1 for white.
func Luminance(c Color) float64 {
	r, g, b := c.c.Clamped().LinearRgb()
	return r*0.2126 + g*0.7152 + b*0.0722
}

// Contrast is the WCAG contrast ratio between a and b, in [1, 21].
// Callers pass the pair in order (foreground, background); the ratio puts
// the lighter color on top so the order does not change the result.
func Contrast(a, b Color) float64 {
	al := Luminance(a)
	bl := Luminance(b)
	lighter := math.Max(al, bl)
	darker := math.Min(al, bl)
	return (lighter + 0.05) / (darker + 0.05)
}
