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
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ghchinoy/cvdcheck/internal/color"
)

// confusionLine describes the copunctal point of a dichromacy and the line
// in CIE xy along which its simulated colors fall.
type confusionLine struct {
	x, y    float64 // copunctal point
	m, yint float64 // slope and y intercept of the projection line
}

var (
	protan = confusionLine{x: 0.7465, y: 0.2535, m: 1.273463, yint: -0.073894}
	deutan = confusionLine{x: 1.4, y: -0.4, m: 0.968437, yint: 0.003331}
	tritan = confusionLine{x: 0.1748, y: 0.0, m: 0.062921, yint: 0.292119}
)

// D65 white point chromaticity, used to find the neutral grey of a given
// luminance.
const (
	whiteX = 0.312713
	whiteY = 0.329016
	whiteZ = 0.358271
)

// Anomalous trichromats see the simulated color blended with the real one
// at this weight.
const anomalyWeight = 1.75

func anomalize(sim, orig colorful.Color) colorful.Color {
	n := anomalyWeight + 1
	return colorful.Color{
		R: (anomalyWeight*sim.R + orig.R) / n,
		G: (anomalyWeight*sim.G + orig.G) / n,
		B: (anomalyWeight*sim.B + orig.B) / n,
	}
}

// achroma maps a color to its luma grey.
func achroma(in colorful.Color) colorful.Color {
	z := in.R*0.212656 + in.G*0.715158 + in.B*0.072186
	return colorful.Color{R: z, G: z, B: z}
}

// dichroma projects in onto the confusion line of a dichromacy, keeping its
// luminance. Colors with no usable chromaticity (black, or a point on the
// copunctal axis) are returned unchanged.
func dichroma(in colorful.Color, line confusionLine) colorful.Color {
	X, Y, Z := colorful.LinearRgbToXyz(in.LinearRgb())

	n := X + Y + Z
	if n == 0 || Y == 0 {
		return in
	}
	cx, cy := X/n, Y/n

	// confusion line through the source color and the copunctal point
	slope := (cy - line.y) / (cx - line.x)
	yi := cy - cx*slope

	// intersection with the projection line
	dx := (line.yint - yi) / (slope - line.m)
	dy := slope*dx + yi
	if dy == 0 || math.IsNaN(dx) || math.IsNaN(dy) || math.IsInf(dx, 0) {
		return in
	}

	sX := dx * Y / dy
	sZ := (1 - (dx + dy)) * Y / dy
	sR, sG, sB := colorful.XyzToLinearRgb(sX, Y, sZ)

	// direction toward the neutral grey of the same luminance
	dR, dG, dB := colorful.XyzToLinearRgb(whiteX*Y/whiteY-sX, 0, whiteZ*Y/whiteY-sZ)

	// shift just enough to bring every channel into gamut
	adjust := math.Max(fit(sR, dR), math.Max(fit(sG, dG), fit(sB, dB)))
	return colorful.LinearRgb(
		unit(sR+adjust*dR),
		unit(sG+adjust*dG),
		unit(sB+adjust*dB),
	)
}

// fit is the fraction of d that carries v to the gamut edge on its side,
// or 0 when that fraction falls outside 0..1.
func fit(v, d float64) float64 {
	if d == 0 {
		return 0
	}
	target := 1.0
	if v < 0 {
		target = 0
	}
	f := (target - v) / d
	if math.IsNaN(f) || f < 0 || f > 1 {
		return 0
	}
	return f
}

func unit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}

// simulation builds a Transform from a per-color model.
func simulation(model func(colorful.Color) colorful.Color, anomalous bool) Transform {
	return func(hex string) string {
		c, err := color.Parse(hex)
		if err != nil {
			return ""
		}
		in := c.Colorful()
		out := model(in)
		if anomalous {
			out = anomalize(out, in)
		}
		return color.FromColorful(out).Hex()
	}
}

func dichromacy(line confusionLine) func(colorful.Color) colorful.Color {
	return func(in colorful.Color) colorful.Color { return dichroma(in, line) }
}
