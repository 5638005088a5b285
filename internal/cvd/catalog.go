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

// Package cvd holds the catalog of color-vision-deficiency simulations.
//
// Each simulation is an opaque function from a hex color to the hex color a
// viewer with that deficiency would perceive. The catalog keeps them in a
// fixed order so that reports list deficiencies deterministically.
package cvd

import (
	"errors"
	"fmt"
)

// ErrUnknownDeficiency is returned when a name is not in the catalog.
var ErrUnknownDeficiency = errors.New("unknown deficiency")

// Transform maps a "#rrggbb" color to its simulated appearance. It returns
// an empty string when the input cannot be read.
type Transform func(hex string) string

// Deficiency is a named simulation.
type Deficiency struct {
	Name      string
	Transform Transform
}

// Catalog is an ordered, immutable set of deficiencies.
type Catalog struct {
	defs  []Deficiency
	index map[string]int
}

// NewCatalog builds a catalog in the given order.
func NewCatalog(defs ...Deficiency) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]Deficiency, 0, len(defs)),
		index: make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if d.Name == "" {
			return nil, errors.New("deficiency name is empty")
		}
		if d.Transform == nil {
			return nil, fmt.Errorf("deficiency %q has no transform", d.Name)
		}
		if _, dup := c.index[d.Name]; dup {
			return nil, fmt.Errorf("deficiency %q registered twice", d.Name)
		}
		c.index[d.Name] = len(c.defs)
		c.defs = append(c.defs, d)
	}
	return c, nil
}

var defaultCatalog = mustCatalog(
	Deficiency{"protanomaly", simulation(dichromacy(protan), true)},
	Deficiency{"protanopia", simulation(dichromacy(protan), false)},
	Deficiency{"deuteranomaly", simulation(dichromacy(deutan), true)},
	Deficiency{"deuteranopia", simulation(dichromacy(deutan), false)},
	Deficiency{"tritanomaly", simulation(dichromacy(tritan), true)},
	Deficiency{"tritanopia", simulation(dichromacy(tritan), false)},
	Deficiency{"achromatomaly", simulation(achroma, true)},
	Deficiency{"achromatopsia", simulation(achroma, false)},
)

// Default returns the built-in catalog: the anomalous and dichromatic forms
// of protan, deutan and tritan vision, then achromatomaly and achromatopsia.
func Default() *Catalog {
	return defaultCatalog
}

func mustCatalog(defs ...Deficiency) *Catalog {
	c, err := NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the deficiency names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.defs))
	for i, d := range c.defs {
		names[i] = d.Name
	}
	return names
}

// Len is the number of deficiencies.
func (c *Catalog) Len() int {
	return len(c.defs)
}

// Lookup finds the transform for name.
func (c *Catalog) Lookup(name string) (Transform, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.defs[i].Transform, true
}

// Apply runs the named transform on hex.
func (c *Catalog) Apply(name, hex string) (string, error) {
	t, ok := c.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDeficiency, name)
	}
	return t(hex), nil
}
