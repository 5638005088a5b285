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
	"context"
	"fmt"
)

// Element is a rendered page element, typically backed by a browser driver.
type Element interface {
	CSSProperty(ctx context.Context, name string) (string, error)
}

// ElementColors reads the computed text and background colors of el.
func ElementColors(ctx context.Context, el Element) (fg, bg string, err error) {
	fg, err = el.CSSProperty(ctx, "color")
	if err != nil {
		return "", "", fmt.Errorf("reading color: %w", err)
	}
	bg, err = el.CSSProperty(ctx, "background-color")
	if err != nil {
		return "", "", fmt.Errorf("reading background-color: %w", err)
	}
	return fg, bg, nil
}

// CheckElement checks the text color of el against its background.
func CheckElement(ctx context.Context, el Element, cfg Config) (*Report, error) {
	fg, bg, err := ElementColors(ctx, el)
	if err != nil {
		return nil, err
	}
	c, err := New(fg, bg, cfg)
	if err != nil {
		return nil, err
	}
	return c.Check()
}
