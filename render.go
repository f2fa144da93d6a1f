// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errorbars

import (
	"image"

	"cogentcore.org/core/colors"
)

// Painter is the stroking subset of the framework's paint context
// needed to draw an error-bar path. Coordinates are in the item's
// local (data) space; the owning scene graph applies any further
// transform.
type Painter interface {
	// SetStroke sets the stroke source for subsequent path strokes.
	SetStroke(clr image.Image)

	// MoveTo starts a new subpath at the given point.
	MoveTo(x, y float32)

	// LineTo adds a line from the current point to the given point.
	LineTo(x, y float32)

	// Stroke strokes the accumulated path.
	Stroke()
}

// Settings is the read-only rendering configuration injected into
// [Item.Render], supplying defaults for anything an item does not
// specify itself.
type Settings struct {
	// Foreground is the stroke source used for items with no pen.
	Foreground image.Image
}

// Defaults sets default settings values.
func (st *Settings) Defaults() {
	st.Foreground = colors.Uniform(colors.Black)
}

// Pen returns the stroke source for the item: its own pen if one has
// been set, and otherwise the settings foreground. The pen is not
// interpreted here; it goes to the painter verbatim.
func (it *Item) Pen(st *Settings) image.Image {
	if it.opts.Pen.Valid && it.opts.Pen.Value != nil {
		return it.opts.Pen.Value
	}
	if st != nil {
		return st.Foreground
	}
	return nil
}

// Render strokes the item's path using the given painter, rebuilding
// the path first if it is stale. Settings may be nil when the item has
// its own pen.
func (it *Item) Render(pc Painter, st *Settings) {
	p := it.Path()
	if len(p) == 0 {
		return
	}
	pc.SetStroke(it.Pen(st))
	for _, sg := range p {
		pc.MoveTo(float32(sg.Start.X), float32(sg.Start.Y))
		pc.LineTo(float32(sg.End.X), float32(sg.End.Y))
	}
	pc.Stroke()
}
