// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errorbars

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// XY is a point in data coordinates.
type XY struct {
	X, Y float64
}

// Segment is one stroked line of the error-bar glyph, from Start to End
// in data coordinates.
type Segment struct {
	Start, End XY
}

// Path is the ordered sequence of disjoint segments forming the full
// error-bar glyph for the current data set.
type Path []Segment

// BoundingRect returns the axis-aligned bounding box of the path.
// An empty path yields [math32.B2Empty].
func (p Path) BoundingRect() math32.Box2 {
	bb := math32.B2Empty()
	for _, sg := range p {
		bb.ExpandByPoint(math32.Vec2(float32(sg.Start.X), float32(sg.Start.Y)))
		bb.ExpandByPoint(math32.Vec2(float32(sg.End.X), float32(sg.End.Y)))
	}
	return bb
}

// UpdateRange expands the given x and y ranges to include the path.
func (p Path) UpdateRange(xr, yr *minmax.F64) {
	for _, sg := range p {
		xr.FitValInRange(sg.Start.X)
		xr.FitValInRange(sg.End.X)
		yr.FitValInRange(sg.Start.Y)
		yr.FitValInRange(sg.End.Y)
	}
}
