// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errorbars provides an error-bar plot item: a scene-graph
// decoration that renders vertical and horizontal uncertainty bars,
// with optional perpendicular end caps, around a set of data points,
// under linear or base-10 log axis transforms.
package errorbars

import (
	"math"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
)

// Notifier receives fire-and-forget change notifications from an [Item],
// so that the owning scene graph can invalidate cached geometry bounds
// and recompute any view auto-ranging that depends on the item.
type Notifier interface {
	// GeometryChanged indicates the item's geometry bounds may have changed.
	GeometryChanged()

	// ViewBoundsChanged indicates view auto-ranging depending on the
	// item's bounds must be recomputed.
	ViewBoundsChanged()
}

// Item is an error-bar plot item. It owns a set of [Options] updated
// incrementally via [Item.SetData], and a derived [Path] of line
// segments that is invalidated by every data change and lazily rebuilt
// on the next [Item.Path], [Item.BoundingRect], or [Item.Render] call.
//
// Item is not safe for concurrent use; it is designed for a
// single-threaded render / event loop.
type Item struct {
	opts Options

	// path is the cached glyph geometry, valid only when built is true.
	path  Path
	built bool

	notifier Notifier
}

// New returns a new error-bar item with the given initial options,
// which may be nil for an empty item.
func New(opts *Options) *Item {
	it := &Item{}
	it.SetData(opts)
	return it
}

// SetNotifier sets the receiver for geometry and view-bounds change
// notifications. A nil notifier (the default) disables notification.
func (it *Item) SetNotifier(nf Notifier) {
	it.notifier = nf
}

// SetData merges the set fields of opts into the item's stored options,
// leaving unset fields at their previous values, and invalidates the
// cached path. The path is not rebuilt here: malformed data surfaces as
// a logged error during the next rebuild, not as a failure of SetData.
func (it *Item) SetData(opts *Options) {
	it.opts.merge(opts)
	it.invalidate()
}

// SetLogMode sets the per-axis base-10 log transformation flags.
// It is a no-op if the given mode is already in effect; otherwise it
// invalidates the cached path exactly as [Item.SetData] does.
func (it *Item) SetLogMode(x, y bool) {
	lm := LogMode{X: x, Y: y}
	if lm == it.opts.LogMode.Value { // unset Value is the default mode, both off
		it.opts.LogMode.Set(lm)
		return
	}
	it.opts.LogMode.Set(lm)
	it.invalidate()
}

// invalidate drops the cached path and notifies the owner.
func (it *Item) invalidate() {
	it.path = nil
	it.built = false
	if it.notifier != nil {
		it.notifier.GeometryChanged()
		it.notifier.ViewBoundsChanged()
	}
}

// Path returns the error-bar glyph geometry for the current options,
// rebuilding it if a mutating call has occurred since the last build.
// Without intervening mutations, repeated calls return the same path.
func (it *Item) Path() Path {
	if !it.built {
		it.buildPath()
	}
	return it.path
}

// BoundingRect returns the axis-aligned bounding box of the current
// path, building it first if needed. An item with no bars yields
// [math32.B2Empty].
func (it *Item) BoundingRect() math32.Box2 {
	return it.Path().BoundingRect()
}

// UpdateRange expands the given x and y ranges to include the current
// path, for view auto-ranging.
func (it *Item) UpdateRange(xr, yr *minmax.F64) {
	it.Path().UpdateRange(xr, yr)
}

// buildPath recomputes the path from the current options. It is a pure
// function of the option set: no coordinates yields an empty path, and
// inconsistent data lengths abort to an empty path with a logged
// [ErrShapeMismatch] rather than emitting corrupt geometry.
func (it *Item) buildPath() {
	it.path = nil
	it.built = true

	if !it.opts.X.Valid || !it.opts.Y.Valid {
		return
	}
	x, y := it.opts.X.Value, it.opts.Y.Value
	if x == nil || y == nil {
		return
	}
	if err := it.opts.CheckLengths(); err != nil {
		errors.Log(err)
		return
	}

	lm := it.opts.LogMode.Value
	beam := it.opts.Beam.Value
	hasBeam := it.opts.Beam.Valid && beam > 0

	it.buildVertical(x, y, lm, beam, hasBeam)
	it.buildHorizontal(x, y, lm, beam, hasBeam)
}

// buildVertical emits the vertical bars and their horizontal beam caps.
func (it *Item) buildVertical(x, y Values, lm LogMode, beam float64, hasBeam bool) {
	height, top, bottom := it.opts.Height, it.opts.Top, it.opts.Bottom
	hasHeight, hasTop, hasBottom := hasField(height), hasField(top), hasField(bottom)
	if !hasHeight && !hasTop && !hasBottom {
		return
	}

	n := len(x)
	rx := make([]float64, 0, n)
	ry1 := make([]float64, 0, n)
	ry2 := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y1, y2 := y[i], y[i]
		if hasHeight {
			h := broadcast(height.Value, i)
			y1 = y[i] - h/2
			y2 = y[i] + h/2
		} else {
			if hasBottom {
				y1 = y[i] - broadcast(bottom.Value, i)
			}
			if hasTop {
				y2 = y[i] + broadcast(top.Value, i)
			}
		}
		tx := logValue(x[i], lm.X)
		ty1 := logValue(y1, lm.Y)
		ty2 := logValue(y2, lm.Y)
		if math.IsNaN(tx) || math.IsNaN(ty1) || math.IsNaN(ty2) {
			continue
		}
		rx = append(rx, tx)
		ry1 = append(ry1, ty1)
		ry2 = append(ry2, ty2)
	}

	for i := range rx {
		it.path = append(it.path, Segment{XY{rx[i], ry1[i]}, XY{rx[i], ry2[i]}})
	}
	if !hasBeam {
		return
	}
	if hasHeight || hasTop {
		for i := range rx {
			it.path = append(it.path, Segment{XY{rx[i] - beam/2, ry2[i]}, XY{rx[i] + beam/2, ry2[i]}})
		}
	}
	if hasHeight || hasBottom {
		for i := range rx {
			it.path = append(it.path, Segment{XY{rx[i] - beam/2, ry1[i]}, XY{rx[i] + beam/2, ry1[i]}})
		}
	}
}

// buildHorizontal emits the horizontal bars and their vertical beam
// caps, symmetric to buildVertical with the axes swapped. Its point
// filter is independent of the vertical one: a point dropped from one
// pass can still contribute to the other.
func (it *Item) buildHorizontal(x, y Values, lm LogMode, beam float64, hasBeam bool) {
	width, left, right := it.opts.Width, it.opts.Left, it.opts.Right
	hasWidth, hasLeft, hasRight := hasField(width), hasField(left), hasField(right)
	if !hasWidth && !hasLeft && !hasRight {
		return
	}

	n := len(x)
	rx1 := make([]float64, 0, n)
	rx2 := make([]float64, 0, n)
	ry := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x1, x2 := x[i], x[i]
		if hasWidth {
			w := broadcast(width.Value, i)
			x1 = x[i] - w/2
			x2 = x[i] + w/2
		} else {
			if hasLeft {
				x1 = x[i] - broadcast(left.Value, i)
			}
			if hasRight {
				x2 = x[i] + broadcast(right.Value, i)
			}
		}
		tx1 := logValue(x1, lm.X)
		tx2 := logValue(x2, lm.X)
		ty := logValue(y[i], lm.Y)
		if math.IsNaN(tx1) || math.IsNaN(tx2) || math.IsNaN(ty) {
			continue
		}
		rx1 = append(rx1, tx1)
		rx2 = append(rx2, tx2)
		ry = append(ry, ty)
	}

	for i := range ry {
		it.path = append(it.path, Segment{XY{rx1[i], ry[i]}, XY{rx2[i], ry[i]}})
	}
	if !hasBeam {
		return
	}
	if hasWidth || hasRight {
		for i := range ry {
			it.path = append(it.path, Segment{XY{rx2[i], ry[i] - beam/2}, XY{rx2[i], ry[i] + beam/2}})
		}
	}
	if hasWidth || hasLeft {
		for i := range ry {
			it.path = append(it.path, Segment{XY{rx1[i], ry[i] - beam/2}, XY{rx1[i], ry[i] + beam/2}})
		}
	}
}
