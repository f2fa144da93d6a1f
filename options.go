// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errorbars

import (
	"image"

	"cogentcore.org/core/base/option"
)

// LogMode is the pair of per-axis flags selecting base-10 log
// transformation of values prior to geometry generation.
type LogMode struct {
	// X transforms x-axis values when true.
	X bool

	// Y transforms y-axis values when true.
	Y bool
}

// Options is the full set of data and styling options for an error-bar
// [Item]. Every field is optional: [Item.SetData] overwrites only the
// fields that have been set, so an Options value acts as a partial
// update, not a reset. Setting a field to a nil or zero value clears
// the corresponding datum.
type Options struct {

	// X coordinates of the data points.
	X option.Option[Values]

	// Y coordinates of the data points.
	Y option.Option[Values]

	// Height is the full length of vertical bars, centered on each point.
	// If set, it overrides Top and Bottom.
	Height option.Option[Valuer]

	// Top is the length of bars extending upward from each point.
	Top option.Option[Valuer]

	// Bottom is the length of bars extending downward from each point.
	Bottom option.Option[Valuer]

	// Width is the full length of horizontal bars, centered on each point.
	// If set, it overrides Left and Right.
	Width option.Option[Valuer]

	// Left is the length of bars extending leftward from each point.
	Left option.Option[Valuer]

	// Right is the length of bars extending rightward from each point.
	Right option.Option[Valuer]

	// Beam is the width of the perpendicular cap drawn at the end of
	// each bar, in data units. Caps are only drawn when Beam > 0.
	Beam option.Option[float64]

	// Pen is the stroke source used to draw the bars. It is passed
	// through to rendering without interpretation; if nil, the
	// [Settings] foreground is used.
	Pen option.Option[image.Image]

	// LogMode selects per-axis base-10 log transformation.
	LogMode option.Option[LogMode]
}

// merge overwrites each field of o for which the corresponding field
// of opts has been set, leaving the others untouched.
func (o *Options) merge(opts *Options) {
	if opts == nil {
		return
	}
	if opts.X.Valid {
		o.X = opts.X
	}
	if opts.Y.Valid {
		o.Y = opts.Y
	}
	if opts.Height.Valid {
		o.Height = opts.Height
	}
	if opts.Top.Valid {
		o.Top = opts.Top
	}
	if opts.Bottom.Valid {
		o.Bottom = opts.Bottom
	}
	if opts.Width.Valid {
		o.Width = opts.Width
	}
	if opts.Left.Valid {
		o.Left = opts.Left
	}
	if opts.Right.Valid {
		o.Right = opts.Right
	}
	if opts.Beam.Valid {
		o.Beam = opts.Beam
	}
	if opts.Pen.Valid {
		o.Pen = opts.Pen
	}
	if opts.LogMode.Valid {
		o.LogMode = opts.LogMode
	}
}

// hasField reports whether an optional Valuer field holds data.
func hasField(f option.Option[Valuer]) bool {
	return f.Valid && f.Value != nil && f.Value.Len() > 0
}

// CheckLengths checks that the X and Y coordinates have the same length
// and that every present error field has either a single broadcast value
// or one value per point. Returns [ErrShapeMismatch] if not.
func (o *Options) CheckLengths() error {
	n := len(o.X.Value)
	if len(o.Y.Value) != n {
		return ErrShapeMismatch
	}
	for _, f := range []option.Option[Valuer]{o.Height, o.Top, o.Bottom, o.Width, o.Left, o.Right} {
		if !hasField(f) {
			continue
		}
		if fn := f.Value.Len(); fn != 1 && fn != n {
			return ErrShapeMismatch
		}
	}
	return nil
}
