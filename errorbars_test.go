// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errorbars

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"
)

// countNotifier counts change notifications for testing invalidation.
type countNotifier struct {
	geom, bounds int
}

func (cn *countNotifier) GeometryChanged()   { cn.geom++ }
func (cn *countNotifier) ViewBoundsChanged() { cn.bounds++ }

func topBottomOpts() *Options {
	o := &Options{}
	o.X.Set(Values{1, 2})
	o.Y.Set(Values{10, 20})
	o.Top.Set(Values{1, 1})
	o.Bottom.Set(Values{1, 1})
	o.Beam.Set(0.5)
	return o
}

func TestVerticalBarsWithCaps(t *testing.T) {
	it := New(topBottomOpts())
	want := Path{
		{XY{1, 9}, XY{1, 11}},
		{XY{2, 19}, XY{2, 21}},
		{XY{0.75, 11}, XY{1.25, 11}},
		{XY{1.75, 21}, XY{2.25, 21}},
		{XY{0.75, 9}, XY{1.25, 9}},
		{XY{1.75, 19}, XY{2.25, 19}},
	}
	assert.Equal(t, want, it.Path())
}

func TestHeightOverridesTopBottom(t *testing.T) {
	it := New(topBottomOpts())
	up := &Options{}
	up.Height.Set(Values{4, 4})
	it.SetData(up)
	want := Path{
		{XY{1, 8}, XY{1, 12}},
		{XY{2, 18}, XY{2, 22}},
		{XY{0.75, 12}, XY{1.25, 12}},
		{XY{1.75, 22}, XY{2.25, 22}},
		{XY{0.75, 8}, XY{1.25, 8}},
		{XY{1.75, 18}, XY{2.25, 18}},
	}
	assert.Equal(t, want, it.Path())
}

func TestHorizontalBarsWithCaps(t *testing.T) {
	o := &Options{}
	o.X.Set(Values{10})
	o.Y.Set(Values{5})
	o.Width.Set(Values{4})
	o.Beam.Set(1)
	it := New(o)
	want := Path{
		{XY{8, 5}, XY{12, 5}},
		{XY{12, 4.5}, XY{12, 5.5}},
		{XY{8, 4.5}, XY{8, 5.5}},
	}
	assert.Equal(t, want, it.Path())
}

func TestLeftRightOnly(t *testing.T) {
	o := &Options{}
	o.X.Set(Values{10})
	o.Y.Set(Values{5})
	o.Right.Set(Values{2})
	o.Beam.Set(1)
	it := New(o)
	// no Left: bar starts at the point, and only the right end gets a cap.
	want := Path{
		{XY{10, 5}, XY{12, 5}},
		{XY{12, 4.5}, XY{12, 5.5}},
	}
	assert.Equal(t, want, it.Path())
}

func TestScalarBroadcast(t *testing.T) {
	o := &Options{}
	o.X.Set(Values{1, 2, 3})
	o.Y.Set(Values{10, 20, 30})
	o.Height.Set(Scalar(2))
	it := New(o)
	want := Path{
		{XY{1, 9}, XY{1, 11}},
		{XY{2, 19}, XY{2, 21}},
		{XY{3, 29}, XY{3, 31}},
	}
	assert.Equal(t, want, it.Path())
}

func TestLogModeDropsInvalidPoints(t *testing.T) {
	o := &Options{}
	o.X.Set(Values{1})
	o.Y.Set(Values{0})
	o.Height.Set(Values{2})
	it := New(o)
	it.SetLogMode(false, true)
	// y1 = -1 has no log10, so the point is dropped entirely even
	// though y2 = 1 transforms fine.
	assert.Empty(t, it.Path())
}

func TestPassFiltersAreIndependent(t *testing.T) {
	o := &Options{}
	o.X.Set(Values{1, 2})
	o.Y.Set(Values{0.5, 10})
	o.Bottom.Set(Values{1, 1})
	o.Right.Set(Values{1, 1})
	o.LogMode.Set(LogMode{Y: true})
	it := New(o)
	// Vertical pass: point 0 has y1 = -0.5, dropped; point 1 survives.
	// Horizontal pass: both points survive (it uses y, not y1).
	want := Path{
		{XY{2, math.Log10(9)}, XY{2, 1}},
		{XY{1, math.Log10(0.5)}, XY{2, math.Log10(0.5)}},
		{XY{2, 1}, XY{3, 1}},
	}
	assert.Equal(t, want, it.Path())
}

func TestNoCoordinatesEmpty(t *testing.T) {
	o := &Options{}
	o.Height.Set(Values{1, 2})
	it := New(o)
	assert.Empty(t, it.Path())
	bb := it.BoundingRect()
	assert.True(t, bb.IsEmpty())
}

func TestNoErrorFieldsEmpty(t *testing.T) {
	o := &Options{}
	o.X.Set(Values{1, 2})
	o.Y.Set(Values{10, 20})
	it := New(o)
	assert.Empty(t, it.Path())
}

func TestBeamZeroNoCaps(t *testing.T) {
	o := topBottomOpts()
	o.Beam.Set(0)
	it := New(o)
	assert.Equal(t, 2, len(it.Path()))

	up := &Options{}
	up.Beam.Set(0.5)
	it.SetData(up)
	assert.Equal(t, 6, len(it.Path()))
}

func TestPathIdempotent(t *testing.T) {
	it := New(topBottomOpts())
	first := it.Path()
	second := it.Path()
	assert.Equal(t, first, second)
	if len(first) > 0 && len(second) > 0 {
		assert.Same(t, &first[0], &second[0]) // cached, not recomputed
	}
}

func TestSetLogModeNoOp(t *testing.T) {
	cn := &countNotifier{}
	it := New(topBottomOpts())
	it.SetNotifier(cn)
	p := it.Path()

	it.SetLogMode(false, false) // already the effective mode
	assert.Equal(t, 0, cn.geom)
	assert.Equal(t, 0, cn.bounds)
	assert.Same(t, &p[0], &it.Path()[0])

	it.SetLogMode(true, false)
	assert.Equal(t, 1, cn.geom)
	assert.Equal(t, 1, cn.bounds)

	it.SetLogMode(true, false) // repeat of current explicit mode
	assert.Equal(t, 1, cn.geom)
	assert.Equal(t, 1, cn.bounds)
}

func TestSetDataNotifies(t *testing.T) {
	cn := &countNotifier{}
	it := New(nil)
	it.SetNotifier(cn)
	it.SetData(topBottomOpts())
	assert.Equal(t, 1, cn.geom)
	assert.Equal(t, 1, cn.bounds)
	it.SetData(nil) // merge of nothing still invalidates and notifies
	assert.Equal(t, 2, cn.geom)
	assert.Equal(t, 2, cn.bounds)
}

func TestShapeMismatchAborts(t *testing.T) {
	o := &Options{}
	o.X.Set(Values{1, 2})
	o.Y.Set(Values{10, 20})
	o.Top.Set(Values{1, 1, 1})
	assert.ErrorIs(t, o.CheckLengths(), ErrShapeMismatch)
	it := New(o)
	assert.Empty(t, it.Path())
}

func TestXYLengthMismatch(t *testing.T) {
	o := &Options{}
	o.X.Set(Values{1, 2})
	o.Y.Set(Values{10})
	o.Height.Set(Values{1, 1})
	assert.ErrorIs(t, o.CheckLengths(), ErrShapeMismatch)
	assert.Empty(t, New(o).Path())
}

func TestBoundingRect(t *testing.T) {
	it := New(topBottomOpts())
	assert.Equal(t, math32.B2(0.75, 9, 2.25, 21), it.BoundingRect())
}

func TestUpdateRange(t *testing.T) {
	it := New(topBottomOpts())
	var xr, yr minmax.F64
	xr.SetInfinity()
	yr.SetInfinity()
	it.UpdateRange(&xr, &yr)
	assert.Equal(t, minmax.F64{Min: 0.75, Max: 2.25}, xr)
	assert.Equal(t, minmax.F64{Min: 9, Max: 21}, yr)
}
