// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errorbars

import (
	"math"

	"cogentcore.org/core/base/errors"
)

// ErrShapeMismatch is the error for an error-magnitude field whose length
// is neither 1 (a broadcast scalar) nor the number of data points.
var ErrShapeMismatch = errors.New("errorbars: data lengths are inconsistent -- error fields must have one value, or one value per point")

// Valuer is the data interface for error magnitudes, supporting either
// a single broadcast value or one value per data point.
type Valuer interface {
	// Len returns the number of values.
	Len() int

	// Float1D returns the float64 value at given index.
	Float1D(i int) float64
}

// Values provides a minimal implementation of the [Valuer] interface
// using a slice of float64.
type Values []float64

func (vs Values) Len() int {
	return len(vs)
}

func (vs Values) Float1D(i int) float64 {
	return vs[i]
}

// Scalar is a single magnitude that applies to every data point.
type Scalar float64

func (sc Scalar) Len() int {
	return 1
}

func (sc Scalar) Float1D(i int) float64 {
	return float64(sc)
}

// broadcast returns the magnitude for point i, using the single value
// for all points when the Valuer holds only one.
func broadcast(v Valuer, i int) float64 {
	if v.Len() == 1 {
		return v.Float1D(0)
	}
	return v.Float1D(i)
}

// logValue transforms v to base-10 log space when log is true, passing it
// through unchanged otherwise. Values <= 0 have no log and become NaN,
// to be dropped by the point filter rather than treated as fatal.
func logValue(v float64, log bool) float64 {
	if !log {
		return v
	}
	if v <= 0 {
		return math.NaN()
	}
	return math.Log10(v)
}
