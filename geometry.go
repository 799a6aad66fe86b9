// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtk

import (
	"github.com/cznic/interval"
	"github.com/cznic/mathutil"
)

// Position represents a point on the screen or inside a widget, in
// character cells.
type Position struct {
	X, Y int
}

// In returns whether p lies inside r.
func (p Position) In(r Rectangle) bool { return r.Has(p) }

// Size represents the dimensions of a screen area, in character cells.
type Size struct {
	Width, Height int
}

func newSize(w, h int) Size { return Size{w, h} }

// IsZero returns whether the area of s is empty.
func (s *Size) IsZero() bool { return s.Width <= 0 || s.Height <= 0 }

// Rectangle represents a 2D area: a Position and a Size.
type Rectangle struct {
	Position
	Size
}

// NewRectangle returns the Rectangle spanned by two corner points,
// inclusive. The points may come in any order.
func NewRectangle(x1, y1, x2, y2 int) Rectangle {
	x := mathutil.Min(x1, x2)
	y := mathutil.Min(y1, y2)
	return Rectangle{
		Position{x, y},
		Size{mathutil.Max(x1, x2) - x + 1, mathutil.Max(y1, y2) - y + 1},
	}
}

// Has returns whether p lies inside r.
func (r *Rectangle) Has(p Position) bool {
	return p.X >= r.X && p.Y >= r.Y &&
		p.X < r.X+r.Width && p.Y < r.Y+r.Height
}

// Clip sets r to the intersection of r and s and returns whether the
// result is non empty. On an empty intersection r is left unchanged.
func (r *Rectangle) Clip(s Rectangle) bool {
	x, w, ok := clipSpan(r.X, r.Width, s.X, s.Width)
	if !ok {
		return false
	}

	y, h, ok := clipSpan(r.Y, r.Height, s.Y, s.Height)
	if !ok {
		return false
	}

	*r = Rectangle{Position{x, y}, Size{w, h}}
	return true
}

// clipSpan intersects the half-open spans [a, a+n) and [b, b+m).
func clipSpan(a, n, b, m int) (int, int, bool) {
	u := interval.Int{Cls: interval.LeftClosed, A: a, B: a + n}
	v := interval.Int{Cls: interval.LeftClosed, A: b, B: b + m}
	x := interval.Intersection(&u, &v)
	if x.Class() == interval.Empty {
		return 0, 0, false
	}

	i := x.(*interval.Int)
	return i.A, i.B - i.A, true
}

// join grows r to the bounding rectangle of r and s. Joining a zero
// sized rectangle is a nop.
func (r *Rectangle) join(s Rectangle) {
	if s.IsZero() {
		return
	}

	if r.IsZero() {
		*r = s
		return
	}

	x2 := mathutil.Max(r.X+r.Width, s.X+s.Width)
	y2 := mathutil.Max(r.Y+r.Height, s.Y+s.Height)
	r.X = mathutil.Min(r.X, s.X)
	r.Y = mathutil.Min(r.Y, s.Y)
	r.Width = x2 - r.X
	r.Height = y2 - r.Y
}
