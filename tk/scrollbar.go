// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tk

import (
	"github.com/cznic/mathutil"
	"github.com/gdamore/tcell"

	"github.com/boston-engineering/wtk"
)

// Scrollbar represents an UI element used to show that a container
// content overflows its area and provide visual feedback of the position
// of its viewport. It is not a widget; a hosting widget paints it from a
// post draw phase and feeds it viewport geometry via SetView.
//
// Scrollbar methods must be called only directly from an event handler
// goroutine or from a function that was enqueued using
// wtk.Application.Post or wtk.Application.PostWait.
type Scrollbar struct {
	handlePos  int           //
	handleSize int           //
	position   wtk.Position  // In host widget coordinates.
	shown      bool          //
	size       wtk.Size      //
	style      wtk.PartStyle //
	w          *wtk.Widget   // Host.
}

// NewScrollbar returns a newly created Scrollbar hosted by w.
func NewScrollbar(w *wtk.Widget) *Scrollbar {
	return &Scrollbar{style: wtk.App().Theme().Scrollbar, w: w}
}

func (s *Scrollbar) isVertical() bool { return s.size.Width == 1 }

// ----------------------------------------------------------------------------

// HandlePosition returns the position of the scrollbar handle.
func (s *Scrollbar) HandlePosition() int { return s.handlePos }

// HandleSize returns the size of the scrollbar handle.
func (s *Scrollbar) HandleSize() int { return s.handleSize }

// Position returns the position of the scrollbar.
func (s *Scrollbar) Position() wtk.Position { return s.position }

// SetPosition sets the scrollbar position in host coordinates.
func (s *Scrollbar) SetPosition(v wtk.Position) {
	s.position = v
	s.w.Invalidate(s.w.Area())
}

// Size returns the size of the scrollbar.
func (s *Scrollbar) Size() wtk.Size { return s.size }

// SetSize sets the scrollbar size. A width of one cell makes the
// scrollbar vertical.
func (s *Scrollbar) SetSize(v wtk.Size) {
	s.size = v
	s.w.Invalidate(s.w.Area())
}

// Shown returns whether the host paints the scrollbar.
func (s *Scrollbar) Shown() bool { return s.shown }

// SetShown sets whether the host paints the scrollbar.
func (s *Scrollbar) SetShown(v bool) {
	if s.shown == v {
		return
	}

	s.shown = v
	s.w.Invalidate(s.w.Area())
}

// Style returns the style of the scrollbar.
func (s *Scrollbar) Style() wtk.PartStyle { return s.style }

// SetStyle sets the scrollbar style.
func (s *Scrollbar) SetStyle(v wtk.PartStyle) {
	s.style = v
	s.w.Invalidate(s.w.Area())
}

// SetHandlePosition sets the scrollbar handle position.
func (s *Scrollbar) SetHandlePosition(v int) {
	sz := s.size.Width - 2
	if s.isVertical() {
		sz = s.size.Height - 2
	}
	s.handlePos = mathutil.Max(0, mathutil.Min(sz-s.handleSize, v))
}

// SetHandleSize sets the scrollbar handle size.
func (s *Scrollbar) SetHandleSize(v int) {
	sz := s.size.Width - 2
	if s.isVertical() {
		sz = s.size.Height - 2
	}
	s.handleSize = mathutil.Max(0, mathutil.Min(sz-s.handlePos, v))
}

// SetView sets the scrollbar parameters based on the view parameters.
// SetView panics when origin < 0.
func (s *Scrollbar) SetView(origin, viewportSize, contentSize int) {
	if origin < 0 {
		panic("Scrollbar.SetView: invalid origin")
	}

	if contentSize < 1 { // Unknown content size.
		s.SetHandlePosition(0)
		s.SetHandleSize(0)
		s.w.Invalidate(s.w.Area())
		return
	}

	clip := wtk.NewRectangle(-origin, 0, contentSize, 0)
	clip.Clip(wtk.NewRectangle(0, 0, viewportSize, 0))

	scrollbarSize := s.size.Width - 2 // Sans arrows.
	if s.isVertical() {
		scrollbarSize = s.size.Height - 2
	}
	handlePos := mathutil.Min(scrollbarSize-1, (origin*scrollbarSize+contentSize/2)/contentSize)
	handleSize := mathutil.Max(1, clip.Width*scrollbarSize/contentSize)
	s.SetHandlePosition(handlePos)
	s.SetHandleSize(handleSize)
	s.w.Invalidate(s.w.Area())
}

// Paint asks the scrollbar to render itself. It is intended to be only
// called from the host widget's post draw phase.
func (s *Scrollbar) Paint() {
	if !s.shown {
		return
	}

	sz := s.size
	pos := s.position
	style := s.style.TCellStyle()
	w := s.w
	switch {
	case s.isVertical():
		origin := pos.Y
		for y := 1; y < sz.Height-1; y++ {
			w.SetCell(pos.X, origin+y, tcell.RuneBoard, nil, style)
		}
		if sz.Height < 2 {
			break
		}

		for y := 1 + s.handlePos; y < 1+s.handlePos+s.handleSize && y < sz.Height-1; y++ {
			w.SetCell(pos.X, origin+y, tcell.RuneCkBoard, nil, style)
		}
		w.SetCell(pos.X, origin, '▴', nil, style)
		w.SetCell(pos.X, origin+sz.Height-1, '▾', nil, style)
	default:
		origin := pos.X
		for x := 1; x < sz.Width-1; x++ {
			w.SetCell(origin+x, pos.Y, tcell.RuneBoard, nil, style)
		}
		if sz.Width < 2 {
			break
		}

		for x := 1 + s.handlePos; x < 1+s.handlePos+s.handleSize && x < sz.Width-1; x++ {
			w.SetCell(origin+x, pos.Y, tcell.RuneCkBoard, nil, style)
		}

		w.SetCell(origin, pos.Y, '◂', nil, style)
		w.SetCell(origin+sz.Width-1, pos.Y, '▸', nil, style)
	}
}
