// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtk

import (
	"github.com/gdamore/tcell"
	"github.com/golang/glog"
)

// pointerState synthesizes press/release/click/drag events from raw
// tcell mouse events. It runs on the event goroutine; no locking.
type pointerState struct {
	buttons  tcell.ButtonMask // Buttons down after the last event.
	dragging *Widget          // Widget a drag gesture moves, if any.
	moved    bool             // The gesture moved the drag target.
	pressed  *Widget          // Widget that received the press.
	screen0  Position         // Screen position of the press.
	target0  Position         // Drag target position at the press.
}

func (p *pointerState) handle(a *Application, e *tcell.EventMouse) {
	x, y := e.Position()
	pos := Position{x, y}
	b := e.Buttons() & anyButton
	switch {
	case b&tcell.Button1 != 0 && p.buttons&tcell.Button1 == 0:
		p.press(a, pos)
	case b&tcell.Button1 == 0 && p.buttons&tcell.Button1 != 0:
		p.release(a, pos)
	default:
		p.move(pos)
	}
	p.buttons = b
}

func (p *pointerState) press(a *Application, pos Position) {
	w := a.root.hit(pos)
	glog.V(2).Infof("press %v %p", pos, w)
	p.pressed = w
	p.screen0 = pos
	p.moved = false
	p.dragging = nil
	if w == nil {
		return
	}

	w.setState(w.state | StatePressed)
	if f := w.pointer; f != nil {
		f(w, PointerPressed)
	}
	if !w.dead {
		if t := dragTarget(w); t != nil {
			p.dragging = t
			p.target0 = t.Position()
		}
	}
}

func (p *pointerState) release(a *Application, pos Position) {
	w := p.pressed
	p.pressed = nil
	p.dragging = nil
	if w == nil || w.dead {
		return
	}

	glog.V(2).Infof("release %v %p moved %v", pos, w, p.moved)
	w.setState(w.state &^ StatePressed)
	f := w.pointer
	if f == nil {
		return
	}

	f(w, PointerReleased)
	// A release may delete the widget; a click must not be delivered to
	// the remains.
	if !w.dead && !p.moved && a.root.hit(pos) == w {
		f(w, PointerClicked)
	}
}

func (p *pointerState) move(pos Position) {
	t := p.dragging
	if p.buttons&tcell.Button1 == 0 || t == nil || t.dead || pos == p.screen0 {
		return
	}

	p.moved = true
	t.SetPosition(Position{
		p.target0.X + pos.X - p.screen0.X,
		p.target0.Y + pos.Y - p.screen0.Y,
	})
}

// dragTarget resolves the widget a drag gesture starting on w moves: w
// itself when its drag flag is set, otherwise the nearest ancestor
// reached through drag-parent links that has the drag flag set.
func dragTarget(w *Widget) *Widget {
	for x := w; x != nil; x = x.parent {
		if x.drag {
			return x
		}

		if !x.dragParent {
			return nil
		}
	}
	return nil
}
