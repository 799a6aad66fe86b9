// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtk

import (
	"sync"
	"time"

	"github.com/gdamore/tcell"
)

// Signal is a structural notification delivered to a widget's Dispatcher.
// The set of signals is closed: only the types declared in this file
// implement it.
type Signal interface {
	signal()
}

// ChildChanged reports that the receiver's child list changed or that a
// child changed geometry. Child is the widget that was attached or
// changed, or nil when a child was detached.
type ChildChanged struct {
	Child *Widget
}

// StyleChanged reports that the widget's style was replaced or refreshed.
type StyleChanged struct{}

// CoordChanged reports a position or size change. Old is the rectangle
// the widget occupied before the change, in parent coordinates.
type CoordChanged struct {
	Old Rectangle
}

// Cleanup reports that the widget is being deleted. Its children are
// already gone when Cleanup arrives; dispatchers drop any references
// they hold into the subtree.
type Cleanup struct{}

// Control carries an opaque payload to a widget. Containers forward it
// to the widget that can interpret it.
type Control struct {
	Payload interface{}
}

func (ChildChanged) signal() {}
func (StyleChanged) signal() {}
func (CoordChanged) signal() {}
func (Cleanup) signal()      {}
func (Control) signal()      {}

// Result reports the outcome of dispatching a signal.
type Result int

// Result values.
const (
	ResOK        Result = iota
	ResDestroyed        // The widget was deleted while handling the signal.
)

// Part identifies a named style part of a widget.
type Part int

// Part values.
const (
	PartMain Part = iota
	PartHeader
	PartScrollbar
	PartScrl
)

// State is a bit set of widget interaction states.
type State int

// State bits.
const (
	StatePressed State = 1 << iota
	StateFocused
	StateDisabled

	StateDefault State = 0
)

// Dispatcher answers structural notifications and style, state and type
// queries for a widget. Composite widgets wrap the Dispatcher installed
// before theirs and delegate to it.
type Dispatcher interface {
	// Dispatch handles sig and reports whether w survived it.
	Dispatch(w *Widget, sig Signal) Result
	// StyleOf resolves the style of a named part. Unknown parts return nil.
	StyleOf(w *Widget, part Part) *PartStyle
	// StateOf resolves the interaction state of a named part.
	StateOf(w *Widget, part Part) State
	// Types returns the widget type tags, base first.
	Types() []string
}

// DrawPhase selects a phase of the widget paint pass.
type DrawPhase int

// DrawPhase values.
const (
	DrawCoverCheck DrawPhase = iota // Query: does the widget fully cover the area?
	DrawMain                        // Render the widget itself.
	DrawPost                        // Render above the children.
)

// DrawResult is the answer of the cover check phase.
type DrawResult int

// DrawResult values.
const (
	DrawOK DrawResult = iota
	DrawCovering
	DrawNotCovering
)

// Drawer renders a widget. Draw is invoked once per phase during a paint
// pass; the children are painted between DrawMain and DrawPost.
type Drawer interface {
	Draw(w *Widget, ctx PaintContext, phase DrawPhase) DrawResult
}

// BaseDispatcher is the Dispatcher of plain widgets. Composite widgets
// wrap it.
type BaseDispatcher struct{}

// Dispatch implements Dispatcher.
func (BaseDispatcher) Dispatch(w *Widget, sig Signal) Result {
	switch sig.(type) {
	case ChildChanged:
		// Plain widgets accept any child.
	case StyleChanged:
		w.Invalidate(w.Area())
	case CoordChanged:
		// SetSize/SetPosition already invalidated the affected areas.
	case Cleanup:
		w.pointer = nil
	case Control:
		// Not interpreted here.
	}
	return ResOK
}

// StyleOf implements Dispatcher.
func (BaseDispatcher) StyleOf(w *Widget, part Part) *PartStyle {
	if part == PartMain {
		return &w.style
	}

	return nil
}

// StateOf implements Dispatcher.
func (BaseDispatcher) StateOf(w *Widget, part Part) State { return w.state }

// Types implements Dispatcher.
func (BaseDispatcher) Types() []string { return []string{"widget"} }

// BaseDrawer fills the widget with its main style. Pressed widgets are
// rendered reversed.
type BaseDrawer struct{}

// Draw implements Drawer.
func (BaseDrawer) Draw(w *Widget, ctx PaintContext, phase DrawPhase) DrawResult {
	switch phase {
	case DrawCoverCheck:
		return DrawCovering
	case DrawMain:
		style := w.style.TCellStyle()
		if w.state&StatePressed != 0 {
			style = style.Reverse(true)
		}
		w.clear(ctx.Rectangle, style)
	case DrawPost:
		// Nothing above the children.
	}
	return DrawOK
}

// PointerEventKind distinguishes the pointer events synthesized by the
// application input loop.
type PointerEventKind int

// PointerEventKind values.
const (
	PointerPressed PointerEventKind = iota
	PointerReleased
	PointerClicked
)

var (
	_ tcell.Event = (*eventFunc)(nil)

	eventFuncPool = sync.Pool{New: func() interface{} { return &eventFunc{} }}
)

type event struct{}

func (e event) When() time.Time { return time.Time{} }

type eventFunc struct {
	event
	f func()
}

func newEventFunc(f func()) *eventFunc {
	e := eventFuncPool.Get().(*eventFunc)
	e.f = f
	return e
}

func (e *eventFunc) dispose() {
	*e = eventFunc{}
	eventFuncPool.Put(e)
}
