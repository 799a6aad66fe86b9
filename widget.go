// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtk

import (
	"fmt"

	"github.com/cznic/mathutil"
	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
)

// Widget is a node of the widget tree. Its position is relative to the
// parent, its children are kept back-to-front: Child(0) is the oldest
// and backmost child.
type Widget struct {
	app         *Application //
	children    []*Widget    // Back-to-front.
	clickable   bool         //
	dead        bool         // Delete was called.
	dispatcher  Dispatcher   //
	drag        bool         // A drag gesture moves this widget.
	dragParent  bool         // A drag gesture is resolved by an ancestor.
	drawer      Drawer       //
	owner       interface{}  // The composite widget built on this one, if any.
	paintArea   Rectangle    // Valid during a paint pass.
	paintOrigin Position     // Valid during a paint pass.
	parent      *Widget      //
	pointer     func(w *Widget, kind PointerEventKind)
	position    Position  //
	protected   bool      // Not subject to container child redistribution.
	size        Size      //
	state       State     //
	style       PartStyle //
}

// NewWidget returns a newly created widget attached as the front-most
// child of parent. Passing nil parent will panic; the root widget is
// owned by the Application.
func NewWidget(parent *Widget) *Widget {
	if parent == nil {
		panic("NewWidget: nil parent")
	}

	w := &Widget{
		app:        parent.app,
		dispatcher: BaseDispatcher{},
		drawer:     BaseDrawer{},
		parent:     parent,
		style:      parent.app.theme.Widget,
	}
	parent.children = append(parent.children, w)
	parent.Dispatch(ChildChanged{Child: w})
	return w
}

func newRootWidget(a *Application) *Widget {
	return &Widget{
		app:        a,
		dispatcher: BaseDispatcher{},
		drawer:     BaseDrawer{},
		size:       a.size,
		style:      a.theme.Screen,
	}
}

// Clone returns a copy of w attached as the front-most child of parent.
// Geometry, style and behavior flags are copied; children, the
// dispatcher and the drawer are not.
func (w *Widget) Clone(parent *Widget) *Widget {
	c := NewWidget(parent)
	c.clickable = w.clickable
	c.drag = w.drag
	c.dragParent = w.dragParent
	c.protected = w.protected
	c.style = w.style
	c.SetPosition(w.position)
	c.SetSize(w.size)
	return c
}

// ----------------------------------------------------------------------------
// Tree

// Parent returns the parent of w or nil for the root widget and for
// deleted widgets.
func (w *Widget) Parent() *Widget { return w.parent }

// Children returns the number of children of w.
func (w *Widget) Children() int { return len(w.children) }

// Child returns the n-th child of w or nil if no such child exists.
// Children are ordered back-to-front.
func (w *Widget) Child(n int) *Widget {
	if n < 0 || n >= len(w.children) {
		return nil
	}

	return w.children[n]
}

// SetParent detaches w from its current parent and attaches it as the
// front-most child of p. Both parents are notified. Setting the current
// parent again is a nop.
func (w *Widget) SetParent(p *Widget) {
	old := w.parent
	if p == nil || p == old || p.dead || w.dead {
		return
	}

	old.removeChild(w)
	w.parent = p
	p.children = append(p.children, w)
	old.Dispatch(ChildChanged{})
	p.Dispatch(ChildChanged{Child: w})
	old.Invalidate(old.Area())
	p.Invalidate(p.Area())
}

func (w *Widget) removeChild(ch *Widget) {
	for i, v := range w.children {
		if v == ch {
			copy(w.children[i:], w.children[i+1:])
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
}

// BringToFront puts w on top of its siblings.
func (w *Widget) BringToFront() {
	p := w.parent
	if p == nil || len(p.children) == 0 || p.children[len(p.children)-1] == w {
		return
	}

	p.removeChild(w)
	p.children = append(p.children, w)
	p.Invalidate(p.Area())
}

// Delete removes w and its subtree from the widget tree. Children are
// deleted first, then w's dispatcher receives Cleanup, then w is
// detached from its parent. Deleting a deleted widget is a nop.
func (w *Widget) Delete() {
	if w == nil || w.dead {
		return
	}

	for len(w.children) != 0 {
		w.children[len(w.children)-1].Delete()
	}
	w.Dispatch(Cleanup{})
	w.dead = true
	if p := w.parent; p != nil {
		p.removeChild(w)
		w.parent = nil
		p.Dispatch(ChildChanged{})
		p.Invalidate(p.Area())
	}
}

// ----------------------------------------------------------------------------
// Geometry

// Position returns the position of w relative to its parent.
func (w *Widget) Position() Position { return w.position }

// Size returns the size of w.
func (w *Widget) Size() Size { return w.size }

// Area returns the area of w in its own coordinates.
func (w *Widget) Area() Rectangle { return Rectangle{Size: w.size} }

// SetPosition moves w relative to its parent.
func (w *Widget) SetPosition(p Position) {
	if w.position == p {
		return
	}

	old := Rectangle{w.position, w.size}
	w.position = p
	w.Dispatch(CoordChanged{Old: old})
	if par := w.parent; par != nil {
		par.Dispatch(ChildChanged{Child: w})
	}
	w.invalidateMove(old)
}

// SetSize resizes w. Negative dimensions are clamped to zero.
func (w *Widget) SetSize(s Size) {
	s.Width = mathutil.Max(0, s.Width)
	s.Height = mathutil.Max(0, s.Height)
	if w.size == s {
		return
	}

	old := Rectangle{w.position, w.size}
	w.size = s
	w.Dispatch(CoordChanged{Old: old})
	if par := w.parent; par != nil {
		par.Dispatch(ChildChanged{Child: w})
	}
	w.invalidateMove(old)
}

func (w *Widget) invalidateMove(old Rectangle) {
	p := w.parent
	if p == nil {
		w.Invalidate(w.Area())
		return
	}

	inv := old
	inv.join(Rectangle{w.position, w.size})
	p.Invalidate(inv)
}

// InnerSize returns the size of w minus the paddings of its main style.
func (w *Widget) InnerSize() Size {
	s := w.style
	return Size{
		mathutil.Max(0, w.size.Width-s.PadLeft-s.PadRight),
		mathutil.Max(0, w.size.Height-s.PadTop-s.PadBottom),
	}
}

// InnerWidth returns the width of w minus the horizontal paddings of its
// main style.
func (w *Widget) InnerWidth() int { return w.InnerSize().Width }

// InnerHeight returns the height of w minus the vertical paddings of its
// main style.
func (w *Widget) InnerHeight() int { return w.InnerSize().Height }

// ----------------------------------------------------------------------------
// Style, state, behaviors

// Style returns the main style of w. The result is valid for w's
// lifetime; mutations must be followed by RefreshStyle.
func (w *Widget) Style() *PartStyle { return &w.style }

// SetStyle replaces the main style of w.
func (w *Widget) SetStyle(s PartStyle) {
	w.style = s
	w.Dispatch(StyleChanged{})
}

// RefreshStyle notifies w that its style values changed.
func (w *Widget) RefreshStyle() { w.Dispatch(StyleChanged{}) }

// StyleOf resolves the style of a named part through the dispatcher.
func (w *Widget) StyleOf(part Part) *PartStyle {
	if s := w.dispatcher.StyleOf(w, part); s != nil {
		return s
	}

	return BaseDispatcher{}.StyleOf(w, part)
}

// StateOf resolves the interaction state of a named part through the
// dispatcher.
func (w *Widget) StateOf(part Part) State { return w.dispatcher.StateOf(w, part) }

// State returns the interaction state of w.
func (w *Widget) State() State { return w.state }

func (w *Widget) setState(s State) {
	if w.state == s {
		return
	}

	w.state = s
	w.Invalidate(w.Area())
}

// Dispatch routes sig through the installed dispatcher.
func (w *Widget) Dispatch(sig Signal) Result {
	if w.dead {
		return ResDestroyed
	}

	return w.dispatcher.Dispatch(w, sig)
}

// Dispatcher returns the installed dispatcher.
func (w *Widget) Dispatcher() Dispatcher { return w.dispatcher }

// SetDispatcher installs d. Composite widgets wrap the previously
// installed dispatcher and delegate to it.
func (w *Widget) SetDispatcher(d Dispatcher) { w.dispatcher = d }

// Drawer returns the installed drawer.
func (w *Widget) Drawer() Drawer { return w.drawer }

// SetDrawer installs d. Composite widgets wrap the previously installed
// drawer and delegate to it.
func (w *Widget) SetDrawer(d Drawer) { w.drawer = d }

// Types returns the widget type tags, base first.
func (w *Widget) Types() []string { return w.dispatcher.Types() }

// Protect marks w as structurally protected: container widgets leave
// protected children in place when redistributing their child lists.
func (w *Widget) Protect() { w.protected = true }

// Protected returns whether w is structurally protected.
func (w *Widget) Protected() bool { return w.protected }

// SetClickable sets whether w is found by pointer hit testing.
func (w *Widget) SetClickable(v bool) { w.clickable = v }

// Clickable returns whether w is found by pointer hit testing.
func (w *Widget) Clickable() bool { return w.clickable }

// SetDrag sets whether a pointer drag gesture moves w.
func (w *Widget) SetDrag(v bool) { w.drag = v }

// Drag returns whether a pointer drag gesture moves w.
func (w *Widget) Drag() bool { return w.drag }

// SetDragParent sets whether a drag gesture starting on w is resolved by
// walking the parent chain.
func (w *Widget) SetDragParent(v bool) { w.dragParent = v }

// DragParent returns the drag-parent flag.
func (w *Widget) DragParent() bool { return w.dragParent }

// SetPointerFunc installs f to receive synthesized pointer events
// delivered to w.
func (w *Widget) SetPointerFunc(f func(w *Widget, kind PointerEventKind)) { w.pointer = f }

// SetOwner associates v, the composite widget built on w, with w.
func (w *Widget) SetOwner(v interface{}) { w.owner = v }

// Owner returns the composite widget built on w, if any.
func (w *Widget) Owner() interface{} { return w.owner }

// ----------------------------------------------------------------------------
// Painting

// PaintContext represents the area being painted, in widget coordinates.
type PaintContext struct {
	Rectangle
	origin Position
}

// Invalidate marks area of w for repaint. Nested invalidations inside an
// update batch accumulate and repaint once.
func (w *Widget) Invalidate(area Rectangle) {
	if w.dead || !area.Clip(w.Area()) {
		return
	}

	a := w.app
	if a == nil {
		return
	}

	for x := w; x.parent != nil; x = x.parent {
		area.X += x.position.X
		area.Y += x.position.Y
	}
	a.beginUpdate()
	a.invalidated.join(area)
	a.endUpdate()
}

// paint renders area of w, in w coordinates.
func (w *Widget) paint(area Rectangle) {
	if w.dead || area.IsZero() || !area.Clip(w.Area()) {
		return
	}

	oldArea, oldOrigin := w.setPaintContext(area, Position{})
	ctx := PaintContext{area, Position{}}
	w.drawer.Draw(w, ctx, DrawCoverCheck)
	w.drawer.Draw(w, ctx, DrawMain)
	for _, c := range w.children {
		a := Rectangle{c.position, c.size}
		if a.Clip(area) {
			a.X -= c.position.X
			a.Y -= c.position.Y
			c.paint(a)
		}
	}
	w.drawer.Draw(w, ctx, DrawPost)
	w.setPaintContext(oldArea, oldOrigin)
}

func (w *Widget) setPaintContext(area Rectangle, origin Position) (oldArea Rectangle, oldOrigin Position) {
	oldArea = w.paintArea
	oldOrigin = w.paintOrigin
	w.paintArea = area
	w.paintOrigin = origin
	return oldArea, oldOrigin
}

// SetCell renders a single character cell of w. Calls outside of a paint
// pass or outside the painted area are silently ignored.
func (w *Widget) SetCell(x, y int, mainc rune, combc []rune, style tcell.Style) {
	w.setCell(x, y, mainc, combc, style)
}

func (w *Widget) setCell(x, y int, mainc rune, combc []rune, style tcell.Style) {
	o := w.position
	o.X += w.paintOrigin.X
	o.Y += w.paintOrigin.Y
	if !(Position{w.paintOrigin.X + x, w.paintOrigin.Y + y}).In(w.paintArea) {
		return
	}

	switch p := w.parent; p {
	case nil:
		w.app.setCell(o.X+x, o.Y+y, mainc, combc, style)
	default:
		p.setCell(o.X+x, o.Y+y, mainc, combc, style)
	}
}

func (w *Widget) clear(area Rectangle, style tcell.Style) {
	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			w.SetCell(x, y, ' ', nil, style)
		}
	}
}

// Printf prints format with arguments at x, y. Calls outside of a paint
// pass are silently ignored.
func (w *Widget) Printf(x, y int, style Style, format string, arg ...interface{}) {
	w.print(x, y, style.TCellStyle(), fmt.Sprintf(format, arg...))
}

func (w *Widget) printCell(x, y, width int, main rune, comb []rune, style tcell.Style) (int, int) {
	switch main {
	case '\r':
		return 0, y
	case '\n':
		return 0, y + 1
	default:
		w.SetCell(x, y, main, comb, style)
		return x + width, y
	}
}

func (w *Widget) print(x, y int, style tcell.Style, s string) {
	if s == "" {
		return
	}

	if w.paintArea.IsZero() { // Zero sized widget or not in a paint pass.
		return
	}

	var main rune
	var comb []rune
	var state, width int

	const (
		st0         = iota // main, width, comb not valid.
		stCheckComb        // main, width, comb valid, checking if followed by combining char(s).
		stComb             // main, width, comb valid, collecting combining chars.
	)

	for _, r := range s {
		if r == 0 {
			continue
		}

		switch runewidth.RuneWidth(r) {
		case 0: // Combining char.
			switch state {
			case st0:
				main = ' '
				width = 1
				comb = append(comb[:0], r)
				state = stComb
			case stCheckComb:
				comb = append(comb, r)
				state = stComb
			case stComb:
				comb = append(comb, r)
				state = stComb
			default:
				panic("internal error")
			}
		case 1: // Normal width.
			switch state {
			case st0:
				main = r
				width = 1
				comb = comb[:0]
				state = stCheckComb
			case stCheckComb:
				x, y = w.printCell(x, y, width, main, comb, style)
				main = r
				width = 1
				comb = comb[:0]
				state = stCheckComb
			case stComb:
				comb = append(comb, r)
				state = stComb
			default:
				panic("internal error")
			}
		case 2: // Double width.
			switch state {
			case st0:
				main = r
				width = 2
				comb = comb[:0]
				state = stCheckComb
			case stCheckComb:
				x, y = w.printCell(x, y, width, main, comb, style)
				main = r
				width = 2
				comb = comb[:0]
				state = stCheckComb
			case stComb:
				comb = append(comb, r)
				state = stComb
			default:
				panic("internal error")
			}
		default:
			panic("internal error")
		}
	}
	switch state {
	case stCheckComb, stComb:
		w.printCell(x, y, width, main, comb, style)
	default:
		panic(fmt.Errorf("%q: %v", s, state))
	}
}

// TextSize measures a single line of text in character cells.
func TextSize(s string) Size {
	if s == "" {
		return Size{}
	}

	return Size{runewidth.StringWidth(s), 1}
}

// hit returns the front-most clickable widget containing pos, in w
// coordinates, or nil.
func (w *Widget) hit(pos Position) *Widget {
	for i := len(w.children) - 1; i >= 0; i-- {
		c := w.children[i]
		r := Rectangle{c.position, c.size}
		if r.Has(pos) {
			if t := c.hit(Position{pos.X - c.position.X, pos.Y - c.position.Y}); t != nil {
				return t
			}
		}
	}
	if w.clickable && pos.In(w.Area()) {
		return w
	}

	return nil
}
