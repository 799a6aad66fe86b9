// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tk

import (
	"time"

	"github.com/cznic/mathutil"

	"github.com/boston-engineering/wtk"
)

// ScrollbarMode controls when a Page shows its scrollbar.
type ScrollbarMode int

// ScrollbarMode values.
const (
	ScrollbarOff  ScrollbarMode = iota // Never shown.
	ScrollbarOn                        // Always shown.
	ScrollbarAuto                      // Shown when the content overflows.
	ScrollbarHide                      // Like Off, keeping the configured mode distinct.
)

// Layout arranges the children of a Page's scrollable.
type Layout int

// Layout values.
const (
	LayoutOff    Layout = iota // Children keep their positions.
	LayoutColumn               // Children are stacked vertically.
	LayoutRow                  // Children are laid out horizontally.
)

// AnimEnable selects animated or immediate focus scrolling.
type AnimEnable bool

// AnimEnable values.
const (
	AnimOff AnimEnable = false
	AnimOn  AnimEnable = true
)

// Scroll is a Control payload scrolling a Page by whole cells. Positive
// values scroll towards the end of the content.
type Scroll struct {
	DX, DY int
}

const (
	defaultAnimTime = 400 * time.Millisecond
	focusFrame      = 30 * time.Millisecond
)

// Page is a container clipping its content to its area and scrolling it.
// All content lives on a protected inner scrollable widget; unprotected
// children attached directly to the Page are moved onto the scrollable.
//
// Page methods must be called only directly from an event handler
// goroutine or from a function that was enqueued using
// wtk.Application.Post or wtk.Application.PostWait.
type Page struct {
	*wtk.Widget
	animTime time.Duration
	layout   Layout
	sb       *Scrollbar
	sbMode   ScrollbarMode
	scrl     *wtk.Widget
}

// NewPage returns a newly created page attached to parent. A non nil
// template makes the new page a copy of it, except for the content.
func NewPage(parent *wtk.Widget, template *Page) *Page {
	w := wtk.NewWidget(parent)
	p := &Page{
		Widget:   w,
		animTime: defaultAnimTime,
		sbMode:   ScrollbarAuto,
	}
	w.SetOwner(p)
	w.SetStyle(wtk.App().Theme().Page)
	p.scrl = wtk.NewWidget(w)
	p.scrl.Protect()
	p.scrl.SetStyle(wtk.App().Theme().Scrl)
	p.scrl.SetDispatcher(&scrlDispatcher{base: p.scrl.Dispatcher(), p: p})
	p.sb = NewScrollbar(w)
	w.SetDispatcher(&pageDispatcher{base: w.Dispatcher(), p: p})
	w.SetDrawer(&pageDrawer{base: w.Drawer(), p: p})
	if template != nil {
		p.animTime = template.animTime
		p.layout = template.layout
		p.sbMode = template.sbMode
		w.SetStyle(*template.Widget.Style())
		p.scrl.SetStyle(*template.scrl.Style())
		w.SetSize(template.Size())
	}
	p.fit()
	return p
}

// Scrl returns the protected inner scrollable holding the page content.
func (p *Page) Scrl() *wtk.Widget { return p.scrl }

// Scrollbar returns the page scrollbar.
func (p *Page) Scrollbar() *Scrollbar { return p.sb }

// ScrollbarMode returns when the page shows its scrollbar.
func (p *Page) ScrollbarMode() ScrollbarMode { return p.sbMode }

// SetScrollbarMode sets when the page shows its scrollbar.
func (p *Page) SetScrollbarMode(m ScrollbarMode) {
	p.sbMode = m
	p.updateScrollbar()
}

// Layout returns how the page arranges its content.
func (p *Page) Layout() Layout { return p.layout }

// SetLayout sets how the page arranges its content and rearranges it.
func (p *Page) SetLayout(l Layout) {
	p.layout = l
	p.applyLayout()
	p.fit()
}

// AnimTime returns the focus scroll animation duration.
func (p *Page) AnimTime() time.Duration { return p.animTime }

// SetAnimTime sets the focus scroll animation duration. Zero disables
// the animation.
func (p *Page) SetAnimTime(d time.Duration) { p.animTime = d }

// Clean deletes all content of the page without deleting the scrollable
// itself.
func (p *Page) Clean() {
	if p.scrl == nil {
		return
	}

	for p.scrl.Children() != 0 {
		p.scrl.Child(p.scrl.Children() - 1).Delete()
	}
	p.fit()
}

// ScrollBy scrolls the content by dx, dy cells. Positive values scroll
// towards the end of the content. The result is clamped so the content
// never detaches from the page edges.
func (p *Page) ScrollBy(dx, dy int) {
	if p.scrl == nil {
		return
	}

	pos := p.scrl.Position()
	pos.X -= dx
	pos.Y -= dy
	p.scrollTo(pos)
}

// Focus scrolls the page the minimum amount that makes obj fully
// visible. Obj must be a descendant of the scrollable; other widgets are
// ignored. With anim on and a nonzero AnimTime the scroll is animated in
// steps posted through the application event queue.
func (p *Page) Focus(obj *wtk.Widget, anim AnimEnable) {
	if p.scrl == nil || obj == nil {
		return
	}

	var rel wtk.Position
	x := obj
	for ; x != nil && x != p.scrl; x = x.Parent() {
		po := x.Position()
		rel.X += po.X
		rel.Y += po.Y
	}
	if x == nil { // Not on the scrollable.
		return
	}

	target := p.scrl.Position()
	top := target.Y + rel.Y
	bottom := top + obj.Size().Height
	switch {
	case top < 0:
		target.Y -= top
	case bottom > p.InnerHeight():
		target.Y -= bottom - p.InnerHeight()
	}
	left := target.X + rel.X
	right := left + obj.Size().Width
	switch {
	case left < 0:
		target.X -= left
	case right > p.InnerWidth():
		target.X -= right - p.InnerWidth()
	}
	if !bool(anim) || p.animTime <= 0 {
		p.scrollTo(target)
		return
	}

	p.animateTo(target)
}

func (p *Page) animateTo(target wtk.Position) {
	from := p.scrl.Position()
	steps := mathutil.Max(1, int(p.animTime/focusFrame))
	a := wtk.App()
	var step func(i int)
	step = func(i int) {
		if p.scrl == nil {
			return
		}

		p.scrollTo(wtk.Position{
			X: from.X + (target.X-from.X)*i/steps,
			Y: from.Y + (target.Y-from.Y)*i/steps,
		})
		if i < steps {
			time.AfterFunc(focusFrame, func() { a.Post(func() { step(i + 1) }) })
		}
	}
	step(1)
}

func (p *Page) scrollTo(pos wtk.Position) {
	if p.scrl == nil {
		return
	}

	minX := mathutil.Min(0, p.InnerWidth()-p.scrl.Size().Width)
	minY := mathutil.Min(0, p.InnerHeight()-p.scrl.Size().Height)
	pos.X = mathutil.Max(minX, mathutil.Min(0, pos.X))
	pos.Y = mathutil.Max(minY, mathutil.Min(0, pos.Y))
	p.scrl.SetPosition(pos)
	p.updateScrollbar()
}

func (p *Page) applyLayout() {
	if p.scrl == nil || p.layout == LayoutOff {
		return
	}

	st := p.scrl.Style()
	x, y := st.PadLeft, st.PadTop
	for i := 0; i < p.scrl.Children(); i++ {
		c := p.scrl.Child(i)
		c.SetPosition(wtk.Position{X: x, Y: y})
		switch p.layout {
		case LayoutColumn:
			y += c.Size().Height + st.PadInner
		case LayoutRow:
			x += c.Size().Width + st.PadInner
		}
	}
}

// fit sizes the scrollable to its content, never smaller than the page
// inner area.
func (p *Page) fit() {
	if p.scrl == nil {
		return
	}

	st := p.scrl.Style()
	var w, h int
	for i := 0; i < p.scrl.Children(); i++ {
		c := p.scrl.Child(i)
		pos, sz := c.Position(), c.Size()
		w = mathutil.Max(w, pos.X+sz.Width)
		h = mathutil.Max(h, pos.Y+sz.Height)
	}
	w += st.PadRight
	h += st.PadBottom
	w = mathutil.Max(w, p.InnerWidth())
	h = mathutil.Max(h, p.InnerHeight())
	p.scrl.SetSize(wtk.Size{Width: w, Height: h})
	p.scrollTo(p.scrl.Position())
}

func (p *Page) updateScrollbar() {
	if p.sb == nil || p.scrl == nil {
		return
	}

	view := p.InnerHeight()
	content := p.scrl.Size().Height
	var show bool
	switch p.sbMode {
	case ScrollbarOn:
		show = true
	case ScrollbarAuto:
		show = content > view
	}
	p.sb.SetShown(show)
	if !show {
		return
	}

	p.sb.SetSize(wtk.Size{Width: 1, Height: view})
	p.sb.SetPosition(wtk.Position{X: p.Size().Width - 1, Y: p.Style().PadTop})
	p.sb.SetView(-p.scrl.Position().Y, view, content)
}

type pageDispatcher struct {
	base wtk.Dispatcher
	p    *Page
}

func (d *pageDispatcher) Dispatch(w *wtk.Widget, sig wtk.Signal) wtk.Result {
	if res := d.base.Dispatch(w, sig); res != wtk.ResOK {
		return res
	}

	p := d.p
	switch sig := sig.(type) {
	case wtk.ChildChanged:
		if p.scrl != nil {
			for _, c := range redistribute(w) {
				c.SetParent(p.scrl)
			}
		}
	case wtk.StyleChanged:
		p.applyLayout()
		p.fit()
	case wtk.CoordChanged:
		if sig.Old.Size != w.Size() {
			p.fit()
		}
	case wtk.Cleanup:
		p.sb = nil
		p.scrl = nil
	case wtk.Control:
		if s, ok := sig.Payload.(Scroll); ok {
			p.ScrollBy(s.DX, s.DY)
		}
	}
	return wtk.ResOK
}

func (d *pageDispatcher) StyleOf(w *wtk.Widget, part wtk.Part) *wtk.PartStyle {
	switch part {
	case wtk.PartScrollbar:
		if sb := d.p.sb; sb != nil {
			return &sb.style
		}
	case wtk.PartScrl:
		if scrl := d.p.scrl; scrl != nil {
			return scrl.Style()
		}
	}
	return d.base.StyleOf(w, part)
}

func (d *pageDispatcher) StateOf(w *wtk.Widget, part wtk.Part) wtk.State {
	if part == wtk.PartScrl {
		if scrl := d.p.scrl; scrl != nil {
			return scrl.State()
		}
	}
	return d.base.StateOf(w, part)
}

func (d *pageDispatcher) Types() []string { return append(d.base.Types(), "page") }

type scrlDispatcher struct {
	base wtk.Dispatcher
	p    *Page
}

func (d *scrlDispatcher) Dispatch(w *wtk.Widget, sig wtk.Signal) wtk.Result {
	if res := d.base.Dispatch(w, sig); res != wtk.ResOK {
		return res
	}

	switch sig.(type) {
	case wtk.ChildChanged:
		d.p.applyLayout()
		d.p.fit()
	case wtk.CoordChanged:
		d.p.updateScrollbar()
	}
	return wtk.ResOK
}

func (d *scrlDispatcher) StyleOf(w *wtk.Widget, part wtk.Part) *wtk.PartStyle {
	return d.base.StyleOf(w, part)
}

func (d *scrlDispatcher) StateOf(w *wtk.Widget, part wtk.Part) wtk.State {
	return d.base.StateOf(w, part)
}

func (d *scrlDispatcher) Types() []string { return append(d.base.Types(), "scrl") }

type pageDrawer struct {
	base wtk.Drawer
	p    *Page
}

func (d *pageDrawer) Draw(w *wtk.Widget, ctx wtk.PaintContext, phase wtk.DrawPhase) wtk.DrawResult {
	res := d.base.Draw(w, ctx, phase)
	if phase == wtk.DrawPost {
		if sb := d.p.sb; sb != nil {
			sb.Paint()
		}
	}
	return res
}
