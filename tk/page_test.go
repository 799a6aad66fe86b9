// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tk

import (
	"testing"

	"github.com/boston-engineering/wtk"
)

func newTestPage(sz wtk.Size) *Page {
	p := NewPage(app.Root(), nil)
	p.SetSize(sz)
	return p
}

func TestPageRedirect(t *testing.T) {
	post(func() {
		p := newTestPage(wtk.Size{Width: 10, Height: 5})
		defer p.Delete()

		w := wtk.NewWidget(p.Widget)
		if g, e := w.Parent(), p.Scrl(); g != e {
			t.Fatal(g, e)
		}

		// The scrollable itself stays a direct child.
		if g, e := p.Widget.Children(), 1; g != e {
			t.Fatal(g, e)
		}
	})
}

func TestPageScroll(t *testing.T) {
	post(func() {
		p := newTestPage(wtk.Size{Width: 10, Height: 5})
		defer p.Delete()

		c := wtk.NewWidget(p.Widget)
		c.SetSize(wtk.Size{Width: 1, Height: 20})

		if g, e := p.Scrl().Size().Height, 20; g != e {
			t.Fatal(g, e)
		}

		p.ScrollBy(0, 3)
		if g, e := p.Scrl().Position().Y, -3; g != e {
			t.Fatal(g, e)
		}

		// Scrolling clamps at the content end.
		p.ScrollBy(0, 1000)
		if g, e := p.Scrl().Position().Y, 5-20; g != e {
			t.Fatal(g, e)
		}

		// And at the content start.
		p.ScrollBy(0, -1000)
		if g, e := p.Scrl().Position().Y, 0; g != e {
			t.Fatal(g, e)
		}
	})
}

func TestPageScrollbarModes(t *testing.T) {
	post(func() {
		p := newTestPage(wtk.Size{Width: 10, Height: 5})
		defer p.Delete()

		// Content fits: auto hides the scrollbar.
		if p.Scrollbar().Shown() {
			t.Fatal("scrollbar shown without overflow")
		}

		c := wtk.NewWidget(p.Widget)
		c.SetSize(wtk.Size{Width: 1, Height: 20})
		if !p.Scrollbar().Shown() {
			t.Fatal("scrollbar hidden with overflow")
		}

		p.SetScrollbarMode(ScrollbarOff)
		if p.Scrollbar().Shown() {
			t.Fatal("scrollbar shown in mode off")
		}

		p.SetScrollbarMode(ScrollbarOn)
		if !p.Scrollbar().Shown() {
			t.Fatal("scrollbar hidden in mode on")
		}

		p.SetScrollbarMode(ScrollbarHide)
		if p.Scrollbar().Shown() {
			t.Fatal("scrollbar shown in mode hide")
		}
	})
}

func TestPageLayoutColumn(t *testing.T) {
	post(func() {
		p := newTestPage(wtk.Size{Width: 10, Height: 20})
		defer p.Delete()

		var cs []*wtk.Widget
		for i := 0; i < 3; i++ {
			c := wtk.NewWidget(p.Widget)
			c.SetSize(wtk.Size{Width: 4, Height: 2})
			cs = append(cs, c)
		}
		st := *p.Scrl().Style()
		st.PadInner = 1
		p.Scrl().SetStyle(st)
		p.SetLayout(LayoutColumn)

		for i, c := range cs {
			if g, e := c.Position(), (wtk.Position{Y: i * 3}); g != e {
				t.Fatal(i, g, e)
			}
		}
	})
}

func TestPageLayoutRow(t *testing.T) {
	post(func() {
		p := newTestPage(wtk.Size{Width: 20, Height: 5})
		defer p.Delete()

		var cs []*wtk.Widget
		for i := 0; i < 3; i++ {
			c := wtk.NewWidget(p.Widget)
			c.SetSize(wtk.Size{Width: 2, Height: 2})
			cs = append(cs, c)
		}
		p.SetLayout(LayoutRow)

		for i, c := range cs {
			if g, e := c.Position(), (wtk.Position{X: i * 2}); g != e {
				t.Fatal(i, g, e)
			}
		}
	})
}

func TestPageFocus(t *testing.T) {
	post(func() {
		p := newTestPage(wtk.Size{Width: 10, Height: 5})
		defer p.Delete()

		var cs []*wtk.Widget
		for i := 0; i < 10; i++ {
			c := wtk.NewWidget(p.Widget)
			c.SetSize(wtk.Size{Width: 4, Height: 2})
			c.SetPosition(wtk.Position{Y: 2 * i})
		}
		cs = append(cs, p.Scrl().Child(9))

		last := p.Scrl().Child(9) // At y 18..19, size 20 content.
		p.Focus(last, AnimOff)
		y := p.Scrl().Position().Y
		if g, e := y+18, 5-2; g != e { // Bottom aligned into the viewport.
			t.Fatal(g, e)
		}

		first := p.Scrl().Child(0)
		p.Focus(first, AnimOff)
		if g, e := p.Scrl().Position().Y, 0; g != e {
			t.Fatal(g, e)
		}

		// Widgets outside the scrollable are ignored.
		before := p.Scrl().Position()
		p.Focus(app.Root(), AnimOff)
		if g, e := p.Scrl().Position(), before; g != e {
			t.Fatal(g, e)
		}

		_ = cs
	})
}

func TestPageClean(t *testing.T) {
	post(func() {
		p := newTestPage(wtk.Size{Width: 10, Height: 5})
		defer p.Delete()

		for i := 0; i < 4; i++ {
			wtk.NewWidget(p.Widget)
		}
		if g, e := p.Scrl().Children(), 4; g != e {
			t.Fatal(g, e)
		}

		scrl := p.Scrl()
		p.Clean()
		if g, e := p.Scrl().Children(), 0; g != e {
			t.Fatal(g, e)
		}

		if g, e := p.Scrl(), scrl; g != e {
			t.Fatal(g, e)
		}
	})
}

func TestScrollbarSetView(t *testing.T) {
	post(func() {
		w := wtk.NewWidget(app.Root())
		defer w.Delete()

		s := NewScrollbar(w)
		s.SetSize(wtk.Size{Width: 1, Height: 10})

		s.SetView(0, 10, 20)
		if g, e := s.HandlePosition(), 0; g != e {
			t.Fatal(g, e)
		}

		if g, e := s.HandleSize(), 4; g != e {
			t.Fatal(g, e)
		}

		s.SetView(10, 10, 20)
		if g, e := s.HandlePosition(), 4; g != e {
			t.Fatal(g, e)
		}

		// Unknown content size zeroes the handle.
		s.SetView(0, 10, 0)
		if g, e := s.HandleSize(), 0; g != e {
			t.Fatal(g, e)
		}
	})
}

func TestScrollbarInvalidOrigin(t *testing.T) {
	post(func() {
		w := wtk.NewWidget(app.Root())
		defer w.Delete()

		s := NewScrollbar(w)
		s.SetSize(wtk.Size{Width: 1, Height: 10})
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		s.SetView(-1, 10, 20)
	})
}
