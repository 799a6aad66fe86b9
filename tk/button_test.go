// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tk

import (
	"testing"

	"github.com/boston-engineering/wtk"
)

func TestButtonEvents(t *testing.T) {
	post(func() {
		b := NewButton(app.Root(), nil)
		defer b.Delete()

		var got []EventKind
		b.OnEvent(func(b *Button, prev EventHandler, kind EventKind) {
			if prev != nil {
				prev(b, nil, kind)
			}
			got = append(got, kind)
		}, nil)

		b.Send(Pressed)
		b.Send(Released)
		b.Send(Clicked)
		if len(got) != 3 || got[0] != Pressed || got[1] != Released || got[2] != Clicked {
			t.Fatal(got)
		}
	})
}

func TestButtonHandlerChain(t *testing.T) {
	post(func() {
		b := NewButton(app.Root(), nil)
		defer b.Delete()

		var got []string
		b.OnEvent(func(b *Button, prev EventHandler, kind EventKind) {
			got = append(got, "first")
		}, nil)
		b.OnEvent(func(b *Button, prev EventHandler, kind EventKind) {
			got = append(got, "second")
			if prev != nil {
				prev(b, nil, kind)
			}
		}, nil)

		b.Send(Clicked)
		if len(got) != 2 || got[0] != "second" || got[1] != "first" {
			t.Fatal(got)
		}

		// The most recent handler can also swallow the event.
		got = got[:0]
		b.OnEvent(func(b *Button, prev EventHandler, kind EventKind) {
			got = append(got, "third")
		}, nil)
		b.Send(Clicked)
		if len(got) != 1 || got[0] != "third" {
			t.Fatal(got)
		}
	})
}

func TestButtonRemoveOnEvent(t *testing.T) {
	post(func() {
		b := NewButton(app.Root(), nil)
		defer b.Delete()

		finalized := false
		var got []EventKind
		b.OnEvent(func(b *Button, prev EventHandler, kind EventKind) {
			got = append(got, kind)
		}, func() { finalized = true })

		b.RemoveOnEvent()
		if !finalized {
			t.Fatal("finalizer not called")
		}

		b.Send(Clicked)
		if len(got) != 0 {
			t.Fatal(got)
		}
	})
}

func TestButtonPointer(t *testing.T) {
	post(func() {
		b := NewButton(app.Root(), nil)
		defer b.Delete()

		var got []EventKind
		b.OnEvent(func(b *Button, prev EventHandler, kind EventKind) {
			got = append(got, kind)
		}, nil)

		// Synthesized pointer events map onto button events.
		b.pointerFunc(b.Widget, wtk.PointerPressed)
		b.pointerFunc(b.Widget, wtk.PointerReleased)
		b.pointerFunc(b.Widget, wtk.PointerClicked)
		if len(got) != 3 || got[0] != Pressed || got[1] != Released || got[2] != Clicked {
			t.Fatal(got)
		}
	})
}

func TestButtonClone(t *testing.T) {
	post(func() {
		src := NewButton(app.Root(), nil)
		defer src.Delete()

		src.SetSize(wtk.Size{Width: 6, Height: 2})
		calls := 0
		src.OnEvent(func(b *Button, prev EventHandler, kind EventKind) { calls++ }, nil)

		c := NewButton(app.Root(), src)
		defer c.Delete()

		if g, e := c.Size(), src.Size(); g != e {
			t.Fatal(g, e)
		}

		if !c.Clickable() {
			t.Fatal("cloned button not clickable")
		}

		// The handler chain is not copied.
		c.Send(Clicked)
		if g, e := calls, 0; g != e {
			t.Fatal(g, e)
		}
	})
}

func TestButtonTypes(t *testing.T) {
	post(func() {
		b := NewButton(app.Root(), nil)
		defer b.Delete()

		types := b.Types()
		if len(types) != 2 || types[0] != "widget" || types[1] != "btn" {
			t.Fatal(types)
		}
	})
}

func TestImage(t *testing.T) {
	post(func() {
		m := NewImage(app.Root(), "×")
		defer m.Delete()

		if g, e := m.Src(), "×"; g != e {
			t.Fatal(g, e)
		}

		if g, e := m.Size(), (wtk.Size{Width: 1, Height: 1}); g != e {
			t.Fatal(g, e)
		}

		if m.Clickable() {
			t.Fatal("images are clickable by default")
		}

		m.SetSrc("日本")
		if g, e := m.Size(), (wtk.Size{Width: 4, Height: 1}); g != e {
			t.Fatal(g, e)
		}
	})
}
