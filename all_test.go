// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtk

import (
	"fmt"
	"os"
	"path"
	"runtime"
	"strings"
	"testing"

	"github.com/gdamore/tcell"
)

func caller(s string, va ...interface{}) {
	if s == "" {
		s = strings.Repeat("%v ", len(va))
	}
	_, fn, fl, _ := runtime.Caller(2)
	fmt.Fprintf(os.Stderr, "// caller: %s:%d: ", path.Base(fn), fl)
	fmt.Fprintf(os.Stderr, s, va...)
	fmt.Fprintln(os.Stderr)
	_, fn, fl, _ = runtime.Caller(1)
	fmt.Fprintf(os.Stderr, "// \tcallee: %s:%d: ", path.Base(fn), fl)
	fmt.Fprintln(os.Stderr)
	os.Stderr.Sync()
}

func dbg(s string, va ...interface{}) {
	if s == "" {
		s = strings.Repeat("%v ", len(va))
	}
	_, fn, fl, _ := runtime.Caller(1)
	fmt.Fprintf(os.Stderr, "// dbg %s:%d: ", path.Base(fn), fl)
	fmt.Fprintf(os.Stderr, s, va...)
	fmt.Fprintln(os.Stderr)
	os.Stderr.Sync()
}

func use(...interface{}) {}

func init() {
	use(caller, dbg)
}

func newTestApp(t *testing.T) *Application {
	t.Helper()
	a, err := newApplication(tcell.NewSimulationScreen(""), DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		a.PostWait(func() { a.Exit(nil) })
		if err := a.Wait(); err != nil {
			t.Fatal(err)
		}
	})
	return a
}

// ============================================================================

func TestJoin(t *testing.T) {
	for i, v := range []struct {
		r, s, e Rectangle
	}{
		{
			Rectangle{Position{46, 12}, Size{55, 27}},
			Rectangle{Position{45, 12}, Size{55, 27}},
			Rectangle{Position{45, 12}, Size{56, 27}},
		},
		// Joining a rectangle left of r must keep r's right edge.
		{
			Rectangle{Position{5, 0}, Size{10, 1}},
			Rectangle{Position{0, 0}, Size{2, 1}},
			Rectangle{Position{0, 0}, Size{15, 1}},
		},
		// Joining a rectangle above r must keep r's bottom edge.
		{
			Rectangle{Position{0, 5}, Size{1, 10}},
			Rectangle{Position{0, 0}, Size{1, 2}},
			Rectangle{Position{0, 0}, Size{1, 15}},
		},
		// Zero sized operands.
		{
			Rectangle{},
			Rectangle{Position{1, 2}, Size{3, 4}},
			Rectangle{Position{1, 2}, Size{3, 4}},
		},
		{
			Rectangle{Position{1, 2}, Size{3, 4}},
			Rectangle{},
			Rectangle{Position{1, 2}, Size{3, 4}},
		},
	} {
		r := v.r
		r.join(v.s)
		if g, e := r, v.e; g != e {
			t.Fatal(i, g, e)
		}
	}
}

func TestClip(t *testing.T) {
	for i, v := range []struct {
		r, s, e Rectangle
		ok      bool
	}{
		{NewRectangle(0, 0, 9, 9), NewRectangle(0, 0, 9, 9), NewRectangle(0, 0, 9, 9), true},
		{NewRectangle(0, 0, 9, 9), NewRectangle(5, 5, 14, 14), NewRectangle(5, 5, 9, 9), true},
		{NewRectangle(0, 0, 9, 9), NewRectangle(10, 0, 19, 9), Rectangle{}, false},
		{NewRectangle(2, 3, 7, 8), NewRectangle(0, 0, 100, 100), NewRectangle(2, 3, 7, 8), true},
	} {
		r := v.r
		if g, e := r.Clip(v.s), v.ok; g != e {
			t.Fatal(i, g, e)
		}

		if !v.ok {
			continue
		}

		if g, e := r, v.e; g != e {
			t.Fatal(i, g, e)
		}
	}
}

func TestWidgetTree(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		root := a.Root()
		w := NewWidget(root)
		if g, e := w.Parent(), root; g != e {
			t.Fatal(g, e)
		}

		if g, e := root.Children(), 1; g != e {
			t.Fatal(g, e)
		}

		c1 := NewWidget(w)
		c2 := NewWidget(w)
		if g, e := w.Child(0), c1; g != e {
			t.Fatal(g, e)
		}

		if g, e := w.Child(1), c2; g != e {
			t.Fatal(g, e)
		}

		// Back-to-front order: BringToFront moves the widget to the end.
		c1.BringToFront()
		if g, e := w.Child(1), c1; g != e {
			t.Fatal(g, e)
		}

		// Reparent.
		c2.SetParent(root)
		if g, e := c2.Parent(), root; g != e {
			t.Fatal(g, e)
		}

		if g, e := w.Children(), 1; g != e {
			t.Fatal(g, e)
		}

		// Reparenting to the current parent is a nop.
		c2.SetParent(root)
		if g, e := root.Children(), 2; g != e {
			t.Fatal(g, e)
		}

		// Delete removes the subtree.
		w.Delete()
		if g, e := root.Children(), 1; g != e {
			t.Fatal(g, e)
		}

		if c1.Parent() != nil {
			t.Fatal("child of a deleted widget keeps a parent")
		}

		if g, e := w.Dispatch(StyleChanged{}), ResDestroyed; g != e {
			t.Fatal(g, e)
		}
	})
}

func TestCleanupOrder(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		w := NewWidget(a.Root())
		c := NewWidget(w)
		var got []string
		w.SetDispatcher(&recordDispatcher{base: w.Dispatcher(), name: "parent", log: &got})
		c.SetDispatcher(&recordDispatcher{base: c.Dispatcher(), name: "child", log: &got})
		w.Delete()
		if g, e := strings.Join(got, ","), "child,parent"; g != e {
			t.Fatal(g, e)
		}
	})
}

type recordDispatcher struct {
	base Dispatcher
	log  *[]string
	name string
}

func (d *recordDispatcher) Dispatch(w *Widget, sig Signal) Result {
	if _, ok := sig.(Cleanup); ok {
		*d.log = append(*d.log, d.name)
	}
	return d.base.Dispatch(w, sig)
}

func (d *recordDispatcher) StyleOf(w *Widget, part Part) *PartStyle { return d.base.StyleOf(w, part) }
func (d *recordDispatcher) StateOf(w *Widget, part Part) State     { return d.base.StateOf(w, part) }
func (d *recordDispatcher) Types() []string                        { return d.base.Types() }

func TestInnerSize(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		w := NewWidget(a.Root())
		w.SetSize(Size{Width: 20, Height: 10})
		s := *w.Style()
		s.PadLeft = 1
		s.PadRight = 2
		s.PadTop = 3
		s.PadBottom = 1
		w.SetStyle(s)
		if g, e := w.InnerSize(), (Size{Width: 17, Height: 6}); g != e {
			t.Fatal(g, e)
		}

		w.SetSize(Size{Width: 2, Height: 2})
		if g, e := w.InnerSize(), (Size{}); g != e {
			t.Fatal(g, e)
		}
	})
}

func TestSetSizeClamp(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		w := NewWidget(a.Root())
		w.SetSize(Size{Width: -3, Height: 7})
		if g, e := w.Size(), (Size{Width: 0, Height: 7}); g != e {
			t.Fatal(g, e)
		}
	})
}

func TestCoordChangedOld(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		w := NewWidget(a.Root())
		w.SetPosition(Position{X: 3, Y: 4})
		w.SetSize(Size{Width: 5, Height: 6})
		var got []Rectangle
		w.SetDispatcher(&coordDispatcher{base: w.Dispatcher(), log: &got})
		w.SetSize(Size{Width: 8, Height: 6})
		w.SetSize(Size{Width: 8, Height: 6}) // Nop, must not dispatch.
		w.SetPosition(Position{X: 1, Y: 1})
		if g, e := len(got), 2; g != e {
			t.Fatal(g, e)
		}

		if g, e := got[0], (Rectangle{Position{3, 4}, Size{5, 6}}); g != e {
			t.Fatal(g, e)
		}

		if g, e := got[1], (Rectangle{Position{3, 4}, Size{8, 6}}); g != e {
			t.Fatal(g, e)
		}
	})
}

type coordDispatcher struct {
	base Dispatcher
	log  *[]Rectangle
}

func (d *coordDispatcher) Dispatch(w *Widget, sig Signal) Result {
	if s, ok := sig.(CoordChanged); ok {
		*d.log = append(*d.log, s.Old)
	}
	return d.base.Dispatch(w, sig)
}

func (d *coordDispatcher) StyleOf(w *Widget, part Part) *PartStyle { return d.base.StyleOf(w, part) }
func (d *coordDispatcher) StateOf(w *Widget, part Part) State     { return d.base.StateOf(w, part) }
func (d *coordDispatcher) Types() []string                        { return d.base.Types() }

func TestHit(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		root := a.Root()
		w := NewWidget(root)
		w.SetPosition(Position{X: 10, Y: 5})
		w.SetSize(Size{Width: 20, Height: 10})
		w.SetClickable(true)
		c := NewWidget(w)
		c.SetPosition(Position{X: 2, Y: 2})
		c.SetSize(Size{Width: 5, Height: 1})
		c.SetClickable(true)
		n := NewWidget(w) // Not clickable.
		n.SetPosition(Position{X: 8, Y: 8})
		n.SetSize(Size{Width: 2, Height: 1})

		if g, e := root.hit(Position{X: 12, Y: 7}), c; g != e {
			t.Fatal(g, e)
		}

		if g, e := root.hit(Position{X: 18, Y: 13}), w; g != e {
			t.Fatal(g, e)
		}

		if g := root.hit(Position{X: 0, Y: 0}); g != nil {
			t.Fatal(g)
		}
	})
}

func TestPointer(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		w := NewWidget(a.Root())
		w.SetPosition(Position{X: 2, Y: 2})
		w.SetSize(Size{Width: 10, Height: 3})
		w.SetClickable(true)
		var got []PointerEventKind
		w.SetPointerFunc(func(_ *Widget, kind PointerEventKind) { got = append(got, kind) })

		a.pointer.handle(a, tcell.NewEventMouse(5, 3, tcell.Button1, 0))
		if g, e := w.State()&StatePressed, StatePressed; g != e {
			t.Fatal(g, e)
		}

		a.pointer.handle(a, tcell.NewEventMouse(5, 3, 0, 0))
		if g, e := w.State()&StatePressed, State(0); g != e {
			t.Fatal(g, e)
		}

		if g, e := len(got), 3; g != e {
			t.Fatal(g, e)
		}

		if got[0] != PointerPressed || got[1] != PointerReleased || got[2] != PointerClicked {
			t.Fatal(got)
		}
	})
}

func TestPointerDrag(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		w := NewWidget(a.Root())
		w.SetPosition(Position{X: 5, Y: 5})
		w.SetSize(Size{Width: 10, Height: 5})
		w.SetClickable(true)
		w.SetDrag(true)
		var got []PointerEventKind
		w.SetPointerFunc(func(_ *Widget, kind PointerEventKind) { got = append(got, kind) })

		a.pointer.handle(a, tcell.NewEventMouse(7, 6, tcell.Button1, 0))
		a.pointer.handle(a, tcell.NewEventMouse(10, 8, tcell.Button1, 0))
		a.pointer.handle(a, tcell.NewEventMouse(10, 8, 0, 0))
		if g, e := w.Position(), (Position{X: 8, Y: 7}); g != e {
			t.Fatal(g, e)
		}

		// A drag suppresses the click but not the release.
		if g, e := len(got), 2; g != e {
			t.Fatal(g, e)
		}

		if got[0] != PointerPressed || got[1] != PointerReleased {
			t.Fatal(got)
		}
	})
}

func TestDragParent(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		w := NewWidget(a.Root())
		w.SetDrag(true)
		c := NewWidget(w)
		c.SetDragParent(true)
		if g, e := dragTarget(c), w; g != e {
			t.Fatal(g, e)
		}

		c.SetDragParent(false)
		if g := dragTarget(c); g != nil {
			t.Fatal(g)
		}
	})
}

func TestPaintContext(t *testing.T) {
	a := newTestApp(t)
	a.PostWait(func() {
		w := NewWidget(a.Root())
		w.SetPosition(Position{X: 3, Y: 3})
		w.SetSize(Size{Width: 10, Height: 4})
		var got []PaintContext
		var phases []DrawPhase
		w.SetDrawer(&recordDrawer{base: w.Drawer(), ctxs: &got, phases: &phases})
		got = got[:0]
		phases = phases[:0]
		w.Invalidate(w.Area())
		if g, e := len(got), 3; g != e {
			t.Fatal(g, e)
		}

		for _, ctx := range got {
			if g, e := ctx.Rectangle, (Rectangle{Size: Size{Width: 10, Height: 4}}); g != e {
				t.Fatal(g, e)
			}
		}
		if phases[0] != DrawCoverCheck || phases[1] != DrawMain || phases[2] != DrawPost {
			t.Fatal(phases)
		}

		// Partial invalidation clips the context.
		got = got[:0]
		phases = phases[:0]
		w.Invalidate(Rectangle{Position{X: 2, Y: 1}, Size{Width: 4, Height: 2}})
		if g, e := len(got), 3; g != e {
			t.Fatal(g, e)
		}

		if g, e := got[1].Rectangle, (Rectangle{Position{X: 2, Y: 1}, Size{Width: 4, Height: 2}}); g != e {
			t.Fatal(g, e)
		}
	})
}

type recordDrawer struct {
	base   Drawer
	ctxs   *[]PaintContext
	phases *[]DrawPhase
}

func (d *recordDrawer) Draw(w *Widget, ctx PaintContext, phase DrawPhase) DrawResult {
	*d.ctxs = append(*d.ctxs, ctx)
	*d.phases = append(*d.phases, phase)
	return d.base.Draw(w, ctx, phase)
}

func TestTextSize(t *testing.T) {
	for i, v := range []struct {
		s string
		e Size
	}{
		{"", Size{}},
		{"abc", Size{Width: 3, Height: 1}},
		{"日本", Size{Width: 4, Height: 1}},
	} {
		if g, e := TextSize(v.s), v.e; g != e {
			t.Fatal(i, g, e)
		}
	}
}

func TestFinalizeRepeat(t *testing.T) {
	a, err := newApplication(tcell.NewSimulationScreen(""), DefaultTheme())
	if err != nil {
		t.Fatal(err)
	}

	a.Finalize()
	a.Finalize() // Nop.
	a.Exit(nil)
	if err := a.Wait(); err != nil {
		t.Fatal(err)
	}
}

func TestThemeRoundTrip(t *testing.T) {
	var b strings.Builder
	src := DefaultTheme()
	src.HeaderHeight = 2
	if err := src.WriteTo(&b); err != nil {
		t.Fatal(err)
	}

	var dst Theme
	if err := dst.ReadFrom(strings.NewReader(b.String())); err != nil {
		t.Fatal(err)
	}

	if g, e := dst, *src; g != e {
		t.Fatal(g, e)
	}
}
