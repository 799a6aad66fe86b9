// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tk

import (
	"time"

	"github.com/golang/glog"

	"github.com/boston-engineering/wtk"
)

const defaultTitle = "Window"

// Win is a composite window widget: a header bar carrying a title and
// right-aligned control buttons, and a scrollable content page filling
// the rest of the window. Widgets attached to the window land on the
// content page; only the header and the page itself stay direct
// children.
//
// Win methods must be called only directly from an event handler
// goroutine or from a function that was enqueued using
// wtk.Application.Post or wtk.Application.PostWait.
type Win struct {
	*wtk.Widget
	header *wtk.Widget
	page   *Page
	title  string
}

// NewWin returns a newly created window attached to parent. A nil parent
// attaches the window to the screen. A non nil template makes the new
// window a copy of it: title, header, content page and every control
// button are replicated; the content of the template's page is not.
func NewWin(parent *wtk.Widget, template *Win) *Win {
	app := wtk.App()
	if parent == nil {
		parent = app.Root()
	}

	w := wtk.NewWidget(parent)
	win := &Win{Widget: w}
	w.SetOwner(win)
	w.SetClickable(true)
	theme := app.Theme()
	switch {
	case template == nil:
		win.title = defaultTitle
		w.SetStyle(theme.Win)
		// Attaching the window may have moved it onto a container's
		// scrollable, so size to the actual parent.
		w.SetSize(w.Parent().InnerSize())

		win.page = NewPage(w, nil)
		win.page.Protect()
		win.page.SetScrollbarMode(ScrollbarAuto)

		w.SetDispatcher(&winDispatcher{base: w.Dispatcher(), win: win})

		// The window dispatcher is live now, so the fresh header gets
		// redirected onto the page like any other child. Protect it and
		// move it back beside the page.
		win.header = wtk.NewWidget(w)
		win.header.Protect()
		win.header.SetParent(w)
		win.header.SetStyle(theme.Header)
		win.header.SetSize(wtk.Size{Width: w.Size().Width, Height: theme.HeaderHeight})
		win.header.SetClickable(true)
		win.header.SetDrawer(&headerDrawer{base: win.header.Drawer(), win: win})
	default:
		win.title = template.title
		w.SetStyle(*template.Widget.Style())
		w.SetSize(template.Size())

		win.header = template.header.Clone(w)
		win.header.SetDrawer(&headerDrawer{base: win.header.Drawer(), win: win})

		win.page = NewPage(w, template.page)
		win.page.Protect()

		for i := 0; i < template.header.Children(); i++ {
			b, ok := template.header.Child(i).Owner().(*Button)
			if !ok {
				continue
			}

			nb := NewButton(win.header, b)
			if c := b.Child(0); c != nil {
				if m, ok := c.Owner().(*Image); ok {
					NewImage(nb.Widget, m.Src())
				}
			}
		}

		w.SetDispatcher(&winDispatcher{base: w.Dispatcher(), win: win})
	}
	w.RefreshStyle()
	win.realign()
	glog.V(1).Infof("window %p created, title %q", win, win.title)
	return win
}

// redistribute returns the children of w that are not structurally
// protected, oldest first. It only inspects; the caller moves them.
func redistribute(w *wtk.Widget) (moves []*wtk.Widget) {
	for i := 0; i < w.Children(); i++ {
		if c := w.Child(i); !c.Protected() {
			moves = append(moves, c)
		}
	}
	return moves
}

// realign recomputes the header, control button and content page
// geometry from the window size and the header style. It is a nop while
// either structural child is missing.
func (win *Win) realign() {
	header, page := win.header, win.page
	if header == nil || page == nil {
		return
	}

	w := win.Widget
	header.SetPosition(wtk.Position{})
	header.SetSize(wtk.Size{Width: w.Size().Width, Height: header.Size().Height})
	hs := w.StyleOf(wtk.PartHeader)
	btnSize := header.InnerHeight()
	x := header.Size().Width - hs.PadRight - btnSize
	for i := 0; i < header.Children(); i++ {
		btn := header.Child(i)
		btn.SetSize(wtk.Size{Width: btnSize, Height: btnSize})
		btn.SetPosition(wtk.Position{X: x, Y: hs.PadTop})
		x -= hs.PadInner + btnSize
	}
	page.SetPosition(wtk.Position{Y: header.Size().Height})
	page.SetSize(wtk.Size{
		Width:  w.Size().Width,
		Height: w.Size().Height - header.Size().Height,
	})
}

// ----------------------------------------------------------------------------

// Title returns the window title.
func (win *Win) Title() string { return win.title }

// SetTitle replaces the window title. The empty string is a valid title.
// Only the header is repainted.
func (win *Win) SetTitle(s string) {
	win.title = s
	if h := win.header; h != nil {
		h.Invalidate(h.Area())
	}
}

// HeaderHeight returns the height of the window header.
func (win *Win) HeaderHeight() int {
	if win.header == nil {
		return 0
	}

	return win.header.Size().Height
}

// SetHeaderHeight sets the height of the window header and realigns the
// window.
func (win *Win) SetHeaderHeight(h int) {
	if win.header == nil {
		return
	}

	win.header.SetSize(wtk.Size{Width: win.header.Size().Width, Height: h})
	win.realign()
}

// SetContentSize sizes the window so its content area is w x h cells;
// the window becomes h plus the header height tall.
func (win *Win) SetContentSize(w, h int) {
	h += win.HeaderHeight()
	win.SetSize(wtk.Size{Width: w, Height: h})
}

// AddButton adds a control button rendering src to the window header and
// returns it. Buttons pack right to left in creation order. Passing an
// empty src will panic.
func (win *Win) AddButton(src string) *Button {
	if src == "" {
		panic("Win.AddButton: empty image source")
	}

	btn := NewButton(win.header, nil)
	wtk.App().ApplyTheme(btn.Widget, wtk.ThemeWinButton)
	m := NewImage(btn.Widget, src)
	m.SetClickable(false)
	win.realign()
	glog.V(2).Infof("window %p: added button %q", win, src)
	return btn
}

// Clean deletes the window content without deleting the content page
// itself. The header and its buttons are kept.
func (win *Win) Clean() {
	if win.page != nil {
		win.page.Clean()
	}
}

// Content returns the window content page.
func (win *Win) Content() *Page { return win.page }

// Layout returns how the window content is arranged.
func (win *Win) Layout() Layout {
	if win.page == nil {
		return LayoutOff
	}

	return win.page.Layout()
}

// SetLayout sets how the window content is arranged.
func (win *Win) SetLayout(l Layout) {
	if win.page != nil {
		win.page.SetLayout(l)
	}
}

// ScrollbarMode returns when the window content shows its scrollbar.
func (win *Win) ScrollbarMode() ScrollbarMode {
	if win.page == nil {
		return ScrollbarOff
	}

	return win.page.ScrollbarMode()
}

// SetScrollbarMode sets when the window content shows its scrollbar.
func (win *Win) SetScrollbarMode(m ScrollbarMode) {
	if win.page != nil {
		win.page.SetScrollbarMode(m)
	}
}

// AnimTime returns the focus scroll animation duration of the content
// page.
func (win *Win) AnimTime() time.Duration {
	if win.page == nil {
		return 0
	}

	return win.page.AnimTime()
}

// SetAnimTime sets the focus scroll animation duration of the content
// page.
func (win *Win) SetAnimTime(d time.Duration) {
	if win.page != nil {
		win.page.SetAnimTime(d)
	}
}

// SetDrag sets whether the window can be moved by dragging its body or
// its header.
func (win *Win) SetDrag(v bool) {
	win.Widget.SetDrag(v)
	if h := win.header; h != nil {
		h.SetDragParent(v)
	}
}

// Focus scrolls the window content the minimum amount that makes obj
// fully visible.
func (win *Win) Focus(obj *wtk.Widget, anim AnimEnable) {
	if win.page != nil {
		win.page.Focus(obj, anim)
	}
}

// InnerWidth returns the usable width of the content area: the content
// scrollable's inner width minus the window background's horizontal
// paddings.
func (win *Win) InnerWidth() int {
	if win.page == nil || win.page.Scrl() == nil {
		return 0
	}

	bg := win.StyleOf(wtk.PartMain)
	return win.page.Scrl().InnerWidth() - bg.PadLeft - bg.PadRight
}

// WinOf returns the window a control button belongs to, or nil if b is
// not a window control button.
func WinOf(b *Button) *Win {
	header := b.Parent()
	if header == nil {
		return nil
	}

	w := header.Parent()
	if w == nil {
		return nil
	}

	win, _ := w.Owner().(*Win)
	return win
}

// CloseEvent is an EventHandler closing the window a control button
// belongs to. Only a release closes the window; a press alone leaves it
// intact.
//
//	win.AddButton("×").OnEvent(tk.CloseEvent, nil)
func CloseEvent(b *Button, prev EventHandler, kind EventKind) {
	if prev != nil {
		prev(b, nil, kind)
	}

	if kind != Released {
		return
	}

	win := WinOf(b)
	if win == nil {
		return
	}

	glog.V(1).Infof("window %p closed, title %q", win, win.title)
	win.Delete()
}

type winDispatcher struct {
	base wtk.Dispatcher
	win  *Win
}

func (d *winDispatcher) Dispatch(w *wtk.Widget, sig wtk.Signal) wtk.Result {
	if res := d.base.Dispatch(w, sig); res != wtk.ResOK {
		return res
	}

	win := d.win
	switch sig := sig.(type) {
	case wtk.ChildChanged:
		if win.page != nil {
			for _, c := range redistribute(w) {
				c.SetParent(win.page.Widget)
			}
		}
	case wtk.StyleChanged:
		win.realign()
	case wtk.CoordChanged:
		if sig.Old.Size != w.Size() {
			win.realign()
		}
	case wtk.Cleanup:
		win.header = nil
		win.page = nil
		win.title = ""
	case wtk.Control:
		if p := win.page; p != nil {
			p.Dispatch(sig)
		}
	}
	return wtk.ResOK
}

func (d *winDispatcher) StyleOf(w *wtk.Widget, part wtk.Part) *wtk.PartStyle {
	switch part {
	case wtk.PartHeader:
		if h := d.win.header; h != nil {
			return h.Style()
		}
	case wtk.PartScrollbar, wtk.PartScrl:
		if p := d.win.page; p != nil {
			return p.StyleOf(part)
		}
	}
	return d.base.StyleOf(w, part)
}

func (d *winDispatcher) StateOf(w *wtk.Widget, part wtk.Part) wtk.State {
	switch part {
	case wtk.PartHeader:
		if h := d.win.header; h != nil {
			return h.State()
		}
	case wtk.PartScrollbar, wtk.PartScrl:
		if p := d.win.page; p != nil {
			return p.StateOf(part)
		}
	}
	return d.base.StateOf(w, part)
}

func (d *winDispatcher) Types() []string { return append(d.base.Types(), "win") }

// headerDrawer delegates every phase to the base drawer and renders the
// window title during the main phase.
type headerDrawer struct {
	base wtk.Drawer
	win  *Win
}

func (d *headerDrawer) Draw(w *wtk.Widget, ctx wtk.PaintContext, phase wtk.DrawPhase) wtk.DrawResult {
	res := d.base.Draw(w, ctx, phase)
	if phase != wtk.DrawMain {
		return res
	}

	title := d.win.title
	if title == "" {
		return res
	}

	hs := w.Style()
	sz := wtk.TextSize(title)
	y := hs.PadTop + (w.InnerHeight()-sz.Height)/2
	w.Printf(hs.PadLeft, y, hs.Style, "%s", title)
	return res
}
