// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tk

import (
	"github.com/boston-engineering/wtk"
)

// EventKind enumerates button interaction events.
type EventKind int

// EventKind values.
const (
	Pressed  EventKind = iota // The pointer went down on the button.
	Released                  // The pointer went up after a press.
	Clicked                   // A release on the button without dragging.
)

// EventHandler handles a button event. If there is a previously set
// handler for the event, prev is non nil and the handler then decides
// whether to call it and when.
type EventHandler func(b *Button, prev EventHandler, kind EventKind)

type eventHandlerList struct {
	f    func() // Finalizer.
	h    EventHandler
	prev *eventHandlerList
}

func addEventHandler(l **eventHandlerList, h EventHandler, finalize func()) {
	*l = &eventHandlerList{finalize, h, *l}
}

func removeEventHandler(l **eventHandlerList) {
	node := *l
	if node == nil {
		panic("no event handler set")
	}

	*l = node.prev
	if f := node.f; f != nil {
		f()
	}
}

func (l *eventHandlerList) clear() {
	for l != nil {
		if f := l.f; f != nil {
			f()
		}
		l = l.prev
	}
}

func (l *eventHandlerList) handle(b *Button, kind EventKind) {
	if l == nil {
		return
	}

	var prev EventHandler
	if p := l.prev; p != nil {
		prev = func(b *Button, _ EventHandler, kind EventKind) { p.handle(b, kind) }
	}
	l.h(b, prev, kind)
}

// Button is a clickable widget delivering Pressed, Released and Clicked
// events to its handler chain.
//
// Button methods must be called only directly from an event handler
// goroutine or from a function that was enqueued using
// wtk.Application.Post or wtk.Application.PostWait.
type Button struct {
	*wtk.Widget
	onEvent *eventHandlerList
}

// NewButton returns a newly created button attached to parent. A non nil
// template makes the new button a copy of it, except for the handler
// chain.
func NewButton(parent *wtk.Widget, template *Button) *Button {
	var w *wtk.Widget
	switch {
	case template != nil:
		w = template.Widget.Clone(parent)
	default:
		w = wtk.NewWidget(parent)
	}
	b := &Button{Widget: w}
	w.SetOwner(b)
	w.SetClickable(true)
	w.SetDispatcher(&buttonDispatcher{base: w.Dispatcher(), b: b})
	w.SetPointerFunc(b.pointerFunc)
	return b
}

func (b *Button) pointerFunc(_ *wtk.Widget, kind wtk.PointerEventKind) {
	switch kind {
	case wtk.PointerPressed:
		b.Send(Pressed)
	case wtk.PointerReleased:
		b.Send(Released)
	case wtk.PointerClicked:
		b.Send(Clicked)
	}
}

// OnEvent sets a button event handler. When the event handler is
// removed, finalize is called, if not nil.
func (b *Button) OnEvent(h EventHandler, finalize func()) {
	addEventHandler(&b.onEvent, h, finalize)
}

// RemoveOnEvent undoes the most recent OnEvent call. The function will
// panic if there is no handler set.
func (b *Button) RemoveOnEvent() { removeEventHandler(&b.onEvent) }

// Send delivers kind to the button's handler chain.
func (b *Button) Send(kind EventKind) { b.onEvent.handle(b, kind) }

type buttonDispatcher struct {
	b    *Button
	base wtk.Dispatcher
}

func (d *buttonDispatcher) Dispatch(w *wtk.Widget, sig wtk.Signal) wtk.Result {
	if res := d.base.Dispatch(w, sig); res != wtk.ResOK {
		return res
	}

	if _, ok := sig.(wtk.Cleanup); ok {
		d.b.onEvent.clear()
		d.b.onEvent = nil
	}
	return wtk.ResOK
}

func (d *buttonDispatcher) StyleOf(w *wtk.Widget, part wtk.Part) *wtk.PartStyle {
	return d.base.StyleOf(w, part)
}

func (d *buttonDispatcher) StateOf(w *wtk.Widget, part wtk.Part) wtk.State {
	return d.base.StateOf(w, part)
}

func (d *buttonDispatcher) Types() []string { return append(d.base.Types(), "btn") }
