// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtk

import (
	"sync"

	"github.com/gdamore/tcell"
	"github.com/gdamore/tcell/encoding"
	"github.com/golang/glog"
)

const (
	anyButton = tcell.Button8<<1 - 1
)

// Application represents an interactive terminal application owning the
// widget tree.
//
// The widget tree is owned by the event goroutine the Application
// starts. Mutate it from other goroutines only via Post or PostWait.
type Application struct {
	invalidated  Rectangle      // Accumulated area to repaint.
	onKey        func(key tcell.Key, mod tcell.ModMask, r rune) bool
	onceFinalize sync.Once    //
	onceWait     sync.Once    //
	pointer      pointerState //
	root         *Widget      //
	screen       tcell.Screen //
	size         Size         //
	terminated   bool         //
	theme        *Theme       //
	updateLevel  int          //
	wait         chan error   //
}

// NewApplication returns a newly created Application backed by screen,
// or an error, if any. A nil screen allocates the real terminal screen;
// tests pass a tcell.SimulationScreen.
//
//	// Skeleton example.
//	func main() {
//		app, err := wtk.NewApplication(nil, theme)
//		if err != nil {
//			log.Fatalf("error: %v", err)
//		}
//
//		defer app.Finalize()
//
//		...
//
//		if err := app.Wait(); err != nil {
//			log.Println("error: %v", err)
//		}
//	}
//
// Calling this function more than once will panic.
func NewApplication(screen tcell.Screen, theme *Theme) (*Application, error) {
	done := false
	var a *Application
	var err error
	onceNewApplication.Do(func() {
		a, err = newApplication(screen, theme)
		done = true
	})
	if !done {
		panic("NewApplication called more than once")
	}

	return a, err
}

func newApplication(screen tcell.Screen, t *Theme) (*Application, error) {
	encoding.Register()
	var err error
	if screen == nil {
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, err
		}
	}

	if err = screen.Init(); err != nil {
		return nil, err
	}

	var size Size
	size.Width, size.Height = screen.Size()
	theme := *t
	app = &Application{
		screen: screen,
		size:   size,
		theme:  &theme,
		wait:   make(chan error, 1),
	}

	app.root = newRootWidget(app)
	app.screen.EnableMouse()
	go app.handleEvents()
	return app, nil
}

func (a *Application) handleEvents() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		switch e := ev.(type) {
		case *tcell.EventResize:
			a.setSize(newSize(e.Size()))
		case *tcell.EventKey:
			if h := a.onKey; h != nil {
				h(e.Key(), e.Modifiers(), e.Rune())
			}
		case *tcell.EventMouse:
			a.pointer.handle(a, e)
		case *eventFunc:
			e.f()
			e.dispose()
		default:
			glog.V(2).Infof("unhandled event %T", e)
		}
	}
}

func (a *Application) setSize(s Size) {
	if a.size == s {
		return
	}

	a.size = s
	a.beginUpdate()
	a.root.SetSize(s)
	a.invalidated = Rectangle{Size: s}
	a.endUpdate()
}

// beginUpdate marks the start of one or more updates to the application
// screen.
func (a *Application) beginUpdate() {
	a.updateLevel++
	if a.updateLevel == 1 {
		a.invalidated = Rectangle{}
	}
}

// endUpdate marks the end of one or more updates to the application
// screen. Leaving the outermost update paints the accumulated
// invalidated area.
func (a *Application) endUpdate() {
	a.updateLevel--
	if a.updateLevel != 0 {
		return
	}

	inv := a.invalidated
	if inv.IsZero() {
		return
	}

	a.updateLevel++ // Invalidate calls made while painting are dropped.
	a.root.paint(inv)
	a.updateLevel--
	a.invalidated = Rectangle{}
	a.screen.Show()
}

func (a *Application) setCell(x, y int, mainc rune, combc []rune, style tcell.Style) {
	a.screen.SetContent(x, y, mainc, combc, style)
}

// ----------------------------------------------------------------------------

// Root returns the root widget representing the screen.
func (a *Application) Root() *Widget { return a.root }

// Size returns the size of the terminal the application runs in.
func (a *Application) Size() Size { return a.size }

// Theme returns the application theme.
func (a *Application) Theme() *Theme { return a.theme }

// OnKey sets the key event handler, replacing any previous one. The
// handler reports whether it consumed the event.
func (a *Application) OnKey(h func(key tcell.Key, mod tcell.ModMask, r rune) bool) {
	a.onKey = h
}

// Post puts f in the event queue, if the queue is not full, and executes
// it on dequeuing the event.
func (a *Application) Post(f func()) { a.screen.PostEvent(newEventFunc(f)) }

// PostWait puts f in the event queue and blocks until f was executed.
func (a *Application) PostWait(f func()) {
	done := make(chan struct{})
	a.screen.PostEventWait(newEventFunc(func() {
		f()
		close(done)
	}))
	<-done
}

// Exit terminates the interactive terminal application and returns err
// from Wait(). Calling this method more than once will panic.
func (a *Application) Exit(err error) {
	if a.terminated {
		panic("Application.Exit called more than once")
	}

	a.Finalize()
	a.terminated = true
	a.wait <- err
}

// Finalize should be called when main exits to restore the normal
// terminal state. Repeated calls, including the one Exit performs, are
// nops.
func (a *Application) Finalize() {
	a.onceFinalize.Do(func() { a.screen.Fini() })
}

// Wait blocks until the interactive terminal application terminates.
//
// Calling this method more than once will panic.
func (a *Application) Wait() error {
	done := false
	var err error
	a.onceWait.Do(func() {
		err = <-a.wait
		done = true
	})
	if !done {
		panic("Application.Wait called more than once")
	}

	return err
}

// Sync updates every character cell of the application screen.
func (a *Application) Sync() { a.screen.Sync() }
