// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore
// +build ignore

// $ go run demo.go
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell"

	"github.com/boston-engineering/wtk"
	"github.com/boston-engineering/wtk/internal/demoapp"
	"github.com/boston-engineering/wtk/tk"
)

var app *wtk.Application

func newWindow(x, y int) {
	a := app.Size()
	if x < 0 || y < 0 {
		x = rand.Intn(a.Width - a.Width/5)
		y = rand.Intn(a.Height - a.Height/5)
	}
	w := rand.Intn(a.Width/2) + 20
	h := rand.Intn(a.Height/2) + 8

	win := tk.NewWin(nil, nil)
	win.SetPosition(wtk.Position{X: x, Y: y})
	win.SetContentSize(w, h)
	win.SetTitle(time.Now().Format("15:04:05"))
	win.SetDrag(true)
	win.AddButton("×").OnEvent(tk.CloseEvent, nil)
	win.AddButton("+").OnEvent(func(b *tk.Button, prev tk.EventHandler, kind tk.EventKind) {
		if prev != nil {
			prev(b, nil, kind)
		}

		if kind == tk.Clicked {
			newWindow(-1, -1)
		}
	}, nil)

	win.SetLayout(tk.LayoutColumn)
	for i := 0; i < h+10; i++ {
		line := wtk.NewWidget(win.Widget) // Lands on the content page.
		line.SetSize(wtk.Size{Width: w - 4, Height: 1})
		line.SetDrawer(&lineDrawer{base: line.Drawer(), text: fmt.Sprintf("content line %v", i)})
	}
	win.BringToFront()
}

type lineDrawer struct {
	base wtk.Drawer
	text string
}

func (d *lineDrawer) Draw(w *wtk.Widget, ctx wtk.PaintContext, phase wtk.DrawPhase) wtk.DrawResult {
	res := d.base.Draw(w, ctx, phase)
	if phase == wtk.DrawMain {
		w.Printf(0, 0, w.Style().Style, "%s", d.text)
	}
	return res
}

func main() {
	flag.Parse()
	app = demoapp.New()
	defer app.Finalize()

	app.OnKey(func(key tcell.Key, mod tcell.ModMask, r rune) bool {
		switch {
		case key == tcell.KeyESC, key == tcell.KeyCtrlQ:
			app.Post(func() { app.Exit(nil) })
			return true
		case r == 'n':
			app.Post(func() { newWindow(-1, -1) })
			return true
		}
		return false
	})
	app.PostWait(func() { newWindow(-1, -1) })
	if err := app.Wait(); err != nil {
		panic(err)
	}
}
