// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demoapp is a terminal application skeleton.
package demoapp

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell"

	"github.com/boston-engineering/wtk"
)

var (
	// Theme is the stock theme of the demos.
	Theme = &wtk.Theme{
		Screen:       wtk.PartStyle{Style: wtk.Style{Background: tcell.ColorTeal, Foreground: tcell.ColorWhite}},
		Widget:       wtk.PartStyle{Style: wtk.Style{Background: tcell.ColorSilver, Foreground: tcell.ColorBlack}},
		Win:          wtk.PartStyle{Style: wtk.Style{Background: tcell.ColorSilver, Foreground: tcell.ColorNavy}},
		Header:       wtk.PartStyle{Style: wtk.Style{Background: tcell.ColorNavy, Foreground: tcell.ColorSilver}, PadLeft: 1, PadInner: 1},
		HeaderHeight: 1,
		WinButton:    wtk.PartStyle{Style: wtk.Style{Background: tcell.ColorNavy, Foreground: tcell.ColorWhite}},
		Page:         wtk.PartStyle{Style: wtk.Style{Background: tcell.ColorSilver, Foreground: tcell.ColorNavy}},
		Scrl:         wtk.PartStyle{Style: wtk.Style{Background: tcell.ColorSilver, Foreground: tcell.ColorNavy}},
		Scrollbar:    wtk.PartStyle{Style: wtk.Style{Background: tcell.ColorSilver, Foreground: tcell.ColorNavy}},
		Image:        wtk.PartStyle{Style: wtk.Style{Background: tcell.ColorNavy, Foreground: tcell.ColorWhite}},
	}

	logoStyle  = wtk.Style{Background: Theme.Screen.Background, Foreground: tcell.ColorWhite}
	pnameStyle = wtk.Style{Background: Theme.Screen.Background, Foreground: tcell.ColorNavy}

	oLog = flag.String("log", "", "log file")
)

// New returns a newly created terminal application with a branded screen.
func New() *wtk.Application {
	logf := *oLog
	if logf == "" {
		logf = os.DevNull
	}
	var f *os.File
	fi, err := os.Stat(logf)
	switch {
	case err == nil:
		if fi.Mode()&os.ModeNamedPipe != 0 {
			if f, err = os.OpenFile(logf, os.O_WRONLY, 0666); err != nil {
				log.Fatal(err)
			}

			break
		}

		fallthrough
	default:
		if f, err = os.Create(logf); err != nil {
			log.Fatal(err)
		}
	}

	log.SetOutput(f)
	app, err := wtk.NewApplication(nil, Theme)
	if err != nil {
		log.Fatal(err)
	}

	const logo = "github.com/boston-engineering/wtk"
	pname := os.Args[0]
	if fi, err = os.Stat(pname); err == nil {
		pname = fmt.Sprintf("%s %s", pname, fi.ModTime().Format("2006-01-02 15:04:05"))
	}
	app.PostWait(func() {
		root := app.Root()
		root.SetDrawer(&brandDrawer{base: root.Drawer(), logo: logo, pname: pname})
		root.Invalidate(root.Area())
	})
	return app
}

// brandDrawer stamps the program name and the toolkit logo on the screen
// corners, above everything the base drawer renders.
type brandDrawer struct {
	base  wtk.Drawer
	logo  string
	pname string
}

func (d *brandDrawer) Draw(w *wtk.Widget, ctx wtk.PaintContext, phase wtk.DrawPhase) wtk.DrawResult {
	res := d.base.Draw(w, ctx, phase)
	if phase != wtk.DrawMain {
		return res
	}

	sz := w.Size()
	w.Printf(sz.Width-1-wtk.TextSize(d.pname).Width, 0, pnameStyle, "%s", d.pname)
	w.Printf(sz.Width-1-wtk.TextSize(d.logo).Width, sz.Height-2, logoStyle, "%s", d.logo)
	return res
}
