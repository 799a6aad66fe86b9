// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tk

import (
	"github.com/mattn/go-runewidth"

	"github.com/boston-engineering/wtk"
)

// Image is a widget rendering a glyph or short string source. Images are
// not clickable by default.
type Image struct {
	*wtk.Widget
	src string
}

// NewImage returns a newly created image attached to parent, rendering
// src and sized to it.
func NewImage(parent *wtk.Widget, src string) *Image {
	w := wtk.NewWidget(parent)
	m := &Image{Widget: w, src: src}
	w.SetOwner(m)
	w.SetStyle(wtk.App().Theme().Image)
	w.SetSize(wtk.TextSize(src))
	w.SetDrawer(&imageDrawer{base: w.Drawer(), m: m})
	return m
}

// Src returns the image source.
func (m *Image) Src() string { return m.src }

// SetSrc replaces the image source and resizes the image to it.
func (m *Image) SetSrc(src string) {
	m.src = src
	m.SetSize(wtk.TextSize(src))
	m.Invalidate(m.Area())
}

type imageDrawer struct {
	base wtk.Drawer
	m    *Image
}

func (d *imageDrawer) Draw(w *wtk.Widget, ctx wtk.PaintContext, phase wtk.DrawPhase) wtk.DrawResult {
	res := d.base.Draw(w, ctx, phase)
	if phase != wtk.DrawMain {
		return res
	}

	src := d.m.src
	if src == "" {
		return res
	}

	x := (w.Size().Width - runewidth.StringWidth(src)) / 2
	y := (w.Size().Height - 1) / 2
	w.Printf(x, y, w.Style().Style, "%s", src)
	return res
}
