// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wtk

import (
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/gdamore/tcell"
)

var (
	zeroStyle Style
)

// Style represents a text style.
type Style struct {
	Foreground tcell.Color
	Background tcell.Color
	Attr       tcell.AttrMask
}

// IsZero returns whether s is the zero value of Style.
func (s *Style) IsZero() bool { return *s == zeroStyle }

// NewStyle returns Style having values filled from s.
func NewStyle(s tcell.Style) Style {
	f, b, a := s.Decompose()
	return Style{f, b, a}
}

// TCellStyle converts a Style to a tcell.Style value.
func (s Style) TCellStyle() tcell.Style {
	return tcell.Style(0).
		Foreground(s.Foreground).
		Background(s.Background).
		Bold(s.Attr&tcell.AttrBold != 0).
		Blink(s.Attr&tcell.AttrBlink != 0).
		Reverse(s.Attr&tcell.AttrReverse != 0).
		Underline(s.Attr&tcell.AttrUnderline != 0).
		Dim(s.Attr&tcell.AttrDim != 0)

}

// PartStyle represents the visual style of one widget part: colors plus
// the box paddings, in cells, applied inside the part's rectangle.
type PartStyle struct {
	Style
	PadLeft   int
	PadRight  int
	PadTop    int
	PadBottom int
	PadInner  int
}

// Theme represents visual styles of the toolkit widgets.
type Theme struct {
	Screen       PartStyle
	Widget       PartStyle
	Win          PartStyle
	Header       PartStyle
	HeaderHeight int
	WinButton    PartStyle
	Page         PartStyle
	Scrl         PartStyle
	Scrollbar    PartStyle
	Image        PartStyle
}

// Clear sets t to its zero value.
func (t *Theme) Clear() { *t = Theme{} }

// WriteTo writes t to w in JSON format.
func (t *Theme) WriteTo(w io.Writer) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}

// ReadFrom reads t from r in JSON format. Values of fields having no JSON data
// are preserved.
func (t *Theme) ReadFrom(r io.Reader) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}

	return json.Unmarshal(b, t)
}

// DefaultTheme returns the stock theme.
func DefaultTheme() *Theme {
	return &Theme{
		Screen:       PartStyle{Style: Style{Background: tcell.ColorTeal, Foreground: tcell.ColorWhite}},
		Widget:       PartStyle{Style: Style{Background: tcell.ColorSilver, Foreground: tcell.ColorBlack}},
		Win:          PartStyle{Style: Style{Background: tcell.ColorSilver, Foreground: tcell.ColorNavy}},
		Header:       PartStyle{Style: Style{Background: tcell.ColorNavy, Foreground: tcell.ColorSilver}, PadLeft: 1, PadInner: 1},
		HeaderHeight: 1,
		WinButton:    PartStyle{Style: Style{Background: tcell.ColorNavy, Foreground: tcell.ColorWhite}},
		Page:         PartStyle{Style: Style{Background: tcell.ColorSilver, Foreground: tcell.ColorNavy}},
		Scrl:         PartStyle{Style: Style{Background: tcell.ColorSilver, Foreground: tcell.ColorNavy}},
		Scrollbar:    PartStyle{Style: Style{Background: tcell.ColorSilver, Foreground: tcell.ColorNavy}},
		Image:        PartStyle{Style: Style{Background: tcell.ColorNavy, Foreground: tcell.ColorWhite}},
	}
}

// ThemeKind selects the theme entry ApplyTheme assigns to a widget.
type ThemeKind int

// ThemeKind values.
const (
	ThemeScreen ThemeKind = iota
	ThemeWidget
	ThemeWin
	ThemeHeader
	ThemeWinButton
	ThemePage
	ThemeScrl
	ThemeScrollbar
	ThemeImage
)

// ApplyTheme sets the widget's main style from the application theme and
// refreshes the widget.
func (a *Application) ApplyTheme(w *Widget, kind ThemeKind) {
	t := a.theme
	switch kind {
	case ThemeScreen:
		w.style = t.Screen
	case ThemeWidget:
		w.style = t.Widget
	case ThemeWin:
		w.style = t.Win
	case ThemeHeader:
		w.style = t.Header
	case ThemeWinButton:
		w.style = t.WinButton
	case ThemePage:
		w.style = t.Page
	case ThemeScrl:
		w.style = t.Scrl
	case ThemeScrollbar:
		w.style = t.Scrollbar
	case ThemeImage:
		w.style = t.Image
	}
	w.Dispatch(StyleChanged{})
	w.Invalidate(w.Area())
}
