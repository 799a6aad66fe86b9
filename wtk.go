// Copyright 2026 The WTK Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wtk is a retained-mode widget toolkit for terminal applications.
//
// A wtk program owns a tree of widgets rooted at the application screen.
// Widgets have a position and size relative to their parent, a per-part
// style, and two pluggable behaviors: a Dispatcher answering structural
// notifications and a Drawer rendering the widget in phases. Composite
// widgets (package tk) are built by wrapping the base Dispatcher and
// Drawer by composition.
//
// The widget tree is owned by the application event goroutine. Use
// Application.Post or Application.PostWait to mutate the tree from other
// goroutines.
package wtk

import (
	"sync"
)

var (
	app                *Application
	onceNewApplication sync.Once
)

// App returns the application instance or nil if NewApplication was not
// called yet.
func App() *Application { return app }
