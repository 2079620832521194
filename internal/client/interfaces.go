// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until a user logs in and returns the email.
	// It returns tui.ErrUserQuit when the user closes the program instead.
	LoginFlow(ctx context.Context) (string, error)
	// MainLoop serves the logged-in user and reports whether they logged out.
	MainLoop(ctx context.Context) (logout bool, err error)
}
