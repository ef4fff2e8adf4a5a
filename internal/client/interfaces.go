// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-cipher-drop/internal/tui"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes one encrypt or decrypt call and returns when the result
	// has been printed.
	Run(ctx context.Context) error
}

// Form collects missing request fields from the user.
type Form interface {
	Form(ctx context.Context, req tui.Request) (tui.Request, error)
}
