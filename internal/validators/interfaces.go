// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the cipher
// pipeline.
//
// A [Validator] inspects one value and returns a sentinel from errors.go
// describing the first rule it breaks. Callers may name the fields to check;
// with no names every field is checked.
package validators

import "context"

// Validator validates a value, optionally limited to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
