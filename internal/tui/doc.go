// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal form of the client.
//
// The form collects the operation, the text or token, and the password, then
// hands them back to the caller. It never talks to the server itself. All
// drawing goes to stderr so stdout stays reserved for the result.
package tui
