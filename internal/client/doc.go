// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client runtime.
//
// A run resolves the operation, the text and the password from arguments,
// stdin, the environment, a no-echo prompt or the interactive form, sends one
// request through the transport adapter and prints the result to stdout.
package client
