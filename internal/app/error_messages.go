// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// cipher server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidJSON is returned when the request body is not a JSON object
	// or exceeds the size cap.
	MsgInvalidJSON = "invalid JSON body"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTooManyRequests is returned by the rate limiter.
	MsgTooManyRequests = "too many requests, slow down"

	// MsgServiceUnavailable is returned when no derivation slot freed up
	// before the request deadline.
	MsgServiceUnavailable = "service is busy, try again later"

	// MsgNotFound is returned for unknown routes and methods.
	MsgNotFound = "not found"
)
