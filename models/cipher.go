// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CipherRequest is the body of both encrypt and decrypt calls.
//
// For encrypt Text is the plaintext, for decrypt it is the token produced by
// a previous encrypt call. Password is never logged or echoed back.
type CipherRequest struct {
	Text     string `json:"text"`
	Password string `json:"password"`
}

// CipherResponse is the success body: the token for encrypt, the recovered
// plaintext for decrypt.
type CipherResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is the failure body. Code is a stable machine readable value
// (see crypto.Kind and the transport-only codes below), Error is for humans.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Transport-only error codes that have no crypto.Kind counterpart.
const (
	CodeInvalidJSON     = "invalid_json"
	CodeTooManyRequests = "too_many_requests"
	CodeUnavailable     = "unavailable"
)
