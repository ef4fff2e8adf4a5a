// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the password-based encryption pipeline of the
// service.
//
// A token is produced as follows:
//
//	salt  = 16 random bytes                      (fresh per call)
//	key   = PBKDF2-HMAC-SHA256(password, salt)   (100 000 iterations, 32 bytes)
//	iv    = 16 random bytes                      (fresh per call)
//	ct    = AES-256-CBC(key, iv, PKCS7(plaintext))
//	token = base64(salt ‖ iv ‖ ct)
//
// Decryption re-derives the key from the salt embedded in the token. The
// scheme provides confidentiality only: a wrong password is detected by the
// padding check or UTF-8 validation, which catches it with overwhelming but
// not absolute probability.
//
// Every failure is classified by [KindOf] into a closed set of kinds so the
// transports can map them to stable status codes.
package crypto
