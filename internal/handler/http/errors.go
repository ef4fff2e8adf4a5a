// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errInvalidJSON marks a request body that could not be decoded into a
// models.CipherRequest, including bodies over the size cap.
var errInvalidJSON = errors.New("invalid JSON body")
