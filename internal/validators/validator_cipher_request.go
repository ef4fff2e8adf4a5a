// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-cipher-drop/models"
)

// CipherRequestValidator implements the Validator interface for
// models.CipherRequest in both value and pointer form.
type CipherRequestValidator struct {
}

// NewCipherRequestValidator constructs a new CipherRequestValidator
// and returns it as the Validator interface.
func NewCipherRequestValidator() Validator {
	return &CipherRequestValidator{}
}

// Validate checks the named fields of a cipher request, or both fields when
// none are given. Text is checked before password, so a request with both
// empty reports ErrEmptyText.
func (v *CipherRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CipherRequest:
		return v.validateCipherRequest(value, fields...)
	case *models.CipherRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCipherRequest(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CipherRequestValidator) validateCipherRequest(request models.CipherRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldText, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldText:
			// whitespace is meaningful plaintext, only emptiness is rejected
			if request.Text == "" {
				return ErrEmptyText
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
