package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cipher-drop/internal/crypto"
	"github.com/MKhiriev/go-cipher-drop/internal/validators"
	"github.com/MKhiriev/go-cipher-drop/models"
)

type CipherValidationService struct {
	inner     CipherService
	validator validators.Validator
}

func NewCipherValidationService() CipherServiceWrapper {
	return &CipherValidationService{
		validator: validators.NewCipherRequestValidator(),
	}
}

func (v *CipherValidationService) Encrypt(ctx context.Context, text, password string) (string, error) {
	if err := v.validator.Validate(ctx, models.CipherRequest{Text: text, Password: password}); err != nil {
		return "", fmt.Errorf("%w: %w", crypto.ErrInvalidInput, err)
	}

	return v.inner.Encrypt(ctx, text, password)
}

func (v *CipherValidationService) Decrypt(ctx context.Context, token, password string) (string, error) {
	if err := v.validator.Validate(ctx, models.CipherRequest{Text: token, Password: password}); err != nil {
		return "", fmt.Errorf("%w: %w", crypto.ErrInvalidInput, err)
	}

	return v.inner.Decrypt(ctx, token, password)
}

func (v *CipherValidationService) Wrap(wrapped CipherService) CipherService {
	v.inner = wrapped
	return v
}
