package service

import (
	"context"

	"github.com/MKhiriev/go-cipher-drop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_service_mock.go -package=mock

// CipherService encrypts and decrypts text under a shared password. Errors
// are classified with crypto.KindOf.
type CipherService interface {
	// Encrypt returns a token for text sealed under password.
	Encrypt(ctx context.Context, text, password string) (string, error)
	// Decrypt recovers the plaintext sealed in token.
	Decrypt(ctx context.Context, token, password string) (string, error)
}

// CipherServiceWrapper defines middleware composition for CipherService.
// Implementations wrap an existing CipherService to add behavior such as
// validating.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService // returns a decorated CipherService applying additional behavior
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
