package models

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Operation selects the direction of a cipher call.
type Operation string

const (
	OperationEncrypt Operation = "encrypt"
	OperationDecrypt Operation = "decrypt"
)

// ParseOperation accepts the operation name in any case. Short forms "enc"
// and "dec" are accepted too.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "encrypt", "enc", "e":
		return OperationEncrypt, nil
	case "decrypt", "dec", "d":
		return OperationDecrypt, nil
	default:
		return "", fmt.Errorf("%w: %q (want encrypt or decrypt)", ErrUnknownOperation, s)
	}
}

// Other returns the opposite operation.
func (o Operation) Other() Operation {
	if o == OperationEncrypt {
		return OperationDecrypt
	}
	return OperationEncrypt
}
