package discord

import (
	crypto "crypto/ed25519"
	"encoding/hex"
	"errors"
	"fmt"
)

const (
	SignatureHeader = "x-signature-ed25519"
	TimestampHeader = "x-signature-timestamp"
)

var (
	ErrMissingSignature   = errors.New("missing signature headers")
	ErrMalformedSignature = errors.New("signature is not valid hex")
	ErrBadSignature       = errors.New("signature verification failed")
)

// Verify checks that signature is a valid Ed25519 signature over
// timestamp||body. It must be called on the raw request body before any
// JSON decoding.
func Verify(body []byte, timestamp, signature string, publicKey crypto.PublicKey) error {
	if timestamp == "" || signature == "" {
		return ErrMissingSignature
	}

	sig, err := hex.DecodeString(signature)
	if err != nil {
		return ErrMalformedSignature
	}

	msg := append([]byte(timestamp), body...)
	if !crypto.Verify(publicKey, msg, sig) {
		return ErrBadSignature
	}
	return nil
}

// Authenticate reports whether the request passes signature verification.
func Authenticate(body []byte, timestamp, signature string, publicKey crypto.PublicKey) bool {
	return Verify(body, timestamp, signature, publicKey) == nil
}

func DecodePublicKey(publicKey string) (crypto.PublicKey, error) {
	if publicKey == "" {
		return nil, errors.New("missing public key")
	}
	key, err := hex.DecodeString(publicKey)
	if err != nil {
		return nil, err
	}
	if len(key) != crypto.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes, got %d", crypto.PublicKeySize, len(key))
	}
	return crypto.PublicKey(key), nil
}
