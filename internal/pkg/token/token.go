package token

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// DefaultLength is the token width consumers parse; changing it breaks them.
const DefaultLength = 15

// maxLength is the number of hex digits in a UUID with its dashes removed.
const maxLength = 32

// Generator produces short hex tokens by truncating random (version 4) UUIDs.
type Generator struct {
	entropy io.Reader
	length  int
}

// NewGenerator returns a Generator reading randomness from entropy
// (crypto/rand when nil) and emitting tokens of the given length.
func NewGenerator(entropy io.Reader, length int) (*Generator, error) {
	if entropy == nil {
		entropy = rand.Reader
	}
	if length <= 0 || length > maxLength {
		return nil, fmt.Errorf("token length must be between 1 and %d, got %d", maxLength, length)
	}
	return &Generator{entropy: entropy, length: length}, nil
}

// New returns a fresh token.
func (g *Generator) New() (string, error) {
	u, err := uuid.NewRandomFromReader(g.entropy)
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return strings.ReplaceAll(u.String(), "-", "")[:g.length], nil
}
