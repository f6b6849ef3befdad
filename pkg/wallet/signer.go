// Copyright (C) 2025 Solpipe Project
//
// This file is part of solpipe-go.
//
// solpipe-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// solpipe-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with solpipe-go.  If not, see <https://www.gnu.org/licenses/>.

package wallet

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Signer is the capability of producing a signature over bytes and
// reporting a stable public identity. The SDK never inspects or manages
// key material behind this interface.
type Signer interface {
	// Sign produces a signature over the given message bytes.
	Sign(ctx context.Context, message []byte) ([]byte, error)

	// Identity returns the signer's public identity in its stable
	// base58 string form.
	Identity() string
}

// LocalSigner signs with an in-memory Solana ed25519 private key.
type LocalSigner struct {
	key solana.PrivateKey
}

// NewLocalSigner wraps an existing Solana private key.
func NewLocalSigner(key solana.PrivateKey) (*LocalSigner, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("wallet: private key is empty")
	}
	return &LocalSigner{key: key}, nil
}

// NewLocalSignerFromBase58 parses a base58-encoded private key.
func NewLocalSignerFromBase58(encoded string) (*LocalSigner, error) {
	key, err := solana.PrivateKeyFromBase58(encoded)
	if err != nil {
		return nil, fmt.Errorf("wallet: invalid base58 private key: %w", err)
	}
	return &LocalSigner{key: key}, nil
}

// GenerateLocalSigner creates a signer with a fresh random key pair.
func GenerateLocalSigner() (*LocalSigner, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("wallet: failed to generate key pair: %w", err)
	}
	return &LocalSigner{key: key}, nil
}

// Sign signs the message with the wrapped ed25519 key.
func (s *LocalSigner) Sign(ctx context.Context, message []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sig, err := s.key.Sign(message)
	if err != nil {
		return nil, err
	}
	return sig[:], nil
}

// Identity returns the base58 form of the public key.
func (s *LocalSigner) Identity() string {
	return s.key.PublicKey().String()
}

// PublicKey returns the signer's Solana public key.
func (s *LocalSigner) PublicKey() solana.PublicKey {
	return s.key.PublicKey()
}
