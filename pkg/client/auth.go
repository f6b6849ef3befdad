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

package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/solpipe-project/solpipe-go/pkg/apierr"
)

const authVerifyPath = "/api/auth/verify"

// AuthService verifies wallet signatures against the backend. Verification
// is delegated entirely to the backend; this SDK never checks signatures
// locally.
type AuthService struct {
	client *Client
}

// SignatureBytes is a byte sequence that travels as a JSON array of
// numbers, matching the backend wire format, instead of Go's default
// base64 string encoding for []byte.
type SignatureBytes []byte

// MarshalJSON encodes the bytes as a JSON number array.
func (s SignatureBytes) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}
	nums := make([]uint16, len(s))
	for i, b := range s {
		nums[i] = uint16(b)
	}
	return json.Marshal(nums)
}

// UnmarshalJSON decodes a JSON number array into bytes.
func (s *SignatureBytes) UnmarshalJSON(data []byte) error {
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}
	if nums == nil {
		*s = nil
		return nil
	}
	out := make([]byte, len(nums))
	for i, n := range nums {
		if n < 0 || n > 255 {
			return fmt.Errorf("signature byte %d out of range: %d", i, n)
		}
		out[i] = byte(n)
	}
	*s = out
	return nil
}

// AuthPayload is the wire-level record for signature verification.
type AuthPayload struct {
	// Wallet is the signing wallet's base58 public key.
	Wallet string `json:"wallet"`

	// Message is the text that was signed.
	Message string `json:"message"`

	// Signature is the raw signature, serialized as a number array.
	Signature SignatureBytes `json:"signature"`
}

// AuthResult is the backend's verification verdict. The verified flag is
// trusted as the backend sent it; no deeper shape check is applied.
type AuthResult struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message,omitempty"`
}

// Verify submits a signature for backend verification.
//
// Fails with a Validation error before any request when the wallet,
// message or signature is empty. Transport failures propagate with their
// original classification; a 2xx response that is not a JSON object is a
// Validation error.
func (s *AuthService) Verify(ctx context.Context, payload AuthPayload) (*AuthResult, error) {
	if payload.Wallet == "" {
		return nil, apierr.NewValidation("wallet address is required")
	}
	if payload.Message == "" {
		return nil, apierr.NewValidation("message is required")
	}
	if len(payload.Signature) == 0 {
		return nil, apierr.NewValidation("signature is required")
	}

	body, err := s.client.tr.Post(ctx, s.client.url(authVerifyPath), payload, nil)
	if err != nil {
		return nil, err
	}

	if _, err := parseObject(body); err != nil {
		return nil, err
	}

	var result AuthResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, apierr.WrapValidation("malformed verification response", err)
	}
	return &result, nil
}
