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

	"github.com/solpipe-project/solpipe-go/pkg/apierr"
)

// SignResult is the outcome of signing a message. Message always holds the
// text form of what was signed, regardless of whether the caller supplied
// a string or raw bytes.
type SignResult struct {
	// Identity is the signer's public identity in base58 form.
	Identity string

	// Message is the original message text.
	Message string

	// Signature is the raw signature bytes.
	Signature []byte
}

// SignMessage signs a text message with the given signer. The message is
// encoded to UTF-8 bytes before being handed to the signer.
//
// Signing is purely local: every failure, including one raised by the
// signer itself, surfaces as a Validation error. A signer failure that is
// already classified as Validation propagates unchanged.
func SignMessage(ctx context.Context, signer Signer, message string) (*SignResult, error) {
	return sign(ctx, signer, message, []byte(message))
}

// SignMessageBytes signs raw message bytes. The result's Message field
// holds the bytes decoded back to text.
func SignMessageBytes(ctx context.Context, signer Signer, message []byte) (*SignResult, error) {
	return sign(ctx, signer, string(message), message)
}

func sign(ctx context.Context, signer Signer, text string, data []byte) (*SignResult, error) {
	if signer == nil {
		return nil, apierr.NewValidation("signer is required")
	}
	identity := signer.Identity()
	if identity == "" {
		return nil, apierr.NewValidation("signer has no identity")
	}
	if len(data) == 0 {
		return nil, apierr.NewValidation("message must not be empty")
	}

	signature, err := signer.Sign(ctx, data)
	if err != nil {
		if apierr.IsKind(err, apierr.KindValidation) {
			return nil, err
		}
		return nil, apierr.WrapValidation("signing failed", err)
	}
	if len(signature) == 0 {
		return nil, apierr.NewValidation("signer returned an empty signature")
	}

	return &SignResult{
		Identity:  identity,
		Message:   text,
		Signature: signature,
	}, nil
}
