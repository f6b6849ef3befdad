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

// Package wallet provides local message signing with a pluggable signer
// capability.
//
// The Signer interface is the boundary: anything that can sign bytes and
// report a stable base58 identity works, whether that is an in-memory key,
// a hardware wallet bridge, or a remote KMS. LocalSigner is the default
// implementation, wrapping a Solana ed25519 private key:
//
//	signer, err := wallet.NewLocalSignerFromBase58(encodedKey)
//	if err != nil {
//	    return err
//	}
//
//	result, err := wallet.SignMessage(ctx, signer, "Hello, Solana!")
//	// result.Identity  - base58 public key
//	// result.Message   - "Hello, Solana!"
//	// result.Signature - 64 raw signature bytes
//
// SignMessage and SignMessageBytes are equivalent for matching text:
// signing a string and signing its UTF-8 bytes produce the same Message
// field. Signing never touches the network; any failure, including one
// raised by the signer itself, is a Validation error.
package wallet
