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
	"net/url"

	"github.com/solpipe-project/solpipe-go/pkg/apierr"
	"github.com/solpipe-project/solpipe-go/pkg/wallet"
)

const walletBalancePath = "/api/wallet/balance"

// BalanceUnit is the only unit the balance endpoint reports.
const BalanceUnit = "SOL"

// WalletService signs messages with the client's bound signer and queries
// wallet balances from the backend.
type WalletService struct {
	client *Client
}

// BalanceResult is a wallet balance as reported by the backend.
type BalanceResult struct {
	// Balance is the wallet balance in SOL. Never negative.
	Balance float64 `json:"balance"`

	// Unit is always "SOL".
	Unit string `json:"unit"`
}

// Balance fetches the balance of the given wallet address.
//
// The address travels URL-encoded as a query parameter. The response must
// be a JSON object with a non-negative numeric balance and the literal
// unit "SOL"; anything else is a Validation error.
func (s *WalletService) Balance(ctx context.Context, address string) (*BalanceResult, error) {
	if address == "" {
		return nil, apierr.NewValidation("wallet address is required")
	}

	target := s.client.url(walletBalancePath) + "?address=" + url.QueryEscape(address)
	body, err := s.client.tr.Get(ctx, target, nil)
	if err != nil {
		return nil, err
	}

	obj, err := parseObject(body)
	if err != nil {
		return nil, err
	}

	raw, ok := obj["balance"]
	if !ok {
		return nil, apierr.NewValidation("balance missing from response")
	}
	var balance float64
	if err := json.Unmarshal(raw, &balance); err != nil {
		return nil, apierr.WrapValidation("balance is not numeric", err)
	}
	if balance < 0 {
		return nil, apierr.NewValidation("balance is negative")
	}

	var unit string
	if raw, ok := obj["unit"]; ok {
		if err := json.Unmarshal(raw, &unit); err != nil {
			return nil, apierr.WrapValidation("unit is not a string", err)
		}
	}
	if unit != BalanceUnit {
		return nil, apierr.NewValidation(`unit must be "` + BalanceUnit + `"`)
	}

	return &BalanceResult{Balance: balance, Unit: unit}, nil
}

// SignMessage signs a text message with the signer bound via WithSigner.
// Signing is purely local; see the wallet package for the underlying
// capability.
func (s *WalletService) SignMessage(ctx context.Context, message string) (*wallet.SignResult, error) {
	return wallet.SignMessage(ctx, s.client.signer, message)
}

// SignMessageBytes signs raw message bytes with the signer bound via
// WithSigner.
func (s *WalletService) SignMessageBytes(ctx context.Context, message []byte) (*wallet.SignResult, error) {
	return wallet.SignMessageBytes(ctx, s.client.signer, message)
}
