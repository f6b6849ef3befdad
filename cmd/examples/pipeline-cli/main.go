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

// Command pipeline-cli exercises the solpipe-go SDK against a backend:
// sign a message with a local wallet, verify it server-side, query a
// balance and create a pipeline.
package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/solpipe-project/solpipe-go/pkg/client"
	"github.com/solpipe-project/solpipe-go/pkg/config"
	"github.com/solpipe-project/solpipe-go/pkg/wallet"
)

func main() {
	app := &cli.App{
		Name:  "pipeline-cli",
		Usage: "exercise the solpipe backend API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "endpoint",
				Usage:   "backend base URL",
				Value:   "http://127.0.0.1:8080",
				EnvVars: []string{"SOLPIPE_ENDPOINT"},
			},
			&cli.StringFlag{
				Name:    "key",
				Usage:   "base58-encoded wallet private key (generated when absent)",
				EnvVars: []string{"SOLPIPE_WALLET_KEY"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-request timeout",
				Value: config.DefaultTimeout,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log every request",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "sign",
				Usage:     "sign a message with the local wallet",
				ArgsUsage: "<message>",
				Action:    runSign,
			},
			{
				Name:      "verify",
				Usage:     "sign a message and verify it against the backend",
				ArgsUsage: "<message>",
				Action:    runVerify,
			},
			{
				Name:      "balance",
				Usage:     "query a wallet balance",
				ArgsUsage: "<address>",
				Action:    runBalance,
			},
			{
				Name:      "create",
				Usage:     "create a pipeline",
				ArgsUsage: "<name>",
				Action:    runCreate,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newSigner(c *cli.Context) (*wallet.LocalSigner, error) {
	if encoded := c.String("key"); encoded != "" {
		return wallet.NewLocalSignerFromBase58(encoded)
	}
	return wallet.GenerateLocalSigner()
}

func newClient(c *cli.Context, signer wallet.Signer) (*client.Client, error) {
	opts := []client.Option{}
	if signer != nil {
		opts = append(opts, client.WithSigner(signer))
	}
	if c.Bool("verbose") {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		opts = append(opts, client.WithLogger(logger))
	}

	return client.New(config.Config{
		Endpoint: c.String("endpoint"),
		Timeout:  c.Duration("timeout"),
	}, opts...)
}

func runSign(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: sign <message>")
	}

	signer, err := newSigner(c)
	if err != nil {
		return err
	}

	result, err := wallet.SignMessage(c.Context, signer, c.Args().First())
	if err != nil {
		return err
	}

	fmt.Println("wallet:   ", result.Identity)
	fmt.Println("message:  ", result.Message)
	fmt.Println("signature:", base64.StdEncoding.EncodeToString(result.Signature))
	return nil
}

func runVerify(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: verify <message>")
	}

	signer, err := newSigner(c)
	if err != nil {
		return err
	}
	sdk, err := newClient(c, signer)
	if err != nil {
		return err
	}

	signed, err := sdk.Wallet.SignMessage(c.Context, c.Args().First())
	if err != nil {
		return err
	}

	result, err := sdk.Auth.Verify(c.Context, client.AuthPayload{
		Wallet:    signed.Identity,
		Message:   signed.Message,
		Signature: client.SignatureBytes(signed.Signature),
	})
	if err != nil {
		return err
	}

	fmt.Println("verified:", result.Verified)
	if result.Message != "" {
		fmt.Println("message: ", result.Message)
	}
	return nil
}

func runBalance(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: balance <address>")
	}

	sdk, err := newClient(c, nil)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := sdk.Wallet.Balance(c.Context, c.Args().First())
	if err != nil {
		return err
	}

	fmt.Printf("balance: %g %s (%s)\n", result.Balance, result.Unit, time.Since(start).Round(time.Millisecond))
	return nil
}

func runCreate(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: create <name>")
	}

	sdk, err := newClient(c, nil)
	if err != nil {
		return err
	}

	result, err := sdk.Pipeline.Create(c.Context, client.PipelineConfig{
		Name: c.Args().First(),
	})
	if err != nil {
		return err
	}

	fmt.Println("id:    ", result.ID)
	fmt.Println("status:", result.Status)
	for k, v := range result.Extra {
		fmt.Printf("%s: %v\n", k, v)
	}
	return nil
}
