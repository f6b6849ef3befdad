package client

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solpipe-project/solpipe-go/pkg/apierr"
	"github.com/solpipe-project/solpipe-go/pkg/wallet"
)

// Test the documented balance flow: one GET with the address URL-encoded
func TestWalletBalance(t *testing.T) {
	stub := &stubTransport{status: 200, body: `{"balance":10.5,"unit":"SOL"}`}
	c := newTestClient(t, stub)

	result, err := c.Wallet.Balance(context.Background(), "So11111111111111111111111111111111111111112")
	require.NoError(t, err)
	assert.Equal(t, 10.5, result.Balance)
	assert.Equal(t, "SOL", result.Unit)

	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, "GET", stub.lastReq.Method)
	assert.Equal(t, "/api/wallet/balance", stub.lastReq.URL.Path)
	assert.Equal(t, "So11111111111111111111111111111111111111112", stub.lastReq.URL.Query().Get("address"))
}

// Test addresses with reserved characters are URL-encoded
func TestWalletBalanceEncodesAddress(t *testing.T) {
	stub := &stubTransport{status: 200, body: `{"balance":0,"unit":"SOL"}`}
	c := newTestClient(t, stub)

	address := "abc+def/ghi 123"
	_, err := c.Wallet.Balance(context.Background(), address)
	require.NoError(t, err)

	assert.Contains(t, stub.lastReq.URL.RawQuery, url.QueryEscape(address))
	assert.Equal(t, address, stub.lastReq.URL.Query().Get("address"))
}

// Test an empty address fails Validation before any transport call
func TestWalletBalanceEmptyAddress(t *testing.T) {
	stub := &stubTransport{status: 200, body: `{"balance":1,"unit":"SOL"}`}
	c := newTestClient(t, stub)

	_, err := c.Wallet.Balance(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
	assert.Zero(t, stub.calls)
}

// Test a non-numeric balance fails Validation
func TestWalletBalanceNotNumeric(t *testing.T) {
	stub := &stubTransport{status: 200, body: `{"balance":"x","unit":"SOL"}`}
	c := newTestClient(t, stub)

	_, err := c.Wallet.Balance(context.Background(), "addr")
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

// Test a missing balance fails Validation
func TestWalletBalanceMissing(t *testing.T) {
	stub := &stubTransport{status: 200, body: `{"unit":"SOL"}`}
	c := newTestClient(t, stub)

	_, err := c.Wallet.Balance(context.Background(), "addr")
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

// Test a negative balance fails Validation
func TestWalletBalanceNegative(t *testing.T) {
	stub := &stubTransport{status: 200, body: `{"balance":-1,"unit":"SOL"}`}
	c := newTestClient(t, stub)

	_, err := c.Wallet.Balance(context.Background(), "addr")
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}

// Test any unit other than the exact literal "SOL" fails Validation
func TestWalletBalanceWrongUnit(t *testing.T) {
	for _, body := range []string{
		`{"balance":1,"unit":"sol"}`,
		`{"balance":1,"unit":"USDC"}`,
		`{"balance":1}`,
	} {
		stub := &stubTransport{status: 200, body: body}
		c := newTestClient(t, stub)

		_, err := c.Wallet.Balance(context.Background(), "addr")
		require.Error(t, err, "body %q", body)
		assert.Equal(t, apierr.KindValidation, apierr.KindOf(err), "body %q", body)
	}
}

// Test backend rejections keep their HTTPStatus classification
func TestWalletBalanceNotFound(t *testing.T) {
	stub := &stubTransport{status: 404, body: `{"error":"unknown wallet"}`}
	c := newTestClient(t, stub)

	_, err := c.Wallet.Balance(context.Background(), "addr")
	require.Error(t, err)

	ce := apierr.AsError(err)
	require.NotNil(t, ce)
	assert.Equal(t, apierr.KindHTTPStatus, ce.Kind)
	assert.Equal(t, 404, ce.Status)
}

// Test SignMessage uses the signer bound at construction and stays local
func TestWalletSignMessage(t *testing.T) {
	signer, err := wallet.GenerateLocalSigner()
	require.NoError(t, err)

	stub := &stubTransport{status: 200, body: `{}`}
	c := newTestClient(t, stub, WithSigner(signer))

	result, err := c.Wallet.SignMessage(context.Background(), "Hello, Solana!")
	require.NoError(t, err)
	assert.Equal(t, signer.Identity(), result.Identity)
	assert.Equal(t, "Hello, Solana!", result.Message)
	assert.NotEmpty(t, result.Signature)
	assert.Zero(t, stub.calls, "signing must not touch the network")
}

// Test SignMessage without a bound signer fails Validation
func TestWalletSignMessageNoSigner(t *testing.T) {
	c := newTestClient(t, &stubTransport{status: 200, body: `{}`})

	_, err := c.Wallet.SignMessage(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, apierr.KindValidation, apierr.KindOf(err))
}
