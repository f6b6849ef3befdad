package wallet

import (
	"context"
	"crypto/ed25519"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test a generated signer produces verifiable ed25519 signatures
func TestGenerateLocalSigner(t *testing.T) {
	signer, err := GenerateLocalSigner()
	require.NoError(t, err)
	require.NotEmpty(t, signer.Identity())

	message := []byte("Hello, Solana!")
	sig, err := signer.Sign(context.Background(), message)
	require.NoError(t, err)
	require.Len(t, sig, ed25519.SignatureSize)

	pub := signer.PublicKey()
	assert.True(t, ed25519.Verify(pub[:], message, sig))
}

// Test base58 round trip of the private key
func TestNewLocalSignerFromBase58(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	signer, err := NewLocalSignerFromBase58(key.String())
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey().String(), signer.Identity())

	_, err = NewLocalSignerFromBase58("not-base58-!!!")
	assert.Error(t, err)
}

// Test an empty key is rejected
func TestNewLocalSignerEmptyKey(t *testing.T) {
	_, err := NewLocalSigner(solana.PrivateKey{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "private key is empty")
}

// Test Identity is the base58 public key
func TestLocalSignerIdentity(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	signer, err := NewLocalSigner(key)
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey().String(), signer.Identity())
}

// Test Sign honors an already-cancelled context
func TestLocalSignerCancelledContext(t *testing.T) {
	signer, err := GenerateLocalSigner()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = signer.Sign(ctx, []byte("message"))
	assert.Error(t, err)
}
