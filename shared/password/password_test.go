package password_test

import (
	"strings"
	"testing"

	"okshouse/config"
	"okshouse/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAESKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="
	testAESIV  = "MDEyMzQ1Njc4OWFiY2RlZg=="
)

func aesCodec(t *testing.T) password.Codec {
	t.Helper()

	cfg := &config.Config{}
	cfg.Crypto.AESKey = testAESKey
	cfg.Crypto.AESIV = testAESIV

	codec, err := password.New(cfg)
	require.NoError(t, err)

	return codec
}

func bcryptCodec(t *testing.T) password.Codec {
	t.Helper()

	cfg := &config.Config{}
	cfg.Crypto.Scheme = password.SchemeBcrypt

	codec, err := password.New(cfg)
	require.NoError(t, err)

	return codec
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		aesKey  string
		aesIV   string
		wantErr bool
	}{
		{name: "valid aes config", aesKey: testAESKey, aesIV: testAESIV},
		{name: "bcrypt needs no key material", scheme: password.SchemeBcrypt},
		{name: "missing key", aesIV: testAESIV, wantErr: true},
		{name: "missing iv", aesKey: testAESKey, wantErr: true},
		{name: "key is not base64", aesKey: "not-base64!!", aesIV: testAESIV, wantErr: true},
		{name: "iv has wrong length", aesKey: testAESKey, aesIV: "c2hvcnQ=", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Crypto.Scheme = tt.scheme
			cfg.Crypto.AESKey = tt.aesKey
			cfg.Crypto.AESIV = tt.aesIV

			_, err := password.New(cfg)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAESCodec(t *testing.T) {
	codec := aesCodec(t)

	t.Run("encryption is deterministic", func(t *testing.T) {
		first, err := codec.Encrypt("secret")
		require.NoError(t, err)

		second, err := codec.Encrypt("secret")
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("different inputs yield different ciphertexts", func(t *testing.T) {
		first, err := codec.Encrypt("secret")
		require.NoError(t, err)

		second, err := codec.Encrypt("other")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("verify accepts the original password", func(t *testing.T) {
		stored, err := codec.Encrypt("secret")
		require.NoError(t, err)

		assert.NoError(t, codec.Verify("secret", stored))
	})

	t.Run("verify rejects a wrong password", func(t *testing.T) {
		stored, err := codec.Encrypt("secret")
		require.NoError(t, err)

		assert.ErrorIs(t, codec.Verify("wrong", stored), password.ErrInvalidPassword)
	})

	t.Run("empty password cannot be encrypted", func(t *testing.T) {
		_, err := codec.Encrypt("")

		assert.Error(t, err)
	})

	t.Run("empty candidate or stored value is invalid", func(t *testing.T) {
		assert.ErrorIs(t, codec.Verify("", "something"), password.ErrInvalidPassword)
		assert.ErrorIs(t, codec.Verify("something", ""), password.ErrInvalidPassword)
	})

	t.Run("long passwords survive the block padding", func(t *testing.T) {
		long := strings.Repeat("a", 100)

		stored, err := codec.Encrypt(long)
		require.NoError(t, err)

		assert.NoError(t, codec.Verify(long, stored))
	})
}

func TestBcryptCodec(t *testing.T) {
	codec := bcryptCodec(t)

	t.Run("verify accepts the original password", func(t *testing.T) {
		stored, err := codec.Encrypt("secret")
		require.NoError(t, err)

		assert.NoError(t, codec.Verify("secret", stored))
	})

	t.Run("verify rejects a wrong password", func(t *testing.T) {
		stored, err := codec.Encrypt("secret")
		require.NoError(t, err)

		assert.ErrorIs(t, codec.Verify("wrong", stored), password.ErrInvalidPassword)
	})

	t.Run("hashing is salted", func(t *testing.T) {
		first, err := codec.Encrypt("secret")
		require.NoError(t, err)

		second, err := codec.Encrypt("secret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
