package password

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"okshouse/config"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeAES    = "aes"
	SchemeBcrypt = "bcrypt"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
)

// Codec transforms reservation passwords for storage and checks
// candidates against stored values.
//
// The default AES scheme is a deterministic AES-CBC encryption with a
// static key/IV, carried over from the legacy system: verification
// re-encrypts the candidate and compares ciphertexts, and the stored
// value remains recoverable by anyone holding the key. This is a known
// weakness kept for behavioral compatibility; the bcrypt scheme is the
// one-way alternative and can be selected with CRYPTO_SCHEME=bcrypt.
type Codec interface {
	Encrypt(plain string) (string, error)
	Verify(plain, stored string) error
}

// MustNew is the injection entry point. Password handling is not
// optional, a misconfigured codec stops the service at startup.
func MustNew(cfg *config.Config) Codec {
	codec, err := New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize password codec")
	}

	return codec
}

func New(cfg *config.Config) (Codec, error) {
	if cfg.Crypto.Scheme == SchemeBcrypt {
		return &bcryptCodec{}, nil
	}

	if cfg.Crypto.AESKey == "" || cfg.Crypto.AESIV == "" {
		return nil, errors.New("CRYPTO_AES_KEY and CRYPTO_AES_IV must be set")
	}

	key, err := base64.StdEncoding.DecodeString(cfg.Crypto.AESKey)
	if err != nil {
		return nil, fmt.Errorf("decoding AES key: %w", err)
	}

	iv, err := base64.StdEncoding.DecodeString(cfg.Crypto.AESIV)
	if err != nil {
		return nil, fmt.Errorf("decoding AES IV: %w", err)
	}

	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("AES IV must be %d bytes, got %d", aes.BlockSize, len(iv))
	}

	if _, err := aes.NewCipher(key); err != nil {
		return nil, fmt.Errorf("invalid AES key: %w", err)
	}

	return &aesCodec{key: key, iv: iv}, nil
}

type aesCodec struct {
	key []byte
	iv  []byte
}

func (c *aesCodec) Encrypt(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password cannot be empty")
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("creating cipher: %w", err)
	}

	padded := pkcs7Pad([]byte(plain), aes.BlockSize)
	encrypted := make([]byte, len(padded))

	cipher.NewCBCEncrypter(block, c.iv).CryptBlocks(encrypted, padded)

	return base64.StdEncoding.EncodeToString(encrypted), nil
}

func (c *aesCodec) Verify(plain, stored string) error {
	if plain == "" || stored == "" {
		return ErrInvalidPassword
	}

	encrypted, err := c.Encrypt(plain)
	if err != nil {
		return ErrInvalidPassword
	}

	if subtle.ConstantTimeCompare([]byte(encrypted), []byte(stored)) != 1 {
		return ErrInvalidPassword
	}

	return nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize

	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

type bcryptCodec struct{}

func (c *bcryptCodec) Encrypt(plain string) (string, error) {
	if plain == "" {
		return "", errors.New("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

func (c *bcryptCodec) Verify(plain, stored string) error {
	if plain == "" || stored == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
