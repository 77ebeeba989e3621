// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/term"
)

// envelope is the on-disk shape of a passphrase-encrypted snapshot: a
// pbkdf2 key-provider config plus the AES-GCM payload, both base64.
type envelope struct {
	Meta struct {
		Key string `json:"key_provider.pbkdf2.mykey"`
	} `json:"meta"`
	EncryptedData string `json:"encrypted_data"`
}

// MaybeDecrypt detects an encrypted snapshot envelope and decrypts it.
// Plain documents pass through untouched. The passphrase is resolved
// from the argument, then CONFDIFF_PASSPHRASE, then an interactive
// prompt.
func MaybeDecrypt(data []byte, passphrase string) ([]byte, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return data, nil
	}
	if _, ok := probe["encrypted_data"]; !ok {
		return data, nil
	}

	if passphrase == "" {
		passphrase = os.Getenv("CONFDIFF_PASSPHRASE")
	}
	if passphrase == "" {
		var err error
		passphrase, err = ReadPassphrase()
		if err != nil {
			return nil, err
		}
	}

	return Decrypt(data, passphrase)
}

// Decrypt decrypts an encrypted snapshot using the provided passphrase.
func Decrypt(data []byte, passphrase string) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	keyProviderConfig, err := base64.StdEncoding.DecodeString(env.Meta.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to decode key provider config: %w", err)
	}

	var kpConfig struct {
		Salt       string `json:"salt"`
		Iterations int    `json:"iterations"`
		HashFunc   string `json:"hash_function"`
		KeyLength  int    `json:"key_length"`
	}
	if err = json.Unmarshal(keyProviderConfig, &kpConfig); err != nil {
		return nil, fmt.Errorf("failed to parse key provider config: %w", err)
	}

	salt, err := base64.StdEncoding.DecodeString(kpConfig.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	key := pbkdf2.Key(
		[]byte(passphrase),
		salt,
		kpConfig.Iterations,
		kpConfig.KeyLength,
		sha512.New,
	)

	return decryptPayload(env.EncryptedData, key)
}

func decryptPayload(encryptedData string, derivedKey []byte) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encryptedData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	block, err := aes.NewCipher(derivedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	nonceSize := aesGCM.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf(
			"ciphertext too short: expected at least %d bytes, got %d",
			nonceSize,
			len(ciphertext),
		)
	}

	nonce := ciphertext[:nonceSize]
	encrypted := ciphertext[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, encrypted, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	return plaintext, nil
}

// ReadPassphrase prompts interactively for a passphrase without echoing
// input.
func ReadPassphrase() (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("document is encrypted and no passphrase was provided")
	}

	fmt.Fprint(os.Stderr, "Enter passphrase: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
