package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Codes are six uniformly random decimal digits, so a hash of one has to
// survive offline guessing of a million candidates. argon2id with a
// per-challenge salt keeps that expensive; a plain digest would not.
const (
	codeDigits = 6

	argonMemory      = 16 * 1024
	argonIterations  = 2
	argonParallelism = 2
	argonSaltLength  = 16
	argonKeyLength   = 32
)

var codeSpace = big.NewInt(1000000)

// GenerateCode returns a uniformly random six-digit code, zero padded.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", codeDigits, n), nil
}

// HashCode derives the stored argon2id hash of a code with a fresh salt.
func HashCode(code string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(code), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonIterations,
		argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// VerifyCode compares a candidate code against an encoded hash in constant
// time. An undecodable hash counts as a mismatch rather than an error so the
// caller cannot leak storage details.
func VerifyCode(encoded, code string) bool {
	salt, hash, params, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	candidate := argon2.IDKey([]byte(code), salt, params.iterations, params.memory, params.parallelism, uint32(len(hash)))

	return subtle.ConstantTimeCompare(hash, candidate) == 1
}

type argonParams struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
}

func decodeHash(encoded string) ([]byte, []byte, argonParams, error) {
	var params argonParams

	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, params, errors.New("malformed hash")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, params, err
	}
	if version != argon2.Version {
		return nil, nil, params, errors.New("unsupported argon2 version")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.iterations, &params.parallelism); err != nil {
		return nil, nil, params, err
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, err
	}

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, err
	}

	return salt, hash, params, nil
}
