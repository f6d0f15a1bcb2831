package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const confirmationCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateConfirmationCode returns n random characters (A-Z0-9).
// Uses crypto/rand + rand.Int (math/big) to avoid modulo bias.
func GenerateConfirmationCode(n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(confirmationCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(confirmationCharset[num.Int64()])
	}
	return sb.String(), nil
}

// FormatConfirmationCode renders a raw 8-char code as "XXXX-XXXX".
func FormatConfirmationCode(raw string) (string, error) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	raw = strings.ReplaceAll(raw, "-", "")
	if len(raw) != 8 {
		return "", errors.New("raw must be length 8")
	}
	return raw[:4] + "-" + raw[4:], nil
}
