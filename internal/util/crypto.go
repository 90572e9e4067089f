package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"unicode"
)

// HashPassphrase returns the hex sha256 digest stored for the layout-unlock
// passphrase. The board holds no secrets; this only keeps passers-by from
// rearranging the wall display.
func HashPassphrase(pass string) string {
	sum := sha256.Sum256([]byte(pass))
	return hex.EncodeToString(sum[:])
}

// ValidatePassphrase enforces a minimal strength rule at setup time.
func ValidatePassphrase(pass string) error {
	if len(pass) < 8 {
		return fmt.Errorf("passphrase must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range pass {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("passphrase must contain letters and digits")
	}
	return nil
}
