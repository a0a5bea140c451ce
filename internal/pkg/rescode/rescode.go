package rescode

import (
	"crypto/rand"
	"regexp"
)

// Reservation codes are printed on QR slips and read back by humans, so the
// alphabet drops nothing: all 36 upper alphanumerics are allowed.
const (
	Prefix   = "RES-"
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffix   = 8
)

var pattern = regexp.MustCompile(`^RES-[A-Z0-9]{8}$`)

// maxUniformByte is the largest multiple of len(alphabet) below 256. Bytes
// at or above it are redrawn so every symbol is equally likely.
const maxUniformByte = 256 / len(alphabet) * len(alphabet)

// Generate mints a random reservation code. Uniqueness is enforced by the
// database; callers retry on collision.
func Generate() (string, error) {
	code := make([]byte, 0, suffix)
	buf := make([]byte, suffix)
	for len(code) < suffix {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= maxUniformByte {
				continue
			}
			code = append(code, alphabet[int(b)%len(alphabet)])
			if len(code) == suffix {
				break
			}
		}
	}
	return Prefix + string(code), nil
}

func Valid(code string) bool {
	return pattern.MatchString(code)
}
