package qrtoken

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"

	"campus-reserve/internal/pkg/errs"
)

const compactSigLen = 16

var (
	ErrInvalidPayload   = errs.New("qr payload malformed")
	ErrInvalidSignature = errs.New("qr signature verification failed")
)

// Payload is the compact wire format embedded in reservation QR codes.
type Payload struct {
	Code string `json:"code"`
	Sig  string `json:"sig"`
}

// legacyPayload is the long-form shape emitted by earlier releases. Still
// accepted on scan for codes printed before the compact format shipped.
type legacyPayload struct {
	ReservationCode string `json:"reservation_code"`
	Signature       string `json:"signature"`
}

type Issuer struct {
	secret []byte
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Mint signs a reservation code into a compact QR payload.
func (i *Issuer) Mint(code string) Payload {
	return Payload{
		Code: code,
		Sig:  i.sign(code)[:compactSigLen],
	}
}

// MintJSON returns the serialized payload handed to QR image rendering.
func (i *Issuer) MintJSON(code string) ([]byte, error) {
	return json.Marshal(i.Mint(code))
}

// Verify checks a signature against a code in constant time. Both the
// compact truncated signature and the legacy full-length one are accepted.
func (i *Issuer) Verify(code, sig string) bool {
	expected := i.sign(code)
	switch len(sig) {
	case compactSigLen:
		expected = expected[:compactSigLen]
	case len(expected):
	default:
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(sig)) == 1
}

// Decode parses raw QR data in either wire shape and verifies its signature.
func (i *Issuer) Decode(raw []byte) (string, error) {
	var compact Payload
	if err := json.Unmarshal(raw, &compact); err == nil && compact.Code != "" {
		if !i.Verify(compact.Code, compact.Sig) {
			return "", ErrInvalidSignature
		}
		return compact.Code, nil
	}

	var legacy legacyPayload
	if err := json.Unmarshal(raw, &legacy); err == nil && legacy.ReservationCode != "" {
		if !i.Verify(legacy.ReservationCode, legacy.Signature) {
			return "", ErrInvalidSignature
		}
		return legacy.ReservationCode, nil
	}

	return "", ErrInvalidPayload
}

func (i *Issuer) sign(code string) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(code))
	return hex.EncodeToString(mac.Sum(nil))
}
