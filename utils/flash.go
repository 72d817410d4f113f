package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Flash levels.
const (
	FlashSuccess = "success"
	FlashWarning = "warning"
	FlashError   = "error"
)

// Flash is a one-shot message shown on the next page render. It carries the
// alert semantics of the UI: action outcomes, server error messages, local
// validation failures.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

var ErrInvalidFlash = errors.New("invalid flash cookie")

// FlashCodec signs and encodes flash messages into a short-lived cookie so
// they survive the POST -> redirect -> GET cycle.
type FlashCodec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func NewFlashCodec(secret []byte, cookieName string, secure bool) *FlashCodec {
	return &FlashCodec{Secret: secret, CookieName: cookieName, Secure: secure}
}

// Encode produces the cookie value: base64(json) + "." + base64(hmac).
func (c *FlashCodec) Encode(f Flash) (string, error) {
	b, err := json.Marshal(f)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + signFlash(c.Secret, payload), nil
}

func (c *FlashCodec) Decode(v string) (*Flash, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return nil, ErrInvalidFlash
	}
	payload, sig := parts[0], parts[1]
	if !verifyFlash(c.Secret, payload, sig) {
		return nil, ErrInvalidFlash
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidFlash
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, ErrInvalidFlash
	}
	if strings.TrimSpace(f.Message) == "" {
		return nil, ErrInvalidFlash
	}
	return &f, nil
}

// CookieMaxAge keeps the flash short-lived; it only needs to outlive one
// redirect.
func (c *FlashCodec) CookieMaxAge() int {
	return int((2 * time.Minute).Seconds())
}

func signFlash(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verifyFlash(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(signFlash(secret, payload)), []byte(sig))
}
