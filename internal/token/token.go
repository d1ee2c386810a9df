// Package token decodes JSON Web Tokens for display.
package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tokengrip/internal/domain"
)

var (
	ErrEmptyToken           = errors.New("token is empty")
	ErrUnsupportedAlgorithm = errors.New("only HMAC signatures can be verified with a secret")
)

// base64SecretPrefix marks a secret that must be base64 decoded before use
const base64SecretPrefix = "b64:"

// Decoded holds the display form of a token
type Decoded struct {
	Raw          string
	Algorithm    string
	Subject      string
	Header       string // indented JSON
	Payload      string // indented JSON
	Signature    string // base64url as found in the token
	Claims       map[string]any
	Verification domain.VerifyStatus
}

// Decode splits and decodes raw without verifying its signature
func Decode(raw string) (*Decoded, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrEmptyToken
	}

	claims := jwt.MapClaims{}
	tok, parts, err := jwt.NewParser().ParseUnverified(raw, claims)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}

	header, err := json.MarshalIndent(tok.Header, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to format header: %w", err)
	}
	payload, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to format payload: %w", err)
	}

	d := &Decoded{
		Raw:     raw,
		Header:  string(header),
		Payload: string(payload),
		Claims:  claims,
	}
	if alg, ok := tok.Header["alg"].(string); ok {
		d.Algorithm = alg
	}
	if sub, err := claims.GetSubject(); err == nil {
		d.Subject = sub
	}
	if len(parts) == 3 {
		d.Signature = parts[2]
	}
	return d, nil
}

// Inspect decodes raw and, when secret is set, verifies its signature
func Inspect(raw, secret string) (*Decoded, error) {
	d, err := Decode(raw)
	if err != nil {
		return nil, err
	}
	if secret == "" {
		d.Verification = domain.VerifySkipped
		return d, nil
	}

	switch err := Verify(d.Raw, secret); {
	case err == nil:
		d.Verification = domain.VerifyValid
	case errors.Is(err, ErrUnsupportedAlgorithm):
		d.Verification = domain.VerifyUnsupported
	default:
		d.Verification = domain.VerifyInvalid
	}
	return d, nil
}

// Verify checks the HMAC signature of raw against secret.
// Claims such as exp are not validated.
func Verify(raw, secret string) error {
	key, err := secretKey(secret)
	if err != nil {
		return err
	}

	_, err = jwt.Parse(strings.TrimSpace(raw), func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnsupportedAlgorithm
		}
		return key, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return fmt.Errorf("failed to verify token: %w", err)
	}
	return nil
}

func secretKey(secret string) ([]byte, error) {
	if encoded, ok := strings.CutPrefix(secret, base64SecretPrefix); ok {
		key, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64 secret: %w", err)
		}
		return key, nil
	}
	return []byte(secret), nil
}

// Entry builds the history record for d decoded at the given time
func (d *Decoded) Entry(at time.Time) domain.HistoryEntry {
	return domain.HistoryEntry{
		Raw:       d.Raw,
		Algorithm: d.Algorithm,
		Subject:   d.Subject,
		DecodedAt: at,
	}
}
