// Package sso encodes and verifies DiscourseConnect payloads.
//
// A payload is a set of key/value pairs, URL-encoded, then base64-encoded
// (standard alphabet, padded). The signature is the lowercase hex
// HMAC-SHA256 of the exact base64 string, keyed with the shared secret.
package sso

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"

	"github.com/goldram69/gemdjsso/internal/utils"
	"github.com/goldram69/gemdjsso/models"
)

var (
	ErrEmptySecret      = errors.New("sso secret is empty")
	ErrInvalidSignature = errors.New("invalid sso signature")
	ErrMalformedPayload = errors.New("malformed sso payload")
)

// Payload keys.
const (
	KeyNonce        = "nonce"
	KeyReturnSSOURL = "return_sso_url"
	KeyEmail        = "email"
	KeyExternalID   = "external_id"
	KeyUsername     = "username"
	KeyName         = "name"
)

// Codec signs and verifies payloads with one shared secret.
type Codec struct {
	hasher *utils.Hasher
}

// NewCodec returns a Codec for secret. An empty secret is rejected.
func NewCodec(secret string) (*Codec, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Codec{hasher: utils.NewHasher(secret)}, nil
}

// Encode returns the base64 payload and its hex signature.
func (c *Codec) Encode(p models.SSOPayload) (payload, sig string) {
	values := url.Values{}
	values.Set(KeyNonce, p.Nonce)
	values.Set(KeyReturnSSOURL, p.ReturnSSOURL)
	values.Set(KeyEmail, p.Email)
	values.Set(KeyExternalID, p.ExternalID)
	values.Set(KeyUsername, p.Username)
	values.Set(KeyName, p.Name)

	payload = base64.StdEncoding.EncodeToString([]byte(values.Encode()))
	return payload, c.Sign(payload)
}

// Sign returns the hex HMAC-SHA256 of payload.
func (c *Codec) Sign(payload string) string {
	return c.hasher.HashHex([]byte(payload))
}

// Verify checks sig against payload in constant time.
func (c *Codec) Verify(payload, sig string) error {
	if !c.hasher.Verify([]byte(payload), sig) {
		return ErrInvalidSignature
	}
	return nil
}

// Decode verifies and decodes a payload received from the forum.
func (c *Codec) Decode(payload, sig string) (models.SSOPayload, error) {
	if err := c.Verify(payload, sig); err != nil {
		return models.SSOPayload{}, err
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return models.SSOPayload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return models.SSOPayload{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	return models.SSOPayload{
		Nonce:        values.Get(KeyNonce),
		ReturnSSOURL: values.Get(KeyReturnSSOURL),
		Email:        values.Get(KeyEmail),
		ExternalID:   values.Get(KeyExternalID),
		Username:     values.Get(KeyUsername),
		Name:         values.Get(KeyName),
	}, nil
}

// RedirectURL appends the sso and sig query parameters to loginURL,
// keeping any query it already carries.
func RedirectURL(loginURL, payload, sig string) (string, error) {
	u, err := url.Parse(loginURL)
	if err != nil {
		return "", fmt.Errorf("invalid sso login url: %w", err)
	}

	q := u.Query()
	q.Set("sso", payload)
	q.Set("sig", sig)
	u.RawQuery = q.Encode()

	return u.String(), nil
}
