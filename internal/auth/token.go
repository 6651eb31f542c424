// Package auth issues and decodes the bearer tokens handed to sellers and
// buyers. A token is "{entity_id}:{battle_id}:{secret}".
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const secretBytes = 32

// ErrSeparator is returned by Issue when an id contains the token separator.
var ErrSeparator = errors.New("auth: id must not contain ':'")

// Issue builds a fresh token for entityID in battleID.
func Issue(entityID, battleID string) (string, error) {
	if strings.Contains(entityID, ":") || strings.Contains(battleID, ":") {
		return "", ErrSeparator
	}
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: generate secret: %w", err)
	}
	return entityID + ":" + battleID + ":" + base64.RawURLEncoding.EncodeToString(buf), nil
}

// Decode splits a token into its entity and battle ids. It does not verify
// the secret; callers compare the token with the stored one.
func Decode(token string) (entityID, battleID string, ok bool) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Bearer strips an optional "Bearer " prefix from an Authorization header.
func Bearer(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
