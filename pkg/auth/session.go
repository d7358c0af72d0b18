package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
)

const sessionCookieName = "acesite_admin"
const minSecretLen = 32

// Session is the verified payload of an admin session token.
type Session struct {
	UserID string
	Role   string
}

// CreateSessionToken signs a session payload with HMAC-SHA256. The payload
// carries the user id and role so the middleware can enforce the admin
// capability without a database read.
func CreateSessionToken(s Session, secret []byte) string {
	payload := []byte(s.UserID + "|" + s.Role)
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	sig := hex.EncodeToString(mac.Sum(nil))
	return base64.URLEncoding.EncodeToString(payload) + "." + sig
}

// VerifySessionToken checks the signature and returns the session payload.
func VerifySessionToken(token string, secret []byte) (Session, error) {
	parts := strings.SplitN(token, ".", 2)
	if len(parts) != 2 {
		return Session{}, errors.New("invalid token format")
	}
	payload, err := base64.URLEncoding.DecodeString(parts[0])
	if err != nil {
		return Session{}, err
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return Session{}, errors.New("invalid signature")
	}

	userID, role, ok := strings.Cut(string(payload), "|")
	if !ok || userID == "" {
		return Session{}, errors.New("invalid payload")
	}
	return Session{UserID: userID, Role: role}, nil
}

// SessionCookieName returns the admin session cookie name.
func SessionCookieName() string {
	return sessionCookieName
}

// SessionSecretBytes derives the signing key from a configured string,
// padding short secrets to the minimum length.
func SessionSecretBytes(s string) []byte {
	b := []byte(s)
	if len(b) < minSecretLen {
		out := make([]byte, minSecretLen)
		copy(out, b)
		return out
	}
	return b
}
