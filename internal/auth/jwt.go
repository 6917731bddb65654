// Package auth issues and validates the operator tokens and the session
// cookie payload.
package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrInvalidSession = errors.New("invalid session format")
)

// Claims are the JWT claims carried by both access and refresh tokens.
type Claims struct {
	UserID  int64  `json:"user_id"`
	Email   string `json:"email"`
	Refresh bool   `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair is what a login or refresh hands back to the client.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Expires      int64  `json:"expires"` // unix ms, access token expiry
}

// Manager signs and validates tokens with an HMAC secret.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  30 * time.Minute,
		refreshTTL: 30 * 24 * time.Hour,
	}
}

// IssuePair mints a fresh access/refresh token pair for a user.
func (m *Manager) IssuePair(userID int64, email string) (TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(m.accessTTL)

	access, err := m.sign(userID, email, false, now, accessExpiry)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.sign(userID, email, true, now, now.Add(m.refreshTTL))
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		Expires:      accessExpiry.UnixMilli(),
	}, nil
}

func (m *Manager) sign(userID int64, email string, refresh bool, now, expiry time.Time) (string, error) {
	claims := &Claims{
		UserID:  userID,
		Email:   email,
		Refresh: refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ValidateAccess parses an access token and returns its claims.
func (m *Manager) ValidateAccess(token string) (*Claims, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}
	if claims.Refresh {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ValidateRefresh parses a refresh token and returns its claims.
func (m *Manager) ValidateRefresh(token string) (*Claims, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}
	if !claims.Refresh {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *Manager) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// EncodeSession packs the _sg cookie value: base64 of "email,refreshToken".
func EncodeSession(email, refreshToken string) string {
	return base64.StdEncoding.EncodeToString([]byte(email + "," + refreshToken))
}

// DecodeSession unpacks a _sg cookie value.
func DecodeSession(sg string) (email, refreshToken string, err error) {
	raw, err := base64.StdEncoding.DecodeString(sg)
	if err != nil {
		return "", "", ErrInvalidSession
	}
	parts := strings.SplitN(string(raw), ",", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", ErrInvalidSession
	}
	return parts[0], parts[1], nil
}
