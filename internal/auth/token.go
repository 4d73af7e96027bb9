package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// JWTConfig adalah pengaturan token yang dibaca sekali saat startup.
type JWTConfig struct {
	Secret        string
	Issuer        string
	Audience      string
	ExpiryMinutes int
}

// Claims adalah isi payload token: identitas numerik di Subject
// dan display name di "name".
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"name,omitempty"`
}

// JWTManager menerbitkan dan memvalidasi bearer token HS256.
type JWTManager struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewJWTManager gagal jika secret kosong. Secret yang tidak terkonfigurasi
// adalah error deployment yang fatal, bukan kondisi per-request.
func NewJWTManager(cfg JWTConfig) (*JWTManager, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, errors.New("jwt: signing secret is required")
	}
	return &JWTManager{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		expiry:   time.Duration(cfg.ExpiryMinutes) * time.Minute,
	}, nil
}

// Issue membuat token HS256 dengan masa berlaku now + expiry.
func (m *JWTManager) Issue(userID int, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(userID),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
		Username: username,
	}
	if m.audience != "" {
		claims.Audience = jwt.ClaimStrings{m.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate memeriksa tanda tangan, masa berlaku, issuer, dan audience.
// Semua kegagalan dikembalikan sebagai ErrUnauthenticated tanpa membedakan
// pemeriksaan mana yang gagal.
func (m *JWTManager) Validate(tokenText string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenText, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthenticated
	}
	if m.issuer != "" && !claims.VerifyIssuer(m.issuer, true) {
		return nil, ErrUnauthenticated
	}
	if m.audience != "" && !claims.VerifyAudience(m.audience, true) {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}

// ExtractIdentity menerjemahkan "token valid" menjadi "kita tahu siapa yang
// memanggil": Subject diparse sebagai id numerik non-negatif. Semua resource
// endpoint lewat sini sebelum menyentuh storage.
func ExtractIdentity(claims *Claims) (int, error) {
	if claims == nil {
		return 0, ErrUnauthenticated
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil || id < 0 {
		return 0, ErrUnauthenticated
	}
	return id, nil
}
