package utils

import (
	"context"
	"crypto/rand"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/dgeemedia/chrenis/models"

	"github.com/golang-jwt/jwt/v5"
	redis "github.com/redis/go-redis/v9"
)

const accessTokenTTL = 7 * 24 * time.Hour

// Claims carried by an access token, extracted after validation.
type TokenClaims struct {
	UserID uint
	Email  string
	Role   string
	JTI    string
	Exp    time.Time
}

// GenerateAccessToken issues an HS256 JWT for the user. sub carries the
// canonical user id string.
func GenerateAccessToken(userID uint, email, role string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	jti, err := generateJTI(32)
	if err != nil {
		return "", err
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   models.FormatID(userID),
		"email": email,
		"role":  role,
		"exp":   now.Add(accessTokenTTL).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"jti":   jti,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateAccessToken parses and validates an access token, then checks the
// Redis revocation store when one is configured. Redis outages never fail
// authentication.
func ValidateAccessToken(tokenStr string, rdb *redis.Client) (*TokenClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method == nil || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	out := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		id, err := models.ParseID(sub)
		if err != nil {
			return nil, errors.New("invalid token payload")
		}
		out.UserID = id
	}
	if out.UserID == 0 {
		return nil, errors.New("invalid token payload")
	}
	if v, ok := claims["email"].(string); ok {
		out.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		out.Role = v
	}
	if v, ok := claims["jti"].(string); ok {
		out.JTI = v
	}
	if v, ok := claims["exp"].(float64); ok {
		out.Exp = time.Unix(int64(v), 0)
	}

	if out.JTI != "" && rdb != nil {
		res, err := rdb.Get(context.Background(), "jwt:blacklist:"+out.JTI).Result()
		if err == nil && res == "1" {
			return nil, errors.New("token revoked")
		}
	}
	return out, nil
}

// RevokeJTI blacklists a token id until its natural expiry. Without Redis
// there is no revocation store and logout is client-side only.
func RevokeJTI(rdb *redis.Client, jti string, ttl time.Duration) error {
	if jti == "" {
		return errors.New("empty jti")
	}
	if rdb == nil {
		return errors.New("no revocation store configured")
	}
	if ttl <= 0 {
		ttl = accessTokenTTL
	}
	return rdb.Set(context.Background(), "jwt:blacklist:"+jti, "1", ttl).Err()
}

// ExtractBearerToken pulls the token out of an Authorization header,
// accepting both "Bearer <token>" and a raw token.
func ExtractBearerToken(authz string) string {
	authz = strings.TrimSpace(authz)
	if authz == "" {
		return ""
	}
	parts := strings.Fields(authz)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return ""
}

// NewRedisClient builds the optional revocation-store client from
// REDIS_ADDR/REDIS_PASS/REDIS_DB. Returns nil when unconfigured or
// unreachable; callers treat nil as "no revocation store".
func NewRedisClient() *redis.Client {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil
	}
	opts := &redis.Options{Addr: addr}
	if p := os.Getenv("REDIS_PASS"); p != "" {
		opts.Password = p
	}
	rc := redis.NewClient(opts)
	if err := rc.Ping(context.Background()).Err(); err != nil {
		return nil
	}
	return rc
}

// generateJTI creates a URL-safe random identifier used as JWT ID.
func generateJTI(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	const hex = "0123456789abcdef"
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = hex[int(b[i])%len(hex)]
	}
	return string(out), nil
}
