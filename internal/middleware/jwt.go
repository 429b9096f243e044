package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by JWTAuth.
const (
	UserIDKey    = "user_id"
	UserNameKey  = "user_name"
	SessionIDKey = "session_id"
)

// renewWithin is how close to expiry a token must be before a fresh one is handed out.
const renewWithin = 24 * time.Hour

// Tokens signs and verifies HS256 session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Claims is what a verified token carries.
type Claims struct {
	UID       int
	Name      string
	SessionID string
	ExpiresAt time.Time
}

func (t *Tokens) Issue(uid int, name, sid string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  uid,
		"name": name,
		"sid":  sid,
		"exp":  t.now().Add(t.ttl).Unix(),
	}).SignedString(t.secret)
}

func (t *Tokens) Parse(raw string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, err
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	uid, ok := mc["uid"].(float64)
	if !ok {
		return nil, errors.New("token has no uid")
	}
	sid, _ := mc["sid"].(string)
	if sid == "" {
		return nil, errors.New("token has no sid")
	}
	name, _ := mc["name"].(string)
	c := &Claims{UID: int(uid), Name: name, SessionID: sid}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

func JWTAuth(tokens *Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		claims, err := tokens.Parse(auth[7:])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(UserIDKey, claims.UID)
		c.Set(UserNameKey, claims.Name)
		c.Set(SessionIDKey, claims.SessionID)

		if !claims.ExpiresAt.IsZero() && claims.ExpiresAt.Sub(tokens.now()) < renewWithin {
			if fresh, err := tokens.Issue(claims.UID, claims.Name, claims.SessionID); err == nil {
				c.Header("X-New-Token", fresh)
			}
		}

		c.Next()
	}
}
