// Package session carries a quiz.Session between requests as a signed JWT in
// a browser-session cookie. The server keeps no per-visitor state.
package session

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lightwork-server/quiz"
)

// Context keys set by Manager.Middleware.
const (
	ContextSessionID = "quiz_session_id"
	ContextSession   = "quiz_session"
)

// claims struct to hold the quiz state alongside the registered claims
type claims struct {
	Quiz quiz.Session `json:"quiz"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens.
type Codec struct {
	key    []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec returns an HS256 codec.
func NewCodec(signingKey, issuer string, ttl time.Duration) *Codec {
	return &Codec{key: []byte(signingKey), issuer: issuer, ttl: ttl, now: time.Now}
}

// Encode signs s under the session id.
func (c *Codec) Encode(id string, s quiz.Session) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Quiz: s,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Issuer:    c.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	})
	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies a token and returns its session id and state.
func (c *Codec) Decode(tokenString string) (string, quiz.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.key, nil
	},
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return "", quiz.Session{}, err
	}
	cl, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return "", quiz.Session{}, errors.New("invalid session claims")
	}
	if cl.ID == "" {
		return "", quiz.Session{}, errors.New("session id missing")
	}
	return cl.ID, cl.Quiz, nil
}

// CookieOptions controls the session cookie.
type CookieOptions struct {
	Name   string
	Secure bool
}

// Manager loads and stores sessions on gin requests.
type Manager struct {
	codec  *Codec
	bank   *quiz.Bank
	cookie CookieOptions
}

// NewManager ties a codec to the question bank sessions are validated against.
func NewManager(codec *Codec, bank *quiz.Bank, cookie CookieOptions) *Manager {
	return &Manager{codec: codec, bank: bank, cookie: cookie}
}

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// Load reads the session from the request cookie. A missing, tampered,
// expired or inconsistent cookie yields a fresh session under a new id.
func (m *Manager) Load(c *gin.Context) (string, quiz.Session) {
	raw, err := c.Cookie(m.cookie.Name)
	if err != nil || raw == "" {
		return NewID(), m.bank.NewSession()
	}
	id, s, err := m.codec.Decode(raw)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Printf("Quiz session cookie expired, starting fresh")
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			log.Printf("Quiz session cookie has an invalid signature, starting fresh")
		default:
			log.Printf("Quiz session cookie rejected: %v", err)
		}
		return NewID(), m.bank.NewSession()
	}
	if err := m.bank.Validate(s); err != nil {
		log.Printf("Quiz session %s rejected: %v", id, err)
		return NewID(), m.bank.NewSession()
	}
	return id, s
}

// Save writes s back to the response cookie.
func (m *Manager) Save(c *gin.Context, id string, s quiz.Session) error {
	token, err := m.codec.Encode(id, s)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	// MaxAge 0 keeps the cookie for the browser session only.
	c.SetCookie(m.cookie.Name, token, 0, "/", "", m.cookie.Secure, true)
	c.Set(ContextSessionID, id)
	c.Set(ContextSession, s)
	return nil
}

// Middleware loads the session into the gin context for downstream handlers.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, s := m.Load(c)
		c.Set(ContextSessionID, id)
		c.Set(ContextSession, s)
		c.Next()
	}
}

// FromContext returns the session placed by Middleware or Save.
func FromContext(c *gin.Context) (string, quiz.Session, bool) {
	id := c.GetString(ContextSessionID)
	v, ok := c.Get(ContextSession)
	if !ok || id == "" {
		return "", quiz.Session{}, false
	}
	s, ok := v.(quiz.Session)
	return id, s, ok
}
