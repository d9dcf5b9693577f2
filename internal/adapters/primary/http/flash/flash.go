// Package flash implements one-shot messages carried across a redirect in
// an HMAC-signed cookie.
package flash

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

const (
	CookieName = "flash"
	maxAge     = 5 * time.Minute
)

const (
	CategoryError   = "error"
	CategoryInfo    = "info"
	CategorySuccess = "success"
)

type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

type claims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// Store signs and verifies flash cookies.
type Store struct {
	secret []byte
	now    func() time.Time
}

func NewStore(secret string) *Store {
	return &Store{secret: []byte(secret), now: time.Now}
}

// Add appends a message to the pending flash cookie.
func (s *Store) Add(c *gin.Context, category, text string) error {
	msgs := s.pending(c)
	msgs = append(msgs, Message{Category: category, Text: text})

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Messages: msgs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(maxAge)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign flash cookie: %w", err)
	}

	c.Set(CookieName, msgs)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, signed, int(maxAge.Seconds()), "/", "", false, true)
	return nil
}

// Pop returns and clears all pending messages. Tampered or expired cookies
// are dropped.
func (s *Store) Pop(c *gin.Context) []Message {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)

	msgs, err := s.parse(raw)
	if err != nil {
		log.WithError(err).Debug("discarding invalid flash cookie")
		return nil
	}
	return msgs
}

// pending returns messages added earlier in this request, or carried by
// the incoming cookie.
func (s *Store) pending(c *gin.Context) []Message {
	if v, ok := c.Get(CookieName); ok {
		if msgs, ok := v.([]Message); ok {
			return msgs
		}
	}
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}
	msgs, err := s.parse(raw)
	if err != nil {
		return nil
	}
	return msgs
}

func (s *Store) parse(raw string) ([]Message, error) {
	var cl claims
	_, err := jwt.ParseWithClaims(raw, &cl, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if len(cl.Messages) == 0 {
		return nil, errors.New("flash cookie has no messages")
	}
	return cl.Messages, nil
}
