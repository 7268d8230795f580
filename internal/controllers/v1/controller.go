// Package v1 implements the HTTP API.
package v1

import (
	"context"
	"net/http"
	"strings"

	"github.com/dugout-app/backend/internal/ai"
	"github.com/dugout-app/backend/internal/career"
	"github.com/dugout-app/backend/internal/models"
	"github.com/dugout-app/backend/internal/session"
	"github.com/gin-gonic/gin"
)

// Extractor is the part of the AI client the import endpoint needs.
type Extractor interface {
	FromText(ctx context.Context, text string) ([]career.Player, error)
	FromImage(ctx context.Context, data []byte, mimeType string) ([]career.Player, error)
}

// ExtractorFactory builds the AI client. It runs on every import request
// so that the credential precondition is checked before every call.
type ExtractorFactory func(ctx context.Context) (Extractor, error)

// Controller holds the dependencies of the API handlers.
type Controller struct {
	Sessions     *session.Manager
	NewExtractor ExtractorFactory
}

// NewController wires the default dependencies.
func NewController(sessions *session.Manager) Controller {
	return Controller{
		Sessions: sessions,
		NewExtractor: func(ctx context.Context) (Extractor, error) {
			return ai.NewExtractor(ctx)
		},
	}
}

const accountKey = "dugout-account"

// RequireAuth resolves the bearer token into the account for the request.
func (co Controller) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errNoToken.Error()})
			return
		}

		account, err := models.AccountForToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: err.Error()})
			return
		}

		c.Set(accountKey, account)
		c.Next()
	}
}

// account returns the authenticated account of the request.
func account(c *gin.Context) models.Account {
	return c.MustGet(accountKey).(models.Account)
}

// session returns the live session for the authenticated account, starting
// one if the server was restarted since login.
func (co Controller) session(c *gin.Context) (*session.Session, error) {
	a := account(c)

	if s, ok := co.Sessions.Get(a.ID); ok {
		return s, nil
	}

	return co.Sessions.Start(a.ID)
}
