package fakeapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/devshowcase/internal/common"
	"github.com/dmitrijs2005/devshowcase/internal/fakeapi/auth"
	"github.com/dmitrijs2005/devshowcase/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	ctxUserID       = "userID"
)

// requestLogger tags each request with an id and logs it once served.
func requestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		started := time.Now()
		c.Next()

		logger.Info(c.Request.Context(), "request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(started),
		)
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader(common.AuthorizationHeader)
	if !strings.HasPrefix(h, common.BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(h[len(common.BearerPrefix):])
}

// authRequired rejects requests without a valid bearer token and stores the
// caller's id under ctxUserID.
func (h *Handler) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			fail(c, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, h.secret)
		if errors.Is(err, auth.ErrTokenExpired) {
			fail(c, http.StatusUnauthorized, "Token expired")
			return
		}
		if err != nil {
			fail(c, http.StatusUnauthorized, "Token is not valid")
			return
		}
		if _, err := h.data.UserByID(userID); err != nil {
			fail(c, http.StatusUnauthorized, "Token is not valid")
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

func callerID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
