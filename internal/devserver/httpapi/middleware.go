package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/portal/internal/common"
	"github.com/dmitrijs2005/portal/internal/logging"
	"github.com/dmitrijs2005/portal/internal/requestid"
	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

func userID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// RequestID keeps an incoming X-Request-Id or generates one, and exposes it
// through the request context and the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.HeaderName)
		if id == "" {
			id = requestid.New()
		}

		ctx := requestid.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestid.HeaderName, id)
		c.Next()
	}
}

// AccessLog writes one line per request.
func AccessLog(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

// Instrument records request counts and latency.
func Instrument(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.RequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}

// Auth accepts the credential either raw or with a "Bearer " prefix. Missing,
// invalid and expired credentials are answered with HTTP 401.
func Auth(verify func(token string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		if token == "" {
			unauthorized(c, "missing credential")
			return
		}

		id, err := verify(token)
		if err != nil {
			msg := "invalid credential"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "credential expired"
			}
			unauthorized(c, msg)
			return
		}

		c.Set(userIDKey, id)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, envelope{Code: http.StatusUnauthorized, Msg: msg})
}
