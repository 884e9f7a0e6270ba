package main

import (
	"crypto/subtle"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIdHeader = "X-Request-Id"

const requestIdContextKey = "requestId"

func RequestIdMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(RequestIdHeader)
		if requestId == "" {
			requestId = "req_" + uuid.NewString()
		}

		c.Set(requestIdContextKey, requestId)
		c.Header(RequestIdHeader, requestId)
		c.Next()
	}
}

func AccessLogMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", c.GetString(requestIdContextKey)),
		)
	}
}

// RecoveryMiddleware turns panics into an INTERNAL envelope. Details stay in
// the server log; the caller only sees a generic message.
func RecoveryMiddleware(envelopes *EnvelopeBuilder, logger *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			slog.String("panic", fmt.Sprint(recovered)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("request_id", c.GetString(requestIdContextKey)),
		)
		envelopes.WriteFailure(c, contracts.Errorf(contracts.CodeInternal, "internal server error"))
	})
}

// AuthMiddleware requires `Authorization: Bearer <token>` when token is set.
func AuthMiddleware(token string, envelopes *EnvelopeBuilder) gin.HandlerFunc {
	expected := []byte("Bearer " + token)

	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		if subtle.ConstantTimeCompare([]byte(c.GetHeader("Authorization")), expected) != 1 {
			envelopes.WriteFailure(c, contracts.Errorf(contracts.CodeAuth, "missing or invalid bearer token"))
			return
		}
		c.Next()
	}
}

func NotFoundHandler(envelopes *EnvelopeBuilder) gin.HandlerFunc {
	return func(c *gin.Context) {
		envelopes.WriteFailure(c, contracts.Errorf(contracts.CodeNotFound,
			fmt.Sprintf("%s %s not found", c.Request.Method, c.Request.URL.Path)))
	}
}
