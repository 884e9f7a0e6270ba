package main

import (
	"log/slog"
	"net/http"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
)

const jsonContentType = "application/json; charset=utf-8"

type EnvelopeBuilder struct {
	errorMapper *ErrorMapper
	logger      *slog.Logger
}

func NewEnvelopeBuilder(errorMapper *ErrorMapper, logger *slog.Logger) *EnvelopeBuilder {
	return &EnvelopeBuilder{errorMapper: errorMapper, logger: logger}
}

func (b *EnvelopeBuilder) Success(request *http.Request, status int, result any) *contracts.SuccessEnvelope {
	return &contracts.SuccessEnvelope{
		IsOk:   true,
		Status: status,
		Links: contracts.Links{
			Self: contracts.Link{Href: SelfHref(request), Method: request.Method},
		},
		Result: result,
	}
}

func (b *EnvelopeBuilder) Failure(err error) *contracts.ErrorEnvelope {
	status, errs := b.errorMapper.Map(err)
	return &contracts.ErrorEnvelope{
		IsOk:   false,
		Status: status,
		Errors: errs,
	}
}

// Write sends the envelope as the only response of the request.
func (b *EnvelopeBuilder) Write(c *gin.Context, envelope contracts.Envelope) {
	if c.Writer.Written() {
		b.logger.Error("response already written, envelope dropped",
			slog.String("path", c.Request.URL.Path), slog.Int("status", envelope.HTTPStatus()))
		c.Abort()
		return
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		b.logger.Error("envelope encoding failed", slog.Any("error", err))
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(envelope.HTTPStatus(), jsonContentType, body)
	c.Abort()
}

func (b *EnvelopeBuilder) WriteSuccess(c *gin.Context, status int, result any) {
	b.Write(c, b.Success(c.Request, status, result))
}

func (b *EnvelopeBuilder) WriteFailure(c *gin.Context, err error) {
	b.Write(c, b.Failure(err))
}

// SelfHref is the absolute URL of the request, query string included, so the
// link resolves to the exact resource the response concerns.
func SelfHref(request *http.Request) string {
	scheme := "http"
	if request.TLS != nil {
		scheme = "https"
	}
	if forwarded := request.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	return scheme + "://" + request.Host + request.URL.RequestURI()
}
