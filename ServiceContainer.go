package main

import (
	"log/slog"
	"time"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	"github.com/gin-gonic/gin"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database           *bbolt.DB
	Logger             *slog.Logger
	ApiController      contracts.ApiController
	SpreadsheetService contracts.SpreadsheetService
	ExpressionExecutor contracts.ExpressionExecutor
	Envelopes          *EnvelopeBuilder
	Metrics            *Metrics
	Router             *gin.Engine
}

func BuildServiceContainer(config Config, logger *slog.Logger) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabasePath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return
	}

	container.Logger = logger
	serializer := NewCellBinarySerializer()
	canonicalizer := NewCanonicalizer()

	container.ExpressionExecutor = NewExpressionExecutor(canonicalizer)
	container.SpreadsheetService = NewSheetRepository(
		container.Database, container.ExpressionExecutor, serializer, canonicalizer, NewReferenceAdjuster(canonicalizer),
	)
	container.Envelopes = NewEnvelopeBuilder(NewErrorMapper(logger), logger)
	container.ApiController = NewApiController(container.SpreadsheetService, container.Envelopes)
	container.Metrics = NewMetrics()

	container.Router = SetupRouter(container.ApiController, RouterOptions{
		BasePath:    config.BasePath,
		CorsOrigins: config.CorsOrigins,
		AuthToken:   config.AuthToken,
		Envelopes:   container.Envelopes,
		Metrics:     container.Metrics,
		Logger:      logger,
	})

	return
}
