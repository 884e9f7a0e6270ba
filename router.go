package main

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/Sakshi-Shah5/Interactive-Spreadsheet-Application/contracts"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterOptions struct {
	BasePath    string
	CorsOrigins []string
	AuthToken   string
	Envelopes   *EnvelopeBuilder
	Metrics     *Metrics
	Logger      *slog.Logger
}

func SetupRouter(controller contracts.ApiController, options RouterOptions) *gin.Engine {
	router := gin.New()

	router.Use(
		RequestIdMiddleware(),
		AccessLogMiddleware(options.Logger),
		options.Metrics.Middleware(),
		RecoveryMiddleware(options.Envelopes, options.Logger),
		cors.New(corsConfig(options.CorsOrigins)),
	)

	apiRouterGroup := router.Group(options.BasePath, AuthMiddleware(options.AuthToken, options.Envelopes))
	apiRouterGroup.PUT("/:ss_name", controller.LoadAction)
	apiRouterGroup.GET("/:ss_name", controller.DumpAction)
	apiRouterGroup.DELETE("/:ss_name", controller.ClearAction)
	apiRouterGroup.GET("/:ss_name/:cell_id", controller.QueryCellAction)
	apiRouterGroup.PATCH("/:ss_name/:cell_id", controller.UpdateCellAction)
	apiRouterGroup.DELETE("/:ss_name/:cell_id", controller.RemoveCellAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})
	router.GET("/metrics", gin.WrapH(options.Metrics.Handler()))

	router.NoRoute(NotFoundHandler(options.Envelopes))

	return router
}

func corsConfig(origins []string) cors.Config {
	config := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", RequestIdHeader},
		ExposeHeaders: []string{RequestIdHeader},
	}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	return config
}
