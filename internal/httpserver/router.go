package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the extension API.
func buildRouter(logger *log.Logger, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	router.GET("/healthz", healthHandler)

	router.POST("/dynamic-page-handler", dynamicPageHandler(logger, deps.Resolver))
	// Data-source ids contain a slash ("commerce/product-list"), so the
	// route captures the rest of the path.
	router.POST("/data-sources/*id", dataSourceHandler(logger, deps.Registry))
	router.POST("/actions/:namespace/:action", actionHandler(logger, deps.Registry))

	return router
}
