package httpserver

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-extensions/internal/extension"
	"storefront-extensions/internal/page"
)

// dynamicPageHandler resolves a storefront path. An unmatched path answers
// with a JSON null so the host falls through to its own page lookup.
func dynamicPageHandler(logger *log.Logger, resolver *page.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req extension.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request envelope"})
			return
		}

		resolution, err := resolver.Resolve(c.Request.Context(), req)
		if err != nil {
			logger.Printf("dynamic page: path=%s err=%v", req.PagePath(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "page resolution failed"})
			return
		}
		c.JSON(http.StatusOK, resolution)
	}
}

type dataSourcePayload struct {
	Config  extension.DataSourceConfig `json:"dataSourceConfig"`
	Request extension.Request          `json:"request"`
}

func dataSourceHandler(logger *log.Logger, registry *extension.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimPrefix(c.Param("id"), "/")
		source, ok := registry.DataSources()[id]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown data source"})
			return
		}

		var payload dataSourcePayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request envelope"})
			return
		}

		result, err := source(c.Request.Context(), payload.Config, payload.Request)
		if err != nil {
			logger.Printf("data source: id=%s err=%v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "data source failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// actionHandler dispatches a named action. The action's envelope travels in
// a 200 response; its StatusCode field is the storefront-facing status.
func actionHandler(logger *log.Logger, registry *extension.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		namespace := c.Param("namespace")
		name := c.Param("action")

		actions, ok := registry.Actions()[namespace]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown action namespace"})
			return
		}
		action, ok := actions[name]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown action"})
			return
		}

		var req extension.Request
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request envelope"})
			return
		}

		response, err := action(c.Request.Context(), req)
		if err != nil {
			logger.Printf("action: %s/%s err=%v", namespace, name, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "action failed"})
			return
		}
		c.JSON(http.StatusOK, response)
	}
}
