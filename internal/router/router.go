// Package router defines how HTTP routes are registered for the API.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/deepakn/token-generation-api/internal/handler"
)

// RegisterRoutes maps the public HTTP surface onto the provided Echo
// instance. Every route is unauthenticated; the contract is the four
// documented endpoints plus a health check for load balancers.
func RegisterRoutes(e *echo.Echo, h *handler.TextHandler) {
    // Liveness probe; kept off the welcome payload on purpose since it is
    // operational, not part of the API.
    e.GET("/healthz", handler.Health)

    // Landing payload with the endpoint map.
    e.GET("/", h.Welcome)
    // Tokenization from a query parameter.
    e.GET("/generate", h.GenerateFromQuery)
    // Tokenization from a JSON body.
    e.POST("/tokenize", h.Tokenize)
    // MD5 checksum from a JSON body.
    e.POST("/checksum", h.Checksum)
}
