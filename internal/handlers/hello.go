// Package handlers contains HTTP request handlers for the hello service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// HelloPath is the route the greeting is served on
	HelloPath = "/hello"

	// HelloMessage is the fixed greeting body
	HelloMessage = "Hello from Azure DevOps CI/CD!"
)

// HelloHandler handles the greeting endpoint
func HelloHandler(c *gin.Context) {
	c.String(http.StatusOK, HelloMessage)
}
