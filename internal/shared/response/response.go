package response

import (
	"github.com/gin-gonic/gin"
)

// The API's wire contract is fixed: success bodies are the payload itself
// ({"id": 1}, a resource, or a list) and every error body is {"error": "..."}.

type errorBody struct {
	Error string `json:"error"`
}

// JSON writes a success payload as-is.
func JSON(c *gin.Context, statusCode int, payload interface{}) {
	c.JSON(statusCode, payload)
}

// Error writes {"error": message} with the given status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorBody{Error: message})
}

// BadRequest is the common validation/not-found failure shape.
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Forbidden rejects a request that failed the auth guard.
func Forbidden(c *gin.Context, message string) {
	Error(c, 403, message)
}

// InternalServerError hides store failures behind a generic message; the
// real error is logged where it happened.
func InternalServerError(c *gin.Context) {
	Error(c, 500, "internal server error")
}
