package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleSuccess writes a 200 OK envelope.
func HandleSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusOK,
		RequestID: getRequestID(c),
	})
}

// HandleCreated writes a 201 Created envelope.
func HandleCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, &Response{
		Success:   true,
		Data:      data,
		Message:   message,
		Code:      http.StatusCreated,
		RequestID: getRequestID(c),
	})
}

// HandleNoContent writes 204 No Content.
func HandleNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
