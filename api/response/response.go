/*
Package response - unified API response handling.

HTTP status mapping lives here and only here: the domain and application
layers speak error codes, the API layer translates them to transport.
Error responses never expose internal details; the real error goes to
the log, keyed by request id.

Response format:

	success: { success: true, data: {...}, message: "...", code: 2xx, request_id: "..." }
	failure: { success: false, error: "ERROR_CODE", message: "user-visible message", code: 4xx/5xx, request_id: "..." }
*/
package response

import "github.com/gin-gonic/gin"

// RequestIDKey context key for request id propagation
const RequestIDKey = "request_id"

// Response generic response envelope
type Response struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"` // error code, not error details
	Code      int         `json:"code"`            // HTTP status code
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// GetRequestID returns the request id assigned by the middleware.
func GetRequestID(c *gin.Context) string {
	return getRequestID(c)
}
