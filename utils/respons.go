package utils

import "github.com/gin-gonic/gin"

type JSONResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Message: message,
		Data:    data,
	})
}

// RespondError wraps the cause under data.errors so clients always get a
// message plus a machine-readable reason.
func RespondError(c *gin.Context, code int, message string, errs interface{}) {
	c.JSON(code, JSONResponse{
		Message: message,
		Data:    gin.H{"errors": errs},
	})
}
