package response

import (
	"car-marketplace-api/apperror"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON shape of every failed request
type ErrorBody struct {
	Detail string `json:"detail"`
}

// Error records err on the context for the request logger and aborts with
// the mapped status and detail.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(apperror.Status(err), ErrorBody{Detail: apperror.Detail(err)})
}
