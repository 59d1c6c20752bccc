package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListResponse wraps dashboard collections so the frontend renders
// counts without a second request.
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func List[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Items: items,
		Count: len(items),
	})
}
