package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PageResponse[T any] struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// List writes data as a bare JSON array, never null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, data)
}

func Page[T any](c *gin.Context, page, limit int, total int64, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, PageResponse[T]{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  data,
	})
}
