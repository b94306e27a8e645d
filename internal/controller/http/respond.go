package http

import (
	"errors"
	"net/http"
	"strconv"

	"vidtube/internal/entity"

	"github.com/gin-gonic/gin"
)

// statusFor maps the error taxonomy onto HTTP statuses. Handlers never
// inspect error strings; kind checks via errors.Is are the only contract
// with the usecase layer.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrInvalidEdge):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// pageParams reads page/page_size query parameters. Absent or malformed
// values come back as zero; the usecase layer applies the defaults.
func pageParams(c *gin.Context) (page, pageSize int) {
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := c.Query("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			pageSize = n
		}
	}
	return page, pageSize
}
