package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zhangben/backend/internal/httputil"
	"github.com/zhangben/backend/internal/models"
)

// errorHandler writes the appropriate HTTP response for a model layer
// error. Database callbacks have already rewritten driver errors into the
// model error values at this point.
func errorHandler(c *gin.Context, err error) {
	httputil.NewError(c, status(err), err)
}

// status maps a model layer error to an HTTP status code.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	}

	return http.StatusBadRequest
}
