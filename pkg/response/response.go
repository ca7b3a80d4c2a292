package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xiebiao/bookstore-integration/pkg/errors"
)

// ErrorBody is the error payload every failing route returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// OK writes data as-is with status 200.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data as-is with status 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Error renders err as an ErrorBody, mapping the AppError code to the HTTP
// status. Internal causes are logged, never returned to the client.
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	if appErr.Err != nil {
		log.Error().
			Err(appErr.Err).
			Int("code", appErr.Code).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.JSON(httpStatus(appErr.Code), ErrorBody{Error: appErr.Message})
}

// AbortError is Error plus aborting the handler chain, for middleware.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// httpStatus maps a business error code to the HTTP status it is served as.
func httpStatus(code int) int {
	switch {
	case code >= 50000:
		return http.StatusInternalServerError
	case code >= 40900 && code < 41000:
		return http.StatusBadRequest
	case code >= apperrors.ErrCodeNotFound && code < 40500:
		return http.StatusNotFound
	case code >= apperrors.ErrCodeUnauthorized && code < 40200:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
