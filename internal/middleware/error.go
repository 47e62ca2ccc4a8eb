package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "roundup/internal/errors"
	"roundup/internal/logger"
	"roundup/internal/store"
)

// ErrorHandler turns the last error attached to the gin context into the
// standard error body, unless the handler already wrote a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		appErr := toAppError(last)
		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		}
		writeError(c, appErr)
	}
}

// toAppError classifies a gin error. Binding failures are client input
// errors; store sentinels that escaped a service keep their meaning.
func toAppError(ginErr *gin.Error) *apperrors.AppError {
	err := ginErr.Err

	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case ginErr.IsType(gin.ErrorTypeBind):
		return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return apperrors.Wrap(apperrors.ErrNotFound, err)
	default:
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// writeError aborts the chain with appErr's status and body.
func writeError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
