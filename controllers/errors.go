package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"oasis-backend/middleware"
	"oasis-backend/services"
	"oasis-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusFor maps service errors to an HTTP status and a stable error code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrCabinNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrSelectionNotFound):
		return http.StatusNotFound, rootCode(err)
	case errors.Is(err, services.ErrSelectionUnavailable),
		errors.Is(err, services.ErrSubmissionPending):
		return http.StatusConflict, rootCode(err)
	case errors.Is(err, services.ErrSelectionIncomplete),
		errors.Is(err, services.ErrStayTooShort),
		errors.Is(err, services.ErrInvalidGuests),
		errors.Is(err, services.ErrInvalidSettings):
		return http.StatusUnprocessableEntity, rootCode(err)
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func rootCode(err error) string {
	for _, sentinel := range []error{
		services.ErrCabinNotFound,
		services.ErrBookingNotFound,
		services.ErrSelectionNotFound,
		services.ErrSelectionUnavailable,
		services.ErrSubmissionPending,
		services.ErrSelectionIncomplete,
		services.ErrStayTooShort,
		services.ErrInvalidGuests,
		services.ErrInvalidSettings,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func respondError(c *gin.Context, err error) {
	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	_ = c.Error(err)
	utils.JSONError(c, code, msg)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
