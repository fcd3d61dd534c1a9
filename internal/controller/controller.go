package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scribeset/internal/dto"
	"github.com/lshigami/scribeset/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StatusFor maps service errors onto HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrEmptyArchive):
		return http.StatusNotFound
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrUpstream):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes an ErrorResponse for err. Internal errors are logged and their
// details withheld from the client.
func Fail(ctx *gin.Context, err error, message string) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(message)
		ctx.JSON(status, dto.ErrorResponse{Error: message})
		return
	}
	log.Warn().Err(err).Str("path", ctx.FullPath()).Int("status", status).Msg(message)
	ctx.JSON(status, dto.ErrorResponse{Error: message, Details: []string{err.Error()}})
}

// ParseID reads a positive integer path parameter.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// Health godoc
// @Summary Liveness and database check
// @Tags Health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /healthz [get]
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			log.Error().Err(err).Msg("Health: database unreachable")
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "database unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	}
}
