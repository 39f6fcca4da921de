package controller

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hireloop/hireloop/config"
	"github.com/hireloop/hireloop/internal/dto"
)

// BearerAuth guards the recruiter endpoints with the single bearer credential
// from process configuration. Applicant session endpoints are addressed by
// access key instead and do not use this middleware.
func BearerAuth(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if cfg.API.Token == "" {
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "API token is not configured"})
			return
		}

		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.API.Token)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or missing bearer token"})
			return
		}

		ctx.Next()
	}
}
