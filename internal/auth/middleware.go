package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/QuizHub/config"
	"github.com/lshigami/QuizHub/internal/dto"
	"github.com/lshigami/QuizHub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

type Middleware struct {
	secret   string
	userRepo repository.UserRepository
}

func NewMiddleware(cfg *config.Config, userRepo repository.UserRepository) *Middleware {
	return &Middleware{secret: cfg.Auth.JWTSecret, userRepo: userRepo}
}

// Authenticate requires a valid Bearer token for an existing user and
// stores the user's id and role in the request context.
func (m *Middleware) Authenticate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}

		claims, err := ParseToken(m.secret, strings.TrimSpace(tokenString))
		if err != nil {
			log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Authenticate: rejected token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		user, err := m.userRepo.FindByID(ctx.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "User not found"})
				return
			}
			log.Error().Err(err).Uint("userID", claims.UserID).Msg("Authenticate: user lookup failed")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "An unexpected error occurred"})
			return
		}

		ctx.Set(ContextUserID, user.ID)
		ctx.Set(ContextUserRole, user.Role)
		ctx.Next()
	}
}

// RequireRole must run after Authenticate.
func (m *Middleware) RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetString(ContextUserRole) != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient permissions"})
			return
		}
		ctx.Next()
	}
}

// UserID returns the authenticated user's id, or false outside Authenticate.
func UserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
