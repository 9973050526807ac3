package middleware

import (
	"log/slog"
	"strings"

	"ecocart/internal/delivery/api/response"
	deliverycontext "ecocart/internal/delivery/context"
	"ecocart/internal/domain/entity"
	domainerrors "ecocart/internal/domain/errors"
	"ecocart/internal/domain/service"
	"ecocart/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates bearer tokens and attaches the caller to the request.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, identityUC usecase.IdentityUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   tokenSvc,
		identityUC: identityUC,
		logger:     logger,
	}
}

// Authenticate validates the access token and mirrors its identity into the user table.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "缺少授權標頭")
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		if tokenString == authHeader || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "授權格式錯誤，必須為 Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "無效或已過期的 token")
		}

		ctx := c.Request().Context()
		user, err := m.identityUC.SyncUser(ctx, claims)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Failed to sync user",
				slog.String("user_id", claims.UserID.String()),
				slog.Any("error", err),
			)

			return response.HandleAppError(c, err)
		}

		deliverycontext.SetCaller(c, entity.Caller{
			UserID: user.ID,
			Roles:  entity.RolesFromStrings(claims.Roles),
		})

		return next(c)
	}
}

// RequireRole rejects callers without the role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := deliverycontext.GetCaller(c)
			if !ok {
				return response.HandleAppError(c, domainerrors.ErrUnauthorized)
			}

			if !caller.Roles.Contains(role) {
				switch role {
				case entity.RoleVendor:
					return response.HandleAppError(c, domainerrors.ErrVendorRequired)
				case entity.RoleAdmin:
					return response.HandleAppError(c, domainerrors.ErrAdminRequired)
				default:
					return response.HandleAppError(c, domainerrors.ErrForbidden)
				}
			}

			return next(c)
		}
	}
}
