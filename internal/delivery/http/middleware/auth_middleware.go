package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"resume-builder-backend/internal/delivery/http/response"
	"resume-builder-backend/internal/domain"
	"resume-builder-backend/pkg/apperror"
	"resume-builder-backend/pkg/auth"
	"resume-builder-backend/pkg/logger"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Token extraction precedence: Authorization Bearer header, then the
// custom token header, then a token field in a JSON body, then the query
// parameter. Legacy clients and tests still use the non-header channels,
// so the ordering must not change.
func extractToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if h := c.GetHeader("token"); h != "" {
		return h
	}
	if tok := tokenFromBody(c); tok != "" {
		return tok
	}
	return c.Query("token")
}

// tokenFromBody peeks at a JSON body for a token field and restores the
// body for the handler.
func tokenFromBody(c *gin.Context) string {
	if c.Request.Body == nil || !strings.Contains(c.ContentType(), "application/json") {
		return ""
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(raw))

	var probe struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.Token
}

func rejectUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, message, "UNAUTHORIZED")
	c.Abort()
}

func setIdentity(c *gin.Context, claims *auth.Claims, id int64) {
	c.Set(string(domain.KeyUserID), id)
	c.Set(string(domain.KeyUserEmail), claims.Email)
	c.Set(string(domain.KeyUserName), claims.Name)
	c.Set(string(domain.KeyUserRole), claims.Role)
}

func claimsSubject(claims *auth.Claims) (int64, bool) {
	id, err := strconv.ParseInt(claims.AccountID(), 10, 64)
	return id, err == nil && id > 0
}

// isNotFound separates "the row is gone" from "the store is unreachable"
// during the freshness re-check. Only the latter degrades to the token.
func isNotFound(err error) bool {
	return apperror.FromPgError(err, "").Code == http.StatusNotFound
}

// RequireUser verifies a user-audience token and re-checks the account is
// still Active. A missing or deactivated account is rejected even with a
// valid token; only a store failure during the freshness check degrades to
// trusting the token, so the database being briefly unreachable does not
// lock everyone out.
func RequireUser(tokens *auth.TokenManager, userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			rejectUnauthorized(c, "Authentication token required")
			return
		}

		claims, err := tokens.Verify(tokenString, auth.AudienceUsers)
		if err != nil {
			rejectUnauthorized(c, "Invalid Token")
			return
		}

		id, ok := claimsSubject(claims)
		if !ok {
			rejectUnauthorized(c, "Invalid Token")
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			if isNotFound(err) {
				rejectUnauthorized(c, "Invalid Token")
				return
			}
			logger.Log.Warn("user status check unavailable, trusting token", "user_id", id, "error", err)
		} else if user.Status != domain.StatusActive {
			response.Error(c, http.StatusForbidden, "Account is disabled", "ACCOUNT_DISABLED")
			c.Abort()
			return
		}

		setIdentity(c, claims, id)
		c.Next()
	}
}

// RequireAdmin verifies an admin-audience token. When roles are given the
// token's role claim must be one of them.
func RequireAdmin(tokens *auth.TokenManager, adminRepo domain.AdminRepository, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			rejectUnauthorized(c, "Authentication token required")
			return
		}

		claims, err := tokens.Verify(tokenString, auth.AudienceAdmins)
		if err != nil {
			rejectUnauthorized(c, "Invalid Token")
			return
		}

		id, ok := claimsSubject(claims)
		if !ok {
			rejectUnauthorized(c, "Invalid Token")
			return
		}

		if len(roles) > 0 && !containsRole(roles, claims.Role) {
			response.Error(c, http.StatusForbidden, "Insufficient privileges", "FORBIDDEN")
			c.Abort()
			return
		}

		// The admin id lookup resolves Active rows only, so a miss means
		// the account was deactivated or removed; reject it. Only a store
		// failure degrades to trusting the token.
		admin, err := adminRepo.GetByID(c.Request.Context(), id)
		if err != nil {
			if isNotFound(err) {
				response.Error(c, http.StatusForbidden, "Account is disabled", "ACCOUNT_DISABLED")
				c.Abort()
				return
			}
			logger.Log.Warn("admin status check unavailable, trusting token", "admin_id", id, "error", err)
		} else if admin.Status != domain.StatusActive {
			response.Error(c, http.StatusForbidden, "Account is disabled", "ACCOUNT_DISABLED")
			c.Abort()
			return
		}

		setIdentity(c, claims, id)
		c.Next()
	}
}

func containsRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
