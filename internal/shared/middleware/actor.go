package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ralhum-backend/internal/access"
	"ralhum-backend/pkg/jwt"
)

const actorKey = "actor"

// Actor resolves the request principal from the Authorization header. A
// missing, malformed or expired token resolves to the anonymous actor rather
// than failing the request: per-operation predicates decide what anonymous
// may do.
func Actor(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(actorKey, resolveActor(c, manager))
		c.Next()
	}
}

func resolveActor(c *gin.Context, manager *jwt.Manager) access.Actor {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return access.Anonymous()
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return access.Anonymous()
	}
	claims, err := manager.ValidateToken(parts[1])
	if err != nil {
		return access.Anonymous()
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return access.Anonymous()
	}
	role := access.Role(claims.Role)
	if !role.IsValid() || role == access.RoleAnonymous {
		return access.Anonymous()
	}
	return access.Actor{ID: userID, Role: role}
}

// ActorFromContext returns the resolved actor, or anonymous when the
// middleware did not run.
func ActorFromContext(c *gin.Context) access.Actor {
	v, exists := c.Get(actorKey)
	if !exists {
		return access.Anonymous()
	}
	actor, ok := v.(access.Actor)
	if !ok {
		return access.Anonymous()
	}
	return actor
}

// RequireStaff short-circuits routes that only back-office users may reach.
// Fine-grained checks still happen in the services via the predicate table.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c)
		if !actor.Role.IsStaff() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Access denied: staff role required",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
