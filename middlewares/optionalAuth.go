package middlewares

import "github.com/gin-gonic/gin"

// OptionalAuth attaches claims when a valid token is present but never
// blocks the request. Guest checkout depends on this.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, err := parseBearerToken(ctx); err == nil {
			ctx.Set("user", claims)
		}
		ctx.Next()
	}
}
