package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/lunch-voting-app/utils"
)

// AuthMiddleware resolves the Authorization bearer token to an employee id
// and stores it in the request context. Handlers behind it can assume an
// authenticated caller.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		if claims.EmployeeID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid employee id in token"))
			c.Abort()
			return
		}

		c.Set("employee_id", claims.EmployeeID)
		c.Next()
	}
}
