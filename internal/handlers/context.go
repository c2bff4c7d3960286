package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDKey はAuthMiddlewareがユーザーIDを設定するコンテキストキーです。
const UserIDKey = "user_id"

// currentUserID はコンテキストからユーザーIDを取り出します。
// AuthMiddleware を通っていないルートでは403を書いて false を返します。
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(UserIDKey)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "token expired or not available"})
		return "", false
	}
	return userID, true
}
