package routes

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-multiuser-todo/backend/internal/handlers"
	"go-multiuser-todo/backend/internal/repositories"
	"go-multiuser-todo/backend/internal/services"
)

// AuthMiddleware はBearerトークンを検証し、ユーザーIDをコンテキストに設定するミドルウェアです。
// 失敗時は403を書いて以降のハンドラーを実行しません。
func AuthMiddleware(jwtService *services.JWTService, userService *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "token expired or not available"})
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			logrus.WithError(err).Debug("rejected token")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "invalid token"})
			return
		}

		// 削除済みユーザーのトークンは認証失敗として扱う
		user, err := userService.GetUser(claims.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "user not available please register or login"})
				return
			}
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "error verifying user"})
			return
		}

		c.Set(handlers.UserIDKey, user.ID)
		c.Next()
	}
}

// bearerToken は "Bearer <token>" からトークン部分を取り出します。
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
