// Package handlers はHTTPリクエストを処理するハンドラーを提供します。
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"go-multiuser-todo/backend/internal/models"
	"go-multiuser-todo/backend/internal/repositories"
	"go-multiuser-todo/backend/internal/services"
)

// UserHandler はユーザー関連のハンドラーを管理します。
type UserHandler struct {
	userService *services.UserService
	jwtService  *services.JWTService
}

// NewUserHandler は新しいUserHandlerを作成します。
func NewUserHandler(userService *services.UserService, jwtService *services.JWTService) *UserHandler {
	return &UserHandler{userService: userService, jwtService: jwtService}
}

// RegisterHandler はユーザー登録を処理します。既に登録済みのメールアドレスは402を返します。
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req models.UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request payload"})
		return
	}

	if _, err := h.userService.RegisterUser(req); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			c.JSON(http.StatusPaymentRequired, gin.H{"msg": "user already exists please login using this email."})
			return
		}
		logrus.WithError(err).Error("failed to register user")
		c.JSON(http.StatusBadRequest, gin.H{"msg": "error creating user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user created successfully.."})
}

// LoginHandler はユーザーログインを処理し、成功した場合はJWTを返します。
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request payload"})
		return
	}

	user, err := h.userService.AuthenticateUser(req)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"msg": "user not exists please register."})
		case errors.Is(err, services.ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid password"})
		default:
			logrus.WithError(err).Error("failed to authenticate user")
			c.JSON(http.StatusBadRequest, gin.H{"msg": "error logging in"})
		}
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		logrus.WithError(err).Error("failed to generate JWT token")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// UserDetailsHandler は認証済みユーザーの行をそのまま返します (passwordのハッシュを含む)。
func (h *UserHandler) UserDetailsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUser(userID)
	if err != nil {
		logrus.WithError(err).Warn("failed to fetch user details")
		c.JSON(http.StatusBadRequest, gin.H{"msg": "error getting user details"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUserHandler はユーザー情報を上書きします。失敗は重複メールも含めて402です。
func (h *UserHandler) UpdateUserHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request payload"})
		return
	}
	if err := h.userService.UpdateUser(userID, req); err != nil {
		logrus.WithError(err).Warn("failed to update user")
		c.JSON(http.StatusPaymentRequired, gin.H{"msg": "error updating user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user updated successfully.."})
}

// DeleteUserHandler はユーザーを削除します。
func (h *UserHandler) DeleteUserHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.userService.DeleteUser(userID); err != nil {
		logrus.WithError(err).Warn("failed to delete user")
		c.JSON(http.StatusBadRequest, gin.H{"msg": "error deleting user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "user deleted success fully"})
}
