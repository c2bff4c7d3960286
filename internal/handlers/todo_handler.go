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

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// GetTodosHandler は認証済みユーザーのTodoリストを取得します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	todos, err := h.todoService.GetTodos(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "user not available please register or login"})
			return
		}
		logrus.WithError(err).Warn("failed to fetch todos")
		c.JSON(http.StatusBadRequest, gin.H{"msg": "error getting todos of this user"})
		return
	}
	c.JSON(http.StatusOK, todos)
}

// CreateTodoHandler は新しいTodoを作成します。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request payload"})
		return
	}
	if _, err := h.todoService.CreateTodo(userID, req); err != nil {
		logrus.WithError(err).Warn("failed to add todo")
		c.JSON(http.StatusBadRequest, gin.H{"msg": "error adding todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "todo added successfully"})
}

// UpdateTodoHandler はTodoを更新します。該当するTodoが無くても200を返します。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request payload"})
		return
	}
	if _, err := h.todoService.UpdateTodo(userID, c.Param("todoId"), req); err != nil {
		logrus.WithError(err).Warn("failed to update todo")
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Error updating todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "todo updated successfully"})
}

// DeleteTodoHandler はTodoを削除します。該当するTodoが無くても200を返します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if _, err := h.todoService.DeleteTodo(userID, c.Param("todoId")); err != nil {
		logrus.WithError(err).Warn("failed to delete todo")
		c.JSON(http.StatusBadRequest, gin.H{"msg": "error deleting todo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "todo deleted successfully"})
}
