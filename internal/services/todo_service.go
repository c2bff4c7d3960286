package services

import (
	"github.com/sirupsen/logrus"

	"go-multiuser-todo/backend/internal/models"
	"go-multiuser-todo/backend/internal/repositories"
)

// TodoService はTodo関連のビジネスロジックを扱います。
type TodoService struct {
	todoRepo *repositories.TodoRepository
	userRepo *repositories.UserRepository
}

// NewTodoService は新しいTodoServiceを作成します。
func NewTodoService(todoRepo *repositories.TodoRepository, userRepo *repositories.UserRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo, userRepo: userRepo}
}

// GetTodos はユーザーのTodoを取得します。ユーザーが存在しなければ ErrUserNotFound を返します。
func (s *TodoService) GetTodos(userID string) ([]*models.Todo, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, err
	}
	return s.todoRepo.FindByUserID(userID)
}

// CreateTodo は新しいTodoを作成します。
func (s *TodoService) CreateTodo(userID string, req models.TodoRequest) (*models.Todo, error) {
	return s.todoRepo.Create(&models.Todo{
		TodoTitle:  req.TodoTitle,
		TodoStatus: req.TodoStatus,
		UserID:     userID,
	})
}

// UpdateTodo はユーザー自身のTodoを更新し、更新された行数を返します。
// 0 行でもエラーにはしません (呼び出し側は成功として扱う)。
func (s *TodoService) UpdateTodo(userID, todoID string, req models.TodoRequest) (int64, error) {
	n, err := s.todoRepo.Update(userID, todoID, req.TodoTitle, req.TodoStatus)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		logrus.WithFields(logrus.Fields{"user_id": userID, "todo_id": todoID}).Debug("update matched no todo")
	}
	return n, nil
}

// DeleteTodo はユーザー自身のTodoを削除し、削除された行数を返します。
func (s *TodoService) DeleteTodo(userID, todoID string) (int64, error) {
	n, err := s.todoRepo.Delete(userID, todoID)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		logrus.WithFields(logrus.Fields{"user_id": userID, "todo_id": todoID}).Debug("delete matched no todo")
	}
	return n, nil
}
