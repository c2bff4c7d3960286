package repositories

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-multiuser-todo/backend/internal/models"
)

// TodoRepository はtodosテーブルを操作します。すべてのクエリは user_id で絞り込みます。
type TodoRepository struct {
	DB *sql.DB
}

// NewTodoRepository は新しいTodoRepositoryインスタンスを作成します。
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{DB: db}
}

// Create は新しいTodoをデータベースに挿入します。
func (r *TodoRepository) Create(t *models.Todo) (*models.Todo, error) {
	if t.TodoID == "" {
		t.TodoID = uuid.NewString()
	}
	query := "INSERT INTO todos (todo_id, user_id, todo_title, todo_status) VALUES (?, ?, ?, ?)"
	if _, err := r.DB.Exec(query, t.TodoID, t.UserID, t.TodoTitle, t.TodoStatus); err != nil {
		logrus.WithError(err).Error("failed to insert todo")
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}
	return t, nil
}

// FindByUserID はユーザーのTodoをすべて取得します。該当なしの場合は空スライスを返します。
func (r *TodoRepository) FindByUserID(userID string) ([]*models.Todo, error) {
	rows, err := r.DB.Query("SELECT todo_id, todo_title, todo_status, user_id FROM todos WHERE user_id = ?", userID)
	if err != nil {
		logrus.WithError(err).Error("failed to query todos")
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	todos := []*models.Todo{}
	for rows.Next() {
		var t models.Todo
		var status sql.NullString
		if err := rows.Scan(&t.TodoID, &t.TodoTitle, &status, &t.UserID); err != nil {
			logrus.WithError(err).Error("failed to scan todo")
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		t.TodoStatus = status.String
		todos = append(todos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}
	return todos, nil
}

// Update は所有者とIDが一致するTodoのタイトルと状態を更新し、更新された行数を返します。
func (r *TodoRepository) Update(userID, todoID, title, status string) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE todos SET todo_title = ?, todo_status = ? WHERE user_id = ? AND todo_id = ?",
		title, status, userID, todoID,
	)
	if err != nil {
		logrus.WithError(err).Error("failed to update todo")
		return 0, fmt.Errorf("could not update todo: %w", err)
	}
	return rowsAffected(result)
}

// Delete は所有者とIDが一致するTodoを削除し、削除された行数を返します。
func (r *TodoRepository) Delete(userID, todoID string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM todos WHERE user_id = ? AND todo_id = ?", userID, todoID)
	if err != nil {
		logrus.WithError(err).Error("failed to delete todo")
		return 0, fmt.Errorf("could not delete todo: %w", err)
	}
	return rowsAffected(result)
}
