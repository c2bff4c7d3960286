// Package models はUserとTodoを定義します。
package models

type Todo struct {
	TodoID     string `json:"todo_id"`
	TodoTitle  string `json:"todo_title"`
	TodoStatus string `json:"todo_status"` // 自由形式
	UserID     string `json:"user_id"`
}

// TodoRequest は /add-todo と /update-todo のリクエストボディです。
type TodoRequest struct {
	TodoTitle  string `json:"todo_title" binding:"required"`
	TodoStatus string `json:"todo_status"`
}
