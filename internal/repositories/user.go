package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt" // パスワードのハッシュ化用

	"go-multiuser-todo/backend/internal/models"
)

// PasswordCost はbcryptのコスト (2^10 ラウンド) です。
const PasswordCost = 10

// HashPassword は与えられたパスワードをbcryptでハッシュ化します。
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedPassword), nil
}

// VerifyPassword はハッシュ化されたパスワードと平文のパスワードを比較します。
func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// UserRepository はusersテーブルを操作します。
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository は新しいUserRepositoryインスタンスを作成します。
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create は新しいユーザーをデータベースに挿入します。u.Password はハッシュ済みであること。
func (r *UserRepository) Create(u *models.User) (*models.User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	query := "INSERT INTO users (id, name, email, password) VALUES (?, ?, ?, ?)"
	if _, err := r.DB.Exec(query, u.ID, u.Name, u.Email, u.Password); err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		logrus.WithError(err).Error("failed to insert user")
		return nil, fmt.Errorf("could not insert user: %w", err)
	}
	return u, nil
}

// FindByEmail はメールアドレスでユーザーを検索します。
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	return r.findOne("SELECT id, name, email, password FROM users WHERE email = ?", email)
}

// FindByID はIDでユーザーを検索します。
func (r *UserRepository) FindByID(id string) (*models.User, error) {
	return r.findOne("SELECT id, name, email, password FROM users WHERE id = ?", id)
}

func (r *UserRepository) findOne(query string, arg any) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRow(query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).Error("failed to query user")
		return nil, fmt.Errorf("could not query user: %w", err)
	}
	return &u, nil
}

// Update は name/email/password を上書きし、更新された行数を返します。
func (r *UserRepository) Update(u *models.User) (int64, error) {
	result, err := r.DB.Exec("UPDATE users SET name = ?, email = ?, password = ? WHERE id = ?", u.Name, u.Email, u.Password, u.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, ErrDuplicateEmail
		}
		logrus.WithError(err).Error("failed to update user")
		return 0, fmt.Errorf("could not update user: %w", err)
	}
	return rowsAffected(result)
}

// Delete はユーザーを削除します。todos は外部キーのCASCADEで削除されます。
func (r *UserRepository) Delete(id string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		logrus.WithError(err).Error("failed to delete user")
		return 0, fmt.Errorf("could not delete user: %w", err)
	}
	return rowsAffected(result)
}

func rowsAffected(result sql.Result) (int64, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not get rows affected: %w", err)
	}
	return n, nil
}
