package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"go-multiuser-todo/backend/internal/models"
	"go-multiuser-todo/backend/internal/repositories"
)

var ErrInvalidPassword = errors.New("invalid password")

// UserService はユーザー関連のビジネスロジックを扱います。
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService は新しいUserServiceを作成します。
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser はメールアドレスが未登録の場合にユーザーを登録します。
// 確認と挿入の間に同じメールが登録された場合も、UNIQUE制約により ErrDuplicateEmail になります。
func (s *UserService) RegisterUser(req models.UserRegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existing != nil {
		return nil, repositories.ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hashedPassword, err := repositories.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.userRepo.Create(&models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	})
}

// AuthenticateUser はメールアドレスとパスワードを検証します。
// ユーザーが存在しなければ ErrUserNotFound、パスワード不一致なら ErrInvalidPassword を返します。
func (s *UserService) AuthenticateUser(req models.UserLoginRequest) (*models.User, error) {
	foundUser, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := repositories.VerifyPassword(foundUser.Password, req.Password); err != nil {
		return nil, ErrInvalidPassword
	}
	return foundUser, nil
}

// GetUser はIDでユーザーを取得します。
func (s *UserService) GetUser(id string) (*models.User, error) {
	return s.userRepo.FindByID(id)
}

// UpdateUser は name/email/password を上書きします。
func (s *UserService) UpdateUser(id string, req models.UserUpdateRequest) error {
	hashedPassword, err := repositories.HashPassword(req.Password)
	if err != nil {
		return err
	}
	n, err := s.userRepo.Update(&models.User{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("update user %s: %w", id, repositories.ErrUserNotFound)
	}
	return nil
}

// DeleteUser はユーザーと、そのユーザーのTodoを削除します。
func (s *UserService) DeleteUser(id string) error {
	n, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("delete user %s: %w", id, repositories.ErrUserNotFound)
	}
	logrus.WithField("user_id", id).Info("user deleted")
	return nil
}
