package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-multiuser-todo/backend/internal/models"
	"go-multiuser-todo/backend/internal/repositories"
	"go-multiuser-todo/backend/internal/services"
	"go-multiuser-todo/backend/testutil"
)

func newServices(t *testing.T) (*services.UserService, *services.TodoService) {
	db := testutil.OpenTestDB(t, testutil.TestConfig(t))
	t.Cleanup(func() { db.Close() })
	userRepo := repositories.NewUserRepository(db)
	todoRepo := repositories.NewTodoRepository(db)
	return services.NewUserService(userRepo), services.NewTodoService(todoRepo, userRepo)
}

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	users, _ := newServices(t)

	req := models.UserRegisterRequest{Name: "A", Email: "a@x.com", Password: "p"}
	created, err := users.RegisterUser(req)
	require.NoError(t, err)
	assert.NotEqual(t, "p", created.Password)

	_, err = users.RegisterUser(req)
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)

	got, err := users.AuthenticateUser(models.UserLoginRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = users.AuthenticateUser(models.UserLoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, services.ErrInvalidPassword)

	_, err = users.AuthenticateUser(models.UserLoginRequest{Email: "nobody@x.com", Password: "p"})
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestUserService_UpdateAndDelete(t *testing.T) {
	users, _ := newServices(t)

	created, err := users.RegisterUser(models.UserRegisterRequest{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	require.NoError(t, users.UpdateUser(created.ID, models.UserUpdateRequest{Name: "B", Email: "b@x.com", Password: "q"}))

	_, err = users.AuthenticateUser(models.UserLoginRequest{Email: "b@x.com", Password: "q"})
	assert.NoError(t, err)
	_, err = users.AuthenticateUser(models.UserLoginRequest{Email: "a@x.com", Password: "p"})
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)

	require.NoError(t, users.DeleteUser(created.ID))
	assert.ErrorIs(t, users.DeleteUser(created.ID), repositories.ErrUserNotFound)
	assert.ErrorIs(t, users.UpdateUser(created.ID, models.UserUpdateRequest{Name: "C", Email: "c@x.com", Password: "r"}), repositories.ErrUserNotFound)
}

func TestTodoService_UnmatchedMutationsAreNotErrors(t *testing.T) {
	users, todos := newServices(t)

	u, err := users.RegisterUser(models.UserRegisterRequest{Name: "A", Email: "a@x.com", Password: "p"})
	require.NoError(t, err)

	n, err := todos.UpdateTodo(u.ID, "does-not-exist", models.TodoRequest{TodoTitle: "t"})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = todos.DeleteTodo(u.ID, "does-not-exist")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTodoService_GetTodosForMissingUser(t *testing.T) {
	_, todos := newServices(t)

	_, err := todos.GetTodos("missing")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}
