package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-multiuser-todo/backend/internal/models"
	"go-multiuser-todo/backend/internal/repositories"
	"go-multiuser-todo/backend/testutil"
)

func TestTodoRepository_OwnershipScoping(t *testing.T) {
	db := testutil.OpenTestDB(t, testutil.TestConfig(t))
	defer db.Close()

	userRepo := repositories.NewUserRepository(db)
	todoRepo := repositories.NewTodoRepository(db)

	alice := testutil.CreateTestUser(t, userRepo, "alice", "alice@example.com", "pw")
	bob := testutil.CreateTestUser(t, userRepo, "bob", "bob@example.com", "pw")

	todo, err := todoRepo.Create(&models.Todo{TodoTitle: "buy milk", TodoStatus: "pending", UserID: alice.ID})
	require.NoError(t, err)
	require.NotEmpty(t, todo.TodoID)

	empty, err := todoRepo.FindByUserID(bob.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	// 他人のTodoは更新も削除もできない
	n, err := todoRepo.Update(bob.ID, todo.TodoID, "hacked", "done")
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = todoRepo.Delete(bob.ID, todo.TodoID)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = todoRepo.Update(alice.ID, todo.TodoID, "buy oat milk", "done")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	todos, err := todoRepo.FindByUserID(alice.ID)
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, models.Todo{TodoID: todo.TodoID, TodoTitle: "buy oat milk", TodoStatus: "done", UserID: alice.ID}, *todos[0])

	n, err = todoRepo.Delete(alice.ID, todo.TodoID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTodoRepository_CreateRequiresExistingUser(t *testing.T) {
	db := testutil.OpenTestDB(t, testutil.TestConfig(t))
	defer db.Close()

	_, err := repositories.NewTodoRepository(db).Create(&models.Todo{TodoTitle: "orphan", UserID: "nobody"})
	assert.Error(t, err)
}

func TestTodoRepository_CascadeOnUserDelete(t *testing.T) {
	db := testutil.OpenTestDB(t, testutil.TestConfig(t))
	defer db.Close()

	userRepo := repositories.NewUserRepository(db)
	todoRepo := repositories.NewTodoRepository(db)
	alice := testutil.CreateTestUser(t, userRepo, "alice", "alice@example.com", "pw")

	for _, title := range []string{"one", "two"} {
		_, err := todoRepo.Create(&models.Todo{TodoTitle: title, UserID: alice.ID})
		require.NoError(t, err)
	}

	_, err := userRepo.Delete(alice.ID)
	require.NoError(t, err)

	todos, err := todoRepo.FindByUserID(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, todos)
}
