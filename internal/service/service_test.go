package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"tasktrack/internal/repository"
	"tasktrack/internal/repository/sqlite"
)

type testRepos struct {
	users repository.UserRepository
	tasks repository.TaskRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	users := sqlite.NewUserRepository(db)
	tasks := sqlite.NewTaskRepository(db)
	require.NoError(t, users.Init(context.Background()))
	require.NoError(t, tasks.Init(context.Background()))

	return testRepos{users: users, tasks: tasks}
}
