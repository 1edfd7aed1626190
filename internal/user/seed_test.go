package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolportal/internal/store"
)

func TestSeedIsIdempotent(t *testing.T) {
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewRepository(db)
	ctx := context.Background()
	accounts := DefaultAccounts()

	created, err := repo.Seed(ctx, accounts)
	require.NoError(t, err)
	assert.Equal(t, len(accounts), created)

	created, err = repo.Seed(ctx, accounts)
	require.NoError(t, err)
	assert.Zero(t, created)

	students, err := repo.ListStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, students, 5)

	admin, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.True(t, admin.CheckPassword("admin123"))
	assert.False(t, admin.CheckPassword("wrong"))
}

func TestGetByUsernameUnknown(t *testing.T) {
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	acct, err := NewRepository(db).GetByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, acct)
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleTeacher.Staff())
	assert.True(t, RoleAdmin.Staff())
	assert.False(t, RoleStudent.Staff())
	assert.True(t, RoleStudent.Valid())
	assert.False(t, Role("janitor").Valid())
}
