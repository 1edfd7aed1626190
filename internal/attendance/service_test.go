package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"schoolportal/internal/store"
	"schoolportal/internal/user"
)

func setup(t *testing.T) (*Service, *user.Repository) {
	t.Helper()
	db, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewService(NewRepository(db)), user.NewRepository(db)
}

func createStudent(t *testing.T, users *user.Repository, username, name string) user.Account {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	require.NoError(t, err)
	acct, err := users.Create(context.Background(), user.Account{
		Username:     username,
		PasswordHash: string(hash),
		Name:         name,
		Role:         user.RoleStudent,
	})
	require.NoError(t, err)
	return acct
}

func TestSubmitDefaultsToPresent(t *testing.T) {
	svc, users := setup(t)
	st := createStudent(t, users, "siswa1", "Ahmad Rizki")

	rec, err := svc.Submit(context.Background(), st.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, "present", rec.Status)
	assert.Equal(t, svc.Today(), rec.Date)
	assert.Nil(t, rec.Notes)
}

func TestSubmitTwiceSameDayConflicts(t *testing.T) {
	svc, users := setup(t)
	st := createStudent(t, users, "siswa1", "Ahmad Rizki")
	ctx := context.Background()

	_, err := svc.Submit(ctx, st.ID, "present", "")
	require.NoError(t, err)

	_, err = svc.Submit(ctx, st.ID, "late", "bus telat")
	assert.ErrorIs(t, err, ErrAlreadyMarked)

	records, err := svc.ListFor(ctx, st.ID, false)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "present", records[0].Status)
}

func TestSubmitRejectsUnknownStatus(t *testing.T) {
	svc, users := setup(t)
	st := createStudent(t, users, "siswa1", "Ahmad Rizki")

	_, err := svc.Submit(context.Background(), st.ID, "vacationing", "")
	assert.ErrorIs(t, err, ErrBadStatus)
}

func TestTodayStatus(t *testing.T) {
	svc, users := setup(t)
	st := createStudent(t, users, "siswa1", "Ahmad Rizki")
	ctx := context.Background()

	rec, err := svc.TodayStatus(ctx, st.ID)
	require.NoError(t, err)
	assert.Nil(t, rec)

	_, err = svc.Submit(ctx, st.ID, "late", "macet")
	require.NoError(t, err)

	rec, err = svc.TodayStatus(ctx, st.ID)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "late", rec.Status)
	require.NotNil(t, rec.Notes)
	assert.Equal(t, "macet", *rec.Notes)
}

func TestListForStaffSeesEveryone(t *testing.T) {
	svc, users := setup(t)
	a := createStudent(t, users, "siswa1", "Ahmad Rizki")
	b := createStudent(t, users, "siswa2", "Siti Aminah")
	ctx := context.Background()

	_, err := svc.Submit(ctx, a.ID, "present", "")
	require.NoError(t, err)
	_, err = svc.Submit(ctx, b.ID, "absent", "sakit")
	require.NoError(t, err)

	own, err := svc.ListFor(ctx, a.ID, false)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, a.ID, own[0].StudentID)

	all, err := svc.ListFor(ctx, a.ID, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// same day: ordered by student name
	require.NotNil(t, all[0].StudentName)
	assert.Equal(t, "Ahmad Rizki", *all[0].StudentName)
	assert.Equal(t, "Siti Aminah", *all[1].StudentName)
}
