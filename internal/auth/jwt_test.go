package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolportal/internal/user"
)

const (
	testKey    = "test-signing-key"
	testIssuer = "schoolportal-test"
)

func testAccount() user.Account {
	return user.Account{
		ID:       7,
		Username: "siswa1",
		Name:     "Ahmad Rizki",
		Role:     user.RoleStudent,
	}
}

func TestIssueParseRoundtrip(t *testing.T) {
	token, exp, err := Issue(testAccount(), testIssuer, testKey, 24*time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), exp, time.Minute)

	claims, err := Parse(token, testKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "siswa1", claims.Username)
	assert.Equal(t, user.RoleStudent, claims.Role)
	assert.Equal(t, "Ahmad Rizki", claims.Name)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestParseRejectsExpired(t *testing.T) {
	token, _, err := Issue(testAccount(), testIssuer, testKey, -time.Minute)
	require.NoError(t, err)

	_, err = Parse(token, testKey, testIssuer)
	assert.Error(t, err)
}

func TestParseRejectsWrongKey(t *testing.T) {
	token, _, err := Issue(testAccount(), testIssuer, testKey, time.Hour)
	require.NoError(t, err)

	_, err = Parse(token, "other-key", testIssuer)
	assert.Error(t, err)
}

func TestParseRejectsIssuerMismatch(t *testing.T) {
	token, _, err := Issue(testAccount(), "someone-else", testKey, time.Hour)
	require.NoError(t, err)

	_, err = Parse(token, testKey, testIssuer)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("not-a-token", testKey, testIssuer)
	assert.Error(t, err)
}
