package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	authorID := uuid.New()

	token, err := manager.Issue(authorID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, gotName, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, authorID, gotID)
	assert.Equal(t, "alice", gotName)
}

func TestVerifyExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, _, err = manager.Verify(token)
	assert.Error(t, err)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewManager("secret-one", time.Hour).Issue(uuid.New(), "alice")
	require.NoError(t, err)

	_, _, err = NewManager("secret-two", time.Hour).Verify(token)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	_, _, err := manager.Verify("not-a-token")
	assert.Error(t, err)
}
