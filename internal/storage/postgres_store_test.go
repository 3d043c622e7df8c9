package storage

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs only when MOMENTUM_TEST_POSTGRES points at a disposable database.
func TestPostgresStoreIntegration(t *testing.T) {
	connStr := os.Getenv("MOMENTUM_TEST_POSTGRES")
	if connStr == "" {
		t.Skip("MOMENTUM_TEST_POSTGRES not set")
	}

	s := NewPostgresStore(connStr)
	require.NoError(t, s.Init())
	defer s.Close()

	require.NoError(t, s.Set("plans", []byte(`[]`)))
	v, ok, err := s.Get("plans")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[]`, string(v))
	require.NoError(t, s.Delete("plans"))
}

func TestPostgresStoreNotLoaded(t *testing.T) {
	s := NewPostgresStore("postgres://localhost/momentum")
	_, _, err := s.Get("habits")
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Equal(t, "postgres://localhost/momentum", s.GetConfigPath())
}
