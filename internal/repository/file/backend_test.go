package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/domain"
)

func TestBackend_SaveLoad(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "state")
	b, err := New(dir)
	require.NoError(t, err)

	_, err = b.Load(ctx, "agtech_summit_db_v2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, b.Save(ctx, "agtech_summit_db_v2", []byte(`{"a":1}`)))
	require.NoError(t, b.Save(ctx, "agtech_summit_db_v2", []byte(`{"a":2}`)))

	got, err := b.Load(ctx, "agtech_summit_db_v2")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files are cleaned up")
	assert.Equal(t, "agtech_summit_db_v2.json", entries[0].Name())
}

func TestBackend_keyCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	b, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, b.Save(context.Background(), "../outside", []byte(`{}`)))
	_, err = os.Stat(filepath.Join(dir, "outside.json"))
	assert.NoError(t, err)
}
