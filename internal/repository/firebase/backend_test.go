package firebase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agtechsummit/internal/domain"
)

// fakeDB mimics the Realtime Database: string values per path, null for missing nodes.
type fakeDB struct {
	values map[string]string
	err    error
}

type fakeNode struct {
	db   *fakeDB
	path string
}

func (n fakeNode) Get(_ context.Context, v interface{}) error {
	if n.db.err != nil {
		return n.db.err
	}
	if s, ok := n.db.values[n.path]; ok {
		*(v.(*string)) = s
	}
	return nil
}

func (n fakeNode) Set(_ context.Context, v interface{}) error {
	if n.db.err != nil {
		return n.db.err
	}
	n.db.values[n.path] = v.(string)
	return nil
}

func newFakeBackend() (*Backend, *fakeDB) {
	f := &fakeDB{values: map[string]string{}}
	return &Backend{ref: func(key string) node {
		return fakeNode{db: f, path: rootPath + "/" + key}
	}}, f
}

func TestBackend_SaveLoad(t *testing.T) {
	ctx := context.Background()
	b, f := newFakeBackend()

	_, err := b.Load(ctx, "agtech_summit_db_v2")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, b.Save(ctx, "agtech_summit_db_v2", []byte(`{"speakers":[]}`)))
	assert.Equal(t, `{"speakers":[]}`, f.values["state/agtech_summit_db_v2"])

	got, err := b.Load(ctx, "agtech_summit_db_v2")
	require.NoError(t, err)
	assert.Equal(t, `{"speakers":[]}`, string(got))
}

func TestBackend_errors(t *testing.T) {
	ctx := context.Background()
	b, f := newFakeBackend()
	f.err = errors.New("permission denied")

	_, err := b.Load(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Error(t, b.Save(ctx, "k", []byte(`{}`)))
}

func TestNew_requiresSettings(t *testing.T) {
	_, err := New(context.Background(), "", "https://example.firebaseio.com")
	assert.Error(t, err)
	_, err = New(context.Background(), "key.json", "")
	assert.Error(t, err)
}
