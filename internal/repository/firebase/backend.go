// Package firebase stores state snapshots in the Firebase Realtime Database.
package firebase

import (
	"context"
	"fmt"
	"path"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"

	"agtechsummit/internal/domain"
)

// rootPath is the database node snapshots are written under.
const rootPath = "state"

// node is the subset of *db.Ref the backend needs.
type node interface {
	Get(ctx context.Context, v interface{}) error
	Set(ctx context.Context, v interface{}) error
}

// Backend writes each snapshot as a JSON string at state/<key>. Storing the encoded text
// rather than a tree keeps empty arrays and key order intact.
type Backend struct {
	ref func(key string) node
}

var _ domain.StateBackend = (*Backend)(nil)

// New initialises a Firebase app from a service account key file and connects to databaseURL.
func New(ctx context.Context, serviceAccountKeyPath, databaseURL string) (*Backend, error) {
	if serviceAccountKeyPath == "" {
		return nil, fmt.Errorf("firebase service account key path required")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("firebase database url required")
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, option.WithCredentialsFile(serviceAccountKeyPath))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("get database client: %w", err)
	}
	return NewWithClient(client), nil
}

// NewWithClient wraps an existing database client.
func NewWithClient(client *db.Client) *Backend {
	return &Backend{ref: func(key string) node {
		return client.NewRef(rootPath).Child(path.Base(key))
	}}
}

func (b *Backend) Load(ctx context.Context, key string) ([]byte, error) {
	var payload string
	if err := b.ref(key).Get(ctx, &payload); err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", rootPath, key, err)
	}
	// A missing node reads as JSON null, which leaves payload empty.
	if payload == "" {
		return nil, fmt.Errorf("node %s/%s: %w", rootPath, key, domain.ErrNotFound)
	}
	return []byte(payload), nil
}

func (b *Backend) Save(ctx context.Context, key string, payload []byte) error {
	if err := b.ref(key).Set(ctx, string(payload)); err != nil {
		return fmt.Errorf("write %s/%s: %w", rootPath, key, err)
	}
	return nil
}
