// Package cache keeps the last-known-good server state in a local sqlite
// database so the app can show data before the first refetch completes (or
// when the collaborator is unreachable at startup). It also persists the
// session (JWT pair, username) between runs.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/mindfulapp/mindful/internal/client/cache/migrations"
	"github.com/mindfulapp/mindful/internal/client/repositories/collections"
	"github.com/mindfulapp/mindful/internal/client/repositories/metadata"
	"github.com/mindfulapp/mindful/internal/client/store"
	"github.com/mindfulapp/mindful/internal/dbx"

	_ "modernc.org/sqlite"
)

const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUsername     = "username"
)

// Cache wraps the sqlite database. It implements store.Snapshotter.
type Cache struct {
	db          *sql.DB
	collections collections.Repository
	metadata    metadata.Repository
}

// RunMigrations brings the cache schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the cache database at dsn and runs
// migrations.
func InitDatabase(ctx context.Context, dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating cache database: %w", err)
	}
	return New(db), nil
}

// New wraps an already-open database (tests).
func New(db *sql.DB) *Cache {
	return &Cache{
		db:          db,
		collections: collections.NewSQLiteRepository(db),
		metadata:    metadata.NewSQLiteRepository(db),
	}
}

func (c *Cache) Close() error { return c.db.Close() }

// Load reads every cached collection into a store.State. A completely empty
// cache yields (nil, nil).
func (c *Cache) Load(ctx context.Context) (*store.State, error) {
	st := &store.State{}

	load := func(kind string, out any) error {
		payload, err := c.collections.Get(ctx, kind)
		if err != nil {
			return err
		}
		if payload == nil {
			return nil
		}
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("decoding cached %s: %w", kind, err)
		}
		return nil
	}

	if err := load(string(store.KindEntries), &st.Entries); err != nil {
		return nil, err
	}
	if err := load(string(store.KindTasks), &st.Tasks); err != nil {
		return nil, err
	}
	if err := load(string(store.KindPosts), &st.Posts); err != nil {
		return nil, err
	}
	if err := load(string(store.KindFriends), &st.Friends); err != nil {
		return nil, err
	}
	if err := load(string(store.KindConfig), &st.Config); err != nil {
		return nil, err
	}

	if st.Entries == nil && st.Tasks == nil && st.Posts == nil && st.Friends == nil && st.Config == nil {
		return nil, nil
	}
	return st, nil
}

// Save rewrites every collection snapshot atomically: either the whole state
// lands or none of it does.
func (c *Cache) Save(ctx context.Context, st *store.State) error {
	return dbx.WithTx(ctx, c.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := collections.NewSQLiteRepository(tx)

		save := func(kind string, v any) error {
			payload, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("encoding %s: %w", kind, err)
			}
			return repo.Put(ctx, kind, payload)
		}

		if err := save(string(store.KindEntries), st.Entries); err != nil {
			return err
		}
		if err := save(string(store.KindTasks), st.Tasks); err != nil {
			return err
		}
		if err := save(string(store.KindPosts), st.Posts); err != nil {
			return err
		}
		if err := save(string(store.KindFriends), st.Friends); err != nil {
			return err
		}
		if st.Config != nil {
			return save(string(store.KindConfig), st.Config)
		}
		return repo.Delete(ctx, string(store.KindConfig))
	})
}

// Session returns the persisted username and JWT pair ("" when absent).
func (c *Cache) Session(ctx context.Context) (username, access, refresh string, err error) {
	get := func(key string) (string, error) {
		v, err := c.metadata.Get(ctx, key)
		if err != nil {
			return "", err
		}
		return string(v), nil
	}
	if username, err = get(keyUsername); err != nil {
		return "", "", "", err
	}
	if access, err = get(keyAccessToken); err != nil {
		return "", "", "", err
	}
	if refresh, err = get(keyRefreshToken); err != nil {
		return "", "", "", err
	}
	return username, access, refresh, nil
}

// SaveSession persists the username and JWT pair.
func (c *Cache) SaveSession(ctx context.Context, username, access, refresh string) error {
	if err := c.metadata.Set(ctx, keyUsername, []byte(username)); err != nil {
		return err
	}
	if err := c.metadata.Set(ctx, keyAccessToken, []byte(access)); err != nil {
		return err
	}
	return c.metadata.Set(ctx, keyRefreshToken, []byte(refresh))
}

// ClearSession drops the persisted session (logout).
func (c *Cache) ClearSession(ctx context.Context) error {
	return c.metadata.Clear(ctx)
}
