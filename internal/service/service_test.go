package service

import (
	"sync"
	"testing"

	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/ws"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite with foreign keys enforced, supaya
// cascade delete kategori→menu benar-benar teruji.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Satu koneksi saja: tiap koneksi :memory: adalah database terpisah
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Menu{},
		&model.DiningTable{},
		&model.ActivityLog{},
	))
	return db
}

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

type dispatchCall struct {
	action string
	entity string
	names  []string
}

// fakeDispatcher records enqueued notifications instead of talking to redis.
type fakeDispatcher struct {
	mu    sync.Mutex
	calls []dispatchCall
	err   error
}

func (f *fakeDispatcher) EntityMutation(action, entity string, names ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, dispatchCall{action: action, entity: entity, names: names})
	return f.err
}

func (f *fakeDispatcher) Close() error { return nil }

func (f *fakeDispatcher) lastCall(t *testing.T) dispatchCall {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.calls, "expected at least one dispatched notification")
	return f.calls[len(f.calls)-1]
}

func (f *fakeDispatcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
