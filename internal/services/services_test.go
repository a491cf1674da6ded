package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "github.com/Shubhamagrahari9191/Todolist/internal/models"
	"github.com/Shubhamagrahari9191/Todolist/internal/otp"
	repository "github.com/Shubhamagrahari9191/Todolist/internal/repositories"
)

// memOtpStore is a simple in-memory OTP record store for testing.
type memOtpStore struct {
	mu      sync.Mutex
	records map[string]otp.Record
}

func newMemOtpStore() *memOtpStore {
	return &memOtpStore{records: make(map[string]otp.Record)}
}

func (m *memOtpStore) Put(ctx context.Context, identifier string, record otp.Record, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[identifier] = record
	return nil
}

func (m *memOtpStore) Get(ctx context.Context, identifier string) (otp.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[identifier]
	if !ok {
		return otp.Record{}, otp.ErrRecordNotFound
	}
	return record, nil
}

func (m *memOtpStore) Delete(ctx context.Context, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, identifier)
	return nil
}

func (m *memOtpStore) code(identifier string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[identifier].Code
}

func (m *memOtpStore) has(identifier string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.records[identifier]
	return ok
}

func (m *memOtpStore) expire(identifier string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record := m.records[identifier]
	record.ExpiresAt = time.Now().Add(-time.Second)
	m.records[identifier] = record
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func setupAuthService(t *testing.T) (*AuthService, *repository.UserRepository, *memOtpStore) {
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	store := newMemOtpStore()
	issuer := otp.NewIssuer(store, nil, 5*time.Minute)
	return NewAuthService(users, issuer), users, store
}

func setupTaskService(t *testing.T) *TaskService {
	db := setupTestDB(t)
	return NewTaskService(repository.NewTaskRepository(db))
}
