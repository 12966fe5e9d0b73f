package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alt-project/phonectl/internal/domain"

	"github.com/stretchr/testify/assert"
)

// mockUserLookup implements domain.UserLookup for testing.
type mockUserLookup struct {
	records map[string]*domain.UserRecord
	err     error
	calls   int
}

func (m *mockUserLookup) LookupByPhone(_ context.Context, phone string) (*domain.UserRecord, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[phone]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return record, nil
}

// mockRecordCache implements domain.RecordCache for testing.
type mockRecordCache struct {
	entries map[string]domain.UserRecord
}

func newMockRecordCache() *mockRecordCache {
	return &mockRecordCache{entries: make(map[string]domain.UserRecord)}
}

func (m *mockRecordCache) Get(phone string) (*domain.UserRecord, bool) {
	record, ok := m.entries[phone]
	if !ok {
		return nil, false
	}
	return &record, true
}

func (m *mockRecordCache) Set(phone string, record domain.UserRecord) {
	m.entries[phone] = record
}

func TestLookupUser_Success(t *testing.T) {
	lookup := &mockUserLookup{records: map[string]*domain.UserRecord{
		"+14155552671": {UserID: "user-1", PhoneNumber: "+14155552671"},
	}}
	cache := newMockRecordCache()

	uc := NewLookupUser(lookup, cache, slog.Default())
	record, err := uc.Execute(context.Background(), "+1 415 555 2671")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", record.UserID)
	assert.Equal(t, 1, lookup.calls)
}

func TestLookupUser_InvalidPhoneSkipsNetwork(t *testing.T) {
	lookup := &mockUserLookup{}
	cache := newMockRecordCache()

	uc := NewLookupUser(lookup, cache, slog.Default())
	record, err := uc.Execute(context.Background(), "not-a-phone")

	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domain.ErrInvalidPhoneNumber))
	assert.Zero(t, lookup.calls)
}

func TestLookupUser_CacheHit(t *testing.T) {
	lookup := &mockUserLookup{}
	cache := newMockRecordCache()
	cache.Set("+14155552671", domain.UserRecord{UserID: "cached-user"})

	uc := NewLookupUser(lookup, cache, slog.Default())
	record, err := uc.Execute(context.Background(), "+14155552671")

	assert.NoError(t, err)
	assert.Equal(t, "cached-user", record.UserID)
	assert.Zero(t, lookup.calls)
}

func TestLookupUser_CachesShapedRecord(t *testing.T) {
	lookup := &mockUserLookup{records: map[string]*domain.UserRecord{
		"+14155552671": {UserID: "user-1"},
	}}
	cache := newMockRecordCache()

	uc := NewLookupUser(lookup, cache, slog.Default())
	_, err := uc.Execute(context.Background(), "+14155552671")
	assert.NoError(t, err)

	cached, found := cache.Get("+14155552671")
	assert.True(t, found)
	assert.Equal(t, "user-1", cached.UserID)
}

func TestLookupUser_NotFoundPropagates(t *testing.T) {
	lookup := &mockUserLookup{records: map[string]*domain.UserRecord{}}
	cache := newMockRecordCache()

	uc := NewLookupUser(lookup, cache, slog.Default())
	record, err := uc.Execute(context.Background(), "+14155552671")

	assert.Nil(t, record)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}
