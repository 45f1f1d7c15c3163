package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	pkgerrors "github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/errors"
)

// MockTokenRepository is a mock implementation of repository.TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) FindByTokenID(ctx context.Context, tokenID string) (*entity.Token, error) {
	args := m.Called(ctx, tokenID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Token), args.Error(1)
}

func (m *MockTokenRepository) Save(ctx context.Context, token *entity.Token) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteByTokenID(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteAllByExpiresAtBefore(ctx context.Context, t time.Time) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTokenRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Token, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Token), args.Error(1)
}

func (m *MockTokenRepository) GetLiveTokens(ctx context.Context, userID string) ([]*entity.Token, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Token), args.Error(1)
}

func (m *MockTokenRepository) Renew(ctx context.Context, tokenID string, expiresAt time.Time, maxAge time.Duration, now time.Time) (bool, error) {
	args := m.Called(ctx, tokenID, expiresAt, maxAge, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) MarkExpired(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenRepository) RevokeByTokenID(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

func (m *MockTokenRepository) RevokeAllByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSpellRepository is a mock implementation of repository.SpellRepository
type MockSpellRepository struct {
	mock.Mock
}

func (m *MockSpellRepository) FindByID(ctx context.Context, id uint) (*entity.Spell, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Spell), args.Error(1)
}

func (m *MockSpellRepository) Save(ctx context.Context, spell *entity.Spell) error {
	args := m.Called(ctx, spell)
	return args.Error(0)
}

func (m *MockSpellRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSpellRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Spell, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Spell), args.Error(1)
}

func (m *MockSpellRepository) FindByUserAndNamePrefix(ctx context.Context, userID string, prefix string) ([]*entity.Spell, error) {
	args := m.Called(ctx, userID, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Spell), args.Error(1)
}

func (m *MockSpellRepository) FindPublic(ctx context.Context, prefix string) ([]*entity.Spell, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Spell), args.Error(1)
}

func (m *MockSpellRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSpellRepository) ExistsByUserAndName(ctx context.Context, userID string, name string) (bool, error) {
	args := m.Called(ctx, userID, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockSpellRepository) DeleteAllByUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockCacheRepository is a mock implementation of repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

var errCacheMiss = pkgerrors.New("cache miss")

func (m *MockCacheRepository) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) IsNotFound(err error) bool {
	return pkgerrors.Is(err, errCacheMiss)
}

// noopCache is a cache that never hits, for tests that do not care about
// caching behavior.
type noopCache struct{}

func (noopCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	return nil
}
func (noopCache) Get(ctx context.Context, key string) (string, error) { return "", errCacheMiss }
func (noopCache) Delete(ctx context.Context, key string) error        { return nil }
func (noopCache) IsNotFound(err error) bool                           { return pkgerrors.Is(err, errCacheMiss) }

// memoryTokenStore is an in-memory TokenRepository with the same
// conditional-update semantics as the SQL implementation. It backs the
// concurrency tests, where mock call counting cannot express atomicity.
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]*entity.Token
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]*entity.Token)}
}

func (s *memoryTokenStore) FindByTokenID(ctx context.Context, tokenID string) (*entity.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[tokenID]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (s *memoryTokenStore) Save(ctx context.Context, token *entity.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *token
	s.tokens[token.TokenID] = &copied
	return nil
}

func (s *memoryTokenStore) DeleteByTokenID(ctx context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenID)
	return nil
}

func (s *memoryTokenStore) DeleteAllByUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.tokens {
		if t.UserID == userID {
			delete(s.tokens, id)
		}
	}
	return nil
}

func (s *memoryTokenStore) DeleteAllByExpiresAtBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for id, t := range s.tokens {
		if t.ExpiresAt.Before(cutoff) {
			delete(s.tokens, id)
			n++
		}
	}
	return n, nil
}

func (s *memoryTokenStore) FindByUser(ctx context.Context, userID string) ([]*entity.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Token
	for _, t := range s.tokens {
		if t.UserID == userID {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memoryTokenStore) GetLiveTokens(ctx context.Context, userID string) ([]*entity.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Token
	for _, t := range s.tokens {
		if t.UserID == userID && !t.Expired && !t.Revoked {
			copied := *t
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *memoryTokenStore) Renew(ctx context.Context, tokenID string, expiresAt time.Time, maxAge time.Duration, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[tokenID]
	if !ok || t.Revoked || t.Expired || !t.ExpiresAt.After(now) {
		return false, nil
	}
	next := expiresAt
	if maxAge > 0 {
		if ceiling := t.IssuedAt.Add(maxAge); next.After(ceiling) {
			next = ceiling
		}
	}
	if next.After(t.ExpiresAt) {
		t.ExpiresAt = next
	}
	return true, nil
}

func (s *memoryTokenStore) MarkExpired(ctx context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tokens[tokenID]; ok && !t.Revoked {
		t.Expired = true
	}
	return nil
}

func (s *memoryTokenStore) RevokeByTokenID(ctx context.Context, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tokens[tokenID]; ok {
		t.Revoked = true
	}
	return nil
}

func (s *memoryTokenStore) RevokeAllByUser(ctx context.Context, userID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, t := range s.tokens {
		if t.UserID == userID && !t.Revoked {
			t.Revoked = true
			n++
		}
	}
	return n, nil
}

func (s *memoryTokenStore) get(tokenID string) *entity.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[tokenID]
	if !ok {
		return nil
	}
	copied := *t
	return &copied
}
