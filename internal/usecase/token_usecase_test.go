package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/constants"
	pkgerrors "github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/errors"
)

func newTestTokenUseCase(store *memoryTokenStore, userRepo *MockUserRepository, cfg TokenConfig) *TokenUseCase {
	uc := NewTokenUseCase(zap.NewNop(), cfg, store, userRepo, noopCache{})
	return uc.(*TokenUseCase)
}

func TestIssue_CreatesLiveToken(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: time.Hour})

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, tokenID, 43) // 32 bytes, raw URL base64

	stored := store.get(tokenID)
	require.NotNil(t, stored)
	assert.Equal(t, "user-1", stored.UserID)
	assert.True(t, stored.IsLive(time.Now()))
	assert.WithinDuration(t, time.Now().Add(time.Hour), stored.ExpiresAt, 2*time.Second)
}

func TestIssue_TokensAreUnique(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: time.Hour})

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tokenID, err := uc.Issue(context.Background(), "user-1")
		require.NoError(t, err)
		assert.False(t, seen[tokenID])
		seen[tokenID] = true
	}
}

func TestIssue_EnforcesTokenCap(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{
		SessionTTL:       time.Hour,
		MaxTokensPerUser: 2,
	})

	first, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	second, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	third, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	// The oldest token was revoked to make room for the third.
	assert.True(t, store.get(first).Revoked)
	assert.False(t, store.get(second).Revoked)
	assert.False(t, store.get(third).Revoked)
}

func TestValidateAndRenew_AcceptsFreshToken(t *testing.T) {
	store := newMemoryTokenStore()
	userRepo := new(MockUserRepository)
	uc := newTestTokenUseCase(store, userRepo, TokenConfig{SessionTTL: time.Hour})

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	accepted, err := uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.True(t, accepted)

	// The accepted token resolves to its issuing user.
	userRepo.On("FindByID", mock.Anything, "user-1").
		Return(&entity.User{ID: "user-1", Username: "merlin"}, nil)

	user, err := uc.GetUser(context.Background(), tokenID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.ID)
}

func TestValidateAndRenew_RejectsUnknownToken(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: time.Hour})

	accepted, err := uc.ValidateAndRenew(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.False(t, accepted)

	accepted, err = uc.ValidateAndRenew(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestTokenLifecycle_IssueValidateRevoke(t *testing.T) {
	store := newMemoryTokenStore()
	userRepo := new(MockUserRepository)
	uc := newTestTokenUseCase(store, userRepo, TokenConfig{SessionTTL: time.Hour})
	userRepo.On("FindByID", mock.Anything, "user-1").
		Return(&entity.User{ID: "user-1", Username: "merlin"}, nil)

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	accepted, err := uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.True(t, accepted)

	user, err := uc.GetUser(context.Background(), tokenID)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	require.NoError(t, uc.Revoke(context.Background(), tokenID))

	accepted, err = uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.True(t, store.get(tokenID).Revoked)
}

func TestValidateAndRenew_RejectsRevokedTokenForever(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: time.Hour})

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	require.NoError(t, uc.Revoke(context.Background(), tokenID))

	for i := 0; i < 3; i++ {
		accepted, err := uc.ValidateAndRenew(context.Background(), tokenID)
		require.NoError(t, err)
		assert.False(t, accepted)
	}
}

func TestValidateAndRenew_MarksLapsedTokenExpired(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: 30 * time.Millisecond})

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	accepted, err := uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.False(t, accepted)
	assert.True(t, store.get(tokenID).Expired)

	// A second validation of the already-flagged token rejects the same way.
	accepted, err = uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestValidateAndRenew_SlidingWindow(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: 300 * time.Millisecond})

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	// Each timely validation pushes the window forward.
	time.Sleep(200 * time.Millisecond)
	accepted, err := uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.True(t, accepted)

	time.Sleep(200 * time.Millisecond)
	accepted, err = uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.True(t, accepted)

	// Without further activity the window finally closes.
	time.Sleep(400 * time.Millisecond)
	accepted, err = uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestValidateAndRenew_ExpiryNeverMovesBackwards(t *testing.T) {
	store := newMemoryTokenStore()
	// The max-age ceiling lies before the expiry the issue already set,
	// so a renewal computing an earlier candidate must leave the stored
	// expiry untouched.
	uc := newTestTokenUseCase(store, nil, TokenConfig{
		SessionTTL:    time.Hour,
		MaxSessionAge: time.Minute,
	})

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	before := store.get(tokenID).ExpiresAt

	accepted, err := uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.True(t, accepted)
	assert.Equal(t, before, store.get(tokenID).ExpiresAt)
}

func TestValidateAndRenew_HonorsMaxSessionAge(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{
		SessionTTL:    50 * time.Millisecond,
		MaxSessionAge: 80 * time.Millisecond,
	})

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)
	issuedAt := store.get(tokenID).IssuedAt

	accepted, err := uc.ValidateAndRenew(context.Background(), tokenID)
	require.NoError(t, err)
	assert.True(t, accepted)

	ceiling := issuedAt.Add(80 * time.Millisecond)
	assert.False(t, store.get(tokenID).ExpiresAt.After(ceiling))
}

func TestValidateAndRenew_StoreFailureIsNotARejection(t *testing.T) {
	tokenRepo := new(MockTokenRepository)
	tokenRepo.On("Renew", mock.Anything, "tok", mock.Anything, mock.Anything, mock.Anything).
		Return(false, pkgerrors.New("connection refused"))

	uc := NewTokenUseCase(zap.NewNop(), TokenConfig{SessionTTL: time.Hour}, tokenRepo, nil, noopCache{})

	accepted, err := uc.ValidateAndRenew(context.Background(), "tok")
	assert.False(t, accepted)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.ErrInternal, pkgerrors.CodeOf(err))
}

func TestValidateAndRenew_TimeoutMapsToTimeoutCode(t *testing.T) {
	tokenRepo := new(MockTokenRepository)
	tokenRepo.On("Renew", mock.Anything, "tok", mock.Anything, mock.Anything, mock.Anything).
		Return(false, context.DeadlineExceeded)

	uc := NewTokenUseCase(zap.NewNop(), TokenConfig{SessionTTL: time.Hour}, tokenRepo, nil, noopCache{})

	_, err := uc.ValidateAndRenew(context.Background(), "tok")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.ErrTimeout, pkgerrors.CodeOf(err))
}

func TestValidateAndRenew_Concurrent(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: time.Hour})

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	verdicts := make([]bool, workers)
	errs := make([]error, workers)

	start := time.Now()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			verdicts[i], errs[i] = uc.ValidateAndRenew(context.Background(), tokenID)
		}(i)
	}
	wg.Wait()
	end := time.Now()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.True(t, verdicts[i])
	}

	// The surviving expiry equals what a single validation in the same
	// window would have produced.
	final := store.get(tokenID)
	assert.True(t, final.IsLive(time.Now()))
	assert.False(t, final.ExpiresAt.Before(start.Add(time.Hour)))
	assert.False(t, final.ExpiresAt.After(end.Add(time.Hour)))
}

func TestRevoke_IsIdempotent(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: time.Hour})

	tokenID, err := uc.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	require.NoError(t, uc.Revoke(context.Background(), tokenID))
	require.NoError(t, uc.Revoke(context.Background(), tokenID))
	require.NoError(t, uc.Revoke(context.Background(), "absent-token"))
	require.NoError(t, uc.Revoke(context.Background(), ""))

	assert.True(t, store.get(tokenID).Revoked)
}

func TestRevokeAllForUser(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: time.Hour})

	a, _ := uc.Issue(context.Background(), "user-1")
	b, _ := uc.Issue(context.Background(), "user-1")
	other, _ := uc.Issue(context.Background(), "user-2")

	require.NoError(t, uc.RevokeAllForUser(context.Background(), "user-1"))

	assert.True(t, store.get(a).Revoked)
	assert.True(t, store.get(b).Revoked)
	assert.False(t, store.get(other).Revoked)
}

func TestPurgeExpired_RemovesOnlyLapsedRows(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: time.Hour})

	now := time.Now()
	lapsed := entity.NewToken("lapsed", "user-1", now.Add(-2*time.Hour), now.Add(-time.Hour))
	revokedLive := entity.NewToken("revoked-live", "user-1", now, now.Add(time.Hour))
	revokedLive.Revoked = true
	live := entity.NewToken("live", "user-1", now, now.Add(time.Hour))

	require.NoError(t, store.Save(context.Background(), lapsed))
	require.NoError(t, store.Save(context.Background(), revokedLive))
	require.NoError(t, store.Save(context.Background(), live))

	purged, err := uc.PurgeExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), purged)

	// The sweep keys on expiry alone: a revoked token whose expiry has
	// not passed stays until it lapses.
	assert.Nil(t, store.get("lapsed"))
	assert.NotNil(t, store.get("revoked-live"))
	assert.NotNil(t, store.get("live"))
}

func TestRunPurgeLoop_StopsOnCancel(t *testing.T) {
	store := newMemoryTokenStore()
	uc := newTestTokenUseCase(store, nil, TokenConfig{SessionTTL: time.Hour})

	now := time.Now()
	lapsed := entity.NewToken("lapsed", "user-1", now.Add(-2*time.Hour), now.Add(-time.Hour))
	require.NoError(t, store.Save(context.Background(), lapsed))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		uc.RunPurgeLoop(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("purge loop did not stop on cancel")
	}

	assert.Nil(t, store.get("lapsed"))
}

func TestGetUser_CachesTokenMapping(t *testing.T) {
	tokenRepo := new(MockTokenRepository)
	userRepo := new(MockUserRepository)
	cache := new(MockCacheRepository)

	uc := NewTokenUseCase(zap.NewNop(), TokenConfig{SessionTTL: time.Hour}, tokenRepo, userRepo, cache)

	key := constants.SessionTokenPrefix + "tok"
	token := entity.NewToken("tok", "user-1", time.Now(), time.Now().Add(time.Hour))
	user := &entity.User{ID: "user-1", Username: "merlin"}

	// First resolution misses the cache, hits the store and caches the
	// mapping.
	cache.On("Get", mock.Anything, key).Return("", errCacheMiss).Once()
	tokenRepo.On("FindByTokenID", mock.Anything, "tok").Return(token, nil).Once()
	cache.On("Set", mock.Anything, key, "user-1", time.Hour).Return(nil).Once()
	userRepo.On("FindByID", mock.Anything, "user-1").Return(user, nil)

	got, err := uc.GetUser(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)

	// Second resolution is served from the cache.
	cache.On("Get", mock.Anything, key).Return("user-1", nil).Once()

	got, err = uc.GetUser(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)

	tokenRepo.AssertNumberOfCalls(t, "FindByTokenID", 1)
	cache.AssertExpectations(t)
}

func TestGetUser_UnknownTokenReturnsNil(t *testing.T) {
	tokenRepo := new(MockTokenRepository)
	tokenRepo.On("FindByTokenID", mock.Anything, "tok").Return(nil, nil)

	uc := NewTokenUseCase(zap.NewNop(), TokenConfig{SessionTTL: time.Hour}, tokenRepo, nil, noopCache{})

	user, err := uc.GetUser(context.Background(), "tok")
	require.NoError(t, err)
	assert.Nil(t, user)
}
