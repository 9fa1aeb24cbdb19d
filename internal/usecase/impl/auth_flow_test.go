package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ridehail/config"
	"ridehail/internal/domain/entity"
	domainerrors "ridehail/internal/domain/errors"
	"ridehail/internal/domain/repository"
	"ridehail/internal/infra/auth"
	"ridehail/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryAccountStore is a map-backed AccountRepository honoring the same
// contract as the postgres implementation: unique emails, atomic refresh-token
// replacement and conditional rotation.
type memoryAccountStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]*entity.Account
}

func newMemoryAccountStore() *memoryAccountStore {
	return &memoryAccountStore{accounts: make(map[uuid.UUID]*entity.Account)}
}

func (s *memoryAccountStore) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc, ok := s.accounts[id]; ok {
		cp := *acc

		return &cp, nil
	}

	return nil, repository.ErrAccountNotFound
}

func (s *memoryAccountStore) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Email == email {
			cp := *acc

			return &cp, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *memoryAccountStore) FindByRefreshTokenHash(_ context.Context, tokenHash string) (*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.RefreshTokenHash != "" && acc.RefreshTokenHash == tokenHash {
			cp := *acc

			return &cp, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (s *memoryAccountStore) Create(_ context.Context, account *entity.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.Email == account.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	cp := *account
	s.accounts[account.ID] = &cp

	return nil
}

func (s *memoryAccountStore) SetRefreshToken(_ context.Context, accountID uuid.UUID, tokenHash string, expiresAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	acc.RefreshTokenHash = tokenHash
	acc.RefreshTokenExpiresAt = expiresAt

	return nil
}

func (s *memoryAccountStore) RotateRefreshToken(_ context.Context, accountID uuid.UUID, oldHash, newHash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok || acc.RefreshTokenHash != oldHash {
		return repository.ErrRefreshTokenStale
	}
	acc.RefreshTokenHash = newHash
	acc.RefreshTokenExpiresAt = &expiresAt

	return nil
}

func (s *memoryAccountStore) UpdatePasswordHash(_ context.Context, accountID uuid.UUID, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[accountID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	acc.PasswordHash = passwordHash

	return nil
}

func (s *memoryAccountStore) ListByRole(_ context.Context, role entity.Role) ([]*entity.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Account
	for _, acc := range s.accounts {
		if acc.Role == role {
			cp := *acc
			out = append(out, &cp)
		}
	}

	return out, nil
}

// memoryTicketStore is a map-backed ResetTicketRepository with the same
// single-use claim semantics as the postgres implementation.
type memoryTicketStore struct {
	mu      sync.Mutex
	tickets map[string]*entity.PasswordResetTicket
}

func newMemoryTicketStore() *memoryTicketStore {
	return &memoryTicketStore{tickets: make(map[string]*entity.PasswordResetTicket)}
}

func (s *memoryTicketStore) Create(_ context.Context, ticket *entity.PasswordResetTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *ticket
	s.tickets[ticket.TicketHash] = &cp

	return nil
}

func (s *memoryTicketStore) Consume(_ context.Context, ticketHash string, now time.Time) (*entity.PasswordResetTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ticket, ok := s.tickets[ticketHash]
	if !ok || !ticket.Usable(now) {
		return nil, repository.ErrTicketNotFound
	}
	ticket.ConsumedAt = &now
	cp := *ticket

	return &cp, nil
}

func (s *memoryTicketStore) DeleteExpired(_ context.Context, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for hash, ticket := range s.tickets {
		if !ticket.ExpiresAt.After(now) {
			delete(s.tickets, hash)
		}
	}

	return nil
}

type memoryRepositoryFactory struct {
	accounts *memoryAccountStore
	tickets  *memoryTicketStore
}

func (f *memoryRepositoryFactory) AccountRepo() repository.AccountRepository { return f.accounts }

func (f *memoryRepositoryFactory) ResetTicketRepo() repository.ResetTicketRepository {
	return f.tickets
}

func (f *memoryRepositoryFactory) VehicleRepo() repository.VehicleRepository { return nil }

func (f *memoryRepositoryFactory) ModelRepo() repository.VehicleModelRepository { return nil }

func (f *memoryRepositoryFactory) TripRepo() repository.TripRepository { return nil }

type memoryTransactionManager struct {
	factory *memoryRepositoryFactory
}

func (m *memoryTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}

func newFlowTestAuthService(t *testing.T) usecase.AuthUsecase {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth = config.AuthConfig{
		Secret:          "flow-test-signing-secret-of-adequate-length",
		Issuer:          "ridehail-test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		ResetTicketTTL:  15 * time.Minute,
		BcryptCost:      bcrypt.MinCost,
	}

	tokenSvc, err := auth.NewTokenService(cfg)
	require.NoError(t, err)

	factory := &memoryRepositoryFactory{
		accounts: newMemoryAccountStore(),
		tickets:  newMemoryTicketStore(),
	}

	return NewAuthService(AuthServiceParams{
		TxManager:    &memoryTransactionManager{factory: factory},
		AccountRepo:  factory.accounts,
		TicketRepo:   factory.tickets,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenSvc,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

// TestAuthFlow walks the whole session lifecycle against real crypto and an
// in-memory store: register, login with a bad then a good password, rotate,
// replay the spent token, log out.
func TestAuthFlow(t *testing.T) {
	svc := newFlowTestAuthService(t)
	ctx := context.Background()

	registered, err := svc.RegisterDriver(ctx, &usecase.RegisterDriverInput{
		Name:     "Ada",
		Email:    "a@x.com",
		Password: "secret123",
		Licence:  "DL-100",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, registered.Account.ID)

	_, err = svc.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "wrong"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	pair, err := svc.Login(ctx, &usecase.LoginInput{Email: "a@x.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	rotated, err := svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.RefreshToken)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The spent token is gone; only the rotated one opens the next exchange.
	_, err = svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: pair.RefreshToken})
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	require.NoError(t, svc.Logout(ctx, &usecase.LogoutInput{RefreshToken: rotated.RefreshToken}))
	_, err = svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: rotated.RefreshToken})
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

// TestAuthFlow_PasswordReset exercises the reset handshake end to end: issue a
// ticket, spend it, verify the old password and the spent ticket are dead.
func TestAuthFlow_PasswordReset(t *testing.T) {
	svc := newFlowTestAuthService(t)
	ctx := context.Background()

	_, err := svc.RegisterPassenger(ctx, &usecase.RegisterPassengerInput{
		Name:     "Grace",
		Email:    "g@x.com",
		Password: "original-pw",
	})
	require.NoError(t, err)

	issued, err := svc.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "g@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, issued.Ticket)

	require.NoError(t, svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Ticket:      issued.Ticket,
		NewPassword: "rotated-pw",
	}))

	_, err = svc.Login(ctx, &usecase.LoginInput{Email: "g@x.com", Password: "original-pw"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &usecase.LoginInput{Email: "g@x.com", Password: "rotated-pw"})
	require.NoError(t, err)

	// Single use: replaying the ticket fails.
	err = svc.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Ticket:      issued.Ticket,
		NewPassword: "another-pw",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

// TestAuthFlow_ConcurrentRefresh races many rotations of the same token;
// exactly one may win.
func TestAuthFlow_ConcurrentRefresh(t *testing.T) {
	svc := newFlowTestAuthService(t)
	ctx := context.Background()

	_, err := svc.RegisterDriver(ctx, &usecase.RegisterDriverInput{
		Name:     "Ada",
		Email:    "race@x.com",
		Password: "secret123",
		Licence:  "DL-200",
	})
	require.NoError(t, err)

	pair, err := svc.Login(ctx, &usecase.LoginInput{Email: "race@x.com", Password: "secret123"})
	require.NoError(t, err)

	const racers = 8
	var wg sync.WaitGroup
	results := make([]error, racers)
	wg.Add(racers)
	for i := range racers {
		go func() {
			defer wg.Done()
			_, results[i] = svc.Refresh(ctx, &usecase.RefreshInput{RefreshToken: pair.RefreshToken})
		}()
	}
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
		}
	}
	assert.Equal(t, 1, winners)
}
