// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	deliverycontext "ridehail/internal/delivery/context"
	"ridehail/internal/domain/entity"
	domainerrors "ridehail/internal/domain/errors"
	"ridehail/internal/domain/repository"
	"ridehail/internal/domain/service"
	"ridehail/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	ticketRepo   repository.ResetTicketRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	TicketRepo   repository.ResetTicketRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		ticketRepo:   params.TicketRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail lower-cases the login handle so lookups and the unique
// constraint agree on one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// hashToken returns the hex-encoded SHA-256 digest of an opaque token.
// Refresh tokens and reset tickets are only ever stored in this form.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// RegisterDriver orchestrates the complete driver registration process.
func (srv *authService) RegisterDriver(ctx context.Context, input *usecase.RegisterDriverInput) (*usecase.RegisterOutput, error) {
	account := &entity.Account{
		Name:  input.Name,
		Email: normalizeEmail(input.Email),
		Role:  entity.RoleDriver,
		DriverProfile: &entity.DriverProfile{
			Licence: input.Licence,
			Phone:   input.Phone,
		},
	}

	return srv.executeRegistration(ctx, account, input.Password)
}

// RegisterPassenger orchestrates the complete passenger registration process.
func (srv *authService) RegisterPassenger(ctx context.Context, input *usecase.RegisterPassengerInput) (*usecase.RegisterOutput, error) {
	account := &entity.Account{
		Name:  input.Name,
		Email: normalizeEmail(input.Email),
		Role:  entity.RolePassenger,
		PassengerProfile: &entity.PassengerProfile{
			Phone: input.Phone,
		},
	}

	return srv.executeRegistration(ctx, account, input.Password)
}

func (srv *authService) executeRegistration(ctx context.Context, account *entity.Account, password string) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", account.Role), slog.String("email", account.Email))

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", account.Role), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during registration")
	}
	account.PasswordHash = hashedPassword

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// The unique constraint on email decides the race between concurrent
		// registrations; there is no pre-check to go stale.
		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrDuplicateEmail.WrapMessage("registration failed")
			}

			return errors.Wrap(err, "failed to create account during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.Any("role", account.Role), slog.String("email", account.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", account.Role), slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login orchestrates the login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.TokenPairOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Unknown email and wrong password must be indistinguishable.
			srv.log(ctx).Warn("Login failed", slog.String("email", email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	// bcrypt is CPU-bound; check outside any transaction.
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, refreshToken, err := srv.issueTokenPair(account)
	if err != nil {
		return nil, err
	}

	// Replace whatever refresh token the account held. Logging in again on a
	// second device revokes the first session.
	expiresAt := srv.now().Add(srv.tokenService.RefreshTokenTTL())
	if err := srv.accountRepo.SetRefreshToken(ctx, account.ID, hashToken(refreshToken), &expiresAt); err != nil {
		srv.log(ctx).Error("Failed to persist refresh token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist refresh token during login")
	}

	srv.log(ctx).Debug("Logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.TokenPairOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// Refresh rotates the presented refresh token and issues a fresh access token.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Attempting token refresh")

	oldHash := hashToken(input.RefreshToken)

	var output *usecase.TokenPairOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByRefreshTokenHash(ctx, oldHash)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidToken.WrapMessage("refresh token not recognized")
			}

			return errors.Wrap(err, "failed to resolve refresh token")
		}

		if !account.HasActiveRefreshToken(srv.now()) {
			return domainerrors.ErrInvalidToken.WrapMessage("refresh token expired")
		}

		accessToken, newRefreshToken, err := srv.issueTokenPair(account)
		if err != nil {
			return err
		}

		// Conditional replace: of N concurrent refreshes carrying the same
		// token, the store lets exactly one through.
		expiresAt := srv.now().Add(srv.tokenService.RefreshTokenTTL())
		if err := accountRepo.RotateRefreshToken(ctx, account.ID, oldHash, hashToken(newRefreshToken), expiresAt); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenStale) {
				return domainerrors.ErrInvalidToken.WrapMessage("refresh token already rotated")
			}

			return errors.Wrap(err, "failed to rotate refresh token")
		}

		output = &usecase.TokenPairOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
			Account:      account,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Token refreshed", slog.Any("accountID", output.Account.ID))

	return output, nil
}

// Logout revokes the session owning the presented refresh token. An unknown
// token means the session is already gone, which is the desired end state.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	srv.log(ctx).Debug("Attempting logout")

	account, err := srv.accountRepo.FindByRefreshTokenHash(ctx, hashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to resolve refresh token for logout")
	}

	if err := srv.accountRepo.SetRefreshToken(ctx, account.ID, "", nil); err != nil {
		srv.log(ctx).Error("Failed to clear refresh token", slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear refresh token during logout")
	}

	srv.log(ctx).Info("Logged out", slog.Any("accountID", account.ID))

	return nil
}

// ForgotPassword issues a single-use reset ticket bound to the account.
func (srv *authService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) (*usecase.ForgotPasswordOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Password reset requested", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("password reset requested for unknown email")
		}

		return nil, errors.Wrap(err, "failed to load account for password reset")
	}

	ticket, err := srv.tokenService.NewOpaqueToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset ticket")
	}

	record := &entity.PasswordResetTicket{
		AccountID:  account.ID,
		TicketHash: hashToken(ticket),
		ExpiresAt:  srv.now().Add(srv.tokenService.ResetTicketTTL()),
	}
	if err := srv.ticketRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store reset ticket")
	}

	srv.log(ctx).Debug("Reset ticket issued", slog.Any("accountID", account.ID))

	return &usecase.ForgotPasswordOutput{Ticket: ticket}, nil
}

// ResetPassword spends a reset ticket, replaces the password and revokes any
// live session so stolen refresh tokens die with the old password.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Attempting password reset")

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ticket, err := repoFactory.ResetTicketRepo().Consume(ctx, hashToken(input.Ticket), srv.now())
		if err != nil {
			if errors.Is(err, repository.ErrTicketNotFound) {
				// Expired, spent and never-issued tickets are indistinguishable.
				return domainerrors.ErrInvalidToken.WrapMessage("reset ticket not usable")
			}

			return errors.Wrap(err, "failed to consume reset ticket")
		}

		accountRepo := repoFactory.AccountRepo()
		if err := accountRepo.UpdatePasswordHash(ctx, ticket.AccountID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		if err := accountRepo.SetRefreshToken(ctx, ticket.AccountID, "", nil); err != nil {
			return errors.Wrap(err, "failed to revoke sessions after password reset")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed")

	return nil
}

func (srv *authService) issueTokenPair(account *entity.Account) (string, string, error) {
	accessToken, err := srv.tokenService.IssueAccessToken(account.ID, account.Role)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to issue access token")
	}

	refreshToken, err := srv.tokenService.NewOpaqueToken()
	if err != nil {
		return "", "", errors.Wrap(err, "failed to generate refresh token")
	}

	return accessToken, refreshToken, nil
}
