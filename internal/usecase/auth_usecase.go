// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ridehail/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterDriverInput defines the data required to register a new driver.
type RegisterDriverInput struct {
	Name     string
	Email    string
	Password string
	Licence  string
	Phone    string
}

// RegisterPassengerInput defines the data required to register a new passenger.
type RegisterPassengerInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshInput carries the opaque refresh token presented for rotation.
type RefreshInput struct {
	RefreshToken string
}

// LogoutInput carries the refresh token whose session should end.
type LogoutInput struct {
	RefreshToken string
}

// ForgotPasswordInput starts the password-reset handshake.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput completes the password-reset handshake.
type ResetPasswordInput struct {
	Ticket      string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// TokenPairOutput returns the credentials issued by login and refresh.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// ForgotPasswordOutput returns the raw reset ticket. In production this value
// is handed to the mail pipeline, never the HTTP response.
type ForgotPasswordOutput struct {
	Ticket string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterDriver(ctx context.Context, input *RegisterDriverInput) (*RegisterOutput, error)
	RegisterPassenger(ctx context.Context, input *RegisterPassengerInput) (*RegisterOutput, error)

	// Login verifies the credential and opens a session, replacing whatever
	// refresh token the account held before.
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)

	// Refresh rotates the presented refresh token and issues a new access
	// token. The old refresh token is dead afterwards either way.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)

	// Logout revokes the session owning the presented refresh token.
	Logout(ctx context.Context, input *LogoutInput) error

	// ForgotPassword issues a single-use reset ticket for the account.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) (*ForgotPasswordOutput, error)

	// ResetPassword spends a reset ticket, replaces the password and revokes
	// any live session.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
