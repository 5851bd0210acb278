package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/pkg/crypto"
	"github.com/InusahIbraheem/solid-life-web/pkg/jwt"
	"github.com/InusahIbraheem/solid-life-web/pkg/logger"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
)

const referralCodeLength = 8

// AuthUsecase handles registration and authentication business logic
type AuthUsecase struct {
	users         repositories.UserRepository
	referrals     repositories.ReferralRepository
	registrations repositories.RegistrationRepository
	uow           repositories.UnitOfWork
	jwtService    *jwt.JWTService

	registrationFee int64
	referralDepth   int
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	users repositories.UserRepository,
	referrals repositories.ReferralRepository,
	registrations repositories.RegistrationRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	registrationFee int64,
	referralDepth int,
) *AuthUsecase {
	if referralDepth <= 0 {
		referralDepth = 3
	}
	return &AuthUsecase{
		users:           users,
		referrals:       referrals,
		registrations:   registrations,
		uow:             uow,
		jwtService:      jwtService,
		registrationFee: registrationFee,
		referralDepth:   referralDepth,
	}
}

// Register creates a member account under the given sponsor, writes the
// referral edges up the sponsor chain, and records the pending joining fee.
// The sponsor edge is permanent: it is resolved and validated here, once, and
// never updated afterwards.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Check if email already exists
	_, err := u.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	// Resolve sponsor and placement upline from their referral codes
	var sponsor, upline *entities.User
	if input.SponsorCode != "" {
		sponsor, err = u.users.GetByReferralCode(ctx, strings.ToUpper(strings.TrimSpace(input.SponsorCode)))
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.BadRequest("unknown sponsor code")
			}
			return nil, err
		}
	}
	if input.UplineCode != "" {
		upline, err = u.users.GetByReferralCode(ctx, strings.ToUpper(strings.TrimSpace(input.UplineCode)))
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, domainerrors.BadRequest("unknown upline code")
			}
			return nil, err
		}
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	code, err := u.uniqueReferralCode(ctx)
	if err != nil {
		return nil, err
	}

	bottomRank := ""
	user := &entities.User{
		Email:         email,
		FirstName:     strings.TrimSpace(input.FirstName),
		LastName:      strings.TrimSpace(input.LastName),
		Phone:         strings.TrimSpace(input.Phone),
		PasswordHash:  passwordHash,
		Role:          entities.UserRoleMember,
		Status:        entities.UserStatusActive,
		ReferralCode:  code,
		Rank:          bottomRank,
		BankName:      null.NewString(input.BankName, input.BankName != ""),
		AccountNumber: null.NewString(input.AccountNumber, input.AccountNumber != ""),
		AccountName:   null.NewString(input.AccountName, input.AccountName != ""),
		City:          null.NewString(input.City, input.City != ""),
		State:         null.NewString(input.State, input.State != ""),
	}
	if sponsor != nil {
		sponsorID := sponsor.ID
		user.SponsorID = &sponsorID
	}
	if upline != nil {
		uplineID := upline.ID
		user.UplineID = &uplineID
	}

	// Account, referral edges and the joining-fee record land together.
	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.users.Create(txCtx, user); err != nil {
			return err
		}
		if sponsor != nil {
			if err := u.createReferralEdges(txCtx, user.ID, sponsor.ID); err != nil {
				return err
			}
		}
		return u.registrations.Create(txCtx, &entities.Registration{
			UserID: user.ID,
			Amount: u.registrationFee,
			Status: entities.RegistrationPending,
		})
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "member registered",
		zap.String("user_id", user.ID.String()),
		zap.String("referral_code", user.ReferralCode),
		zap.Bool("has_sponsor", sponsor != nil),
	)

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// createReferralEdges records the new member against each ancestor up to the
// configured referral depth, so level listings never need a runtime walk.
func (u *AuthUsecase) createReferralEdges(ctx context.Context, newUserID, sponsorID uuid.UUID) error {
	ancestor := &sponsorID
	for level := 1; level <= u.referralDepth && ancestor != nil; level++ {
		edge := &entities.Referral{
			ReferrerID: *ancestor,
			ReferredID: newUserID,
			Level:      level,
			Status:     entities.ReferralStatusActive,
		}
		if err := u.referrals.Create(ctx, edge); err != nil {
			return err
		}
		next, err := u.users.GetSponsorID(ctx, *ancestor)
		if err != nil {
			return err
		}
		ancestor = next
	}
	return nil
}

// uniqueReferralCode generates a code and retries on the unlikely collision.
func (u *AuthUsecase) uniqueReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code, err := crypto.GenerateReferralCode(referralCodeLength)
		if err != nil {
			return "", err
		}
		_, err = u.users.GetByReferralCode(ctx, code)
		if errors.Is(err, domainerrors.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", domainerrors.InternalError(errors.New("could not allocate referral code"))
}

// Login authenticates a member and returns a token pair
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if user.Status == entities.UserStatusSuspended {
		return nil, domainerrors.ErrAccountSuspended
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	// Re-check the account so a suspended member cannot keep refreshing.
	user, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.Status == entities.UserStatusSuspended {
		return nil, domainerrors.ErrAccountSuspended
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// ChangePassword verifies the current password and stores a new hash
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(ctx, userID, hash)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.users.GetByID(ctx, id)
}
