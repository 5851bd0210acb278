package usecases

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/pkg/logger"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
)

// AdminUsecase covers the back-office surface: member administration, joining
// fee verification, compensation settings and service centers. Settings edits
// go through the same plan validation the engine applies at run time, so a
// table that could over-pay is rejected before it is ever stored.
type AdminUsecase struct {
	users         repositories.UserRepository
	orders        repositories.OrderRepository
	registrations repositories.RegistrationRepository
	plans         repositories.PlanRepository
	centers       repositories.DSCRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	users repositories.UserRepository,
	orders repositories.OrderRepository,
	registrations repositories.RegistrationRepository,
	plans repositories.PlanRepository,
	centers repositories.DSCRepository,
) *AdminUsecase {
	return &AdminUsecase{
		users:         users,
		orders:        orders,
		registrations: registrations,
		plans:         plans,
		centers:       centers,
	}
}

// ListUsers returns all member accounts, paginated
func (u *AdminUsecase) ListUsers(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	return u.users.List(ctx, limit, offset)
}

// GetUser returns one member account
func (u *AdminUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.users.GetByID(ctx, id)
}

// SetUserStatus suspends or reactivates a member. Suspension blocks login,
// ordering and withdrawals but leaves the account's ledger and network
// position intact.
func (u *AdminUsecase) SetUserStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	switch status {
	case entities.UserStatusActive, entities.UserStatusSuspended:
	default:
		return domainerrors.BadRequest("invalid user status")
	}
	if err := u.users.SetStatus(ctx, id, status); err != nil {
		return err
	}
	logger.Info(ctx, "user status changed",
		zap.String("user_id", id.String()),
		zap.String("status", string(status)),
	)
	return nil
}

// SetKYCVerified flags a member's identity as verified
func (u *AdminUsecase) SetKYCVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return u.users.SetKYCVerified(ctx, id, verified)
}

// ListRegistrations returns joining-fee records, optionally filtered by status
func (u *AdminUsecase) ListRegistrations(ctx context.Context, status string, limit, offset int) ([]*entities.Registration, int64, error) {
	return u.registrations.List(ctx, status, limit, offset)
}

// VerifyRegistration approves a joining-fee payment and marks the member
// KYC-verified in the same step.
func (u *AdminUsecase) VerifyRegistration(ctx context.Context, adminID, regID uuid.UUID) error {
	reg, err := u.registrations.GetByID(ctx, regID)
	if err != nil {
		return err
	}
	if reg.Status != entities.RegistrationPending {
		return domainerrors.BadRequest("registration is not pending")
	}
	if err := u.registrations.MarkVerified(ctx, regID, adminID); err != nil {
		return err
	}
	return u.users.SetKYCVerified(ctx, reg.UserID, true)
}

// RejectRegistration declines a joining-fee payment proof
func (u *AdminUsecase) RejectRegistration(ctx context.Context, adminID, regID uuid.UUID) error {
	reg, err := u.registrations.GetByID(ctx, regID)
	if err != nil {
		return err
	}
	if reg.Status != entities.RegistrationPending {
		return domainerrors.BadRequest("registration is not pending")
	}
	return u.registrations.MarkRejected(ctx, regID, adminID)
}

// GetPlan returns the current compensation configuration
func (u *AdminUsecase) GetPlan(ctx context.Context) (*entities.CompensationPlan, error) {
	return u.plans.GetPlan(ctx)
}

// UpdatePlan applies a partial edit to the commission structure. The merged
// plan must pass full validation before it is stored; a rejected edit leaves
// the stored plan untouched.
func (u *AdminUsecase) UpdatePlan(ctx context.Context, input *entities.UpdatePlanInput) (*entities.CompensationPlan, error) {
	plan, err := u.plans.GetPlan(ctx)
	if err != nil {
		return nil, err
	}

	if input.RetailProfitBps != nil {
		plan.RetailProfitBps = *input.RetailProfitBps
	}
	if input.PersonalPurchaseBps != nil {
		plan.PersonalPurchaseBps = *input.PersonalPurchaseBps
	}
	if input.SponsorBonusBps != nil {
		plan.SponsorBonusBps = *input.SponsorBonusBps
	}
	if input.LevelRatesBps != nil {
		plan.LevelRatesBps = input.LevelRatesBps
	}
	if input.NairaPerPoint != nil {
		plan.NairaPerPoint = *input.NairaPerPoint
	}
	if input.PayoutCapBps != nil {
		plan.PayoutCapBps = *input.PayoutCapBps
	}
	if input.TeamVolumeRollup != nil {
		plan.TeamVolumeRollup = *input.TeamVolumeRollup
	}

	if err := ValidatePlan(plan); err != nil {
		return nil, err
	}
	if err := u.plans.SavePlan(ctx, plan); err != nil {
		return nil, err
	}

	logger.Info(ctx, "compensation plan updated",
		zap.Int("total_rate_bps", plan.TotalRateBps()),
		zap.Int("levels", len(plan.LevelRatesBps)),
	)
	return plan, nil
}

// UpdateRanks replaces the rank ladder. The new ladder is validated against
// the stored rates before saving.
func (u *AdminUsecase) UpdateRanks(ctx context.Context, input *entities.UpdateRanksInput) ([]entities.Rank, error) {
	plan, err := u.plans.GetPlan(ctx)
	if err != nil {
		return nil, err
	}
	plan.Ranks = input.Ranks
	if err := ValidatePlan(plan); err != nil {
		return nil, err
	}
	if err := u.plans.SaveRanks(ctx, input.Ranks); err != nil {
		return nil, err
	}
	return input.Ranks, nil
}

// GetDashboard aggregates the admin overview numbers
func (u *AdminUsecase) GetDashboard(ctx context.Context) (*entities.DashboardStats, error) {
	members, err := u.users.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	awaiting, err := u.orders.CountByPaymentStatus(ctx, entities.OrderPaymentAwaitingVerification)
	if err != nil {
		return nil, err
	}
	verified, err := u.orders.CountByPaymentStatus(ctx, entities.OrderPaymentVerified)
	if err != nil {
		return nil, err
	}
	volume, err := u.orders.SumVerifiedAmount(ctx)
	if err != nil {
		return nil, err
	}
	return &entities.DashboardStats{
		TotalMembers:         members,
		PendingVerifications: awaiting,
		VerifiedOrders:       verified,
		TotalSalesVolume:     volume,
	}, nil
}

// CreateDSC registers a distributor service center
func (u *AdminUsecase) CreateDSC(ctx context.Context, input *entities.CreateDSCInput) (*entities.DSCCenter, error) {
	center := &entities.DSCCenter{
		CenterNumber: input.CenterNumber,
		OperatorName: input.OperatorName,
		Email:        null.NewString(input.Email, input.Email != ""),
		Phone:        null.NewString(input.Phone, input.Phone != ""),
		Address:      null.NewString(input.Address, input.Address != ""),
		City:         null.NewString(input.City, input.City != ""),
		State:        null.NewString(input.State, input.State != ""),
		CreditLine:   input.CreditLine,
		Status:       entities.DSCStatusActive,
	}
	if err := u.centers.Create(ctx, center); err != nil {
		return nil, err
	}
	return center, nil
}

// ListDSC returns registered service centers
func (u *AdminUsecase) ListDSC(ctx context.Context, limit, offset int) ([]*entities.DSCCenter, int64, error) {
	return u.centers.List(ctx, limit, offset)
}

// SetDSCStatus suspends or reactivates a service center
func (u *AdminUsecase) SetDSCStatus(ctx context.Context, id uuid.UUID, status entities.DSCStatus) error {
	switch status {
	case entities.DSCStatusActive, entities.DSCStatusSuspended:
	default:
		return domainerrors.BadRequest("invalid center status")
	}
	return u.centers.SetStatus(ctx, id, status)
}
