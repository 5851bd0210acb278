package usecases_test

import (
	"context"
	"time"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByReferralCode(ctx context.Context, code string) (*entities.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetSponsorID(ctx context.Context, id uuid.UUID) (*uuid.UUID, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *MockUserRepository) SetKYCVerified(ctx context.Context, id uuid.UUID, verified bool) error {
	return m.Called(ctx, id, verified).Error(0)
}

func (m *MockUserRepository) SetStatus(ctx context.Context, id uuid.UUID, status entities.UserStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockUserRepository) AddPointVolume(ctx context.Context, id uuid.UUID, points int64) error {
	return m.Called(ctx, id, points).Error(0)
}

func (m *MockUserRepository) AddEarnings(ctx context.Context, id uuid.UUID, amount int64) error {
	return m.Called(ctx, id, amount).Error(0)
}

func (m *MockUserRepository) CompareAndSetRank(ctx context.Context, id uuid.UUID, expected, next string) error {
	return m.Called(ctx, id, expected, next).Error(0)
}

func (m *MockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) List(ctx context.Context, paymentStatus string, limit, offset int) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, paymentStatus, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) AttachPaymentProof(ctx context.Context, id uuid.UUID, proofURL string) error {
	return m.Called(ctx, id, proofURL).Error(0)
}

func (m *MockOrderRepository) MarkVerified(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	return m.Called(ctx, id, adminID).Error(0)
}

func (m *MockOrderRepository) MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	return m.Called(ctx, id, adminID).Error(0)
}

func (m *MockOrderRepository) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status entities.OrderDeliveryStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockOrderRepository) ClaimForProcessing(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockOrderRepository) ExpirePending(ctx context.Context, olderThan time.Time, limit int) (int64, error) {
	args := m.Called(ctx, olderThan, limit)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByPaymentStatus(ctx context.Context, status entities.OrderPaymentStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) SumVerifiedAmount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Mock WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Append(ctx context.Context, tx *entities.WalletTransaction) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockWalletRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.WalletTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.WalletTransaction), args.Error(1)
}

func (m *MockWalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.WalletTransaction, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.WalletTransaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockWalletRepository) GetBySourceOrder(ctx context.Context, orderID uuid.UUID) ([]*entities.WalletTransaction, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.WalletTransaction), args.Error(1)
}

func (m *MockWalletRepository) SumCompleted(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) SumPendingCredits(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) SumPendingWithdrawals(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) SumWithdrawn(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.TransactionStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockWalletRepository) MarkCompletedBySourceOrder(ctx context.Context, orderID uuid.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

// Mock ReferralRepository
type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) Create(ctx context.Context, referral *entities.Referral) error {
	return m.Called(ctx, referral).Error(0)
}

func (m *MockReferralRepository) GetByReferrer(ctx context.Context, referrerID uuid.UUID, level int, limit, offset int) ([]*entities.Referral, int64, error) {
	args := m.Called(ctx, referrerID, level, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Referral), args.Get(1).(int64), args.Error(2)
}

func (m *MockReferralRepository) GetDirectReferrals(ctx context.Context, referrerID uuid.UUID) ([]*entities.Referral, error) {
	args := m.Called(ctx, referrerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Referral), args.Error(1)
}

func (m *MockReferralRepository) AddCommission(ctx context.Context, referrerID, referredID uuid.UUID, amount int64) error {
	return m.Called(ctx, referrerID, referredID, amount).Error(0)
}

func (m *MockReferralRepository) CountByReferrer(ctx context.Context, referrerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, referrerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReferralRepository) List(ctx context.Context, limit, offset int) ([]*entities.Referral, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Referral), args.Get(1).(int64), args.Error(2)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entities.Product, int64, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entities.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) RecordSale(ctx context.Context, id uuid.UUID, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

// Mock PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) GetPlan(ctx context.Context) (*entities.CompensationPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.CompensationPlan), args.Error(1)
}

func (m *MockPlanRepository) SavePlan(ctx context.Context, plan *entities.CompensationPlan) error {
	return m.Called(ctx, plan).Error(0)
}

func (m *MockPlanRepository) GetRanks(ctx context.Context) ([]entities.Rank, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Rank), args.Error(1)
}

func (m *MockPlanRepository) SaveRanks(ctx context.Context, ranks []entities.Rank) error {
	return m.Called(ctx, ranks).Error(0)
}

// Mock RegistrationRepository
type MockRegistrationRepository struct {
	mock.Mock
}

func (m *MockRegistrationRepository) Create(ctx context.Context, reg *entities.Registration) error {
	return m.Called(ctx, reg).Error(0)
}

func (m *MockRegistrationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Registration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Registration), args.Error(1)
}

func (m *MockRegistrationRepository) List(ctx context.Context, status string, limit, offset int) ([]*entities.Registration, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Registration), args.Get(1).(int64), args.Error(2)
}

func (m *MockRegistrationRepository) AttachPaymentProof(ctx context.Context, id uuid.UUID, proofURL string) error {
	return m.Called(ctx, id, proofURL).Error(0)
}

func (m *MockRegistrationRepository) MarkVerified(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	return m.Called(ctx, id, adminID).Error(0)
}

func (m *MockRegistrationRepository) MarkRejected(ctx context.Context, id uuid.UUID, adminID uuid.UUID) error {
	return m.Called(ctx, id, adminID).Error(0)
}

// Mock DSCRepository
type MockDSCRepository struct {
	mock.Mock
}

func (m *MockDSCRepository) Create(ctx context.Context, center *entities.DSCCenter) error {
	return m.Called(ctx, center).Error(0)
}

func (m *MockDSCRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DSCCenter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.DSCCenter), args.Error(1)
}

func (m *MockDSCRepository) List(ctx context.Context, limit, offset int) ([]*entities.DSCCenter, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.DSCCenter), args.Get(1).(int64), args.Error(2)
}

func (m *MockDSCRepository) Update(ctx context.Context, center *entities.DSCCenter) error {
	return m.Called(ctx, center).Error(0)
}

func (m *MockDSCRepository) SetStatus(ctx context.Context, id uuid.UUID, status entities.DSCStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// Mock TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, ticket *entities.SupportTicket) error {
	return m.Called(ctx, ticket).Error(0)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SupportTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SupportTicket), args.Error(1)
}

func (m *MockTicketRepository) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.SupportTicket, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.SupportTicket), args.Get(1).(int64), args.Error(2)
}

func (m *MockTicketRepository) List(ctx context.Context, status string, limit, offset int) ([]*entities.SupportTicket, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.SupportTicket), args.Get(1).(int64), args.Error(2)
}

func (m *MockTicketRepository) Reply(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reply string, close bool) error {
	return m.Called(ctx, id, adminID, reply, close).Error(0)
}
