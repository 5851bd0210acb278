package usecases

import (
	"context"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/entities"
	domainerrors "github.com/InusahIbraheem/solid-life-web/internal/domain/errors"
	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompensationApplier is the engine hook the order flow calls after payment
// verification. Satisfied by CompensationUsecase.
type CompensationApplier interface {
	Apply(ctx context.Context, orderID uuid.UUID) ([]*entities.WalletTransaction, error)
}

// OrderUsecase handles the order lifecycle: placement, payment proof, admin
// verification and delivery. Verification is the trigger of the compensation
// engine; everything before it moves no money.
type OrderUsecase struct {
	orders   repositories.OrderRepository
	products repositories.ProductRepository
	users    repositories.UserRepository
	uow      repositories.UnitOfWork
	comp     CompensationApplier
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orders repositories.OrderRepository,
	products repositories.ProductRepository,
	users repositories.UserRepository,
	uow repositories.UnitOfWork,
	comp CompensationApplier,
) *OrderUsecase {
	return &OrderUsecase{
		orders:   orders,
		products: products,
		users:    users,
		uow:      uow,
		comp:     comp,
	}
}

// Create places an order, snapshotting the product's current price and PV so
// later catalog edits cannot change what a verified order pays out.
func (u *OrderUsecase) Create(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (*entities.Order, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status == entities.UserStatusSuspended {
		return nil, domainerrors.ErrAccountSuspended
	}

	productID, err := uuid.Parse(input.ProductID)
	if err != nil {
		return nil, domainerrors.BadRequest("invalid product id")
	}
	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != entities.ProductStatusActive {
		return nil, domainerrors.BadRequest("product is not available")
	}
	if product.Stock < input.Quantity {
		return nil, domainerrors.ErrOutOfStock
	}

	order := &entities.Order{
		UserID:         userID,
		ProductID:      product.ID,
		Quantity:       input.Quantity,
		Amount:         product.Price * int64(input.Quantity),
		PointsEarned:   product.PointValue * int64(input.Quantity),
		SelfRetail:     input.SelfRetail,
		PaymentStatus:  entities.OrderPaymentPending,
		DeliveryStatus: entities.OrderDeliveryProcessing,
	}
	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	logger.Info(ctx, "order placed",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Int64("amount", order.Amount),
	)
	return order, nil
}

// AttachPaymentProof records the member's bank transfer proof and moves the
// order to awaiting-verification.
func (u *OrderUsecase) AttachPaymentProof(ctx context.Context, userID, orderID uuid.UUID, input *entities.PaymentProofInput) (*entities.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}
	if order.PaymentStatus != entities.OrderPaymentPending &&
		order.PaymentStatus != entities.OrderPaymentAwaitingVerification {
		return nil, domainerrors.BadRequest("order is not awaiting payment")
	}

	if err := u.orders.AttachPaymentProof(ctx, orderID, input.ProofURL); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// VerifyPayment is the admin approval of an order's payment. The status flip
// and the stock decrement commit together; the compensation run happens after
// the commit so a verified order whose bonuses failed can be re-applied by
// calling this again (the conditional status update makes the second flip a
// no-op and the engine's claim marker keeps the payout single).
func (u *OrderUsecase) VerifyPayment(ctx context.Context, adminID, orderID uuid.UUID) (*entities.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch order.PaymentStatus {
	case entities.OrderPaymentAwaitingVerification:
		err = u.uow.Do(ctx, func(txCtx context.Context) error {
			if err := u.orders.MarkVerified(txCtx, orderID, adminID); err != nil {
				return err
			}
			return u.products.RecordSale(txCtx, order.ProductID, order.Quantity)
		})
		if err != nil {
			return nil, err
		}
	case entities.OrderPaymentVerified:
		// Recovery path: payment already flipped, bonuses may still be owed.
	default:
		return nil, domainerrors.BadRequest("order has no payment awaiting verification")
	}

	if _, err := u.comp.Apply(ctx, orderID); err != nil {
		logger.Error(ctx, "compensation apply failed after verification",
			zap.String("order_id", orderID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return u.orders.GetByID(ctx, orderID)
}

// RejectPayment is the admin rejection of a submitted payment proof.
func (u *OrderUsecase) RejectPayment(ctx context.Context, adminID, orderID uuid.UUID) (*entities.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus != entities.OrderPaymentAwaitingVerification {
		return nil, domainerrors.BadRequest("order has no payment awaiting verification")
	}
	if err := u.orders.MarkRejected(ctx, orderID, adminID); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// UpdateDelivery moves a verified order through the delivery pipeline.
func (u *OrderUsecase) UpdateDelivery(ctx context.Context, orderID uuid.UUID, status entities.OrderDeliveryStatus) (*entities.Order, error) {
	switch status {
	case entities.OrderDeliveryProcessing, entities.OrderDeliveryShipped, entities.OrderDeliveryDelivered:
	default:
		return nil, domainerrors.BadRequest("invalid delivery status")
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentStatus != entities.OrderPaymentVerified {
		return nil, domainerrors.BadRequest("only verified orders can be shipped")
	}
	if err := u.orders.UpdateDeliveryStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return u.orders.GetByID(ctx, orderID)
}

// GetByID returns an order, restricted to its owner unless asAdmin.
func (u *OrderUsecase) GetByID(ctx context.Context, requesterID uuid.UUID, orderID uuid.UUID, asAdmin bool) (*entities.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !asAdmin && order.UserID != requesterID {
		return nil, domainerrors.ErrForbidden
	}
	return order, nil
}

// ListByUser returns a member's own orders, newest first.
func (u *OrderUsecase) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Order, int64, error) {
	return u.orders.GetByUserID(ctx, userID, limit, offset)
}

// List returns orders across all members, optionally filtered by payment
// status. Admin only.
func (u *OrderUsecase) List(ctx context.Context, paymentStatus string, limit, offset int) ([]*entities.Order, int64, error) {
	return u.orders.List(ctx, paymentStatus, limit, offset)
}
