package jobs

import (
	"context"
	"time"

	"github.com/InusahIbraheem/solid-life-web/internal/domain/repositories"
	"github.com/InusahIbraheem/solid-life-web/pkg/logger"
	"go.uber.org/zap"
)

const expiryBatchSize = 100

// OrderExpiryJob periodically expires orders that never received a payment
// proof, so abandoned carts don't sit in the admin verification queue.
type OrderExpiryJob struct {
	orders   repositories.OrderRepository
	maxAge   time.Duration
	interval time.Duration
	stop     chan struct{}
}

func NewOrderExpiryJob(orders repositories.OrderRepository, maxAge, interval time.Duration) *OrderExpiryJob {
	if maxAge <= 0 {
		maxAge = 48 * time.Hour
	}
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &OrderExpiryJob{
		orders:   orders,
		maxAge:   maxAge,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *OrderExpiryJob) Start(ctx context.Context) {
	log := logger.GetLogger()
	log.Info("starting order expiry job",
		zap.Duration("interval", j.interval),
		zap.Duration("max_age", j.maxAge))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("order expiry job stopped", zap.String("cause", "context cancelled"))
			return
		case <-j.stop:
			log.Info("order expiry job stopped")
			return
		case <-ticker.C:
			j.expireStale(ctx)
		}
	}
}

func (j *OrderExpiryJob) Stop() {
	close(j.stop)
}

func (j *OrderExpiryJob) expireStale(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxAge)
	n, err := j.orders.ExpirePending(ctx, cutoff, expiryBatchSize)
	if err != nil {
		logger.GetLogger().Error("expiring stale orders failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.GetLogger().Info("expired stale orders", zap.Int64("count", n))
	}
}
