package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
	"github.com/Demureaxs/weaver-final-v1/internal/infrastructure"
)

// webhookSeenTTL bounds the Redis fast path in front of the durable
// idempotency record.
const webhookSeenTTL = 72 * time.Hour

type BillingService struct {
	gateway  *infrastructure.StripeGateway
	payments repositories.PaymentRepository
	redis    *infrastructure.RedisService
	log      *zap.Logger
}

func NewBillingService(
	gateway *infrastructure.StripeGateway,
	payments repositories.PaymentRepository,
	redis *infrastructure.RedisService,
	log *zap.Logger,
) *BillingService {
	return &BillingService{gateway: gateway, payments: payments, redis: redis, log: log}
}

func (s *BillingService) CreateCheckout(userID, plan string) (string, error) {
	return s.gateway.CreateCheckoutSession(userID, plan)
}

// ApplyPaymentEvent grants the credits named in a verified checkout event,
// exactly once. Redeliveries are acknowledged without a second grant: Redis
// short-circuits the common case and the unique event record in the database
// is the real guarantee.
func (s *BillingService) ApplyPaymentEvent(ctx context.Context, event *infrastructure.PaymentEvent) error {
	if !event.CheckoutCompleted {
		s.log.Debug("ignoring webhook event", zap.String("type", event.Type))
		return nil
	}
	if event.UserID == "" || event.Credits <= 0 {
		s.log.Warn("checkout completed without usable metadata", zap.String("event_id", event.ID))
		return nil
	}

	if s.redis != nil && s.redis.SeenWebhookEvent(ctx, event.ID, webhookSeenTTL) {
		s.log.Info("webhook redelivery skipped", zap.String("event_id", event.ID))
		return nil
	}

	granted, err := s.payments.GrantCheckoutCredits(ctx, event.ID, event.Type, event.UserID, event.Credits)
	if err != nil {
		if s.redis != nil {
			s.redis.UnseeWebhookEvent(ctx, event.ID)
		}
		return err
	}

	if granted {
		s.log.Info("credits granted",
			zap.String("user_id", event.UserID),
			zap.Int("credits", event.Credits),
			zap.String("event_id", event.ID))
	} else {
		s.log.Info("webhook redelivery skipped", zap.String("event_id", event.ID))
	}
	return nil
}
