package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Demureaxs/weaver-final-v1/internal/domain/entities"
	"github.com/Demureaxs/weaver-final-v1/internal/domain/repositories"
)

// PaymentRepository makes webhook credit grants idempotent: the event record
// insert and the balance increment commit together, so a redelivered event
// hits the unique event ID and grants nothing.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(gdb *gorm.DB) repositories.PaymentRepository {
	return &PaymentRepository{db: gdb}
}

func (r *PaymentRepository) GrantCheckoutCredits(ctx context.Context, eventID, eventType, userID string, credits int) (bool, error) {
	if credits <= 0 {
		return false, entities.ErrInvalidRequest
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := entities.WebhookEvent{
			EventID:     eventID,
			EventType:   eventType,
			ProcessedAt: time.Now(),
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		res := tx.Model(&entities.Profile{}).
			Where("user_id = ?", userID).
			UpdateColumn("credits", gorm.Expr("credits + ?", credits))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entities.ErrNotFound
		}
		return nil
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Redelivery: already processed, acknowledge without granting.
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
