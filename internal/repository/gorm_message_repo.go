package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/221-Batuhan/chat-ai-project/internal/domain"
)

// GormMessageRepository implements MessageRepository using GORM.
type GormMessageRepository struct {
	db *gorm.DB
}

// NewGormMessageRepository creates a new GORM-based message repository.
func NewGormMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// Create persists a new message. The creation timestamp is set here so every
// stored record carries a server-side UTC time.
func (r *GormMessageRepository) Create(ctx context.Context, message *domain.Message) error {
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}

	model := domain.MessageToModel(message)
	result := r.db.WithContext(ctx).Create(model)
	if result.Error != nil {
		return result.Error
	}

	message.ID = model.ID
	message.CreatedAt = model.CreatedAt
	return nil
}

// List returns all messages, newest creation timestamp first.
func (r *GormMessageRepository) List(ctx context.Context) ([]domain.Message, error) {
	var models []domain.MessageModel
	result := r.db.WithContext(ctx).Order("created_at desc").Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	messages := make([]domain.Message, 0, len(models))
	for i := range models {
		messages = append(messages, *models[i].ToDomain())
	}
	return messages, nil
}

// UpdateSentiment overwrites the (label, score) pair of a message in a single
// update so the pair is always internally consistent.
func (r *GormMessageRepository) UpdateSentiment(ctx context.Context, id int64, label string, score float64) error {
	result := r.db.WithContext(ctx).Model(&domain.MessageModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"sentiment":       label,
			"sentiment_score": score,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
