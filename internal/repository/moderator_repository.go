package repository

import (
	"context"

	"github.com/lshigami/scribeset/internal/model"
	"gorm.io/gorm"
)

type ModeratorRepository interface {
	Create(ctx context.Context, moderator *model.Moderator) error
	FindByID(ctx context.Context, id uint) (*model.Moderator, error)
	FindByUsername(ctx context.Context, username string) (*model.Moderator, error)
}

type moderatorRepository struct {
	db *gorm.DB
}

func NewModeratorRepository(db *gorm.DB) ModeratorRepository {
	return &moderatorRepository{db: db}
}

func (r *moderatorRepository) Create(ctx context.Context, moderator *model.Moderator) error {
	return r.db.WithContext(ctx).Create(moderator).Error
}

func (r *moderatorRepository) FindByID(ctx context.Context, id uint) (*model.Moderator, error) {
	var moderator model.Moderator
	if err := r.db.WithContext(ctx).First(&moderator, id).Error; err != nil {
		return nil, err
	}
	return &moderator, nil
}

func (r *moderatorRepository) FindByUsername(ctx context.Context, username string) (*model.Moderator, error) {
	var moderator model.Moderator
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&moderator).Error; err != nil {
		return nil, err
	}
	return &moderator, nil
}
