package repository

import (
	"context"

	"github.com/lshigami/scribeset/internal/model"
	"gorm.io/gorm"
)

type PromptRepository interface {
	Create(ctx context.Context, prompt *model.Prompt) error
	FindByID(ctx context.Context, id uint) (*model.Prompt, error)
	FindAllWithSubmissionCount(ctx context.Context) ([]model.PromptWithCount, error)
	// Delete removes the prompt and every submission made against it.
	Delete(ctx context.Context, id uint) error
}

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) Create(ctx context.Context, prompt *model.Prompt) error {
	return r.db.WithContext(ctx).Create(prompt).Error
}

func (r *promptRepository) FindByID(ctx context.Context, id uint) (*model.Prompt, error) {
	var prompt model.Prompt
	if err := r.db.WithContext(ctx).First(&prompt, id).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

func (r *promptRepository) FindAllWithSubmissionCount(ctx context.Context) ([]model.PromptWithCount, error) {
	var results []model.PromptWithCount
	err := r.db.WithContext(ctx).Model(&model.Prompt{}).
		Select("prompts.*, (SELECT COUNT(*) FROM submissions WHERE submissions.prompt_id = prompts.id) AS submission_count").
		Order("prompts.priority DESC").
		Order("prompts.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *promptRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var prompt model.Prompt
		if err := tx.Select("id").First(&prompt, id).Error; err != nil {
			return err
		}
		// sqlite leaves foreign keys unenforced unless asked
		if err := tx.Where("prompt_id = ?", id).Delete(&model.Submission{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Prompt{}, id).Error
	})
}
