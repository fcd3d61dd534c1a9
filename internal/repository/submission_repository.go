package repository

import (
	"context"

	"github.com/lshigami/scribeset/internal/model"
	"gorm.io/gorm"
)

// SubmissionFilter narrows List. A nil Status matches every submission.
type SubmissionFilter struct {
	Status      *model.SubmissionStatus
	OldestFirst bool
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.Submission) error
	FindByID(ctx context.Context, id uint) (*model.Submission, error)
	List(ctx context.Context, filter SubmissionFilter) ([]model.Submission, error)
	// ListForExport returns every submission in the given status ordered by id,
	// with the prompt preloaded.
	ListForExport(ctx context.Context, status model.SubmissionStatus) ([]model.Submission, error)
	UpdateStatus(ctx context.Context, id uint, status model.SubmissionStatus, moderatorID uint) error
	UpdateStatusBulk(ctx context.Context, ids []uint, status model.SubmissionStatus, moderatorID uint) (int64, error)
	// ApplyReview sets status (recording moderatorID) and/or notes in one
	// transaction. Nil fields are left unchanged.
	ApplyReview(ctx context.Context, id uint, status *model.SubmissionStatus, moderatorID uint, notes *string) error
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *model.Submission) error {
	return r.db.WithContext(ctx).Omit("Prompt", "VerifiedBy").Create(submission).Error
}

func (r *submissionRepository) FindByID(ctx context.Context, id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.WithContext(ctx).
		Preload("Prompt").
		Preload("VerifiedBy").
		First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) List(ctx context.Context, filter SubmissionFilter) ([]model.Submission, error) {
	var submissions []model.Submission
	query := r.db.WithContext(ctx).Preload("Prompt").Preload("VerifiedBy")
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.OldestFirst {
		query = query.Order("submitted_at ASC").Order("id ASC")
	} else {
		query = query.Order("submitted_at DESC").Order("id DESC")
	}
	err := query.Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) ListForExport(ctx context.Context, status model.SubmissionStatus) ([]model.Submission, error) {
	var submissions []model.Submission
	err := r.db.WithContext(ctx).
		Preload("Prompt").
		Where("status = ?", string(status)).
		Order("id ASC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id uint, status model.SubmissionStatus, moderatorID uint) error {
	return r.ApplyReview(ctx, id, &status, moderatorID, nil)
}

func (r *submissionRepository) UpdateStatusBulk(ctx context.Context, ids []uint, status model.SubmissionStatus, moderatorID uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&model.Submission{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":         string(status),
			"verified_by_id": moderatorID,
		})
	return result.RowsAffected, result.Error
}

func (r *submissionRepository) ApplyReview(ctx context.Context, id uint, status *model.SubmissionStatus, moderatorID uint, notes *string) error {
	changes := map[string]interface{}{}
	if status != nil {
		changes["status"] = string(*status)
		changes["verified_by_id"] = moderatorID
	}
	if notes != nil {
		changes["notes"] = *notes
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Submission
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return tx.Model(&model.Submission{}).Where("id = ?", id).Updates(changes).Error
	})
}
