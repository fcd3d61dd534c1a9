package service

import (
	"context"
	"fmt"

	"github.com/lshigami/scribeset/internal/dto"
	"github.com/lshigami/scribeset/internal/model"
	"github.com/lshigami/scribeset/internal/repository"
	"github.com/rs/zerolog/log"
)

// ModerationService moves submissions between pending, verified and unverified.
// Every status change records the acting moderator, whatever the previous state.
type ModerationService interface {
	SetStatus(ctx context.Context, submissionID uint, status model.SubmissionStatus, moderatorID uint) (*dto.ModeratorSubmissionResponse, error)
	SetStatusBulk(ctx context.Context, ids []uint, status model.SubmissionStatus, moderatorID uint) (int64, error)
	Review(ctx context.Context, submissionID uint, req dto.ReviewRequest, moderatorID uint) (*dto.ModeratorSubmissionResponse, error)
}

type moderationService struct {
	submissionRepo repository.SubmissionRepository
}

func NewModerationService(submissionRepo repository.SubmissionRepository) ModerationService {
	return &moderationService{submissionRepo: submissionRepo}
}

func reviewTarget(status model.SubmissionStatus) error {
	if status != model.StatusVerified && status != model.StatusUnverified {
		return fmt.Errorf("cannot move a submission to %q: %w", status, ErrValidation)
	}
	return nil
}

func (s *moderationService) SetStatus(ctx context.Context, submissionID uint, status model.SubmissionStatus, moderatorID uint) (*dto.ModeratorSubmissionResponse, error) {
	if err := reviewTarget(status); err != nil {
		return nil, err
	}
	if err := s.submissionRepo.UpdateStatus(ctx, submissionID, status, moderatorID); err != nil {
		return nil, notFoundOr(err, "set status of submission %d", submissionID)
	}
	log.Info().
		Uint("submissionID", submissionID).
		Str("status", string(status)).
		Uint("moderatorID", moderatorID).
		Msg("Submission status changed")
	return s.reload(ctx, submissionID)
}

// SetStatusBulk updates every matching submission in one statement. Unknown ids
// are skipped silently; the result counts only updated rows.
func (s *moderationService) SetStatusBulk(ctx context.Context, ids []uint, status model.SubmissionStatus, moderatorID uint) (int64, error) {
	if err := reviewTarget(status); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}
	updated, err := s.submissionRepo.UpdateStatusBulk(ctx, ids, status, moderatorID)
	if err != nil {
		log.Error().Err(err).Int("requested", len(ids)).Msg("SetStatusBulk: repository error")
		return 0, fmt.Errorf("error updating submissions: %w", err)
	}
	log.Info().
		Int("requested", len(ids)).
		Int64("updated", updated).
		Str("status", string(status)).
		Uint("moderatorID", moderatorID).
		Msg("Bulk status change")
	return updated, nil
}

// Review applies a partial moderator update as a single write. Setting the
// status records the moderator; notes alone leave status and verified_by
// untouched. Notes are stored exactly as sent.
func (s *moderationService) Review(ctx context.Context, submissionID uint, req dto.ReviewRequest, moderatorID uint) (*dto.ModeratorSubmissionResponse, error) {
	if req.Status == nil && req.Notes == nil {
		return nil, fmt.Errorf("nothing to update: %w", ErrValidation)
	}

	var status *model.SubmissionStatus
	if req.Status != nil {
		target := model.SubmissionStatus(*req.Status)
		if err := reviewTarget(target); err != nil {
			return nil, err
		}
		status = &target
	}

	if err := s.submissionRepo.ApplyReview(ctx, submissionID, status, moderatorID, req.Notes); err != nil {
		return nil, notFoundOr(err, "review submission %d", submissionID)
	}

	event := log.Info().Uint("submissionID", submissionID).Uint("moderatorID", moderatorID)
	if status != nil {
		event = event.Str("status", string(*status))
	}
	event.Msg("Submission reviewed")
	return s.reload(ctx, submissionID)
}

func (s *moderationService) reload(ctx context.Context, submissionID uint) (*dto.ModeratorSubmissionResponse, error) {
	submission, err := s.submissionRepo.FindByID(ctx, submissionID)
	if err != nil {
		return nil, notFoundOr(err, "reload submission %d", submissionID)
	}
	resp := toModeratorResponse(submission)
	return &resp, nil
}
