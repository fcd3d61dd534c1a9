package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/lshigami/scribeset/config"
	"github.com/lshigami/scribeset/internal/dto"
	"github.com/lshigami/scribeset/internal/model"
	"github.com/lshigami/scribeset/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type SubmissionService interface {
	CreateSubmission(ctx context.Context, promptID uint, image io.Reader, filename string) error
	ListPending(ctx context.Context) ([]dto.ModeratorSubmissionResponse, error)
	ListSubmissions(ctx context.Context, status *model.SubmissionStatus) ([]dto.ModeratorSubmissionResponse, error)
}

type submissionService struct {
	promptRepo     repository.PromptRepository
	submissionRepo repository.SubmissionRepository
	store          ImageStore
	maxUploadBytes int64
}

func NewSubmissionService(
	promptRepo repository.PromptRepository,
	submissionRepo repository.SubmissionRepository,
	store ImageStore,
	cfg *config.Config,
) SubmissionService {
	return &submissionService{
		promptRepo:     promptRepo,
		submissionRepo: submissionRepo,
		store:          store,
		maxUploadBytes: cfg.Server.MaxUploadBytes,
	}
}

// CreateSubmission uploads the image and records a pending submission. Nothing
// is persisted when the upload fails.
func (s *submissionService) CreateSubmission(ctx context.Context, promptID uint, image io.Reader, filename string) error {
	if _, err := s.promptRepo.FindByID(ctx, promptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("invalid prompt %d: %w", promptID, ErrValidation)
		}
		return fmt.Errorf("error loading prompt %d: %w", promptID, err)
	}

	data, err := io.ReadAll(io.LimitReader(image, s.maxUploadBytes+1))
	if err != nil {
		return fmt.Errorf("error reading image: %w", ErrValidation)
	}
	if len(data) == 0 {
		return fmt.Errorf("image is empty: %w", ErrValidation)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return fmt.Errorf("image exceeds %d bytes: %w", s.maxUploadBytes, ErrValidation)
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return fmt.Errorf("unsupported file type %s: %w", mtype.String(), ErrValidation)
	}

	stored, err := s.store.Upload(ctx, ImageUpload{
		Reader:      bytes.NewReader(data),
		Filename:    filename,
		ContentType: mtype.String(),
	})
	if err != nil {
		log.Error().Err(err).Uint("promptID", promptID).Msg("CreateSubmission: image upload failed")
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	submission := model.Submission{
		PromptID: promptID,
		ImageURL: stored.URL,
		PublicID: stored.PublicID,
		Status:   model.StatusPending,
	}
	if err := s.submissionRepo.Create(ctx, &submission); err != nil {
		log.Error().Err(err).Str("publicID", stored.PublicID).Msg("CreateSubmission: uploaded image has no submission record")
		return fmt.Errorf("database error creating submission: %w", err)
	}
	log.Info().Uint("submissionID", submission.ID).Uint("promptID", promptID).Msg("Submission created")
	return nil
}

func (s *submissionService) ListPending(ctx context.Context) ([]dto.ModeratorSubmissionResponse, error) {
	pending := model.StatusPending
	submissions, err := s.submissionRepo.List(ctx, repository.SubmissionFilter{Status: &pending, OldestFirst: true})
	if err != nil {
		log.Error().Err(err).Msg("ListPending: repository error")
		return nil, fmt.Errorf("error fetching pending submissions: %w", err)
	}
	return toModeratorResponses(submissions), nil
}

func (s *submissionService) ListSubmissions(ctx context.Context, status *model.SubmissionStatus) ([]dto.ModeratorSubmissionResponse, error) {
	if status != nil && !status.Valid() {
		return nil, fmt.Errorf("unknown status %q: %w", *status, ErrValidation)
	}
	submissions, err := s.submissionRepo.List(ctx, repository.SubmissionFilter{Status: status})
	if err != nil {
		log.Error().Err(err).Msg("ListSubmissions: repository error")
		return nil, fmt.Errorf("error fetching submissions: %w", err)
	}
	return toModeratorResponses(submissions), nil
}
