package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/scribeset/internal/dto"
	"github.com/lshigami/scribeset/internal/model"
	"github.com/lshigami/scribeset/internal/repository"
	"github.com/rs/zerolog/log"
)

type PromptService interface {
	GetRandomPrompt(ctx context.Context) (*dto.PromptResponse, error)
	CreatePrompt(ctx context.Context, req dto.PromptCreateRequest) (*dto.PromptSummaryResponse, error)
	ListPrompts(ctx context.Context) ([]dto.PromptSummaryResponse, error)
	DeletePrompt(ctx context.Context, id uint) error
}

type promptService struct {
	promptRepo repository.PromptRepository
	selector   *PromptSelector
}

func NewPromptService(promptRepo repository.PromptRepository, selector *PromptSelector) PromptService {
	return &promptService{promptRepo: promptRepo, selector: selector}
}

func (s *promptService) GetRandomPrompt(ctx context.Context) (*dto.PromptResponse, error) {
	prompts, err := s.promptRepo.FindAllWithSubmissionCount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("GetRandomPrompt: failed to load prompts")
		return nil, fmt.Errorf("error fetching prompts: %w", err)
	}

	chosen, err := s.selector.Select(prompts)
	if err != nil {
		return nil, fmt.Errorf("no prompts available: %w", err)
	}
	return &dto.PromptResponse{ID: chosen.ID, Text: chosen.Text}, nil
}

func (s *promptService) CreatePrompt(ctx context.Context, req dto.PromptCreateRequest) (*dto.PromptSummaryResponse, error) {
	priority := 1
	if req.Priority != nil {
		priority = *req.Priority
	}
	if priority < 1 {
		return nil, fmt.Errorf("priority must be at least 1, got %d: %w", priority, ErrValidation)
	}

	prompt := model.Prompt{Text: req.Text, Priority: priority}
	if err := s.promptRepo.Create(ctx, &prompt); err != nil {
		log.Error().Err(err).Msg("CreatePrompt: failed to persist prompt")
		return nil, fmt.Errorf("database error creating prompt: %w", err)
	}

	var resp dto.PromptSummaryResponse
	if err := copier.Copy(&resp, &prompt); err != nil {
		return nil, fmt.Errorf("error preparing prompt response: %w", err)
	}
	return &resp, nil
}

func (s *promptService) ListPrompts(ctx context.Context) ([]dto.PromptSummaryResponse, error) {
	prompts, err := s.promptRepo.FindAllWithSubmissionCount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("ListPrompts: failed to load prompts")
		return nil, fmt.Errorf("error fetching prompts: %w", err)
	}

	resp := make([]dto.PromptSummaryResponse, 0, len(prompts))
	for _, p := range prompts {
		resp = append(resp, dto.PromptSummaryResponse{
			ID:              p.ID,
			Text:            p.Text,
			Priority:        p.Priority,
			SubmissionCount: p.SubmissionCount,
			CreatedAt:       p.CreatedAt,
		})
	}
	return resp, nil
}

func (s *promptService) DeletePrompt(ctx context.Context, id uint) error {
	if err := s.promptRepo.Delete(ctx, id); err != nil {
		return notFoundOr(err, "delete prompt %d", id)
	}
	log.Info().Uint("promptID", id).Msg("Prompt and its submissions deleted")
	return nil
}
