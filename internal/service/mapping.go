package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/scribeset/internal/dto"
	"github.com/lshigami/scribeset/internal/model"
)

const anonymousModerator = "Anonymous"

func toModeratorResponse(s *model.Submission) dto.ModeratorSubmissionResponse {
	var resp dto.ModeratorSubmissionResponse
	_ = copier.Copy(&resp, s)
	resp.PromptText = s.Prompt.Text
	resp.Status = string(s.Status)
	resp.SubmittedBy = anonymousModerator
	if s.VerifiedBy != nil {
		resp.SubmittedBy = s.VerifiedBy.Username
	}
	return resp
}

func toModeratorResponses(submissions []model.Submission) []dto.ModeratorSubmissionResponse {
	resp := make([]dto.ModeratorSubmissionResponse, 0, len(submissions))
	for i := range submissions {
		resp = append(resp, toModeratorResponse(&submissions[i]))
	}
	return resp
}
