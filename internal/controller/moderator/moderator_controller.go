package moderator

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scribeset/internal/auth"
	"github.com/lshigami/scribeset/internal/controller"
	"github.com/lshigami/scribeset/internal/dto"
	"github.com/lshigami/scribeset/internal/model"
	"github.com/lshigami/scribeset/internal/service"
	"github.com/rs/zerolog/log"
)

type ModeratorController struct {
	promptService     service.PromptService
	submissionService service.SubmissionService
	moderationService service.ModerationService
	archiver          service.DatasetArchiver
}

func NewModeratorController(
	ps service.PromptService,
	ss service.SubmissionService,
	ms service.ModerationService,
	archiver service.DatasetArchiver,
) *ModeratorController {
	return &ModeratorController{
		promptService:     ps,
		submissionService: ss,
		moderationService: ms,
		archiver:          archiver,
	}
}

func moderatorID(ctx *gin.Context) (uint, bool) {
	id, ok := auth.CurrentModerator(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication credentials were not provided."})
		return 0, false
	}
	return id.ID, true
}

// ListPending godoc
// @Summary List pending submissions
// @Tags Moderators
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.ModeratorSubmissionResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /moderator/pending/ [get]
func (c *ModeratorController) ListPending(ctx *gin.Context) {
	submissions, err := c.submissionService.ListPending(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to retrieve pending submissions")
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// ListSubmissions godoc
// @Summary List submissions
// @Description Lists every submission, optionally filtered by status.
// @Tags Moderators
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, verified or unverified"
// @Success 200 {array} dto.ModeratorSubmissionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /moderator/submissions/ [get]
func (c *ModeratorController) ListSubmissions(ctx *gin.Context) {
	var status *model.SubmissionStatus
	if raw, ok := ctx.GetQuery("status"); ok {
		s := model.SubmissionStatus(raw)
		status = &s
	}
	submissions, err := c.submissionService.ListSubmissions(ctx.Request.Context(), status)
	if err != nil {
		controller.Fail(ctx, err, "Failed to retrieve submissions")
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// Review godoc
// @Summary Review a submission
// @Description Partially updates a submission's status and notes. Setting the status records the reviewing moderator.
// @Tags Moderators
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Submission ID"
// @Param review body dto.ReviewRequest true "Fields to update"
// @Success 200 {object} dto.ModeratorSubmissionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /moderator/review/{id}/ [patch]
func (c *ModeratorController) Review(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	modID, ok := moderatorID(ctx)
	if !ok {
		return
	}
	var req dto.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.moderationService.Review(ctx.Request.Context(), id, req, modID)
	if err != nil {
		controller.Fail(ctx, err, "Failed to review submission")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// BulkReview godoc
// @Summary Review many submissions at once
// @Description Sets the same status on every listed submission. Unknown IDs are ignored.
// @Tags Moderators
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param review body dto.BulkReviewRequest true "Submission IDs and target status"
// @Success 200 {object} dto.BulkReviewResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /moderator/review/bulk/ [post]
func (c *ModeratorController) BulkReview(ctx *gin.Context) {
	modID, ok := moderatorID(ctx)
	if !ok {
		return
	}
	var req dto.BulkReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	updated, err := c.moderationService.SetStatusBulk(ctx.Request.Context(), req.IDs, model.SubmissionStatus(req.Status), modID)
	if err != nil {
		controller.Fail(ctx, err, "Failed to review submissions")
		return
	}
	ctx.JSON(http.StatusOK, dto.BulkReviewResponse{Updated: updated})
}

// DownloadVerified godoc
// @Summary Download the verified dataset
// @Description Streams a zip archive with labels.csv and one image per verified submission.
// @Tags Moderators
// @Security BearerAuth
// @Produce application/zip
// @Success 200 {file} file
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "No verified submissions"
// @Router /download/verified-submissions/ [get]
func (c *ModeratorController) DownloadVerified(ctx *gin.Context) {
	dataset, err := c.archiver.Prepare(ctx.Request.Context(), model.StatusVerified)
	if err != nil {
		msg := "Failed to prepare dataset archive"
		if errors.Is(err, service.ErrEmptyArchive) {
			msg = "No verified submissions to download."
		}
		controller.Fail(ctx, err, msg)
		return
	}

	ctx.Header("Content-Type", "application/zip")
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, service.ArchiveFileName))
	ctx.Status(http.StatusOK)

	if _, err := dataset.Write(ctx.Request.Context(), ctx.Writer); err != nil {
		// headers are already sent, the client sees a truncated archive
		log.Error().Err(err).Int("submissions", dataset.Len()).Msg("DownloadVerified: archive stream aborted")
	}
}

// RegisterRoutes mounts the moderator endpoints behind requireModerator.
func (c *ModeratorController) RegisterRoutes(r gin.IRouter, requireModerator gin.HandlerFunc) {
	mod := r.Group("/moderator", requireModerator)
	{
		mod.GET("/pending/", c.ListPending)
		mod.GET("/submissions/", c.ListSubmissions)
		mod.PATCH("/review/:id/", c.Review)
		mod.POST("/review/bulk/", c.BulkReview)
		mod.POST("/prompts/", c.CreatePrompt)
		mod.GET("/prompts/", c.ListPrompts)
		mod.DELETE("/prompts/:id/", c.DeletePrompt)
	}
	r.GET("/download/verified-submissions/", requireModerator, c.DownloadVerified)
}

// CreatePrompt godoc
// @Summary Create a prompt
// @Tags Prompts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param prompt body dto.PromptCreateRequest true "Prompt text and optional priority"
// @Success 201 {object} dto.PromptSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /moderator/prompts/ [post]
func (c *ModeratorController) CreatePrompt(ctx *gin.Context) {
	var req dto.PromptCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.promptService.CreatePrompt(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, err, "Failed to create prompt")
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ListPrompts godoc
// @Summary List prompts with submission counts
// @Tags Prompts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.PromptSummaryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /moderator/prompts/ [get]
func (c *ModeratorController) ListPrompts(ctx *gin.Context) {
	prompts, err := c.promptService.ListPrompts(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "Failed to retrieve prompts")
		return
	}
	ctx.JSON(http.StatusOK, prompts)
}

// DeletePrompt godoc
// @Summary Delete a prompt
// @Description Removes the prompt together with all of its submissions.
// @Tags Prompts
// @Security BearerAuth
// @Param id path int true "Prompt ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /moderator/prompts/{id}/ [delete]
func (c *ModeratorController) DeletePrompt(ctx *gin.Context) {
	id, ok := controller.ParseID(ctx, "id")
	if !ok {
		return
	}
	if err := c.promptService.DeletePrompt(ctx.Request.Context(), id); err != nil {
		controller.Fail(ctx, err, "Failed to delete prompt")
		return
	}
	ctx.Status(http.StatusNoContent)
}
