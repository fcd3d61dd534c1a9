package public

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/scribeset/internal/controller"
	"github.com/lshigami/scribeset/internal/dto"
	"github.com/lshigami/scribeset/internal/service"
	"github.com/rs/zerolog/log"
)

type PublicController struct {
	promptService     service.PromptService
	submissionService service.SubmissionService
	authService       service.AuthService
}

func NewPublicController(ps service.PromptService, ss service.SubmissionService, as service.AuthService) *PublicController {
	return &PublicController{
		promptService:     ps,
		submissionService: ss,
		authService:       as,
	}
}

// GetPrompt godoc
// @Summary Get a random prompt
// @Description Picks one prompt at random, weighted by priority / (submission count + 1).
// @Tags Contributors
// @Produce json
// @Success 200 {object} dto.PromptResponse
// @Failure 404 {object} dto.ErrorResponse "No prompts available"
// @Router /prompt/ [get]
func (c *PublicController) GetPrompt(ctx *gin.Context) {
	prompt, err := c.promptService.GetRandomPrompt(ctx.Request.Context())
	if err != nil {
		controller.Fail(ctx, err, "No prompts available.")
		return
	}
	ctx.JSON(http.StatusOK, prompt)
}

// CreateSubmission godoc
// @Summary Submit a handwriting sample
// @Description Uploads the image to the hosting service and records a pending submission.
// @Tags Contributors
// @Accept multipart/form-data
// @Produce json
// @Param prompt formData int true "Prompt ID"
// @Param image formData file true "Handwriting image"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or upload failure"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions/ [post]
func (c *PublicController) CreateSubmission(ctx *gin.Context) {
	var req dto.SubmissionCreateRequest
	if err := ctx.ShouldBind(&req); err != nil {
		log.Warn().Err(err).Msg("CreateSubmission: failed to bind form")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "No image provided"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Error opening the image"})
		return
	}
	defer file.Close()

	err = c.submissionService.CreateSubmission(ctx.Request.Context(), req.PromptID, file, fileHeader.Filename)
	if err != nil {
		msg := "Failed to create submission"
		if errors.Is(err, service.ErrUpstream) {
			msg = "Image upload failed."
		}
		controller.Fail(ctx, err, msg)
		return
	}
	ctx.JSON(http.StatusCreated, dto.MessageResponse{Message: "Submission successful."})
}

// Login godoc
// @Summary Moderator login
// @Description Exchanges moderator credentials for a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Moderator credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login/ [post]
func (c *PublicController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request body", Details: []string{err.Error()}})
		return
	}
	resp, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		controller.Fail(ctx, err, "Invalid username or password.")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func (c *PublicController) RegisterRoutes(r gin.IRouter) {
	r.GET("/prompt/", c.GetPrompt)
	r.POST("/submissions/", c.CreateSubmission)
	r.POST("/auth/login/", c.Login)
}
