package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/resumehub/resume-api/internal/core/domain"
	"github.com/resumehub/resume-api/internal/core/ports"
)

type ResumeHandler struct {
	resumeService ports.ResumeService
}

func NewResumeHandler(resumeService ports.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Experience is bound as-is; negative or implausible values pass through, as
// does any skills string. Only presence and JSON types are checked.
type createResumeRequest struct {
	Name       string `json:"name"   validate:"required"`
	Email      string `json:"email"  validate:"required"`
	Skills     string `json:"skills" validate:"required"`
	Experience int    `json:"experience"`
}

// Create stores a new resume record.
//
// @Summary      Add a resume
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createResumeRequest  true  "Resume fields"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Router       /resumes [post]
func (h *ResumeHandler) Create(c echo.Context) error {
	var req createResumeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resume := &domain.Resume{
		Name:       req.Name,
		Email:      req.Email,
		Skills:     req.Skills,
		Experience: req.Experience,
	}
	if _, err := h.resumeService.Create(c.Request().Context(), resume); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Resume added"})
}

// List returns all resume records in insertion order.
//
// @Summary      List resumes
// @Tags         resumes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Resume
// @Failure      401  {object}  map[string]string
// @Router       /resumes [get]
func (h *ResumeHandler) List(c echo.Context) error {
	resumes, err := h.resumeService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resumes)
}
