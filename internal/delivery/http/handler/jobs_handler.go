package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ableworks/ableworks-backend/internal/usecase/jobsearch"
	"github.com/ableworks/ableworks-backend/internal/usecase/simplify"
	"github.com/ableworks/ableworks-backend/internal/usecase/training"
)

// JobsHandler serves the three generative endpoints. Upstream failure never
// surfaces here: the usecases resolve it to fallback content, so these
// routes return 400 for malformed requests and 200 for everything else.
type JobsHandler struct {
	searchUseCase   *jobsearch.UseCase
	simplifyUseCase *simplify.UseCase
	trainingUseCase *training.UseCase
}

func NewJobsHandler(
	searchUseCase *jobsearch.UseCase,
	simplifyUseCase *simplify.UseCase,
	trainingUseCase *training.UseCase,
) *JobsHandler {
	return &JobsHandler{
		searchUseCase:   searchUseCase,
		simplifyUseCase: simplifyUseCase,
		trainingUseCase: trainingUseCase,
	}
}

// SearchJobs handles POST /jobs/search
func (h *JobsHandler) SearchJobs(c *gin.Context) {
	var req jobsearch.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "location is required",
		})
		return
	}

	c.JSON(http.StatusOK, h.searchUseCase.Search(c.Request.Context(), req))
}

// SimplifyJob handles POST /jobs/simplify
func (h *JobsHandler) SimplifyJob(c *gin.Context) {
	var req simplify.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "jobDescription is required",
		})
		return
	}

	c.JSON(http.StatusOK, h.simplifyUseCase.Simplify(c.Request.Context(), req))
}

// TrainingPlan handles POST /jobs/training-plan
func (h *JobsHandler) TrainingPlan(c *gin.Context) {
	var req training.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}
	if !req.HasGoal() {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "jobTitle or currentSkills is required",
		})
		return
	}

	c.JSON(http.StatusOK, h.trainingUseCase.Plan(c.Request.Context(), req))
}
