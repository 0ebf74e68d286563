package v1

import (
	"net/http"
	"strconv"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application ledger routes
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	apps := protected.Group("/applications")
	{
		apps.GET("", handler.ListMine)
		apps.POST("", handler.Apply)
		apps.GET("/employer", handler.ListForMyJobs)
		apps.GET("/filter", handler.ListMineFiltered)
		apps.PUT("/status/:id", handler.UpdateStatus)
	}
}

type ApplyRequest struct {
	JobID int64 `json:"job" binding:"required"`
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Creates an application with status "Under Review". A user can
// @Description  apply to a given job at most once and never to their own posting.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      ApplyRequest  true  "Target job"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	callerID := c.GetInt64(string(domain.KeyUserID))

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(firstValidationMessage(err)))
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), callerID, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// ListMine godoc
// @Summary      List own applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	callerID := c.GetInt64(string(domain.KeyUserID))

	applications, err := h.applicationUC.ListMyApplications(c.Request.Context(), callerID, "")
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListMineFiltered godoc
// @Summary      List own applications filtered by status
// @Tags         applications
// @Produce      json
// @Param        status  query     string  true  "Status filter"
// @Success      200     {object}  response.Response{data=[]domain.Application}
// @Failure      400     {object}  response.Response
// @Router       /applications/filter [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMineFiltered(c *gin.Context) {
	callerID := c.GetInt64(string(domain.KeyUserID))

	applications, err := h.applicationUC.ListMyApplications(c.Request.Context(), callerID, c.Query("status"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListForMyJobs godoc
// @Summary      List applications on own postings
// @Description  The employer view: every application against a job the
// @Description  caller authored.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      401  {object}  response.Response
// @Router       /applications/employer [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListForMyJobs(c *gin.Context) {
	callerID := c.GetInt64(string(domain.KeyUserID))

	applications, err := h.applicationUC.ListApplicationsForMyJobs(c.Request.Context(), callerID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

type UpdateStatusRequest struct {
	Status string `json:"application_status" binding:"required"`
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Only the author of the application's job may transition
// @Description  status. Any defined status may be set from any other.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                  true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/status/{id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	callerID := c.GetInt64(string(domain.KeyUserID))

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid application ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(firstValidationMessage(err)))
		return
	}

	if err := h.applicationUC.UpdateStatus(c.Request.Context(), callerID, id, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
