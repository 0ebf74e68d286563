package v1

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job catalog routes. Reads are public, writes
// require a token.
func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	public.GET("/jobposting", handler.List)
	public.GET("/jobposting/:id", handler.GetDetails)
	public.GET("/jobs/search", handler.Search)

	protected.POST("/jobposting", handler.Create)
	protected.PUT("/jobposting/update/:id", handler.Update)
	protected.DELETE("/jobposting/delete/:id", handler.Delete)
}

// SalaryAmount accepts both a JSON number and a numeric string, normalizing
// to the string form stored by the catalog.
type SalaryAmount string

func (s *SalaryAmount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = SalaryAmount(strings.TrimSpace(str))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*s = SalaryAmount(num.String())
	return nil
}

type JobRequest struct {
	Title        string       `json:"job_title" binding:"required"`
	Company      string       `json:"job_company" binding:"required"`
	Location     string       `json:"job_location" binding:"required,max=100"`
	Setup        string       `json:"job_setup" binding:"required"`
	Type         string       `json:"job_type" binding:"required"`
	MinSalary    SalaryAmount `json:"min_salary" binding:"required,salary"`
	MaxSalary    SalaryAmount `json:"max_salary" binding:"required,salary"`
	Description  string       `json:"job_description"`
	Requirements string       `json:"job_requirements"`
	Benefits     string       `json:"job_benefits"`
}

func (r *JobRequest) toDomain() *domain.JobPosting {
	return &domain.JobPosting{
		Title:        r.Title,
		Company:      r.Company,
		Location:     r.Location,
		Setup:        r.Setup,
		Type:         r.Type,
		MinSalary:    string(r.MinSalary),
		MaxSalary:    string(r.MaxSalary),
		Description:  r.Description,
		Requirements: r.Requirements,
		Benefits:     r.Benefits,
	}
}

// Create godoc
// @Summary      Create a job posting
// @Description  The caller becomes the posting's author regardless of payload.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      JobRequest  true  "Job posting"
// @Success      201   {object}  response.Response{data=domain.JobPosting}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /jobposting [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(firstValidationMessage(err)))
		return
	}

	callerID := c.GetInt64(string(domain.KeyUserID))

	job := req.toDomain()
	if err := h.jobUC.CreateJob(c.Request.Context(), callerID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posting created", job)
}

// List godoc
// @Summary      List job postings
// @Description  All postings, newest first
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobposting [get]
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListJobs(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job posting list", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetDetails godoc
// @Summary      Get a job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job posting ID"
// @Success      200  {object}  response.Response{data=domain.JobPosting}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobposting/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	job, err := h.jobUC.GetJobDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job posting details", job)
}

// Search godoc
// @Summary      Search job postings by title
// @Description  Case-insensitive substring match, newest first. An empty
// @Description  query matches all postings.
// @Tags         jobs
// @Produce      json
// @Param        q          query     string  false  "Title query"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs/search [get]
func (h *JobHandler) Search(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.SearchJobs(c.Request.Context(), c.Query("q"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job search results", gin.H{
		"jobs":      jobs,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// Update godoc
// @Summary      Update a job posting
// @Description  Only the author may update. The author is re-pinned to the
// @Description  caller on every update.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id    path      int         true  "Job posting ID"
// @Param        body  body      JobRequest  true  "Job posting"
// @Success      200   {object}  response.Response{data=domain.JobPosting}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobposting/update/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(firstValidationMessage(err)))
		return
	}

	callerID := c.GetInt64(string(domain.KeyUserID))

	job := req.toDomain()
	job.ID = id

	if err := h.jobUC.UpdateJob(c.Request.Context(), callerID, job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job posting updated", job)
}

// Delete godoc
// @Summary      Delete a job posting
// @Description  The author may delete their own posting; an admin may delete
// @Description  any posting.
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job posting ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobposting/delete/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	callerID := c.GetInt64(string(domain.KeyUserID))
	callerRole := c.GetString(string(domain.KeyUserRole))

	if err := h.jobUC.DeleteJob(c.Request.Context(), callerID, callerRole, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job posting deleted", nil)
}
