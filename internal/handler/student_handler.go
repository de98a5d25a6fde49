package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/edusight/dropsight-backend/internal/model"
	"github.com/edusight/dropsight-backend/internal/report"
	"github.com/edusight/dropsight-backend/internal/response"
	"github.com/edusight/dropsight-backend/internal/service"
	"github.com/edusight/dropsight-backend/internal/validator"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// StudentHandler handles student record endpoints.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Create godoc
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			map[string]string{"name": "name must not be blank"})
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"student": student})
}

// List godoc
// GET /api/v1/students?search=&risk=&sort_by=&order=&page=&per_page=
func (h *StudentHandler) List(c *gin.Context) {
	tier, ok := parseTierFilter(c.Query("risk"))
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidTier)
		return
	}

	page, perPage, ok := parsePaging(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPage)
		return
	}

	q := service.ListQuery{
		Search:    c.Query("search"),
		Tier:      tier,
		SortKey:   report.SortKey(c.DefaultQuery("sort_by", string(report.SortByCreatedAt))),
		Direction: report.Direction(c.DefaultQuery("order", string(report.Desc))),
		Page:      page,
		PerPage:   perPage,
	}

	result, err := h.studentService.List(c.Request.Context(), q)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidSortKey):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidSortKey)
		case errors.Is(err, report.ErrInvalidDirection):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidDirection)
		case errors.Is(err, report.ErrInvalidPageSize), errors.Is(err, report.ErrInvalidPageIndex):
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPage)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	totalPages := (result.TotalItems + perPage - 1) / perPage
	response.SuccessWithPagination(c, http.StatusOK,
		gin.H{"students": result.Students, "summary": result.Summary},
		&response.Pagination{
			Page:       page,
			PerPage:    perPage,
			TotalItems: result.TotalItems,
			TotalPages: totalPages,
		},
	)
}

// Summary godoc
// GET /api/v1/students/summary
func (h *StudentHandler) Summary(c *gin.Context) {
	sum, err := h.studentService.Summary(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": sum})
}

// PreviewRisk godoc
// POST /api/v1/students/preview-risk
// Scores raw metrics without persisting, for live form previews.
func (h *StudentHandler) PreviewRisk(c *gin.Context) {
	var req model.PreviewRiskRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"preview": h.studentService.Preview(&req)})
}

// parseTierFilter maps the risk query param to a tier filter. Empty or
// "all" means no filter; anything else must be an exact tier.
func parseTierFilter(raw string) (model.RiskTier, bool) {
	if raw == "" || strings.EqualFold(raw, "all") {
		return "", true
	}
	tier := model.RiskTier(raw)
	return tier, tier.Valid()
}

func parsePaging(c *gin.Context) (page, perPage int, ok bool) {
	var err error

	page = 1
	if raw := c.Query("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil || page < 1 {
			return 0, 0, false
		}
	}

	perPage = defaultPerPage
	if raw := c.Query("per_page"); raw != "" {
		if perPage, err = strconv.Atoi(raw); err != nil || perPage < 1 {
			return 0, 0, false
		}
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage, true
}
