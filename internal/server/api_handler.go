package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/scotty/internal/domain"
	"github.com/alexanderramin/scotty/internal/service"
)

type apiHandler struct {
	recommend service.RecommendService
	export    service.ExportService
	interests service.InterestService
	history   service.HistoryService
	catalog   service.CatalogService
}

type recommendationBody struct {
	Interests   string              `json:"interests"`
	PastCourses []string            `json:"past_courses"`
	Hours       *domain.HoursRange  `json:"hours"`
	Rating      *domain.RatingRange `json:"rating"`
	SkipHistory bool                `json:"skip_history"`
}

type recommendationResponse struct {
	RunID     string                `json:"run_id,omitempty"`
	Query     string                `json:"query"`
	Answer    string                `json:"answer"`
	ParsePath domain.ParsePath      `json:"parse_path"`
	Courses   []domain.CourseRecord `json:"courses"`
	Notice    string                `json:"notice,omitempty"`
}

type runResponse struct {
	ID        string                `json:"id"`
	Query     string                `json:"query"`
	Interests string                `json:"interests"`
	Answer    string                `json:"answer"`
	ParsePath domain.ParsePath      `json:"parse_path"`
	Notice    string                `json:"notice,omitempty"`
	Source    domain.RunSource      `json:"source"`
	Courses   []domain.CourseRecord `json:"courses"`
	CreatedAt string                `json:"created_at"`
}

func (h *apiHandler) Recommend(c *gin.Context) {
	var body recommendationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, badRequest("invalid request body: "+err.Error()))
		return
	}

	req := domain.NewRecommendationRequest(body.Interests, body.PastCourses...)
	if body.Hours != nil {
		req.Hours = *body.Hours
	}
	if body.Rating != nil {
		req.Rating = *body.Rating
	}

	res, err := h.recommend.Recommend(c.Request.Context(), service.RecommendRequest{
		RecommendationRequest: req,
		Source:                domain.SourceAPI,
		SkipHistory:           body.SkipHistory,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if res.HistoryErr != nil {
		_ = c.Error(res.HistoryErr)
	}

	courses := res.Courses
	if courses == nil {
		courses = []domain.CourseRecord{}
	}
	respondJSON(c, http.StatusOK, recommendationResponse{
		RunID:     res.RunID,
		Query:     res.Query,
		Answer:    res.Answer,
		ParsePath: res.ParsePath,
		Courses:   courses,
		Notice:    res.Notice,
	})
}

// Calendar renders one record as a downloadable .ics file.
func (h *apiHandler) Calendar(c *gin.Context) {
	var rec domain.CourseRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		respondError(c, badRequest("invalid course record: "+err.Error()))
		return
	}
	if rec.Title == "" {
		respondError(c, badRequest("course title is required"))
		return
	}

	cal, err := h.export.Render(c.Request.Context(), rec)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", cal.FileName))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Content))
}

func (h *apiHandler) Interests(c *gin.Context) {
	fh, err := c.FormFile("resume")
	if err != nil {
		respondError(c, badRequest("missing 'resume' file"))
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	set, err := h.interests.FromDocument(c.Request.Context(), f, fh.Size)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{
		"interests": set.Terms(),
		"text":      set.String(),
	})
}

func (h *apiHandler) ListHistory(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, badRequest("limit must be a positive integer"))
			return
		}
		limit = n
	}

	runs, err := h.history.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]runResponse, len(runs))
	for i, r := range runs {
		out[i] = toRunResponse(r)
	}
	respondJSON(c, http.StatusOK, out)
}

func (h *apiHandler) GetHistory(c *gin.Context) {
	run, err := h.history.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, toRunResponse(run))
}

func (h *apiHandler) ListCourses(c *gin.Context) {
	labels, err := h.catalog.Labels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if labels == nil {
		labels = []string{}
	}
	respondJSON(c, http.StatusOK, labels)
}

func toRunResponse(r *domain.RecommendationRun) runResponse {
	courses := r.Courses
	if courses == nil {
		courses = []domain.CourseRecord{}
	}
	return runResponse{
		ID:        r.ID,
		Query:     r.Query,
		Interests: r.Interests,
		Answer:    r.RawResponse,
		ParsePath: r.ParsePath,
		Notice:    r.Notice,
		Source:    r.Source,
		Courses:   courses,
		CreatedAt: r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
