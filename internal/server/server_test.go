package server

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/scotty/internal/advisor"
	"github.com/alexanderramin/scotty/internal/calendar"
	"github.com/alexanderramin/scotty/internal/db"
	"github.com/alexanderramin/scotty/internal/extract"
	"github.com/alexanderramin/scotty/internal/repository"
	"github.com/alexanderramin/scotty/internal/service"
	"github.com/alexanderramin/scotty/internal/testutil"
)

var fixedNow = time.Date(2025, 9, 10, 14, 30, 0, 0, time.UTC)

const courseJSON = `{"courses":[{"id":"15-440","title":"Distributed Systems","description":"Systems","day":"Tuesday","start_time":"10:00","end_time":"11:20","location":"GHC 4401"}]}`

type fixture struct {
	srv     *Server
	stub    *testutil.StubAdvisor
	history service.HistoryService
	uow     db.UnitOfWork
}

func newFixture(t *testing.T, stub *testutil.StubAdvisor) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	clock := testutil.FixedClock(fixedNow)
	history := service.NewHistoryService(repository.NewSQLiteRunRepo(database))

	srv := New(Deps{
		Advisor:   stub,
		Recommend: service.NewRecommendService(stub, uow, clock),
		Export:    service.NewExportService(calendar.NewGenerator(clock, calendar.Options{Location: time.UTC})),
		Interests: service.NewInterestService(extract.NewPDFExtractor()),
		History:   history,
		Catalog:   service.NewCatalogService(repository.NewSQLitePastCourseRepo(database), uow),
		Registry:  prometheus.NewRegistry(),
	})
	return &fixture{srv: srv, stub: stub, history: history, uow: uow}
}

func (f *fixture) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(w, req)
	return w
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestQuery_Success(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{Response: "Take 15-440."})

	w := f.do(jsonRequest(http.MethodPost, "/query", `{"query":"what next?"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp advisor.QueryResponse
	decode(t, w, &resp)
	assert.Equal(t, "Take 15-440.", resp.Response)
	assert.Equal(t, []string{"what next?"}, f.stub.Queries())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestQuery_MissingField(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{Response: "unused"})

	for _, body := range []string{`{}`, `{"query":""}`, `not json`} {
		w := f.do(jsonRequest(http.MethodPost, "/query", body))
		require.Equal(t, http.StatusBadRequest, w.Code, body)

		var resp advisor.ErrorResponse
		decode(t, w, &resp)
		assert.Equal(t, "Missing 'query' field in request", resp.Error)
	}
	assert.Empty(t, f.stub.Queries())
}

func TestQuery_AdvisorFailure(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{Err: advisor.ErrTimeout})

	w := f.do(jsonRequest(http.MethodPost, "/query", `{"query":"q"}`))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp advisor.ErrorResponse
	decode(t, w, &resp)
	assert.Equal(t, "Failed to process query", resp.Error)
	assert.Equal(t, advisor.ErrTimeout.Error(), resp.Details)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{Model: "gpt-4o"})

	w := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp advisor.HealthResponse
	decode(t, w, &resp)
	assert.Equal(t, advisor.HealthResponse{Status: "healthy", IndexLoaded: true, Model: "gpt-4o"}, resp)
}

func TestRemoteAdvisorAgainstServer(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{Response: courseJSON, Model: "llama3.2"})
	ts := httptest.NewServer(f.srv.Handler())
	defer ts.Close()

	remote, err := advisor.NewRemote(ts.URL+"/query", 5*time.Second)
	require.NoError(t, err)

	answer, err := remote.Answer(context.Background(), "recommend something")
	require.NoError(t, err)
	assert.Equal(t, courseJSON, answer)

	st := remote.Status(context.Background())
	assert.True(t, st.Ready)
	assert.Equal(t, "llama3.2", st.Model)
}

type recommendEnvelope struct {
	Data  recommendationResponse `json:"data"`
	Error *apiError              `json:"error"`
}

func TestRecommend_Structured(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{Response: courseJSON})

	w := f.do(jsonRequest(http.MethodPost, "/api/v1/recommendations",
		`{"interests":"distributed systems","past_courses":["15-213: Computer Systems"],"hours":{"min":8,"max":12}}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env recommendEnvelope
	decode(t, w, &env)
	assert.Nil(t, env.Error)
	assert.Equal(t, domainStructured, string(env.Data.ParsePath))
	require.Len(t, env.Data.Courses, 1)
	assert.Equal(t, "Distributed Systems", env.Data.Courses[0].Title)
	assert.Contains(t, env.Data.Query, "8–12 hours/week")
	assert.Contains(t, env.Data.Query, "between 3.5–5.0")
	require.NotEmpty(t, env.Data.RunID)

	run, err := f.history.Get(context.Background(), env.Data.RunID)
	require.NoError(t, err)
	assert.Equal(t, "api", string(run.Source))
}

const domainStructured = "structured"

func TestRecommend_Errors(t *testing.T) {
	tests := []struct {
		name   string
		stub   *testutil.StubAdvisor
		body   string
		status int
		code   string
	}{
		{"invalid json", &testutil.StubAdvisor{}, `{"interests":`, http.StatusBadRequest, "BAD_REQUEST"},
		{"missing interests", &testutil.StubAdvisor{}, `{"interests":""}`, http.StatusBadRequest, "BAD_REQUEST"},
		{"unavailable", &testutil.StubAdvisor{Err: advisor.ErrUnavailable}, `{"interests":"ai"}`, http.StatusServiceUnavailable, "ADVISOR_UNAVAILABLE"},
		{"timeout", &testutil.StubAdvisor{Err: advisor.ErrTimeout}, `{"interests":"ai"}`, http.StatusGatewayTimeout, "ADVISOR_TIMEOUT"},
		{"upstream", &testutil.StubAdvisor{Err: advisor.ErrUpstream}, `{"interests":"ai"}`, http.StatusBadGateway, "UPSTREAM_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.stub)
			w := f.do(jsonRequest(http.MethodPost, "/api/v1/recommendations", tt.body))
			require.Equal(t, tt.status, w.Code, w.Body.String())

			var env recommendEnvelope
			decode(t, w, &env)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestRecommend_NoStructuredData(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{Response: "no idea"})

	w := f.do(jsonRequest(http.MethodPost, "/api/v1/recommendations", `{"interests":"ai"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var env recommendEnvelope
	decode(t, w, &env)
	assert.Equal(t, "none", string(env.Data.ParsePath))
	assert.NotNil(t, env.Data.Courses)
	assert.Empty(t, env.Data.Courses)
	assert.NotEmpty(t, env.Data.Notice)
}

func TestCalendar_Download(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{})

	w := f.do(jsonRequest(http.MethodPost, "/api/v1/calendar",
		`{"id":"15-440","title":"Distributed Systems","day":"Thursday","start_time":"13:30","end_time":"14:50"}`))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "text/calendar; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Distributed_Systems.ics"`, w.Header().Get("Content-Disposition"))
	body := w.Body.String()
	assert.Contains(t, body, "BEGIN:VEVENT")
	assert.Contains(t, body, "DTSTART:20250911T133000")
	assert.Contains(t, body, "RRULE:FREQ=WEEKLY;COUNT=15;BYDAY=TH")
	assert.Contains(t, body, "LOCATION:to be determined")
}

func TestCalendar_InvalidRecord(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{})

	for _, body := range []string{
		`{"title":"Seminar","day":"Sunday","start_time":"10:00","end_time":"11:00"}`,
		`{"title":"Seminar","day":"Monday","start_time":"10am","end_time":"11:00"}`,
	} {
		w := f.do(jsonRequest(http.MethodPost, "/api/v1/calendar", body))
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, body)

		var env envelope
		decode(t, w, &env)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_RECORD", env.Error.Code)
	}
}

func multipartResume(t *testing.T, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interests", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestInterests_Upload(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{})

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	doc.Cell(150, 10, "Projects in Robotics and Computer Vision")
	var pdf bytes.Buffer
	require.NoError(t, doc.Output(&pdf))

	w := f.do(multipartResume(t, pdf.Bytes()))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env struct {
		Data struct {
			Interests []string `json:"interests"`
			Text      string   `json:"text"`
		} `json:"data"`
	}
	decode(t, w, &env)
	assert.Equal(t, []string{"computer vision", "robotics"}, env.Data.Interests)
	assert.Equal(t, "computer vision, robotics", env.Data.Text)
}

func TestInterests_NotAPDF(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{})

	w := f.do(multipartResume(t, []byte("just some text")))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var env envelope
	decode(t, w, &env)
	require.NotNil(t, env.Error)
	assert.Equal(t, "EXTRACTION_FAILED", env.Error.Code)
}

func TestInterests_MissingFile(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{})

	w := f.do(jsonRequest(http.MethodPost, "/api/v1/interests", `{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHistory(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{})
	ctx := context.Background()
	run := testutil.NewTestRun("q", testutil.WithCourses(testutil.NewTestCourse("Compilers")))
	require.NoError(t, f.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteRunRepo(tx).Create(ctx, run)
	}))

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []runResponse `json:"data"`
	}
	decode(t, w, &list)
	require.Len(t, list.Data, 1)
	assert.Equal(t, run.ID, list.Data[0].ID)
	assert.Equal(t, "Compilers", list.Data[0].Courses[0].Title)

	w = f.do(httptest.NewRequest(http.MethodGet, "/api/v1/history/"+run.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(httptest.NewRequest(http.MethodGet, "/api/v1/history/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(httptest.NewRequest(http.MethodGet, "/api/v1/history?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCourses(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{})

	w := f.do(httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []string `json:"data"`
	}
	decode(t, w, &env)
	assert.Len(t, env.Data, 3)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{})

	f.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	w := f.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t, &testutil.StubAdvisor{})

	req := httptest.NewRequest(http.MethodOptions, "/query", nil)
	req.Header.Set("Origin", "http://localhost:8501")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := f.do(req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
