package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/cosmic-portfolio/internal/analytics"
	"github.com/Zachkp/cosmic-portfolio/internal/clock/clocktest"
	"github.com/Zachkp/cosmic-portfolio/internal/content"
	"github.com/Zachkp/cosmic-portfolio/internal/reveal"
	"github.com/Zachkp/cosmic-portfolio/internal/splash"
	"github.com/Zachkp/cosmic-portfolio/internal/visit"
)

type harness struct {
	srv    *Server
	clock  *clocktest.Fake
	visits *visit.Registry
}

func newHarness(t *testing.T, stats *analytics.Store) *harness {
	t.Helper()
	c := clocktest.New()
	store, err := content.Load()
	require.NoError(t, err)
	reg := visit.NewRegistry(c, time.Hour, visit.Options{
		Splash: splash.Config{HandOffDelay: 500 * time.Millisecond},
	}, nil)
	t.Cleanup(reg.Close)

	srv, err := New(Deps{Content: store, Visits: reg, Analytics: stats, Mode: gin.TestMode})
	require.NoError(t, err)
	return &harness{srv: srv, clock: c, visits: reg}
}

// browser keeps the visit cookie between requests like a real browser.
type browser struct {
	t      *testing.T
	h      http.Handler
	cookie *http.Cookie
}

func (h *harness) browser(t *testing.T) *browser {
	return &browser{t: t, h: h.srv.Handler()}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	rec := httptest.NewRecorder()
	b.h.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == visitCookie {
			b.cookie = ck
		}
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func (b *browser) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return b.do(req)
}

func TestPagesRender(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	for path, want := range map[string]string{
		"/":                    "Enter the cosmic realm",
		"/home":                "Vikaskumar Dane",
		"/about":               "AWS Certified Solutions Architect",
		"/skills-matrix":       "All Skills",
		"/projects-showcase":   "Showing 6 of 6 projects",
		"/experience-timeline": "Capgemini",
		"/contact":             "Frequently asked",
	} {
		rec := b.get(path)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), want, path)
	}
	require.NotNil(t, b.cookie)
	assert.True(t, b.cookie.HttpOnly)
	assert.Equal(t, 1, h.visits.Len())
}

func TestNotFound(t *testing.T) {
	h := newHarness(t, nil)

	rec := h.browser(t).get("/black-hole")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "beyond the event horizon")
}

func TestSplashHandsOffToHome(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `style="cursor: none; overflow: hidden;"`)

	rec = b.post("/splash/enter", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "phase-sequencing")

	rec = b.post("/splash/enter", nil)
	assert.Contains(t, rec.Body.String(), "phase-sequencing", "a second entry is ignored")

	h.clock.Advance(5900 * time.Millisecond)
	rec = b.get("/splash/state")
	assert.Empty(t, rec.Header().Get("HX-Redirect"))
	assert.Contains(t, rec.Body.String(), "phase-completed")

	h.clock.Advance(100 * time.Millisecond)
	req := httptest.NewRequest(http.MethodGet, "/splash/state", nil)
	req.Header.Set("Accept", "application/json")
	rec = b.do(req)
	assert.Equal(t, "/home", rec.Header().Get("HX-Redirect"))

	var snap struct {
		Phase   string   `json:"phase"`
		Route   string   `json:"route"`
		Started []string `json:"started"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "completed", snap.Phase)
	assert.Equal(t, "/home", snap.Route)
	assert.Len(t, snap.Started, 6)

	v, ok := h.visits.Get(b.cookie.Value)
	require.True(t, ok)
	assert.Equal(t, []string{"/home"}, v.Navigations())
	assert.Equal(t, "cursor: auto; overflow: auto;", v.Body.Style())
}

func TestLeavingSplashCancelsHandOff(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	b.get("/")
	b.post("/splash/enter", nil)
	h.clock.Advance(3 * time.Second)
	b.get("/about")
	h.clock.Advance(10 * time.Second)

	v, ok := h.visits.Get(b.cookie.Value)
	require.True(t, ok)
	assert.Empty(t, v.Navigations())
	assert.Zero(t, h.clock.Pending())

	rec := b.get("/splash/state")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSplashEnterRequiresMount(t *testing.T) {
	h := newHarness(t, nil)

	rec := h.browser(t).post("/splash/enter", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestStrayRequestKeepsMountedPage(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	assert.Contains(t, b.get("/").Body.String(), `rel="icon" type="image/svg+xml" href="/static/favicon.svg"`)
	assert.Equal(t, http.StatusNotFound, b.get("/favicon.ico").Code)

	rec := b.post("/splash/enter", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "phase-sequencing")

	b.get("/home")
	b.get("/apple-touch-icon.png")
	rec = b.postJSON("/reveal", `{"entries":[{"id":"hero","ratio":1}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Revealed []string `json:"revealed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"hero"}, resp.Revealed)

	v, ok := h.visits.Get(b.cookie.Value)
	require.True(t, ok)
	assert.Equal(t, "/home", v.Current().Route)
}

func TestOnlyPagesCreateVisits(t *testing.T) {
	h := newHarness(t, nil)

	for _, rec := range []*httptest.ResponseRecorder{
		h.browser(t).post("/splash/enter", nil),
		h.browser(t).get("/splash/state"),
		h.browser(t).postJSON("/reveal", `{"entries":[]}`),
		h.browser(t).post("/contact", janeDoe()),
		h.browser(t).get("/contact/status"),
	} {
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	}
	h.browser(t).get("/black-hole")
	h.browser(t).get("/projects-showcase/2")
	assert.Zero(t, h.visits.Len())

	h.browser(t).get("/about")
	assert.Equal(t, 1, h.visits.Len())
}

func TestProjectsFilter(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	body := b.get("/projects-showcase?category=Frontend").Body.String()
	assert.Contains(t, body, "Showing 1 of 6 projects (filtered)")
	assert.Contains(t, body, "Task Management App")
	assert.NotContains(t, body, "E-Commerce Platform")

	body = b.get("/projects-showcase?category=all&technology=All").Body.String()
	assert.Contains(t, body, "Showing 6 of 6 projects")
	assert.NotContains(t, body, "(filtered)")

	body = b.get("/projects-showcase?technology=TensorFlow").Body.String()
	assert.Contains(t, body, "Showing 1 of 6 projects (filtered)")
}

func TestSkillsFilter(t *testing.T) {
	h := newHarness(t, nil)

	body := h.browser(t).get("/skills-matrix?category=database").Body.String()
	assert.Contains(t, body, "PostgreSQL")
	assert.NotContains(t, body, "<h3>React.js</h3>")
}

func TestProjectDetail(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	rec := b.get("/projects-showcase/2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Task Management App")

	assert.Equal(t, http.StatusNotFound, b.get("/projects-showcase/99").Code)
	assert.Equal(t, http.StatusNotFound, b.get("/projects-showcase/abc").Code)
}

func TestExperienceActiveEntry(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	body := b.get("/experience-timeline").Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="entry-detail"`))
	assert.Contains(t, body, "ROSA")

	assert.Contains(t, body, "Lines of Code")
	assert.Contains(t, body, "Users Impacted")

	body = b.get("/experience-timeline?active=2").Body.String()
	assert.Equal(t, 1, strings.Count(body, `class="entry-detail"`))
	assert.NotContains(t, body, "reduced costs by 30%")
}

func janeDoe() url.Values {
	return url.Values{
		"name":        {"Jane Doe"},
		"email":       {"jane@x.com"},
		"projectType": {"web-app"},
		"budget":      {"10k-25k"},
		"timeline":    {"1month"},
		"message":     {"Build a site"},
	}
}

func TestContactSubmission(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)
	b.get("/contact")

	rec := b.post("/contact", janeDoe())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sending your message")

	other := janeDoe()
	other.Set("name", "John Roe")
	rec = b.post("/contact", other)
	assert.Equal(t, http.StatusOK, rec.Code, "htmx only swaps 2xx responses")
	assert.Contains(t, rec.Body.String(), "Sending your message")
	assert.NotContains(t, rec.Body.String(), "John Roe")

	h.clock.Advance(2 * time.Second)
	assert.Contains(t, b.get("/contact/status").Body.String(), "Message sent!")

	h.clock.Advance(3 * time.Second)
	body := b.get("/contact/status").Body.String()
	assert.Contains(t, body, `name="name" required value=""`)
	assert.NotContains(t, body, "Build a site")
}

func TestContactInfo(t *testing.T) {
	h := newHarness(t, nil)

	body := h.browser(t).get("/contact").Body.String()
	assert.Contains(t, body, "Currently Available")
	assert.Contains(t, body, "<dt>Response Time</dt><dd>Within 24 hours</dd>")
	assert.Contains(t, body, ">LinkedIn</a>")
	assert.Contains(t, body, "Schedule Call")
}

func TestContactDismiss(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)
	b.get("/contact")
	b.post("/contact", janeDoe())
	h.clock.Advance(2 * time.Second)

	body := b.post("/contact/dismiss", nil).Body.String()
	assert.Contains(t, body, `name="name" required value=""`)
	assert.Zero(t, h.clock.Pending())
}

func TestContactValidation(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)
	b.get("/contact")

	form := janeDoe()
	form.Del("email")
	rec := b.post("/contact", form)
	assert.Equal(t, http.StatusOK, rec.Code, "htmx only swaps 2xx responses")
	assert.Contains(t, rec.Body.String(), "Email is required")
	assert.Contains(t, rec.Body.String(), `value="Jane Doe"`)

	form.Set("email", "not-an-email")
	rec = b.post("/contact", form)
	assert.Contains(t, rec.Body.String(), "Email must be a valid email address")
	assert.Zero(t, h.clock.Pending())
}

func TestRevealIsOneShot(t *testing.T) {
	h := newHarness(t, nil)
	b := h.browser(t)

	body := b.get("/home").Body.String()
	assert.Contains(t, body, `data-reveal="hero" style="opacity: 0; transform: translateY(30px);"`)

	rec := b.postJSON("/reveal", `{"entries":[{"id":"hero","ratio":0.5},{"id":"mission","ratio":0.05}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Revealed []string                `json:"revealed"`
		Styles   map[string]reveal.Style `json:"styles"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"hero"}, resp.Revealed)
	assert.Equal(t, reveal.Style{Opacity: 1}, resp.Styles["hero"])
	assert.Equal(t, reveal.Style{Opacity: 0, TranslateY: reveal.HiddenOffset}, resp.Styles["mission"])

	rec = b.postJSON("/reveal", `{"entries":[{"id":"hero","ratio":1}]}`)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Revealed)

	assert.Equal(t, http.StatusBadRequest, b.postJSON("/reveal", `{`).Code)
}

func TestErrorBoundary(t *testing.T) {
	h := newHarness(t, nil)
	h.srv.engine.GET("/explode", func(*gin.Context) { panic("boom") })
	b := h.browser(t)

	rec := b.get("/explode")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred")

	assert.Equal(t, http.StatusOK, b.get("/healthz").Code)
}

func TestStats(t *testing.T) {
	store, err := analytics.Open(context.Background(), analytics.MemoryDSN, "salt", clocktest.New(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	h := newHarness(t, store)
	b := h.browser(t)
	b.get("/home")
	b.get("/about")
	b.get("/static/site.css")

	rec := b.get("/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		ActiveVisits int              `json:"active_visits"`
		Analytics    *analytics.Stats `json:"analytics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ActiveVisits)
	require.NotNil(t, resp.Analytics)
	assert.EqualValues(t, 2, resp.Analytics.TotalVisitors)
	assert.EqualValues(t, 1, resp.Analytics.UniqueVisitors)
}

func TestStaticAssets(t *testing.T) {
	h := newHarness(t, nil)

	rec := h.browser(t).get("/static/site.css")
	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "--nebula")

	rec = h.browser(t).get("/static/favicon.svg")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<svg")
}
