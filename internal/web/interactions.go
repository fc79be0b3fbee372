package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Zachkp/cosmic-portfolio/internal/analytics"
	"github.com/Zachkp/cosmic-portfolio/internal/contact"
	"github.com/Zachkp/cosmic-portfolio/internal/reveal"
	"github.com/Zachkp/cosmic-portfolio/internal/splash"
)

func (s *Server) splashEnter(c *gin.Context) {
	seq, ok := currentVisit(c).Splash()
	if !ok {
		c.String(http.StatusConflict, "splash is not mounted")
		return
	}
	if !seq.Enter() {
		s.log.Debug("splash entry ignored", zap.Stringer("phase", seq.Phase()))
	}
	renderSplashState(c, seq.Snapshot())
}

func (s *Server) splashState(c *gin.Context) {
	seq, ok := currentVisit(c).Splash()
	if !ok {
		c.String(http.StatusConflict, "splash is not mounted")
		return
	}
	renderSplashState(c, seq.Snapshot())
}

// renderSplashState answers a poll. Once the sequence has handed off the
// browser is told to follow with an HX-Redirect.
func renderSplashState(c *gin.Context, snap splash.Snapshot) {
	if snap.Route != "" {
		c.Header("HX-Redirect", snap.Route)
	}
	c.Negotiate(http.StatusOK, gin.Negotiate{
		Offered:  []string{gin.MIMEHTML, gin.MIMEJSON},
		HTMLName: "splash-state",
		Data:     snap,
	})
}

type revealRequest struct {
	Entries []reveal.Entry `json:"entries" binding:"required"`
}

type revealResponse struct {
	Revealed []string                `json:"revealed"`
	Styles   map[string]reveal.Style `json:"styles"`
}

// revealSections applies intersection beacons to the mounted page.
func (s *Server) revealSections(c *gin.Context) {
	var req revealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m := currentVisit(c).Current()
	if m == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no page is mounted"})
		return
	}
	resp := revealResponse{
		Revealed: m.Reveal.Intersect(req.Entries...),
		Styles:   make(map[string]reveal.Style),
	}
	if resp.Revealed == nil {
		resp.Revealed = []string{}
	}
	for _, id := range m.Reveal.Sections() {
		resp.Styles[id] = m.Reveal.Style(id)
	}
	c.JSON(http.StatusOK, resp)
}

type contactForm struct {
	Name        string `form:"name" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	Company     string `form:"company"`
	ProjectType string `form:"projectType" binding:"required"`
	Budget      string `form:"budget" binding:"required"`
	Timeline    string `form:"timeline" binding:"required"`
	Message     string `form:"message" binding:"required"`
	Newsletter  bool   `form:"newsletter"`
	Urgency     string `form:"urgency"`
}

func (f contactForm) fields() contact.Fields {
	out := contact.EmptyFields()
	out[contact.FieldName] = f.Name
	out[contact.FieldEmail] = f.Email
	out[contact.FieldCompany] = f.Company
	out[contact.FieldProjectType] = f.ProjectType
	out[contact.FieldBudget] = f.Budget
	out[contact.FieldTimeline] = f.Timeline
	out[contact.FieldMessage] = f.Message
	if f.Newsletter {
		out[contact.FieldNewsletter] = "on"
	}
	if f.Urgency != "" {
		out[contact.FieldUrgency] = f.Urgency
	}
	return out
}

func (s *Server) contactSubmit(c *gin.Context) {
	sim, ok := currentVisit(c).Contact()
	if !ok {
		c.String(http.StatusConflict, "contact form is not mounted")
		return
	}
	// Rejections still answer 200 so htmx swaps the panel in place.
	var form contactForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "contact-panel",
			contactPanel(contact.Idle, form.fields(), bindingErrors(err)))
		return
	}
	if sim.Status() == contact.Idle {
		sim.SetAll(form.fields())
		sim.Submit()
	}
	c.HTML(http.StatusOK, "contact-panel", contactPanel(sim.Status(), sim.Fields(), nil))
}

func (s *Server) contactStatus(c *gin.Context) {
	sim, ok := currentVisit(c).Contact()
	if !ok {
		c.String(http.StatusConflict, "contact form is not mounted")
		return
	}
	c.HTML(http.StatusOK, "contact-panel", contactPanel(sim.Status(), sim.Fields(), nil))
}

func (s *Server) contactDismiss(c *gin.Context) {
	sim, ok := currentVisit(c).Contact()
	if !ok {
		c.String(http.StatusConflict, "contact form is not mounted")
		return
	}
	sim.Dismiss()
	c.HTML(http.StatusOK, "contact-panel", contactPanel(sim.Status(), sim.Fields(), nil))
}

// bindingErrors names the fields that failed validation.
func bindingErrors(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "email":
			out = append(out, fe.Field()+" must be a valid email address")
		default:
			out = append(out, fe.Field()+" is required")
		}
	}
	return out
}

func (s *Server) stats(store *analytics.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{"active_visits": s.visits.Len()}
		if store != nil {
			st, err := store.Stats(c.Request.Context())
			if err != nil {
				s.log.Warn("load visitor stats", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
				return
			}
			resp["analytics"] = st
		}
		c.JSON(http.StatusOK, resp)
	}
}
