package web

import (
	"errors"
	"maps"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/cosmic-portfolio/internal/contact"
	"github.com/Zachkp/cosmic-portfolio/internal/content"
	"github.com/Zachkp/cosmic-portfolio/internal/filter"
	"github.com/Zachkp/cosmic-portfolio/internal/reveal"
	"github.com/Zachkp/cosmic-portfolio/internal/splash"
	"github.com/Zachkp/cosmic-portfolio/internal/visit"
)

type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{Href: "/home", Label: "Home"},
	{Href: "/about", Label: "About"},
	{Href: "/skills-matrix", Label: "Skills"},
	{Href: "/projects-showcase", Label: "Projects"},
	{Href: "/experience-timeline", Label: "Experience"},
	{Href: "/contact", Label: "Contact"},
}

// Sections that fade in on scroll, per page.
var sections = map[string][]string{
	"/home":                {"hero", "mission", "highlights"},
	"/about":               {"story", "statement", "certifications"},
	"/skills-matrix":       {"skill-stats", "skill-grid"},
	"/projects-showcase":   {"project-stats", "project-grid"},
	"/experience-timeline": {"timeline", "timeline-stats"},
	"/contact":             {"contact-form", "contact-info", "faq"},
}

// facet is one button of a filter bar.
type facet struct {
	Label  string
	Href   string
	Count  int
	Active bool
}

// mount replaces the visitor's page and returns the base template data.
func (s *Server) mount(c *gin.Context, route, title string) (*visit.Mount, gin.H, bool) {
	v := currentVisit(c)
	m, err := v.Mount(route, sections[route]...)
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Something went wrong"})
		return nil, nil, false
	}
	return m, s.pageData(route, title, m.Reveal, v.Body.Style()), true
}

func (s *Server) pageData(route, title string, tracker *reveal.Tracker, bodyStyle string) gin.H {
	return gin.H{
		"Title":     title,
		"Route":     route,
		"Nav":       navLinks,
		"Profile":   s.content.Profile(),
		"Reveal":    tracker,
		"BodyStyle": bodyStyle,
	}
}

func render(c *gin.Context, code int, name string, base, extra gin.H) {
	maps.Copy(base, extra)
	c.HTML(code, name, base)
}

func (s *Server) splashPage(c *gin.Context) {
	m, data, ok := s.mount(c, visit.SplashRoute, "Welcome")
	if !ok {
		return
	}
	// The takeover is applied by the mount, so re-read the body style.
	data["BodyStyle"] = currentVisit(c).Body.Style()
	render(c, http.StatusOK, "splash.html", data, gin.H{"Splash": m.Splash.Snapshot()})
}

func (s *Server) homePage(c *gin.Context) {
	_, data, ok := s.mount(c, "/home", "Home")
	if !ok {
		return
	}
	render(c, http.StatusOK, "home.html", data, gin.H{
		"ProjectStats": content.SummarizeProjects(s.content.Projects()),
		"SkillStats":   content.SummarizeSkills(s.content.Skills()),
	})
}

func (s *Server) aboutPage(c *gin.Context) {
	_, data, ok := s.mount(c, "/about", "About")
	if !ok {
		return
	}
	render(c, http.StatusOK, "about.html", data, gin.H{
		"Certifications": s.content.Certifications(),
	})
}

func (s *Server) skillsPage(c *gin.Context) {
	_, data, ok := s.mount(c, "/skills-matrix", "Skills Matrix")
	if !ok {
		return
	}
	all := s.content.Skills()
	sel := filter.NewSelection(c.Query("category"), "")
	shown := filter.Apply(all, sel)

	var cats []facet
	for _, cc := range content.CountSkillCategories(s.content.SkillCategories(), all) {
		next := filter.NewSelection(cc.ID, "")
		cats = append(cats, facet{
			Label:  cc.Name,
			Href:   facetHref("/skills-matrix", next),
			Count:  cc.Count,
			Active: next.Category == sel.Category,
		})
	}
	render(c, http.StatusOK, "skills.html", data, gin.H{
		"Skills":     shown,
		"Categories": cats,
		"Stats":      content.SummarizeSkills(all),
	})
}

func (s *Server) projectsPage(c *gin.Context) {
	_, data, ok := s.mount(c, "/projects-showcase", "Projects")
	if !ok {
		return
	}
	all := s.content.Projects()
	sel := filter.NewSelection(c.Query("category"), c.Query("technology"))
	shown := filter.Apply(all, sel)
	categories, technologies := filter.Options(all)

	var catFacets, techFacets []facet
	for _, v := range categories {
		next := filter.Selection{Category: v, Technology: sel.Technology}
		catFacets = append(catFacets, facet{Label: v, Href: facetHref("/projects-showcase", next), Active: v == sel.Category})
	}
	for _, v := range technologies {
		next := filter.Selection{Category: sel.Category, Technology: v}
		techFacets = append(techFacets, facet{Label: v, Href: facetHref("/projects-showcase", next), Active: v == sel.Technology})
	}
	render(c, http.StatusOK, "projects.html", data, gin.H{
		"Projects":     shown,
		"Shown":        len(shown),
		"Total":        len(all),
		"Filtered":     sel.Active(),
		"ClearHref":    facetHref("/projects-showcase", sel.Clear()),
		"Categories":   catFacets,
		"Technologies": techFacets,
		"Stats":        content.SummarizeProjects(all),
	})
}

// projectDetail renders the detail modal for one project. It does not
// replace the mounted page.
func (s *Server) projectDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.HTML(http.StatusNotFound, "project-missing", gin.H{"ID": c.Param("id")})
		return
	}
	p, err := s.content.Project(id)
	if errors.Is(err, content.ErrNotFound) {
		c.HTML(http.StatusNotFound, "project-missing", gin.H{"ID": id})
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "Something went wrong"})
		return
	}
	c.HTML(http.StatusOK, "project-detail", gin.H{"Project": p})
}

func (s *Server) experiencePage(c *gin.Context) {
	_, data, ok := s.mount(c, "/experience-timeline", "Experience")
	if !ok {
		return
	}
	entries := s.content.Experience()
	active := 0
	if len(entries) > 0 {
		active = entries[0].ID
	}
	if id, err := strconv.Atoi(c.Query("active")); err == nil {
		for _, e := range entries {
			if e.ID == id {
				active = id
			}
		}
	}
	render(c, http.StatusOK, "experience.html", data, gin.H{
		"Entries": entries,
		"Active":  active,
		"Stats":   s.content.TimelineStats(),
	})
}

func (s *Server) contactPage(c *gin.Context) {
	m, data, ok := s.mount(c, visit.ContactRoute, "Contact")
	if !ok {
		return
	}
	openFAQ := 0
	if i, err := strconv.Atoi(c.Query("faq")); err == nil {
		openFAQ = i
	}
	render(c, http.StatusOK, "contact.html", data, gin.H{
		"Panel":   contactPanel(m.Contact.Status(), m.Contact.Fields(), nil),
		"Info":    s.content.ContactInfo(),
		"FAQs":    s.content.FAQs(),
		"OpenFAQ": openFAQ,
	})
}

// notFound renders the 404 page from throwaway state; the visitor's
// mounted page, if any, is left alone.
func (s *Server) notFound(c *gin.Context) {
	data := s.pageData(c.Request.URL.Path, "Lost in Space", reveal.NewTracker(0), splash.NewBody().Style())
	c.HTML(http.StatusNotFound, "notfound.html", data)
}

// contactPanel is the data for the form, progress and success fragment.
func contactPanel(status contact.Status, fields contact.Fields, errs []string) gin.H {
	return gin.H{
		"Status":       status.String(),
		"Fields":       fields,
		"Errors":       errs,
		"ProjectTypes": contact.ProjectTypes,
		"Budgets":      contact.Budgets,
		"Timelines":    contact.Timelines,
		"Urgencies":    contact.Urgencies,
	}
}

func facetHref(path string, sel filter.Selection) string {
	q := url.Values{}
	if sel.Category != filter.All && sel.Category != "" {
		q.Set("category", sel.Category)
	}
	if sel.Technology != filter.All && sel.Technology != "" {
		q.Set("technology", sel.Technology)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
