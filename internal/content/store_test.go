package content

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/cosmic-portfolio/internal/filter"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Vikaskumar Dane", s.Profile().Name)
	assert.Len(t, s.Projects(), 6)
	assert.Len(t, s.Skills(), 12)
	assert.Len(t, s.SkillCategories(), 7)
	assert.Len(t, s.Certifications(), 3)
	assert.Len(t, s.Experience(), 3)
	assert.Len(t, s.FAQs(), 6)
	assert.Len(t, s.TimelineStats(), 4)

	info := s.ContactInfo()
	assert.Len(t, info.Methods, 3)
	assert.Len(t, info.Socials, 4)
	assert.Equal(t, "Currently Available", info.Availability.Status)
	assert.Equal(t, Metric{Label: "Response Time", Value: "Within 24 hours"}, info.Availability.Details[0])
}

func TestAccessorsReturnCopies(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	projects := s.Projects()
	projects[0].Title = "changed"
	assert.Equal(t, "E-Commerce Platform", s.Projects()[0].Title)

	p := s.Profile()
	p.Roles[0] = "changed"
	assert.Equal(t, "Full Stack Engineer", s.Profile().Roles[0])
}

func TestAccessorsCopyNestedSlices(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	projects := s.Projects()
	projects[0].Technologies[0] = "changed"
	projects[0].Metrics[0].Value = "changed"
	projects[0].Features[0] = "changed"
	projects[0].Challenges[0].Title = "changed"
	fresh := s.Projects()[0]
	assert.Equal(t, "React", fresh.Technologies[0])
	assert.Equal(t, "10K+", fresh.Metrics[0].Value)
	assert.Equal(t, "Real-time inventory management", fresh.Features[0])
	assert.Equal(t, "Scalability Issues", fresh.Challenges[0].Title)

	p, err := s.Project(1)
	require.NoError(t, err)
	p.Technologies[0] = "changed"
	assert.Equal(t, "React", s.Projects()[0].Technologies[0])

	skills := s.Skills()
	want := skills[0].Technologies[0]
	skills[0].Technologies[0] = "changed"
	assert.Equal(t, want, s.Skills()[0].Technologies[0])

	certs := s.Certifications()
	certs[0].Skills[0] = "changed"
	assert.Equal(t, "Cloud Architecture", s.Certifications()[0].Skills[0])

	exp := s.Experience()
	exp[0].Achievements[0] = "changed"
	exp[0].Technologies[0] = "changed"
	assert.Equal(t, "Java", s.Experience()[0].Technologies[0])
	assert.NotEqual(t, "changed", s.Experience()[0].Achievements[0])

	info := s.ContactInfo()
	info.Socials[0].URL = "changed"
	info.Availability.Details[0].Value = "changed"
	assert.Equal(t, "https://linkedin.com/in/vikaskumar-dane", s.ContactInfo().Socials[0].URL)
	assert.Equal(t, "Within 24 hours", s.ContactInfo().Availability.Details[0].Value)
}

func TestProjectLookup(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	p, err := s.Project(3)
	require.NoError(t, err)
	assert.Equal(t, "AI Chat Assistant", p.Title)

	_, err = s.Project(99)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestFrontendCategoryFilter(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	got := filter.Apply(s.Projects(), filter.NewSelection("Frontend", filter.All))
	require.Len(t, got, 1)
	assert.Equal(t, "Task Management App", got[0].Title)
	for _, p := range got {
		assert.Equal(t, "Frontend", p.Category)
	}
}

func TestSkillCategoryFilter(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	got := filter.Apply(s.Skills(), filter.NewSelection("frontend", ""))
	var names []string
	for _, sk := range got {
		names = append(names, sk.Name)
	}
	assert.Equal(t, []string{"React.js", "Next.js", "Tailwind CSS"}, names)
}

func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		"profile.yaml":        {Data: []byte("name: Test\n")},
		"projects.yaml":       {Data: []byte("- {id: 1, title: A}\n")},
		"skills.yaml":         {Data: []byte("categories: [{id: web, name: Web}]\nskills: [{id: 1, name: Go, category: web}]\n")},
		"certifications.yaml": {Data: []byte("[]\n")},
		"experience.yaml":     {Data: []byte("[]\n")},
		"timeline_stats.yaml": {Data: []byte("[]\n")},
		"faqs.yaml":           {Data: []byte("[]\n")},
		"contact.yaml":        {Data: []byte("socials: [{name: GitHub, url: 'https://github.com'}]\n")},
	}
}

func TestLoadFSValidation(t *testing.T) {
	_, err := LoadFS(minimalFS())
	require.NoError(t, err)

	dup := minimalFS()
	dup["projects.yaml"] = &fstest.MapFile{Data: []byte("- {id: 1, title: A}\n- {id: 1, title: B}\n")}
	_, err = LoadFS(dup)
	assert.True(t, errors.Is(err, ErrDuplicateID), "got %v", err)

	untitled := minimalFS()
	untitled["projects.yaml"] = &fstest.MapFile{Data: []byte("- {id: 1}\n")}
	_, err = LoadFS(untitled)
	assert.True(t, errors.Is(err, ErrMissingField), "got %v", err)

	nameless := minimalFS()
	nameless["profile.yaml"] = &fstest.MapFile{Data: []byte("headline: x\n")}
	_, err = LoadFS(nameless)
	assert.True(t, errors.Is(err, ErrMissingField), "got %v", err)

	orphan := minimalFS()
	orphan["skills.yaml"] = &fstest.MapFile{Data: []byte("categories: []\nskills: [{id: 1, name: Go, category: web}]\n")}
	_, err = LoadFS(orphan)
	assert.ErrorContains(t, err, "unknown category")

	unlinked := minimalFS()
	unlinked["contact.yaml"] = &fstest.MapFile{Data: []byte("socials: [{name: GitHub}]\n")}
	_, err = LoadFS(unlinked)
	assert.True(t, errors.Is(err, ErrMissingField), "got %v", err)

	missing := minimalFS()
	delete(missing, "faqs.yaml")
	_, err = LoadFS(missing)
	assert.ErrorContains(t, err, "read faqs.yaml")

	broken := minimalFS()
	broken["projects.yaml"] = &fstest.MapFile{Data: []byte("{not: [a list\n")}
	_, err = LoadFS(broken)
	assert.ErrorContains(t, err, "decode projects.yaml")
}
