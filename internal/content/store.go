// Package content holds the site's static catalog: profile copy, projects,
// skills, certifications, experience and FAQs. The catalog is decoded once
// from embedded YAML and never changes afterwards; accessors hand out deep
// copies, so callers may modify what they get.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

var (
	ErrDuplicateID  = errors.New("duplicate id")
	ErrMissingField = errors.New("missing required field")
	ErrNotFound     = errors.New("not found")
)

type skillsFile struct {
	Categories []SkillCategory `yaml:"categories"`
	Skills     []Skill         `yaml:"skills"`
}

// Store is the read-only catalog.
type Store struct {
	profile         Profile
	projects        []Project
	skillCategories []SkillCategory
	skills          []Skill
	certifications  []Certification
	experience      []Experience
	timelineStats   []Stat
	faqs            []FAQ
	contactInfo     ContactInfo
}

// Load decodes the embedded catalog.
func Load() (*Store, error) {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded content: %w", err)
	}
	return LoadFS(sub)
}

// LoadFS decodes a catalog from fsys, which must contain profile.yaml,
// projects.yaml, skills.yaml, certifications.yaml, experience.yaml,
// timeline_stats.yaml, faqs.yaml and contact.yaml.
func LoadFS(fsys fs.FS) (*Store, error) {
	s := &Store{}
	var skills skillsFile
	files := []struct {
		name string
		into any
	}{
		{"profile.yaml", &s.profile},
		{"projects.yaml", &s.projects},
		{"skills.yaml", &skills},
		{"certifications.yaml", &s.certifications},
		{"experience.yaml", &s.experience},
		{"timeline_stats.yaml", &s.timelineStats},
		{"faqs.yaml", &s.faqs},
		{"contact.yaml", &s.contactInfo},
	}
	for _, f := range files {
		if err := decode(fsys, f.name, f.into); err != nil {
			return nil, err
		}
	}
	s.skillCategories = skills.Categories
	s.skills = skills.Skills
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func decode(fsys fs.FS, name string, into any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, into); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) validate() error {
	if strings.TrimSpace(s.profile.Name) == "" {
		return fmt.Errorf("profile: name: %w", ErrMissingField)
	}
	if err := uniqueIDs("projects", s.projects, func(p Project) (int, string) { return p.ID, p.Title }); err != nil {
		return err
	}
	if err := uniqueIDs("skills", s.skills, func(sk Skill) (int, string) { return sk.ID, sk.Name }); err != nil {
		return err
	}
	if err := uniqueIDs("certifications", s.certifications, func(c Certification) (int, string) { return c.ID, c.Title }); err != nil {
		return err
	}
	if err := uniqueIDs("experience", s.experience, func(e Experience) (int, string) { return e.ID, e.Position }); err != nil {
		return err
	}
	for _, st := range s.timelineStats {
		if strings.TrimSpace(st.Label) == "" {
			return fmt.Errorf("timeline stats: label: %w", ErrMissingField)
		}
	}
	for _, sl := range s.contactInfo.Socials {
		if strings.TrimSpace(sl.URL) == "" {
			return fmt.Errorf("social link %q: url: %w", sl.Name, ErrMissingField)
		}
	}
	known := map[string]bool{}
	for _, c := range s.skillCategories {
		if c.ID == "" {
			return fmt.Errorf("skill categories: id: %w", ErrMissingField)
		}
		if known[c.ID] {
			return fmt.Errorf("skill categories: %w: %q", ErrDuplicateID, c.ID)
		}
		known[c.ID] = true
	}
	for _, sk := range s.skills {
		if !known[sk.Category] {
			return fmt.Errorf("skill %q: unknown category %q", sk.Name, sk.Category)
		}
	}
	return nil
}

func uniqueIDs[T any](collection string, items []T, key func(T) (int, string)) error {
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		id, title := key(it)
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("%s %d: title: %w", collection, id, ErrMissingField)
		}
		if seen[id] {
			return fmt.Errorf("%s: %w: %d", collection, ErrDuplicateID, id)
		}
		seen[id] = true
	}
	return nil
}

func (s *Store) Profile() Profile { return s.profile.clone() }

func (s *Store) Projects() []Project              { return cloneEach(s.projects, Project.clone) }
func (s *Store) Skills() []Skill                  { return cloneEach(s.skills, Skill.clone) }
func (s *Store) SkillCategories() []SkillCategory { return slices.Clone(s.skillCategories) }
func (s *Store) Certifications() []Certification {
	return cloneEach(s.certifications, Certification.clone)
}
func (s *Store) Experience() []Experience { return cloneEach(s.experience, Experience.clone) }
func (s *Store) TimelineStats() []Stat    { return slices.Clone(s.timelineStats) }
func (s *Store) FAQs() []FAQ              { return slices.Clone(s.faqs) }
func (s *Store) ContactInfo() ContactInfo { return s.contactInfo.clone() }

func cloneEach[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = clone(it)
	}
	return out
}

// Project looks a project up by id.
func (s *Store) Project(id int) (Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			return p.clone(), nil
		}
	}
	return Project{}, fmt.Errorf("project %d: %w", id, ErrNotFound)
}
