package content

import "slices"

// Profile is the site owner's copy.
type Profile struct {
	Name      string   `yaml:"name"`
	Headline  string   `yaml:"headline"`
	Roles     []string `yaml:"roles"`
	Mission   string   `yaml:"mission"`
	Summary   string   `yaml:"summary"`
	Statement string   `yaml:"statement"`
	Email     string   `yaml:"email"`
	Location  string   `yaml:"location"`
	GitHub    string   `yaml:"github"`
	Resume    string   `yaml:"resume"`
}

// Metric is a labelled headline number.
type Metric struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Challenge is a problem met on a project and how it was solved.
type Challenge struct {
	Title    string `yaml:"title"`
	Solution string `yaml:"solution"`
}

// Project is a showcase entry.
type Project struct {
	ID           int         `yaml:"id"`
	Title        string      `yaml:"title"`
	Category     string      `yaml:"category"`
	Year         string      `yaml:"year"`
	Status       string      `yaml:"status"`
	Image        string      `yaml:"image"`
	ImageAlt     string      `yaml:"image_alt"`
	Description  string      `yaml:"description"`
	Details      string      `yaml:"details"`
	Technologies []string    `yaml:"technologies"`
	Timeline     string      `yaml:"timeline"`
	TeamSize     string      `yaml:"team_size"`
	Role         string      `yaml:"role"`
	LiveURL      string      `yaml:"live_url"`
	GitHubURL    string      `yaml:"github_url"`
	Metrics      []Metric    `yaml:"metrics"`
	Features     []string    `yaml:"features"`
	Challenges   []Challenge `yaml:"challenges"`
}

func (p Project) FilterCategory() string { return p.Category }
func (p Project) FilterTags() []string   { return p.Technologies }

// SkillCategory groups skills on the matrix.
type SkillCategory struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

// Skill is a skills matrix entry. Level is a 0-100 proficiency.
type Skill struct {
	ID           int      `yaml:"id"`
	Name         string   `yaml:"name"`
	Category     string   `yaml:"category"`
	Icon         string   `yaml:"icon"`
	Level        int      `yaml:"level"`
	Experience   int      `yaml:"experience"`
	Projects     int      `yaml:"projects"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
}

func (s Skill) FilterCategory() string { return s.Category }
func (s Skill) FilterTags() []string   { return s.Technologies }

// Tier names the band a skill level falls into.
func (s Skill) Tier() string {
	switch {
	case s.Level >= ExpertLevel:
		return "Expert"
	case s.Level >= AdvancedLevel:
		return "Advanced"
	default:
		return "Proficient"
	}
}

// Certification is a professional certificate.
type Certification struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Issuer      string   `yaml:"issuer"`
	Date        string   `yaml:"date"`
	Status      string   `yaml:"status"`
	Logo        string   `yaml:"logo"`
	LogoAlt     string   `yaml:"logo_alt"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
	Link        string   `yaml:"link"`
}

// Experience is a timeline entry.
type Experience struct {
	ID           int      `yaml:"id"`
	Position     string   `yaml:"position"`
	Company      string   `yaml:"company"`
	Logo         string   `yaml:"logo"`
	LogoAlt      string   `yaml:"logo_alt"`
	Duration     string   `yaml:"duration"`
	Location     string   `yaml:"location"`
	Icon         string   `yaml:"icon"`
	Description  string   `yaml:"description"`
	Achievements []string `yaml:"achievements"`
	Technologies []string `yaml:"technologies"`
}

// FAQ is a contact page question.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Stat is a headline number with a short explanation.
type Stat struct {
	Icon        string `yaml:"icon"`
	Value       string `yaml:"value"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
}

// ContactMethod is a way to reach the site owner. URL is empty for
// methods that are not links.
type ContactMethod struct {
	Icon        string `yaml:"icon"`
	Label       string `yaml:"label"`
	Value       string `yaml:"value"`
	Description string `yaml:"description"`
	URL         string `yaml:"url"`
}

// SocialLink is a profile on another site.
type SocialLink struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Availability is the owner's current capacity for new work.
type Availability struct {
	Status  string   `yaml:"status"`
	Note    string   `yaml:"note"`
	Details []Metric `yaml:"details"`
}

// ContactInfo is the sidebar of the contact page.
type ContactInfo struct {
	Methods      []ContactMethod `yaml:"methods"`
	Socials      []SocialLink    `yaml:"socials"`
	Availability Availability    `yaml:"availability"`
}

func (p Profile) clone() Profile {
	p.Roles = slices.Clone(p.Roles)
	return p
}

func (p Project) clone() Project {
	p.Technologies = slices.Clone(p.Technologies)
	p.Metrics = slices.Clone(p.Metrics)
	p.Features = slices.Clone(p.Features)
	p.Challenges = slices.Clone(p.Challenges)
	return p
}

func (s Skill) clone() Skill {
	s.Technologies = slices.Clone(s.Technologies)
	return s
}

func (c Certification) clone() Certification {
	c.Skills = slices.Clone(c.Skills)
	return c
}

func (e Experience) clone() Experience {
	e.Achievements = slices.Clone(e.Achievements)
	e.Technologies = slices.Clone(e.Technologies)
	return e
}

func (c ContactInfo) clone() ContactInfo {
	c.Methods = slices.Clone(c.Methods)
	c.Socials = slices.Clone(c.Socials)
	c.Availability.Details = slices.Clone(c.Availability.Details)
	return c
}
