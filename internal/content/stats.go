package content

const (
	ExpertLevel   = 90
	AdvancedLevel = 75
)

// ProjectStats summarises the showcase.
type ProjectStats struct {
	Total        int
	Live         int
	Technologies int
	Team         int
}

// SummarizeProjects counts live projects, distinct technologies and
// projects built by more than one developer.
func SummarizeProjects(projects []Project) ProjectStats {
	st := ProjectStats{Total: len(projects)}
	techs := map[string]bool{}
	for _, p := range projects {
		if p.Status == "Live" {
			st.Live++
		}
		if p.TeamSize != "" && p.TeamSize != "1 Developer" {
			st.Team++
		}
		for _, t := range p.Technologies {
			techs[t] = true
		}
	}
	st.Technologies = len(techs)
	return st
}

// SkillStats summarises the skills matrix.
type SkillStats struct {
	Total    int
	Expert   int
	Advanced int
	Years    int
	Projects int
}

// SummarizeSkills counts skills per tier, the longest experience and the
// total projects built.
func SummarizeSkills(skills []Skill) SkillStats {
	st := SkillStats{Total: len(skills)}
	for _, s := range skills {
		switch {
		case s.Level >= ExpertLevel:
			st.Expert++
		case s.Level >= AdvancedLevel:
			st.Advanced++
		}
		st.Years = max(st.Years, s.Experience)
		st.Projects += s.Projects
	}
	return st
}

// CategoryCount is a skill category with the number of skills in it.
type CategoryCount struct {
	SkillCategory
	Count int
}

// CountSkillCategories returns an "all" entry followed by every category
// in declared order.
func CountSkillCategories(categories []SkillCategory, skills []Skill) []CategoryCount {
	out := make([]CategoryCount, 0, len(categories)+1)
	out = append(out, CategoryCount{
		SkillCategory: SkillCategory{ID: "all", Name: "All Skills", Icon: "Grid3X3"},
		Count:         len(skills),
	})
	for _, c := range categories {
		n := 0
		for _, s := range skills {
			if s.Category == c.ID {
				n++
			}
		}
		out = append(out, CategoryCount{SkillCategory: c, Count: n})
	}
	return out
}
