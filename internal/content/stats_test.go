package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeProjects(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	st := SummarizeProjects(s.Projects())
	assert.Equal(t, 6, st.Total)
	assert.Equal(t, 4, st.Live)
	assert.Equal(t, 6, st.Team)
	assert.Greater(t, st.Technologies, 20)

	solo := SummarizeProjects([]Project{{TeamSize: "1 Developer"}, {}})
	assert.Zero(t, solo.Team)
}

func TestSummarizeSkills(t *testing.T) {
	skills := []Skill{
		{Level: 95, Experience: 4, Projects: 25},
		{Level: 90, Experience: 5, Projects: 40},
		{Level: 80, Experience: 2, Projects: 10},
		{Level: 75, Experience: 1, Projects: 5},
		{Level: 60, Experience: 1, Projects: 1},
	}
	st := SummarizeSkills(skills)
	assert.Equal(t, SkillStats{Total: 5, Expert: 2, Advanced: 2, Years: 5, Projects: 81}, st)
	assert.Equal(t, "Expert", skills[1].Tier())
	assert.Equal(t, "Advanced", skills[3].Tier())
	assert.Equal(t, "Proficient", skills[4].Tier())
}

func TestCountSkillCategories(t *testing.T) {
	s, err := Load()
	require.NoError(t, err)

	counts := CountSkillCategories(s.SkillCategories(), s.Skills())
	require.Len(t, counts, 8)
	assert.Equal(t, "all", counts[0].ID)
	assert.Equal(t, 12, counts[0].Count)

	byID := map[string]int{}
	for _, c := range counts {
		byID[c.ID] = c.Count
	}
	assert.Equal(t, 3, byID["frontend"])
	assert.Equal(t, 3, byID["programming"])
	assert.Equal(t, 2, byID["database"])
	assert.Equal(t, 1, byID["tools"])
}
