package skill_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/portfolio/pkg/repository/memory"
	"github.com/artem13815/portfolio/pkg/skill"
	"github.com/artem13815/portfolio/pkg/validate"
)

func TestFlattenKeepsBackReference(t *testing.T) {
	groups := []skill.Group{
		{ID: 4, Category: skill.Category{Name: "Backend"}, Skills: []string{"Go", "SQL"}},
		{ID: 9, Category: skill.Category{Name: "Cloud"}, Skills: []string{"Docker"}},
	}
	rows := skill.Flatten(groups)
	require.Len(t, rows, 3)
	assert.Equal(t, skill.Row{Key: "4-Go", GroupID: 4, Category: "Backend", Name: "Go"}, rows[0])
	assert.Equal(t, int64(9), rows[2].GroupID)
	assert.Empty(t, skill.Flatten(nil))
}

func TestWithout(t *testing.T) {
	g := skill.Group{Skills: []string{"Go", "SQL"}}
	rest, keep := g.Without("Go")
	assert.Equal(t, []string{"SQL"}, rest)
	assert.True(t, keep)

	_, keep = skill.Group{Skills: []string{"Go"}}.Without("Go")
	assert.False(t, keep)
}

func TestCreateNormalizesAndChecksCategory(t *testing.T) {
	repo := memory.NewSkillRepository()
	svc := skill.NewService(repo, repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, skill.Group{CategoryID: 42, Skills: []string{"Go"}})
	var fields validate.Errors
	require.True(t, errors.As(err, &fields))
	assert.Contains(t, fields, "category_id")

	cat, err := svc.CreateCategory(ctx, skill.Category{Name: " Backend "})
	require.NoError(t, err)
	assert.Equal(t, "Backend", cat.Name)

	g, err := svc.Create(ctx, 1, skill.Group{CategoryID: cat.ID, Skills: []string{"Go, SQL", "Redis"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL", "Redis"}, g.Skills)
	assert.Equal(t, "Backend", g.Category.Name)
}

func TestValidate(t *testing.T) {
	errs := skill.Validate(skill.Group{})
	assert.Contains(t, errs, "category_id")
	assert.Contains(t, errs, "skills_list")
	assert.Empty(t, skill.Validate(skill.Group{CategoryID: 1, Skills: []string{"Go"}}))
}
