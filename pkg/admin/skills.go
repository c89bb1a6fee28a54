package admin

import (
	"context"
	"strings"

	"github.com/artem13815/portfolio/pkg/skill"
	"github.com/artem13815/portfolio/pkg/validate"
)

// SkillsTab edits skills row by row while the server stores whole groups.
type SkillsTab struct {
	*Editor[skill.Group]
	res Resource[skill.Group]
}

func NewSkillsTab(res Resource[skill.Group]) *SkillsTab {
	return &SkillsTab{Editor: NewEditor(SkillKind, res), res: res}
}

// Rows flattens the loaded groups into one row per skill name.
func (t *SkillsTab) Rows() []skill.Row {
	return skill.Flatten(t.Items())
}

func (t *SkillsTab) group(id int64) (skill.Group, bool) {
	for _, g := range t.Items() {
		if g.ID == id {
			return g, true
		}
	}
	return skill.Group{}, false
}

// AddSkill puts name into the group of categoryID, creating the group when
// the category has none yet.
func (t *SkillsTab) AddSkill(ctx context.Context, categoryID int64, name string) error {
	name = strings.TrimSpace(name)
	for _, g := range t.Items() {
		if g.CategoryID != categoryID {
			continue
		}
		for _, s := range g.Skills {
			if strings.EqualFold(s, name) {
				return validate.Errors{"name": "Skill already exists in this category"}
			}
		}
		if err := t.BeginEdit(g.ID); err != nil {
			return err
		}
		if err := t.Edit(func(d *skill.Group) { d.Skills = append(append([]string{}, d.Skills...), name) }); err != nil {
			return err
		}
		return t.Submit(ctx)
	}
	if err := t.BeginCreate(skill.Group{CategoryID: categoryID, Skills: []string{name}}); err != nil {
		return err
	}
	return t.Submit(ctx)
}

// RemoveRow deletes one skill after confirmation. The owning group is
// updated, or deleted when the row was its last skill.
func (t *SkillsTab) RemoveRow(ctx context.Context, row skill.Row, confirm Confirmer) error {
	g, ok := t.group(row.GroupID)
	if !ok {
		return ErrUnknownItem
	}
	if t.Mode() == Submitting {
		return ErrSubmitInFlight
	}
	if confirm == nil || !confirm.Confirm("Are you sure you want to delete "+row.Name+"?") {
		return ErrCancelled
	}
	rest, keep := g.Without(row.Name)
	do := func(ctx context.Context) error { return t.res.Delete(ctx, g.ID) }
	if keep {
		g.Skills = rest
		do = func(ctx context.Context) error {
			_, err := t.res.Update(ctx, g.ID, g)
			return err
		}
	}
	return t.remove(ctx, g.ID, do, "Skill deleted successfully!")
}
