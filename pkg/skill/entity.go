package skill

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrCategoryExists = errors.New("category already exists")
)

// Category: категория навыков, например "Backend".
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Group хранит навыки владельца одной категории. Это единица хранения.
type Group struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	CategoryID int64     `json:"category_id"`
	Category   Category  `json:"category"`
	Skills     []string  `json:"skills_list"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (g Group) Clone() Group {
	g.Skills = append([]string(nil), g.Skills...)
	return g
}

// Row is one skill name of a group, as edited in the admin console.
// It is a derived view; the group stays the server-side record.
type Row struct {
	Key      string `json:"key"`
	GroupID  int64  `json:"group_id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// RowKey builds the "<groupId>-<skillName>" row key.
func RowKey(groupID int64, name string) string {
	return fmt.Sprintf("%d-%s", groupID, name)
}

// Flatten expands groups into rows, one per skill name, keeping group order.
func Flatten(groups []Group) []Row {
	var rows []Row
	for _, g := range groups {
		for _, name := range g.Skills {
			rows = append(rows, Row{
				Key:      RowKey(g.ID, name),
				GroupID:  g.ID,
				Category: g.Category.Name,
				Name:     name,
			})
		}
	}
	return rows
}

// Without returns g's skills minus name. The second result is false when
// nothing would be left, in which case the whole group should go.
func (g Group) Without(name string) ([]string, bool) {
	out := make([]string, 0, len(g.Skills))
	for _, s := range g.Skills {
		if s != name {
			out = append(out, s)
		}
	}
	return out, len(out) > 0
}

// Repository: порт хранения групп навыков.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Group, error)
	Get(ctx context.Context, userID, id int64) (Group, error)
	Create(ctx context.Context, g Group) (Group, error)
	Update(ctx context.Context, g Group) (Group, error)
	Delete(ctx context.Context, userID, id int64) error
}

// CategoryRepository: справочник категорий навыков.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int64) (Category, error)
	CreateCategory(ctx context.Context, c Category) (Category, error)
}
