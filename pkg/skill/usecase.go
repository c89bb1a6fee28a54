package skill

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/artem13815/portfolio/pkg/text"
	"github.com/artem13815/portfolio/pkg/validate"
)

// UseCase инкапсулирует работу с навыками и их категориями.
type UseCase interface {
	List(ctx context.Context, userID int64) ([]Group, error)
	Create(ctx context.Context, userID int64, g Group) (Group, error)
	Update(ctx context.Context, userID, id int64, g Group) (Group, error)
	Delete(ctx context.Context, userID, id int64) error

	Categories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, c Category) (Category, error)
}

type service struct {
	repo       Repository
	categories CategoryRepository
}

func NewService(repo Repository, categories CategoryRepository) UseCase {
	return &service{repo: repo, categories: categories}
}

func (s *service) List(ctx context.Context, userID int64) ([]Group, error) {
	groups, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		groups[i].Skills = text.NormalizeList(groups[i].Skills)
	}
	return groups, nil
}

func (s *service) Create(ctx context.Context, userID int64, g Group) (Group, error) {
	g.Skills = text.NormalizeList(g.Skills)
	if err := Validate(g).Err(); err != nil {
		return Group{}, err
	}
	cat, err := s.category(ctx, g.CategoryID)
	if err != nil {
		return Group{}, err
	}
	g.ID = 0
	g.UserID = userID
	g.Category = cat
	return s.repo.Create(ctx, g)
}

func (s *service) Update(ctx context.Context, userID, id int64, g Group) (Group, error) {
	current, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return Group{}, err
	}
	g.Skills = text.NormalizeList(g.Skills)
	if err := Validate(g).Err(); err != nil {
		return Group{}, err
	}
	cat, err := s.category(ctx, g.CategoryID)
	if err != nil {
		return Group{}, err
	}
	g.ID = current.ID
	g.UserID = current.UserID
	g.CreatedAt = current.CreatedAt
	g.Category = cat
	return s.repo.Update(ctx, g)
}

func (s *service) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *service) Categories(ctx context.Context) ([]Category, error) {
	return s.categories.ListCategories(ctx)
}

func (s *service) CreateCategory(ctx context.Context, c Category) (Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)
	errs := validate.Errors{}
	errs.Required("name", c.Name, "Category name is required")
	if err := errs.Err(); err != nil {
		return Category{}, err
	}
	c.ID = 0
	c.CreatedAt = time.Now().UTC()
	return s.categories.CreateCategory(ctx, c)
}

// category resolves id and reports an unknown one as a field error.
func (s *service) category(ctx context.Context, id int64) (Category, error) {
	cat, err := s.categories.GetCategory(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Category{}, validate.Errors{"category_id": "Unknown category"}
	}
	return cat, err
}

// Validate requires a category and at least one skill name.
func Validate(g Group) validate.Errors {
	errs := validate.Errors{}
	if g.CategoryID <= 0 {
		errs.Add("category_id", "Category is required")
	}
	if len(text.NormalizeList(g.Skills)) == 0 {
		errs.Add("skills_list", "Add at least one skill")
	}
	return errs
}
