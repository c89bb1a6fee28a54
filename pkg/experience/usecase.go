package experience

import (
	"context"
	"strings"

	"github.com/artem13815/portfolio/pkg/text"
	"github.com/artem13815/portfolio/pkg/validate"
)

// UseCase инкапсулирует работу с опытом работы.
type UseCase interface {
	List(ctx context.Context, userID int64) ([]Experience, error)
	Create(ctx context.Context, userID int64, e Experience) (Experience, error)
	Update(ctx context.Context, userID, id int64, e Experience) (Experience, error)
	Delete(ctx context.Context, userID, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context, userID int64) ([]Experience, error) {
	return s.repo.List(ctx, userID)
}

func (s *service) Create(ctx context.Context, userID int64, e Experience) (Experience, error) {
	e = normalize(e)
	if err := Validate(e).Err(); err != nil {
		return Experience{}, err
	}
	e.ID = 0
	e.UserID = userID
	return s.repo.Create(ctx, e)
}

func (s *service) Update(ctx context.Context, userID, id int64, e Experience) (Experience, error) {
	current, err := s.repo.Get(ctx, userID, id)
	if err != nil {
		return Experience{}, err
	}
	e = normalize(e)
	if err := Validate(e).Err(); err != nil {
		return Experience{}, err
	}
	e.ID = current.ID
	e.UserID = current.UserID
	e.CreatedAt = current.CreatedAt
	return s.repo.Update(ctx, e)
}

func (s *service) Delete(ctx context.Context, userID, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}

func normalize(e Experience) Experience {
	e.Company = strings.TrimSpace(e.Company)
	e.Position = strings.TrimSpace(e.Position)
	e.StartDate = strings.TrimSpace(e.StartDate)
	if e.EndDate != nil {
		v := strings.TrimSpace(*e.EndDate)
		if v == "" {
			e.EndDate = nil
		} else {
			e.EndDate = &v
		}
	}
	e.Technologies = text.NormalizeList(e.Technologies)
	return e
}

// Validate checks required fields and that a finished job does not end
// before it starts.
func Validate(e Experience) validate.Errors {
	errs := validate.Errors{}
	errs.Required("company", e.Company, "Company is required")
	errs.Required("position", e.Position, "Position is required")
	start := strings.TrimSpace(e.StartDate)
	switch {
	case start == "":
		errs.Add("start_date", "Start date is required")
	case !validate.IsDate(start):
		errs.Add("start_date", "Use the YYYY-MM-DD format")
	}
	if e.IsCurrent || e.EndDate == nil || strings.TrimSpace(*e.EndDate) == "" {
		return errs
	}
	end := strings.TrimSpace(*e.EndDate)
	switch {
	case !validate.IsDate(end):
		errs.Add("end_date", "Use the YYYY-MM-DD format")
	case validate.IsDate(start) && end < start:
		errs.Add("end_date", "End date cannot be before start date")
	}
	return errs
}
