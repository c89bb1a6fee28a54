package experience

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrNotFound = errors.New("not found")

// Experience описывает место работы. Даты в формате YYYY-MM-DD.
type Experience struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	Description  string    `json:"description"`
	StartDate    string    `json:"start_date"`
	EndDate      *string   `json:"end_date"`
	IsCurrent    bool      `json:"is_current"`
	Technologies []string  `json:"technologies_used"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clone returns a copy that shares no slices or pointers with e.
func (e Experience) Clone() Experience {
	e.Technologies = append([]string(nil), e.Technologies...)
	if e.EndDate != nil {
		d := *e.EndDate
		e.EndDate = &d
	}
	return e
}

// PresentLabel is shown instead of an end date for an open-ended job.
const PresentLabel = "Present"

// EndLabel is the displayed end of the job: PresentLabel for a current job
// or one without an end date, the stored date otherwise.
func (e Experience) EndLabel() string {
	if e.IsCurrent || e.EndDate == nil || strings.TrimSpace(*e.EndDate) == "" {
		return PresentLabel
	}
	return *e.EndDate
}

// Period formats the job span, "2021-03-01 - Present" for an open-ended job.
func (e Experience) Period() string {
	return e.StartDate + " - " + e.EndLabel()
}

// Repository: порт хранения опыта работы.
// Списки отсортированы по дате начала, новые первыми.
type Repository interface {
	List(ctx context.Context, userID int64) ([]Experience, error)
	Get(ctx context.Context, userID, id int64) (Experience, error)
	Create(ctx context.Context, e Experience) (Experience, error)
	Update(ctx context.Context, e Experience) (Experience, error)
	Delete(ctx context.Context, userID, id int64) error
}
