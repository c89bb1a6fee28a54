package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestValidate(t *testing.T) {
	ok := Experience{Company: "Acme", Position: "Engineer", StartDate: "2021-03-01"}
	assert.Empty(t, Validate(ok))

	bad := Validate(Experience{StartDate: "03/2021"})
	assert.Contains(t, bad, "company")
	assert.Contains(t, bad, "position")
	assert.Equal(t, "Use the YYYY-MM-DD format", bad["start_date"])

	before := ok
	before.EndDate = ptr("2020-01-01")
	assert.Contains(t, Validate(before), "end_date")

	before.IsCurrent = true
	assert.Empty(t, Validate(before), "current jobs ignore the end date")
}

func TestPeriod(t *testing.T) {
	e := Experience{StartDate: "2021-03-01", EndDate: ptr("2022-01-01")}
	assert.Equal(t, "2021-03-01 - 2022-01-01", e.Period())
	e.IsCurrent = true
	assert.Equal(t, "2021-03-01 - Present", e.Period())
	assert.Equal(t, "2020-05-01 - Present", Experience{StartDate: "2020-05-01"}.Period())
	assert.Equal(t, "2020-05-01 - Present", Experience{StartDate: "2020-05-01", EndDate: ptr(" ")}.Period())
}

func TestNormalizeDropsBlankEnd(t *testing.T) {
	e := normalize(Experience{EndDate: ptr("  "), Technologies: []string{"Go, gRPC"}})
	assert.Nil(t, e.EndDate)
	assert.Equal(t, []string{"Go", "gRPC"}, e.Technologies)
}
