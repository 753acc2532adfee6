package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"news-backend/internal/domains/report"
)

func TestBuildPeriodClauseOpenEnds(t *testing.T) {
	clause, args := buildPeriodClause(report.PeriodFilter{})

	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestBuildPeriodClauseBothEnds(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	clause, args := buildPeriodClause(report.PeriodFilter{From: &from, To: &to})

	assert.Contains(t, clause, "a.created_date >= $1")
	assert.Contains(t, clause, "a.created_date <= $2")
	assert.Equal(t, []interface{}{from, to}, args)
}

func TestBuildPeriodClauseLowerOnly(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	clause, args := buildPeriodClause(report.PeriodFilter{From: &from})

	assert.Contains(t, clause, "a.created_date >= $1")
	assert.NotContains(t, clause, "$2")
	assert.Equal(t, []interface{}{from}, args)
}
