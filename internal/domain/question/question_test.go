package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	t.Run("first page, zero-indexed", func(t *testing.T) {
		p := NewPagination(0, 10, 20)

		assert.Equal(t, 2, p.TotalPages)
		assert.True(t, p.IsFirst)
		assert.False(t, p.IsLast)
		assert.True(t, p.HasNext)
		assert.False(t, p.HasPrevious)
	})

	t.Run("remainder rounds up, middle page", func(t *testing.T) {
		p := NewPagination(1, 10, 21)

		assert.Equal(t, 3, p.TotalPages)
		assert.False(t, p.IsFirst)
		assert.False(t, p.IsLast)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrevious)
	})

	t.Run("last page is totalPages-1", func(t *testing.T) {
		p := NewPagination(2, 10, 21)

		assert.True(t, p.IsLast)
		assert.False(t, p.HasNext)
		assert.True(t, p.HasPrevious)
	})
}

func TestHasTaxonomyFilter(t *testing.T) {
	t.Run("no axes", func(t *testing.T) {
		plan := FilterPlan{}
		assert.False(t, plan.HasTaxonomyFilter())
	})

	t.Run("category level set", func(t *testing.T) {
		plan := FilterPlan{CategoryLevels: [4]string{"general", "", "", ""}}
		assert.True(t, plan.HasTaxonomyFilter())
	})

	t.Run("difficulty set", func(t *testing.T) {
		plan := FilterPlan{DifficultyLevel: "easy"}
		assert.True(t, plan.HasTaxonomyFilter())
	})
}
