package catalog

import (
	"testing"

	"kurator/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogContents(t *testing.T) {
	c := New()

	assert.Equal(t, 10, c.Len())
	assert.Equal(t, []string{
		domain.CategoryProgramming,
		domain.CategoryDesign,
		domain.CategoryMarketing,
		domain.CategoryAnalytics,
	}, c.Categories())
	assert.Len(t, c.ByCategory(domain.CategoryProgramming), 4)
	assert.Len(t, c.ByCategory(domain.CategoryDesign), 2)
	assert.Empty(t, c.ByCategory("cooking"))
}

func TestByID(t *testing.T) {
	c := New()

	course, ok := c.ByID(1)
	require.True(t, ok)
	assert.Equal(t, domain.PlatformSkillFactory, course.Platform)
	assert.Equal(t, domain.CategoryProgramming, course.Category)

	_, ok = c.ByID(999)
	assert.False(t, ok)
}

func TestEveryCourseIsOnKnownPlatform(t *testing.T) {
	c := New()
	for _, category := range c.Categories() {
		for _, course := range c.ByCategory(category) {
			assert.True(t, domain.ValidPlatform(course.Platform),
				"course %d on unknown platform %q", course.ID, course.Platform)
		}
	}
}

func TestByPlatform(t *testing.T) {
	c := New()
	total := 0
	for platform := range domain.PartnerLinks {
		courses := c.ByPlatform(platform)
		assert.NotEmpty(t, courses)
		for _, course := range courses {
			assert.Equal(t, platform, course.Platform)
		}
		total += len(courses)
	}
	assert.Equal(t, c.Len(), total)
}

func TestLookupsReturnCopies(t *testing.T) {
	c := New()
	first := c.ByCategory(domain.CategoryDesign)
	first[0].Title = "mutated"
	second := c.ByCategory(domain.CategoryDesign)
	assert.NotEqual(t, "mutated", second[0].Title)
}
