package catalog

import "kurator/internal/domain"

// Course is one curated catalog entry.
type Course struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Platform    string   `json:"platform"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Price       string   `json:"price"`
	Skills      []string `json:"skills"`
	Rating      string   `json:"rating"`
	Comment     string   `json:"comment"`
}

// Catalog is the read-only course dataset. It is built once at startup and
// never mutated afterwards; lookups return copies.
type Catalog struct {
	byID       map[int]Course
	byCategory map[string][]Course
	categories []string
}

func New() *Catalog {
	c := &Catalog{
		byID:       make(map[int]Course),
		byCategory: make(map[string][]Course),
	}
	for _, category := range []string{
		domain.CategoryProgramming,
		domain.CategoryDesign,
		domain.CategoryMarketing,
		domain.CategoryAnalytics,
	} {
		c.categories = append(c.categories, category)
		for _, course := range seedCourses[category] {
			course.Category = category
			c.byID[course.ID] = course
			c.byCategory[category] = append(c.byCategory[category], course)
		}
	}
	return c
}

// ByID returns the course with the given id.
func (c *Catalog) ByID(id int) (Course, bool) {
	course, ok := c.byID[id]
	return course, ok
}

// ByCategory returns the courses of a category in catalog order.
func (c *Catalog) ByCategory(category string) []Course {
	src := c.byCategory[category]
	out := make([]Course, len(src))
	copy(out, src)
	return out
}

// ByPlatform returns every course hosted on the given platform.
func (c *Catalog) ByPlatform(platform string) []Course {
	var out []Course
	for _, category := range c.categories {
		for _, course := range c.byCategory[category] {
			if course.Platform == platform {
				out = append(out, course)
			}
		}
	}
	return out
}

// Categories returns the known category keys in display order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the total number of courses.
func (c *Catalog) Len() int { return len(c.byID) }
