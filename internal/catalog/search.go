package catalog

import (
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/rchalamala/beavered/pkg/model"
)

type courseSource []*model.Course

func (s courseSource) String(i int) string {
	return fmt.Sprintf("%s %s", s[i].Number, s[i].Name)
}

func (s courseSource) Len() int { return len(s) }

// Search fuzzy-matches the query against "number name" of every course,
// best matches first. An empty query returns the whole catalog in id order.
func (c *Catalog) Search(query string) []*model.Course {
	if query == "" {
		return c.ordered
	}
	matches := fuzzy.FindFrom(query, courseSource(c.ordered))
	results := make([]*model.Course, len(matches))
	for i, m := range matches {
		results[i] = c.ordered[m.Index]
	}
	return results
}
