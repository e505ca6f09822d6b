package roster

import (
	"strings"

	"github.com/theirongolddev/deeday/internal/model"

	"golang.org/x/text/cases"
)

// Filter returns the members whose name or relationship contains term,
// ignoring case. An empty term matches everyone. The input is not modified.
func Filter(members []model.Member, term string) []model.Member {
	if term == "" {
		return members
	}

	fold := cases.Fold()
	needle := fold.String(term)

	var out []model.Member
	for _, m := range members {
		if strings.Contains(fold.String(m.Name), needle) ||
			strings.Contains(fold.String(m.Relationship), needle) {
			out = append(out, m)
		}
	}
	return out
}
