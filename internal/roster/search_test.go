package roster

import (
	"testing"

	"github.com/theirongolddev/deeday/internal/model"

	"github.com/stretchr/testify/assert"
)

func names(ms []model.Member) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	members := []model.Member{
		{ID: "1", Name: "Ann", Relationship: "Sister"},
		{ID: "2", Name: "Bob", Relationship: "Brother"},
		{ID: "3", Name: "Brooke", Relationship: "Aunt"},
	}

	tests := []struct {
		term string
		want []string
	}{
		{"", []string{"Ann", "Bob", "Brooke"}},
		{"bro", []string{"Bob", "Brooke"}},
		{"BRO", []string{"Bob", "Brooke"}},
		{"sis", []string{"Ann"}},
		{"an", []string{"Ann"}},
		{"aunt", []string{"Brooke"}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(members, tt.term)))
		})
	}
}

func TestFilter_RelationshipMatchOnly(t *testing.T) {
	members := []model.Member{
		{ID: "1", Name: "Ann", Relationship: "Sister"},
		{ID: "2", Name: "Bob", Relationship: "Brother"},
	}
	assert.Equal(t, []string{"Bob"}, names(Filter(members, "bro")))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	members := []model.Member{
		{ID: "1", Name: "Ann", Relationship: "Sister"},
		{ID: "2", Name: "Bob", Relationship: "Brother"},
	}
	Filter(members, "bob")
	assert.Len(t, members, 2)
	assert.Equal(t, "Ann", members[0].Name)
}

func TestFilter_UnicodeCaseFolding(t *testing.T) {
	members := []model.Member{
		{ID: "1", Name: "Ömer", Relationship: "Großvater"},
	}
	assert.Equal(t, []string{"Ömer"}, names(Filter(members, "öMER")))
	assert.Equal(t, []string{"Ömer"}, names(Filter(members, "GROSS")))
}
