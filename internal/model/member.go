package model

// Member is a family member on the roster.
type Member struct {
	ID           string `json:"id" yaml:"id" toml:"id"`
	Name         string `json:"name" yaml:"name" toml:"name"`
	Birthdate    Date   `json:"birthdate" yaml:"birthdate" toml:"birthdate"`
	Relationship string `json:"relationship" yaml:"relationship" toml:"relationship"`
}

// ShortID returns the first 8 characters of the member ID for display.
func (m Member) ShortID() string {
	if len(m.ID) > 8 {
		return m.ID[:8]
	}
	return m.ID
}

// Complete reports whether every user-supplied field is set.
func (m Member) Complete() bool {
	return m.Name != "" && !m.Birthdate.IsZero() && m.Relationship != ""
}
