package model

// Member is one entry of a roster file.
// IDs are expected to be unique but nothing here enforces it;
// see roster.HasNoDuplicates.
type Member struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

func (m Member) String() string {
	return m.ID + ", " + m.Name
}
