package model

// AttendanceRecord is the outcome for a single member on a single date.
type AttendanceRecord struct {
	Member   Member `json:"member"`
	Attended bool   `json:"attended"`
}

// Status renders the attended flag the way listings show it.
func (r AttendanceRecord) Status() string {
	if r.Attended {
		return "Attended"
	}
	return "Not Attended"
}

func (r AttendanceRecord) String() string {
	return r.Member.String() + ", " + r.Status()
}
