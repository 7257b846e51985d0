package roster

import "github.com/idilsaglam/attendance/internal/model"

// HasNoDuplicates reports whether every member ID is unique.
// Comparison is exact and case-sensitive.
func HasNoDuplicates(members []model.Member) bool {
	seen := make(map[string]struct{}, len(members))
	for _, m := range members {
		if _, ok := seen[m.ID]; ok {
			return false
		}
		seen[m.ID] = struct{}{}
	}
	return true
}

// DuplicateIDs lists each repeated ID once, in the order its second
// occurrence appears.
func DuplicateIDs(members []model.Member) []string {
	seen := make(map[string]int, len(members))
	var dups []string
	for _, m := range members {
		seen[m.ID]++
		if seen[m.ID] == 2 {
			dups = append(dups, m.ID)
		}
	}
	return dups
}
