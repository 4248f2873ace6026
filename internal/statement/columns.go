package statement

import (
	"fmt"
	"strings"
)

// MissingColumnsError reports required fields that matched none of their
// aliases, along with the header that was actually found.
type MissingColumnsError struct {
	Fields    []Field
	Available []string
}

func (e *MissingColumnsError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = strings.Join(f.Aliases, "/")
	}
	return fmt.Sprintf("could not find essential columns (%s); available columns: [%s]",
		strings.Join(names, ", "), strings.Join(e.Available, ", "))
}

// Resolve maps each canonical field to a header index. Optional fields that
// match nothing are left out; required ones produce a *MissingColumnsError.
func Resolve(header []string, fields []Field) (map[string]int, error) {
	resolved := make(map[string]int, len(fields))
	var missing []Field
	for _, f := range fields {
		idx, ok := lookup(header, f.Aliases)
		if !ok {
			if f.Required {
				missing = append(missing, f)
			}
			continue
		}
		resolved[f.Name] = idx
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Fields: missing, Available: header}
	}
	return resolved, nil
}

// lookup returns the index of the first alias present in header. Matching is
// exact and case-sensitive.
func lookup(header, aliases []string) (int, bool) {
	for _, alias := range aliases {
		for i, name := range header {
			if name == alias {
				return i, true
			}
		}
	}
	return 0, false
}
