package expand

import (
	"strings"
)

// allFields is the directive value selecting every link field.
const allFields = "all"

// Directive selects which link fields get expanded.
type Directive struct {
	All    bool
	Fields map[string]struct{}
}

// ParseDirective parses an expand parameter: "all", or a comma-separated
// list of field names. Blank entries are ignored.
func ParseDirective(s string) Directive {
	s = strings.TrimSpace(s)
	if s == allFields {
		return Directive{All: true}
	}

	fields := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			fields[name] = struct{}{}
		}
	}
	return Directive{Fields: fields}
}

// Empty reports whether the directive selects nothing.
func (d Directive) Empty() bool {
	return !d.All && len(d.Fields) == 0
}

// Selects reports whether field is requested for expansion.
func (d Directive) Selects(field string) bool {
	if d.All {
		return true
	}
	_, ok := d.Fields[field]
	return ok
}
