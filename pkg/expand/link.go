package expand

import (
	"strings"
)

// LinkKind classifies a document field value.
type LinkKind int

const (
	// NotLink is any value that is not a hyperlink to another resource.
	NotLink LinkKind = iota
	// SingleLink is a string URL.
	SingleLink
	// LinkList is a non-empty list made only of string URLs.
	LinkList
)

// String returns the kind name for logs.
func (k LinkKind) String() string {
	switch k {
	case SingleLink:
		return "single"
	case LinkList:
		return "list"
	default:
		return "none"
	}
}

// Link is the classification of one field value.
type Link struct {
	Kind LinkKind
	URL  string   // set for SingleLink
	URLs []string // set for LinkList
}

// reservedFields hold URLs or timestamps that describe the document itself
// and are never followed.
var reservedFields = map[string]struct{}{
	"url":      {},
	"next":     {},
	"previous": {},
	"created":  {},
	"edited":   {},
}

// IsReserved reports whether field is never expanded.
func IsReserved(field string) bool {
	_, ok := reservedFields[field]
	return ok
}

// Classify inspects a field value and reports whether it links to other
// resources.
func Classify(field string, value any) Link {
	if IsReserved(field) {
		return Link{Kind: NotLink}
	}

	switch v := value.(type) {
	case string:
		if isURL(v) {
			return Link{Kind: SingleLink, URL: v}
		}
	case []any:
		if len(v) == 0 {
			return Link{Kind: NotLink}
		}
		urls := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok || !isURL(s) {
				return Link{Kind: NotLink}
			}
			urls = append(urls, s)
		}
		return Link{Kind: LinkList, URLs: urls}
	}

	return Link{Kind: NotLink}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
