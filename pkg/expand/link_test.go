package expand

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
		want  Link
	}{
		{
			name:  "single https link",
			field: "homeworld",
			value: "https://swapi.dev/api/planets/1/",
			want:  Link{Kind: SingleLink, URL: "https://swapi.dev/api/planets/1/"},
		},
		{
			name:  "single http link",
			field: "homeworld",
			value: "http://localhost/api/planets/1/",
			want:  Link{Kind: SingleLink, URL: "http://localhost/api/planets/1/"},
		},
		{
			name:  "link list",
			field: "films",
			value: []any{"https://swapi.dev/api/films/1/", "https://swapi.dev/api/films/2/"},
			want: Link{Kind: LinkList, URLs: []string{
				"https://swapi.dev/api/films/1/",
				"https://swapi.dev/api/films/2/",
			}},
		},
		{
			name:  "empty list",
			field: "species",
			value: []any{},
			want:  Link{Kind: NotLink},
		},
		{
			name:  "mixed list",
			field: "films",
			value: []any{"https://swapi.dev/api/films/1/", "A New Hope"},
			want:  Link{Kind: NotLink},
		},
		{
			name:  "list of numbers",
			field: "ids",
			value: []any{1, 2},
			want:  Link{Kind: NotLink},
		},
		{
			name:  "plain string",
			field: "name",
			value: "Luke Skywalker",
			want:  Link{Kind: NotLink},
		},
		{
			name:  "null",
			field: "homeworld",
			value: nil,
			want:  Link{Kind: NotLink},
		},
		{
			name:  "reserved url",
			field: "url",
			value: "https://swapi.dev/api/people/1/",
			want:  Link{Kind: NotLink},
		},
		{
			name:  "reserved next",
			field: "next",
			value: "https://swapi.dev/api/people/?page=2",
			want:  Link{Kind: NotLink},
		},
		{
			name:  "reserved previous",
			field: "previous",
			value: "https://swapi.dev/api/people/?page=1",
			want:  Link{Kind: NotLink},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.field, tt.value)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q, %v) = %+v, want %+v", tt.field, tt.value, got, tt.want)
			}
		})
	}
}

func TestIsReserved(t *testing.T) {
	for _, field := range []string{"url", "next", "previous", "created", "edited"} {
		if !IsReserved(field) {
			t.Errorf("IsReserved(%q) = false, want true", field)
		}
	}
	if IsReserved("homeworld") {
		t.Error("IsReserved(homeworld) = true, want false")
	}
}

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantAll   bool
		wantEmpty bool
		selects   []string
		rejects   []string
	}{
		{
			name:    "all",
			input:   "all",
			wantAll: true,
			selects: []string{"films", "homeworld", "anything"},
		},
		{
			name:    "explicit list",
			input:   "films,homeworld",
			selects: []string{"films", "homeworld"},
			rejects: []string{"species", "all"},
		},
		{
			name:    "whitespace and blanks",
			input:   " films , ,homeworld,",
			selects: []string{"films", "homeworld"},
			rejects: []string{""},
		},
		{
			name:      "empty",
			input:     "",
			wantEmpty: true,
			rejects:   []string{"films"},
		},
		{
			name:      "only commas",
			input:     ",,",
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ParseDirective(tt.input)
			if d.All != tt.wantAll {
				t.Errorf("All = %v, want %v", d.All, tt.wantAll)
			}
			if d.Empty() != tt.wantEmpty {
				t.Errorf("Empty() = %v, want %v", d.Empty(), tt.wantEmpty)
			}
			for _, f := range tt.selects {
				if !d.Selects(f) {
					t.Errorf("Selects(%q) = false, want true", f)
				}
			}
			for _, f := range tt.rejects {
				if d.Selects(f) {
					t.Errorf("Selects(%q) = true, want false", f)
				}
			}
		})
	}
}
