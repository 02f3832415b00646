package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  bool
	}{
		{"j", JSONFormat, false},
		{"json", JSONFormat, false},
		{"y", YAMLFormat, false},
		{"yaml", YAMLFormat, false},
		{"yml", YAMLFormat, false},
		{"tony", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.err {
				if !errors.Is(err, ErrBadFormat) {
					t.Fatalf("expected ErrBadFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFromPath(t *testing.T) {
	tests := map[string]Format{
		"doc.json":      JSONFormat,
		"doc.yaml":      YAMLFormat,
		"dir/doc.yml":   YAMLFormat,
		"patch":         JSONFormat,
		"-":             JSONFormat,
		"weird.yaml.js": JSONFormat,
	}
	for path, want := range tests {
		if got := FromPath(path); got != want {
			t.Errorf("FromPath(%q) = %s, want %s", path, got, want)
		}
	}
}
