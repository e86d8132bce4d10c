package javascript

import (
	"reflect"
	"testing"

	"github.com/matzehuels/depscope/pkg/errors"
)

func TestPackageJSON_Supports(t *testing.T) {
	parser := &PackageJSON{}

	tests := []struct {
		filename string
		want     bool
	}{
		{"package.json", true},
		{"Package.json", true},
		{"package-lock.json", false},
		{"requirements.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := parser.Supports(tt.filename); got != tt.want {
				t.Errorf("Supports(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestPackageJSON_Parse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "two dependencies in order",
			content: `{"dependencies":{"react":"^18.2.0","lodash":"~4.17.21"}}`,
			want:    []string{"react:^18.2.0", "lodash:~4.17.21"},
		},
		{
			name: "document order not alphabetical",
			content: `{
  "name": "my-package",
  "dependencies": {
    "zod": "3.22.0",
    "axios": "1.6.0",
    "express": "^4.18.0"
  },
  "devDependencies": {
    "jest": "^29.0.0"
  }
}`,
			want: []string{"zod:3.22.0", "axios:1.6.0", "express:^4.18.0"},
		},
		{
			name:    "no dependencies key",
			content: `{"name":"empty","devDependencies":{"jest":"29"}}`,
			want:    nil,
		},
		{
			name:    "null dependencies",
			content: `{"dependencies":null}`,
			want:    nil,
		},
		{
			name:    "non-string version",
			content: `{"dependencies":{"odd":1}}`,
			want:    []string{"odd:1"},
		},
		{
			name:    "repeated key keeps first position",
			content: `{"dependencies":{"a":"1","b":"2","a":"3"}}`,
			want:    []string{"a:3", "b:2"},
		},
	}

	parser := &PackageJSON{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.content)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPackageJSON_ParseErrors(t *testing.T) {
	parser := &PackageJSON{}
	for _, content := range []string{
		`{"dependencies": {`,
		`not json`,
		`[1, 2]`,
		``,
		`{"a":1} trailing`,
	} {
		_, err := parser.Parse(content)
		if !errors.Is(err, errors.ErrCodeParse) {
			t.Errorf("Parse(%q) error = %v, want PARSE_ERROR", content, err)
		}
	}
}
