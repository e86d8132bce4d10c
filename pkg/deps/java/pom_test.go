package java

import (
	"reflect"
	"testing"

	"github.com/matzehuels/depscope/pkg/errors"
)

func TestPOMParser_Parse(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>com.example</groupId>
  <artifactId>app</artifactId>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>org.springframework</groupId>
        <artifactId>spring-framework-bom</artifactId>
        <version>5.3.0</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId>junit</groupId>
      <artifactId>junit</artifactId>
      <version>4.13</version>
      <scope>test</scope>
    </dependency>
    <dependency>
      <groupId>org.slf4j</groupId>
      <artifactId>slf4j-api</artifactId>
    </dependency>
    <dependency>
      <groupId>org.example</groupId>
      <artifactId>with-exclusions</artifactId>
      <version>${lib.version}</version>
      <exclusions>
        <exclusion>
          <groupId>x</groupId>
          <artifactId>y</artifactId>
        </exclusion>
      </exclusions>
    </dependency>
    <dependency>
      <groupId>only.group</groupId>
    </dependency>
  </dependencies>
</project>`

	got, err := (&POMParser{}).Parse(content)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := []string{
		"spring-framework-bom:5.3.0",
		"junit:4.13",
		"slf4j-api:",
		"with-exclusions:${lib.version}",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Parse() = %q, want %q", got, want)
	}
}

func TestPOMParser_SingleDependency(t *testing.T) {
	content := `<project><dependencies><dependency><artifactId>junit</artifactId><version>4.13</version></dependency></dependencies></project>`
	got, err := (&POMParser{}).Parse(content)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"junit:4.13"}) {
		t.Errorf("Parse() = %q", got)
	}
}

func TestPOMParser_EmptyEntries(t *testing.T) {
	tests := []struct {
		name string
		dep  string
		want []string
	}{
		{"neither artifact nor version", `<groupId>g</groupId>`, nil},
		{"blank children", `<artifactId> </artifactId><version></version>`, nil},
		{"empty element", ``, nil},
		{"artifact only", `<artifactId>a</artifactId>`, []string{"a:"}},
		{"version only", `<version>1.0</version>`, []string{":1.0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := "<project><dependencies><dependency>" + tt.dep + "</dependency></dependencies></project>"
			got, err := (&POMParser{}).Parse(content)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPOMParser_ParseErrors(t *testing.T) {
	for _, content := range []string{
		`<project><dependencies>`,
		`<project></dependencies></project>`,
		``,
		`just text`,
	} {
		_, err := (&POMParser{}).Parse(content)
		if !errors.Is(err, errors.ErrCodeParse) {
			t.Errorf("Parse(%q) error = %v, want PARSE_ERROR", content, err)
		}
	}
}
