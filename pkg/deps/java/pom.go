package java

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/matzehuels/depscope/pkg/errors"
)

// POMParser parses Maven pom.xml files.
type POMParser struct{}

func (p *POMParser) Type() string              { return "pom.xml" }
func (p *POMParser) Supports(name string) bool { return name == "pom.xml" }

// Parse emits "artifactId:version" for every <dependency> element at any
// depth, including dependencyManagement and plugin dependencies. Missing
// children read as empty strings; an element with neither is skipped.
// Malformed XML fails with a PARSE_ERROR.
func (p *POMParser) Parse(content string) ([]string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))

	var tokens []string
	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid pom.xml")
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		sawRoot = true
		if start.Name.Local != "dependency" {
			continue
		}
		var dep pomDependency
		if err := dec.DecodeElement(&dep, &start); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid pom.xml dependency")
		}
		artifact, version := strings.TrimSpace(dep.ArtifactID), strings.TrimSpace(dep.Version)
		if artifact == "" && version == "" {
			continue
		}
		tokens = append(tokens, artifact+":"+version)
	}
	if !sawRoot {
		return nil, errors.New(errors.ErrCodeParse, "invalid pom.xml: no root element")
	}
	return tokens, nil
}

type pomDependency struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}
