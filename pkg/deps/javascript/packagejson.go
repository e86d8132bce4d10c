package javascript

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/matzehuels/depscope/pkg/errors"
)

// PackageJSON parses package.json files. Only the "dependencies" object is
// read; devDependencies and peerDependencies are ignored.
type PackageJSON struct{}

func (p *PackageJSON) Type() string              { return "package.json" }
func (p *PackageJSON) Supports(name string) bool { return strings.EqualFold(name, "package.json") }

// Parse returns one "name:version" token per dependencies entry, in document
// order. A repeated key keeps its first position and its last value.
// Non-string versions are emitted as their JSON text.
func (p *PackageJSON) Parse(content string) ([]string, error) {
	dec := json.NewDecoder(strings.NewReader(content))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "package.json is not a JSON object")
	}

	var depsRaw json.RawMessage
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid package.json")
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid package.json")
		}
		if key == "dependencies" {
			depsRaw = value
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid package.json")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrCodeParse, "invalid package.json: trailing data")
	}

	return dependencyTokens(depsRaw)
}

func dependencyTokens(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid dependencies object")
	}

	var names, versions []string
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid dependencies object")
		}
		name, _ := tok.(string)
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "invalid dependencies object")
		}
		version := versionText(value)
		if i, ok := index[name]; ok {
			versions[i] = version
			continue
		}
		index[name] = len(names)
		names = append(names, name)
		versions = append(versions, version)
	}

	tokens := make([]string, len(names))
	for i := range names {
		tokens[i] = names[i] + ":" + versions[i]
	}
	return tokens, nil
}

func versionText(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}
	return string(bytes.TrimSpace(value))
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.New(errors.ErrCodeParse, "expected %q, got %v", want, tok)
	}
	return nil
}
