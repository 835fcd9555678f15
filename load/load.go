// Package load decodes schema documents from JSON, YAML and CUE sources.
//
// Every source is normalised to JSON and decoded through the schema
// package's JSON rules, so unknown keys land in Extra and wrongly typed
// attribute values become invalid attributes instead of errors.
package load

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueload "cuelang.org/go/cue/load"
	"gopkg.in/yaml.v3"

	"github.com/matthewbaird/uischema/schema"
)

// Format names a source encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CUE  Format = "cue"
)

// Error reports a document that could not be loaded.
type Error struct {
	Format Format
	Source string
	Err    error
}

func (e *Error) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("load %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("load %s %s: %v", e.Format, e.Source, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FromJSON decodes a JSON document.
func FromJSON(data []byte) (schema.Document, error) {
	return decode(JSON, "", data)
}

// FromYAML decodes a YAML document.
func FromYAML(data []byte) (schema.Document, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, &Error{Format: YAML, Err: err}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, &Error{Format: YAML, Err: err}
	}
	return decode(YAML, "", b)
}

// FromCUE compiles CUE source and decodes the value at path, or the whole
// value when path is empty. The value must be concrete.
func FromCUE(data []byte, filename, path string) (schema.Document, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	return fromCUEValue(v, filename, path)
}

// FromCUEPackage loads the CUE package in dir and decodes the value at path.
func FromCUEPackage(dir, path string) (schema.Document, error) {
	insts := cueload.Instances([]string{"."}, &cueload.Config{Dir: dir})
	if len(insts) == 0 {
		return nil, &Error{Format: CUE, Source: dir, Err: errors.New("no CUE instances found")}
	}
	if err := insts[0].Err; err != nil {
		return nil, &Error{Format: CUE, Source: dir, Err: cueError(err)}
	}
	ctx := cuecontext.New()
	return fromCUEValue(ctx.BuildInstance(insts[0]), dir, path)
}

func fromCUEValue(v cue.Value, source, path string) (schema.Document, error) {
	if err := v.Err(); err != nil {
		return nil, &Error{Format: CUE, Source: source, Err: cueError(err)}
	}
	if path != "" {
		v = v.LookupPath(cue.ParsePath(path))
		if !v.Exists() {
			return nil, &Error{Format: CUE, Source: source, Err: fmt.Errorf("path %q not found", path)}
		}
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, &Error{Format: CUE, Source: source, Err: cueError(err)}
	}
	b, err := v.MarshalJSON()
	if err != nil {
		return nil, &Error{Format: CUE, Source: source, Err: cueError(err)}
	}
	return decode(CUE, source, b)
}

// cueError flattens a CUE error list into one error carrying every position.
func cueError(err error) error {
	return errors.New(strings.TrimSpace(cueerrors.Details(err, nil)))
}

// File loads a document, choosing the decoder by extension. A directory is
// loaded as a CUE package.
func File(path string) (schema.Document, error) {
	return FileAt(path, "")
}

// FileAt is File with a CUE path selecting the document inside a CUE file or
// package. cuePath is ignored for JSON and YAML.
func FileAt(path, cuePath string) (schema.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if info.IsDir() {
		return FromCUEPackage(path, cuePath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var doc schema.Document
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		doc, err = FromJSON(data)
	case ".yaml", ".yml":
		doc, err = FromYAML(data)
	case ".cue":
		doc, err = FromCUE(data, path, cuePath)
	default:
		return nil, fmt.Errorf("load %s: unsupported extension %q", path, ext)
	}
	var le *Error
	if errors.As(err, &le) && le.Source == "" {
		le.Source = path
	}
	return doc, err
}

func decode(format Format, source string, data []byte) (schema.Document, error) {
	var doc schema.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Format: format, Source: source, Err: err}
	}
	if doc == nil {
		doc = schema.Document{}
	}
	return doc, nil
}
