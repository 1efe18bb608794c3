// SPDX-License-Identifier: MIT

package xformdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the newest document version this package understands.
const CurrentVersion = 1

// Document is the top-level YAML object.
type Document struct {
	Version    int         `yaml:"version"`
	Transforms []Transform `yaml:"transforms"`
}

// Transform describes one named transform.
type Transform struct {
	Name string `yaml:"name"`

	// Matrix holds 16 column-major components; empty means identity.
	Matrix []float32 `yaml:"matrix,omitempty,flow"`
	Steps  []Step    `yaml:"steps,omitempty"`

	// Projective skips the affine check. Implied by a perspective step.
	Projective bool `yaml:"projective,omitempty"`
}

// Step is one composition operation; exactly one field must be set.
type Step struct {
	Translate   []float32        `yaml:"translate,omitempty,flow"`
	Scale       []float32        `yaml:"scale,omitempty,flow"`
	Rotate      *AxisAngle       `yaml:"rotate,omitempty"`
	LookAt      *LookAtStep      `yaml:"lookAt,omitempty"`
	Perspective *PerspectiveStep `yaml:"perspective,omitempty"`
	Ortho       *OrthoStep       `yaml:"ortho,omitempty"`
}

// AxisAngle is a rotation by Angle about Axis; Angle is in radians unless
// Degrees is set.
type AxisAngle struct {
	Angle   float32   `yaml:"angle"`
	Axis    []float32 `yaml:"axis,flow"`
	Degrees bool      `yaml:"degrees,omitempty"`
}

// LookAtStep is a right-handed view matrix looking from Eye at Target.
type LookAtStep struct {
	Eye    []float32 `yaml:"eye,flow"`
	Target []float32 `yaml:"target,flow"`
	Up     []float32 `yaml:"up,flow"`
}

// PerspectiveStep is a perspective projection; FovY is in radians unless
// Degrees is set.
type PerspectiveStep struct {
	FovY    float32 `yaml:"fovy"`
	Aspect  float32 `yaml:"aspect"`
	Near    float32 `yaml:"near"`
	Far     float32 `yaml:"far"`
	Degrees bool    `yaml:"degrees,omitempty"`
}

// OrthoStep is an orthographic projection of the given box.
type OrthoStep struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Bottom float32 `yaml:"bottom"`
	Top    float32 `yaml:"top"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

func (d *Document) normalize() {
	if d.Version == 0 {
		d.Version = CurrentVersion
	}
}

// validate checks the document-level invariants: supported version and
// unique, non-empty names. Transform contents are checked by Build.
func (d *Document) validate() error {
	if d.Version > CurrentVersion {
		return fmt.Errorf("version %d: %w", d.Version, ErrUnsupportedVersion)
	}
	seen := make(map[string]int, len(d.Transforms))
	for i, s := range d.Transforms {
		if s.Name == "" {
			return fmt.Errorf("transform #%d: %w", i, ErrEmptyName)
		}
		if j, ok := seen[s.Name]; ok {
			return fmt.Errorf("transform %q (#%d and #%d): %w", s.Name, j, i, ErrDuplicateName)
		}
		seen[s.Name] = i
	}

	return nil
}

// Load decodes a document from r. Unknown fields are rejected; an empty
// stream yields an empty document.
func Load(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("parse document: %w", err)
	}
	doc.normalize()
	if err := doc.validate(); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Parse is Load over an in-memory document.
func Parse(data []byte) (Document, error) {
	return Load(bytes.NewReader(data))
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Marshal encodes doc with a two-space indent.
func Marshal(doc Document) ([]byte, error) {
	doc.normalize()
	if err := doc.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile marshals doc to path.
func WriteFile(path string, doc Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
