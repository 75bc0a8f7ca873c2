// Package scene reads YAML documents describing a tree of flex elements and
// builds them into a flex.Tree.
package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/transition"
)

type (
	// Document is one scene file.
	Document struct {
		Viewport    *Size        `yaml:"viewport"`
		Root        Element      `yaml:"root"`
		Transitions []Transition `yaml:"transitions"`
	}

	// Size is a width and height pair.
	Size struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	}

	// Scale is a pair of scale factors.
	Scale struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	}

	// AutoSize selects the axes a root writes its preferred size to.
	AutoSize struct {
		X bool `yaml:"x"`
		Y bool `yaml:"y"`
	}

	// Element describes one host element and, unless it is a group, the
	// layout node attached to it.
	Element struct {
		Name     string   `yaml:"name"`
		Kind     Kind     `yaml:"kind"`
		Active   *bool    `yaml:"active"`
		Absolute bool     `yaml:"absolute"`
		AutoSize AutoSize `yaml:"auto-size"`
		Size     *Size    `yaml:"size"`
		Scale    *Scale   `yaml:"scale"`

		Basis     flex.Length    `yaml:"basis"`
		Grow      *int           `yaml:"grow"`
		Shrink    *int           `yaml:"shrink"`
		MinWidth  flex.Length    `yaml:"min-width"`
		MaxWidth  flex.Length    `yaml:"max-width"`
		MinHeight flex.Length    `yaml:"min-height"`
		MaxHeight flex.Length    `yaml:"max-height"`
		AlignSelf flex.AlignSelf `yaml:"align-self"`

		Direction  flex.Direction `yaml:"direction"`
		Justify    flex.Justify   `yaml:"justify"`
		AlignItems *flex.Align    `yaml:"align-items"`
		Padding    flex.Padding   `yaml:"padding"`
		Gap        float64        `yaml:"gap"`

		Columns     int     `yaml:"columns"`
		ColumnWidth float64 `yaml:"column-width"`

		Aspect []float64 `yaml:"aspect"`
		Text   string    `yaml:"text"`

		Children []Element `yaml:"children"`
	}

	// Transition animates one property of a named element.
	Transition struct {
		Property transition.Property `yaml:"property"`
		Target   string              `yaml:"target"`
		From     float64             `yaml:"from"`
		To       float64             `yaml:"to"`
		Duration time.Duration       `yaml:"duration"`
		Ease     transition.Easing   `yaml:"ease"`
	}
)

// Decode reads a document, rejecting fields it does not know.
func Decode(r io.Reader) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return doc, nil
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Walk calls fn for e and every descendant, depth first, with the path of
// names (or indexes) leading to each element.
func (e *Element) Walk(fn func(path string, el *Element)) {
	e.walk(e.label("root"), fn)
}

func (e *Element) walk(path string, fn func(string, *Element)) {
	fn(path, e)
	for i := range e.Children {
		child := &e.Children[i]
		child.walk(path+"/"+child.label(fmt.Sprint(i)), fn)
	}
}

func (e *Element) label(fallback string) string {
	if e.Name != "" {
		return e.Name
	}
	return fallback
}
