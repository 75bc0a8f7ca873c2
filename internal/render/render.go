// Package render snapshots computed geometry from a flex.Tree and writes it
// as JSON, YAML or a terminal tree.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex"
)

// Node is the computed geometry of one element and its descendants.
// Positions are relative to the parent. Overflow marks in-flow elements
// that extend past their parent's rect.
type Node struct {
	Name     string  `json:"name" yaml:"name"`
	Kind     string  `json:"kind" yaml:"kind"`
	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Absolute bool    `json:"absolute,omitempty" yaml:"absolute,omitempty"`
	Inactive bool    `json:"inactive,omitempty" yaml:"inactive,omitempty"`
	Overflow bool    `json:"overflow,omitempty" yaml:"overflow,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Snapshot copies the geometry of id and its subtree.
func Snapshot(t *flex.Tree, id flex.ElementID) *Node {
	r := t.Transform(id).Rect()
	n := &Node{
		Name:     t.Name(id),
		Kind:     kindOf(t.Node(id)),
		X:        r.X,
		Y:        r.Y,
		Width:    r.Width,
		Height:   r.Height,
		Inactive: !t.Active(id),
	}
	if node := t.Node(id); node != nil {
		n.Absolute = node.IsAbsolute()
	}
	bounds := flex.NewRect(0, 0, r.Width, r.Height)
	for _, cid := range t.Children(id) {
		child := Snapshot(t, cid)
		child.Overflow = !child.Absolute && !child.Inactive && !bounds.ContainsRect(child.Rect())
		n.Children = append(n.Children, child)
	}
	return n
}

// Rect returns the node's rect in its parent's frame.
func (n *Node) Rect() flex.Rect {
	return flex.NewRect(n.X, n.Y, n.Width, n.Height)
}

// Extent returns the box covering n and every active descendant, in n's
// parent frame.
func Extent(n *Node) flex.Rect {
	r := n.Rect()
	for _, c := range n.Children {
		if c.Inactive {
			continue
		}
		r = r.Union(Extent(c).Translate(n.X, n.Y))
	}
	return r
}

func kindOf(n flex.Node) string {
	switch n.(type) {
	case nil:
		return "group"
	case *flex.Container:
		return "container"
	case *flex.Columns:
		return "columns"
	case *flex.Text:
		return "text"
	case *flex.AspectRatio:
		return "aspect"
	default:
		return fmt.Sprintf("%T", n)
	}
}

// Format selects an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTree Format = "tree"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatYAML, FormatTree:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or tree)", s)
}

// Write encodes n to w.
func Write(w io.Writer, f Format, n *Node) error {
	switch f {
	case FormatJSON:
		return JSON(w, n)
	case FormatYAML:
		return YAML(w, n)
	case FormatTree:
		return Tree(w, n)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// JSON writes n as indented JSON.
func JSON(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(n)
}

// YAML writes n as YAML.
func YAML(w io.Writer, n *Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return err
	}
	return enc.Close()
}

var (
	styleName = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	styleKind = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleRect = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	styleDim  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Tree writes n as an indented terminal tree.
func Tree(w io.Writer, n *Node) error {
	_, err := fmt.Fprintln(w, buildTree(n).String())
	return err
}

func buildTree(n *Node) *tree.Tree {
	t := tree.Root(label(n)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styleDim)
	for _, child := range n.Children {
		if len(child.Children) == 0 {
			t.Child(label(child))
			continue
		}
		t.Child(buildTree(child))
	}
	return t
}

func label(n *Node) string {
	var b strings.Builder
	b.WriteString(styleName.Render(n.Name))
	b.WriteString(" ")
	b.WriteString(styleKind.Render(n.Kind))
	b.WriteString(" ")
	b.WriteString(styleRect.Render(fmt.Sprintf("%g,%g %gx%g", n.X, n.Y, n.Width, n.Height)))
	if n.Absolute {
		b.WriteString(styleDim.Render(" absolute"))
	}
	if n.Inactive {
		b.WriteString(styleDim.Render(" inactive"))
	}
	if n.Overflow {
		b.WriteString(styleWarn.Render(" overflow"))
	}
	return b.String()
}
