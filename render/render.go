// Package render draws an rbtree as indented box-drawing text, one node per line:
//
//	B(10,ten)
//	 ├─<B(20,twenty)
//	 │   ├─<R(25,twenty-five)
//	 │   └─>nil
//	 └─>B(5,five)
//
// The larger child is drawn first. A node with no children has no child lines; a node
// with one child shows nil in place of the other.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/fatih/color"
)

const (
	junctionSmaller = " └─>"
	junctionLarger  = " ├─<"
	leadSmaller     = "    "
	leadLarger      = " │  "
	empty           = "nil"
)

type options struct {
	colored bool
}

// Option configures rendering.
type Option func(*options)

// WithColor turns ANSI coloring of node labels on or off. Red nodes are drawn in red and
// black nodes in blue. Coloring is off by default.
func WithColor(enabled bool) Option {
	return func(o *options) {
		o.colored = enabled
	}
}

type painter struct {
	red   *color.Color
	black *color.Color
}

func newPainter(opts options) painter {
	p := painter{
		red:   color.New(color.FgRed),
		black: color.New(color.FgBlue),
	}

	if opts.colored {
		p.red.EnableColor()
		p.black.EnableColor()
	} else {
		p.red.DisableColor()
		p.black.DisableColor()
	}

	return p
}

func label[K sortable.Sortable[K], V any](p painter, v rbtree.View[K, V]) string {
	if v.Red() {
		return p.red.Sprint(fmt.Sprintf("R(%v,%v)", v.Key(), v.Value()))
	}

	return p.black.Sprint(fmt.Sprintf("B(%v,%v)", v.Key(), v.Value()))
}

// String renders the subtree below root. An invalid view renders as "nil". Black nodes
// and nil placeholders share a color.
func String[K sortable.Sortable[K], V any](root rbtree.View[K, V], opts ...Option) string {
	var cfg options
	for _, opt := range opts {
		opt(&cfg)
	}

	p := newPainter(cfg)

	if !root.Valid() {
		return p.black.Sprint(empty) + "\n"
	}

	var buf strings.Builder

	buf.WriteString(label(p, root))
	buf.WriteByte('\n')
	writeChildren(&buf, p, root, "")

	return buf.String()
}

// Tree renders the whole tree.
func Tree[K sortable.Sortable[K], V any](tree *rbtree.Tree[K, V], opts ...Option) string {
	return String(tree.Root(), opts...)
}

// Render writes the rendering of tree to w.
func Render[K sortable.Sortable[K], V any](w io.Writer, tree *rbtree.Tree[K, V], opts ...Option) error {
	_, err := io.WriteString(w, Tree(tree, opts...))

	return err
}

func writeChildren[K sortable.Sortable[K], V any](buf *strings.Builder, p painter, v rbtree.View[K, V], lead string) {
	bigger, lesser := v.Larger(), v.Smaller()
	if !bigger.Valid() && !lesser.Valid() {
		return
	}

	writeChild(buf, p, bigger, lead, junctionLarger, leadLarger)
	writeChild(buf, p, lesser, lead, junctionSmaller, leadSmaller)
}

func writeChild[K sortable.Sortable[K], V any](
	buf *strings.Builder, p painter, v rbtree.View[K, V], lead, junction, nextLead string,
) {
	buf.WriteString(lead)
	buf.WriteString(junction)

	if !v.Valid() {
		buf.WriteString(p.black.Sprint(empty))
		buf.WriteByte('\n')

		return
	}

	buf.WriteString(label(p, v))
	buf.WriteByte('\n')
	writeChildren(buf, p, v, lead+nextLead)
}
