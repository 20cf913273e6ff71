package render

import "strings"

// Node is one structured piece of region content. Text and attribute values
// are escaped at serialization time, so a renderer cannot interpolate raw
// markup even by accident.
type Node interface {
	writeTo(b *strings.Builder)
}

type textNode string

func (t textNode) writeTo(b *strings.Builder) {
	b.WriteString(Escape(string(t)))
}

// Text wraps a string as an escaped text node.
func Text(s string) Node { return textNode(s) }

type attr struct {
	key, val string
}

// Element is a named tag with attributes and children.
type Element struct {
	tag   string
	attrs []attr
	kids  []Node
}

// El builds an element node. Nil children are skipped at serialization.
func El(tag string, kids ...Node) *Element {
	return &Element{tag: tag, kids: kids}
}

// Attr appends an attribute; the value is escaped on output.
func (e *Element) Attr(key, val string) *Element {
	e.attrs = append(e.attrs, attr{key, val})
	return e
}

// Child appends more children.
func (e *Element) Child(kids ...Node) *Element {
	e.kids = append(e.kids, kids...)
	return e
}

var voidTags = map[string]bool{
	"img":   true,
	"br":    true,
	"hr":    true,
	"input": true,
}

func (e *Element) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.key)
		b.WriteString(`="`)
		b.WriteString(Escape(a.val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	if voidTags[e.tag] {
		return
	}
	for _, k := range e.kids {
		if k != nil {
			k.writeTo(b)
		}
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
}

// Markup serializes a node sequence.
func Markup(nodes ...Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n != nil {
			n.writeTo(&b)
		}
	}
	return b.String()
}
