package main

import (
	"fmt"
	"strings"

	"github.com/resonatelabs/atombuf"
	"github.com/resonatelabs/atombuf/urid"
)

// node is one atom in the rendered tree.
type node struct {
	label    string
	children []*node
}

type dumper struct {
	urids atombuf.URIDs
	names urid.Unmap
}

func (d *dumper) typeName(u urid.URID) string {
	if uri := d.names.Unmap(u); uri != "" {
		if i := strings.LastIndexAny(uri, "#/"); i >= 0 && i < len(uri)-1 {
			return uri[i+1:]
		}
		return uri
	}
	return fmt.Sprintf("urid:%d", u)
}

// tree classifies an atom against the vocabulary and renders it and its
// children. Unknown types degrade to a hex preview instead of failing;
// a dump tool has to cope with buffers it only partially understands.
func (d *dumper) tree(a atombuf.Unidentified) *node {
	name := d.typeName(a.Type())
	u := d.urids

	switch a.Type() {
	case u.Int:
		if v, err := atombuf.ReadInt(a, u.Int); err == nil {
			return &node{label: fmt.Sprintf("%s %d", name, v)}
		}
	case u.Long:
		if v, err := atombuf.ReadLong(a, u.Long); err == nil {
			return &node{label: fmt.Sprintf("%s %d", name, v)}
		}
	case u.Float:
		if v, err := atombuf.ReadFloat(a, u.Float); err == nil {
			return &node{label: fmt.Sprintf("%s %g", name, v)}
		}
	case u.Double:
		if v, err := atombuf.ReadDouble(a, u.Double); err == nil {
			return &node{label: fmt.Sprintf("%s %g", name, v)}
		}
	case u.Bool:
		if v, err := atombuf.ReadBool(a, u.Bool); err == nil {
			return &node{label: fmt.Sprintf("%s %t", name, v)}
		}
	case u.URID:
		if v, err := atombuf.ReadURID(a, u.URID); err == nil {
			return &node{label: fmt.Sprintf("%s %s", name, d.typeName(v))}
		}
	case u.String:
		if v, err := atombuf.ReadString(a, u.String); err == nil {
			return &node{label: fmt.Sprintf("%s %q", name, v)}
		}
	case u.Literal:
		if info, v, err := atombuf.ReadLiteral(a, u.Literal); err == nil {
			if lang, ok := info.Language(); ok {
				return &node{label: fmt.Sprintf("%s %q @%s", name, v, d.typeName(lang))}
			}
			dt, _ := info.Datatype()
			return &node{label: fmt.Sprintf("%s %q ^^%s", name, v, d.typeName(dt))}
		}
	case u.Tuple:
		if it, err := atombuf.ReadTuple(a, u.Tuple); err == nil {
			n := &node{label: name}
			for {
				child, ok := it.Next()
				if !ok {
					break
				}
				n.children = append(n.children, d.tree(child))
			}
			return n
		}
	case u.Object, u.Blank:
		if hdr, it, err := atombuf.ReadObjectOrBlank(a, u.Object, u.Blank); err == nil {
			n := &node{label: fmt.Sprintf("%s otype=%s", name, d.typeName(hdr.OType))}
			for {
				p, v, ok := it.Next()
				if !ok {
					break
				}
				child := d.tree(v)
				child.label = fmt.Sprintf("%s = %s", d.typeName(p.Key), child.label)
				n.children = append(n.children, child)
			}
			return n
		}
	case u.Sequence:
		if it, err := atombuf.ReadSequence(a, u.Sequence, u.BeatUnit); err == nil {
			n := &node{label: name}
			for {
				ts, ev, ok := it.Next()
				if !ok {
					break
				}
				child := d.tree(ev)
				if frames, ok := ts.AsFrames(); ok {
					child.label = fmt.Sprintf("@%d %s", frames, child.label)
				} else if beats, ok := ts.AsBeats(); ok {
					child.label = fmt.Sprintf("@%g %s", beats, child.label)
				}
				n.children = append(n.children, child)
			}
			return n
		}
	}

	body := a.Body()
	preview := body
	suffix := ""
	if len(preview) > 16 {
		preview = preview[:16]
		suffix = "..."
	}
	return &node{label: fmt.Sprintf("%s (%d bytes) % x%s", name, len(body), preview, suffix)}
}

// lines flattens the tree into indented text lines.
func (n *node) lines(depth int, out []string) []string {
	out = append(out, strings.Repeat("  ", depth)+n.label)
	for _, c := range n.children {
		out = c.lines(depth+1, out)
	}
	return out
}
