package element

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type node struct {
	text    string
	classes []string
}

// View is an opaque handle to a mounted template. Use the free functions in
// this package to change it.
type View struct {
	tag    string
	styles map[string]lipgloss.Style
	nodes  map[string]*node
	order  []string
}

// Mount creates a fresh view for reg with one empty node per template slot.
func Mount(reg Registration) *View {
	v := &View{
		tag:    reg.Tag,
		styles: reg.Styles,
		nodes:  make(map[string]*node, len(reg.Template)),
	}
	for _, slot := range reg.Template {
		if _, ok := v.nodes[slot]; ok {
			continue
		}
		v.nodes[slot] = &node{}
		v.order = append(v.order, slot)
	}
	return v
}

// MountTag mounts a registered tag. ok is false when the tag is unknown.
func MountTag(tag string) (*View, bool) {
	reg, ok := Lookup(tag)
	if !ok {
		return nil, false
	}
	return Mount(reg), true
}

func (v *View) lookup(slot string) *node {
	if v == nil {
		return nil
	}
	return v.nodes[slot]
}

// Tag reports the tag the view was mounted from.
func Tag(v *View) string {
	if v == nil {
		return ""
	}
	return v.tag
}

// Slots lists the view's slots in template order.
func Slots(v *View) []string {
	if v == nil {
		return nil
	}
	out := make([]string, len(v.order))
	copy(out, v.order)
	return out
}

// SetText replaces the text of slot. Unknown slots are ignored.
func SetText(v *View, slot, text string) {
	if n := v.lookup(slot); n != nil {
		n.text = text
	}
}

func Text(v *View, slot string) string {
	if n := v.lookup(slot); n != nil {
		return n.text
	}
	return ""
}

// AddClasses appends classes to slot, skipping ones already present.
func AddClasses(v *View, slot string, classes ...string) {
	n := v.lookup(slot)
	if n == nil {
		return
	}
	for _, c := range classes {
		if c == "" || hasClass(n, c) {
			continue
		}
		n.classes = append(n.classes, c)
	}
}

func RemoveClasses(v *View, slot string, classes ...string) {
	n := v.lookup(slot)
	if n == nil || len(classes) == 0 {
		return
	}
	kept := n.classes[:0]
	for _, c := range n.classes {
		drop := false
		for _, r := range classes {
			if c == r {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, c)
		}
	}
	n.classes = kept
}

// ToggleClass adds or removes class depending on on.
func ToggleClass(v *View, slot, class string, on bool) {
	if on {
		AddClasses(v, slot, class)
		return
	}
	RemoveClasses(v, slot, class)
}

func HasClass(v *View, slot, class string) bool {
	n := v.lookup(slot)
	return n != nil && hasClass(n, class)
}

func Classes(v *View, slot string) []string {
	n := v.lookup(slot)
	if n == nil {
		return nil
	}
	out := make([]string, len(n.classes))
	copy(out, n.classes)
	return out
}

func hasClass(n *node, class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Style merges the styles of the slot's classes; later classes win.
func Style(v *View, slot string) lipgloss.Style {
	s := lipgloss.NewStyle()
	n := v.lookup(slot)
	if n == nil {
		return s
	}
	for _, c := range n.classes {
		if cs, ok := v.styles[c]; ok {
			s = cs.Inherit(s)
		}
	}
	return s
}

// Render draws the slot's text with its class styles applied.
func Render(v *View, slot string) string {
	n := v.lookup(slot)
	if n == nil {
		return ""
	}
	return Style(v, slot).Render(n.text)
}

// RenderAll joins every non-empty slot in template order.
func RenderAll(v *View, sep string) string {
	if v == nil {
		return ""
	}
	var parts []string
	for _, slot := range v.order {
		if v.nodes[slot].text == "" {
			continue
		}
		parts = append(parts, Render(v, slot))
	}
	return strings.Join(parts, sep)
}
