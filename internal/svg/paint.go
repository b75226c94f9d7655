package svg

import "strings"

// paint holds the inheritable presentation state that decides whether a
// shape produces visible geometry. Values are kept as raw strings; only
// presence matters for point extraction, not color.
type paint struct {
	fill   string
	stroke string
}

// defaultPaint mirrors the SVG initial values: shapes are filled black
// and unstroked unless declared otherwise.
func defaultPaint() paint {
	return paint{fill: "black", stroke: "none"}
}

// visible reports whether a shape painted with p contributes geometry.
// Paths with neither stroke nor fill are never presented to the core.
func (p paint) visible() bool {
	return !isNone(p.fill) || !isNone(p.stroke)
}

func isNone(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "none" || v == "transparent"
}

// applyStyle folds the fill and stroke declarations of an inline style
// attribute into p. Style declarations win over presentation attributes,
// so this runs after them.
func (p *paint) applyStyle(style string) {
	for _, decl := range strings.Split(style, ";") {
		kv := strings.SplitN(decl, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(strings.ToLower(kv[0]))
		val := strings.TrimSpace(kv[1])
		switch key {
		case "fill":
			p.fill = val
		case "stroke":
			p.stroke = val
		}
	}
}
