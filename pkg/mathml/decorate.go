package mathml

// Decoration holds presentation settings applied to a whole formula.
type Decoration struct {
	Color        string
	FontSize     string
	FontFamily   string
	DisplayStyle bool
	// Whether to copy the source text into the title attribute of the math
	// element, which most browsers show as a tooltip.
	Title bool
}

// DefaultDecoration is the decoration used when none is configured.
var DefaultDecoration = Decoration{
	Color:        "blue",
	FontSize:     "1em",
	FontFamily:   "serif",
	DisplayStyle: true,
	Title:        true,
}

// Decorate returns a new Math element whose only child is a Style element
// carrying d and wrapping the children of root. The attributes of root are
// kept.
func Decorate(root *Element, source string, d Decoration) *Element {
	style := New(Style, root.Children...)
	if d.Color != "" {
		style.SetAttr("mathcolor", d.Color)
	}
	if d.FontSize != "" {
		style.SetAttr("fontsize", d.FontSize)
		style.SetAttr("mathsize", d.FontSize)
	}
	if d.FontFamily != "" {
		style.SetAttr("fontfamily", d.FontFamily)
	}
	if d.DisplayStyle {
		style.SetAttr("displaystyle", "true")
	}

	math := New(Math, style)
	if len(root.Attrs) > 0 {
		math.Attrs = append([]Attr(nil), root.Attrs...)
	}
	if d.Title && source != "" {
		math.SetAttr("title", source)
	}
	return math
}
