package components

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// SketchyBox draws children inside a tilted double-bordered box.
func SketchyBox(class string, children ...g.Node) g.Node {
	return h.Div(h.Class(strings.TrimSpace("relative "+class)),
		h.Div(h.Class("absolute inset-0 bg-white dark:bg-gray-900 transform rotate-1 border-2 border-gray-800 dark:border-gray-200 rounded-none")),
		h.Div(h.Class("relative bg-white dark:bg-gray-900 border-2 border-gray-800 dark:border-gray-200 p-6 transform -rotate-1 hover:rotate-0 transition-transform duration-300"),
			g.Group(children),
		),
	)
}

// SketchyButton renders label as a tilted button. A non-empty href wraps it in
// a link that opens in a new tab.
func SketchyButton(label, href, class string) g.Node {
	button := h.Div(h.Class(strings.TrimSpace("relative group cursor-pointer "+class)),
		h.Div(h.Class("absolute inset-0 bg-gray-800 dark:bg-gray-200 transform rotate-2 rounded-none transition-transform group-hover:rotate-3")),
		h.Div(h.Class("relative bg-white dark:bg-gray-900 text-gray-800 dark:text-gray-200 border-2 border-gray-800 dark:border-gray-200 px-6 py-3 transform -rotate-1 group-hover:rotate-0 transition-all duration-300 font-medium"),
			g.Text(label),
		),
	)

	if href == "" {
		return button
	}

	return h.A(h.Href(safeURL(href)), h.Target("_blank"), h.Rel("noopener noreferrer"), button)
}

var backgroundPaths = []string{
	"M0,100 Q300,120 600,100 T1200,110",
	"M0,300 Q400,280 800,300 T1200,290",
	"M0,500 Q500,520 1000,500 T1200,510",
	"M0,700 Q600,680 1200,700",
}

// Background draws the faint hand-drawn lines behind the page.
func Background() g.Node {
	return h.Div(h.Class("fixed inset-0 pointer-events-none opacity-5"),
		h.SVG(h.Width("100%"), h.Height("100%"), g.Attr("viewBox", "0 0 1200 800"),
			g.Map(backgroundPaths, func(d string) g.Node {
				return g.El("path",
					g.Attr("d", d),
					g.Attr("stroke", "currentColor"),
					g.Attr("stroke-width", "2"),
					g.Attr("fill", "none"),
					h.Class("text-gray-600"),
				)
			}),
		),
	)
}
