package components

import (
	"github.com/a-h/templ"
	"github.com/runsha/sketchfolio/model"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Page renders the whole document with only the current section's panel.
func Page(rc *RenderContext) templ.Component {
	return component(page(rc))
}

func page(rc *RenderContext) g.Node {
	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("UTF-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(rc.Profile.Name+" | "+rc.Current().Label())),
				h.Script(h.Src("https://cdn.tailwindcss.com")),
				h.Link(h.Rel("stylesheet"), h.Href(assetPrefix(rc.Links)+"sketch.css")),
			),
			h.Body(
				h.Div(h.Class("min-h-screen bg-gray-50 dark:bg-gray-950 font-mono"),
					Background(),
					h.Div(h.Class("relative z-10 max-w-6xl mx-auto px-8 py-16"),
						Header(rc.Profile),
						Nav(rc.Selector, rc.Links),
						panel(rc.Current(), rc.Profile),
						Footer(rc.Profile),
					),
				),
			),
		),
	)
}

func Header(profile *model.Profile) g.Node {
	return h.Header(h.Class("mb-16"),
		SketchyBox("mb-8",
			h.Div(h.Class("text-center"),
				h.H1(h.Class("text-5xl font-bold text-gray-800 dark:text-gray-200 mb-4 transform -rotate-1"),
					g.Text("Hey, I'm "+profile.Name+"!")),
				h.P(h.Class("text-xl text-gray-600 dark:text-gray-400 transform rotate-1"),
					g.Text(profile.Tagline)),
				g.If(len(profile.Contact) > 0,
					h.Div(h.Class("mt-6 flex justify-center space-x-4"), linkButtons(profile.Contact)),
				),
			),
		),
	)
}

// Nav renders one selector control per section and marks the current one.
func Nav(selector *model.Selector, mode LinkMode) g.Node {
	controls := make([]g.Node, 0, len(model.AllSections()))

	for _, section := range model.AllSections() {
		controls = append(controls, navControl(section, selector.IsActive(section), mode))
	}

	if mode == LinkModeQuery {
		return h.Nav(h.Class("mb-12"),
			h.Form(h.Method("get"), h.Action("/"), h.Class("flex justify-center space-x-4 flex-wrap"),
				g.Group(controls)),
		)
	}

	return h.Nav(h.Class("mb-12"),
		h.Div(h.Class("flex justify-center space-x-4 flex-wrap"), g.Group(controls)),
	)
}

func navControl(section model.Section, active bool, mode LinkMode) g.Node {
	shadow, face := navClasses(active)

	class := "relative group"
	if active {
		class += " z-10"
	}

	attrs := g.Group{
		h.Class(class),
		h.Data("section", section.Slug()),
		g.If(active, h.Aria("current", "page")),
		h.Div(h.Class(shadow)),
		h.Div(h.Class(face), g.Text(section.Label())),
	}

	if mode == LinkModeQuery {
		return h.Button(h.Type("submit"), h.Name("section"), h.Value(section.Slug()), attrs)
	}

	return h.A(h.Href(safeURL(SectionLink(section, mode))), attrs)
}

func Footer(profile *model.Profile) g.Node {
	return h.Footer(h.Class("mt-16"),
		SketchyBox("text-center transform rotate-1",
			h.H2(h.Class("text-2xl font-bold mb-4 text-gray-800 dark:text-gray-200"), g.Text(profile.FooterTitle)),
			h.P(h.Class("text-gray-600 dark:text-gray-400 mb-6"), g.Text(profile.FooterText)),
			h.Div(h.Class("flex justify-center space-x-4 flex-wrap"), linkButtons(profile.Social)),
		),
	)
}

func linkButtons(links []model.Link) g.Node {
	return g.Map(links, func(link model.Link) g.Node {
		return SketchyButton(linkText(link), link.Href, "")
	})
}
