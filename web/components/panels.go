package components

import (
	"fmt"

	"github.com/a-h/templ"
	"github.com/runsha/sketchfolio/model"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Panel renders the content panel of section. Every section must have a case here.
func Panel(section model.Section, profile *model.Profile) templ.Component {
	return component(panel(section, profile))
}

func panel(section model.Section, profile *model.Profile) g.Node {
	switch section {
	case model.SectionAbout:
		return aboutPanel(profile)
	case model.SectionSkills:
		return skillsPanel(profile.Skills)
	case model.SectionProjects:
		return projectsPanel(profile.Projects)
	default:
		panic(fmt.Sprintf("no panel for section %q", section))
	}
}

func panelSection(section model.Section, class string, children ...g.Node) g.Node {
	return h.Section(
		h.ID("panel-"+section.Slug()),
		h.Data("panel", section.Slug()),
		h.Class(class),
		g.Group(children),
	)
}

func AboutPanel(profile *model.Profile) templ.Component {
	return component(aboutPanel(profile))
}

func aboutPanel(profile *model.Profile) g.Node {
	paragraphs := make([]g.Node, 0, len(profile.About))

	for i, paragraph := range profile.About {
		class := "text-gray-600 dark:text-gray-400 leading-relaxed"
		if i < len(profile.About)-1 {
			class += " mb-4"
		}

		paragraphs = append(paragraphs, h.P(h.Class(class), g.Text(paragraph)))
	}

	return panelSection(model.SectionAbout, "grid md:grid-cols-2 gap-8",
		SketchyBox("",
			h.H2(h.Class("text-2xl font-bold mb-4 text-gray-800 dark:text-gray-200"), g.Text("About Me")),
			g.Group(paragraphs),
		),
		g.If(len(profile.Highlights) > 0,
			SketchyBox("transform rotate-1",
				h.H2(h.Class("text-2xl font-bold mb-4 text-gray-800 dark:text-gray-200"), g.Text("What I Do")),
				h.Ul(h.Class("space-y-3 text-gray-600 dark:text-gray-400"),
					g.Map(profile.Highlights, func(item model.Highlight) g.Node {
						return h.Li(h.Class("flex items-start"),
							h.Span(h.Class("text-2xl mr-3"), g.Text(item.Icon)),
							h.Span(g.Text(item.Text)),
						)
					}),
				),
			),
		),
	)
}

func SkillsPanel(groups []model.SkillGroup) templ.Component {
	return component(skillsPanel(groups))
}

func skillsPanel(groups []model.SkillGroup) g.Node {
	boxes := make([]g.Node, 0, len(groups))
	for i, group := range groups {
		boxes = append(boxes, SketchyBox(skillGroupTilt(i), skillGroup(group)))
	}

	return panelSection(model.SectionSkills, "space-y-8", boxes...)
}

func skillGroup(group model.SkillGroup) g.Node {
	return g.Group{
		h.H3(h.Class("text-xl font-bold mb-4 text-gray-800 dark:text-gray-200"), g.Text(group.Category)),
		h.Div(h.Class("flex flex-wrap gap-3"),
			g.Map(group.Items, func(skill string) g.Node {
				return h.Div(h.Class("relative group cursor-default"), g.Attr("data-skill"),
					h.Div(h.Class("absolute inset-0 bg-gray-800 dark:bg-gray-200 transform rotate-1 group-hover:rotate-2 transition-transform")),
					h.Div(h.Class("relative bg-gray-100 dark:bg-gray-800 text-gray-800 dark:text-gray-200 border border-gray-800 dark:border-gray-200 px-3 py-1 text-sm transform -rotate-1 group-hover:rotate-0 transition-transform"),
						g.Text(skill),
					),
				)
			}),
		),
	}
}

func ProjectsPanel(projects []model.Project) templ.Component {
	return component(projectsPanel(projects))
}

func projectsPanel(projects []model.Project) g.Node {
	cards := make([]g.Node, 0, len(projects))
	for i, project := range projects {
		cards = append(cards, SketchyBox(projectTilt(i), projectCard(project)))
	}

	return panelSection(model.SectionProjects, "grid md:grid-cols-2 lg:grid-cols-3 gap-8", cards...)
}

func projectCard(project model.Project) g.Node {
	return g.Group{
		h.H3(h.Class("text-xl font-bold mb-3 text-gray-800 dark:text-gray-200"), g.Text(project.Title)),
		h.P(h.Class("text-gray-600 dark:text-gray-400 mb-4 text-sm leading-relaxed"), g.Text(project.Description)),
		h.Div(h.Class("flex flex-wrap gap-2 mb-4"),
			g.Map(project.Tech, func(tech string) g.Node {
				return h.Span(h.Class("bg-gray-100 dark:bg-gray-800 text-gray-700 dark:text-gray-300 px-2 py-1 text-xs border border-gray-300 dark:border-gray-600"),
					g.Text(tech))
			}),
		),
		SketchyButton("View Project →", project.Link, "w-full"),
	}
}
