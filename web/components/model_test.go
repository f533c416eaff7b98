package components_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/runsha/sketchfolio/content"
	"github.com/runsha/sketchfolio/model"
	"github.com/runsha/sketchfolio/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultProfile(t *testing.T) *model.Profile {
	t.Helper()

	profile, err := content.Default()
	require.NoError(t, err)

	return profile
}

func renderPage(t *testing.T, rc *components.RenderContext) string {
	t.Helper()

	var buf bytes.Buffer

	require.NoError(t, components.Page(rc).Render(context.Background(), &buf))

	return buf.String()
}

func TestPageShowsExactlyOnePanel(t *testing.T) {
	profile := defaultProfile(t)

	for _, mode := range []components.LinkMode{components.LinkModeQuery, components.LinkModeStatic} {
		for _, section := range model.AllSections() {
			t.Run(section.Slug(), func(t *testing.T) {
				selector := model.NewSelector()
				selector.Select(section)

				html := renderPage(t, &components.RenderContext{Profile: profile, Selector: selector, Links: mode})

				assert.Equal(t, 1, strings.Count(html, "data-panel="))
				assert.Contains(t, html, `data-panel="`+section.Slug()+`"`)

				for _, other := range model.AllSections() {
					if other != section {
						assert.NotContains(t, html, `id="panel-`+other.Slug()+`"`)
					}
				}

				assert.Equal(t, 1, strings.Count(html, `aria-current="page"`))
				assert.Contains(t, html, `data-section="`+section.Slug()+`" aria-current="page"`)
			})
		}
	}
}

func TestPageInitialRenderShowsAbout(t *testing.T) {
	profile := defaultProfile(t)

	html := renderPage(t, &components.RenderContext{Profile: profile, Selector: model.NewSelector()})

	assert.Contains(t, html, `data-panel="about"`)
	assert.Contains(t, html, "About Me")
	assert.Contains(t, html, "<title>Runsha | About</title>")
	assert.NotContains(t, html, "DeFi Trading Platform")
	assert.NotContains(t, html, "Web3 &amp; Blockchain")
}

func TestNavControls(t *testing.T) {
	profile := defaultProfile(t)

	t.Run("query mode submits section", func(t *testing.T) {
		html := renderPage(t, &components.RenderContext{Profile: profile, Selector: model.NewSelector(), Links: components.LinkModeQuery})

		assert.Contains(t, html, `<form method="get" action="/"`)

		for _, s := range model.AllSections() {
			assert.Contains(t, html, `name="section" value="`+s.Slug()+`"`)
			assert.Contains(t, html, ">"+s.Label()+"</div>")
		}

		assert.Contains(t, html, `href="/assets/sketch.css"`)
	})

	t.Run("static mode links to files", func(t *testing.T) {
		html := renderPage(t, &components.RenderContext{Profile: profile, Selector: model.NewSelector(), Links: components.LinkModeStatic})

		assert.NotContains(t, html, "<form")
		assert.Contains(t, html, `href="skills.html"`)
		assert.Contains(t, html, `href="projects.html"`)
		assert.Contains(t, html, `href="assets/sketch.css"`)
	})
}

func TestPanelsKeepTableOrder(t *testing.T) {
	profile := defaultProfile(t)

	t.Run("skills", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, components.SkillsPanel(profile.Skills).Render(context.Background(), &buf))

		html := buf.String()
		last := -1

		for _, group := range profile.Skills {
			idx := strings.Index(html, templEscape(group.Category))
			require.Greater(t, idx, last, "group %s out of order", group.Category)

			last = idx

			for _, item := range group.Items {
				idx = strings.Index(html[last:], ">"+item+"<")
				require.GreaterOrEqual(t, idx, 0, "item %s missing or out of order", item)

				last += idx
			}
		}

		assert.Equal(t, 18, strings.Count(html, "data-skill"))
	})

	t.Run("projects", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, components.ProjectsPanel(profile.Projects).Render(context.Background(), &buf))

		html := buf.String()
		last := -1

		for _, project := range profile.Projects {
			idx := strings.Index(html, project.Title)
			require.Greater(t, idx, last)

			last = idx
		}

		assert.Equal(t, 3, strings.Count(html, "View Project →"))
	})
}

func templEscape(s string) string {
	return strings.ReplaceAll(s, "&", "&amp;")
}

func TestPageEscapesProfileText(t *testing.T) {
	profile := defaultProfile(t)
	hostile := *profile
	hostile.Name = `<script>alert("x")</script>`
	hostile.Social = []model.Link{{Label: "Evil", Href: "javascript:alert(1)"}}

	html := renderPage(t, &components.RenderContext{Profile: &hostile, Selector: model.NewSelector()})

	assert.NotContains(t, html, `<script>alert`)
	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "javascript:alert")
}

func TestSectionLink(t *testing.T) {
	tests := []struct {
		name    string
		section model.Section
		mode    components.LinkMode
		want    string
	}{
		{name: "query about", section: model.SectionAbout, mode: components.LinkModeQuery, want: "/"},
		{name: "query skills", section: model.SectionSkills, mode: components.LinkModeQuery, want: "/?section=skills"},
		{name: "query projects", section: model.SectionProjects, mode: components.LinkModeQuery, want: "/?section=projects"},
		{name: "static about", section: model.SectionAbout, mode: components.LinkModeStatic, want: "about.html"},
		{name: "static skills", section: model.SectionSkills, mode: components.LinkModeStatic, want: "skills.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, components.SectionLink(tt.section, tt.mode))
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestPageReturnsWriterErrors(t *testing.T) {
	profile := defaultProfile(t)

	err := components.Page(&components.RenderContext{Profile: profile, Selector: model.NewSelector()}).
		Render(context.Background(), failingWriter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestOutboundLinksOpenInNewTab(t *testing.T) {
	profile := defaultProfile(t)

	html := renderPage(t, &components.RenderContext{Profile: profile, Selector: model.NewSelector()})

	for _, link := range append(append([]model.Link{}, profile.Contact...), profile.Social...) {
		assert.Contains(t, html, `<a href="`+link.Href+`" target="_blank" rel="noopener noreferrer">`)
	}
}

func TestPanelMatchesPageBody(t *testing.T) {
	profile := defaultProfile(t)

	for _, section := range model.AllSections() {
		t.Run(section.Slug(), func(t *testing.T) {
			var buf bytes.Buffer

			require.NoError(t, components.Panel(section, profile).Render(context.Background(), &buf))

			selector := model.NewSelector()
			selector.Select(section)

			html := renderPage(t, &components.RenderContext{Profile: profile, Selector: selector})

			assert.True(t, strings.HasPrefix(buf.String(), `<section id="panel-`+section.Slug()+`"`))
			assert.Contains(t, html, buf.String())
		})
	}
}
