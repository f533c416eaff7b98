package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/runsha/sketchfolio/model"
	g "maragu.dev/gomponents"
)

// SectionLink returns the address that shows section in the given link mode.
func SectionLink(section model.Section, mode LinkMode) string {
	switch mode {
	case LinkModeStatic:
		return ExportFileName(section)
	case LinkModeQuery:
		if section == model.SectionAbout {
			return "/"
		}

		return "/?section=" + section.Slug()
	default:
		return "/"
	}
}

// ExportFileName is the file a static export writes section to.
func ExportFileName(section model.Section) string {
	return section.Slug() + ".html"
}

// assetPrefix returns where the stylesheet lives relative to the page.
func assetPrefix(mode LinkMode) string {
	if mode == LinkModeStatic {
		return "assets/"
	}

	return "/assets/"
}

// navClasses returns the shadow and face classes of a selector control.
func navClasses(active bool) (string, string) {
	shadow := "absolute inset-0 transform rotate-1 "
	face := "relative px-6 py-3 border-2 border-gray-800 dark:border-gray-200 transform -rotate-1 group-hover:rotate-0 transition-all duration-300 "

	if active {
		return shadow + "bg-gray-800 dark:bg-gray-200",
			face + "bg-gray-800 dark:bg-gray-200 text-white dark:text-gray-900"
	}

	return shadow + "bg-gray-300 dark:bg-gray-700",
		face + "bg-white dark:bg-gray-900 text-gray-800 dark:text-gray-200"
}

// skillGroupTilt rotates every second skill group.
func skillGroupTilt(index int) string {
	if index%2 == 0 {
		return ""
	}

	return "transform rotate-1"
}

// projectTilt rotates the middle card of every row of three.
func projectTilt(index int) string {
	if index%3 == 1 {
		return "transform rotate-1"
	}

	return ""
}

func linkText(link model.Link) string {
	return strings.TrimSpace(link.Icon + " " + link.Label)
}

// safeURL neutralises javascript: and other unsafe schemes.
func safeURL(url string) string {
	return string(templ.URL(url))
}

// component adapts a node tree to the templ.Component the handlers render.
func component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}
