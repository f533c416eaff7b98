package components

import "github.com/runsha/sketchfolio/model"

// LinkMode decides how selector controls reach the other sections.
type LinkMode int

const (
	// LinkModeQuery submits ?section= to the running server.
	LinkModeQuery LinkMode = iota
	// LinkModeStatic links to sibling files of a static export.
	LinkModeStatic
)

// RenderContext is everything the page needs for one render.
type RenderContext struct {
	Profile  *model.Profile
	Selector *model.Selector
	Links    LinkMode
}

func (rc *RenderContext) Current() model.Section {
	return rc.Selector.Current()
}
