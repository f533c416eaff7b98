package model

// SkillGroup is a titled list of skills, rendered in the order given.
type SkillGroup struct {
	Category string   `toml:"category" validate:"required"`
	Items    []string `toml:"items" validate:"min=1,dive,required"`
}

type Project struct {
	Title       string   `toml:"title" validate:"required"`
	Description string   `toml:"description" validate:"required"`
	Tech        []string `toml:"tech" validate:"dive,required"`
	Link        string   `toml:"link" validate:"required"`
}

// Link is an outbound hyperlink rendered as a button.
type Link struct {
	Label string `toml:"label" validate:"required"`
	Icon  string `toml:"icon"`
	Href  string `toml:"href" validate:"required"`
}

// Highlight is a single "What I Do" bullet.
type Highlight struct {
	Icon string `toml:"icon"`
	Text string `toml:"text" validate:"required"`
}

// Profile is the static content of the page. It is never mutated after loading.
type Profile struct {
	Name        string       `toml:"name" validate:"required"`
	Tagline     string       `toml:"tagline" validate:"required"`
	About       []string     `toml:"about" validate:"min=1,dive,required"`
	Highlights  []Highlight  `toml:"highlights" validate:"dive"`
	Skills      []SkillGroup `toml:"skills" validate:"min=1,dive"`
	Projects    []Project    `toml:"projects" validate:"dive"`
	Contact     []Link       `toml:"contact" validate:"dive"`
	Social      []Link       `toml:"social" validate:"dive"`
	FooterTitle string       `toml:"footer_title"`
	FooterText  string       `toml:"footer_text"`
}

// SectionViews is the aggregated view count of one section.
type SectionViews struct {
	Section        Section
	Views          int
	UniqueVisitors int
}
