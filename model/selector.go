package model

// Selector holds the section currently shown on the page.
type Selector struct {
	current Section
}

// NewSelector returns a selector showing SectionAbout.
func NewSelector() *Selector {
	return &Selector{current: SectionAbout}
}

func (s *Selector) Current() Section {
	return s.current
}

// Select replaces the current section. Selecting the current section is a no-op.
func (s *Selector) Select(section Section) {
	s.current = section
}

func (s *Selector) IsActive(section Section) bool {
	return s.current == section
}

// Next selects the following section, wrapping around after the last one.
func (s *Selector) Next() {
	s.step(1)
}

// Prev selects the preceding section, wrapping around before the first one.
func (s *Selector) Prev() {
	s.step(len(sectionSlugs) - 1)
}

func (s *Selector) step(by int) {
	s.current = Section{uint8((int(s.current.ord) + by) % len(sectionSlugs))}
}
