package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownSection = errors.New("unknown section")

// Section is one of the content views of the page. The ordinal is unexported,
// so other packages can only obtain the values declared below. The zero value
// is SectionAbout.
type Section struct {
	ord uint8
}

var (
	SectionAbout    = Section{0}
	SectionSkills   = Section{1}
	SectionProjects = Section{2}
)

var sectionSlugs = [...]string{"about", "skills", "projects"}

// AllSections returns every section in display order.
func AllSections() []Section {
	return []Section{SectionAbout, SectionSkills, SectionProjects}
}

// Slug is the lower-case identifier used in query strings and file names.
func (s Section) Slug() string {
	return sectionSlugs[s.ord]
}

// Label is the capitalized name shown on selector controls.
func (s Section) Label() string {
	slug := s.Slug()

	return strings.ToUpper(slug[:1]) + slug[1:]
}

func (s Section) String() string {
	return s.Slug()
}

// Index is the position of the section in display order.
func (s Section) Index() int {
	return int(s.ord)
}

// ParseSection maps a slug to its section. Case and surrounding space are ignored.
func ParseSection(slug string) (Section, error) {
	normalized := strings.ToLower(strings.TrimSpace(slug))

	for i, candidate := range sectionSlugs {
		if candidate == normalized {
			return Section{uint8(i)}, nil
		}
	}

	return SectionAbout, fmt.Errorf("%w: %q", ErrUnknownSection, slug)
}

func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.Slug()), nil
}

func (s *Section) UnmarshalText(text []byte) error {
	parsed, err := ParseSection(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
