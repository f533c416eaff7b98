package db

import (
	"github.com/runsha/sketchfolio/model"
)

// Storage persists anonymised section views.
type Storage interface {
	RecordView(section model.Section, visitor string) error
	GatherViews() ([]model.SectionViews, error)
	Close()
}
