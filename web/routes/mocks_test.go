package routes_test

import (
	"github.com/runsha/sketchfolio/content"
	"github.com/runsha/sketchfolio/model"
	"github.com/runsha/sketchfolio/web/routes"
)

type recordedView struct {
	Section model.Section
	Visitor string
}

// StorageMock is a simple manual mock implementation of the Storage interface
type StorageMock struct {
	Views       []recordedView
	ReturnError error
}

func (m *StorageMock) RecordView(section model.Section, visitor string) error {
	if m.ReturnError != nil {
		return m.ReturnError
	}

	m.Views = append(m.Views, recordedView{Section: section, Visitor: visitor})

	return nil
}

func (m *StorageMock) GatherViews() ([]model.SectionViews, error) {
	return nil, m.ReturnError
}

func (m *StorageMock) Close() {
	// No-op for testing
}

// setupMockServerHandler creates a handler over the default profile and a mock store.
func setupMockServerHandler(withTracker bool) (routes.ServerHandler, *StorageMock) {
	profile, err := content.Default()
	if err != nil {
		panic(err)
	}

	storage := &StorageMock{}
	handler := routes.ServerHandler{Profile: profile}

	if withTracker {
		tracker, err := routes.NewViewTracker(storage, "test-salt")
		if err != nil {
			panic(err)
		}

		handler.Tracker = tracker
	}

	return handler, storage
}
