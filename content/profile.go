package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/runsha/sketchfolio/model"
)

//go:embed default_profile.toml
var defaultProfile []byte

// Default returns the profile bundled with the binary.
func Default() (*model.Profile, error) {
	return LoadProfile(bytes.NewReader(defaultProfile))
}

// LoadProfile decodes a TOML profile and validates it. Unknown keys are rejected.
func LoadProfile(reader io.Reader) (*model.Profile, error) {
	var profile model.Profile

	decoder := toml.NewDecoder(reader).DisallowUnknownFields()
	if err := decoder.Decode(&profile); err != nil {
		return nil, fmt.Errorf("could not decode profile: %w", err)
	}

	if err := Validate(&profile); err != nil {
		return nil, err
	}

	slog.Debug("Loaded profile",
		"name", profile.Name,
		"skillGroups", len(profile.Skills),
		"projects", len(profile.Projects))

	return &profile, nil
}

// LoadProfileFile loads a profile from path. An empty path yields the default profile.
func LoadProfileFile(path string) (*model.Profile, error) {
	if path == "" {
		return Default()
	}

	file, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	profile, err := LoadProfile(file)
	if err != nil {
		return nil, fmt.Errorf("could not load profile %s: %w", path, err)
	}

	return profile, nil
}

// Validate checks the required fields of a profile.
func Validate(profile *model.Profile) error {
	validate := validator.New()

	if err := validate.Struct(profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	return nil
}
