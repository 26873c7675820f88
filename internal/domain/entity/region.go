package entity

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Region is a top-level administrative area (county or city) with its townships.
type Region struct {
	Name      string   `json:"name" yaml:"name"`
	Townships []string `json:"townships,omitempty" yaml:"townships,omitempty"`
}

type Regions []Region

// IsRegion reports whether name is one of the top-level region names
func (r Regions) IsRegion(name string) bool {
	for _, region := range r {
		if region.Name == name {
			return true
		}
	}
	return false
}

// RegionOf returns the name of the region owning the given township
func (r Regions) RegionOf(township string) (string, bool) {
	for _, region := range r {
		for _, name := range region.Townships {
			if name == township {
				return region.Name, true
			}
		}
	}
	return "", false
}

// LoadRegions decodes a YAML list of regions
func LoadRegions(reader io.Reader) (Regions, error) {
	var regions Regions
	if err := yaml.NewDecoder(reader).Decode(&regions); err != nil {
		return nil, fmt.Errorf("failed to decode regions: %w", err)
	}
	return regions, nil
}

// LoadRegionsFile decodes the YAML region list stored at path
func LoadRegionsFile(path string) (Regions, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open regions file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return LoadRegions(file)
}
