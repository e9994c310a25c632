package hostsim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile configures a simulated device.
type Profile struct {
	// APILevel is the host release the device reports. Symbols introduced
	// after this level do not resolve.
	APILevel int32 `yaml:"api_level"`

	// Package is the owning application's package name.
	Package string `yaml:"package"`

	// Resources seeds the device's resource identifier table.
	Resources []ProfileResource `yaml:"resources"`
}

// ProfileResource maps a named resource of a kind to an integer identifier.
type ProfileResource struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	ID   int32  `yaml:"id"`
}

// DefaultProfile is a current-generation device with a small icon set.
func DefaultProfile() *Profile {
	return &Profile{
		APILevel: 30,
		Package:  "com.hostbind.sample",
		Resources: []ProfileResource{
			{Name: "ic_notify", Kind: "drawable", ID: 7},
		},
	}
}

// ParseProfile decodes a YAML device profile.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if p.APILevel < 1 {
		return nil, fmt.Errorf("parse profile: api_level must be at least 1, got %d", p.APILevel)
	}
	if p.Package == "" {
		p.Package = "com.hostbind.sample"
	}
	return &p, nil
}

// LoadProfile reads and decodes a YAML device profile from disk.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return ParseProfile(data)
}
