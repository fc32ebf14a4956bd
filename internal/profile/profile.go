// Package profile holds the static content shown on the profile page.
package profile

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultYAML []byte

// ErrInvalidProfile is returned when profile data is missing required fields.
var ErrInvalidProfile = errors.New("invalid profile")

// Location is the place shown on the splash screen.
type Location struct {
	City        string `yaml:"city"`
	Coordinates string `yaml:"coordinates"`
}

// Link is an outbound profile or social link.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Project is one card in the projects grid.
type Project struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"`
	Href        string `yaml:"href"`
}

// Profile is everything the profile page displays.
type Profile struct {
	Name         string    `yaml:"name"`
	Greeting     string    `yaml:"greeting"`
	Tagline      string    `yaml:"tagline"`
	Location     Location  `yaml:"location"`
	Email        string    `yaml:"email"`
	ContactBlurb string    `yaml:"contact_blurb"`
	Resume       string    `yaml:"resume"`
	Links        []Link    `yaml:"links"`
	Projects     []Project `yaml:"projects"`
	Skills       []string  `yaml:"skills"`
}

// Default returns the built-in profile.
func Default() *Profile {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded profile: %v", err))
	}
	return p
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML profile data.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Greeting == "" {
		p.Greeting = "Hi, I'm " + p.Name
	}
	return &p, nil
}

// Validate checks the fields the pages rely on.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	for i, pr := range p.Projects {
		if pr.Title == "" || pr.Href == "" {
			return fmt.Errorf("%w: project %d needs a title and href", ErrInvalidProfile, i)
		}
	}
	for i, l := range p.Links {
		if l.Label == "" || l.Href == "" {
			return fmt.Errorf("%w: link %d needs a label and href", ErrInvalidProfile, i)
		}
	}
	return nil
}

// SkillRows splits the skills into the two marquee rows. The first row
// takes the extra skill when the count is odd.
func (p *Profile) SkillRows() ([]string, []string) {
	half := (len(p.Skills) + 1) / 2
	return p.Skills[:half], p.Skills[half:]
}
