// Package content loads the static portfolio content: profile text, hero
// folders, projects, experience, technologies and contact methods. Content is
// immutable for the life of the process.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultContent []byte

// Section anchors the page shell can scroll to.
const (
	AnchorHero       = "hero"
	AnchorAbout      = "about"
	AnchorProjects   = "projects"
	AnchorExperience = "experience"
	AnchorTech       = "tech"
	AnchorSkills     = "skills"
	AnchorContact    = "contact"
)

// Anchors lists the stable scroll targets in page order.
var Anchors = []string{
	AnchorHero,
	AnchorAbout,
	AnchorProjects,
	AnchorExperience,
	AnchorTech,
	AnchorSkills,
	AnchorContact,
}

const DefaultPlaceholder = "https://via.placeholder.com/800x600.png?text=Image+Not+Found"

var ErrInvalid = errors.New("invalid content")

type Site struct {
	Profile      Profile         `yaml:"profile" json:"profile"`
	Folders      []Folder        `yaml:"folders" json:"folders"`
	Projects     []Project       `yaml:"projects" json:"projects"`
	Experiences  []Experience    `yaml:"experiences" json:"experiences"`
	Categories   []Category      `yaml:"categories" json:"categories"`
	Technologies []Technology    `yaml:"technologies" json:"technologies"`
	Favorites    []string        `yaml:"favorites" json:"-"`
	Contacts     []ContactMethod `yaml:"contacts" json:"contacts"`
	Placeholder  string          `yaml:"placeholder" json:"placeholder"`
}

type Profile struct {
	Name    string  `yaml:"name" json:"name"`
	Title   string  `yaml:"title" json:"title"`
	Tagline string  `yaml:"tagline" json:"tagline"`
	About   string  `yaml:"about" json:"about"`
	Skills  []Skill `yaml:"skills" json:"skills"`
	Stats   []Stat  `yaml:"stats" json:"stats"`
}

type Skill struct {
	Name        string `yaml:"name" json:"name"`
	Icon        string `yaml:"icon" json:"icon"`
	Color       string `yaml:"color" json:"color"`
	Description string `yaml:"description" json:"description"`
}

type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Folder is a hero card linking to a section anchor.
type Folder struct {
	Name        string `yaml:"name" json:"name"`
	Target      string `yaml:"target" json:"target"`
	Color       string `yaml:"color" json:"color"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description"`
}

// Project is one gallery item. Image order is display order.
type Project struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	Images       []string `yaml:"images" json:"images"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	Features     []string `yaml:"features" json:"features"`
	Color        string   `yaml:"color" json:"color"`
	Figma        string   `yaml:"figma" json:"figma,omitempty"`
	GitHub       string   `yaml:"github" json:"github,omitempty"`
}

type Experience struct {
	Role         string   `yaml:"role" json:"role"`
	Company      string   `yaml:"company" json:"company"`
	Period       string   `yaml:"period" json:"period"`
	Location     string   `yaml:"location" json:"location"`
	Description  string   `yaml:"description" json:"description"`
	Achievements []string `yaml:"achievements" json:"achievements"`
	Skills       []string `yaml:"skills" json:"skills"`
	Icon         string   `yaml:"icon" json:"icon"`
	Color        string   `yaml:"color" json:"color"`
}

type Category struct {
	Name  string `yaml:"name" json:"name"`
	Label string `yaml:"label" json:"label"`
	Icon  string `yaml:"icon" json:"icon"`
	Color string `yaml:"color" json:"color"`
}

type Technology struct {
	Name        string `yaml:"name" json:"name"`
	Category    string `yaml:"category" json:"category"`
	Level       int    `yaml:"level" json:"level"`
	Color       string `yaml:"color" json:"color"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description"`
}

type ContactMethod struct {
	Label       string `yaml:"label" json:"label"`
	Value       string `yaml:"value" json:"value"`
	Href        string `yaml:"href" json:"href"`
	Color       string `yaml:"color" json:"color"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description"`
}

// Load reads content from path, or the embedded default when path is empty.
func Load(path string) (*Site, error) {
	data := defaultContent
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if site.Placeholder == "" {
		site.Placeholder = DefaultPlaceholder
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Project returns the project with the given id.
func (s *Site) Project(id string) (Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Images returns every image reference across all projects, in order.
func (s *Site) Images() []string {
	var refs []string
	for _, p := range s.Projects {
		refs = append(refs, p.Images...)
	}
	return refs
}

// Validate checks the invariants the page sections rely on.
func (s *Site) Validate() error {
	var errs []error

	seen := make(map[string]bool, len(s.Projects))
	for i, p := range s.Projects {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("project %d: missing id", i))
		case seen[p.ID]:
			errs = append(errs, fmt.Errorf("project %q: duplicate id", p.ID))
		}
		seen[p.ID] = true
		if len(p.Images) == 0 {
			errs = append(errs, fmt.Errorf("project %q: no images", p.ID))
		}
	}

	categories := make(map[string]bool, len(s.Categories))
	for _, c := range s.Categories {
		categories[c.Name] = true
	}
	for _, t := range s.Technologies {
		if t.Level < 0 || t.Level > 100 {
			errs = append(errs, fmt.Errorf("technology %q: level %d out of range", t.Name, t.Level))
		}
		if !categories[t.Category] {
			errs = append(errs, fmt.Errorf("technology %q: undeclared category %q", t.Name, t.Category))
		}
	}

	anchors := make(map[string]bool, len(Anchors))
	for _, a := range Anchors {
		anchors[a] = true
	}
	for _, f := range s.Folders {
		if !anchors[f.Target] {
			errs = append(errs, fmt.Errorf("folder %q: unknown target %q", f.Name, f.Target))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}
