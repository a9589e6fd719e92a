// Package catalog holds the showcased projects and their demos as an
// immutable table built once at startup.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// MediaKind is how a demo's media is presented.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
)

// Valid reports whether k is a known media kind.
func (k MediaKind) Valid() bool {
	return k == MediaVideo || k == MediaImage
}

// Stats are fixed percentages shown on the player screen.
type Stats struct {
	Accuracy       int
	Speed          int
	Implementation int
}

// Demo is a single viewable showcase item owned by one project.
type Demo struct {
	ID          int
	ProjectID   string
	Index       int
	Title       string
	Description string
	Media       string
	Kind        MediaKind
	Stats       Stats
	Features    []string
}

// Project is a top-level showcase entry with an ordered demo sequence.
type Project struct {
	ID           string
	Index        int
	Title        string
	Description  string
	Theme        string
	Icon         string
	Technologies []string
	Applications []string
	KeyFeature   string
	Demos        []Demo
}

// Catalog is a read-only table of projects in insertion order. Accessors
// return copies so callers cannot mutate the table.
type Catalog struct {
	projects []Project
	byID     map[string]int
}

var ErrEmpty = errors.New("catalog has no projects")

// New validates projects and builds a catalog from a deep copy of them.
// Index, ProjectID are assigned from position and ownership.
func New(projects []Project) (*Catalog, error) {
	if len(projects) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		projects: make([]Project, 0, len(projects)),
		byID:     make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		p = cloneProject(p)
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("project %d: empty id", i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("project %q: duplicate id", p.ID)
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("project %q: empty title", p.ID)
		}
		if len(p.Demos) == 0 {
			return nil, fmt.Errorf("project %q: no demos", p.ID)
		}
		p.Index = i
		seen := make(map[int]struct{}, len(p.Demos))
		for j := range p.Demos {
			d := &p.Demos[j]
			if _, dup := seen[d.ID]; dup {
				return nil, fmt.Errorf("project %q: duplicate demo id %d", p.ID, d.ID)
			}
			seen[d.ID] = struct{}{}
			if err := validateDemo(*d); err != nil {
				return nil, fmt.Errorf("project %q demo %d: %w", p.ID, d.ID, err)
			}
			d.ProjectID = p.ID
			d.Index = j
		}
		c.byID[p.ID] = i
		c.projects = append(c.projects, p)
	}
	return c, nil
}

func validateDemo(d Demo) error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("empty title")
	}
	if !d.Kind.Valid() {
		return fmt.Errorf("unknown media kind %q", d.Kind)
	}
	for _, s := range []struct {
		name string
		v    int
	}{
		{"accuracy", d.Stats.Accuracy},
		{"speed", d.Stats.Speed},
		{"implementation", d.Stats.Implementation},
	} {
		if s.v < 0 || s.v > 100 {
			return fmt.Errorf("%s %d out of range [0,100]", s.name, s.v)
		}
	}
	return nil
}

// Len returns the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// Projects returns every project in insertion order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.projects))
	for i, p := range c.projects {
		out[i] = cloneProject(p)
	}
	return out
}

// ProjectAt returns the project at position i.
func (c *Catalog) ProjectAt(i int) (Project, bool) {
	if i < 0 || i >= len(c.projects) {
		return Project{}, false
	}
	return cloneProject(c.projects[i]), true
}

// Project looks a project up by id.
func (c *Catalog) Project(id string) (Project, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Project{}, false
	}
	return cloneProject(c.projects[i]), true
}

// DemoAt returns the demo at position i of p.
func (p Project) DemoAt(i int) (Demo, bool) {
	if i < 0 || i >= len(p.Demos) {
		return Demo{}, false
	}
	return cloneDemo(p.Demos[i]), true
}

// Owns reports whether d belongs to p.
func (p Project) Owns(d Demo) bool {
	if d.ProjectID != p.ID {
		return false
	}
	return d.Index >= 0 && d.Index < len(p.Demos) && p.Demos[d.Index].ID == d.ID
}

func cloneProject(p Project) Project {
	p.Technologies = slices.Clone(p.Technologies)
	p.Applications = slices.Clone(p.Applications)
	demos := make([]Demo, len(p.Demos))
	for i, d := range p.Demos {
		demos[i] = cloneDemo(d)
	}
	p.Demos = demos
	return p
}

func cloneDemo(d Demo) Demo {
	d.Features = slices.Clone(d.Features)
	return d
}
