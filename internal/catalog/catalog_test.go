package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultCatalogOrderAndOwnership(t *testing.T) {
	c := Default()
	if c.Len() != 2 {
		t.Fatalf("expected 2 projects, got %d", c.Len())
	}
	projects := c.Projects()
	if projects[0].Title != "Sports Object Tracking AI" || projects[1].Title != "AI Lip Reader Detection" {
		t.Fatalf("unexpected project order: %q, %q", projects[0].Title, projects[1].Title)
	}
	for i, p := range projects {
		if p.Index != i {
			t.Fatalf("project %s index = %d, want %d", p.ID, p.Index, i)
		}
		for j, d := range p.Demos {
			if d.ProjectID != p.ID || d.Index != j {
				t.Fatalf("demo %q owner/index = %s/%d", d.Title, d.ProjectID, d.Index)
			}
			if !p.Owns(d) {
				t.Fatalf("project %s should own %q", p.ID, d.Title)
			}
		}
	}
	if projects[0].Owns(projects[1].Demos[0]) {
		t.Fatalf("demo ownership leaked across projects")
	}
}

func TestTennisDemoStats(t *testing.T) {
	p, ok := Default().Project("object-tracking")
	if !ok {
		t.Fatalf("object-tracking missing")
	}
	d, ok := p.DemoAt(1)
	if !ok || d.Title != "Tennis Ball Trajectory" {
		t.Fatalf("unexpected demo at 1: %+v", d)
	}
	if d.Stats != (Stats{Accuracy: 92, Speed: 90, Implementation: 75}) {
		t.Fatalf("unexpected stats %+v", d.Stats)
	}
	want := []string{"Speed Measurement", "Trajectory Prediction", "Spin Analysis"}
	if strings.Join(d.Features, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected features %v", d.Features)
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := Default()
	p, _ := c.ProjectAt(0)
	p.Title = "mutated"
	p.Demos[0].Features[0] = "mutated"
	p.Technologies[0] = "mutated"
	p.Applications[0] = "mutated"

	again, _ := c.ProjectAt(0)
	if again.Title == "mutated" || again.Demos[0].Features[0] == "mutated" ||
		again.Technologies[0] == "mutated" || again.Applications[0] == "mutated" {
		t.Fatalf("catalog table was mutated through an accessor")
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := DefaultProjects()
	c, err := New(in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in[0].Demos[0].Title = "changed"
	p, _ := c.ProjectAt(0)
	if p.Demos[0].Title == "changed" {
		t.Fatalf("catalog aliases caller slices")
	}
}

func TestNewValidation(t *testing.T) {
	base := func() []Project { return DefaultProjects() }
	tests := []struct {
		name   string
		mutate func([]Project) []Project
		want   string
	}{
		{"empty", func([]Project) []Project { return nil }, "no projects"},
		{"blank id", func(p []Project) []Project { p[0].ID = " "; return p }, "empty id"},
		{"duplicate id", func(p []Project) []Project { p[1].ID = p[0].ID; return p }, "duplicate id"},
		{"no demos", func(p []Project) []Project { p[1].Demos = nil; return p }, "no demos"},
		{"duplicate demo", func(p []Project) []Project { p[0].Demos[1].ID = 1; return p }, "duplicate demo id"},
		{"bad kind", func(p []Project) []Project { p[0].Demos[0].Kind = "audio"; return p }, "media kind"},
		{"stat too high", func(p []Project) []Project { p[0].Demos[0].Stats.Speed = 101; return p }, "speed 101"},
		{"stat negative", func(p []Project) []Project { p[1].Demos[2].Stats.Accuracy = -1; return p }, "accuracy -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.mutate(base()))
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not contain %q", err, tt.want)
			}
		})
	}
	if _, err := New(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestClosest(t *testing.T) {
	c := Default()
	tests := []struct {
		query string
		want  string
		demo  bool
	}{
		{"tennis", "Tennis Ball Trajectory", true},
		{"TENNIS ball", "Tennis Ball Trajectory", true},
		{"lip reader", "AI Lip Reader Detection", false},
		{"soccer player trackng", "Soccer Player Tracking", true},
		{"real-time", "Real-time Analysis", true},
	}
	for _, tt := range tests {
		m, ok := c.Closest(tt.query)
		if !ok {
			t.Fatalf("Closest(%q): no match", tt.query)
		}
		if m.Title() != tt.want {
			t.Fatalf("Closest(%q) = %q, want %q", tt.query, m.Title(), tt.want)
		}
		if (m.Demo != nil) != tt.demo {
			t.Fatalf("Closest(%q) demo match = %v", tt.query, m.Demo != nil)
		}
	}
	if _, ok := c.Closest("   "); ok {
		t.Fatalf("blank query should not match")
	}
	if _, ok := c.Closest("zzzzzzzzzzzzzzzzzzzzzzzz"); ok {
		t.Fatalf("unrelated query should not match")
	}
}
