package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRegistryIsValid(t *testing.T) {
	reg := Default()
	if reg.Profile.Name == "" {
		t.Fatal("profile name should not be empty")
	}
	if len(reg.Experience) != 6 {
		t.Errorf("experience count = %d, want 6", len(reg.Experience))
	}
	if len(reg.TechStack) != 3 {
		t.Errorf("tech stack categories = %d, want 3", len(reg.TechStack))
	}
	if len(reg.Projects) != 4 {
		t.Errorf("projects count = %d, want 4", len(reg.Projects))
	}
	if Default() != reg {
		t.Error("Default should return the same registry on every call")
	}
}

func TestDefaultRegistryKeepsDeclarationOrder(t *testing.T) {
	reg := Default()
	wantPeriods := []string{
		"Jan 2025 – Feb 2025",
		"Sep 2024 – Nov 2024",
		"Mar 2024 – Jun 2024",
		"Dec 2023 – Jan 2024",
		"Aug 2023 – Oct 2023",
		"Apr 2023 – May 2023",
	}
	for i, want := range wantPeriods {
		if got := reg.Experience[i].Period; got != want {
			t.Errorf("experience[%d].Period = %q, want %q", i, got, want)
		}
	}
	// Projects are declared oldest first while experience is newest first;
	// neither list is re-sorted.
	if reg.Projects[0].Title != "Shofy Beauty & Cosmetics" {
		t.Errorf("projects[0] = %q, want Shofy Beauty & Cosmetics", reg.Projects[0].Title)
	}
	if !reg.Experience[0].Current() || reg.Experience[1].Current() {
		t.Error("only the first experience entry should be current")
	}
}

func TestLoadPreservesOrder(t *testing.T) {
	doc := `
profile: {name: Test}
stats:
  - {number: "2", label: Second}
  - {number: "1", label: First}
  - {number: "2", label: Second}
`
	reg, err := Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got := []string{}
	for _, s := range reg.Stats {
		got = append(got, s.Label)
	}
	want := []string{"Second", "First", "Second"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("stats = %v, want %v", got, want)
	}
}

func TestLoadRejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "level above range",
			doc:  "profile: {name: X}\ntech_stack:\n  - category: C\n    technologies:\n      - {name: Go, level: 101}\n",
			want: "level 101 outside 0-100",
		},
		{
			name: "negative level",
			doc:  "profile: {name: X}\ntech_stack:\n  - category: C\n    technologies:\n      - {name: Go, level: -1}\n",
			want: "level -1 outside 0-100",
		},
		{
			name: "unknown status",
			doc:  "profile: {name: X}\nexperience:\n  - {title: T, status: paused}\n",
			want: `unknown status "paused"`,
		},
		{
			name: "missing name",
			doc:  "stats: []\n",
			want: "name is required",
		},
		{
			name: "unknown field",
			doc:  "profile: {name: X, nickname: Y}\n",
			want: "nickname",
		},
		{
			name: "empty document",
			doc:  "",
			want: "empty document",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadAcceptsBoundaryLevels(t *testing.T) {
	doc := "profile: {name: X}\ntech_stack:\n  - category: C\n    technologies:\n      - {name: A, level: 0}\n      - {name: B, level: 100}\n"
	if _, err := Load(strings.NewReader(doc)); err != nil {
		t.Fatalf("levels 0 and 100 should be accepted: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}
	reg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if reg.Profile.Name != Default().Profile.Name {
		t.Errorf("Name = %q, want %q", reg.Profile.Name, Default().Profile.Name)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestExternalLinks(t *testing.T) {
	tests := []struct {
		link string
		want bool
	}{
		{"mailto:a@b.com", false},
		{"tel:+123", false},
		{"https://github.com/x", true},
		{"http://example.com", true},
		{"/public/cv.pdf", false},
	}
	for _, tt := range tests {
		if got := (ContactInfo{Link: tt.link}).External(); got != tt.want {
			t.Errorf("External(%q) = %v, want %v", tt.link, got, tt.want)
		}
	}
}

func TestProjectAnchor(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Travel Booking Website", "project-travel-booking-website"},
		{"Shofy Beauty & Cosmetics", "project-shofy-beauty-cosmetics"},
		{"  Next.js  ", "project-next-js"},
	}
	for _, tt := range tests {
		if got := (FeaturedProject{Title: tt.title}).Anchor(); got != tt.want {
			t.Errorf("Anchor(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
