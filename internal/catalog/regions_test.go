package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const regionsYAML = `
regions:
  - name: kanto
    generation: 1
    routes:
      - id: 1
        name: Route 1
        species: [16, 19]
    gyms:
      - id: pewter
        name: Pewter Gym
        badge: boulder
        required_level: 12
        species: [74]
    league:
      species: [149]
`

func TestLoadRegions_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	if err := os.WriteFile(path, []byte(regionsYAML), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	table, err := LoadRegions(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(table.Regions))
	}
	region := table.Regions[0]
	if region.Name != "kanto" || region.Generation != 1 {
		t.Fatalf("unexpected region %+v", region)
	}
	if len(region.Routes) != 1 || region.Routes[0].ID != 1 || len(region.Routes[0].Species) != 2 {
		t.Fatalf("unexpected routes %+v", region.Routes)
	}
	if region.League == nil || len(region.League.Species) != 1 {
		t.Fatalf("expected a league pool")
	}

	foundRegion, gym := table.GymByID("pewter")
	if gym == nil || gym.RequiredLevel != 12 || gym.Badge != "boulder" {
		t.Fatalf("unexpected gym %+v", gym)
	}
	if foundRegion.Name != "kanto" {
		t.Fatalf("expected the gym's region, got %q", foundRegion.Name)
	}
	if _, missing := table.GymByID("atlantis"); missing != nil {
		t.Fatalf("expected a miss for an unknown gym id")
	}
}

func TestLoadRegions_MissingFileUsesBuiltin(t *testing.T) {
	table, err := LoadRegions(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Regions) == 0 {
		t.Fatalf("expected the built-in table")
	}
	for _, r := range table.Regions {
		if len(r.Routes) == 0 || len(r.Gyms) == 0 {
			t.Fatalf("built-in region %q must carry routes and gyms", r.Name)
		}
	}
}

func TestLoadRegions_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.yaml")
	if err := os.WriteFile(path, []byte("regions: [not: valid"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if _, err := LoadRegions(path); err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestRandomSpecies(t *testing.T) {
	if got := RandomSpecies(nil); got != 0 {
		t.Fatalf("expected 0 for an empty pool, got %d", got)
	}
	pool := []int{7, 8, 9}
	for i := 0; i < 50; i++ {
		got := RandomSpecies(pool)
		if got != 7 && got != 8 && got != 9 {
			t.Fatalf("expected a pool member, got %d", got)
		}
	}
}
