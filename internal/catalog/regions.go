package catalog

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// Route is a numbered wild encounter area with its species pool.
type Route struct {
	ID      int    `yaml:"id"`
	Name    string `yaml:"name"`
	Species []int  `yaml:"species"`
}

// Gym is a scripted boss encounter gating a badge.
type Gym struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Badge         string `yaml:"badge"`
	RequiredLevel int    `yaml:"required_level"`
	Species       []int  `yaml:"species"`
}

// League is the end-game boss encounter of a region.
type League struct {
	Species []int `yaml:"species"`
}

// Region groups routes, gyms and the league for one generation.
type Region struct {
	Name       string  `yaml:"name"`
	Generation int     `yaml:"generation"`
	Routes     []Route `yaml:"routes"`
	Gyms       []Gym   `yaml:"gyms"`
	League     *League `yaml:"league,omitempty"`
}

// RegionTable is the full encounter table loaded from YAML.
type RegionTable struct {
	Regions []Region `yaml:"regions"`
}

// LoadRegions reads the region table from the YAML file at path. A
// missing file falls back to the built-in table; a malformed one is an
// error.
func LoadRegions(path string) (*RegionTable, error) {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultRegionTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read regions file %s: %w", path, err)
	}
	var table RegionTable
	if err := yaml.Unmarshal(b, &table); err != nil {
		return nil, fmt.Errorf("failed to parse regions file %s: %w", path, err)
	}
	if len(table.Regions) == 0 {
		return nil, fmt.Errorf("regions file %s: no regions defined", path)
	}
	return &table, nil
}

// GymByID locates a gym and its region by gym id.
func (t *RegionTable) GymByID(id string) (*Region, *Gym) {
	for r := range t.Regions {
		region := &t.Regions[r]
		for g := range region.Gyms {
			if region.Gyms[g].ID == id {
				return region, &region.Gyms[g]
			}
		}
	}
	return nil, nil
}

// RandomRoute picks a random route from the region.
func (r *Region) RandomRoute() *Route {
	if len(r.Routes) == 0 {
		return nil
	}
	return &r.Routes[rand.Intn(len(r.Routes))]
}

// RandomSpecies picks a random species id from a pool, 0 when empty.
func RandomSpecies(pool []int) int {
	if len(pool) == 0 {
		return 0
	}
	return pool[rand.Intn(len(pool))]
}

func defaultRegionTable() *RegionTable {
	return &RegionTable{Regions: []Region{
		{
			Name:       "kanto",
			Generation: 1,
			Routes: []Route{
				{ID: 1, Name: "Route 1", Species: []int{16, 19, 10, 13}},
				{ID: 3, Name: "Route 3", Species: []int{21, 23, 27, 56}},
				{ID: 7, Name: "Route 7", Species: []int{37, 58, 52, 77}},
				{ID: 12, Name: "Route 12", Species: []int{48, 69, 129, 118}},
				{ID: 18, Name: "Route 18", Species: []int{22, 85, 111, 132}},
			},
			Gyms: []Gym{
				{ID: "pewter", Name: "Pewter Gym", Badge: "boulder", RequiredLevel: 12, Species: []int{74, 95}},
				{ID: "cerulean", Name: "Cerulean Gym", Badge: "cascade", RequiredLevel: 20, Species: []int{120, 121}},
				{ID: "vermilion", Name: "Vermilion Gym", Badge: "thunder", RequiredLevel: 28, Species: []int{25, 26}},
				{ID: "saffron", Name: "Saffron Gym", Badge: "marsh", RequiredLevel: 43, Species: []int{64, 65}},
			},
			League: &League{Species: []int{149, 130, 142}},
		},
		{
			Name:       "johto",
			Generation: 2,
			Routes: []Route{
				{ID: 29, Name: "Route 29", Species: []int{161, 163, 165}},
				{ID: 32, Name: "Route 32", Species: []int{179, 194, 187}},
				{ID: 42, Name: "Route 42", Species: []int{56, 179, 178}},
			},
			Gyms: []Gym{
				{ID: "violet", Name: "Violet Gym", Badge: "zephyr", RequiredLevel: 13, Species: []int{163, 17}},
				{ID: "olivine", Name: "Olivine Gym", Badge: "mineral", RequiredLevel: 35, Species: []int{205, 208}},
			},
			League: &League{Species: []int{248, 230, 154}},
		},
	}}
}
