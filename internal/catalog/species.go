package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/abdulhaseebkhan2166/saranda-quest/internal/dedupe"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/game"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/keys"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/logging"
	"github.com/abdulhaseebkhan2166/saranda-quest/internal/storage"
)

// ErrSpeciesUnavailable is returned when a species can be served neither
// from the upstream catalog nor from the local cache.
var ErrSpeciesUnavailable = errors.New("species catalog unavailable")

// SpeciesCatalog resolves species reference data. The network client is
// the production implementation; tests substitute a static map.
type SpeciesCatalog interface {
	SpeciesByID(ctx context.Context, id int) (*game.Species, error)
	SpeciesByName(ctx context.Context, name string) (*game.Species, error)
}

// SpeciesClient fetches species data from a PokeAPI-compatible service,
// persists assembled species in the catalog cache table and collapses
// concurrent fetches for the same key through singleflight.
type SpeciesClient struct {
	baseURL string
	http    *http.Client
	repo    storage.Repository
}

// NewSpeciesClient builds a species client against baseURL. repo may be
// nil, which disables the persistent cache (used in tests).
func NewSpeciesClient(baseURL string, timeout time.Duration, repo storage.Repository) *SpeciesClient {
	return &SpeciesClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		repo:    repo,
	}
}

func (c *SpeciesClient) SpeciesByID(ctx context.Context, id int) (*game.Species, error) {
	return c.species(ctx, strconv.Itoa(id))
}

func (c *SpeciesClient) SpeciesByName(ctx context.Context, name string) (*game.Species, error) {
	return c.species(ctx, strings.ToLower(strings.TrimSpace(name)))
}

func (c *SpeciesClient) species(ctx context.Context, idOrName string) (*game.Species, error) {
	key := keys.SpeciesCacheKey(idOrName)
	v, err, _ := dedupe.SpeciesGroup.Do(key, func() (interface{}, error) {
		if sp := c.fromCache(key); sp != nil {
			return sp, nil
		}
		sp, err := c.fetchSpecies(ctx, idOrName)
		if err != nil {
			return nil, err
		}
		c.toCache(key, sp)
		// Index the assembled species under both id and name so
		// either lookup form hits the cache next time.
		c.toCache(keys.SpeciesCacheKeyID(sp.ID), sp)
		c.toCache(keys.SpeciesCacheKey(sp.Name), sp)
		return sp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.Species), nil
}

func (c *SpeciesClient) fromCache(key string) *game.Species {
	if c.repo == nil {
		return nil
	}
	body, err := c.repo.GetCatalogEntry(key)
	if err != nil || len(body) == 0 {
		return nil
	}
	var sp game.Species
	if err := json.Unmarshal(body, &sp); err != nil {
		logging.Error("discarding corrupt catalog cache entry", err, logging.Fields{"key": key})
		return nil
	}
	return &sp
}

func (c *SpeciesClient) toCache(key string, sp *game.Species) {
	if c.repo == nil {
		return
	}
	body, err := json.Marshal(sp)
	if err != nil {
		return
	}
	if err := c.repo.SaveCatalogEntry(key, body); err != nil {
		logging.Error("failed to persist catalog cache entry", err, logging.Fields{"key": key})
	}
}

// --- upstream wire format ---

type pokemonPayload struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
	Types []struct {
		Slot int `json:"slot"`
		Type struct {
			Name string `json:"name"`
		} `json:"type"`
	} `json:"types"`
	Sprites struct {
		FrontDefault string `json:"front_default"`
	} `json:"sprites"`
	Moves []struct {
		Move struct {
			Name string `json:"name"`
		} `json:"move"`
		VersionGroupDetails []struct {
			LevelLearnedAt  int `json:"level_learned_at"`
			MoveLearnMethod struct {
				Name string `json:"name"`
			} `json:"move_learn_method"`
		} `json:"version_group_details"`
	} `json:"moves"`
}

type speciesPayload struct {
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
}

type chainNode struct {
	Species struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"species"`
	EvolutionDetails []struct {
		MinLevel *int `json:"min_level"`
	} `json:"evolution_details"`
	EvolvesTo []chainNode `json:"evolves_to"`
}

type chainPayload struct {
	Chain chainNode `json:"chain"`
}

func (c *SpeciesClient) fetchSpecies(ctx context.Context, idOrName string) (*game.Species, error) {
	var pk pokemonPayload
	if err := c.getJSON(ctx, "/pokemon/"+idOrName, &pk); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpeciesUnavailable, err)
	}

	sp := &game.Species{
		ID:             pk.ID,
		Name:           pk.Name,
		Sprite:         pk.Sprites.FrontDefault,
		LearnableMoves: map[string]int{},
	}
	for _, s := range pk.Stats {
		key := statKeyFromUpstream(s.Stat.Name)
		if key != "" {
			sp.BaseStats.Set(key, s.BaseStat)
		}
	}
	for _, t := range pk.Types {
		if game.ValidType(game.Type(t.Type.Name)) {
			sp.Types = append(sp.Types, game.Type(t.Type.Name))
		}
	}
	if len(sp.Types) == 0 {
		sp.Types = []game.Type{game.TypeNormal}
	}
	for _, m := range pk.Moves {
		for _, d := range m.VersionGroupDetails {
			if d.MoveLearnMethod.Name != "level-up" || d.LevelLearnedAt <= 0 {
				continue
			}
			if cur, ok := sp.LearnableMoves[m.Move.Name]; !ok || d.LevelLearnedAt < cur {
				sp.LearnableMoves[m.Move.Name] = d.LevelLearnedAt
			}
		}
	}

	// The evolution chain lives behind two extra hops; losing it only
	// degrades evolution, not battle, so failures are logged and
	// swallowed here.
	if err := c.attachEvolutions(ctx, sp); err != nil {
		logging.Error("failed to resolve evolution chain", err, logging.Fields{"species": sp.Name})
	}
	return sp, nil
}

func (c *SpeciesClient) attachEvolutions(ctx context.Context, sp *game.Species) error {
	var meta speciesPayload
	if err := c.getJSON(ctx, fmt.Sprintf("/pokemon-species/%d", sp.ID), &meta); err != nil {
		return err
	}
	if meta.EvolutionChain.URL == "" {
		return nil
	}

	key := keys.ChainCacheKey(meta.EvolutionChain.URL)
	v, err, _ := dedupe.ChainGroup.Do(key, func() (interface{}, error) {
		var chain chainPayload
		if err := c.getJSONAbsolute(ctx, meta.EvolutionChain.URL, &chain); err != nil {
			return nil, err
		}
		return &chain, nil
	})
	if err != nil {
		return err
	}
	chain := v.(*chainPayload)

	node := findChainNode(&chain.Chain, sp.Name)
	if node == nil {
		return nil
	}
	for _, next := range node.EvolvesTo {
		minLevel := 0
		for _, d := range next.EvolutionDetails {
			if d.MinLevel != nil {
				minLevel = *d.MinLevel
				break
			}
		}
		if minLevel <= 0 {
			// Stone, trade and friendship triggers are out of scope.
			continue
		}
		sp.Evolution = append(sp.Evolution, game.Evolution{
			TargetID:   speciesIDFromURL(next.Species.URL),
			TargetName: next.Species.Name,
			MinLevel:   minLevel,
		})
	}
	return nil
}

func findChainNode(node *chainNode, name string) *chainNode {
	if node.Species.Name == name {
		return node
	}
	for i := range node.EvolvesTo {
		if found := findChainNode(&node.EvolvesTo[i], name); found != nil {
			return found
		}
	}
	return nil
}

// speciesIDFromURL extracts the trailing numeric id from an upstream
// resource URL like ".../pokemon-species/25/".
func speciesIDFromURL(url string) int {
	parts := strings.Split(strings.TrimRight(url, "/"), "/")
	if len(parts) == 0 {
		return 0
	}
	id, _ := strconv.Atoi(parts[len(parts)-1])
	return id
}

func statKeyFromUpstream(name string) string {
	switch name {
	case "hp":
		return game.StatHP
	case "attack":
		return game.StatAtk
	case "defense":
		return game.StatDef
	case "special-attack":
		return game.StatSpa
	case "special-defense":
		return game.StatSpd
	case "speed":
		return game.StatSpe
	}
	return ""
}

func (c *SpeciesClient) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.getJSONAbsolute(ctx, c.baseURL+path, out)
}

func (c *SpeciesClient) getJSONAbsolute(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

// FallbackSpecies is the stub served when the catalog cannot answer at
// all: a recognizable glitch creature with uniform stats so play can
// continue offline.
func FallbackSpecies() *game.Species {
	return &game.Species{
		ID:        0,
		Name:      "missingno",
		Types:     []game.Type{game.TypeNormal},
		BaseStats: game.StatBlock{HP: 33, Atk: 136, Def: 0, Spa: 6, Spd: 6, Spe: 29},
	}
}
