// Package catalog loads the static location catalog: the mapping from
// location ids to their collectible quotes. The catalog is read once at
// startup and never modified at runtime; the ledger stores a snapshot of the
// catalog text at collection time so stored entries are immune to later
// catalog edits.
package catalog

import (
	_ "embed"
	"os"
	"sort"

	"quote-hunt/util/common"

	"github.com/goccy/go-json"
)

// DefaultLang is the fallback language for localized catalog text.
const DefaultLang = "en"

//go:embed catalog.json
var defaultCatalog []byte

// LocalizedText maps a language code to a translation. Plain JSON strings are
// accepted as well and treated as the default-language text, so both catalog
// formats that exist in the wild load cleanly.
type LocalizedText map[string]string

func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*t = LocalizedText{DefaultLang: plain}
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = LocalizedText(m)
	return nil
}

// Get resolves the text for lang, falling back to the default language and
// then to any available translation.
func (t LocalizedText) Get(lang string) string {
	if text, ok := t[lang]; ok && text != "" {
		return text
	}
	if text, ok := t[DefaultLang]; ok && text != "" {
		return text
	}
	for _, text := range t {
		if text != "" {
			return text
		}
	}
	return ""
}

// Collectible is the quote attached to a location.
type Collectible struct {
	Id      string        `json:"id"`
	Type    string        `json:"type"`
	Title   LocalizedText `json:"title"`
	Content LocalizedText `json:"content"`
	Author  LocalizedText `json:"author"`
}

// Location is one physical hunt location.
type Location struct {
	Name        LocalizedText `json:"name"`
	Collectible Collectible   `json:"collectible"`
}

// Catalog is the full location catalog.
type Catalog struct {
	GameTitle       LocalizedText       `json:"gameTitle"`
	GameDescription LocalizedText       `json:"gameDescription"`
	Locations       map[string]Location `json:"locations"`
}

// Snapshot is the denormalized catalog text frozen into a ledger entry at
// collection time.
type Snapshot struct {
	LocationId         string
	LocationName       string
	CollectibleId      string
	CollectibleTitle   string
	CollectibleContent string
	CollectibleAuthor  string
}

// Summary is the localized listing entry returned to clients.
type Summary struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// Load reads and parses the catalog JSON at path. An empty path loads the
// embedded default catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes catalog JSON.
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}
	if err := json.Unmarshal(data, c); err != nil {
		return nil, err
	}
	if len(c.Locations) == 0 {
		return nil, common.NewError("catalog has no locations")
	}
	return c, nil
}

// Get returns the location for id.
func (c *Catalog) Get(id string) (Location, bool) {
	loc, ok := c.Locations[id]
	return loc, ok
}

// Count returns the number of locations in the catalog.
func (c *Catalog) Count() int {
	return len(c.Locations)
}

// Snapshot freezes the catalog text of a location in the given language.
func (c *Catalog) Snapshot(id string, lang string) (*Snapshot, bool) {
	loc, ok := c.Locations[id]
	if !ok {
		return nil, false
	}
	return &Snapshot{
		LocationId:         id,
		LocationName:       loc.Name.Get(lang),
		CollectibleId:      loc.Collectible.Id,
		CollectibleTitle:   loc.Collectible.Title.Get(lang),
		CollectibleContent: loc.Collectible.Content.Get(lang),
		CollectibleAuthor:  loc.Collectible.Author.Get(lang),
	}, true
}

// Summaries lists locations localized for lang, sorted by id.
func (c *Catalog) Summaries(lang string) []Summary {
	out := make([]Summary, 0, len(c.Locations))
	for id, loc := range c.Locations {
		out = append(out, Summary{Id: id, Name: loc.Name.Get(lang)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Id < out[j].Id })
	return out
}
