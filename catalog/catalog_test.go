package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const localizedCatalog = `{
  "gameTitle": {"en": "Quote Hunt", "hu": "Idézetvadászat"},
  "gameDescription": {"en": "Collect them all."},
  "locations": {
    "fountain": {
      "name": {"en": "Old Fountain", "hu": "Öreg szökőkút"},
      "collectible": {
        "id": "q-fountain",
        "type": "quote",
        "title": {"en": "Stillness"},
        "content": {"en": "In the middle of difficulty lies opportunity.", "hu": "A nehézség közepén ott rejlik a lehetőség."},
        "author": {"en": "Albert Einstein"}
      }
    },
    "bridge": {
      "name": "Stone Bridge",
      "collectible": {
        "id": "q-bridge",
        "type": "quote",
        "title": "The Journey",
        "content": "The journey is the reward.",
        "author": "Proverb"
      }
    }
  }
}`

func TestParseLocalizedAndPlain(t *testing.T) {
	c, err := Parse([]byte(localizedCatalog))
	assert.NoError(t, err)
	assert.Equal(t, 2, c.Count())

	loc, ok := c.Get("fountain")
	assert.True(t, ok)
	assert.Equal(t, "Öreg szökőkút", loc.Name.Get("hu"))

	// Plain string fields load as default-language text.
	loc, ok = c.Get("bridge")
	assert.True(t, ok)
	assert.Equal(t, "Stone Bridge", loc.Name.Get("en"))
	assert.Equal(t, "Stone Bridge", loc.Name.Get("hu"))
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	_, err := Parse([]byte(`{"gameTitle": "x", "locations": {}}`))
	assert.Error(t, err)
}

func TestLocalizedTextFallback(t *testing.T) {
	text := LocalizedText{"en": "hello", "hu": "szia"}
	assert.Equal(t, "szia", text.Get("hu"))
	assert.Equal(t, "hello", text.Get("de"))
	assert.Equal(t, "hello", text.Get(""))

	// Missing default falls back to any available translation.
	huOnly := LocalizedText{"hu": "szia"}
	assert.Equal(t, "szia", huOnly.Get("de"))
}

func TestSnapshot(t *testing.T) {
	c, err := Parse([]byte(localizedCatalog))
	assert.NoError(t, err)

	snap, ok := c.Snapshot("fountain", "hu")
	assert.True(t, ok)
	assert.Equal(t, "fountain", snap.LocationId)
	assert.Equal(t, "Öreg szökőkút", snap.LocationName)
	assert.Equal(t, "q-fountain", snap.CollectibleId)
	assert.Equal(t, "A nehézség közepén ott rejlik a lehetőség.", snap.CollectibleContent)
	// Fields without a hu translation fall back to the default.
	assert.Equal(t, "Stillness", snap.CollectibleTitle)
	assert.Equal(t, "Albert Einstein", snap.CollectibleAuthor)

	_, ok = c.Snapshot("nowhere", "en")
	assert.False(t, ok)
}

func TestSummaries(t *testing.T) {
	c, err := Parse([]byte(localizedCatalog))
	assert.NoError(t, err)

	summaries := c.Summaries("en")
	assert.Len(t, summaries, 2)
	assert.Equal(t, "bridge", summaries[0].Id)
	assert.Equal(t, "Stone Bridge", summaries[0].Name)
	assert.Equal(t, "fountain", summaries[1].Id)
}

func TestEmbeddedDefaultCatalog(t *testing.T) {
	c, err := Load("")
	assert.NoError(t, err)
	assert.Greater(t, c.Count(), 0)
	assert.NotEmpty(t, c.GameTitle.Get("en"))
}
