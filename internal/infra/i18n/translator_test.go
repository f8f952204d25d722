package i18n

import (
	"net/http/httptest"
	"testing"

	"blvgames/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTranslator(t *testing.T, lang string) *Translator {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Language = lang
	tr, err := NewTranslator(cfg)
	require.NoError(t, err)

	return tr
}

func TestTranslator_Match(t *testing.T) {
	tr := newTranslator(t, "es")

	assert.Equal(t, language.Spanish, tr.Match(""))
	assert.Equal(t, language.English, tr.Match("en-US,en;q=0.9"))
	assert.Equal(t, language.Spanish, tr.Match("es-BO"))
	assert.Equal(t, language.Spanish, tr.Match("fr-FR"))
	assert.Equal(t, language.Spanish, tr.Match(";;;"))
}

func TestTranslator_ResolveTag(t *testing.T) {
	tr := newTranslator(t, "es")

	req := httptest.NewRequest("GET", "/api/games?lang=en", nil)
	req.Header.Set("Accept-Language", "es-BO")
	assert.Equal(t, language.English, tr.ResolveTag(req))

	req = httptest.NewRequest("GET", "/api/games", nil)
	req.Header.Set("Accept-Language", "en-GB")
	assert.Equal(t, language.English, tr.ResolveTag(req))

	assert.Equal(t, language.Spanish, tr.ResolveTag(nil))
}

func TestTranslator_Message(t *testing.T) {
	tr := newTranslator(t, "es")

	assert.Equal(t, "Juego no encontrado", tr.Message(language.Spanish, "GAME_NOT_FOUND", "x"))
	assert.Equal(t, "Game not found", tr.Message(language.English, "GAME_NOT_FOUND", "x"))
	assert.Equal(t, "El campo 'name' es requerido", tr.Message(language.Spanish, "MISSING_FIELD", "x", "name"))
	assert.Equal(t, "The field 'price' is required", tr.Message(language.English, "MISSING_FIELD", "x", "price"))
	assert.Equal(t, "No fields to update", tr.Message(language.English, "NO_FIELDS_TO_UPDATE", "x", "ignored"))
	assert.Equal(t, "fallback text", tr.Message(language.English, "SOMETHING_NEW", "fallback text"))
}

func TestTranslator_EnglishDefault(t *testing.T) {
	tr := newTranslator(t, "en")

	assert.Equal(t, language.English, tr.Default())
	assert.Equal(t, language.English, tr.Match("de"))
}
