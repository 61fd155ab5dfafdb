package translations

import (
	"testing"

	campus_models "campus-guide-backend/campus/models"

	"github.com/stretchr/testify/assert"
)

func TestGetResolvesSectionLabels(t *testing.T) {
	p := NewProvider()

	assert.Equal(t, "Buildings", p.Get("en", KeyBuildings))
	assert.Equal(t, "Bâtiments", p.Get("fr", KeyBuildings))
	assert.Equal(t, "Useful links", p.Get("en", KeyUsefulLinks))
	assert.Equal(t, "Liens utiles", p.Get("fr", KeyUsefulLinks))
}

func TestGetFallsBackToEnglishThenKey(t *testing.T) {
	p := NewProvider()

	assert.Equal(t, "Buildings", p.Get("de", KeyBuildings), "unknown language falls back to English")
	assert.Equal(t, "missing_key", p.Get("en", "missing_key"), "unknown key surfaces itself")
}

func TestGetNamePrefersRequestedLanguage(t *testing.T) {
	p := NewProvider()
	name := campus_models.TranslatedName{NameEn: "Library", NameFr: "Bibliothèque"}

	assert.Equal(t, "Library", p.GetName("en", name))
	assert.Equal(t, "Bibliothèque", p.GetName("fr", name))
}

func TestGetNameFallsBack(t *testing.T) {
	p := NewProvider()

	onlyEnglish := campus_models.TranslatedName{NameEn: "Gymnasium"}
	assert.Equal(t, "Gymnasium", p.GetName("fr", onlyEnglish))

	onlyNeutral := campus_models.TranslatedName{Name: "B12"}
	assert.Equal(t, "B12", p.GetName("en", onlyNeutral))
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("fr"))
	assert.False(t, Supported("de"))
	assert.ElementsMatch(t, []string{"en", "fr"}, Languages())
}
