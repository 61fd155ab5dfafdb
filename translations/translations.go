package translations

import (
	campus_models "campus-guide-backend/campus/models"
)

// Keys resolved through the provider. Section labels for search results live
// here so every consumer renders the same translated headings.
const (
	KeyBuildings   = "buildings_section"
	KeyRooms       = "rooms_section"
	KeyUsefulLinks = "useful_links_section"
	KeyStudySpots  = "study_spots_section"
	KeyShuttle     = "shuttle_section"
)

var tables = map[string]map[string]string{
	"en": {
		KeyBuildings:   "Buildings",
		KeyRooms:       "Rooms",
		KeyUsefulLinks: "Useful links",
		KeyStudySpots:  "Study spots",
		KeyShuttle:     "Shuttle",
	},
	"fr": {
		KeyBuildings:   "Bâtiments",
		KeyRooms:       "Salles",
		KeyUsefulLinks: "Liens utiles",
		KeyStudySpots:  "Lieux d'étude",
		KeyShuttle:     "Navette",
	},
}

// Provider is a pure lookup over the static per-language tables. It performs
// no I/O; unknown languages fall back to English.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

// Get resolves a UI label key for a language. Missing keys fall back to the
// English table, then to the key itself so a gap is visible rather than blank.
func (p *Provider) Get(language, key string) string {
	if table, ok := tables[language]; ok {
		if value, ok := table[key]; ok {
			return value
		}
	}
	if value, ok := tables["en"][key]; ok {
		return value
	}
	return key
}

// GetName resolves an entity's display name for a language.
func (p *Provider) GetName(language string, name campus_models.TranslatedName) string {
	return name.In(language)
}

// Languages lists the supported language codes.
func Languages() []string {
	return []string{"en", "fr"}
}

// Supported reports whether a language code has a translation table.
func Supported(language string) bool {
	_, ok := tables[language]
	return ok
}
