package models

// TranslatedName carries the language variants of a display name. Name is the
// language-neutral value used when no variant exists for the requested language.
type TranslatedName struct {
	Name   string `json:"name,omitempty"`
	NameEn string `json:"name_en,omitempty"`
	NameFr string `json:"name_fr,omitempty"`
}

// In resolves the display name for a language, falling back to English and
// then to the neutral name.
func (n TranslatedName) In(language string) string {
	if language == "fr" && n.NameFr != "" {
		return n.NameFr
	}
	if n.NameEn != "" {
		return n.NameEn
	}
	if n.NameFr != "" {
		return n.NameFr
	}
	return n.Name
}

// Variants returns every non-empty name variant in a fixed order
// (neutral, English, French).
func (n TranslatedName) Variants() []string {
	variants := make([]string, 0, 3)
	for _, v := range []string{n.Name, n.NameEn, n.NameFr} {
		if v != "" {
			variants = append(variants, v)
		}
	}
	return variants
}

// Building is one campus building with its rooms. The JSON field names match
// the asset files shipped with the service.
type Building struct {
	TranslatedName
	Code      string  `json:"code"`
	Address   string  `json:"address,omitempty"`
	Facebook  string  `json:"facebook,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Rooms     []Room  `json:"rooms"`
}

// Room is a single room inside a building. Type refers to a RoomType key.
type Room struct {
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	AltName   string `json:"alt_name,omitempty"`
	AltNameEn string `json:"alt_name_en,omitempty"`
	AltNameFr string `json:"alt_name_fr,omitempty"`
}

// AltNameIn resolves the descriptive alternate name for a language, or "".
func (r Room) AltNameIn(language string) string {
	if language == "fr" && r.AltNameFr != "" {
		return r.AltNameFr
	}
	if r.AltNameEn != "" {
		return r.AltNameEn
	}
	if r.AltNameFr != "" {
		return r.AltNameFr
	}
	return r.AltName
}

// RoomType describes one category of room (classroom, lab, washroom, ...).
type RoomType struct {
	TranslatedName
	Icon string `json:"icon,omitempty"`
}
