package models

// StudySpot is one bookable or drop-in study location.
type StudySpot struct {
	TranslatedName
	Building string   `json:"building"`
	Room     string   `json:"room,omitempty"`
	Opens    string   `json:"opens,omitempty"`
	Closes   string   `json:"closes,omitempty"`
	Features []string `json:"features,omitempty"`
}
