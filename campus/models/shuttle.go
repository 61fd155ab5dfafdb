package models

// ShuttleStop is a named pickup point on the campus shuttle circuit.
type ShuttleStop struct {
	TranslatedName
	ID        string  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ShuttleDeparture is one scheduled departure time (24h "HH:MM") from a stop.
type ShuttleDeparture struct {
	Stop  string `json:"stop"`
	Time  string `json:"time"`
	Days  string `json:"days,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// ShuttleRoute groups stops and departures for one direction of the circuit.
type ShuttleRoute struct {
	TranslatedName
	ID         string             `json:"id"`
	Stops      []string           `json:"stops"`
	Departures []ShuttleDeparture `json:"departures,omitempty"`
}

// Shuttle is the full shuttle table from the assets.
type Shuttle struct {
	Stops  []ShuttleStop  `json:"stops"`
	Routes []ShuttleRoute `json:"routes"`
}
