package models

// Snapshot is one immutable, fully-parsed view of the campus content assets.
// It is built once by the snapshot repository and swapped atomically on
// reload; nothing mutates it after construction.
type Snapshot struct {
	Version        int
	Buildings      []Building
	RoomTypes      map[string]RoomType
	LinkCategories []LinkCategory
	StudySpots     []StudySpot
	Shuttle        Shuttle
}
