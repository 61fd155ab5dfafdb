package adapters

import (
	campus_models "campus-guide-backend/campus/models"
	"campus-guide-backend/campus/repositories"
	"campus-guide-backend/search/models"
	"campus-guide-backend/translations"
)

// RoomRef points a room result back at both the room and its building so the
// consumer can navigate to the right floor plan.
type RoomRef struct {
	Building *campus_models.Building `json:"building"`
	Room     *campus_models.Room     `json:"room"`
}

// RoomAdapter matches rooms by name, by their full "CODE room" designation and
// by their descriptive alternate names.
type RoomAdapter struct {
	snapshots    *repositories.SnapshotRepository
	translations *translations.Provider
}

func NewRoomAdapter(snapshots *repositories.SnapshotRepository, tr *translations.Provider) *RoomAdapter {
	return &RoomAdapter{snapshots: snapshots, translations: tr}
}

func (a *RoomAdapter) ID() string {
	return "rooms"
}

func (a *RoomAdapter) SectionKey() string {
	return translations.KeyRooms
}

func (a *RoomAdapter) GetResults(language, normalizedTerms string) ([]*models.SearchResult, error) {
	snapshot := a.snapshots.Current()
	if snapshot == nil {
		return nil, nil
	}

	var results []*models.SearchResult
	for i := range snapshot.Buildings {
		building := &snapshot.Buildings[i]
		for j := range building.Rooms {
			room := &building.Rooms[j]

			designation := building.Code + " " + room.Name
			matched := matchFields(normalizedTerms,
				room.Name,
				designation,
				room.AltName,
				room.AltNameEn,
				room.AltNameFr,
			)
			if len(matched) == 0 {
				continue
			}

			roomType, hasType := snapshot.RoomTypes[room.Type]
			icon := "door"
			description := room.AltNameIn(language)
			if hasType {
				if roomType.Icon != "" {
					icon = roomType.Icon
				}
				if description == "" {
					description = a.translations.GetName(language, roomType.TranslatedName)
				}
			}

			results = append(results, &models.SearchResult{
				Title:        designation,
				Description:  description,
				Icon:         icon,
				MatchedTerms: matched,
				SourceData:   &RoomRef{Building: building, Room: room},
			})
		}
	}

	return results, nil
}
