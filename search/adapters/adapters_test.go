package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"campus-guide-backend/campus/repositories"
	"campus-guide-backend/translations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func writeAssets(t *testing.T, files map[string]string) *repositories.SnapshotRepository {
	t.Helper()

	dir := t.TempDir()
	if _, ok := files["config.json"]; !ok {
		files["config.json"] = `{"version": 1}`
	}
	if _, ok := files["buildings.json"]; !ok {
		files["buildings.json"] = `[]`
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	repo := repositories.NewSnapshotRepository(dir, zaptest.NewLogger(t))
	require.NoError(t, repo.Load())
	return repo
}

func TestMatchFieldsRecordsUppercasedValuesInFieldOrder(t *testing.T) {
	matched := matchFields("HALL", "Dunton Hall", "dh", "Hall of Dunton", "")

	assert.Equal(t, []string{"DUNTON HALL", "HALL OF DUNTON"}, matched)
}

func TestMatchFieldsDeduplicatesEqualValues(t *testing.T) {
	// Name and NameEn are often identical in the assets.
	matched := matchFields("GYM", "Gymnasium", "GYMNASIUM")

	assert.Equal(t, []string{"GYMNASIUM"}, matched)
}

func TestBuildingAdapterPreservesAssetOrder(t *testing.T) {
	snapshots := writeAssets(t, map[string]string{
		"buildings.json": `[
			{"code": "ZZ", "name_en": "Zeta Hall", "latitude": 1, "longitude": 1, "rooms": []},
			{"code": "AA", "name_en": "Alpha Hall", "latitude": 2, "longitude": 2, "rooms": []}
		]`,
	})
	tr := translations.NewProvider()
	adapter := NewBuildingAdapter(snapshots, tr)

	results, err := adapter.GetResults("en", "HALL")
	require.NoError(t, err)
	require.Len(t, results, 2)

	// No re-sorting: ZZ comes first because the asset lists it first.
	assert.Equal(t, "ZZ", results[0].Title)
	assert.Equal(t, "AA", results[1].Title)
}

func TestBuildingAdapterWithoutSnapshotReturnsEmpty(t *testing.T) {
	repo := repositories.NewSnapshotRepository(t.TempDir(), zaptest.NewLogger(t))
	adapter := NewBuildingAdapter(repo, translations.NewProvider())

	results, err := adapter.GetResults("en", "ANYTHING")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRoomAdapterMatchesFullDesignation(t *testing.T) {
	snapshots := writeAssets(t, map[string]string{
		"buildings.json": `[
			{"code": "SC", "name_en": "Science Complex", "latitude": 1, "longitude": 1, "rooms": [
				{"name": "215", "type": "lab", "alt_name_en": "Chemistry lab"}
			]}
		]`,
		"room_types.json": `{"lab": {"name_en": "Laboratory", "name_fr": "Laboratoire", "icon": "flask"}}`,
	})
	adapter := NewRoomAdapter(snapshots, translations.NewProvider())

	results, err := adapter.GetResults("en", "SC 21")
	require.NoError(t, err)
	require.Len(t, results, 1)

	result := results[0]
	assert.Equal(t, "SC 215", result.Title)
	assert.Equal(t, "Chemistry lab", result.Description)
	assert.Equal(t, "flask", result.Icon)
	assert.Contains(t, result.MatchedTerms, "SC 215")

	ref, ok := result.SourceData.(*RoomRef)
	require.True(t, ok)
	assert.Equal(t, "SC", ref.Building.Code)
	assert.Equal(t, "215", ref.Room.Name)
}

func TestRoomAdapterFallsBackToRoomTypeLabel(t *testing.T) {
	snapshots := writeAssets(t, map[string]string{
		"buildings.json": `[
			{"code": "AT", "name_en": "Arts Tower", "latitude": 1, "longitude": 1, "rooms": [
				{"name": "1002", "type": "classroom"}
			]}
		]`,
		"room_types.json": `{"classroom": {"name_en": "Classroom", "name_fr": "Salle de classe", "icon": "school"}}`,
	})
	adapter := NewRoomAdapter(snapshots, translations.NewProvider())

	results, err := adapter.GetResults("fr", "1002")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Salle de classe", results[0].Description)
}

func TestLinkAdapterWalksNestedCategoriesDepthFirst(t *testing.T) {
	snapshots := writeAssets(t, map[string]string{
		"links.json": `[
			{
				"id": "top",
				"name_en": "Top",
				"links": [{"name_en": "Campus map", "url": "https://example.edu/map"}],
				"categories": [
					{
						"id": "nested",
						"name_en": "Nested",
						"links": [{"name_en": "Campus parking map", "url": "https://example.edu/parking"}]
					}
				]
			}
		]`,
	})
	adapter := NewLinkAdapter(snapshots, translations.NewProvider())

	results, err := adapter.GetResults("en", "MAP")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Campus map", results[0].Title)
	assert.Equal(t, "https://example.edu/map", results[0].Description)
	assert.Equal(t, "Campus parking map", results[1].Title)
}

func TestStudySpotAdapterMatchesLocation(t *testing.T) {
	snapshots := writeAssets(t, map[string]string{
		"study_spots.json": `[
			{"name_en": "Quiet corner", "name_fr": "Coin tranquille", "building": "LIB", "room": "122"}
		]`,
	})
	adapter := NewStudySpotAdapter(snapshots, translations.NewProvider())

	results, err := adapter.GetResults("en", "LIB 122")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Quiet corner", results[0].Title)
	assert.Equal(t, "LIB 122", results[0].Description)
	assert.Contains(t, results[0].MatchedTerms, "LIB 122")
}

func TestStudySpotAdapterTranslatesTitle(t *testing.T) {
	snapshots := writeAssets(t, map[string]string{
		"study_spots.json": `[
			{"name_en": "Quiet corner", "name_fr": "Coin tranquille", "building": "LIB"}
		]`,
	})
	adapter := NewStudySpotAdapter(snapshots, translations.NewProvider())

	results, err := adapter.GetResults("fr", "TRANQUILLE")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Coin tranquille", results[0].Title)
}
