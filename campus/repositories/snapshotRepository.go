package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"campus-guide-backend/campus/models"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Asset file names expected inside the asset directory.
const (
	configFile     = "config.json"
	buildingsFile  = "buildings.json"
	roomTypesFile  = "room_types.json"
	linksFile      = "links.json"
	studySpotsFile = "study_spots.json"
	shuttleFile    = "shuttle.json"
)

// reloadSettle collapses the burst of fsnotify events an editor or deploy
// script produces into a single re-parse.
const reloadSettle = 500 * time.Millisecond

// SnapshotRepository owns the in-memory campus content snapshot. The snapshot
// is parsed from the JSON asset directory, read through an atomic pointer, and
// replaced wholesale on reload so readers never observe a partial update.
type SnapshotRepository struct {
	assetDir string
	logger   *zap.Logger

	current atomic.Pointer[models.Snapshot]

	mu          sync.Mutex
	subscribers []func(*models.Snapshot)

	watcher *fsnotify.Watcher
	done    chan struct{}
}

func NewSnapshotRepository(assetDir string, logger *zap.Logger) *SnapshotRepository {
	return &SnapshotRepository{
		assetDir: assetDir,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Load parses the asset directory and installs the initial snapshot.
func (r *SnapshotRepository) Load() error {
	snapshot, err := r.parse()
	if err != nil {
		return err
	}

	r.current.Store(snapshot)
	r.logger.Info("Campus snapshot loaded",
		zap.Int("version", snapshot.Version),
		zap.Int("buildings", len(snapshot.Buildings)),
		zap.Int("study_spots", len(snapshot.StudySpots)),
	)
	return nil
}

// Current returns the active snapshot, or nil before the first Load. Callers
// must treat the returned value as read-only.
func (r *SnapshotRepository) Current() *models.Snapshot {
	return r.current.Load()
}

// OnReload registers a callback invoked after every successful reload (not the
// initial Load). Callbacks run on the watcher goroutine and must not block.
func (r *SnapshotRepository) OnReload(fn func(*models.Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subscribers = append(r.subscribers, fn)
}

// Reload re-parses the assets and swaps the snapshot in. A parse failure
// keeps the previous snapshot so a bad edit never takes search down.
func (r *SnapshotRepository) Reload() error {
	snapshot, err := r.parse()
	if err != nil {
		r.logger.Error("Snapshot reload failed, keeping previous snapshot", zap.Error(err))
		return err
	}

	r.current.Store(snapshot)
	r.logger.Info("Campus snapshot reloaded", zap.Int("version", snapshot.Version))

	r.mu.Lock()
	subscribers := make([]func(*models.Snapshot), len(r.subscribers))
	copy(subscribers, r.subscribers)
	r.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
	return nil
}

// Watch starts an fsnotify watcher on the asset directory. Edits to any .json
// asset trigger a reload once events settle.
func (r *SnapshotRepository) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create asset watcher: %w", err)
	}
	if err := watcher.Add(r.assetDir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch asset directory %s: %w", r.assetDir, err)
	}
	r.watcher = watcher

	go func() {
		var settle *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !strings.HasSuffix(event.Name, ".json") {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				r.logger.Debug("Asset change detected", zap.String("file", event.Name), zap.String("op", event.Op.String()))
				if settle != nil {
					settle.Stop()
				}
				settle = time.AfterFunc(reloadSettle, func() {
					_ = r.Reload()
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.logger.Error("Asset watcher error", zap.Error(err))
			case <-r.done:
				return
			}
		}
	}()

	r.logger.Info("Watching campus assets for changes", zap.String("dir", r.assetDir))
	return nil
}

// Close stops the watcher goroutine.
func (r *SnapshotRepository) Close() {
	close(r.done)
	if r.watcher != nil {
		r.watcher.Close()
	}
}

// BuildingByCode finds a building by its code (case-insensitive), or nil.
func (r *SnapshotRepository) BuildingByCode(code string) *models.Building {
	snapshot := r.Current()
	if snapshot == nil {
		return nil
	}
	for i := range snapshot.Buildings {
		if strings.EqualFold(snapshot.Buildings[i].Code, code) {
			return &snapshot.Buildings[i]
		}
	}
	return nil
}

func (r *SnapshotRepository) parse() (*models.Snapshot, error) {
	var meta struct {
		Version int `json:"version"`
	}
	if err := r.readJSON(configFile, &meta, true); err != nil {
		return nil, err
	}

	snapshot := &models.Snapshot{
		Version:   meta.Version,
		RoomTypes: map[string]models.RoomType{},
	}

	if err := r.readJSON(buildingsFile, &snapshot.Buildings, true); err != nil {
		return nil, err
	}

	// The remaining assets are optional so a campus without, say, a shuttle
	// still gets a working snapshot.
	if err := r.readJSON(roomTypesFile, &snapshot.RoomTypes, false); err != nil {
		return nil, err
	}
	if err := r.readJSON(linksFile, &snapshot.LinkCategories, false); err != nil {
		return nil, err
	}
	if err := r.readJSON(studySpotsFile, &snapshot.StudySpots, false); err != nil {
		return nil, err
	}
	if err := r.readJSON(shuttleFile, &snapshot.Shuttle, false); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *SnapshotRepository) readJSON(name string, target interface{}, required bool) error {
	path := filepath.Join(r.assetDir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			r.logger.Warn("Optional campus asset missing", zap.String("file", name))
			return nil
		}
		return fmt.Errorf("failed to read asset %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse asset %s: %w", name, err)
	}
	return nil
}
