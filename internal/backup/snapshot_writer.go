package backup

import (
	"context"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"namecard/internal/backup/interfaces"
	"namecard/internal/models"
	"namecard/internal/providers"
	"namecard/internal/services"
)

// SnapshotWriter dumps the full owner-info view plus the session row as
// one zstd-compressed JSON file. Snapshots are disaster copies only; the
// sqlite file stays the source of truth and nothing reads them back at
// boot.
type SnapshotWriter struct {
	service    services.RecordingServiceInterface
	compressor interfaces.CompressorInterface
	clock      providers.ClockProviderInterface
	logger     providers.Logger
}

func NewSnapshotWriter(compressor interfaces.CompressorInterface, service services.RecordingServiceInterface, clock providers.ClockProviderInterface, logger providers.Logger) *SnapshotWriter {
	return &SnapshotWriter{
		compressor: compressor,
		service:    service,
		clock:      clock,
		logger:     logger,
	}
}

// Write creates one snapshot file in dir and returns its path. The write
// is atomic (tmp file, sync, rename); a crash never leaves a half
// snapshot with the final name.
func (sw *SnapshotWriter) Write(ctx context.Context, dir string) (string, error) {
	session, err := sw.service.Status(ctx)
	if err != nil {
		return "", err
	}
	locations, err := sw.service.AdminLocations(ctx)
	if err != nil {
		return "", err
	}

	snapshot := models.Snapshot{
		GeneratedAt: sw.clock.Now(),
		Session:     session,
		Locations:   locations,
	}

	jsonData, err := json.Marshal(&snapshot)
	if err != nil {
		return "", err
	}
	data, err := sw.compressor.Compress(jsonData)
	if err != nil {
		return "", err
	}

	fileName := filepath.Join(dir, "namecard-"+snapshot.GeneratedAt.Format("20060102-150405")+".json.zst")

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return "", err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return "", err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return "", err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return "", err
	}
	if err = os.Rename(tmpFile, fileName); err != nil {
		os.Remove(tmpFile)
		return "", err
	}

	return fileName, nil
}

func (sw *SnapshotWriter) Close() {
	sw.compressor.Close()
}
