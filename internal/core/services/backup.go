// internal/core/services/backup.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ammerola/wardrobe-be/internal/core/domain"
	"github.com/ammerola/wardrobe-be/internal/core/ports"
)

const (
	// BackupPrefix is the object key prefix for backup files.
	BackupPrefix = "backups/"
	// ReportPrefix is the object key prefix for spreadsheet reports.
	ReportPrefix = "reports/"

	backupContentType = "application/json"
	keyTimeLayout     = "20060102T150405Z"
)

// BackupService moves snapshots between the inventory and a BackupStorage.
type BackupService struct {
	inventory ports.InventoryService
	storage   ports.BackupStorage
	now       func() time.Time
	logger    *slog.Logger
}

// NewBackupService creates a new backup service
func NewBackupService(inventory ports.InventoryService, storage ports.BackupStorage, logger *slog.Logger) *BackupService {
	return &BackupService{
		inventory: inventory,
		storage:   storage,
		now:       time.Now,
		logger:    logger.With(slog.String("service", "backup")),
	}
}

// Encode exports the current inventory as backup file JSON.
func (s *BackupService) Encode(ctx context.Context) ([]byte, error) {
	snap, err := s.inventory.ExportSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return domain.EncodeSnapshot(snap)
}

// Restore decodes backup file JSON and replaces the inventory with it.
func (s *BackupService) Restore(ctx context.Context, data []byte) error {
	snap, err := domain.DecodeSnapshot(data)
	if err != nil {
		return err
	}
	return s.inventory.ImportSnapshot(ctx, snap)
}

// NewObjectKey returns a unique, time-sortable key under prefix.
func (s *BackupService) NewObjectKey(prefix, ext string) string {
	return fmt.Sprintf("%s%s-%s%s", prefix, s.now().UTC().Format(keyTimeLayout), uuid.New().String(), ext)
}

// Upload exports the inventory and stores it. It returns the object key.
func (s *BackupService) Upload(ctx context.Context) (string, error) {
	if s.storage == nil {
		return "", ports.ErrStorageNotConfigured
	}

	data, err := s.Encode(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to export snapshot: %w", err)
	}

	key := s.NewObjectKey(BackupPrefix, ".json")
	if _, err := s.storage.Upload(ctx, key, bytes.NewReader(data), backupContentType); err != nil {
		return "", fmt.Errorf("failed to upload backup: %w", err)
	}

	s.logger.InfoContext(ctx, "backup uploaded", slog.String("key", key), slog.Int("bytes", len(data)))
	return key, nil
}

// List returns stored backups, newest first.
func (s *BackupService) List(ctx context.Context) ([]ports.BackupObject, error) {
	if s.storage == nil {
		return nil, ports.ErrStorageNotConfigured
	}
	objects, err := s.storage.List(ctx, BackupPrefix)
	if err != nil {
		return nil, err
	}
	sortObjectsNewestFirst(objects)
	return objects, nil
}

// RestoreFromStorage downloads a stored backup and imports it.
func (s *BackupService) RestoreFromStorage(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, BackupPrefix) {
		return &domain.ValidationError{Field: "key", Message: "must name a stored backup"}
	}
	if s.storage == nil {
		return ports.ErrStorageNotConfigured
	}

	data, err := s.storage.Download(ctx, key)
	if err != nil {
		return err
	}
	if err := s.Restore(ctx, data); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "backup restored", slog.String("key", key))
	return nil
}

// Prune deletes all but the newest keep backups and returns the deleted keys.
// keep <= 0 disables pruning.
func (s *BackupService) Prune(ctx context.Context, keep int) ([]string, error) {
	if keep <= 0 {
		return nil, nil
	}

	objects, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(objects) <= keep {
		return nil, nil
	}

	deleted := make([]string, 0, len(objects)-keep)
	for _, obj := range objects[keep:] {
		if err := s.storage.Delete(ctx, obj.Key); err != nil {
			return deleted, fmt.Errorf("failed to prune %s: %w", obj.Key, err)
		}
		deleted = append(deleted, obj.Key)
	}

	s.logger.InfoContext(ctx, "backups pruned", slog.Int("deleted", len(deleted)), slog.Int("kept", keep))
	return deleted, nil
}

func sortObjectsNewestFirst(objects []ports.BackupObject) {
	sort.SliceStable(objects, func(i, j int) bool {
		if !objects[i].LastModified.Equal(objects[j].LastModified) {
			return objects[i].LastModified.After(objects[j].LastModified)
		}
		return objects[i].Key > objects[j].Key
	})
}
