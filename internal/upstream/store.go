package upstream

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/szyszomat/KiedySmieciKRK/internal/ocr"
)

const (
	backupDir       = "backup"
	tmpSuffix       = ".tmp"
	filePermissions = 0644
)

// Store persists fetched schedule images and parsed records under one
// directory. Writes go to a temp file first and are renamed into place;
// an existing file is moved into backup/ with a timestamp before being
// replaced.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// SaveImage writes a schedule PNG for an address and returns its path.
func (s *Store) SaveImage(street, houseNumber string, img []byte) (string, error) {
	name := fmt.Sprintf("schedule_%s_%s.png", fileToken(street), fileToken(houseNumber))
	path := filepath.Join(s.dir, name)
	if err := s.writeAtomic(path, img); err != nil {
		return "", err
	}
	log.Info("schedule image saved", "path", path, "bytes", len(img))
	return path, nil
}

// SaveRecord writes a parsed schedule record as indented JSON and returns
// its path.
func (s *Store) SaveRecord(street, houseNumber string, rec *ocr.ScheduleRecord) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("schedule_%s_%s.json", fileToken(street), fileToken(houseNumber))
	path := filepath.Join(s.dir, name)
	if err := s.writeAtomic(path, data); err != nil {
		return "", err
	}
	log.Info("schedule record saved", "path", path)
	return path, nil
}

// LoadRecord reads a previously saved schedule record.
func (s *Store) LoadRecord(path string) (*ocr.ScheduleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rec ocr.ScheduleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode schedule record %s: %w", path, err)
	}
	return &rec, nil
}

// writeAtomic writes via temp file + rename, backing up any existing file.
func (s *Store) writeAtomic(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		backupPath := filepath.Join(s.dir, backupDir)
		if err := os.MkdirAll(backupPath, 0755); err != nil {
			return fmt.Errorf("create backup directory: %w", err)
		}
		backupFile := filepath.Join(backupPath, fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(path)))
		if err := os.Rename(path, backupFile); err != nil {
			log.Warn("failed to back up existing file", "path", path, "err", err)
		}
	}

	tmpFile := path + tmpSuffix
	if err := os.WriteFile(tmpFile, data, filePermissions); err != nil {
		return err
	}
	return os.Rename(tmpFile, path)
}

func fileToken(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "_")
}
