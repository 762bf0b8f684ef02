package kubeconfig

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	humane "github.com/sierrasoftworks/humane-errors-go"
	"k8s.io/utils/clock"
)

const backupGlobSuffix = ".backup.*"

// BackupStore makes timestamped copies of credential files before they are
// overwritten and lists them back, newest first, for recovery. It keeps no
// index; backups are owned by their filesystem location.
type BackupStore struct {
	clock clock.Clock
}

// BackupStoreOption configures a BackupStore.
type BackupStoreOption func(*BackupStore)

// WithBackupClock replaces the wall clock used for backup timestamps.
func WithBackupClock(c clock.Clock) BackupStoreOption {
	return func(s *BackupStore) {
		s.clock = c
	}
}

// NewBackupStore returns a BackupStore.
func NewBackupStore(opts ...BackupStoreOption) *BackupStore {
	s := &BackupStore{clock: clock.RealClock{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Backup copies path to <path>.backup.<unix-timestamp>, preserving the
// original's permission bits, and returns the backup's path. A missing
// source file is a no-op, not an error; callers decide whether a backup was
// expected.
func (s *BackupStore) Backup(path string) (string, humane.Error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", humane.Wrap(err, "failed to stat credential file before backup")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", humane.Wrap(err, "failed to read credential file for backup")
	}

	backupPath := fmt.Sprintf("%s.backup.%d", path, s.clock.Now().Unix())
	if err := os.WriteFile(backupPath, raw, info.Mode().Perm()); err != nil {
		return "", humane.Wrap(err, "failed to write backup file")
	}
	if err := os.Chmod(backupPath, info.Mode().Perm()); err != nil {
		return "", humane.Wrap(err, "failed to set backup file permissions")
	}

	return backupPath, nil
}

// Checksum returns the hex sha256 digest of the file's bytes, or the empty
// string when the file cannot be read. The digest is audit bookkeeping only;
// validation and recovery never consult it.
func (s *BackupStore) Checksum(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Candidates lists the backups of path, most recently modified first.
func (s *BackupStore) Candidates(path string) []string {
	matches, err := filepath.Glob(path + backupGlobSuffix)
	if err != nil {
		return nil
	}

	type candidate struct {
		path  string
		mtime int64
	}
	candidates := make([]candidate, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{path: match, mtime: info.ModTime().UnixNano()})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].mtime > candidates[j].mtime
	})

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.path
	}
	return out
}
