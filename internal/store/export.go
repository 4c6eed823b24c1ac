package store

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/akyairhashvil/wagetrack/internal/config"
	"github.com/akyairhashvil/wagetrack/internal/models"
)

var (
	// ErrBackupEncrypted means an import needs a passphrase.
	ErrBackupEncrypted = errors.New("backup is encrypted")
	// ErrWrongPassphrase means decryption of a backup failed.
	ErrWrongPassphrase = errors.New("incorrect passphrase")
)

// Backup is a full snapshot of every collection, the same shape the
// collections have at rest.
type Backup struct {
	ExportedAt     time.Time              `json:"exported_at"`
	Settings       *models.Settings       `json:"settings,omitempty"`
	Jobs           []models.Job           `json:"jobs"`
	JobSchedules   []models.ScheduleEntry `json:"job_schedules"`
	LegacySchedule []models.ScheduleEntry `json:"schedule"`
	Sessions       []models.WorkSession   `json:"sessions"`
	Vacations      []models.Vacation      `json:"vacations"`
	PausedJobs     []string               `json:"paused_jobs"`
}

type encryptedBackup struct {
	Encrypted bool   `json:"encrypted"`
	Nonce     string `json:"nonce"`
	Data      string `json:"data"`
}

// Export serializes the full state as indented JSON.
func (s *Store) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	backup := Backup{ExportedAt: s.now()}
	var err error
	if backup.Settings, err = s.getSettingsLocked(ctx); err != nil {
		return nil, err
	}
	if backup.Jobs, err = readList[models.Job](ctx, s, config.KeyJobs, EntityJob); err != nil {
		return nil, err
	}
	if backup.JobSchedules, err = readList[models.ScheduleEntry](ctx, s, config.KeyJobSchedules, EntitySchedule); err != nil {
		return nil, err
	}
	if backup.LegacySchedule, err = readList[models.ScheduleEntry](ctx, s, config.KeySchedule, EntitySchedule); err != nil {
		return nil, err
	}
	if backup.Sessions, err = readList[models.WorkSession](ctx, s, config.KeySessions, EntitySession); err != nil {
		return nil, err
	}
	if backup.Vacations, err = readList[models.Vacation](ctx, s, config.KeyVacations, EntityVacation); err != nil {
		return nil, err
	}
	if backup.PausedJobs, err = readList[string](ctx, s, config.KeyPausedJobs, EntityPausedJobs); err != nil {
		return nil, err
	}
	return json.MarshalIndent(backup, "", "  ")
}

// ExportEncrypted wraps Export output in an AES-GCM envelope keyed by the
// passphrase.
func (s *Store) ExportEncrypted(ctx context.Context, passphrase string) ([]byte, error) {
	payload, err := s.Export(ctx)
	if err != nil {
		return nil, err
	}
	return encryptData(payload, passphrase)
}

// Import replaces every collection with the backup's contents. For an
// encrypted backup the passphrase must be supplied.
func (s *Store) Import(ctx context.Context, data []byte, passphrase string) error {
	var envelope encryptedBackup
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Encrypted {
		if passphrase == "" {
			return ErrBackupEncrypted
		}
		decrypted, err := decryptData(envelope, passphrase)
		if err != nil {
			return err
		}
		data = decrypted
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return wrapErr(EntitySettings, "import decode", "", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settingsRaw := []byte("null")
	if backup.Settings != nil {
		var err error
		if settingsRaw, err = json.Marshal(backup.Settings); err != nil {
			return wrapErr(EntitySettings, "import encode", "", err)
		}
	}
	if err := s.kv.Write(ctx, config.KeySettings, settingsRaw); err != nil {
		return wrapErr(EntitySettings, "import write", "", err)
	}
	if err := writeList(ctx, s, config.KeyJobs, EntityJob, backup.Jobs); err != nil {
		return err
	}
	if err := writeList(ctx, s, config.KeyJobSchedules, EntitySchedule, backup.JobSchedules); err != nil {
		return err
	}
	if err := writeList(ctx, s, config.KeySchedule, EntitySchedule, backup.LegacySchedule); err != nil {
		return err
	}
	if err := writeList(ctx, s, config.KeySessions, EntitySession, backup.Sessions); err != nil {
		return err
	}
	if err := writeList(ctx, s, config.KeyVacations, EntityVacation, backup.Vacations); err != nil {
		return err
	}
	return writeList(ctx, s, config.KeyPausedJobs, EntityPausedJobs, backup.PausedJobs)
}

func encryptData(payload []byte, passphrase string) ([]byte, error) {
	hash := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(hash[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	ciphertext := gcm.Seal(nil, nonce, payload, nil)
	wrapped := encryptedBackup{
		Encrypted: true,
		Nonce:     base64.StdEncoding.EncodeToString(nonce),
		Data:      base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.Marshal(wrapped)
}

func decryptData(envelope encryptedBackup, passphrase string) ([]byte, error) {
	nonce, err := base64.StdEncoding.DecodeString(envelope.Nonce)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	ciphertext, err := base64.StdEncoding.DecodeString(envelope.Data)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	hash := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(hash[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, ErrWrongPassphrase
	}
	payload, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return payload, nil
}
