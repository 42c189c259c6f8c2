// services/backup_service.go
package services

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"barberpro-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// BackupService copies the database file byte-for-byte into the backups
// directory, with a sidecar text log of record counts at backup time.
type BackupService struct {
	db     *gorm.DB
	dbPath string
	dir    string
}

func NewBackupService(db *gorm.DB, dbPath string) *BackupService {
	dir := os.Getenv("BACKUP_DIR")
	if dir == "" {
		dir = "backups"
	}
	return &BackupService{db: db, dbPath: dbPath, dir: dir}
}

// StartScheduler runs a backup every night at 02:00.
func (s *BackupService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 2 * * *", func() {
		if _, err := s.Run(); err != nil {
			log.Printf("Scheduled backup failed: %v", err)
		}
	})

	c.Start()
	log.Println("Backup scheduler started")
}

// Run performs one backup and returns the created file path.
func (s *BackupService) Run() (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	target := filepath.Join(s.dir, "backup_"+timestamp+".db")

	if err := copyFile(s.dbPath, target); err != nil {
		return "", fmt.Errorf("copy database: %w", err)
	}

	if err := s.writeSidecar(filepath.Join(s.dir, "backup_"+timestamp+".txt"), target); err != nil {
		// The data copy succeeded; a missing sidecar is only logged
		log.Printf("Backup sidecar log failed: %v", err)
	}

	log.Printf("Backup created: %s", target)
	return target, nil
}

func (s *BackupService) writeSidecar(path, backupFile string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(f, "Backup created at: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(f, "File: %s\n", backupFile)

	counts := []struct {
		label string
		model interface{}
	}{
		{"Clients", &models.Client{}},
		{"Sales", &models.Sale{}},
		{"Appointments", &models.Appointment{}},
		{"Products", &models.Product{}},
		{"Expenses", &models.Expense{}},
	}
	for _, entry := range counts {
		var n int64
		if err := s.db.Model(entry.model).Count(&n).Error; err != nil {
			return err
		}
		fmt.Fprintf(f, "%s: %d\n", entry.label, n)
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
