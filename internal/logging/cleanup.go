package logging

import (
	"log/slog"
	"time"

	"github.com/mertcakir/gameshelf-backend/internal/models"
	"gorm.io/gorm"
)

// Persisted error logs are kept this many days before the daily sweep
// removes them.
const retentionDays = 30

// StartCleanup launches the retention sweep for the system_logs table.
// Closing done stops it.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cutoff := time.Now().AddDate(0, 0, -retentionDays)
				result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
				if result.Error != nil {
					slog.Error("log cleanup failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("log cleanup completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
