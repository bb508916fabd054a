package utils

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// StartCategoryRepair launches a background goroutine that periodically
// removes post_categories rows pointing at categories that no longer exist.
// The category-delete cascade is not atomic across documents, so a crash
// between the delete and the pull can leave dangling references; this sweep
// is the repair pass for that window. Cancelling the context stops the
// goroutine.
func StartCategoryRepair(ctx context.Context, db *gorm.DB, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	go func() {
		// The ticker waits one interval before the first sweep, so the
		// sweep never races migrations at startup.
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			res := db.Exec("DELETE FROM post_categories WHERE category_id NOT IN (SELECT id FROM categories)")
			if res.Error != nil {
				if Sugar != nil {
					Sugar.Warnf("category repair sweep failed: %v", res.Error)
				}
				continue
			}
			if res.RowsAffected > 0 && Sugar != nil {
				Sugar.Infof("category repair sweep removed %d dangling references", res.RowsAffected)
			}
		}
	}()
}
