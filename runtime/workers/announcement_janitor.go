package workers

import (
	"context"
	"log/slog"
	"time"
)

// AnnouncementExpirer is the part of the panel the janitor needs.
type AnnouncementExpirer interface {
	ExpireAnnouncements(now time.Time)
}

// AnnouncementJanitor removes status announcements once their time is up,
// the way the page removed its live region messages after a second.
type AnnouncementJanitor struct {
	log      *slog.Logger
	panel    AnnouncementExpirer
	interval time.Duration
	now      func() time.Time
}

func NewAnnouncementJanitor(log *slog.Logger, panel AnnouncementExpirer, interval time.Duration) *AnnouncementJanitor {
	return &AnnouncementJanitor{log: log, panel: panel, interval: interval, now: time.Now}
}

func (w *AnnouncementJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			w.panel.ExpireAnnouncements(w.now())
		case <-ctx.Done():
			w.log.Debug("Context done, stopping announcement janitor")
			return nil
		}
	}
}
