package fitness

import (
	"fmt"
	"sort"
	"time"

	"github.com/barx10/treningsappen-wife-sub000/internal/i18n"
)

// NeverTrainedDays is the sentinel day count for muscle groups with no
// completed training in the history.
const NeverTrainedDays = 999

// RecoveryStatus classifies how recovered a muscle group is.
type RecoveryStatus string

// Recovery status classifications by days since last trained:
// 0–1 fresh, 2–7 ready, 8–10 warning, 11+ (and never trained) overdue.
const (
	RecoveryFresh   RecoveryStatus = "fresh"
	RecoveryReady   RecoveryStatus = "ready"
	RecoveryWarning RecoveryStatus = "warning"
	RecoveryOverdue RecoveryStatus = "overdue"
)

// RecoveryEntry is the derived recovery state for one muscle group.
type RecoveryEntry struct {
	Group     MuscleGroup    `json:"group"`
	GroupName string         `json:"groupName"`
	DaysSince int            `json:"daysSince"`
	Status    RecoveryStatus `json:"status"`
	Message   string         `json:"message"`
}

// RecoveryByGroup computes days elapsed since each muscle group was last
// trained and classifies its recovery status. Only completed sessions
// count, and within them only exercise instances that resolve against the
// catalog and have at least one completed set. Every enumerated muscle
// group receives exactly one entry even with zero history.
//
// Sessions are scanned most-recent-first so the first recorded day per
// muscle group is the nearest in time.
func RecoveryByGroup(history []WorkoutSession, catalog Catalog, now time.Time) []RecoveryEntry {
	completed := completedSessions(history)
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Date.After(completed[j].Date.Time)
	})

	lastTrained := make(map[MuscleGroup]time.Time)
	for _, sess := range completed {
		for _, g := range TrainedGroups(sess, catalog) {
			if _, seen := lastTrained[g]; !seen {
				lastTrained[g] = sess.Date.Time
			}
		}
	}

	entries := make([]RecoveryEntry, 0, len(Groups()))
	for _, g := range Groups() {
		days := NeverTrainedDays
		if day, ok := lastTrained[g]; ok {
			days = DaysBetween(day, now)
		}
		entries = append(entries, RecoveryEntry{
			Group:     g,
			GroupName: g.DisplayName(),
			DaysSince: days,
			Status:    classifyRecovery(days),
			Message:   recoveryMessage(days),
		})
	}
	return entries
}

// classifyRecovery maps a day count onto a recovery status.
func classifyRecovery(days int) RecoveryStatus {
	switch {
	case days <= 1:
		return RecoveryFresh
	case days <= 7:
		return RecoveryReady
	case days <= 10:
		return RecoveryWarning
	default:
		return RecoveryOverdue
	}
}

// recoveryMessage renders the human-readable status line. Day counts of 0
// and 1 get distinct messages even though both classify as fresh.
func recoveryMessage(days int) string {
	switch {
	case days == 0:
		return i18n.T("recovery.trained_today")
	case days == 1:
		return i18n.T("recovery.trained_yesterday")
	case days == NeverTrainedDays:
		return i18n.T("recovery.never_trained")
	default:
		return fmt.Sprintf(i18n.T("recovery.trained_days_ago"), days)
	}
}
