package fitness

import (
	"fmt"
	"time"

	"github.com/barx10/treningsappen-wife-sub000/internal/i18n"
)

// Severity grades an advisory.
type Severity string

// Advisory severities.
const (
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Advisory kinds.
const (
	AdvisoryNeglected    = "neglected"
	AdvisoryOvertraining = "overtraining"
)

// Advisory is a human-readable training warning for one muscle group.
type Advisory struct {
	Kind     string      `json:"kind"`
	Group    MuscleGroup `json:"group"`
	Severity Severity    `json:"severity"`
	Message  string      `json:"message"`
}

// neglect thresholds in days elapsed.
const (
	neglectedAfterDays    = 10
	neglectedSeverelyDays = 14
)

// NeglectAdvisories derives a warning for every muscle group that has gone
// ten or more days without training. Never-trained groups qualify via the
// sentinel day count. Severity is high from fourteen days, medium below.
func NeglectAdvisories(entries []RecoveryEntry) []Advisory {
	var advisories []Advisory
	for _, entry := range entries {
		if entry.DaysSince < neglectedAfterDays {
			continue
		}
		severity := SeverityMedium
		if entry.DaysSince >= neglectedSeverelyDays {
			severity = SeverityHigh
		}
		message := fmt.Sprintf(i18n.T("advisory.neglected"), entry.Group.DisplayName(), entry.DaysSince)
		if entry.DaysSince == NeverTrainedDays {
			message = fmt.Sprintf(i18n.T("advisory.neglected_never"), entry.Group.DisplayName())
		}
		advisories = append(advisories, Advisory{
			Kind:     AdvisoryNeglected,
			Group:    entry.Group,
			Severity: severity,
			Message:  message,
		})
	}
	return advisories
}

// OvertrainingAdvisories warns about muscle groups present both in today's
// in-progress session and in yesterday's completed sessions. The caller
// supplies today's partial muscle group set explicitly; it is not derived
// from history, so the check is only meaningful mid-session.
func OvertrainingAdvisories(
	todaysGroups []MuscleGroup,
	history []WorkoutSession,
	catalog Catalog,
	now time.Time,
) []Advisory {
	if len(todaysGroups) == 0 {
		return nil
	}

	yesterday := make(map[MuscleGroup]bool)
	for _, sess := range completedSessions(history) {
		if !IsYesterday(sess.Date.Time, now) {
			continue
		}
		for _, g := range TrainedGroups(sess, catalog) {
			yesterday[g] = true
		}
	}

	var advisories []Advisory
	for _, g := range todaysGroups {
		if !yesterday[g] {
			continue
		}
		advisories = append(advisories, Advisory{
			Kind:     AdvisoryOvertraining,
			Group:    g,
			Severity: SeverityHigh,
			Message:  fmt.Sprintf(i18n.T("advisory.overtrained"), g.DisplayName()),
		})
	}
	return advisories
}
