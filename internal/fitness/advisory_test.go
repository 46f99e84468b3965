package fitness

import (
	"strings"
	"testing"
)

func TestNeglectAdvisories_Thresholds(t *testing.T) {
	tests := []struct {
		name         string
		daysSince    int
		wantAdvisory bool
		wantSeverity Severity
	}{
		{"nine days is fine", 9, false, ""},
		{"ten days is medium", 10, true, SeverityMedium},
		{"thirteen days is medium", 13, true, SeverityMedium},
		{"fourteen days is high", 14, true, SeverityHigh},
		{"never trained is high", NeverTrainedDays, true, SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []RecoveryEntry{{
				Group:     GroupBack,
				GroupName: GroupBack.DisplayName(),
				DaysSince: tt.daysSince,
				Status:    classifyRecovery(tt.daysSince),
			}}
			advisories := NeglectAdvisories(entries)

			if !tt.wantAdvisory {
				if len(advisories) != 0 {
					t.Fatalf("expected no advisories, got %v", advisories)
				}
				return
			}
			if len(advisories) != 1 {
				t.Fatalf("expected 1 advisory, got %d", len(advisories))
			}
			got := advisories[0]
			if got.Severity != tt.wantSeverity {
				t.Errorf("severity = %s, want %s", got.Severity, tt.wantSeverity)
			}
			if got.Kind != AdvisoryNeglected {
				t.Errorf("kind = %s, want %s", got.Kind, AdvisoryNeglected)
			}
			if !strings.Contains(got.Message, GroupBack.DisplayName()) {
				t.Errorf("message %q does not name the muscle group", got.Message)
			}
		})
	}
}

func TestNeglectAdvisories_NeverTrainedMessageOmitsSentinel(t *testing.T) {
	entries := []RecoveryEntry{{Group: GroupCardio, DaysSince: NeverTrainedDays}}
	advisories := NeglectAdvisories(entries)
	if len(advisories) != 1 {
		t.Fatalf("expected 1 advisory, got %d", len(advisories))
	}
	if strings.Contains(advisories[0].Message, "999") {
		t.Errorf("message %q leaks the sentinel day count", advisories[0].Message)
	}
}

func TestOvertrainingAdvisories(t *testing.T) {
	yesterdaySession := sessionOn("y", daysAgo(1), StatusCompleted, "bench")
	history := []WorkoutSession{yesterdaySession}

	tests := []struct {
		name       string
		today      []MuscleGroup
		wantGroups []MuscleGroup
	}{
		{
			name:       "overlap with yesterday triggers a warning",
			today:      []MuscleGroup{GroupChest, GroupLegs},
			wantGroups: []MuscleGroup{GroupChest},
		},
		{
			name:       "secondary groups from yesterday also overlap",
			today:      []MuscleGroup{GroupArms},
			wantGroups: []MuscleGroup{GroupArms},
		},
		{
			name:       "no overlap",
			today:      []MuscleGroup{GroupLegs, GroupCore},
			wantGroups: nil,
		},
		{
			name:       "empty today set",
			today:      nil,
			wantGroups: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advisories := OvertrainingAdvisories(tt.today, history, testCatalog(), testNow)
			if len(advisories) != len(tt.wantGroups) {
				t.Fatalf("got %d advisories, want %d: %v", len(advisories), len(tt.wantGroups), advisories)
			}
			for i, advisory := range advisories {
				if advisory.Group != tt.wantGroups[i] {
					t.Errorf("advisory %d is for %s, want %s", i, advisory.Group, tt.wantGroups[i])
				}
				if advisory.Severity != SeverityHigh {
					t.Errorf("advisory severity = %s, want %s", advisory.Severity, SeverityHigh)
				}
			}
		})
	}
}

func TestOvertrainingAdvisories_IgnoresOlderSessions(t *testing.T) {
	twoDaysAgo := sessionOn("old", daysAgo(2), StatusCompleted, "bench")
	advisories := OvertrainingAdvisories([]MuscleGroup{GroupChest}, []WorkoutSession{twoDaysAgo}, testCatalog(), testNow)
	if len(advisories) != 0 {
		t.Errorf("sessions older than yesterday must not trigger overtraining warnings, got %v", advisories)
	}
}
