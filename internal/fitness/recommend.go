package fitness

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/barx10/treningsappen-wife-sub000/internal/i18n"
)

const (
	maxSuggestions          = 3
	maxSampledExercises     = 2
	minWeeklyCardioSessions = 2
	pushPullImbalance       = 2
	backToBackWindow        = 36 * time.Hour
	denseWeekSessionCount   = 3
)

// Recommendations produces at most three short suggestion strings from the
// profile, history, and catalog, evaluated in fixed priority order.
// Exercise-name sampling goes through rng so tests can pin the selection;
// pass nil to use an unseeded source.
func Recommendations(
	profile UserProfile,
	history []WorkoutSession,
	catalog Catalog,
	now time.Time,
	rng *rand.Rand,
) []string {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if len(history) == 0 {
		return []string{i18n.T("suggest.starter")}
	}

	var suggestions []string
	collect := func(s string) bool {
		suggestions = append(suggestions, s)
		return len(suggestions) >= maxSuggestions
	}

	volume := weeklyGroupVolume(history, catalog, now)
	recent := recentlyTrainedGroups(history, catalog, now)

	for _, g := range nextGroupsToTrain(volume, recent) {
		if collect(groupSuggestion(g, catalog, rng)) {
			return suggestions
		}
	}

	if done := goalGapSuggestions(profile, history, catalog, now, volume, collect); done {
		return suggestions
	}

	if volume[GroupChest]+volume[GroupShoulders]-volume[GroupBack] >= pushPullImbalance {
		if collect(i18n.T("suggest.pull_balance")) {
			return suggestions
		}
	}

	if backToBackDensity(history, now) {
		if collect(i18n.T("suggest.rest")) {
			return suggestions
		}
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, i18n.T("suggest.keep_it_up"))
	}
	return suggestions
}

// recentlyTrainedGroups returns the muscle groups of the reference session:
// a completed session from yesterday when one exists, otherwise the most
// recent completed session.
func recentlyTrainedGroups(history []WorkoutSession, catalog Catalog, now time.Time) map[MuscleGroup]bool {
	completed := completedSessions(history)
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Date.After(completed[j].Date.Time)
	})

	recent := make(map[MuscleGroup]bool)
	var reference *WorkoutSession
	for i := range completed {
		if IsYesterday(completed[i].Date.Time, now) {
			reference = &completed[i]
			break
		}
	}
	if reference == nil && len(completed) > 0 {
		reference = &completed[0]
	}
	if reference != nil {
		for _, g := range TrainedGroups(*reference, catalog) {
			recent[g] = true
		}
	}
	return recent
}

// nextGroupsToTrain picks up to three muscle groups to suggest next.
// Recently trained groups are never candidates; among the rest, groups
// untrained this week come first, then ascending weekly volume. Leaving
// recent groups out means a broad session yesterday yields fewer picks
// here, letting the later checks contribute.
func nextGroupsToTrain(volume map[MuscleGroup]int, recent map[MuscleGroup]bool) []MuscleGroup {
	var picked []MuscleGroup
	add := func(g MuscleGroup) {
		for _, p := range picked {
			if p == g {
				return
			}
		}
		if len(picked) < maxSuggestions {
			picked = append(picked, g)
		}
	}

	for _, g := range Groups() {
		if volume[g] == 0 && !recent[g] {
			add(g)
		}
	}

	remaining := make([]MuscleGroup, 0, len(Groups()))
	for _, g := range Groups() {
		if !recent[g] && volume[g] > 0 {
			remaining = append(remaining, g)
		}
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return volume[remaining[i]] < volume[remaining[j]]
	})
	for _, g := range remaining {
		add(g)
	}

	return picked
}

// groupSuggestion renders one suggestion line for a muscle group, with up
// to two randomly sampled exercise names from the group's catalog entries.
func groupSuggestion(g MuscleGroup, catalog Catalog, rng *rand.Rand) string {
	pool := catalog.ByGroup(g)
	if len(pool) == 0 {
		return fmt.Sprintf(i18n.T("suggest.group_plain"), g.DisplayName())
	}

	count := maxSampledExercises
	if count > len(pool) {
		count = len(pool)
	}
	names := make([]string, 0, count)
	for _, idx := range rng.Perm(len(pool))[:count] {
		names = append(names, pool[idx].Name)
	}
	return fmt.Sprintf(i18n.T("suggest.group"), g.DisplayName(), strings.Join(names, " eller "))
}

// goalGapSuggestions emits goal-specific coverage warnings. The returned
// bool reports whether the suggestion budget is exhausted.
func goalGapSuggestions(
	profile UserProfile,
	history []WorkoutSession,
	catalog Catalog,
	now time.Time,
	volume map[MuscleGroup]int,
	collect func(string) bool,
) bool {
	switch profile.Goal {
	case GoalWeightLoss, GoalEndurance:
		if weeklyCardioSessions(history, catalog, now) < minWeeklyCardioSessions {
			if collect(i18n.T("suggest.cardio")) {
				return true
			}
		}
	case GoalStrength, GoalMuscle:
		if volume[GroupLegs] == 0 {
			if collect(i18n.T("suggest.legs")) {
				return true
			}
		}
	case GoalGeneral:
	}
	return false
}

// weeklyGroupVolume counts completed exercise instances per primary muscle
// group for completed sessions in the current week.
func weeklyGroupVolume(history []WorkoutSession, catalog Catalog, now time.Time) map[MuscleGroup]int {
	monday := StartOfWeek(now)
	volume := make(map[MuscleGroup]int)
	for _, sess := range completedSessions(history) {
		if sess.Date.Before(monday) {
			continue
		}
		for _, instance := range sess.Exercises {
			def, ok := catalog.Resolve(instance.ExerciseID)
			if !ok || !instance.hasCompletedSet() {
				continue
			}
			volume[def.Primary]++
		}
	}
	return volume
}

// weeklyCardioSessions counts this week's completed sessions containing at
// least one cardio-type exercise with a completed set.
func weeklyCardioSessions(history []WorkoutSession, catalog Catalog, now time.Time) int {
	monday := StartOfWeek(now)
	count := 0
	for _, sess := range completedSessions(history) {
		if sess.Date.Before(monday) {
			continue
		}
		for _, instance := range sess.Exercises {
			def, ok := catalog.Resolve(instance.ExerciseID)
			if ok && def.Type == TypeCardio && instance.hasCompletedSet() {
				count++
				break
			}
		}
	}
	return count
}

// backToBackDensity reports whether the two most recent sessions started
// within 36 hours of each other while the week already holds three or more
// sessions.
func backToBackDensity(history []WorkoutSession, now time.Time) bool {
	sorted := make([]WorkoutSession, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartedAt.After(sorted[j].StartedAt)
	})
	if len(sorted) < 2 {
		return false
	}
	gap := sorted[0].StartedAt.Sub(sorted[1].StartedAt)
	if gap < 0 || gap > backToBackWindow {
		return false
	}

	monday := StartOfWeek(now)
	weekCount := 0
	for _, sess := range sorted {
		if !sess.Date.Before(monday) {
			weekCount++
		}
	}
	return weekCount >= denseWeekSessionCount
}
