package workout

import (
	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
)

// builtinExercises is the canonical built-in exercise catalog. It is seeded
// on first run and re-applied non-destructively on every start so that
// name, grouping, and description fixes reach existing installations.
func builtinExercises() []fitness.ExerciseDefinition {
	return []fitness.ExerciseDefinition{
		{
			ID:        "squat",
			Name:      "Knebøy / Goblet Squat",
			Primary:   fitness.GroupLegs,
			Secondary: []fitness.MuscleGroup{fitness.GroupCore},
			Type:      fitness.TypeWeighted,
			Description: "Hold vekten foran brystet, senk deg kontrollert ned til " +
				"lårene er parallelle med gulvet og press opp igjen.",
		},
		{
			ID:        "bench-press",
			Name:      "Benkpress",
			Primary:   fitness.GroupChest,
			Secondary: []fitness.MuscleGroup{fitness.GroupArms, fitness.GroupShoulders},
			Type:      fitness.TypeWeighted,
			Description: "Ligg på benken med skulderbladene samlet, senk stangen til " +
				"brystet og press opp uten å låse albuene hardt.",
		},
		{
			ID:        "deadlift",
			Name:      "Markløft",
			Primary:   fitness.GroupBack,
			Secondary: []fitness.MuscleGroup{fitness.GroupLegs, fitness.GroupCore},
			Type:      fitness.TypeWeighted,
			Description: "Stå med stangen over midtfoten, hold ryggen nøytral og løft " +
				"ved å strekke hofter og knær samtidig.",
		},
		{
			ID:        "overhead-press",
			Name:      "Skulderpress",
			Primary:   fitness.GroupShoulders,
			Secondary: []fitness.MuscleGroup{fitness.GroupArms},
			Type:      fitness.TypeWeighted,
			Description: "Press stangen eller manualene rett opp fra skulderhøyde med " +
				"stram kjerne.",
		},
		{
			ID:        "barbell-row",
			Name:      "Stangroing",
			Primary:   fitness.GroupBack,
			Secondary: []fitness.MuscleGroup{fitness.GroupArms},
			Type:      fitness.TypeWeighted,
			Description: "Len overkroppen frem med nøytral rygg og trekk stangen mot " +
				"nedre del av brystet.",
		},
		{
			ID:        "biceps-curl",
			Name:      "Bicepscurl",
			Primary:   fitness.GroupArms,
			Type:      fitness.TypeWeighted,
			Description: "Hold albuene inntil siden og løft manualene kontrollert uten å " +
				"svinge med overkroppen.",
		},
		{
			ID:          "pushup",
			Name:        "Pushups",
			Primary:     fitness.GroupChest,
			Secondary:   []fitness.MuscleGroup{fitness.GroupArms, fitness.GroupCore},
			Type:        fitness.TypeBodyweight,
			Description: "Hold kroppen i en rett linje fra hode til hæl gjennom hele bevegelsen.",
		},
		{
			ID:          "pullup",
			Name:        "Pullups",
			Primary:     fitness.GroupBack,
			Secondary:   []fitness.MuscleGroup{fitness.GroupArms},
			Type:        fitness.TypeBodyweight,
			Description: "Trekk deg opp til haken passerer stangen og senk deg rolig ned igjen.",
		},
		{
			ID:          "plank",
			Name:        "Planke",
			Primary:     fitness.GroupCore,
			Type:        fitness.TypeDuration,
			Description: "Stå på underarmene med rett kropp og stram mage så lenge du klarer.",
		},
		{
			ID:          "running",
			Name:        "Løping",
			Primary:     fitness.GroupCardio,
			Secondary:   []fitness.MuscleGroup{fitness.GroupLegs},
			Type:        fitness.TypeCardio,
			Description: "Utendørs eller på mølle. Hold et tempo der du så vidt kan føre en samtale.",
		},
		{
			ID:          "rowing-machine",
			Name:        "Romaskin",
			Primary:     fitness.GroupCardio,
			Secondary:   []fitness.MuscleGroup{fitness.GroupBack, fitness.GroupLegs},
			Type:        fitness.TypeCardio,
			Description: "Driv taket med beina først, len deg så bakover og trekk med armene til slutt.",
		},
		{
			ID:          "burpees",
			Name:        "Burpees",
			Primary:     fitness.GroupFullBody,
			Type:        fitness.TypeBodyweight,
			Description: "Fra stående ned i pushup, opp igjen og avslutt med et hopp.",
		},
	}
}
