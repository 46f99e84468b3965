package aiplan

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
)

// planPrompt renders the user prompt for a plan generation.
func planPrompt(profile fitness.UserProfile, history []fitness.WorkoutSession, catalog fitness.Catalog) string {
	var b strings.Builder
	b.WriteString("Lag en treningsøkt for denne brukeren.\n\n")
	writeProfile(&b, profile)
	writeCatalog(&b, catalog)
	writeHistory(&b, history, catalog)
	b.WriteString("\nVelg 4-6 øvelser som passer brukerens mål og gir hvile til " +
		"muskelgrupper som nylig er trent. Bruk kun øvelses-id-ene fra listen.")
	return b.String()
}

// recommendationPrompt renders the user prompt for free-text
// recommendations.
func recommendationPrompt(profile fitness.UserProfile, history []fitness.WorkoutSession) string {
	var b strings.Builder
	b.WriteString("Gi 2-3 korte, konkrete treningsanbefalinger for denne brukeren.\n\n")
	writeProfile(&b, profile)
	writeHistory(&b, history, nil)
	return b.String()
}

func writeProfile(b *strings.Builder, profile fitness.UserProfile) {
	fmt.Fprintf(b, "Profil: mål=%s", profile.Goal)
	if profile.Age != nil {
		fmt.Fprintf(b, ", alder=%d", *profile.Age)
	}
	if profile.WeightKg > 0 {
		fmt.Fprintf(b, ", vekt=%.0f kg", profile.WeightKg)
	}
	b.WriteString("\n")
}

func writeCatalog(b *strings.Builder, catalog fitness.Catalog) {
	b.WriteString("Tilgjengelige øvelser (id: navn, muskelgruppe):\n")
	for _, def := range catalog {
		fmt.Fprintf(b, "- %s: %s, %s\n", def.ID, def.Name, def.Primary)
	}
}

func writeHistory(b *strings.Builder, history []fitness.WorkoutSession, catalog fitness.Catalog) {
	recent := recentSessions(history)
	if len(recent) == 0 {
		b.WriteString("Ingen tidligere økter.\n")
		return
	}
	b.WriteString("Siste økter:\n")
	for _, sess := range recent {
		fmt.Fprintf(b, "- %s (%s): %d øvelser",
			sess.Date.Format(time.DateOnly), sess.Status, len(sess.Exercises))
		if groups := fitness.TrainedGroups(sess, catalog); len(groups) > 0 {
			names := make([]string, 0, len(groups))
			for _, g := range groups {
				names = append(names, string(g))
			}
			fmt.Fprintf(b, ", muskelgrupper: %s", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}
}

// planJSONSchema encodes the strict response schema for plan generation,
// constraining exercise references to the known catalog identifiers.
type planJSONSchema struct {
	exerciseIDs []string
}

func (s planJSONSchema) MarshalJSON() ([]byte, error) {
	idsJSON, err := json.Marshal(s.exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("marshal exercise ids: %w", err)
	}

	return []byte(fmt.Sprintf(`{
	  "type": "object",
	  "required": ["name", "items", "total_duration_minutes", "focus_areas", "reasoning"],
	  "properties": {
		"name": {
		  "type": "string",
		  "description": "Short Norwegian name for the workout"
		},
		"items": {
		  "type": "array",
		  "description": "Ordered exercises of the workout",
		  "items": {
			"type": "object",
			"required": ["exercise_id", "set_count", "rep_range", "rest_seconds", "note"],
			"properties": {
			  "exercise_id": {
				"type": "string",
				"description": "Identifier of the exercise",
				"enum": %s
			  },
			  "set_count": {
				"type": "integer",
				"description": "Number of sets"
			  },
			  "rep_range": {
				"type": "string",
				"description": "Repetition range such as 8-12, or a duration for timed exercises"
			  },
			  "rest_seconds": {
				"type": "integer",
				"description": "Rest between sets in seconds"
			  },
			  "note": {
				"type": "string",
				"description": "Optional coaching cue, empty when not needed"
			  }
			},
			"additionalProperties": false
		  }
		},
		"total_duration_minutes": {
		  "type": "integer",
		  "description": "Estimated total duration in minutes"
		},
		"focus_areas": {
		  "type": "array",
		  "description": "Muscle groups or qualities the workout focuses on",
		  "items": { "type": "string" }
		},
		"reasoning": {
		  "type": "string",
		  "description": "Short Norwegian explanation of why this plan fits the user"
		}
	  },
	  "additionalProperties": false
	}`, idsJSON)), nil
}

// recommendationJSONSchema encodes the strict response schema for free-text
// recommendations.
type recommendationJSONSchema struct{}

func (recommendationJSONSchema) MarshalJSON() ([]byte, error) {
	return []byte(`{
	  "type": "object",
	  "required": ["recommendations"],
	  "properties": {
		"recommendations": {
		  "type": "array",
		  "description": "2-3 short training recommendations in Norwegian",
		  "items": { "type": "string" }
		}
	  },
	  "additionalProperties": false
	}`), nil
}
