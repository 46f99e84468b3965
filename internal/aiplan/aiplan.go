// Package aiplan requests AI-generated workout plans and recommendations
// from OpenAI. Responses are cached in the key-value store keyed by a
// digest of the request, so an unchanged profile and history never pays
// for a second generation. The rule-based suggestions in the fitness
// package remain the offline fallback when this service is unavailable.
package aiplan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// recentSessionLimit bounds how much history travels in the prompt.
const recentSessionLimit = 10

// PlanItem is one prescribed exercise in a generated plan.
type PlanItem struct {
	ExerciseID  string `json:"exercise_id"`
	SetCount    int    `json:"set_count"`
	RepRange    string `json:"rep_range"`
	RestSeconds int    `json:"rest_seconds"`
	Note        string `json:"note,omitempty"`
}

// Plan is a structured workout plan generated from the user's profile and
// recent history.
type Plan struct {
	Name                 string     `json:"name"`
	Items                []PlanItem `json:"items"`
	TotalDurationMinutes int        `json:"total_duration_minutes"`
	FocusAreas           []string   `json:"focus_areas"`
	Reasoning            string     `json:"reasoning"`
}

// Service calls the OpenAI API and caches its answers.
type Service struct {
	client openai.Client
	store  *kvstore.Store
	logger *slog.Logger
	model  shared.ChatModel
}

// NewService creates an AI plan service. The store holds the response
// caches.
func NewService(apiKey string, store *kvstore.Store, logger *slog.Logger) *Service {
	return &Service{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		store:  store,
		logger: logger,
		model:  openai.ChatModelGPT4o2024_08_06,
	}
}

// GeneratePlan returns a structured workout plan for the given snapshot,
// serving a cached plan when the snapshot is unchanged.
func (s *Service) GeneratePlan(
	ctx context.Context,
	profile fitness.UserProfile,
	history []fitness.WorkoutSession,
	catalog fitness.Catalog,
) (Plan, error) {
	digest := requestDigest(profile, history, catalog)

	var cached Plan
	if hit, err := s.loadCached(ctx, kvstore.KeyAIPlanCache, digest, &cached); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "reading plan cache failed", slog.Any("error", err))
	} else if hit {
		return cached, nil
	}

	prompt := planPrompt(profile, history, catalog)
	schema := planJSONSchema{exerciseIDs: catalogIDs(catalog)}
	content, err := s.complete(ctx, prompt, "workout_plan",
		"A structured workout plan tailored to the user's profile and history", schema)
	if err != nil {
		return Plan{}, fmt.Errorf("generate plan: %w", err)
	}

	var plan Plan
	if err = json.Unmarshal([]byte(content), &plan); err != nil {
		return Plan{}, fmt.Errorf("parse plan response: %w", err)
	}
	if err = validatePlan(plan, catalog); err != nil {
		return Plan{}, fmt.Errorf("validate plan: %w", err)
	}

	if err = s.storeCached(ctx, kvstore.KeyAIPlanCache, digest, plan); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "writing plan cache failed", slog.Any("error", err))
	}
	return plan, nil
}

// Recommendations returns free-text training recommendations, cached the
// same way as plans.
func (s *Service) Recommendations(
	ctx context.Context,
	profile fitness.UserProfile,
	history []fitness.WorkoutSession,
	catalog fitness.Catalog,
) ([]string, error) {
	digest := requestDigest(profile, history, catalog)

	var cached []string
	if hit, err := s.loadCached(ctx, kvstore.KeyAIRecommendationCache, digest, &cached); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "reading recommendation cache failed", slog.Any("error", err))
	} else if hit {
		return cached, nil
	}

	prompt := recommendationPrompt(profile, history)
	content, err := s.complete(ctx, prompt, "recommendations",
		"A short list of training recommendations in Norwegian", recommendationJSONSchema{})
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}

	var parsed struct {
		Recommendations []string `json:"recommendations"`
	}
	if err = json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("parse recommendation response: %w", err)
	}
	if len(parsed.Recommendations) == 0 {
		return nil, errors.New("response contains no recommendations")
	}

	if err = s.storeCached(ctx, kvstore.KeyAIRecommendationCache, digest, parsed.Recommendations); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "writing recommendation cache failed", slog.Any("error", err))
	}
	return parsed.Recommendations, nil
}

// complete sends one structured-output chat completion.
func (s *Service) complete(ctx context.Context, prompt, schemaName, schemaDescription string, schema any) (string, error) {
	completion, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a personal trainer for a Norwegian fitness app. " +
				"Answer in Norwegian. Only reference exercises by the identifiers you are given."),
			openai.UserMessage(prompt),
		},
		Model: s.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        schemaName,
					Description: openai.String(schemaDescription),
					Schema:      schema,
					Strict:      openai.Bool(true),
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}

// validatePlan checks that every prescribed exercise resolves against the
// catalog.
func validatePlan(plan Plan, catalog fitness.Catalog) error {
	if plan.Name == "" || len(plan.Items) == 0 {
		return errors.New("plan is missing name or items")
	}
	for _, item := range plan.Items {
		if _, ok := catalog.Resolve(item.ExerciseID); !ok {
			return fmt.Errorf("plan references unknown exercise %q", item.ExerciseID)
		}
		if item.SetCount <= 0 {
			return fmt.Errorf("plan item %s has no sets", item.ExerciseID)
		}
	}
	return nil
}

// cacheEntry binds a cached response to the request digest it answers.
type cacheEntry struct {
	Digest   string          `json:"digest"`
	Response json.RawMessage `json:"response"`
}

func (s *Service) loadCached(ctx context.Context, key, digest string, dst any) (bool, error) {
	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read cache %s: %w", key, err)
	}
	var entry cacheEntry
	if err = json.Unmarshal([]byte(raw), &entry); err != nil {
		return false, fmt.Errorf("decode cache %s: %w", key, err)
	}
	if entry.Digest != digest {
		return false, nil
	}
	if err = json.Unmarshal(entry.Response, dst); err != nil {
		return false, fmt.Errorf("decode cached response %s: %w", key, err)
	}
	return true, nil
}

func (s *Service) storeCached(ctx context.Context, key, digest string, response any) error {
	rawResponse, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	raw, err := json.Marshal(cacheEntry{Digest: digest, Response: rawResponse})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err = s.store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("write cache %s: %w", key, err)
	}
	return nil
}

// requestDigest hashes the inputs that influence a generation. Trimming
// happens before hashing so old history does not invalidate the cache.
func requestDigest(profile fitness.UserProfile, history []fitness.WorkoutSession, catalog fitness.Catalog) string {
	payload := struct {
		Profile fitness.UserProfile          `json:"profile"`
		Recent  []fitness.WorkoutSession     `json:"recent"`
		Catalog []fitness.ExerciseDefinition `json:"catalog"`
	}{
		Profile: profile,
		Recent:  recentSessions(history),
		Catalog: catalog,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		// UserProfile and friends always marshal; this is unreachable.
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// recentSessions returns the last sessions of the history snapshot.
func recentSessions(history []fitness.WorkoutSession) []fitness.WorkoutSession {
	if len(history) <= recentSessionLimit {
		return history
	}
	return history[len(history)-recentSessionLimit:]
}

func catalogIDs(catalog fitness.Catalog) []string {
	ids := make([]string, 0, len(catalog))
	for _, def := range catalog {
		ids = append(ids, def.ID)
	}
	return ids
}
