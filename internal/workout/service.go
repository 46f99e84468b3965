package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Sentinel errors returned by the service.
var (
	ErrNotFound        = errors.New("not found")
	ErrActiveSession   = errors.New("a session is already active")
	ErrNoActiveSession = errors.New("no active session")
	ErrBuiltinExercise = errors.New("builtin exercises cannot be modified")
)

// Service owns the workout domain: the exercise catalog, session
// lifecycle, profile, favorites, and the derived dashboard views.
type Service struct {
	repo   *repository
	logger *slog.Logger
}

// NewService creates a workout service over the given key-value store.
func NewService(store *kvstore.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   newRepository(store, logger),
		logger: logger,
	}
}

// RefreshBuiltinExercises re-applies the canonical built-in catalog,
// preserving custom entries. Called once at startup.
func (s *Service) RefreshBuiltinExercises(ctx context.Context) error {
	if err := s.repo.exercises.RefreshBuiltins(ctx); err != nil {
		return fmt.Errorf("refresh builtin exercises: %w", err)
	}
	return nil
}

// Exercises returns the exercise catalog.
func (s *Service) Exercises(ctx context.Context) (fitness.Catalog, error) {
	catalog, err := s.repo.exercises.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return catalog, nil
}

// CreateExercise adds a custom exercise to the catalog.
func (s *Service) CreateExercise(ctx context.Context, def fitness.ExerciseDefinition) (fitness.ExerciseDefinition, error) {
	created, err := s.repo.exercises.CreateCustom(ctx, def)
	if err != nil {
		return fitness.ExerciseDefinition{}, fmt.Errorf("create exercise: %w", err)
	}
	return created, nil
}

// UpdateExercise replaces a custom exercise.
func (s *Service) UpdateExercise(ctx context.Context, def fitness.ExerciseDefinition) error {
	if err := s.repo.exercises.UpdateCustom(ctx, def); err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	return nil
}

// DeleteExercise removes a custom exercise.
func (s *Service) DeleteExercise(ctx context.Context, id string) error {
	if err := s.repo.exercises.DeleteCustom(ctx, id); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

// History returns all finished sessions.
func (s *Service) History(ctx context.Context) ([]fitness.WorkoutSession, error) {
	history, err := s.repo.sessions.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return history, nil
}

// StartSession begins a new active session with one exercise instance per
// given catalog identifier. At most one session may be active.
func (s *Service) StartSession(ctx context.Context, name string, exerciseIDs []string) (fitness.WorkoutSession, error) {
	if _, err := s.repo.sessions.Active(ctx); err == nil {
		return fitness.WorkoutSession{}, ErrActiveSession
	} else if !errors.Is(err, ErrNotFound) {
		return fitness.WorkoutSession{}, fmt.Errorf("check active session: %w", err)
	}

	catalog, err := s.repo.exercises.List(ctx)
	if err != nil {
		return fitness.WorkoutSession{}, fmt.Errorf("list exercises: %w", err)
	}
	exercises := make([]fitness.WorkoutExercise, 0, len(exerciseIDs))
	for _, id := range exerciseIDs {
		if _, ok := catalog.Resolve(id); !ok {
			return fitness.WorkoutSession{}, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
		}
		exercises = append(exercises, fitness.WorkoutExercise{ExerciseID: id})
	}

	now := time.Now()
	if name == "" {
		name = fmt.Sprintf("Økt %s", now.Format(time.DateOnly))
	}
	sess := fitness.WorkoutSession{
		ID:        uuid.NewString(),
		Name:      name,
		Date:      fitness.NewDate(now),
		StartedAt: now,
		Status:    fitness.StatusActive,
		Exercises: exercises,
	}
	if err = s.repo.sessions.SaveActive(ctx, sess); err != nil {
		return fitness.WorkoutSession{}, fmt.Errorf("save active session: %w", err)
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "started session",
		slog.String("session", sess.ID),
		slog.Int("exercises", len(exercises)))
	return sess, nil
}

// ActiveSession returns the in-progress session or ErrNoActiveSession.
func (s *Service) ActiveSession(ctx context.Context) (fitness.WorkoutSession, error) {
	sess, err := s.repo.sessions.Active(ctx)
	if errors.Is(err, ErrNotFound) {
		return fitness.WorkoutSession{}, ErrNoActiveSession
	}
	if err != nil {
		return fitness.WorkoutSession{}, fmt.Errorf("get active session: %w", err)
	}
	return sess, nil
}

// LogSet appends a set to the matching exercise instance of the active
// session. An exercise not yet in the session is added on first log.
func (s *Service) LogSet(ctx context.Context, update SetUpdate) (fitness.WorkoutSession, error) {
	sess, err := s.ActiveSession(ctx)
	if err != nil {
		return fitness.WorkoutSession{}, err
	}

	set := fitness.WorkoutSet{
		WeightKg:        update.WeightKg,
		Reps:            update.Reps,
		DurationMinutes: update.DurationMinutes,
		RPE:             update.RPE,
		Completed:       update.Completed,
	}

	logged := false
	for i := range sess.Exercises {
		if sess.Exercises[i].ExerciseID == update.ExerciseID {
			sess.Exercises[i].Sets = append(sess.Exercises[i].Sets, set)
			logged = true
			break
		}
	}
	if !logged {
		catalog, err := s.repo.exercises.List(ctx)
		if err != nil {
			return fitness.WorkoutSession{}, fmt.Errorf("list exercises: %w", err)
		}
		if _, ok := catalog.Resolve(update.ExerciseID); !ok {
			return fitness.WorkoutSession{}, fmt.Errorf("exercise %s: %w", update.ExerciseID, ErrNotFound)
		}
		sess.Exercises = append(sess.Exercises, fitness.WorkoutExercise{
			ExerciseID: update.ExerciseID,
			Sets:       []fitness.WorkoutSet{set},
		})
	}

	if err = s.repo.sessions.SaveActive(ctx, sess); err != nil {
		return fitness.WorkoutSession{}, fmt.Errorf("save active session: %w", err)
	}
	return sess, nil
}

// CompleteSession finishes the active session and appends it to history.
func (s *Service) CompleteSession(ctx context.Context) (fitness.WorkoutSession, error) {
	return s.finishSession(ctx, fitness.StatusCompleted)
}

// CancelSession aborts the active session and appends it to history.
func (s *Service) CancelSession(ctx context.Context) (fitness.WorkoutSession, error) {
	return s.finishSession(ctx, fitness.StatusCancelled)
}

func (s *Service) finishSession(ctx context.Context, status fitness.SessionStatus) (fitness.WorkoutSession, error) {
	sess, err := s.ActiveSession(ctx)
	if err != nil {
		return fitness.WorkoutSession{}, err
	}

	now := time.Now()
	sess.Status = status
	sess.EndedAt = &now

	if err = s.repo.sessions.Append(ctx, sess); err != nil {
		return fitness.WorkoutSession{}, fmt.Errorf("append session: %w", err)
	}
	if err = s.repo.sessions.ClearActive(ctx); err != nil {
		return fitness.WorkoutSession{}, fmt.Errorf("clear active session: %w", err)
	}
	return sess, nil
}

// Profile returns the user profile, defaulted when none is stored.
func (s *Service) Profile(ctx context.Context) (fitness.UserProfile, error) {
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return fitness.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	return profile, nil
}

// SaveProfile stores the user profile.
func (s *Service) SaveProfile(ctx context.Context, profile fitness.UserProfile) error {
	if err := s.repo.profile.Set(ctx, profile); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// Favorites returns the stored favorite workouts.
func (s *Service) Favorites(ctx context.Context) ([]FavoriteWorkout, error) {
	favorites, err := s.repo.favorites.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}

// AddFavorite stores a favorite workout template.
func (s *Service) AddFavorite(ctx context.Context, favorite FavoriteWorkout) (FavoriteWorkout, error) {
	added, err := s.repo.favorites.Add(ctx, favorite)
	if err != nil {
		return FavoriteWorkout{}, fmt.Errorf("add favorite: %w", err)
	}
	return added, nil
}

// RemoveFavorite deletes a favorite workout template.
func (s *Service) RemoveFavorite(ctx context.Context, id string) error {
	if err := s.repo.favorites.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

// StrengthStandard classifies the user's heaviest completed lift for the
// named exercise against the bodyweight-ratio table.
func (s *Service) StrengthStandard(ctx context.Context, exerciseName string) (fitness.StrengthStandard, error) {
	catalog, err := s.repo.exercises.List(ctx)
	if err != nil {
		return fitness.StrengthStandard{}, fmt.Errorf("list exercises: %w", err)
	}
	history, err := s.repo.sessions.History(ctx)
	if err != nil {
		return fitness.StrengthStandard{}, fmt.Errorf("list history: %w", err)
	}
	profile, err := s.repo.profile.Get(ctx)
	if err != nil {
		return fitness.StrengthStandard{}, fmt.Errorf("get profile: %w", err)
	}

	best := fitness.BestCompletedWeight(history, catalog, exerciseName)
	return fitness.ClassifyStrength(exerciseName, best, profile.WeightKg), nil
}

// Dashboard derives the home screen views for the given reference time.
// Storage failures degrade to empty defaults per view instead of failing
// the whole dashboard.
func (s *Service) Dashboard(ctx context.Context, now time.Time) Dashboard {
	var (
		catalog   fitness.Catalog
		history   []fitness.WorkoutSession
		profile   fitness.UserProfile
		active    fitness.WorkoutSession
		hasActive bool
	)

	// The four snapshot reads are independent.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if catalog, err = s.repo.exercises.List(gctx); err != nil {
			s.logger.LogAttrs(gctx, slog.LevelError, "dashboard: loading catalog failed", slog.Any("error", err))
			catalog = builtinExercises()
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if history, err = s.repo.sessions.History(gctx); err != nil {
			s.logger.LogAttrs(gctx, slog.LevelError, "dashboard: loading history failed", slog.Any("error", err))
			history = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if profile, err = s.repo.profile.Get(gctx); err != nil {
			s.logger.LogAttrs(gctx, slog.LevelError, "dashboard: loading profile failed", slog.Any("error", err))
			profile = fitness.UserProfile{Goal: fitness.GoalGeneral}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if active, err = s.repo.sessions.Active(gctx); err == nil {
			hasActive = true
		} else if !errors.Is(err, ErrNotFound) {
			s.logger.LogAttrs(gctx, slog.LevelError, "dashboard: loading active session failed", slog.Any("error", err))
		}
		return nil
	})
	_ = g.Wait()

	recovery := fitness.RecoveryByGroup(history, catalog, now)
	advisories := fitness.NeglectAdvisories(recovery)
	if hasActive {
		todays := fitness.TrainedGroups(active, catalog)
		advisories = append(advisories, fitness.OvertrainingAdvisories(todays, history, catalog, now)...)
	}

	return Dashboard{
		Recovery:        recovery,
		Advisories:      advisories,
		Weekly:          fitness.WeeklyAggregate(history, catalog, profile.WeightKg, now, fitness.WeeklyOptions{}),
		Recommendations: fitness.Recommendations(profile, history, catalog, now, nil),
	}
}
