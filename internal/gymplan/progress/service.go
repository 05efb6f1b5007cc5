package progress

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/address"
	"github.com/2beens/gymplan/internal/gymplan/curriculum"
	"github.com/2beens/gymplan/internal/gymplan/schedule"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type progressRepo interface {
	CompletedRecords(ctx context.Context, userID uuid.UUID) ([]schedule.CompletedRecord, error)
	AddCompletedRecord(ctx context.Context, userID uuid.UUID, record schedule.CompletedRecord) error
	Preferences(ctx context.Context, userID uuid.UUID) (*Preferences, error)
	SavePreferences(ctx context.Context, userID uuid.UUID, prefs Preferences) error
	WorkoutLog(ctx context.Context, userID uuid.UUID, table address.TableAddress, date schedule.Date) ([]address.ExerciseData, error)
	SaveWorkoutLog(ctx context.Context, userID uuid.UUID, table address.TableAddress, date schedule.Date, payload map[address.ColumnAddress]any) error
}

type scheduleStore interface {
	Get(ctx context.Context, userID uuid.UUID) (schedule.Schedule, error)
	Save(ctx context.Context, userID uuid.UUID, sched schedule.Schedule) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type ServiceParams struct {
	Repo            progressRepo
	Store           scheduleStore
	PrefsCache      *PreferencesCache
	MetricsManager  *metrics.Manager
	DefaultRestDays []int
	// Now defaults to time.Now
	Now func() time.Time
}

// Service is the planner: it owns every user's working schedule and is the
// only writer of it. Writes for one user are serialized.
type Service struct {
	repo            progressRepo
	store           scheduleStore
	prefsCache      *PreferencesCache
	metricsManager  *metrics.Manager
	defaultRestDays []int
	now             func() time.Time
	locks           *userLocks
}

func NewService(params ServiceParams) *Service {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:            params.Repo,
		store:           params.Store,
		prefsCache:      params.PrefsCache,
		metricsManager:  params.MetricsManager,
		defaultRestDays: params.DefaultRestDays,
		now:             now,
		locks:           newUserLocks(),
	}
}

func (s *Service) today() schedule.Date {
	return schedule.DateOf(s.now())
}

// Schedule returns the user's working schedule, rebuilding it when none is
// stored.
func (s *Service) Schedule(ctx context.Context, userID uuid.UUID) (_ schedule.Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.schedule.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	unlock := s.locks.Lock(userID)
	defer unlock()

	return s.workingCopy(ctx, userID)
}

func (s *Service) Recompute(ctx context.Context, userID uuid.UUID, trigger schedule.Trigger) (_ schedule.Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.schedule.recompute")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))
	span.SetAttributes(attribute.String("trigger", string(trigger)))

	unlock := s.locks.Lock(userID)
	defer unlock()

	return s.recompute(ctx, userID, trigger)
}

func (s *Service) Move(ctx context.Context, userID uuid.UUID, from, to schedule.Date) (_ schedule.Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.schedule.move")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("from", from.String()))
	span.SetAttributes(attribute.String("to", to.String()))

	unlock := s.locks.Lock(userID)
	defer unlock()

	edit, err := s.editContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	moved, err := schedule.Move(edit.current, from, to, schedule.MoveOptions{
		CustomMode: edit.prefs.CustomMode,
		RestDays:   edit.restDays,
		Today:      s.today(),
		Completed:  edit.completed,
	})
	if err != nil {
		s.countRejected("move", err)
		return nil, fmt.Errorf("move %s -> %s: %w", from, to, err)
	}

	return s.saveEdit(ctx, userID, "move", moved)
}

func (s *Service) Toggle(ctx context.Context, userID uuid.UUID, date schedule.Date) (_ schedule.Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.schedule.toggle")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("date", date.String()))

	unlock := s.locks.Lock(userID)
	defer unlock()

	edit, err := s.editContext(ctx, userID)
	if err != nil {
		return nil, err
	}

	toggled, err := schedule.Toggle(edit.current, date, schedule.ToggleOptions{
		CustomMode: edit.prefs.CustomMode,
		RestDays:   edit.restDays,
		Today:      s.today(),
		Completed:  edit.completed,
	})
	if err != nil {
		s.countRejected("toggle", err)
		return nil, fmt.Errorf("toggle %s: %w", date, err)
	}

	return s.saveEdit(ctx, userID, "toggle", toggled)
}

func (s *Service) Preferences(ctx context.Context, userID uuid.UUID) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.preferences.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	return s.preferences(ctx, userID)
}

// SavePreferences validates and stores the preferences, then rebuilds the
// schedule when rest days or the start date changed. The first save with a
// start date confirms the program.
func (s *Service) SavePreferences(ctx context.Context, userID uuid.UUID, prefs Preferences) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.preferences.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	unlock := s.locks.Lock(userID)
	defer unlock()

	current, err := s.preferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	restDays, err := checkPreferences(*current, prefs)
	if err != nil {
		return nil, err
	}
	currentRestDays, _ := current.RestDaySet()

	prefs.RestDays = restDays.Ints()
	prefs.ConfirmedAt = current.ConfirmedAt
	if !prefs.Confirmed() && prefs.ProgramStartDate != nil {
		confirmedAt := s.now().UTC()
		prefs.ConfirmedAt = &confirmedAt
	}

	if err := s.repo.SavePreferences(ctx, userID, prefs); err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}
	if s.prefsCache != nil {
		s.prefsCache.Invalidate(userID)
	}

	var trigger schedule.Trigger
	switch {
	case !sameDate(current.ProgramStartDate, prefs.ProgramStartDate):
		trigger = schedule.TriggerStartDateChanged
	case currentRestDays != restDays:
		trigger = schedule.TriggerRestDaysChanged
	}
	if trigger != "" {
		if _, err := s.recompute(ctx, userID, trigger); err != nil {
			return nil, err
		}
	}

	return &prefs, nil
}

// CompleteWorkout records a finished workout and rebuilds the schedule
// around it.
func (s *Service) CompleteWorkout(
	ctx context.Context,
	userID uuid.UUID,
	date schedule.Date,
	pos curriculum.Position,
) (_ schedule.Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.workout.complete")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("date", date.String()))
	span.SetAttributes(attribute.String("position", pos.String()))

	if err := pos.Validate(); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, &schedule.PreconditionError{Op: "complete workout", Detail: "missing date"}
	}
	if date.After(s.today()) {
		return nil, &schedule.PreconditionError{Op: "complete workout", Detail: fmt.Sprintf("%s is in the future", date)}
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	record := schedule.CompletedRecord{Date: date, Week: pos.Week, Day: pos.Day}
	if err := s.repo.AddCompletedRecord(ctx, userID, record); err != nil {
		if errors.Is(err, ErrAlreadyCompleted) {
			return nil, &schedule.PreconditionError{Op: "complete workout", Detail: err.Error()}
		}
		return nil, fmt.Errorf("add completed record: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterCompletedWorkouts.Inc()
	}

	return s.recompute(ctx, userID, schedule.TriggerRecordsChanged)
}

func (s *Service) WorkoutLog(
	ctx context.Context,
	userID uuid.UUID,
	pos curriculum.Position,
	date schedule.Date,
) (_ []address.ExerciseData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.workoutlog.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	table, err := pos.Table()
	if err != nil {
		return nil, err
	}
	exercises, err := s.repo.WorkoutLog(ctx, userID, table, date)
	if err != nil {
		return nil, fmt.Errorf("workout log %s %s: %w", table, date, err)
	}
	return exercises, nil
}

func (s *Service) SaveWorkoutLog(
	ctx context.Context,
	userID uuid.UUID,
	pos curriculum.Position,
	date schedule.Date,
	exercises []address.ExerciseData,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.gymplan.workoutlog.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	table, err := pos.Table()
	if err != nil {
		return err
	}
	if date.IsZero() {
		return &schedule.PreconditionError{Op: "save workout log", Detail: "missing date"}
	}

	payload, err := address.UpdatePayload(exercises, s.now())
	if err != nil {
		return err
	}
	if err := s.repo.SaveWorkoutLog(ctx, userID, table, date, payload); err != nil {
		return fmt.Errorf("save workout log %s %s: %w", table, date, err)
	}
	return nil
}

func (s *Service) Describe(week, day int) (curriculum.Workout, error) {
	return curriculum.Describe(week, day)
}

func (s *Service) preferences(ctx context.Context, userID uuid.UUID) (*Preferences, error) {
	if s.prefsCache != nil {
		if prefs, ok := s.prefsCache.Get(userID); ok {
			return prefs, nil
		}
	}

	prefs, err := s.repo.Preferences(ctx, userID)
	if errors.Is(err, ErrPreferencesNotFound) {
		prefs = defaultPreferences(s.defaultRestDays)
	} else if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	if s.prefsCache != nil {
		s.prefsCache.Set(userID, prefs)
	}
	return prefs, nil
}

// workingCopy must be called with the user lock held.
func (s *Service) workingCopy(ctx context.Context, userID uuid.UUID) (schedule.Schedule, error) {
	sched, err := s.store.Get(ctx, userID)
	if err == nil {
		s.countCacheLookup("hit")
		return sched, nil
	}
	if !errors.Is(err, ErrScheduleNotStored) {
		log.Errorf("get working schedule for %s, rebuilding: %s", userID, err)
	}
	s.countCacheLookup("miss")

	return s.recompute(ctx, userID, schedule.TriggerLoad)
}

// recompute must be called with the user lock held.
func (s *Service) recompute(ctx context.Context, userID uuid.UUID, trigger schedule.Trigger) (schedule.Schedule, error) {
	prefs, err := s.preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	restDays, err := prefs.RestDaySet()
	if err != nil {
		return nil, fmt.Errorf("stored rest days: %w", err)
	}
	records, err := s.repo.CompletedRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get completed records: %w", err)
	}

	today := s.today()
	begin := time.Now()
	sched, err := schedule.Recompute(trigger, schedule.GenerateInput{
		StartDate: prefs.StartDate(today),
		Today:     today,
		Records:   records,
		RestDays:  restDays,
	})
	if err != nil {
		return nil, err
	}
	if s.metricsManager != nil {
		s.metricsManager.HistogramGenerationDuration.Observe(time.Since(begin).Seconds())
		s.metricsManager.CounterRecomputes.WithLabelValues(string(trigger)).Inc()
	}

	if err := s.store.Save(ctx, userID, sched); err != nil {
		// the schedule is still valid, it only gets rebuilt again next time
		log.Errorf("store working schedule for %s: %s", userID, err)
	}
	return sched, nil
}

// editState is what a manual edit works on. Completed dates are never
// changed by an edit.
type editState struct {
	current   schedule.Schedule
	prefs     *Preferences
	restDays  schedule.RestDays
	completed []schedule.Date
}

func (s *Service) editContext(ctx context.Context, userID uuid.UUID) (*editState, error) {
	current, err := s.workingCopy(ctx, userID)
	if err != nil {
		return nil, err
	}
	prefs, err := s.preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	restDays, err := prefs.RestDaySet()
	if err != nil {
		return nil, fmt.Errorf("stored rest days: %w", err)
	}
	records, err := s.repo.CompletedRecords(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get completed records: %w", err)
	}

	completed := make([]schedule.Date, 0, len(records))
	for _, r := range records {
		completed = append(completed, r.Date)
	}
	return &editState{
		current:   current,
		prefs:     prefs,
		restDays:  restDays,
		completed: completed,
	}, nil
}

func (s *Service) saveEdit(ctx context.Context, userID uuid.UUID, op string, edited schedule.Schedule) (schedule.Schedule, error) {
	if err := s.store.Save(ctx, userID, edited); err != nil {
		return nil, fmt.Errorf("store edited schedule: %w", err)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterScheduleEdits.WithLabelValues(op).Inc()
	}
	return edited, nil
}

func (s *Service) countRejected(op string, err error) {
	if s.metricsManager == nil {
		return
	}
	reason := "other"
	var conflictErr *schedule.ConflictError
	switch {
	case errors.As(err, &conflictErr):
		reason = string(conflictErr.Reason)
	case errors.Is(err, schedule.ErrPrecondition):
		reason = "precondition"
	}
	s.metricsManager.CounterRejectedEdits.WithLabelValues(op, reason).Inc()
}

func (s *Service) countCacheLookup(result string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterScheduleCacheHits.WithLabelValues(result).Inc()
	}
}
