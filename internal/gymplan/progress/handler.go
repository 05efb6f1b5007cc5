package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/gymplan/address"
	"github.com/2beens/gymplan/internal/gymplan/curriculum"
	"github.com/2beens/gymplan/internal/gymplan/schedule"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type plannerService interface {
	Schedule(ctx context.Context, userID uuid.UUID) (schedule.Schedule, error)
	Recompute(ctx context.Context, userID uuid.UUID, trigger schedule.Trigger) (schedule.Schedule, error)
	Move(ctx context.Context, userID uuid.UUID, from, to schedule.Date) (schedule.Schedule, error)
	Toggle(ctx context.Context, userID uuid.UUID, date schedule.Date) (schedule.Schedule, error)
	Preferences(ctx context.Context, userID uuid.UUID) (*Preferences, error)
	SavePreferences(ctx context.Context, userID uuid.UUID, prefs Preferences) (*Preferences, error)
	CompleteWorkout(ctx context.Context, userID uuid.UUID, date schedule.Date, pos curriculum.Position) (schedule.Schedule, error)
	WorkoutLog(ctx context.Context, userID uuid.UUID, pos curriculum.Position, date schedule.Date) ([]address.ExerciseData, error)
	SaveWorkoutLog(ctx context.Context, userID uuid.UUID, pos curriculum.Position, date schedule.Date, exercises []address.ExerciseData) error
	Describe(week, day int) (curriculum.Workout, error)
}

type ScheduleResponse struct {
	Schedule schedule.Schedule `json:"schedule"`
}

type MoveRequest struct {
	From schedule.Date `json:"from"`
	To   schedule.Date `json:"to"`
}

type ToggleRequest struct {
	Date schedule.Date `json:"date"`
}

type RecomputeRequest struct {
	Trigger string `json:"trigger"`
}

type WorkoutLogResponse struct {
	Workout   curriculum.Workout     `json:"workout"`
	Date      schedule.Date          `json:"date"`
	Exercises []address.ExerciseData `json:"exercises"`
}

type SaveWorkoutLogRequest struct {
	Exercises []address.ExerciseData `json:"exercises"`
}

type ErrorResponse struct {
	Error            string               `json:"error"`
	Reason           string               `json:"reason,omitempty"`
	ConflictDate     *schedule.Date       `json:"conflict_date,omitempty"`
	ConflictPosition *curriculum.Position `json:"conflict_position,omitempty"`
}

type Handler struct {
	service plannerService
}

func NewHandler(service plannerService) *Handler {
	return &Handler{
		service: service,
	}
}

func (h *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/gymplan/schedule", h.HandleGetSchedule).Methods("GET", "OPTIONS").Name("get-schedule")
	r.HandleFunc("/gymplan/schedule/recompute", h.HandleRecompute).Methods("POST", "OPTIONS").Name("recompute-schedule")
	r.HandleFunc("/gymplan/schedule/move", h.HandleMove).Methods("POST", "OPTIONS").Name("move-workout")
	r.HandleFunc("/gymplan/schedule/toggle", h.HandleToggle).Methods("POST", "OPTIONS").Name("toggle-workout")
	r.HandleFunc("/gymplan/preferences", h.HandleGetPreferences).Methods("GET", "OPTIONS").Name("get-preferences")
	r.HandleFunc("/gymplan/preferences", h.HandleSavePreferences).Methods("PUT", "OPTIONS").Name("save-preferences")
	r.HandleFunc("/gymplan/workout/{week}/{day}", h.HandleDescribe).Methods("GET", "OPTIONS").Name("describe-workout")
	r.HandleFunc("/gymplan/workout/{week}/{day}/log/{date}", h.HandleGetWorkoutLog).Methods("GET", "OPTIONS").Name("get-workout-log")
	r.HandleFunc("/gymplan/workout/{week}/{day}/log/{date}", h.HandleSaveWorkoutLog).Methods("PUT", "OPTIONS").Name("save-workout-log")
	r.HandleFunc("/gymplan/workout/{week}/{day}/complete/{date}", h.HandleCompleteWorkout).Methods("POST", "OPTIONS").Name("complete-workout")
}

func (h *Handler) HandleGetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.schedule.get")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	sched, err := h.service.Schedule(ctx, userID)
	if err != nil {
		writeError(w, "get schedule", err)
		return
	}
	writeJSON(w, ScheduleResponse{Schedule: sched}, http.StatusOK)
}

func (h *Handler) HandleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.schedule.recompute")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	trigger := schedule.TriggerLoad
	if r.ContentLength > 0 {
		var req RecomputeRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Trigger != "" {
			parsed, err := schedule.ParseTrigger(req.Trigger)
			if err != nil {
				writeError(w, "recompute", err)
				return
			}
			trigger = parsed
		}
	}

	sched, err := h.service.Recompute(ctx, userID, trigger)
	if err != nil {
		writeError(w, "recompute", err)
		return
	}
	writeJSON(w, ScheduleResponse{Schedule: sched}, http.StatusOK)
}

func (h *Handler) HandleMove(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.schedule.move")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sched, err := h.service.Move(ctx, userID, req.From, req.To)
	if err != nil {
		writeError(w, "move workout", err)
		return
	}
	writeJSON(w, ScheduleResponse{Schedule: sched}, http.StatusOK)
}

func (h *Handler) HandleToggle(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.schedule.toggle")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req ToggleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sched, err := h.service.Toggle(ctx, userID, req.Date)
	if err != nil {
		writeError(w, "toggle workout", err)
		return
	}
	writeJSON(w, ScheduleResponse{Schedule: sched}, http.StatusOK)
}

func (h *Handler) HandleGetPreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.preferences.get")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	prefs, err := h.service.Preferences(ctx, userID)
	if err != nil {
		writeError(w, "get preferences", err)
		return
	}
	writeJSON(w, prefs, http.StatusOK)
}

func (h *Handler) HandleSavePreferences(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.preferences.save")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var prefs Preferences
	if !decodeJSON(w, r, &prefs) {
		return
	}

	saved, err := h.service.SavePreferences(ctx, userID, prefs)
	if err != nil {
		writeError(w, "save preferences", err)
		return
	}
	writeJSON(w, saved, http.StatusOK)
}

func (h *Handler) HandleDescribe(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.workout.describe")
	defer span.End()

	pos, ok := positionFromVars(w, r)
	if !ok {
		return
	}

	workout, err := h.service.Describe(pos.Week, pos.Day)
	if err != nil {
		writeError(w, "describe workout", err)
		return
	}
	writeJSON(w, workout, http.StatusOK)
}

func (h *Handler) HandleGetWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.workoutlog.get")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	pos, ok := positionFromVars(w, r)
	if !ok {
		return
	}
	date, ok := dateFromVars(w, r)
	if !ok {
		return
	}

	workout, err := h.service.Describe(pos.Week, pos.Day)
	if err != nil {
		writeError(w, "get workout log", err)
		return
	}
	exercises, err := h.service.WorkoutLog(ctx, userID, pos, date)
	if err != nil {
		writeError(w, "get workout log", err)
		return
	}
	writeJSON(w, WorkoutLogResponse{
		Workout:   workout,
		Date:      date,
		Exercises: exercises,
	}, http.StatusOK)
}

func (h *Handler) HandleSaveWorkoutLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.workoutlog.save")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	pos, ok := positionFromVars(w, r)
	if !ok {
		return
	}
	date, ok := dateFromVars(w, r)
	if !ok {
		return
	}

	var req SaveWorkoutLogRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.SaveWorkoutLog(ctx, userID, pos, date, req.Exercises); err != nil {
		writeError(w, "save workout log", err)
		return
	}
	pkg.WriteTextResponseOK(w, "saved")
}

func (h *Handler) HandleCompleteWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymplan.workout.complete")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	pos, ok := positionFromVars(w, r)
	if !ok {
		return
	}
	date, ok := dateFromVars(w, r)
	if !ok {
		return
	}

	sched, err := h.service.CompleteWorkout(ctx, userID, date, pos)
	if err != nil {
		writeError(w, "complete workout", err)
		return
	}
	writeJSON(w, ScheduleResponse{Schedule: sched}, http.StatusCreated)
}

func requestUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return uuid.Nil, false
	}
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

func positionFromVars(w http.ResponseWriter, r *http.Request) (curriculum.Position, bool) {
	vars := mux.Vars(r)
	week, err := strconv.Atoi(vars["week"])
	if err != nil {
		http.Error(w, "error, bad week param", http.StatusBadRequest)
		return curriculum.Position{}, false
	}
	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		http.Error(w, "error, bad day param", http.StatusBadRequest)
		return curriculum.Position{}, false
	}
	return curriculum.Position{Week: week, Day: day}, true
}

func dateFromVars(w http.ResponseWriter, r *http.Request) (schedule.Date, bool) {
	date, err := schedule.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "error, bad date param, use YYYY-MM-DD", http.StatusBadRequest)
		return schedule.Date{}, false
	}
	return date, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Errorf("%s, unmarshal json body: %s", r.URL.Path, err)
		http.Error(w, "error, invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	resp, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "error, marshal response", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, status)
}

// ErrorStatus maps planner errors onto HTTP status codes.
func ErrorStatus(err error) int {
	switch {
	case errors.Is(err, address.ErrRange), errors.Is(err, address.ErrFormat):
		return http.StatusBadRequest
	case errors.Is(err, schedule.ErrPrecondition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, schedule.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, op string, err error) {
	status := ErrorStatus(err)
	if status == http.StatusInternalServerError {
		log.Errorf("%s: %s", op, err)
		http.Error(w, "error, "+op+" failed", status)
		return
	}
	log.Debugf("%s rejected: %s", op, err)

	resp := ErrorResponse{Error: err.Error()}
	var conflictErr *schedule.ConflictError
	if errors.As(err, &conflictErr) {
		resp.Error = conflictErr.Reason.Message()
		resp.Reason = string(conflictErr.Reason)
		if conflictErr.Reason == schedule.ReasonSequence {
			resp.ConflictDate = &conflictErr.ConflictDate
			resp.ConflictPosition = &conflictErr.ConflictPosition
		}
	}
	writeJSON(w, resp, status)
}
