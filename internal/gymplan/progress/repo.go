package progress

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/address"
	"github.com/2beens/gymplan/internal/gymplan/schedule"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrPreferencesNotFound = errors.New("preferences not found")
	ErrAlreadyCompleted    = errors.New("workout already completed")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CompletedRecords(ctx context.Context, userID uuid.UUID) (_ []schedule.CompletedRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.completed.list")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("user.id", userID.String()))

	rows, err := r.db.Query(ctx, `
		SELECT date, week, day
		FROM completed_workout
		WHERE user_id = $1
		ORDER BY date, week, day
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]schedule.CompletedRecord, 0)
	for rows.Next() {
		var (
			date      time.Time
			week, day int
		)
		if err := rows.Scan(&date, &week, &day); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, schedule.CompletedRecord{
			Date: schedule.DateOf(date),
			Week: week,
			Day:  day,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("records", len(records)))
	return records, nil
}

func (r *Repo) AddCompletedRecord(ctx context.Context, userID uuid.UUID, record schedule.CompletedRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.completed.add")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	_, err = r.db.Exec(ctx, `
		INSERT INTO completed_workout (user_id, date, week, day, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, record.Date.Time(), record.Week, record.Day, time.Now())
	if pkg.IsUniqueViolationError(err) {
		return fmt.Errorf("%s on %s: %w", record.Position(), record.Date, ErrAlreadyCompleted)
	}
	return err
}

func (r *Repo) Preferences(ctx context.Context, userID uuid.UUID) (_ *Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.preferences.get")
	defer func() {
		if err != nil && !errors.Is(err, ErrPreferencesNotFound) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	var (
		restDays    []int32
		startDate   *time.Time
		customMode  bool
		confirmedAt *time.Time
	)
	err = r.db.QueryRow(ctx, `
		SELECT rest_days, program_start_date, custom_mode, confirmed_at
		FROM user_preferences
		WHERE user_id = $1
	`, userID).Scan(&restDays, &startDate, &customMode, &confirmedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPreferencesNotFound
	}
	if err != nil {
		return nil, err
	}

	prefs := &Preferences{
		RestDays:    make([]int, 0, len(restDays)),
		CustomMode:  customMode,
		ConfirmedAt: confirmedAt,
	}
	for _, d := range restDays {
		prefs.RestDays = append(prefs.RestDays, int(d))
	}
	if startDate != nil {
		d := schedule.DateOf(*startDate)
		prefs.ProgramStartDate = &d
	}
	return prefs, nil
}

func (r *Repo) SavePreferences(ctx context.Context, userID uuid.UUID, prefs Preferences) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.preferences.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	restDays := make([]int32, 0, len(prefs.RestDays))
	for _, d := range prefs.RestDays {
		restDays = append(restDays, int32(d))
	}
	var startDate *time.Time
	if prefs.ProgramStartDate != nil {
		t := prefs.ProgramStartDate.Time()
		startDate = &t
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_preferences (user_id, rest_days, program_start_date, custom_mode, confirmed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			rest_days = EXCLUDED.rest_days,
			program_start_date = EXCLUDED.program_start_date,
			custom_mode = EXCLUDED.custom_mode,
			confirmed_at = EXCLUDED.confirmed_at
	`, userID, restDays, startDate, prefs.CustomMode, prefs.ConfirmedAt)
	return err
}

// WorkoutLog reads the logged exercises of one user's workout. A day with
// nothing logged yields the default, empty exercises.
func (r *Repo) WorkoutLog(
	ctx context.Context,
	userID uuid.UUID,
	table address.TableAddress,
	date schedule.Date,
) (_ []address.ExerciseData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.workoutlog.get")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("table", string(table)))

	if _, _, err := address.ParseTable(string(table)); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx,
		"SELECT * FROM "+pgx.Identifier{string(table)}.Sanitize()+" WHERE user_id = $1 AND date = $2",
		userID, date.Time(),
	)
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectOneRow(rows, pgx.RowToMap)
	if errors.Is(err, pgx.ErrNoRows) {
		row = map[string]any{}
	} else if err != nil {
		return nil, fmt.Errorf("collect row: %w", err)
	}

	return address.ExtractExercises(row)
}

// SaveWorkoutLog upserts a partial update built by address.UpdatePayload.
func (r *Repo) SaveWorkoutLog(
	ctx context.Context,
	userID uuid.UUID,
	table address.TableAddress,
	date schedule.Date,
	payload map[address.ColumnAddress]any,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.workoutlog.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()
	span.SetAttributes(attribute.String("table", string(table)))
	span.SetAttributes(attribute.Int("columns", len(payload)))

	query, args, err := upsertQuery(table, payload)
	if err != nil {
		return err
	}
	args = append([]any{userID, date.Time()}, args...)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, query, args...)
	return err
}

// upsertQuery builds the INSERT ... ON CONFLICT statement for a workout
// table. $1 and $2 are user_id and date; the payload columns follow in
// sorted order.
func upsertQuery(table address.TableAddress, payload map[address.ColumnAddress]any) (string, []any, error) {
	if _, _, err := address.ParseTable(string(table)); err != nil {
		return "", nil, err
	}
	if len(payload) == 0 {
		return "", nil, errors.New("empty workout log payload")
	}

	cols := make([]address.ColumnAddress, 0, len(payload))
	for col := range payload {
		if string(col) != address.UpdatedAtColumn {
			if _, err := address.ParseColumn(string(col)); err != nil {
				return "", nil, err
			}
		}
		cols = append(cols, col)
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i] < cols[j] })

	names := make([]string, 0, len(cols))
	placeholders := make([]string, 0, len(cols))
	updates := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for i, col := range cols {
		ident := pgx.Identifier{string(col)}.Sanitize()
		names = append(names, ident)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+3))
		updates = append(updates, ident+" = EXCLUDED."+ident)
		args = append(args, payload[col])
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (user_id, date, %s) VALUES ($1, $2, %s) ON CONFLICT (user_id, date) DO UPDATE SET %s",
		pgx.Identifier{string(table)}.Sanitize(),
		strings.Join(names, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)
	return query, args, nil
}

// CreateTables creates every table that does not exist yet.
func (r *Repo) CreateTables(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.schema.create")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	stmts, err := SchemaDDL()
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("exec ddl: %w", err)
		}
	}
	return nil
}

// VerifyTables checks that all workout tables and the base tables exist.
func (r *Repo) VerifyTables(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.gymplan.schema.verify")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	expected := expectedTables()
	rows, err := r.db.Query(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name = ANY($1)
	`, expected)
	if err != nil {
		return fmt.Errorf("query information_schema: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return fmt.Errorf("collect tables: %w", err)
	}

	return missingTablesError(expected, found)
}

func missingTablesError(expected, found []string) error {
	present := make(map[string]bool, len(found))
	for _, t := range found {
		present[t] = true
	}
	var missing []string
	for _, t := range expected {
		if !present[t] {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%d of %d tables missing: %s", len(missing), len(expected), strings.Join(missing, ", "))
	}
	return nil
}
