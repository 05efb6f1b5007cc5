package progress

import (
	"fmt"
	"strings"

	"github.com/2beens/gymplan/internal/gymplan/address"

	"github.com/jackc/pgx/v5"
)

const (
	completedWorkoutTable = "completed_workout"
	preferencesTable      = "user_preferences"
)

var baseTablesDDL = []string{
	`CREATE TABLE IF NOT EXISTS completed_workout (
		user_id    uuid        NOT NULL,
		date       date        NOT NULL,
		week       integer     NOT NULL CHECK (week BETWEEN 1 AND 6),
		day        integer     NOT NULL CHECK (day BETWEEN 1 AND 6),
		created_at timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (user_id, date, week, day)
	)`,
	`CREATE TABLE IF NOT EXISTS user_preferences (
		user_id            uuid PRIMARY KEY,
		rest_days          integer[]   NOT NULL DEFAULT '{}',
		program_start_date date,
		custom_mode        boolean     NOT NULL DEFAULT false,
		confirmed_at       timestamptz
	)`,
}

func columnSQLType(col address.ColumnAddress) (string, error) {
	ref, err := address.ParseColumn(string(col))
	if err != nil {
		return "", err
	}
	switch {
	case ref.IsName, ref.Field == address.FieldNotes:
		return "text", nil
	case ref.Field == address.FieldReps:
		return "integer", nil
	case ref.Field == address.FieldWeight:
		return "double precision", nil
	}
	return "", fmt.Errorf("no sql type for column %s", col)
}

// WorkoutTableDDL builds the CREATE TABLE statement for one per-day workout
// table. Every identifier comes from the address resolver.
func WorkoutTableDDL(table address.TableAddress) (string, error) {
	if _, _, err := address.ParseTable(string(table)); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(pgx.Identifier{string(table)}.Sanitize())
	b.WriteString(" (\n\tuser_id uuid NOT NULL,\n\tdate date NOT NULL,\n")
	for _, col := range address.AllColumns() {
		sqlType, err := columnSQLType(col)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\t%s %s,\n", pgx.Identifier{string(col)}.Sanitize(), sqlType)
	}
	fmt.Fprintf(&b, "\t%s timestamptz,\n", pgx.Identifier{address.UpdatedAtColumn}.Sanitize())
	b.WriteString("\tPRIMARY KEY (user_id, date)\n)")
	return b.String(), nil
}

// SchemaDDL returns every statement needed for an empty database, base
// tables first.
func SchemaDDL() ([]string, error) {
	stmts := append([]string(nil), baseTablesDDL...)
	for _, table := range address.AllTables() {
		ddl, err := WorkoutTableDDL(table)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", table, err)
		}
		stmts = append(stmts, ddl)
	}
	return stmts, nil
}

func expectedTables() []string {
	tables := []string{completedWorkoutTable, preferencesTable}
	for _, t := range address.AllTables() {
		tables = append(tables, string(t))
	}
	return tables
}
