package address

import (
	"fmt"
	"regexp"
	"strconv"
)

const (
	MinWeek     = 1
	MaxWeek     = 6
	MinDay      = 1
	MaxDay      = 6
	MinExercise = 1
	MaxExercise = 7
	MinSet      = 1
	MaxSet      = 4

	// UpdatedAtColumn is stamped on every partial update of a workout table row.
	UpdatedAtColumn = "updated_at"
)

// TableAddress names the storage table of one (week, day) curriculum position.
// Values are only produced by Table and ParseTable.
type TableAddress string

func (a TableAddress) String() string {
	return string(a)
}

// ColumnAddress names one slot inside a workout table row.
type ColumnAddress string

func (a ColumnAddress) String() string {
	return string(a)
}

type Field string

const (
	FieldReps   Field = "reps"
	FieldWeight Field = "weight"
	FieldNotes  Field = "notes"
)

// IsSetField reports whether the field is stored per set (reps, weight).
func (f Field) IsSetField() bool {
	return f == FieldReps || f == FieldWeight
}

var (
	tableRegexp  = regexp.MustCompile(`^week(\d+)_day(\d+)_workout_tracking$`)
	setColRegexp = regexp.MustCompile(`^exercise_(\d+)_set(\d+)_(reps|weight)$`)
	exColRegexp  = regexp.MustCompile(`^exercise_(\d+)_(name|notes)$`)
)

func ValidateWeekDay(week, day int) bool {
	return week >= MinWeek && week <= MaxWeek && day >= MinDay && day <= MaxDay
}

func ValidateExerciseIndex(i int) bool {
	return i >= MinExercise && i <= MaxExercise
}

func ValidateSetNumber(n int) bool {
	return n >= MinSet && n <= MaxSet
}

// CheckWeekDay returns a *RangeError naming the first offending coordinate.
func CheckWeekDay(week, day int) error {
	if week < MinWeek || week > MaxWeek {
		return NewRangeError("week", week, MinWeek, MaxWeek)
	}
	if day < MinDay || day > MaxDay {
		return NewRangeError("day", day, MinDay, MaxDay)
	}
	return nil
}

func checkExercise(exercise int) error {
	if !ValidateExerciseIndex(exercise) {
		return NewRangeError("exercise", exercise, MinExercise, MaxExercise)
	}
	return nil
}

func checkSet(set int) error {
	if !ValidateSetNumber(set) {
		return NewRangeError("set", set, MinSet, MaxSet)
	}
	return nil
}

func Table(week, day int) (TableAddress, error) {
	if err := CheckWeekDay(week, day); err != nil {
		return "", err
	}
	return TableAddress(fmt.Sprintf("week%d_day%d_workout_tracking", week, day)), nil
}

// ParseTable is the inverse of Table.
func ParseTable(addr string) (week, day int, err error) {
	m := tableRegexp.FindStringSubmatch(addr)
	if m == nil {
		return 0, 0, &FormatError{Kind: "table", Input: addr}
	}
	week, ok := canonicalInt(m[1])
	if !ok {
		return 0, 0, &FormatError{Kind: "table", Input: addr}
	}
	day, ok = canonicalInt(m[2])
	if !ok {
		return 0, 0, &FormatError{Kind: "table", Input: addr}
	}
	if err := CheckWeekDay(week, day); err != nil {
		return 0, 0, err
	}
	return week, day, nil
}

// AllTables lists the 36 workout tables, week-major and day-minor.
func AllTables() []TableAddress {
	tables := make([]TableAddress, 0, MaxWeek*MaxDay)
	for week := MinWeek; week <= MaxWeek; week++ {
		for day := MinDay; day <= MaxDay; day++ {
			tables = append(tables, TableAddress(fmt.Sprintf("week%d_day%d_workout_tracking", week, day)))
		}
	}
	return tables
}

func Column(exercise, set int, field Field) (ColumnAddress, error) {
	if err := checkExercise(exercise); err != nil {
		return "", err
	}
	if err := checkSet(set); err != nil {
		return "", err
	}
	if !field.IsSetField() {
		return "", NewRangeError("field", field, 0, 0)
	}
	return ColumnAddress(fmt.Sprintf("exercise_%d_set%d_%s", exercise, set, field)), nil
}

func ExerciseNameColumn(exercise int) (ColumnAddress, error) {
	if err := checkExercise(exercise); err != nil {
		return "", err
	}
	return ColumnAddress(fmt.Sprintf("exercise_%d_name", exercise)), nil
}

func ExerciseNotesColumn(exercise int) (ColumnAddress, error) {
	if err := checkExercise(exercise); err != nil {
		return "", err
	}
	return ColumnAddress(fmt.Sprintf("exercise_%d_notes", exercise)), nil
}

// ColumnRef is a parsed ColumnAddress. Set is zero for name and notes columns.
type ColumnRef struct {
	Exercise int
	Set      int
	Field    Field
	IsName   bool
}

// ParseColumn is the inverse of Column, ExerciseNameColumn and ExerciseNotesColumn.
func ParseColumn(col string) (ColumnRef, error) {
	if m := setColRegexp.FindStringSubmatch(col); m != nil {
		exercise, okEx := canonicalInt(m[1])
		set, okSet := canonicalInt(m[2])
		if !okEx || !okSet {
			return ColumnRef{}, &FormatError{Kind: "column", Input: col}
		}
		if err := checkExercise(exercise); err != nil {
			return ColumnRef{}, err
		}
		if err := checkSet(set); err != nil {
			return ColumnRef{}, err
		}
		return ColumnRef{Exercise: exercise, Set: set, Field: Field(m[3])}, nil
	}

	if m := exColRegexp.FindStringSubmatch(col); m != nil {
		exercise, ok := canonicalInt(m[1])
		if !ok {
			return ColumnRef{}, &FormatError{Kind: "column", Input: col}
		}
		if err := checkExercise(exercise); err != nil {
			return ColumnRef{}, err
		}
		if m[2] == "name" {
			return ColumnRef{Exercise: exercise, IsName: true}, nil
		}
		return ColumnRef{Exercise: exercise, Field: FieldNotes}, nil
	}

	return ColumnRef{}, &FormatError{Kind: "column", Input: col}
}

// AllColumns lists every data column of a workout table row in schema order.
func AllColumns() []ColumnAddress {
	cols := make([]ColumnAddress, 0, MaxExercise*(2+MaxSet*2))
	for e := MinExercise; e <= MaxExercise; e++ {
		cols = append(cols,
			ColumnAddress(fmt.Sprintf("exercise_%d_name", e)),
			ColumnAddress(fmt.Sprintf("exercise_%d_notes", e)),
		)
		for s := MinSet; s <= MaxSet; s++ {
			cols = append(cols,
				ColumnAddress(fmt.Sprintf("exercise_%d_set%d_%s", e, s, FieldReps)),
				ColumnAddress(fmt.Sprintf("exercise_%d_set%d_%s", e, s, FieldWeight)),
			)
		}
	}
	return cols
}

// canonicalInt accepts only the decimal form strconv.Itoa would produce,
// so that parsing and formatting round-trip exactly.
func canonicalInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}
