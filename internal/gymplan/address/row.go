package address

import (
	"encoding/json"
	"fmt"
	"time"
)

// SetData holds one logged set. Nil means nothing was logged.
type SetData struct {
	Reps   *int     `json:"reps"`
	Weight *float64 `json:"weight"`
}

type ExerciseData struct {
	Index int             `json:"index"`
	Name  string          `json:"name"`
	Notes *string         `json:"notes,omitempty"`
	Sets  [MaxSet]SetData `json:"sets"`
}

func DefaultExerciseName(exercise int) string {
	return fmt.Sprintf("Exercise %d", exercise)
}

// ExtractExercises reads all exercises of a workout table row. Keys that are
// not workout columns (user_id, date, updated_at, ...) are ignored.
func ExtractExercises(row map[string]any) ([]ExerciseData, error) {
	exercises := make([]ExerciseData, 0, MaxExercise)
	for e := MinExercise; e <= MaxExercise; e++ {
		ex := ExerciseData{Index: e, Name: DefaultExerciseName(e)}

		nameCol, err := ExerciseNameColumn(e)
		if err != nil {
			return nil, err
		}
		name, err := toString(row[string(nameCol)])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", nameCol, err)
		}
		if name != nil && *name != "" {
			ex.Name = *name
		}

		notesCol, err := ExerciseNotesColumn(e)
		if err != nil {
			return nil, err
		}
		if ex.Notes, err = toString(row[string(notesCol)]); err != nil {
			return nil, fmt.Errorf("column %s: %w", notesCol, err)
		}

		for s := MinSet; s <= MaxSet; s++ {
			repsCol, err := Column(e, s, FieldReps)
			if err != nil {
				return nil, err
			}
			weightCol, err := Column(e, s, FieldWeight)
			if err != nil {
				return nil, err
			}

			set := &ex.Sets[s-1]
			if set.Reps, err = toInt(row[string(repsCol)]); err != nil {
				return nil, fmt.Errorf("column %s: %w", repsCol, err)
			}
			if set.Weight, err = toFloat(row[string(weightCol)]); err != nil {
				return nil, fmt.Errorf("column %s: %w", weightCol, err)
			}
		}

		exercises = append(exercises, ex)
	}
	return exercises, nil
}

// UpdatePayload builds a partial update for the given exercises. Every set of
// every listed exercise is written (nil values clear the column), and the
// payload is stamped with updated_at.
func UpdatePayload(exercises []ExerciseData, now time.Time) (map[ColumnAddress]any, error) {
	payload := make(map[ColumnAddress]any, len(exercises)*(2+MaxSet*2)+1)
	for _, ex := range exercises {
		nameCol, err := ExerciseNameColumn(ex.Index)
		if err != nil {
			return nil, err
		}
		notesCol, err := ExerciseNotesColumn(ex.Index)
		if err != nil {
			return nil, err
		}

		if ex.Name != "" {
			payload[nameCol] = ex.Name
		} else {
			payload[nameCol] = nil
		}
		if ex.Notes != nil {
			payload[notesCol] = *ex.Notes
		} else {
			payload[notesCol] = nil
		}

		for i, set := range ex.Sets {
			repsCol, err := Column(ex.Index, i+1, FieldReps)
			if err != nil {
				return nil, err
			}
			weightCol, err := Column(ex.Index, i+1, FieldWeight)
			if err != nil {
				return nil, err
			}
			if set.Reps != nil {
				payload[repsCol] = *set.Reps
			} else {
				payload[repsCol] = nil
			}
			if set.Weight != nil {
				payload[weightCol] = *set.Weight
			} else {
				payload[weightCol] = nil
			}
		}
	}
	payload[UpdatedAtColumn] = now.UTC().Format(time.RFC3339Nano)
	return payload, nil
}

func toString(v any) (*string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &val, nil
	case []byte:
		s := string(val)
		return &s, nil
	default:
		return nil, fmt.Errorf("unsupported text value type %T", v)
	}
}

func toInt(v any) (*int, error) {
	var n int
	switch val := v.(type) {
	case nil:
		return nil, nil
	case int:
		n = val
	case int16:
		n = int(val)
	case int32:
		n = int(val)
	case int64:
		n = int(val)
	case float32:
		n = int(val)
	case float64:
		if val != float64(int(val)) {
			return nil, fmt.Errorf("non-integer reps value %v", val)
		}
		n = int(val)
	case json.Number:
		i, err := val.Int64()
		if err != nil {
			return nil, fmt.Errorf("parse reps %q: %w", val, err)
		}
		n = int(i)
	default:
		return nil, fmt.Errorf("unsupported numeric value type %T", v)
	}
	return &n, nil
}

func toFloat(v any) (*float64, error) {
	var f float64
	switch val := v.(type) {
	case nil:
		return nil, nil
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int32:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("parse weight %q: %w", val, err)
		}
		f = parsed
	default:
		return nil, fmt.Errorf("unsupported numeric value type %T", v)
	}
	return &f, nil
}
