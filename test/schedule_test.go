//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/address"
	"github.com/2beens/gymplan/internal/gymplan/curriculum"
	"github.com/2beens/gymplan/internal/gymplan/progress"
	"github.com/2beens/gymplan/internal/gymplan/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) getSchedule(ctx context.Context, token string) schedule.Schedule {
	status, body := doUserRequest(ctx, s.T(), s.httpClient, token, "GET", "/gymplan/schedule", nil)
	require.Equal(s.T(), http.StatusOK, status, string(body))

	var resp progress.ScheduleResponse
	require.NoError(s.T(), json.Unmarshal(body, &resp))
	return resp.Schedule
}

func firstEntry(sched schedule.Schedule) schedule.Entry {
	entries := sched.Entries()
	if len(entries) == 0 {
		return schedule.Entry{}
	}
	return entries[0]
}

func (s *IntegrationTestSuite) TestPreferencesAndSchedule() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	token := openSession(ctx, t, s.httpClient, uuid.New())
	today := schedule.DateOf(time.Now())

	// new users get the default preferences
	status, body := doUserRequest(ctx, t, s.httpClient, token, "GET", "/gymplan/preferences", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var prefs progress.Preferences
	require.NoError(t, json.Unmarshal(body, &prefs))
	assert.Equal(t, []int{0}, prefs.RestDays)
	assert.False(t, prefs.Confirmed())

	// projection starts with the first workout of the curriculum
	sched := s.getSchedule(ctx, token)
	require.NotEmpty(t, sched)
	first := firstEntry(sched)
	assert.Equal(t, curriculum.First, first.Position)
	assert.False(t, first.Date.Before(today))

	// confirm the program, starting today, resting on saturdays and sundays
	status, body = doUserRequest(ctx, t, s.httpClient, token, "PUT", "/gymplan/preferences",
		strings.NewReader(fmt.Sprintf(`{"rest_days":[0,6],"program_start_date":"%s"}`, today)))
	require.Equal(t, http.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &prefs))
	assert.True(t, prefs.Confirmed())
	assert.Equal(t, []int{0, 6}, prefs.RestDays)

	for date := range s.getSchedule(ctx, token) {
		assert.NotEqual(t, time.Saturday, date.Weekday(), date.String())
		assert.NotEqual(t, time.Sunday, date.Weekday(), date.String())
	}

	// the start date is confirmed now and cannot move
	status, body = doUserRequest(ctx, t, s.httpClient, token, "PUT", "/gymplan/preferences",
		strings.NewReader(fmt.Sprintf(`{"rest_days":[0,6],"program_start_date":"%s"}`, today.AddDays(7))))
	assert.Equal(t, http.StatusUnprocessableEntity, status, string(body))

	// no rest days at all is rejected
	status, _ = doUserRequest(ctx, t, s.httpClient, token, "PUT", "/gymplan/preferences",
		strings.NewReader(fmt.Sprintf(`{"rest_days":[],"program_start_date":"%s"}`, today)))
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func (s *IntegrationTestSuite) TestCompleteWorkoutAndLog() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	token := openSession(ctx, t, s.httpClient, uuid.New())
	today := schedule.DateOf(time.Now())

	// a workout completed today, even when today is a rest day
	status, body := doUserRequest(ctx, t, s.httpClient, token, "POST",
		fmt.Sprintf("/gymplan/workout/1/1/complete/%s", today), nil)
	require.Equal(t, http.StatusCreated, status, string(body))

	var resp progress.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, curriculum.First, resp.Schedule[today])

	// the projection continues after the completed workout
	var next schedule.Entry
	for _, e := range resp.Schedule.Entries() {
		if e.Date.After(today) {
			next = e
			break
		}
	}
	assert.Equal(t, curriculum.Position{Week: 1, Day: 2}, next.Position)

	// the same workout cannot be completed twice
	status, _ = doUserRequest(ctx, t, s.httpClient, token, "POST",
		fmt.Sprintf("/gymplan/workout/1/1/complete/%s", today), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// future workouts cannot be completed
	status, _ = doUserRequest(ctx, t, s.httpClient, token, "POST",
		fmt.Sprintf("/gymplan/workout/1/2/complete/%s", today.AddDays(3)), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	// log the completed workout
	reps, weight := 8, 62.5
	notes := "felt strong"
	logReq := progress.SaveWorkoutLogRequest{
		Exercises: []address.ExerciseData{{
			Index: 1,
			Name:  "Back Squat",
			Notes: &notes,
			Sets:  [address.MaxSet]address.SetData{{Reps: &reps, Weight: &weight}},
		}},
	}
	logJson, err := json.Marshal(logReq)
	require.NoError(t, err)

	logPath := fmt.Sprintf("/gymplan/workout/1/1/log/%s", today)
	status, body = doUserRequest(ctx, t, s.httpClient, token, "PUT", logPath, strings.NewReader(string(logJson)))
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = doUserRequest(ctx, t, s.httpClient, token, "GET", logPath, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var logResp progress.WorkoutLogResponse
	require.NoError(t, json.Unmarshal(body, &logResp))
	assert.Equal(t, today, logResp.Date)
	assert.Equal(t, "9-11", logResp.Workout.RepRange)
	require.NotEmpty(t, logResp.Exercises)
	assert.Equal(t, "Back Squat", logResp.Exercises[0].Name)
	require.NotNil(t, logResp.Exercises[0].Sets[0].Reps)
	assert.Equal(t, reps, *logResp.Exercises[0].Sets[0].Reps)
	require.NotNil(t, logResp.Exercises[0].Notes)
	assert.Equal(t, notes, *logResp.Exercises[0].Notes)

	// out of range week
	status, _ = doUserRequest(ctx, t, s.httpClient, token, "GET",
		fmt.Sprintf("/gymplan/workout/7/1/log/%s", today), nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestToggleAndMove() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	token := openSession(ctx, t, s.httpClient, uuid.New())
	sched := s.getSchedule(ctx, token)
	first := firstEntry(sched)
	require.Equal(t, curriculum.First, first.Position)

	// toggling a projected workout off shifts the sequence forward
	status, body := doUserRequest(ctx, t, s.httpClient, token, "POST", "/gymplan/schedule/toggle",
		strings.NewReader(fmt.Sprintf(`{"date":"%s"}`, first.Date)))
	require.Equal(t, http.StatusOK, status, string(body))

	var resp progress.ScheduleResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	_, stillThere := resp.Schedule[first.Date]
	assert.False(t, stillThere)
	assert.Equal(t, curriculum.First, firstEntry(resp.Schedule).Position)

	// the working copy is served from the store
	assert.Equal(t, resp.Schedule, s.getSchedule(ctx, token))

	// moving a workout onto its own date is a conflict
	newFirst := firstEntry(resp.Schedule)
	status, body = doUserRequest(ctx, t, s.httpClient, token, "POST", "/gymplan/schedule/move",
		strings.NewReader(fmt.Sprintf(`{"from":"%s","to":"%s"}`, newFirst.Date, newFirst.Date)))
	assert.Equal(t, http.StatusConflict, status, string(body))

	// recompute drops the edits
	status, body = doUserRequest(ctx, t, s.httpClient, token, "POST", "/gymplan/schedule/recompute",
		strings.NewReader(`{"trigger":"load"}`))
	require.Equal(t, http.StatusOK, status, string(body))
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, first, firstEntry(resp.Schedule))
}
