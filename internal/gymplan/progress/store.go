package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/schedule"
	"github.com/2beens/gymplan/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/codes"
)

const scheduleKeyPrefix = "gymplan:schedule:"

var ErrScheduleNotStored = errors.New("no working schedule stored")

// ScheduleStore keeps each user's working copy of the schedule in redis. The
// copy is disposable: a missing key means it gets rebuilt from records.
type ScheduleStore struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewScheduleStore(redisClient *redis.Client, ttl time.Duration) *ScheduleStore {
	return &ScheduleStore{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func scheduleKey(userID uuid.UUID) string {
	return scheduleKeyPrefix + userID.String()
}

func (s *ScheduleStore) Get(ctx context.Context, userID uuid.UUID) (_ schedule.Schedule, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.gymplan.schedule.get")
	defer func() {
		if err != nil && !errors.Is(err, ErrScheduleNotStored) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	raw, err := s.redisClient.Get(ctx, scheduleKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrScheduleNotStored
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var sched schedule.Schedule
	if err := json.Unmarshal(raw, &sched); err != nil {
		return nil, fmt.Errorf("unmarshal schedule: %w", err)
	}
	return sched, nil
}

func (s *ScheduleStore) Save(ctx context.Context, userID uuid.UUID, sched schedule.Schedule) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.gymplan.schedule.save")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	raw, err := json.Marshal(sched)
	if err != nil {
		return fmt.Errorf("marshal schedule: %w", err)
	}
	if err := s.redisClient.Set(ctx, scheduleKey(userID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (s *ScheduleStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.redisClient.Del(ctx, scheduleKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
