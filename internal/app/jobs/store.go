package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/init-pkg/excel-import/domain/app"
	"github.com/redis/go-redis/v9"
)

const (
	jobKeyPrefix = "excel-import:jobs:"
	jobTTL       = 24 * time.Hour
)

// Store keeps the polled job read model in Redis hashes, one hash per
// job id, mirroring the queue's state machine.
type Store struct {
	rdb *redis.Client
	log *slog.Logger
}

func NewStore(rdb *redis.Client, log *slog.Logger) *Store {
	return &Store{rdb, log}
}

var _ app.JobStore = &Store{}

func jobKey(id string) string { return jobKeyPrefix + id }

func (s *Store) Create(ctx context.Context, id, templateName string) error {
	key := jobKey(id)
	err := s.rdb.HSet(ctx, key,
		"state", string(app.JobStateWaiting),
		"templateName", templateName,
		"progress", 0,
		"attemptsMade", 0,
	).Err()
	if err != nil {
		return fmt.Errorf("create job %s: %w", id, err)
	}

	return s.rdb.Expire(ctx, key, jobTTL).Err()
}

// MarkActive transitions the job to active and returns the attempt number
// of the current execution, starting at 1.
func (s *Store) MarkActive(ctx context.Context, id string) (int, error) {
	key := jobKey(id)
	if err := s.rdb.HSet(ctx, key, "state", string(app.JobStateActive)).Err(); err != nil {
		return 0, fmt.Errorf("mark job %s active: %w", id, err)
	}

	attempts, err := s.rdb.HIncrBy(ctx, key, "attemptsMade", 1).Result()
	if err != nil {
		return 0, fmt.Errorf("count job %s attempt: %w", id, err)
	}

	return int(attempts), nil
}

func (s *Store) MarkWaiting(ctx context.Context, id string) error {
	return s.rdb.HSet(ctx, jobKey(id), "state", string(app.JobStateWaiting)).Err()
}

func (s *Store) Complete(ctx context.Context, id string, outcome *app.ImportOutcome) error {
	returnValue, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("marshal job %s return value: %w", id, err)
	}

	return s.rdb.HSet(ctx, jobKey(id),
		"state", string(app.JobStateCompleted),
		"progress", 100,
		"returnvalue", returnValue,
	).Err()
}

func (s *Store) Fail(ctx context.Context, id, reason string) error {
	return s.rdb.HSet(ctx, jobKey(id),
		"state", string(app.JobStateFailed),
		"failedReason", reason,
	).Err()
}

func (s *Store) GetJob(ctx context.Context, id string) (*app.JobInfo, error) {
	fields, err := s.rdb.HGetAll(ctx, jobKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	info := &app.JobInfo{
		ID:           id,
		State:        app.JobState(fields["state"]),
		TemplateName: fields["templateName"],
		FailedReason: fields["failedReason"],
	}
	info.Progress, _ = strconv.Atoi(fields["progress"])
	info.AttemptsMade, _ = strconv.Atoi(fields["attemptsMade"])

	if raw := fields["returnvalue"]; raw != "" {
		var outcome app.ImportOutcome
		if err := json.Unmarshal([]byte(raw), &outcome); err != nil {
			s.log.Error("jobs.returnvalue.decode_failed", "jobId", id, "error", err)
		} else {
			info.ReturnValue = &outcome
		}
	}

	return info, nil
}
