package main

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// parseInt64 extracts an int64 from a Sidekiq payload argument that may be encoded
// either as a JSON number or as a quoted string.
func parseInt64(raw json.RawMessage) (int64, error) {
	var asNumber int64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if asString == "" {
			return 0, errors.New("empty string")
		}
		v, err := strconv.ParseInt(asString, 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "arg %q", asString)
		}
		return v, nil
	}

	return 0, errors.Errorf("unsupported arg: %s", string(raw))
}

// decodeJob parses a Sidekiq payload. Jobs enqueued without a jid get a
// random one so log lines can still be correlated.
func decodeJob(payload string) (sidekiqJob, error) {
	var job sidekiqJob
	if err := json.Unmarshal([]byte(payload), &job); err != nil {
		return job, errors.Wrap(err, "invalid job json")
	}
	if job.JID == "" {
		job.JID = uuid.New().String()
	}
	return job, nil
}

func isStatsJob(job sidekiqJob) bool {
	return job.Class == "RubyWorker" || job.Class == "GoWorker"
}

func (j sidekiqJob) testRunID() (int64, error) {
	if len(j.Args) == 0 {
		return 0, errors.New("job missing test_run_id")
	}
	id, err := parseInt64(j.Args[0])
	if err != nil {
		return 0, errors.Wrap(err, "job test_run_id")
	}
	if id <= 0 {
		return 0, errors.Errorf("job test_run_id %d is not positive", id)
	}
	return id, nil
}
