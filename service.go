package main

import (
	"database/sql"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	reconnectDelay = 2 * time.Second
	dialTimeout    = 5 * time.Second
	// seconds; a silent server shows up as a read error within this window
	brpopTimeout = "5"
)

type redisConfig struct {
	Addr     string
	Password string
	DB       int
	Queue    string
}

func redisConfigFromEnv() (redisConfig, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	u, err := url.Parse(redisURL)
	if err != nil {
		return redisConfig{}, errors.Wrap(err, "invalid REDIS_URL")
	}
	if u.Host == "" || u.Scheme == "unix" {
		return redisConfig{}, errors.New("unix sockets not supported by this worker")
	}
	cfg := redisConfig{Addr: u.Host}
	cfg.Password, _ = u.User.Password()
	if parts := strings.TrimPrefix(u.Path, "/"); parts != "" {
		if i, err := strconv.Atoi(parts); err == nil {
			cfg.DB = i
		}
	}
	qname := os.Getenv("WORKER_QUEUE")
	if qname == "" {
		qname = "default"
	}
	cfg.Queue = "queue:" + qname
	return cfg, nil
}

func processTestRun(db *sql.DB, testRunID int64) error {
	ok, err := existsTestRun(db, testRunID)
	if err != nil {
		return errors.Wrapf(err, "lookup test_run %d", testRunID)
	}
	if !ok {
		return errors.Errorf("test_runs id %d not found", testRunID)
	}
	page, perPage, err := fetchTaskWindow(db, testRunID)
	if err != nil {
		return errors.Wrap(err, "fetch task window failed")
	}
	values, err := fetchSamples(db, page, perPage)
	if err != nil {
		return errors.Wrap(err, "fetch samples failed")
	}

	m := measurePeakResidentMemory(func() Summary {
		return summarize(values)
	})
	if err := insertTestResult(db, testRunID, m); err != nil {
		return errors.Wrap(err, "insert test_result failed")
	}
	logrus.WithFields(logrus.Fields{
		"test_run": testRunID,
		"samples":  m.Summary.Count,
		"nan":      m.Summary.NaNCount,
		"duration": m.Duration,
		"memory":   humanize.Bytes(uint64(m.PeakRSS)),
	}).Info("processed test run")
	return nil
}

func runService(db *sql.DB, cfg redisConfig) {
	log := logrus.WithField("queue", cfg.Queue)
	for {
		conn, err := net.DialTimeout("tcp", cfg.Addr, dialTimeout)
		if err != nil {
			log.WithError(err).Warnf("redis connect failed; retrying in %s", reconnectDelay)
			time.Sleep(reconnectDelay)
			continue
		}
		if err := consume(db, newQueueConn(conn), cfg, log); err != nil {
			log.WithError(err).Warn("redis connection lost")
		}
		conn.Close()
		time.Sleep(1 * time.Second)
	}
}

func consume(db *sql.DB, qc *queueConn, cfg redisConfig, log *logrus.Entry) error {
	if cfg.Password != "" {
		if err := qc.do("AUTH", cfg.Password); err != nil {
			return err
		}
	}
	if cfg.DB != 0 {
		if err := qc.do("SELECT", strconv.Itoa(cfg.DB)); err != nil {
			return err
		}
	}
	log.Info("waiting for jobs")

	for {
		_, payload, err := qc.brpop(cfg.Queue, brpopTimeout)
		if err != nil {
			return err
		}
		if payload == "" {
			continue
		}
		job, err := decodeJob(payload)
		if err != nil {
			log.WithError(err).Warn("dropping job")
			continue
		}
		jlog := log.WithFields(logrus.Fields{"jid": job.JID, "class": job.Class})
		if !isStatsJob(job) {
			jlog.Debug("skipping job")
			continue
		}
		id, err := job.testRunID()
		if err != nil {
			jlog.WithError(err).Warnf("dropping job: %s", payload)
			continue
		}
		if err := processTestRun(db, id); err != nil {
			jlog.WithError(err).WithField("test_run", id).Error("process error")
		}
	}
}
