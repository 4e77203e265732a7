package main

import (
	"strconv"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRedisConfigFromEnv(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://:hunter2@cache.example:6380/3")
	t.Setenv("WORKER_QUEUE", "stats")

	cfg, err := redisConfigFromEnv()
	if err != nil {
		t.Fatalf("redisConfigFromEnv error: %v", err)
	}
	want := redisConfig{Addr: "cache.example:6380", Password: "hunter2", DB: 3, Queue: "queue:stats"}
	if cfg != want {
		t.Fatalf("unexpected config. got %#v want %#v", cfg, want)
	}
}

func TestRedisConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("WORKER_QUEUE", "")

	cfg, err := redisConfigFromEnv()
	if err != nil {
		t.Fatalf("redisConfigFromEnv error: %v", err)
	}
	want := redisConfig{Addr: "localhost:6379", Queue: "queue:default"}
	if cfg != want {
		t.Fatalf("unexpected config. got %#v want %#v", cfg, want)
	}
}

func TestRedisConfigFromEnvRejectsUnixSocket(t *testing.T) {
	t.Setenv("REDIS_URL", "unix:///tmp/redis.sock")

	if _, err := redisConfigFromEnv(); err == nil {
		t.Fatalf("expected error for unix socket URL")
	}
}

func TestConsumeSkipsForeignJobsUntilDisconnect(t *testing.T) {
	payload := `{"class":"MailerWorker","args":[1]}`
	conn := newFakeConn("+OK\r\n" +
		"*2\r\n$13\r\nqueue:default\r\n$" + strconv.Itoa(len(payload)) + "\r\n" + payload + "\r\n")
	cfg := redisConfig{Addr: "unused", DB: 1, Queue: "queue:default"}

	err := consume(nil, newQueueConn(conn), cfg, logrus.NewEntry(logrus.StandardLogger()))
	if err == nil {
		t.Fatalf("expected consume to stop at end of stream")
	}
	if got := strings.Count(conn.written.String(), "BRPOP"); got != 2 {
		t.Fatalf("expected 2 BRPOP commands, got %d in %q", got, conn.written.String())
	}
	if !strings.HasPrefix(conn.written.String(), "*2\r\n$6\r\nSELECT\r\n$1\r\n1\r\n") {
		t.Fatalf("expected SELECT first, got %q", conn.written.String())
	}
}

func TestConsumeKeepsPollingAfterTimeout(t *testing.T) {
	conn := newFakeConn("$-1\r\n")
	cfg := redisConfig{Addr: "unused", Queue: "queue:default"}

	if err := consume(nil, newQueueConn(conn), cfg, logrus.NewEntry(logrus.StandardLogger())); err == nil {
		t.Fatalf("expected consume to stop at end of stream")
	}
	// the nil reply after a 5 second wait is followed by another BRPOP
	want := "*3\r\n$5\r\nBRPOP\r\n$13\r\nqueue:default\r\n$1\r\n5\r\n"
	if got := conn.written.String(); got != want+want {
		t.Fatalf("expected two timed BRPOP commands, got %q", got)
	}
}
