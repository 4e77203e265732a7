package main

import (
	"encoding/json"
	"testing"
)

func TestParseInt64Numeric(t *testing.T) {
	raw := json.RawMessage("12345")
	v, err := parseInt64(raw)
	if err != nil {
		t.Fatalf("parseInt64 error: %v", err)
	}
	if v != 12345 {
		t.Fatalf("expected 12345, got %d", v)
	}
}

func TestParseInt64String(t *testing.T) {
	raw := json.RawMessage(`"67890"`)
	v, err := parseInt64(raw)
	if err != nil {
		t.Fatalf("parseInt64 error: %v", err)
	}
	if v != 67890 {
		t.Fatalf("expected 67890, got %d", v)
	}
}

func TestParseInt64Invalid(t *testing.T) {
	raw := json.RawMessage(`{"oops":1}`)
	if _, err := parseInt64(raw); err == nil {
		t.Fatalf("expected error for invalid payload")
	}
}

func TestDecodeJob(t *testing.T) {
	job, err := decodeJob(`{"class":"GoWorker","args":["42"],"queue":"default","jid":"abc"}`)
	if err != nil {
		t.Fatalf("decodeJob error: %v", err)
	}
	if !isStatsJob(job) || job.JID != "abc" {
		t.Fatalf("unexpected job: %#v", job)
	}
	id, err := job.testRunID()
	if err != nil || id != 42 {
		t.Fatalf("expected test run 42, got %d (%v)", id, err)
	}
}

func TestDecodeJobAssignsJID(t *testing.T) {
	job, err := decodeJob(`{"class":"MailerWorker","args":[]}`)
	if err != nil {
		t.Fatalf("decodeJob error: %v", err)
	}
	if job.JID == "" {
		t.Fatalf("expected generated jid")
	}
	if isStatsJob(job) {
		t.Fatalf("MailerWorker must be skipped")
	}
	if _, err := job.testRunID(); err == nil {
		t.Fatalf("expected error for missing args")
	}
}

func TestDecodeJobInvalid(t *testing.T) {
	if _, err := decodeJob("not json"); err == nil {
		t.Fatalf("expected error for invalid payload")
	}
}
