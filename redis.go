package main

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/mason-leap-lab/redeo/resp"
	"github.com/pkg/errors"
)

type sidekiqJob struct {
	Class string            `json:"class"`
	Args  []json.RawMessage `json:"args"`
	Queue string            `json:"queue"`
	JID   string            `json:"jid"`
}

// queueConn speaks just enough RESP to authenticate, select a database
// and pop Sidekiq jobs.
type queueConn struct {
	w *resp.RequestWriter
	r resp.ResponseReader
}

func newQueueConn(rw io.ReadWriter) *queueConn {
	return &queueConn{
		w: resp.NewRequestWriter(rw),
		r: resp.NewResponseReader(rw),
	}
}

func (c *queueConn) command(cmd string, args ...string) error {
	c.w.WriteCmdString(cmd, args...)
	return c.w.Flush()
}

func (c *queueConn) readError() error {
	msg, err := c.r.ReadError()
	if err != nil {
		return err
	}
	return errors.Errorf("redis error: %s", msg)
}

func (c *queueConn) expectOK() error {
	t, err := c.r.PeekType()
	if err != nil {
		return err
	}
	if t == resp.TypeError {
		return c.readError()
	}
	line, err := c.r.ReadInlineString()
	if err != nil {
		return err
	}
	if !strings.EqualFold(line, "OK") {
		return errors.Errorf("redis not OK: %s", line)
	}
	return nil
}

// do sends cmd and expects a simple OK reply.
func (c *queueConn) do(cmd string, args ...string) error {
	if err := c.command(cmd, args...); err != nil {
		return errors.Wrapf(err, "redis %s", strings.ToLower(cmd))
	}
	return errors.Wrapf(c.expectOK(), "redis %s", strings.ToLower(cmd))
}

// brpop blocks for up to timeout seconds. An empty key
// and payload means the timeout expired.
func (c *queueConn) brpop(queue, timeout string) (key string, payload string, err error) {
	if err := c.command("BRPOP", queue, timeout); err != nil {
		return "", "", err
	}
	t, err := c.r.PeekType()
	if err != nil {
		return "", "", err
	}
	switch t {
	case resp.TypeNil:
		return "", "", c.r.ReadNil()
	case resp.TypeError:
		return "", "", c.readError()
	case resp.TypeArray:
		n, err := c.r.ReadArrayLen()
		if err != nil {
			return "", "", err
		}
		if n != 2 {
			return "", "", errors.Errorf("unexpected BRPOP reply length %d", n)
		}
		if key, err = c.r.ReadBulkString(); err != nil {
			return "", "", err
		}
		if payload, err = c.r.ReadBulkString(); err != nil {
			return "", "", err
		}
		return key, payload, nil
	default:
		return "", "", errors.Errorf("unexpected reply type %v", t)
	}
}
