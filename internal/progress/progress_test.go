package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestCounter(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, "Utterances", 4)
	clock := time.Unix(0, 0)
	c.now = func() time.Time { return clock }

	c.Add(1) // first draw
	c.Add(1) // throttled
	clock = clock.Add(time.Second)
	c.Add(1)
	c.Add(1) // reaches total, always drawn
	c.Finish()
	c.Finish()

	out := buf.String()
	if got := strings.Count(out, "\r"); got != 4 {
		t.Errorf("redraws = %d, want 4 (output %q)", got, out)
	}
	if !strings.HasSuffix(out, "\rUtterances: 4/4 (100.0%)\n") {
		t.Errorf("unexpected final line: %q", out)
	}
	if c.Done() != 4 {
		t.Errorf("Done() = %d, want 4", c.Done())
	}
}

func TestCounterUnknownTotal(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, "Lines", 0)
	c.Add(3)
	c.Finish()
	if got := buf.String(); got != "\rLines: 3\rLines: 3\n" {
		t.Errorf("output = %q", got)
	}
}

func TestCounterSet(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, "Lines", 10)
	c.Set(4)
	c.Set(10)
	c.Finish()
	if got := buf.String(); got != "\rLines: 4/10 (40.0%)\rLines: 10/10 (100.0%)\rLines: 10/10 (100.0%)\n" {
		t.Errorf("output = %q", got)
	}
}

func TestCounterSilent(t *testing.T) {
	var c *Counter
	c.Add(1)
	c.Finish()
	if c.Done() != 0 {
		t.Error("nil counter should report 0")
	}

	New(nil, "x", 1).Add(1)
}
