// Package progress prints a single self-overwriting status line.
package progress

import (
	"fmt"
	"io"
	"time"
)

// Counter reports how many of Total items have been processed.
// A nil *Counter or a Counter with a nil writer is silent.
type Counter struct {
	w        io.Writer
	label    string
	total    int
	done     int
	every    time.Duration
	last     time.Time
	now      func() time.Time
	finished bool
}

// New creates a Counter writing to w. total <= 0 means unknown.
func New(w io.Writer, label string, total int) *Counter {
	return &Counter{
		w:     w,
		label: label,
		total: total,
		every: 100 * time.Millisecond,
		now:   time.Now,
	}
}

// Add records n processed items and redraws the line at most once per
// refresh interval.
func (c *Counter) Add(n int) {
	if c == nil || c.w == nil {
		return
	}
	c.Set(c.done + n)
}

// Set records that n items have been processed in total.
func (c *Counter) Set(n int) {
	if c == nil || c.w == nil {
		return
	}
	c.done = n
	if t := c.now(); t.Sub(c.last) >= c.every || c.done == c.total {
		c.last = t
		c.draw()
	}
}

// Done returns the number of processed items.
func (c *Counter) Done() int {
	if c == nil {
		return 0
	}
	return c.done
}

// Finish draws the final state and terminates the line.
func (c *Counter) Finish() {
	if c == nil || c.w == nil || c.finished {
		return
	}
	c.finished = true
	c.draw()
	fmt.Fprintln(c.w)
}

func (c *Counter) draw() {
	if c.total > 0 {
		fmt.Fprintf(c.w, "\r%s: %d/%d (%.1f%%)", c.label, c.done, c.total, float64(c.done)/float64(c.total)*100)
		return
	}
	fmt.Fprintf(c.w, "\r%s: %d", c.label, c.done)
}
