// Package progression owns the current level number of a play session.
package progression

import "fmt"

// Controller tracks a 1-based level counter bounded to [1, count]. Advancing
// past the last level never produces an invalid number; it flags the run as
// completed instead.
type Controller struct {
	count     int
	current   int
	completed bool
}

// New creates a controller for a catalog of count levels.
func New(count int) (*Controller, error) {
	if count < 1 {
		return nil, fmt.Errorf("level count must be positive, got %d", count)
	}
	return &Controller{count: count, current: 1}, nil
}

// Current returns the current level number.
func (c *Controller) Current() int {
	return c.current
}

// Count returns the number of levels.
func (c *Controller) Count() int {
	return c.count
}

// Completed reports whether the last level has been cleared.
func (c *Controller) Completed() bool {
	return c.completed
}

// IsFinal reports whether the current level is the last one.
func (c *Controller) IsFinal() bool {
	return c.current == c.count
}

// Advance moves to the next level. When the current level is the last one the
// counter stays put and completed is true.
func (c *Controller) Advance() (level int, completed bool) {
	if c.current >= c.count {
		c.completed = true
		return c.current, true
	}
	c.current++
	return c.current, false
}

// Reset returns to level 1 and clears the completed flag.
func (c *Controller) Reset() {
	c.current = 1
	c.completed = false
}
