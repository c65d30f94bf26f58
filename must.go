// This file contains the methods that panics when error return value is not nil.
// Their function names are all prefixed with Must.

package slidecheck

import (
	"github.com/go-rod/rod/lib/utils"
)

// MustRun is similar to Checker.Run
func (c *Checker) MustRun() *Summary {
	sum, err := c.Run()
	utils.E(err)
	return sum
}

// MustCount is similar to Deck.Count
func (d *Deck) MustCount() int {
	n, err := d.Count()
	utils.E(err)
	return n
}

// MustActivate is similar to Deck.Activate
func (d *Deck) MustActivate(n int) *Deck {
	utils.E(d.Activate(n))
	return d
}

// MustActive is similar to Deck.Active
func (d *Deck) MustActive() []int {
	list, err := d.Active()
	utils.E(err)
	return list
}

// MustSettle is similar to Deck.Settle
func (d *Deck) MustSettle() *Deck {
	utils.E(d.Settle())
	return d
}

// MustMeasure is similar to Deck.Measure
func (d *Deck) MustMeasure(n int) *Slide {
	s, err := d.Measure(n)
	utils.E(err)
	return s
}

// MustCapture is similar to Deck.Capture
func (d *Deck) MustCapture(dir string, n int) string {
	p, err := d.Capture(dir, n)
	utils.E(err)
	return p
}
