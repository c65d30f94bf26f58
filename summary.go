package slidecheck

import (
	"github.com/go-rod/rod/lib/utils"
)

// Summary of a run
type Summary struct {
	Total int `json:"total"`

	// Issues are the slides with overflow, in ascending slide order
	Issues []*Slide `json:"issues"`
}

// OK returns true if no slide overflows
func (s *Summary) OK() bool {
	return len(s.Issues) == 0
}

// Affected returns the numbers of the slides with overflow
func (s *Summary) Affected() []int {
	list := []int{}
	for _, i := range s.Issues {
		list = append(list, i.Index)
	}
	return list
}

// Save the summary as json to path, parent dirs are created when missing
func (s *Summary) Save(path string) error {
	return utils.OutputFile(path, s)
}

func (s *Summary) add(slide *Slide) {
	if slide.HasOverflow {
		s.Issues = append(s.Issues, slide)
	}
}
