package service

import (
	"fmt"
	"strings"

	"github.com/maheshrc27/postplanner/internal/catalog"
)

// ChannelOutcome is the result of one per-channel creation call.
type ChannelOutcome struct {
	Channel     catalog.Channel `json:"channel"`
	Placement   string          `json:"placement"`
	PostID      int64           `json:"post_id,omitempty"`
	Err         error           `json:"-"`
	RolledBack  bool            `json:"rolled_back,omitempty"`
	RollbackErr error           `json:"-"`
}

func (o ChannelOutcome) Created() bool {
	return o.Err == nil && o.PostID != 0
}

// FanOutError reports a batch that failed on at least one channel. Every
// created sibling has been rolled back unless its RollbackErr says otherwise.
type FanOutError struct {
	BatchID  string
	Outcomes []ChannelOutcome
}

func (e *FanOutError) Error() string {
	var failed []string
	rolledBack, stuck := 0, 0
	for _, o := range e.Outcomes {
		switch {
		case o.Err != nil:
			failed = append(failed, fmt.Sprintf("%s (%v)", o.Channel, o.Err))
		case o.RolledBack:
			rolledBack++
		case o.RollbackErr != nil:
			stuck++
		}
	}
	msg := "schedule failed on " + strings.Join(failed, ", ")
	if rolledBack > 0 {
		msg += fmt.Sprintf("; rolled back %d created post(s)", rolledBack)
	}
	if stuck > 0 {
		msg += fmt.Sprintf("; %d post(s) could not be rolled back", stuck)
	}
	return msg
}

func (e *FanOutError) Unwrap() []error {
	var errs []error
	for _, o := range e.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
		if o.RollbackErr != nil {
			errs = append(errs, o.RollbackErr)
		}
	}
	return errs
}

// Failed lists the channels whose creation call failed.
func (e *FanOutError) Failed() []catalog.Channel {
	var out []catalog.Channel
	for _, o := range e.Outcomes {
		if o.Err != nil {
			out = append(out, o.Channel)
		}
	}
	return out
}

// Orphans lists posts that were created but could not be deleted again.
func (e *FanOutError) Orphans() []int64 {
	var out []int64
	for _, o := range e.Outcomes {
		if o.RollbackErr != nil {
			out = append(out, o.PostID)
		}
	}
	return out
}
