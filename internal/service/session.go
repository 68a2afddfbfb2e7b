package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/maheshrc27/postplanner/internal/calendar"
	"github.com/maheshrc27/postplanner/internal/catalog"
	"github.com/maheshrc27/postplanner/internal/preview"
)

var (
	ErrSessionClosed  = errors.New("scheduling session is closed")
	ErrSubmitInFlight = errors.New("a submission is already in progress")
)

// Session is one open scheduling dialog for a calendar day. Setters edit the
// live draft; Submit works on a snapshot so later edits never leak into an
// in-flight batch. Close cancels whatever Submit is still waiting on.
type Session struct {
	svc    *scheduleService
	userID int64

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	draft      Draft
	common     []catalog.Placement
	closed     bool
	submitting bool
}

func (s *scheduleService) OpenSession(ctx context.Context, userID int64, date string) (*Session, error) {
	if userID == 0 {
		return nil, invalid("user", "user is not valid")
	}
	if err := checkActionable(date, s.now); err != nil {
		return nil, err
	}

	sctx, cancel := context.WithCancel(ctx)
	return &Session{
		svc:    s,
		userID: userID,
		ctx:    sctx,
		cancel: cancel,
		draft:  Draft{Date: date},
	}, nil
}

func checkActionable(date string, now func() time.Time) error {
	if date == "" {
		return invalid("scheduled_date", "pick a date")
	}
	if calendar.IsBeforeToday(date, now()) {
		return invalid("scheduled_date", "%s is not open for scheduling", date)
	}
	return nil
}

// SelectChannels replaces the channel selection and returns the placements
// they have in common. A chosen placement that is no longer shared is cleared.
// Channels that share nothing are still recorded, and the error wraps
// catalog.ErrNoCommonPlacement so the placement step can stay disabled.
func (ss *Session) SelectChannels(channels ...catalog.Channel) ([]catalog.Placement, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return nil, ErrSessionClosed
	}

	for _, ch := range channels {
		if _, ok := catalog.Definition(ch); !ok {
			return nil, invalid("channels", "unknown channel %q", ch)
		}
	}

	common, err := ResolvePlacements(channels)
	ss.draft.Channels = append([]catalog.Channel(nil), channels...)
	ss.common = common
	if !catalog.ContainsPlacement(ss.common, ss.draft.Placement) {
		ss.draft.Placement = ""
	}
	return append([]catalog.Placement{}, ss.common...), err
}

func (ss *Session) SetPlacement(p catalog.Placement) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return ErrSessionClosed
	}
	if !catalog.ContainsPlacement(ss.common, p) {
		return invalid("placement", "%s is not available on every selected channel", p)
	}
	ss.draft.Placement = p
	return nil
}

func (ss *Session) SetCaption(caption string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return ErrSessionClosed
	}
	ss.draft.Caption = caption
	return nil
}

func (ss *Session) SetMedia(refs []string, kind string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return ErrSessionClosed
	}
	ss.draft.MediaRefs = append([]string(nil), refs...)
	ss.draft.MediaKind = kind
	return nil
}

func (ss *Session) SetDate(date string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return ErrSessionClosed
	}
	if err := checkActionable(date, ss.svc.now); err != nil {
		return err
	}
	ss.draft.Date = date
	return nil
}

func (ss *Session) SetTime(hhmm string) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return ErrSessionClosed
	}
	ss.draft.Time = hhmm
	return nil
}

func (ss *Session) SetPillar(id int64) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return ErrSessionClosed
	}
	ss.draft.PillarID = id
	return nil
}

func (ss *Session) SetAsDraft(asDraft bool) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return ErrSessionClosed
	}
	ss.draft.AsDraft = asDraft
	return nil
}

// Draft returns a copy of the current draft.
func (ss *Session) Draft() Draft {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.draft.Snapshot()
}

// Preview renders the current draft for ch.
func (ss *Session) Preview(ch catalog.Channel, author preview.Author) preview.Node {
	d := ss.Draft()
	return preview.Render(preview.Input{
		Channel:   ch,
		Placement: d.Placement,
		Caption:   d.Caption,
		Media:     d.MediaRefs,
		MediaKind: mediaKindOf(d.MediaRefs, d.MediaKind),
		Author:    author,
	})
}

// Submit fans the draft out. A successful submit closes the session; a
// failed one leaves it open so the user can correct and retry. Only one
// submission runs at a time; a second call returns ErrSubmitInFlight.
func (ss *Session) Submit() (*Result, error) {
	ss.mu.Lock()
	if ss.closed {
		ss.mu.Unlock()
		return nil, ErrSessionClosed
	}
	if ss.submitting {
		ss.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	ss.submitting = true
	snap := ss.draft.Snapshot()
	ss.mu.Unlock()

	res, err := ss.svc.SubmitSchedule(ss.ctx, ss.userID, snap)

	ss.mu.Lock()
	ss.submitting = false
	ss.mu.Unlock()
	if err != nil {
		return nil, err
	}
	ss.Close()
	return res, nil
}

// Close dismisses the dialog and aborts any in-flight submission.
func (ss *Session) Close() {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	if ss.closed {
		return
	}
	ss.closed = true
	ss.cancel()
}

func (ss *Session) Closed() bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.closed
}
