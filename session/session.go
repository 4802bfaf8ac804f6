// Package session owns the state of one incremental location search: the
// query, the candidate list and the highlighted index. All mutation happens
// through explicit transitions, so the UI layer holds no search state of its
// own.
package session

import (
	"unicode/utf8"

	"github.com/eskendarov/weather-app/manager"
)

// Queries shorter than this are suppressed to avoid noisy lookups.
const minQueryLength = 2

// NoHighlight is the highlighted index when no candidate is highlighted.
const NoHighlight = -1

type State int

const (
	// Idle: query empty or below the lookup threshold, no candidates.
	Idle State = iota
	// Searching: a candidate request is outstanding.
	Searching
	// Listing: candidates populated, zero or one highlighted.
	Listing
)

type Direction int

const (
	Down Direction = iota
	Up
)

type Session struct {
	state       State
	query       string
	candidates  []manager.Candidate
	highlighted int
	listVisible bool
	generation  uint64
}

func New() *Session {
	return &Session{highlighted: NoHighlight}
}

// QueryChanged replaces the query, clears the candidates and stamps the
// search with a new generation. It reports whether a candidate request should
// be issued; below the length threshold the session goes Idle and no request
// is made. The generation bump also invalidates any in-flight request for the
// previous query.
func (s *Session) QueryChanged(text string) (generation uint64, search bool) {
	s.generation++
	s.query = text
	s.candidates = nil
	s.highlighted = NoHighlight
	s.listVisible = false

	if utf8.RuneCountInString(text) < minQueryLength {
		s.state = Idle
		return s.generation, false
	}

	s.state = Searching
	return s.generation, true
}

// CandidatesReceived installs a response for the given generation. Responses
// from superseded generations are discarded and it reports false. An empty
// list still transitions to Listing, with the list hidden.
func (s *Session) CandidatesReceived(generation uint64, list []manager.Candidate) bool {
	if generation != s.generation || s.state != Searching {
		return false
	}

	s.state = Listing
	s.candidates = list
	s.highlighted = NoHighlight
	s.listVisible = len(list) > 0
	return true
}

// Navigate moves the highlight one step, clamped to the list bounds. There is
// no wraparound: down at the last candidate and up at the first are no-ops,
// and up never returns the highlight to none. Down from none lands on the
// first candidate. Outside Listing it does nothing.
func (s *Session) Navigate(direction Direction) {
	if s.state != Listing || len(s.candidates) == 0 {
		return
	}

	switch direction {
	case Down:
		if s.highlighted < len(s.candidates)-1 {
			s.highlighted++
		}
	case Up:
		if s.highlighted > 0 {
			s.highlighted--
		}
	}
}

// Confirm selects the highlighted candidate. It is a no-op when nothing is
// highlighted.
func (s *Session) Confirm() (manager.Candidate, bool) {
	if s.state != Listing || s.highlighted == NoHighlight {
		return manager.Candidate{}, false
	}
	return s.take(s.highlighted), true
}

// Select picks a candidate by list position, the click analogue of Confirm.
func (s *Session) Select(index int) (manager.Candidate, bool) {
	if s.state != Listing || index < 0 || index >= len(s.candidates) {
		return manager.Candidate{}, false
	}
	return s.take(index), true
}

// take hands out the chosen candidate and resets the session for the next
// search cycle. The generation bump discards any still-outstanding request.
func (s *Session) take(index int) manager.Candidate {
	candidate := s.candidates[index]

	s.generation++
	s.state = Idle
	s.query = ""
	s.candidates = nil
	s.highlighted = NoHighlight
	s.listVisible = false

	return candidate
}

// Dismiss hides the candidate list without touching the query, the
// candidates or the highlight. This is a visibility change only, distinct
// from the reset that follows a selection.
func (s *Session) Dismiss() {
	s.listVisible = false
}

func (s *Session) State() State { return s.state }

func (s *Session) Query() string { return s.query }

func (s *Session) Candidates() []manager.Candidate { return s.candidates }

func (s *Session) Highlighted() int { return s.highlighted }

func (s *Session) ListVisible() bool { return s.listVisible }
