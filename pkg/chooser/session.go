package chooser

import (
	"context"
	"fmt"
)

type SessionState int

const (
	Browsing SessionState = iota
	Completed
	Cancelled
)

func (s SessionState) String() string {
	switch s {
	case Browsing:
		return "browsing"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("SessionState(%d)", int(s))
	}
}

// Result is the outcome handed back to the caller of a session.
type Result struct {
	Path      string
	Cancelled bool
}

// Session drives a Browser through Browsing until it is Completed or Cancelled.
type Session struct {
	browser *Browser
	state   SessionState
	result  Result
}

func NewSession(browser *Browser) *Session {
	return &Session{browser: browser}
}

func (s *Session) Browser() *Browser {
	return s.browser
}

func (s *Session) State() SessionState {
	return s.state
}

// Result returns the outcome once the session reached a terminal state.
func (s *Session) Result() (Result, bool) {
	if s.state == Browsing {
		return Result{}, false
	}
	return s.result, true
}

func (s *Session) checkOpen() error {
	if s.state != Browsing {
		return fmt.Errorf("%w: session is %v", ErrSessionClosed, s.state)
	}
	return nil
}

func (s *Session) Entries(ctx context.Context) ([]Entry, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.browser.ListEntries(ctx)
}

// Open enters a folder entry or completes the session with a file entry.
func (s *Session) Open(entry Entry) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if entry.IsFolder {
		return s.browser.Enter(entry)
	}
	p, err := s.browser.Select(entry)
	if err != nil {
		return err
	}
	s.complete(p)
	return nil
}

// Back goes up one level; at the root it cancels the session.
func (s *Session) Back() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if s.browser.GoUp() {
		s.cancel()
	}
	return nil
}

func (s *Session) SelectFolder() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	p, err := s.browser.SelectCurrentFolder()
	if err != nil {
		return err
	}
	s.complete(p)
	return nil
}

func (s *Session) Cancel() error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	s.cancel()
	return nil
}

func (s *Session) complete(p string) {
	s.state = Completed
	s.result = Result{Path: p}
}

func (s *Session) cancel() {
	s.state = Cancelled
	s.result = Result{Cancelled: true}
}
