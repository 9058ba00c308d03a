package domain

import "context"

// SessionDay is the conference day a session runs on.
type SessionDay string

const (
	Day1 SessionDay = "day1"
	Day2 SessionDay = "day2"
)

// Valid reports whether d is a known day.
func (d SessionDay) Valid() bool {
	return d == Day1 || d == Day2
}

// SessionType is the format of a session.
type SessionType string

const (
	SessionTypeKeynote  SessionType = "keynote"
	SessionTypeSession  SessionType = "session"
	SessionTypeWorkshop SessionType = "workshop"
	SessionTypePanel    SessionType = "panel"
	SessionTypeSocial   SessionType = "social"
)

// Valid reports whether t is a known session type.
func (t SessionType) Valid() bool {
	switch t {
	case SessionTypeKeynote, SessionTypeSession, SessionTypeWorkshop, SessionTypePanel, SessionTypeSocial:
		return true
	}
	return false
}

// Session is one slot of the agenda. Time and EndTime are display strings ("09:00 AM").
// SpeakerID is empty when the session has no speaker.
// swagger:model Session
type Session struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Time        string      `json:"time"`
	EndTime     string      `json:"endTime"`
	Day         SessionDay  `json:"day"`
	Track       string      `json:"track"`
	SpeakerID   string      `json:"speakerId"`
	Venue       string      `json:"venue"`
	Type        SessionType `json:"type"`
}

// SessionInput holds the fields of a new session.
type SessionInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Time        string      `json:"time"`
	EndTime     string      `json:"endTime"`
	Day         SessionDay  `json:"day"`
	Track       string      `json:"track"`
	SpeakerID   string      `json:"speakerId"`
	Venue       string      `json:"venue"`
	Type        SessionType `json:"type"`
}

// SessionPatch enumerates the mutable fields of a session.
type SessionPatch struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Time        *string      `json:"time,omitempty"`
	EndTime     *string      `json:"endTime,omitempty"`
	Day         *SessionDay  `json:"day,omitempty"`
	Track       *string      `json:"track,omitempty"`
	SpeakerID   *string      `json:"speakerId,omitempty"`
	Venue       *string      `json:"venue,omitempty"`
	Type        *SessionType `json:"type,omitempty"`
}

// SessionRepository is the mutation surface for agenda sessions.
type SessionRepository interface {
	GetAll(ctx context.Context) []*Session
	GetByID(ctx context.Context, id string) (*Session, error)
	GetByDay(ctx context.Context, day SessionDay) []*Session
	GetByTrack(ctx context.Context, track string) []*Session
	Create(ctx context.Context, in SessionInput) (*Session, error)
	Update(ctx context.Context, id string, patch SessionPatch) (*Session, error)
	Delete(ctx context.Context, id string) bool
}
