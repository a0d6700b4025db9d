// Package domain defines the activity directory and its roster rules.
package domain

// Activity describes one extracurricular activity and its current roster.
//
// MaxParticipants is informational: the directory reports it but Signup does
// not compare it against the roster length.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// clone copies the record so the roster slice shares no storage with the
// registry's own.
func (a Activity) clone() Activity {
	out := a
	out.Participants = make([]string, len(a.Participants))
	copy(out.Participants, a.Participants)
	return out
}
