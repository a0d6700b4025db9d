package domain

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrActivityNotFound is returned when the named activity is not in the directory.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrParticipantNotFound is returned when the email is not on the activity's roster.
	ErrParticipantNotFound = errors.New("participant not found in this activity")
)

// Registry holds the directory of activities for the lifetime of the process.
// The activity set is fixed at construction; only rosters change. A single
// RWMutex serializes roster mutations and keeps List snapshots consistent.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
}

// NewRegistry builds a Registry from seed records. The seed rosters are copied,
// so callers keep no handle into registry state.
func NewRegistry(seed map[string]Activity) *Registry {
	activities := make(map[string]*Activity, len(seed))
	for name, activity := range seed {
		copied := activity.clone()
		activities[name] = &copied
	}
	return &Registry{activities: activities}
}

// List returns a snapshot of the whole directory keyed by activity name.
// Rosters are deep-copied: mutating the result never touches registry state,
// and a concurrent Signup or Remove never tears a returned roster.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.clone()
	}
	return out
}

// Signup adds email to the named activity's roster. Signing up an email that
// is already on the roster succeeds without modifying anything; the returned
// bool reports that replay, so the operation is idempotent with respect to
// membership. Capacity is not checked.
func (r *Registry) Signup(name, email string) (string, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return "", false, ErrActivityNotFound
	}

	for _, existing := range activity.Participants {
		if existing == email {
			return "Student already signed up for this activity", true, nil
		}
	}

	activity.Participants = append(activity.Participants, email)
	return fmt.Sprintf("Signed up %s for %s", email, name), false, nil
}

// Remove takes email off the named activity's roster.
func (r *Registry) Remove(name, email string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return "", ErrActivityNotFound
	}

	for i, existing := range activity.Participants {
		if existing == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return fmt.Sprintf("Removed %s from %s", email, name), nil
		}
	}

	return "", ErrParticipantNotFound
}

// RosterSize reports the current roster length, or false when the activity
// does not exist.
func (r *Registry) RosterSize(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return 0, false
	}
	return len(activity.Participants), true
}
