package domain

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedRecordsAreComplete(t *testing.T) {
	registry := NewRegistry(Seed())

	activities := registry.List()
	require.Len(t, activities, 9)
	require.Contains(t, activities, "Chess Club")
	require.Contains(t, activities, "Programming Class")
	require.Contains(t, activities, "Gym Class")

	for name, activity := range activities {
		require.NotEmpty(t, activity.Description, "activity %q has no description", name)
		require.NotEmpty(t, activity.Schedule, "activity %q has no schedule", name)
		require.Positive(t, activity.MaxParticipants, "activity %q has no capacity", name)
		require.NotNil(t, activity.Participants, "activity %q has a nil roster", name)
	}

	require.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu"},
		activities["Chess Club"].Participants)
}

func TestSignupAppendsToRoster(t *testing.T) {
	registry := NewRegistry(Seed())

	message, already, err := registry.Signup("Chess Club", "new@x.edu")
	require.NoError(t, err)
	require.False(t, already)
	require.Equal(t, "Signed up new@x.edu for Chess Club", message)

	roster := registry.List()["Chess Club"].Participants
	require.Len(t, roster, 3)
	require.Equal(t, "new@x.edu", roster[2])
}

func TestSignupIsIdempotent(t *testing.T) {
	registry := NewRegistry(Seed())

	_, already, err := registry.Signup("Chess Club", "dup@x.edu")
	require.NoError(t, err)
	require.False(t, already)

	message, already, err := registry.Signup("Chess Club", "dup@x.edu")
	require.NoError(t, err)
	require.True(t, already)
	require.Equal(t, "Student already signed up for this activity", message)

	roster := registry.List()["Chess Club"].Participants
	count := 0
	for _, email := range roster {
		if email == "dup@x.edu" {
			count++
		}
	}
	require.Equal(t, 1, count)
	require.Len(t, roster, 3)
}

func TestSignupUnknownActivity(t *testing.T) {
	registry := NewRegistry(Seed())

	_, _, err := registry.Signup("Nonexistent Club", "new@x.edu")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestSignupDoesNotEnforceCapacity(t *testing.T) {
	registry := NewRegistry(map[string]Activity{
		"Tiny Club": {
			Description:     "fits one",
			Schedule:        "never",
			MaxParticipants: 1,
			Participants:    []string{"first@x.edu"},
		},
	})

	_, _, err := registry.Signup("Tiny Club", "second@x.edu")
	require.NoError(t, err)
	require.Len(t, registry.List()["Tiny Club"].Participants, 2)
}

func TestRemoveRoundTrip(t *testing.T) {
	registry := NewRegistry(Seed())
	before := registry.List()["Chess Club"].Participants

	_, _, err := registry.Signup("Chess Club", "transient@x.edu")
	require.NoError(t, err)

	message, err := registry.Remove("Chess Club", "transient@x.edu")
	require.NoError(t, err)
	require.Equal(t, "Removed transient@x.edu from Chess Club", message)
	require.Equal(t, before, registry.List()["Chess Club"].Participants)

	_, err = registry.Remove("Chess Club", "transient@x.edu")
	require.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestRemoveUnknownActivity(t *testing.T) {
	registry := NewRegistry(Seed())

	_, err := registry.Remove("Nonexistent Club", "someone@x.edu")
	require.ErrorIs(t, err, ErrActivityNotFound)
}

func TestRemoveUnknownParticipant(t *testing.T) {
	registry := NewRegistry(Seed())

	_, err := registry.Remove("Chess Club", "never-signed-up@x.edu")
	require.ErrorIs(t, err, ErrParticipantNotFound)
}

func TestListReturnsIsolatedSnapshot(t *testing.T) {
	registry := NewRegistry(Seed())

	snapshot := registry.List()
	snapshot["Chess Club"].Participants[0] = "tampered@x.edu"

	require.Equal(t, "michael@mergington.edu", registry.List()["Chess Club"].Participants[0])
}

func TestRosterSize(t *testing.T) {
	registry := NewRegistry(Seed())

	size, ok := registry.RosterSize("Chess Club")
	require.True(t, ok)
	require.Equal(t, 2, size)

	_, ok = registry.RosterSize("Nonexistent Club")
	require.False(t, ok)
}

func TestConcurrentSignupsKeepRosterConsistent(t *testing.T) {
	registry := NewRegistry(Seed())

	const writers = 32
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// Half the goroutines race on the same email, half use distinct ones.
			email := fmt.Sprintf("student-%d@x.edu", i%(writers/2))
			_, _, err := registry.Signup("Soccer Team", email)
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	roster := registry.List()["Soccer Team"].Participants
	require.Len(t, roster, writers/2)

	seen := make(map[string]bool, len(roster))
	for _, email := range roster {
		require.False(t, seen[email], "duplicate roster entry %q", email)
		seen[email] = true
	}
}
