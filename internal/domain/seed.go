package domain

// Seed returns the fixed activity set the service starts with. The directory
// is in-memory only, so this is the full universe of activities for the
// process lifetime.
func Seed() map[string]Activity {
	return map[string]Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		"Soccer Team": {
			Description:     "Practice soccer skills and compete with other schools",
			Schedule:        "Tuesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{},
		},
		"Basketball Team": {
			Description:     "Train and play competitive basketball games",
			Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{},
		},
		"Art Club": {
			Description:     "Create paintings, drawings, and digital art",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{},
		},
		"Drama Club": {
			Description:     "Acting, improvisation, and stage performances",
			Schedule:        "Mondays, 4:00 PM - 5:30 PM",
			MaxParticipants: 14,
			Participants:    []string{},
		},
		"Math Club": {
			Description:     "Solve challenging math problems and puzzles",
			Schedule:        "Fridays, 2:30 PM - 3:30 PM",
			MaxParticipants: 12,
			Participants:    []string{},
		},
		"Robotics Club": {
			Description:     "Build and program robots",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{},
		},
	}
}
