// Package identity holds the demo user directory and the login session.
//
// There is no real authentication: users are picked from a fixed roster
// at login, mirroring a classroom demo. The session persists the picked
// user id so a relaunch lands back in the same identity.
package identity

import "github.com/quizdeck/quizdeck/internal/quiz"

// roster is the fixed demo user directory.
var roster = []quiz.User{
	{ID: "teacher1", Name: "Dr. Evelyn Reed", Role: quiz.RoleTeacher},
	{ID: "student1", Name: "Alex Johnson", Role: quiz.RoleStudent},
	{ID: "student2", Name: "Ben Carter", Role: quiz.RoleStudent},
}

// Users returns the full directory in display order.
func Users() []quiz.User {
	out := make([]quiz.User, len(roster))
	copy(out, roster)
	return out
}

// Lookup returns the user with the given id, if present.
func Lookup(id string) (quiz.User, bool) {
	for _, u := range roster {
		if u.ID == id {
			return u, true
		}
	}
	return quiz.User{}, false
}
