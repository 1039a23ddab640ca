package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quizdeck/quizdeck/internal/identity"
	"github.com/quizdeck/quizdeck/internal/quiz"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List the demo user roster",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-12s  %-24s  %s\n", "ID", "Name", "Role")
		fmt.Println(strings.Repeat("─", 48))
		for _, u := range identity.Users() {
			role := "Student"
			if u.Role == quiz.RoleTeacher {
				role = "Teacher"
			}
			fmt.Printf("%-12s  %-24s  %s\n", u.ID, u.Name, role)
		}
	},
}
