package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/learnloop/learnloop/internal/app"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start a tutoring session in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd)
	},
}

// runChat opens the store, builds the tutoring pipeline and launches the TUI.
func runChat(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	orch := buildOrchestrator(cmd.Context(), st)

	studentID := os.Getenv("LEARNLOOP_STUDENT_ID")
	if studentID == "" {
		studentID = "default_student"
	}

	return app.Run(app.Deps{
		Sessions:  st.Sessions(),
		Orch:      orch,
		StudentID: studentID,
	})
}
