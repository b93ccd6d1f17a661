package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the preset question bank and knowledge base",
	Long:  "Loads the bundled questions and knowledge items into the database. Runs automatically on first start, this command reports what is loaded.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		questions, err := st.Content().CountQuestions(ctx)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		knowledge, err := st.Content().CountKnowledge(ctx)
		if err != nil {
			return fmt.Errorf("count knowledge: %w", err)
		}

		fmt.Printf("Content loaded: %d questions, %d knowledge items.\n", questions, knowledge)
		return nil
	},
}
