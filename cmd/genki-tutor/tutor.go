package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/genki-tutor/internal/cli"
	"github.com/at-ishikawa/genki-tutor/internal/tutor"
)

func newQuizCommand() *cobra.Command {
	var topic, difficulty string
	command := &cobra.Command{
		Use:   "quiz",
		Short: "Answer a generated multiple choice question",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, closeClient, err := newTutorService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeClient()
			}()

			quiz := service.Quiz(cmd.Context(), tutor.QuizRequest{
				Topic:      topic,
				Difficulty: difficulty,
			}).Value
			if len(quiz.Choices) == 0 && quiz.CorrectAnswer == "" {
				if quiz.Question == "" {
					return errors.New("no quiz was generated")
				}
				return errors.New(quiz.Question)
			}

			quizCLI := cli.NewSingleQuizCLI(quiz, cmd.InOrStdin(), cmd.OutOrStdout())
			return quizCLI.Run(cmd.Context(), quizCLI)
		},
	}
	command.Flags().StringVar(&topic, "topic", "", "quiz topic, e.g. \"Lesson 3 verbs\"")
	command.Flags().StringVar(&difficulty, "difficulty", "beginner", "quiz difficulty")
	_ = command.MarkFlagRequired("topic")

	return command
}

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <term>",
		Short: "Explain a Japanese word or grammar point",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, closeClient, err := newTutorService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeClient()
			}()

			explanation := service.Explain(cmd.Context(), tutor.ExplainRequest{Term: args[0]}).Value
			cli.PrintExplanation(cmd.OutOrStdout(), args[0], explanation)
			return nil
		},
	}
}

func newNotesCommand() *cobra.Command {
	var topic, noteContext string
	command := &cobra.Command{
		Use:   "notes <term>",
		Short: "Generate study notes for a term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, closeClient, err := newTutorService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeClient()
			}()

			notes := service.Notes(cmd.Context(), tutor.NotesRequest{
				Term:    args[0],
				Topic:   topic,
				Context: noteContext,
			}).Value
			cli.PrintNotes(cmd.OutOrStdout(), args[0], notes)
			return nil
		},
	}
	command.Flags().StringVar(&topic, "topic", tutor.DefaultNotesTopic, "topic of the notes")
	command.Flags().StringVar(&noteContext, "context", "", "sentence or situation the term appeared in")

	return command
}
