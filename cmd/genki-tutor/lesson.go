package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/genki-tutor/internal/assets"
	"github.com/at-ishikawa/genki-tutor/internal/bootstrap"
	"github.com/at-ishikawa/genki-tutor/internal/cli"
	"github.com/at-ishikawa/genki-tutor/internal/lessons"
	"github.com/at-ishikawa/genki-tutor/internal/pdf"
	"github.com/at-ishikawa/genki-tutor/internal/tutor"
)

func newLessonsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons",
		Short: "List the lessons in the catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			catalogue, err := bootstrap.NewLessonCatalogue(cfg).Load()
			if err != nil {
				return fmt.Errorf("catalogue.Load() > %w", err)
			}
			titles, err := lessons.Titles(catalogue)
			if err != nil {
				return fmt.Errorf("lessons.Titles() > %w", err)
			}
			cli.PrintLessonTitles(cmd.OutOrStdout(), titles)
			return nil
		},
	}
}

func newLessonCommand() *cobra.Command {
	lessonCommand := &cobra.Command{
		Use:   "lesson",
		Short: "Study material for a single lesson",
	}

	lessonCommand.AddCommand(newLessonNotesCommand())
	lessonCommand.AddCommand(newLessonQuizCommand())

	return lessonCommand
}

func newLessonNotesCommand() *cobra.Command {
	var outputDirectory string
	var generatePDF bool
	command := &cobra.Command{
		Use:   "notes <lesson title>",
		Short: "Generate markdown study notes for a lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if generatePDF && outputDirectory == "" {
				return errors.New("--pdf requires --output")
			}

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

			notes := service.LessonNotes(cmd.Context(), tutor.LessonNotesRequest{LessonTitle: args[0]}).Value
			templateData := cli.NewLessonNotesTemplate(notes, time.Now())

			if outputDirectory == "" {
				return assets.WriteLessonNotes(cmd.OutOrStdout(), cfg.Templates.LessonNotesTemplate, templateData)
			}

			if err := os.MkdirAll(outputDirectory, 0755); err != nil {
				return fmt.Errorf("os.MkdirAll(%s) > %w", outputDirectory, err)
			}
			markdownPath := filepath.Join(outputDirectory, lessonFileName(args[0])+".md")
			if err := writeLessonNotesFile(markdownPath, cfg.Templates.LessonNotesTemplate, templateData); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Markdown written to %s\n", markdownPath)

			if generatePDF {
				pdfPath, err := pdf.ConvertMarkdownToPDF(markdownPath, pdf.Options{
					PaperSize: cfg.PDF.PaperSize,
					DarkTheme: cfg.PDF.DarkTheme,
				})
				if err != nil {
					return fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", markdownPath, err)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "PDF written to %s\n", pdfPath)
			}
			return nil
		},
	}
	command.Flags().StringVarP(&outputDirectory, "output", "o", "", "directory to write the notes to instead of stdout")
	command.Flags().BoolVar(&generatePDF, "pdf", false, "also convert the markdown notes to PDF")

	return command
}

func writeLessonNotesFile(path string, templatePath string, templateData assets.LessonNotesTemplate) (err error) {
	output, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s) > %w", path, err)
	}
	defer func() {
		if closeErr := output.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("output.Close() > %w", closeErr)
		}
	}()

	if err := assets.WriteLessonNotes(output, templatePath, templateData); err != nil {
		return fmt.Errorf("assets.WriteLessonNotes() > %w", err)
	}
	return nil
}

// lessonFileName turns "Lesson 1: New Friends" into "lesson-1-new-friends"
func lessonFileName(title string) string {
	var builder strings.Builder
	pendingSeparator := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSeparator && builder.Len() > 0 {
				builder.WriteRune('-')
			}
			builder.WriteRune(r)
			pendingSeparator = false
			continue
		}
		pendingSeparator = true
	}
	if builder.Len() == 0 {
		return "lesson"
	}
	return builder.String()
}

func newLessonQuizCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quiz <lesson title>",
		Short: "Take a generated quiz for a lesson",
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

			quiz := service.LessonQuiz(cmd.Context(), tutor.LessonQuizRequest{LessonTitle: args[0]}).Value
			if len(quiz.Questions) == 0 {
				return fmt.Errorf("no questions were generated for %s", args[0])
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting %s with %d questions\n\n", args[0], len(quiz.Questions))
			quizCLI := cli.NewLessonQuizCLI(quiz, cmd.InOrStdin(), cmd.OutOrStdout())
			return quizCLI.Run(cmd.Context(), quizCLI)
		},
	}
}
