package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/genki-tutor/internal/tutor"
)

var (
	errEnd = errors.New("end")
)

//go:generate mockgen -source=quiz_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli Session

type Session interface {
	Session(context context.Context) error
}

// QuizCLI asks multiple choice questions one at a time and keeps the score
type QuizCLI struct {
	questions    []tutor.LessonQuestion
	current      int
	correct      int
	answered     int
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	green        *color.Color
	red          *color.Color
}

func NewQuizCLI(questions []tutor.LessonQuestion, stdin io.Reader, stdout io.Writer) *QuizCLI {
	return &QuizCLI{
		questions:    questions,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		green:        color.New(color.FgGreen),
		red:          color.New(color.FgRed),
	}
}

// NewLessonQuizCLI creates a session over every question of a lesson quiz
func NewLessonQuizCLI(quiz tutor.LessonQuiz, stdin io.Reader, stdout io.Writer) *QuizCLI {
	return NewQuizCLI(quiz.Questions, stdin, stdout)
}

// NewSingleQuizCLI creates a session with the one question of a topic quiz
func NewSingleQuizCLI(quiz tutor.Quiz, stdin io.Reader, stdout io.Writer) *QuizCLI {
	return NewQuizCLI([]tutor.LessonQuestion{
		{
			Question: quiz.Question,
			Choices:  quiz.Choices,
			Answer:   quiz.CorrectAnswer,
		},
	}, stdin, stdout)
}

// Score returns the number of correct answers and answered questions
func (cli *QuizCLI) Score() (int, int) {
	return cli.correct, cli.answered
}

func (cli *QuizCLI) Session(ctx context.Context) error {
	if cli.current >= len(cli.questions) {
		return errEnd
	}
	question := cli.questions[cli.current]

	_, _ = fmt.Fprintf(cli.stdoutWriter, "Q%d. ", cli.current+1)
	_, _ = cli.bold.Fprintln(cli.stdoutWriter, question.Question)
	for i, choice := range question.Choices {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "  %d) %s\n", i+1, choice)
	}
	_, _ = fmt.Fprint(cli.stdoutWriter, "Your answer: ")

	input, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("error reading input: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			_, _ = fmt.Fprintln(cli.stdoutWriter)
			return errEnd
		}
	}

	userAnswer, ok := resolveChoice(question.Choices, input)
	if !ok {
		_, _ = fmt.Fprintf(cli.stdoutWriter, "Enter a number between 1 and %d or the text of a choice.\n\n", len(question.Choices))
		return nil
	}

	cli.answered++
	if userAnswer == question.Answer {
		cli.correct++
		_, _ = fmt.Fprint(cli.stdoutWriter, "✅ ")
		_, _ = cli.green.Fprintln(cli.stdoutWriter, "Correct!")
	} else {
		_, _ = fmt.Fprint(cli.stdoutWriter, "❌ ")
		_, _ = cli.red.Fprintf(cli.stdoutWriter, "Incorrect. The answer is %s\n",
			cli.italic.Sprintf("%s", question.Answer),
		)
	}
	_, _ = fmt.Fprintln(cli.stdoutWriter)

	cli.current++
	return nil
}

// resolveChoice maps the input to a choice, accepting either its 1-based
// number or its exact text. Free text is accepted when there are no choices.
func resolveChoice(choices []string, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}
	if len(choices) == 0 {
		return input, true
	}
	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > len(choices) {
			return "", false
		}
		return choices[n-1], true
	}
	for _, choice := range choices {
		if choice == input {
			return choice, true
		}
	}
	return "", false
}

func (cli *QuizCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

		for {
			select {
			case <-ctx.Done():
				return
			default:
			}

			if err := session.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()
	select {
	case <-ctx.Done():
		_, _ = fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
		correct, answered := cli.Score()
		_, _ = cli.bold.Fprintf(cli.stdoutWriter, "Score: %d / %d\n", correct, answered)
	}
	return nil
}
