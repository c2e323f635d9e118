package tutor

// The validate tags are only checked when strict normalization is enabled.

type Quiz struct {
	Question      string   `json:"question" validate:"required"`
	Choices       []string `json:"choices" validate:"len=4"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

type Explanation struct {
	Explanation string   `json:"explanation" validate:"required"`
	Examples    []string `json:"examples" validate:"min=1"`
}

type Notes struct {
	Summary  string   `json:"summary" validate:"required"`
	Usage    string   `json:"usage"`
	Examples []string `json:"examples"`
}

type LessonNotes struct {
	Title         string   `json:"title"`
	GrammarPoints []string `json:"grammar_points" validate:"min=1"`
	Explanations  []string `json:"explanations"`
	Examples      []string `json:"examples"`
}

type LessonQuiz struct {
	Title     string           `json:"title"`
	Questions []LessonQuestion `json:"questions" validate:"min=1,dive"`
}

type LessonQuestion struct {
	Question string   `json:"question" validate:"required"`
	Choices  []string `json:"choices" validate:"len=4"`
	Answer   string   `json:"answer" validate:"required"`
}

func QuizFallback() Quiz {
	return Quiz{
		Question: "Failed to generate quiz.",
		Choices:  []string{},
	}
}

func ExplanationFallback() Explanation {
	return Explanation{
		Explanation: "Failed to generate explanation.",
		Examples:    []string{},
	}
}

func NotesFallback() Notes {
	return Notes{
		Summary:  "Failed to generate notes.",
		Examples: []string{},
	}
}

func LessonNotesFallback(lessonTitle string) LessonNotes {
	return LessonNotes{
		Title:         lessonTitle,
		GrammarPoints: []string{},
		Explanations:  []string{},
		Examples:      []string{},
	}
}

func LessonQuizFallback(lessonTitle string) LessonQuiz {
	return LessonQuiz{
		Title:     lessonTitle,
		Questions: []LessonQuestion{},
	}
}
