package tutor

// DefaultNotesTopic is used when a notes request does not name a topic.
const DefaultNotesTopic = "vocabulary"

type QuizRequest struct {
	Topic      string
	Difficulty string
}

type ExplainRequest struct {
	Term string
}

type NotesRequest struct {
	Term    string
	Topic   string
	Context string
}

type LessonNotesRequest struct {
	LessonTitle string
}

type LessonQuizRequest struct {
	LessonTitle string
}
