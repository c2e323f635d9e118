// Package server exposes the tutor use cases and the lesson catalogue over HTTP.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/at-ishikawa/genki-tutor/internal/lessons"
	"github.com/at-ishikawa/genki-tutor/internal/tutor"
	"github.com/at-ishikawa/genki-tutor/internal/validation"
)

const homeMessage = "genki-tutor server is running!"

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Request bodies use pointers so that a missing field can be told apart from an empty string.

type quizRequestBody struct {
	Topic      *string `json:"topic" validate:"required"`
	Difficulty *string `json:"difficulty" validate:"required"`
}

type explainRequestBody struct {
	Term *string `json:"term" validate:"required"`
}

type notesRequestBody struct {
	Term    *string `json:"term" validate:"required"`
	Topic   *string `json:"topic"`
	Context *string `json:"context"`
}

type lessonRequestBody struct {
	LessonTitle *string `json:"lesson_title" validate:"required"`
}

// Handler implements the HTTP endpoints.
type Handler struct {
	tutor     *tutor.Service
	catalogue *lessons.Catalogue
	validator *validation.Validator
}

func NewHandler(service *tutor.Service, catalogue *lessons.Catalogue) (*Handler, error) {
	validator, err := validation.New("json")
	if err != nil {
		return nil, fmt.Errorf("validation.New > %w", err)
	}
	return &Handler{
		tutor:     service,
		catalogue: catalogue,
		validator: validator,
	}, nil
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, messageResponse{Message: homeMessage})
}

// Lessons returns the catalogue file. Read failures are reported in the body with status 200.
func (h *Handler) Lessons(w http.ResponseWriter, r *http.Request) {
	catalogue, err := h.catalogue.Load()
	if err != nil {
		slog.Default().ErrorContext(r.Context(), "failed to load the lesson catalogue", slog.Any("error", err))
		writeJSON(w, r, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, r, http.StatusOK, catalogue)
}

func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var body quizRequestBody
	if !h.decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.tutor.Quiz(r.Context(), tutor.QuizRequest{
		Topic:      *body.Topic,
		Difficulty: *body.Difficulty,
	}))
}

func (h *Handler) Explain(w http.ResponseWriter, r *http.Request) {
	var body explainRequestBody
	if !h.decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.tutor.Explain(r.Context(), tutor.ExplainRequest{
		Term: *body.Term,
	}))
}

func (h *Handler) GenerateNotes(w http.ResponseWriter, r *http.Request) {
	var body notesRequestBody
	if !h.decodeBody(w, r, &body) {
		return
	}
	req := tutor.NotesRequest{
		Term:  *body.Term,
		Topic: tutor.DefaultNotesTopic,
	}
	if body.Topic != nil {
		req.Topic = *body.Topic
	}
	if body.Context != nil {
		req.Context = *body.Context
	}
	writeJSON(w, r, http.StatusOK, h.tutor.Notes(r.Context(), req))
}

func (h *Handler) GenerateLessonNotes(w http.ResponseWriter, r *http.Request) {
	var body lessonRequestBody
	if !h.decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.tutor.LessonNotes(r.Context(), tutor.LessonNotesRequest{
		LessonTitle: *body.LessonTitle,
	}))
}

func (h *Handler) GenerateLessonQuiz(w http.ResponseWriter, r *http.Request) {
	var body lessonRequestBody
	if !h.decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, r, http.StatusOK, h.tutor.LessonQuiz(r.Context(), tutor.LessonQuizRequest{
		LessonTitle: *body.LessonTitle,
	}))
}

// decodeBody reads a JSON body into dst and checks required fields.
// On failure it writes a 422 response and returns false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		err = h.validator.Struct(dst)
	} else {
		err = fmt.Errorf("invalid JSON body: %w", err)
	}
	if err != nil {
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

// writeJSON encodes body before writing the status, so an encoding failure
// becomes a 500 with an error object instead of a truncated body.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(body); err != nil {
		slog.Default().ErrorContext(r.Context(), "failed to encode a response", slog.Any("error", err))
		buf.Reset()
		status = http.StatusInternalServerError
		_ = encoder.Encode(errorResponse{Error: fmt.Sprintf("failed to encode the response: %v", err)})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Default().ErrorContext(r.Context(), "failed to write a response", slog.Any("error", err))
	}
}
