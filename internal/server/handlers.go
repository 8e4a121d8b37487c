package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/exampaper/go-exampaper/internal/config"
	"github.com/exampaper/go-exampaper/internal/translit"
	"github.com/exampaper/go-exampaper/pkg/exampaper"
)

// Handlers bundles the HTTP endpoints of the paper service.
type Handlers struct {
	cfg       *config.App
	log       zerolog.Logger
	sessions  *SessionManager
	translit  *translit.Client
	assembler *exampaper.Assembler
}

// NewHandlers wires the endpoint set.
func NewHandlers(cfg *config.App, log zerolog.Logger, tr *translit.Client) *Handlers {
	return &Handlers{
		cfg:       cfg,
		log:       log,
		sessions:  NewSessionManager(),
		translit:  tr,
		assembler: exampaper.NewAssembler(exampaper.WithLogger(log)),
	}
}

// CreateSession starts a fresh authoring session.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Create()
	h.log.Info().Str("session", sess.ID).Msg("session created")
	writeJSON(w, http.StatusCreated, map[string]string{"id": sess.ID})
}

// UploadTemplate stores the session's template after validating that the
// bytes parse as a DOCX package.
func (h *Handlers) UploadTemplate(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "template upload too large")
		return
	}

	if _, err := exampaper.OpenTemplate(body); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.SetTemplate(body)
	w.WriteHeader(http.StatusNoContent)
}

// AddQuestion appends one question to the session store. With
// ?transliterate=1 the text content is converted to the target script
// before the question is stored; conversion failures silently keep the
// typed text.
func (h *Handlers) AddQuestion(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "question payload too large")
		return
	}

	q, err := exampaper.UnmarshalQuestion(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if wantTransliteration(r) {
		q = h.transliterateQuestion(r, q)
	}

	sess.Store.Append(q)
	questionsAdded.WithLabelValues(variantName(q)).Inc()
	writeJSON(w, http.StatusCreated, map[string]int{"count": sess.Store.Len()})
}

// ListQuestions returns the summary view of the session's questions.
func (h *Handlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	type entry struct {
		Index int    `json:"index"`
		Type  string `json:"type"`
		Label string `json:"label"`
	}

	snapshot := sess.Store.Snapshot()
	entries := make([]entry, 0, len(snapshot))
	for i, q := range snapshot {
		entries = append(entries, entry{
			Index: i + 1,
			Type:  variantName(q),
			Label: summarize(q),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"questions": entries})
}

// ClearQuestions resets the session store.
func (h *Handlers) ClearQuestions(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	sess.Store.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// GeneratePaper assembles the paper and streams the DOCX. Assembly is
// all-or-nothing: on failure no output bytes are delivered.
func (h *Handlers) GeneratePaper(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	out, err := exampaper.Generate(sess.Template(), sess.Store.Snapshot())
	if err != nil {
		status, reason := classifyAssemblyError(err)
		generateFailures.WithLabelValues(reason).Inc()
		h.log.Warn().Err(err).Str("session", sess.ID).Str("reason", reason).Msg("paper generation failed")
		writeError(w, status, err.Error())
		return
	}

	papersGenerated.Inc()
	w.Header().Set("Content-Type", exampaper.OutputContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exampaper.OutputFilename))
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	_, _ = w.Write(out)
}

func (h *Handlers) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	sess, ok := h.sessions.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return nil, false
	}
	return sess, true
}

func (h *Handlers) transliterateQuestion(r *http.Request, q exampaper.Question) exampaper.Question {
	ctx := r.Context()
	switch q := q.(type) {
	case exampaper.TextQuestion:
		return exampaper.TextQuestion{Content: h.translit.Transliterate(ctx, q.Content)}
	case exampaper.MatchQuestion:
		out := exampaper.MatchQuestion{
			Left:  make([]string, len(q.Left)),
			Right: make([]string, len(q.Right)),
		}
		for i, item := range q.Left {
			out.Left[i] = h.translit.Transliterate(ctx, item)
		}
		for i, item := range q.Right {
			out.Right[i] = h.translit.Transliterate(ctx, item)
		}
		return out
	default:
		// Image captions and table cells are stored as typed.
		return q
	}
}

func wantTransliteration(r *http.Request) bool {
	v := r.URL.Query().Get("transliterate")
	return v == "1" || v == "true"
}

func classifyAssemblyError(err error) (int, string) {
	switch {
	case exampaper.IsTemplateMissing(err):
		return http.StatusConflict, "template_missing"
	case exampaper.IsTemplateInvalid(err):
		return http.StatusConflict, "template_invalid"
	case exampaper.IsEmptyQuestionSet(err):
		return http.StatusConflict, "empty_question_set"
	case exampaper.IsImageDecode(err):
		return http.StatusUnprocessableEntity, "image_decode"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func variantName(q exampaper.Question) string {
	switch q.(type) {
	case exampaper.TextQuestion:
		return "text"
	case exampaper.ImageQuestion:
		return "image"
	case exampaper.MatchQuestion:
		return "match"
	case exampaper.TableQuestion:
		return "table"
	default:
		return "unknown"
	}
}

// summarize mirrors the authoring surface's "Questions Added" view.
func summarize(q exampaper.Question) string {
	switch q := q.(type) {
	case exampaper.TextQuestion:
		return q.Content
	case exampaper.ImageQuestion:
		return "Image Question"
	case exampaper.MatchQuestion:
		return "Match the Following"
	case exampaper.TableQuestion:
		return fmt.Sprintf("Table (%d x %d)", q.Rows, q.Cols)
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
