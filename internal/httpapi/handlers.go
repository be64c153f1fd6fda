package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mr-romero/slidegrid/pkg/errors"
	"github.com/mr-romero/slidegrid/pkg/grid"
	"github.com/mr-romero/slidegrid/pkg/layout"
	"github.com/mr-romero/slidegrid/pkg/present"
	"github.com/mr-romero/slidegrid/pkg/render"
	"github.com/mr-romero/slidegrid/pkg/slide"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ===== Slides =====

func (s *Server) handleListSlides(w http.ResponseWriter, r *http.Request) {
	ids, err := s.editor.ListSlides(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"slides": ids})
}

func (s *Server) handleCreateSlide(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	doc, err := s.editor.CreateSlide(r.Context(), req.Title)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleGetSlide(w http.ResponseWriter, r *http.Request) {
	doc, err := s.editor.GetSlide(r.Context(), chi.URLParam(r, "slideID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteSlide(w http.ResponseWriter, r *http.Request) {
	if err := s.editor.DeleteSlide(r.Context(), chi.URLParam(r, "slideID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCells(w http.ResponseWriter, r *http.Request) {
	cells, err := s.editor.Cells(r.Context(), chi.URLParam(r, "slideID"))
	if err != nil {
		writeError(w, err)
		return
	}
	// Cell structs cannot key a JSON object; use their "row-col" form.
	out := make(map[string][]slide.Block, len(cells))
	for cell, blocks := range cells {
		out[cell.String()] = blocks
	}
	writeJSON(w, http.StatusOK, map[string]any{"cells": out})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	doc, err := s.editor.GetSlide(r.Context(), chi.URLParam(r, "slideID"))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(render.RenderSVG(doc, render.WithIDs()))
}

// ===== Blocks =====

func (s *Server) handleAddBlock(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind string `json:"kind"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	doc, err := s.editor.AddBlock(r.Context(), chi.URLParam(r, "slideID"), req.Kind)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleDuplicateBlock(w http.ResponseWriter, r *http.Request) {
	doc, err := s.editor.DuplicateBlock(r.Context(),
		chi.URLParam(r, "slideID"), chi.URLParam(r, "blockID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (s *Server) handleDeleteBlock(w http.ResponseWriter, r *http.Request) {
	doc, err := s.editor.DeleteBlock(r.Context(),
		chi.URLParam(r, "slideID"), chi.URLParam(r, "blockID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ===== Layout =====

func (s *Server) handleAssign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BlockID string `json:"blockId"`
		Row     int    `json:"row"`
		Column  int    `json:"column"`
		Policy  string `json:"policy,omitempty"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	policy, err := s.parsePolicy(req.Policy)
	if err != nil {
		writeError(w, err)
		return
	}

	pos := s.cfg.Grid.ClampPosition(grid.Position{Row: req.Row, Column: req.Column})
	doc, err := s.editor.AssignBlock(r.Context(), chi.URLParam(r, "slideID"),
		req.BlockID, pos, policy)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) parsePolicy(name string) (layout.ConflictPolicy, error) {
	switch name {
	case "":
		return s.cfg.Policy(), nil
	case "overwrite":
		return layout.Overwrite, nil
	case "reject":
		return layout.Reject, nil
	default:
		return layout.Overwrite, errors.New(errors.ErrCodeInvalidPolicy, "unknown conflict policy %q", name)
	}
}

func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rows    int `json:"rows"`
		Columns int `json:"columns"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	rows, cols := s.cfg.Grid.ClampDim(req.Rows, req.Columns)
	doc, err := s.editor.ResizeGrid(r.Context(), chi.URLParam(r, "slideID"), rows, cols)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handleSpan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BlockID   string `json:"blockId"`
		Axis      string `json:"axis"`
		Direction string `json:"direction"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	doc, err := s.editor.AdjustSpan(r.Context(), chi.URLParam(r, "slideID"),
		req.BlockID, req.Axis, req.Direction)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) handlePromote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BlockID string `json:"blockId"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	doc, err := s.editor.PromoteColumn(r.Context(), chi.URLParam(r, "slideID"), req.BlockID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// ===== Presentation sessions =====

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LessonID string `json:"lessonId"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sess, err := present.New(req.LessonID, s.cfg.Present.SessionTTL)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleJoinSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.GetByCode(r.Context(), chi.URLParam(r, "joinCode"))
	if err != nil {
		writeError(w, sessionError(err))
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, sessionError(err))
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleAdvanceSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SlideIndex int   `json:"slideIndex"`
		Paused     *bool `json:"paused,omitempty"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	sess, err := s.sessions.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		writeError(w, sessionError(err))
		return
	}

	sess.SlideIndex = req.SlideIndex
	if req.Paused != nil {
		sess.Paused = *req.Paused
	}
	if err := s.sessions.Set(r.Context(), sess); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(r.Context(), chi.URLParam(r, "sessionID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// sessionError translates session sentinels into coded errors.
func sessionError(err error) error {
	switch err {
	case present.ErrNotFound:
		return errors.Wrap(errors.ErrCodeSessionNotFound, err, "session not found")
	case present.ErrExpired:
		return errors.Wrap(errors.ErrCodeSessionExpired, err, "session expired")
	}
	return err
}
