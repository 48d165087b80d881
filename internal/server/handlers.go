package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/phrasemill/phrasemill/pkg/phrasemill/internalerr"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract accepts a multipart document upload, runs the full
// pipeline, and returns the mined phrases.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart upload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	// The extractor dispatches on the file extension, so the temp copy
	// keeps the uploaded name's suffix.
	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to buffer upload")
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, "failed to buffer upload")
		return
	}
	if err := tmp.Close(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to buffer upload")
		return
	}

	if v := s.validator.Validate(header.Filename, header.Size); !v.Valid {
		writeError(w, http.StatusBadRequest, v.Error)
		return
	}

	res, err := s.pipeline.ProcessFile(r.Context(), tmp.Name(), s.cfg.Mining)
	if err != nil {
		switch {
		case errors.Is(err, internalerr.ErrInvalidFile), errors.Is(err, internalerr.ErrEmptyText):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("process %s: %v", header.Filename, err)
			writeError(w, http.StatusInternalServerError, "document processing failed")
		}
		return
	}

	// The temp file name is an implementation detail; report the
	// uploaded name instead.
	res.Document.Name = header.Filename
	if s.store != nil {
		if err := s.store.SaveDocument(r.Context(), res.Document); err != nil {
			log.Printf("rename stored document %s: %v", res.Document.ID, err)
		}
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotImplemented, "persistence is disabled")
		return
	}
	docs, err := s.store.ListDocuments(r.Context())
	if err != nil {
		log.Printf("list documents: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list documents")
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleDocumentPhrases(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotImplemented, "persistence is disabled")
		return
	}
	id := chi.URLParam(r, "id")

	if _, ok, err := s.store.GetDocument(r.Context(), id); err != nil {
		log.Printf("get document %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load document")
		return
	} else if !ok {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	phrases, err := s.store.PhrasesByDocument(r.Context(), id)
	if err != nil {
		log.Printf("phrases for %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load phrases")
		return
	}
	writeJSON(w, http.StatusOK, phrases)
}
