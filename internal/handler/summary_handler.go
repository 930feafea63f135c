// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"io"
	"net/http"

	"doc-summarizer/internal/domain"
	apperrors "doc-summarizer/pkg/errors"
)

const (
	documentField      = "document"
	summaryLengthField = "summaryLength"

	// Parts above this size spill to temporary files during multipart parsing.
	multipartMemory = 32 << 20

	successMessage = "Summary generated successfully!"
)

// SummarizeResponse is the body of a successful summarize call.
type SummarizeResponse struct {
	Message string `json:"message"`
	Summary string `json:"summary"`
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SummaryHandler serves the upload-and-summarize endpoint.
type SummaryHandler struct {
	summaryService domain.SummaryService
	logger         domain.Logger
	maxFileSize    int64
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(summaryService domain.SummaryService, logger domain.Logger, maxFileSize int64) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
		maxFileSize:    maxFileSize,
	}
}

// Summarize handles POST /api/summarize.
// Any pipeline failure is logged with its cause and answered with a generic message.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	req, err := h.readUpload(r)
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}
	if err != nil {
		h.fail(w, r, req, err)
		return
	}

	resp, err := h.summaryService.Summarize(r.Context(), req)
	if err != nil {
		h.fail(w, r, req, err)
		return
	}

	h.logger.Info("Summary generated",
		"request_id", RequestIDFromContext(r.Context()),
		"filename", req.Filename,
		"media_type", req.MediaType,
		"summary_length", req.SummaryLength,
	)
	writeJSON(w, http.StatusOK, SummarizeResponse{
		Message: successMessage,
		Summary: resp.SummaryText,
	})
}

// readUpload builds the UploadRequest from the multipart body.
func (h *SummaryHandler) readUpload(r *http.Request) (domain.UploadRequest, error) {
	var req domain.UploadRequest

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return req, apperrors.NewFileTooLargeError(maxErr.Limit)
		}
		// Not multipart, or malformed: either way no file could be read.
		return req, apperrors.NewMissingFileError()
	}

	file, header, err := r.FormFile(documentField)
	if err != nil {
		return req, apperrors.NewMissingFileError()
	}
	defer file.Close()

	length, ok := domain.ParseSummaryLength(r.FormValue(summaryLengthField))
	if !ok {
		h.logger.Warn("Unknown summary length, using default",
			"request_id", RequestIDFromContext(r.Context()),
			"value", r.FormValue(summaryLengthField),
			"default", length,
		)
	}

	req.Filename = header.Filename
	req.MediaType = domain.ParseMediaType(header.Header.Get("Content-Type"))
	req.SummaryLength = length

	data, err := io.ReadAll(file)
	if err != nil {
		return req, apperrors.NewInternalError("failed to read upload", err)
	}
	req.FileBytes = data

	return req, nil
}

func (h *SummaryHandler) fail(w http.ResponseWriter, r *http.Request, req domain.UploadRequest, err error) {
	status := apperrors.GetStatusCode(err)
	fields := []interface{}{
		"request_id", RequestIDFromContext(r.Context()),
		"status", status,
		"filename", req.Filename,
		"media_type", req.MediaType,
	}
	if appErr, ok := apperrors.As(err); ok {
		fields = append(fields, "type", appErr.Type)
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("Error during summarization", err, fields...)
	} else {
		h.logger.Warn("Summarize request rejected", append(fields, "error", err)...)
	}

	writeError(w, status, apperrors.PublicMessage(err))
}
