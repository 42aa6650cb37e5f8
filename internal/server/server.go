package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/collagekit/collage/internal/collage"
	"github.com/collagekit/collage/pkg/imgio"
)

// maxUploadBytes bounds the in-memory portion of multipart parsing.
const maxUploadBytes = 64 << 20

// Server implements the collage HTTP API.
type Server struct {
	composer  *collage.Composer
	logger    *slog.Logger
	startTime time.Time
	version   string
}

// New creates a new server instance.
func New(version string, logger *slog.Logger) *Server {
	return &Server{
		composer:  collage.New(),
		logger:    logger,
		startTime: time.Now(),
		version:   version,
	}
}

// Register mounts the API routes on r.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Post("/collage", s.handleCollage)
	r.Post("/resize", s.handleResize)
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    int       `json:"uptime"`
	Version   string    `json:"version"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// handleHealth implements the health check endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	response := healthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Uptime:    int(time.Since(s.startTime).Seconds()),
		Version:   s.version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("encoding health response", "err", err)
	}
}

// handleCollage implements the grid composition endpoint. It accepts a
// multipart form with one or more "images" file parts plus "size", "padding"
// and "background" fields, and responds with the composed PNG.
func (s *Server) handleCollage(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_FORM",
			"Request body must be multipart/form-data", requestID)
		return
	}
	defer r.MultipartForm.RemoveAll()

	size, err := formInt(r, "size", 0)
	if err != nil || size <= 0 {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"size must be a positive integer", requestID)
		return
	}

	padding, err := formInt(r, "padding", 0)
	if err != nil || padding < 0 {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"padding must be a non-negative integer", requestID)
		return
	}

	background := r.FormValue("background")
	if _, err := imgio.ParseColor(background); err != nil {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), requestID)
		return
	}

	files := r.MultipartForm.File["images"]
	inputs := make([]imgio.Input, 0, len(files))
	for _, fh := range files {
		data, err := readPart(fh)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "INVALID_FORM",
				fmt.Sprintf("could not read upload %q", fh.Filename), requestID)
			return
		}
		inputs = append(inputs, imgio.FromBytes(data).WithID(fh.Filename))
	}

	result, err := s.composer.Compose(r.Context(), inputs, collage.Options{
		Output:     size,
		Background: background,
		Padding:    padding,
	})
	if err != nil {
		s.writeComposeError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Buffer)))
	w.Header().Set("X-Request-ID", requestID)
	w.Header().Set("X-Grid-Size", strconv.Itoa(result.GridSize))
	w.Header().Set("X-Image-Count", strconv.Itoa(result.Count))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(result.Buffer); err != nil {
		s.logger.Error("writing collage response", "err", err, "request_id", requestID)
	}
}

// handleResize implements the square-crop resize endpoint. It accepts a
// multipart form with a single "image" file part plus a "size" field.
func (s *Server) handleResize(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetReqID(r.Context())

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_FORM",
			"Request body must be multipart/form-data", requestID)
		return
	}
	defer r.MultipartForm.RemoveAll()

	size, err := formInt(r, "size", 0)
	if err != nil || size <= 0 {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"size must be a positive integer", requestID)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) != 1 {
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"exactly one image file is required", requestID)
		return
	}

	data, err := readPart(files[0])
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "INVALID_FORM",
			fmt.Sprintf("could not read upload %q", files[0].Filename), requestID)
		return
	}

	buf, err := s.composer.Resize(r.Context(), imgio.FromBytes(data).WithID(files[0].Filename), size)
	if err != nil {
		s.writeComposeError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(buf); err != nil {
		s.logger.Error("writing resize response", "err", err, "request_id", requestID)
	}
}

// writeComposeError maps core errors onto HTTP responses.
func (s *Server) writeComposeError(w http.ResponseWriter, err error, requestID string) {
	var geomErr *collage.GeometryError
	var inputErr *imgio.InvalidInputError

	switch {
	case errors.Is(err, collage.ErrNoImages):
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), requestID)
	case errors.As(err, &geomErr):
		s.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), requestID)
	case errors.As(err, &inputErr):
		s.writeError(w, http.StatusBadRequest, "INVALID_IMAGE", err.Error(), requestID)
	case errors.Is(err, image.ErrFormat):
		s.writeError(w, http.StatusBadRequest, "INVALID_IMAGE",
			"Uploaded data is not a supported image format", requestID)
	case errors.Is(err, context.DeadlineExceeded):
		s.writeError(w, http.StatusGatewayTimeout, "TIMEOUT",
			"Image processing timed out", requestID)
	default:
		s.logger.Error("composition failed", "err", err, "request_id", requestID)
		s.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Internal server error", requestID)
	}
}

// writeError writes a standard JSON error response.
func (s *Server) writeError(w http.ResponseWriter, statusCode int, errorCode, message, requestID string) {
	response := errorResponse{
		Error:     errorCode,
		Message:   message,
		RequestID: requestID,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		s.logger.Error("encoding error response", "err", err)
	}
}

func formInt(r *http.Request, key string, fallback int) (int, error) {
	v := r.FormValue(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
