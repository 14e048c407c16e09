package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/uprating-calculator/internal/calculator"
	"github.com/iwvelando/uprating-calculator/pkg/constants"
	"github.com/iwvelando/uprating-calculator/pkg/output"
	"github.com/iwvelando/uprating-calculator/pkg/rounding"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

// Options configures the HTTP handler.
type Options struct {
	Calculator     *calculator.Calculator
	Defaults       calculator.Input
	MaxRequestSize int64
	AllowedOrigins []string
	Version        string
}

type handler struct {
	logger         *zap.Logger
	calc           *calculator.Calculator
	defaults       calculator.Input
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web form and calculation API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxRequestSize := opts.MaxRequestSize
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	h := &handler{
		logger:         logger,
		calc:           opts.Calculator,
		defaults:       opts.Defaults,
		maxRequestSize: maxRequestSize,
		version:        trimmedVersion,
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(newCORS(origins).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate", h.handleCalculate)
		r.Get("/parameters", h.handleParameters)
		r.Get("/version", h.handleVersion)
		r.Get("/health", h.handleHealth)
	})

	// Static assets (web form)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))

	return r
}

func newCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		MaxAge:         300,
	})
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Debug("request served",
				zap.String("op", "server.requestLogger"),
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

type calculateResponse struct {
	*calculator.Result
	CSV      string `json:"csv"`
	Duration string `json:"duration"`
}

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

type parameterOption struct {
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
}

type parametersResponse struct {
	Parameters     []parameterOption `json:"parameters"`
	Defaults       calculator.Input  `json:"defaults"`
	RoundingMethod []rounding.Method `json:"roundingMethods"`
	CeilingYear    int               `json:"ceilingYear"`
	MinStartYear   int               `json:"minStartYear"`
	MaxHorizon     int               `json:"maxHorizon"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)

	in := h.defaults
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&in); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), "", op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), "", op)
		return
	}

	result, err := h.calc.Run(in)
	if err != nil {
		switch {
		case errors.Is(err, calculator.ErrInvalidInput), errors.Is(err, calculator.ErrUnresolvableParameter):
			h.respondError(w, r, http.StatusBadRequest, err.Error(), "", op)
		default:
			h.respondError(w, r, http.StatusInternalServerError, err.Error(), calculator.Hint, op)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, calculateResponse{
		Result:   result,
		CSV:      output.CsvString(result),
		Duration: result.Duration.String(),
	})
}

func (h *handler) handleParameters(w http.ResponseWriter, r *http.Request) {
	options := h.calc.Options()
	response := parametersResponse{
		Parameters:     make([]parameterOption, 0, len(options)),
		Defaults:       h.defaults,
		RoundingMethod: rounding.Methods(),
		CeilingYear:    h.calc.Limits().CeilingYear,
		MinStartYear:   constants.MinStartYear,
		MaxHorizon:     constants.MaxHorizon,
	}
	for _, path := range options {
		response.Parameters = append(response.Parameters, parameterOption{
			Path:        path,
			Description: h.calc.Describe(path),
		})
	}
	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg, hint, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.String("requestId", middleware.GetReqID(r.Context())),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, errorResponse{Error: msg, Hint: hint})
}

// writeJSON encodes payload before committing the status so an encoding
// failure still reaches the client as a 500.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.String("op", "server.writeJSON"),
			zap.Int("status", status),
			zap.Error(err),
		)
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{
			Error: fmt.Sprintf("%v: failed to encode response", calculator.ErrCalculation),
			Hint:  calculator.Hint,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response", zap.String("op", "server.writeJSON"), zap.Error(err))
	}
}
