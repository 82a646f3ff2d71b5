package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"filevora/internal/agent"
	"filevora/internal/api"
	"filevora/internal/config"
	"filevora/internal/history"
	"filevora/internal/logging"
	"filevora/internal/procapi"
	"filevora/internal/services"
	"filevora/internal/session"
	"filevora/internal/tools"
)

type apiServer struct {
	bind   string
	logger *slog.Logger
	daemon *Daemon

	listener net.Listener
	server   *http.Server
}

func newAPIServer(cfg *config.Config, d *Daemon, logger *slog.Logger) (*apiServer, error) {
	bind := strings.TrimSpace(cfg.Paths.Bind)
	if bind == "" {
		return nil, errors.New("daemon bind address is empty")
	}

	srv := &apiServer{
		bind:   bind,
		logger: logger,
		daemon: d,
	}

	token := cfg.Paths.APIToken
	mux := http.NewServeMux()
	mux.HandleFunc("/api/status", authMiddleware(token, srv.handleStatus))
	mux.HandleFunc("/api/tools", authMiddleware(token, srv.handleTools))
	mux.HandleFunc("/api/tools/", authMiddleware(token, srv.handleTool))
	mux.HandleFunc("/api/jobs", authMiddleware(token, srv.handleJobs))
	mux.HandleFunc("/api/agent", authMiddleware(token, srv.handleAgent))
	mux.HandleFunc("/api/history", authMiddleware(token, srv.handleHistory))
	mux.HandleFunc("/api/subscribe", authMiddleware(token, srv.handleSubscribe))
	mux.HandleFunc("/api/contact", authMiddleware(token, srv.handleContact))
	mux.HandleFunc("/api/messages", authMiddleware(token, srv.handleMessages))

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

func (s *apiServer) start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log().Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}()

	s.log().Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

func (s *apiServer) stop() {
	if s == nil {
		return
	}
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.server.Shutdown(shutdownCtx)
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
}

func (s *apiServer) addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *apiServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	status := s.daemon.Status()
	s.writeJSON(w, http.StatusOK, api.DaemonStatus{
		Running:      status.Running,
		PID:          status.PID,
		Origin:       status.Origin,
		DBPath:       status.DBPath,
		LockFilePath: status.LockFilePath,
		ToolCount:    status.ToolCount,
	})
}

func (s *apiServer) handleTools(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	registry := s.daemon.registry
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		s.writeJSON(w, http.StatusOK, api.ToolListResponse{
			Tools: api.FromDescriptors(registry.ByCategory(tools.Category(category))),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, api.ToolListResponse{Tools: api.FromDescriptors(registry.All())})
}

func (s *apiServer) handleTool(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/tools/")
	if id == "" || strings.Contains(id, "/") {
		s.writeError(w, http.StatusNotFound, "tool not found")
		return
	}
	desc, ok := s.daemon.registry.Lookup(id)
	if !ok {
		s.writeError(w, http.StatusNotFound, "tool not found")
		return
	}
	s.writeJSON(w, http.StatusOK, api.ToolResponse{Tool: api.FromDescriptor(desc)})
}

func (s *apiServer) handleJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var sub api.JobSubmission
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		parsed, cleanup, err := s.parseMultipartJob(r)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		defer cleanup()
		sub = parsed
	} else if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid job payload")
		return
	}
	desc, ok := s.daemon.registry.Lookup(sub.ToolID)
	if !ok {
		s.writeError(w, http.StatusNotFound, "tool not found")
		return
	}
	if desc.ComingSoon() {
		s.writeError(w, http.StatusConflict, desc.Name+" is not available yet")
		return
	}
	if desc.Interactive {
		s.writeError(w, http.StatusUnprocessableEntity, desc.Name+" runs client side and takes no job submissions")
		return
	}
	if len(sub.Files) == 0 {
		s.writeError(w, http.StatusBadRequest, "no input files provided")
		return
	}

	requestID := uuid.NewString()
	ctx := services.WithRequestID(r.Context(), requestID)
	ctx = services.WithTool(ctx, desc.ID)
	logger := s.log().With(
		logging.String(logging.FieldCorrelationID, requestID),
		logging.String(logging.FieldTool, desc.ID))

	sess := session.New(desc, session.Options{
		UploadTickMillis:  s.daemon.cfg.Progress.UploadTickMillis,
		ProcessTickMillis: s.daemon.cfg.Progress.ProcessTickMillis,
		UploadTarget:      s.daemon.cfg.Progress.UploadTarget,
		ProcessTarget:     s.daemon.cfg.Progress.ProcessTarget,
	})
	sess.SelectFiles(sub.Files...)

	result, err := sess.Run(ctx, s.daemon.client, procapi.JobParams{
		Format:  sub.Format,
		Angle:   sub.Angle,
		Quality: sub.Quality,
		DPI:     sub.DPI,
		Level:   sub.Level,
		Manual:  sub.Manual,
	})

	fileName := sess.Files()
	primary := ""
	if len(fileName) > 0 {
		primary = filepath.Base(fileName[0])
	}
	if err != nil {
		if !services.IsSilent(err) {
			logger.Error("job failed", logging.Error(err))
			s.recordConversion(ctx, history.Conversion{
				ToolID:   desc.ID,
				FileName: primary,
				Status:   history.StatusFailed,
			})
		}
		s.writeServiceError(w, err)
		return
	}

	logger.Info("job completed", logging.String("filename", result.Filename))
	s.recordConversion(ctx, history.Conversion{
		ToolID:         desc.ID,
		FileName:       primary,
		OutputFileName: result.Filename,
		DownloadURL:    result.DownloadURL,
		Status:         history.StatusSuccess,
	})

	if email := strings.TrimSpace(sub.Email); email != "" {
		if err := s.daemon.client.SendDownloadLink(ctx, email, result.DownloadURL, result.Filename); err != nil {
			logger.Warn("email delivery failed", logging.Error(err))
		}
	}

	s.writeJSON(w, http.StatusOK, api.JobResponse{
		RequestID:        requestID,
		ToolID:           desc.ID,
		DownloadURL:      result.DownloadURL,
		Filename:         result.Filename,
		OriginalSize:     result.OriginalSize,
		CompressedSize:   result.CompressedSize,
		ReductionPercent: result.ReductionPercent,
	})
}

func (s *apiServer) handleAgent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid agent payload")
		return
	}
	hints := make([]agent.FileHint, 0, len(req.Files))
	for _, f := range req.Files {
		hints = append(hints, agent.FileHint{Name: f.Name, MIME: f.MIME})
	}
	res, err := s.daemon.resolver.Resolve(agent.Request{Text: req.Text, Files: hints})
	if err != nil {
		if errors.Is(err, agent.ErrNoMatch) {
			s.writeError(w, http.StatusNotFound, "no matching tool")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromResolution(res))
}

func (s *apiServer) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	rows, err := s.daemon.store.RecentConversions(r.Context(), query.Get("user"), limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.HistoryResponse{Conversions: api.FromConversions(rows)})
}

func (s *apiServer) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid subscribe payload")
		return
	}
	sub, err := s.daemon.store.AddSubscriber(r.Context(), req.Email, req.Source)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromSubscriber(*sub))
}

func (s *apiServer) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	var req api.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid contact payload")
		return
	}
	msg, err := s.daemon.store.AddMessage(r.Context(), history.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Message,
	})
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.FromMessage(*msg))
}

func (s *apiServer) handleMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	query := r.URL.Query()
	unread := query.Get("unread") == "1" || strings.EqualFold(query.Get("unread"), "true")
	limit, _ := strconv.Atoi(query.Get("limit"))
	rows, err := s.daemon.store.Messages(r.Context(), unread, limit)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, api.MessageListResponse{Messages: api.FromMessages(rows)})
}

// parseMultipartJob spools uploaded file parts into a temporary directory so
// the session can stream them to the backend the same way it streams local
// files. The caller must invoke cleanup once the job settles.
func (s *apiServer) parseMultipartJob(r *http.Request) (api.JobSubmission, func(), error) {
	noop := func() {}
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return api.JobSubmission{}, noop, errors.New("invalid multipart payload")
	}

	sub := api.JobSubmission{
		ToolID: r.FormValue("toolId"),
		Format: r.FormValue("format"),
		Level:  r.FormValue("level"),
		Email:  r.FormValue("email"),
	}
	sub.Angle, _ = strconv.Atoi(r.FormValue("angle"))
	sub.Quality, _ = strconv.Atoi(r.FormValue("quality"))
	sub.DPI, _ = strconv.Atoi(r.FormValue("dpi"))
	sub.Manual, _ = strconv.ParseBool(r.FormValue("manual"))

	parts := append(r.MultipartForm.File["file"], r.MultipartForm.File["files"]...)
	if len(parts) == 0 {
		return api.JobSubmission{}, noop, errors.New("no file parts in submission")
	}

	dir, err := os.MkdirTemp("", "filevora-job-")
	if err != nil {
		return api.JobSubmission{}, noop, fmt.Errorf("spool uploads: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(dir) }

	for _, header := range parts {
		name := filepath.Base(strings.TrimSpace(header.Filename))
		if name == "" || name == "." || name == string(filepath.Separator) {
			cleanup()
			return api.JobSubmission{}, noop, errors.New("file part has no name")
		}
		src, err := header.Open()
		if err != nil {
			cleanup()
			return api.JobSubmission{}, noop, fmt.Errorf("open upload %s: %w", name, err)
		}
		target := filepath.Join(dir, name)
		dst, err := os.Create(target)
		if err != nil {
			src.Close()
			cleanup()
			return api.JobSubmission{}, noop, fmt.Errorf("spool %s: %w", name, err)
		}
		_, err = io.Copy(dst, src)
		src.Close()
		if closeErr := dst.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			cleanup()
			return api.JobSubmission{}, noop, fmt.Errorf("spool %s: %w", name, err)
		}
		sub.Files = append(sub.Files, target)
	}
	return sub, cleanup, nil
}

func (s *apiServer) recordConversion(ctx context.Context, conv history.Conversion) {
	if _, err := s.daemon.store.RecordConversion(ctx, conv); err != nil {
		s.log().Warn("failed to record conversion", logging.Error(err))
	}
}

func (s *apiServer) writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrUnavailable):
		status = http.StatusBadGateway
	case errors.Is(err, services.ErrCancelled):
		status = http.StatusConflict
	}
	s.writeError(w, status, services.UserMessage(err))
}

func (s *apiServer) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log().Error("failed to encode response", logging.Error(err))
	}
}

func (s *apiServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

func (s *apiServer) log() *slog.Logger {
	if s.logger != nil {
		return s.logger.With(logging.String(logging.FieldComponent, "api-server"))
	}
	return logging.NewNop()
}
