package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/checker"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Dictionary is what the server needs from the loaded vocabulary.
type Dictionary interface {
	checker.Lexicon
	Stats() map[string]int
}

// Server handles the IPC for spell checks
type Server struct {
	dict         Dictionary
	checker      *checker.Checker
	completer    suggest.ICompleter
	config       *config.Config
	decoder      *msgpack.Decoder
	writer       *bufio.Writer
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server on stdin/stdout.
func NewServer(dict Dictionary, completer suggest.ICompleter, cfg *config.Config) *Server {
	return NewServerWithIO(dict, completer, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on the given streams.
func NewServerWithIO(dict Dictionary, completer suggest.ICompleter, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	bw := bufio.NewWriter(w)
	return &Server{
		dict:      dict,
		checker:   checker.New(dict, cfg.Check.SuggestionLimit, checker.WithCacheSize(cfg.Check.CacheSize)),
		completer: completer,
		config:    cfg,
		decoder:   msgpack.NewDecoder(bufio.NewReader(r)),
		writer:    bw,
		encoder:   msgpack.NewEncoder(bw),
		logger:    logger.New("server"),
	}
}

// Start signals readiness and serves requests until EOF.
func (s *Server) Start() error {
	s.logger.Debug("Starting server")
	if err := s.send(StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var raw msgpack.RawMessage
		if err := s.decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debug("Client closed stream", "requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request stream: %v", err)
			return err
		}
		if err := s.handleRequest(raw); err != nil {
			return err
		}
	}
}

// handleRequest decodes one frame and dispatches on its action.
// Only write failures are returned.
func (s *Server) handleRequest(raw msgpack.RawMessage) error {
	s.requestCount++

	var req Request
	if err := msgpack.Unmarshal(raw, &req); err != nil {
		s.logger.Warnf("Unmarshaling request: %v", err)
		return s.sendError("", "invalid request", 400)
	}
	if req.ID == "" {
		return s.sendError("", "missing 'id'", 400)
	}

	switch req.Action {
	case "check":
		return s.handleCheck(req)
	case "contains":
		return s.send(ContainsResponse{ID: req.ID, Word: req.Prefix, Found: s.dict.ContainsWord(req.Prefix)})
	case "complete":
		return s.handleComplete(req)
	case "info":
		stats := s.dict.Stats()
		return s.send(InfoResponse{
			ID:       req.ID,
			Status:   "ok",
			Words:    stats["totalWords"],
			Distinct: stats["distinctWords"],
			Requests: s.requestCount,
		})
	case "health":
		return s.send(StatusResponse{ID: req.ID, Status: "ok"})
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown action: %q", req.Action), 400)
	}
}

func (s *Server) handleCheck(req Request) error {
	words := req.Words
	if len(words) == 0 && req.Text != "" {
		words = checker.ParseWords(req.Text)
	}
	if len(words) > s.config.Server.MaxWords {
		return s.sendError(req.ID, fmt.Sprintf("too many words: %d > %d", len(words), s.config.Server.MaxWords), 400)
	}

	start := time.Now()
	var found []checker.MisspelledWord
	switch {
	case req.Limit == nil || *req.Limit == s.config.Check.SuggestionLimit:
		found = s.checker.Check(words)
	case *req.Limit < 0:
		return s.sendError(req.ID, "limit must be >= 0", 400)
	default:
		found = checker.MisspelledWords(words, s.dict, *req.Limit)
	}
	elapsed := time.Since(start)

	s.logger.Debug("check", "id", req.ID, "words", len(words), "misspelled", len(found), "took", elapsed)
	return s.send(CheckResponse{
		ID:           req.ID,
		Misspellings: found,
		Count:        len(found),
		TimeTaken:    elapsed.Microseconds(),
	})
}

func (s *Server) handleComplete(req Request) error {
	prefix := req.Prefix
	cfg := s.config.Server

	if s.completer == nil {
		return s.sendError(req.ID, "completion is not enabled", 400)
	}
	if len(prefix) < cfg.MinPrefix || prefix == "" {
		return s.sendError(req.ID, fmt.Sprintf("prefix must be at least %d characters", max(cfg.MinPrefix, 1)), 400)
	}
	if len(prefix) > cfg.MaxPrefix {
		return s.sendError(req.ID, fmt.Sprintf("prefix exceeds maximum length of %d characters", cfg.MaxPrefix), 400)
	}

	limit := s.config.CLI.DefaultLimit
	if req.Limit != nil && *req.Limit > 0 {
		limit = *req.Limit
	}
	if cfg.MaxLimit > 0 && limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}

	start := time.Now()
	suggestions := s.completer.Complete(prefix, limit)
	elapsed := time.Since(start)

	ranks := utils.CreateRankList(len(suggestions))
	out := make([]CompletionSuggestion, len(suggestions))
	for i, sg := range suggestions {
		out[i] = CompletionSuggestion{Word: sg.Word, Rank: ranks[i]}
	}

	return s.send(CompletionResponse{
		ID:          req.ID,
		Suggestions: out,
		Count:       len(out),
		TimeTaken:   elapsed.Microseconds(),
	})
}

// send encodes one response and flushes it.
func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Marshaling response: %v", err)
		return err
	}
	return s.writer.Flush()
}

func (s *Server) sendError(id, message string, code int) error {
	s.logger.Debug("request failed", "id", id, "error", message)
	return s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
