// Package server implements the stdio JSON-RPC loop. Requests arrive one
// JSON object per line on stdin; responses leave one JSON object per line
// on stdout. Everything else (logs included) stays off stdout.
package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"codegem/internal/logging"
	"codegem/internal/protocol"
	"codegem/internal/tools"
)

// maxLineBytes bounds a single request line. Tool arguments can carry
// whole source files, so the scanner buffer has to be generous.
const maxLineBytes = 4 * 1024 * 1024

// Server dispatches JSON-RPC requests against a tool registry.
type Server struct {
	name        string
	version     string
	responseTag string
	registry    *tools.Registry
}

// New builds a server around registry. responseTag is prepended to every
// successful tool result.
func New(name, version, responseTag string, registry *tools.Registry) *Server {
	return &Server{
		name:        name,
		version:     version,
		responseTag: responseTag,
		registry:    registry,
	}
}

// Serve reads newline-delimited requests from r until EOF, writing one
// response line to w per well-formed request. Lines that do not parse as
// JSON-RPC are dropped silently so a stray log line from a confused
// client cannot wedge the session.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	logging.Server("listening on stdio as %s v%s", s.name, s.version)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			logging.ServerWarn("dropping unparseable line: %v", err)
			continue
		}

		resp := s.dispatch(ctx, &req)
		if err := writeResponse(w, resp); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read request stream: %w", err)
	}
	logging.Server("stdin closed, shutting down")
	return nil
}

// dispatch routes a single request. Panics in handlers are converted to
// internal errors so one bad request cannot kill the session.
func (s *Server) dispatch(ctx context.Context, req *protocol.Request) (resp protocol.Response) {
	reqID := uuid.NewString()[:8]
	logging.ServerDebug("[%s] -> %s", reqID, req.Method)

	defer func() {
		if r := recover(); r != nil {
			logging.ServerWarn("[%s] recovered from panic: %v", reqID, r)
			resp = protocol.NewError(req.ID, protocol.CodeInternalError, fmt.Sprintf("Internal error: %v", r))
		}
	}()

	switch req.Method {
	case "initialize":
		return protocol.NewResult(req.ID, protocol.InitializeResult{
			ProtocolVersion: protocol.ProtocolVersion,
			Capabilities:    protocol.Capabilities{},
			ServerInfo:      protocol.ServerInfo{Name: s.name, Version: s.version},
		})
	case "tools/list":
		return protocol.NewResult(req.ID, protocol.ListResult{Tools: s.registry.List()})
	case "tools/call":
		return s.callTool(ctx, reqID, req)
	default:
		logging.ServerWarn("[%s] unknown method %q", reqID, req.Method)
		return protocol.NewError(req.ID, protocol.CodeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method))
	}
}

func (s *Server) callTool(ctx context.Context, reqID string, req *protocol.Request) protocol.Response {
	var params protocol.CallParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return protocol.NewError(req.ID, protocol.CodeInternalError, fmt.Sprintf("Internal error: %v", err))
		}
	}

	handler, ok := s.registry.Handler(params.Name)
	if !ok {
		logging.ToolsDebug("[%s] unknown tool %q", reqID, params.Name)
		return protocol.NewError(req.ID, protocol.CodeInternalError, fmt.Sprintf("Unknown tool: %s", params.Name))
	}

	logging.Tools("[%s] call %s", reqID, params.Name)
	text := handler(ctx, tools.Args(params.Arguments))
	return protocol.TextResult(req.ID, s.responseTag+text)
}

// writeResponse marshals resp and writes it as a single newline-terminated
// line. No buffering: each response must be visible to the client as soon
// as dispatch returns.
func writeResponse(w io.Writer, resp protocol.Response) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
