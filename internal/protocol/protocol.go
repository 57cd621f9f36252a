// Package protocol defines the line-delimited JSON-RPC 2.0 envelopes the
// server speaks over its standard streams, plus the tool descriptor shapes
// returned by tools/list.
package protocol

import "encoding/json"

// Version is the JSON-RPC protocol tag carried by every envelope.
const Version = "2.0"

// ProtocolVersion is the MCP protocol revision reported by initialize.
const ProtocolVersion = "2024-11-05"

// JSON-RPC error codes. The server only ever emits these two.
const (
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// Request is one inbound line. ID is kept raw so it is echoed back
// verbatim, whatever JSON type the client used.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// CallParams are the params of a tools/call request.
type CallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

// Response is one outbound line. Exactly one of Result/Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the error member of a failed response.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ContentBlock wraps tool output for the tools/call result.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult is the result member of a successful tools/call response.
type CallResult struct {
	Content []ContentBlock `json:"content"`
}

// ListResult is the result member of a tools/list response.
type ListResult struct {
	Tools []Tool `json:"tools"`
}

// InitializeResult is the result member of an initialize response.
type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}

// Capabilities advertises what the server supports. Only tools here.
type Capabilities struct {
	Tools struct{} `json:"tools"`
}

// ServerInfo identifies the server in the initialize handshake.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Tool describes one entry in the tools/list catalog.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema is the declared argument schema of a tool.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes a single declared argument.
type Property struct {
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// NewResult builds a successful response echoing the request ID.
func NewResult(id json.RawMessage, result interface{}) Response {
	return Response{JSONRPC: Version, ID: id, Result: result}
}

// NewError builds an error response echoing the request ID.
func NewError(id json.RawMessage, code int, message string) Response {
	return Response{JSONRPC: Version, ID: id, Error: &RPCError{Code: code, Message: message}}
}

// TextResult wraps plain text in the content-block result shape.
func TextResult(id json.RawMessage, text string) Response {
	return NewResult(id, CallResult{Content: []ContentBlock{{Type: "text", Text: text}}})
}
