package server

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codegem/internal/cache"
	"codegem/internal/gemini"
	"codegem/internal/input"
	"codegem/internal/protocol"
	"codegem/internal/tools"
)

const testTag = "🤖 GEMINI RESPONSE:\n\n"

type stubGen struct {
	reply string
}

func (s stubGen) Generate(ctx context.Context, prompt string, opts gemini.Options) (string, error) {
	return s.reply, nil
}

// rpcLine mirrors the wire shape of one response for assertions.
type rpcLine struct {
	JSONRPC string             `json:"jsonrpc"`
	ID      json.RawMessage    `json:"id"`
	Result  json.RawMessage    `json:"result"`
	Error   *protocol.RPCError `json:"error"`
}

func newTestServer(t *testing.T, gen gemini.Generator) *Server {
	t.Helper()
	t.Setenv(input.EnvInput, "")
	reg := tools.NewRegistry(tools.Deps{
		Generator: gen,
		Cache:     cache.New(5*time.Minute, 100),
		Resolver:  input.NewResolver(100000),
		Version:   "1.0.0",
	})
	return New("gemini-coding", "1.0.0", testTag, reg)
}

// serve feeds lines through a complete session and returns the parsed
// response lines.
func serve(t *testing.T, srv *Server, lines ...string) []rpcLine {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	require.NoError(t, srv.Serve(context.Background(), in, &out))

	var resps []rpcLine
	for _, raw := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if raw == "" {
			continue
		}
		var resp rpcLine
		require.NoError(t, json.Unmarshal([]byte(raw), &resp), "response line must be valid JSON: %s", raw)
		resps = append(resps, resp)
	}
	return resps
}

func resultText(t *testing.T, resp rpcLine) string {
	t.Helper()
	var result protocol.CallResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	return result.Content[0].Text
}

func TestInitialize(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "ok"})
	resps := serve(t, srv, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`)
	require.Len(t, resps, 1)

	resp := resps[0]
	assert.Equal(t, "2.0", resp.JSONRPC)
	assert.Equal(t, "1", string(resp.ID))
	require.Nil(t, resp.Error)

	var result struct {
		ProtocolVersion string              `json:"protocolVersion"`
		Capabilities    map[string]any      `json:"capabilities"`
		ServerInfo      protocol.ServerInfo `json:"serverInfo"`
	}
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, "2024-11-05", result.ProtocolVersion)
	assert.Contains(t, result.Capabilities, "tools")
	assert.Equal(t, "gemini-coding", result.ServerInfo.Name)
	assert.Equal(t, "1.0.0", result.ServerInfo.Version)
}

func TestToolsList(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "ok"})
	resps := serve(t, srv, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)

	var result protocol.ListResult
	require.NoError(t, json.Unmarshal(resps[0].Result, &result))
	assert.Len(t, result.Tools, 15)
}

func TestMethodNotFound(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "ok"})
	resps := serve(t, srv, `{"jsonrpc":"2.0","id":3,"method":"resources/list"}`)
	require.Len(t, resps, 1)

	require.NotNil(t, resps[0].Error)
	assert.Equal(t, protocol.CodeMethodNotFound, resps[0].Error.Code)
	assert.Equal(t, "Method not found: resources/list", resps[0].Error.Message)
	assert.Equal(t, "3", string(resps[0].ID))
}

func TestUnknownTool(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "ok"})
	resps := serve(t, srv, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"gcbogus","arguments":{}}}`)
	require.Len(t, resps, 1)

	require.NotNil(t, resps[0].Error)
	assert.Equal(t, protocol.CodeInternalError, resps[0].Error.Code)
	assert.Equal(t, "Unknown tool: gcbogus", resps[0].Error.Message)
}

func TestMalformedLineSkipped(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "ok"})
	resps := serve(t, srv,
		`this is not json`,
		``,
		`{"jsonrpc":"2.0","id":5,"method":"tools/list"}`,
	)
	require.Len(t, resps, 1, "garbage and blank lines produce no output")
	assert.Equal(t, "5", string(resps[0].ID))
}

func TestToolCall(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "4"})
	resps := serve(t, srv, `{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"name":"gcask","arguments":{"prompt":"2+2?"}}}`)
	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)

	text := resultText(t, resps[0])
	assert.Equal(t, testTag+"4", text)
}

func TestToolCallWithoutInput(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "unused"})
	resps := serve(t, srv, `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"gcreview","arguments":{}}}`)
	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error, "missing input is tool content, not a protocol error")

	text := resultText(t, resps[0])
	assert.Equal(t, testTag+"No code provided. Use code parameter, file_path, or clipboard.", text)
}

func TestToolCallWithoutAnySource(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "unused"})
	resps := serve(t, srv, `{"jsonrpc":"2.0","id":8,"method":"tools/call","params":{"name":"gcask","arguments":{}}}`)
	require.Len(t, resps, 1)
	require.Nil(t, resps[0].Error)

	text := resultText(t, resps[0])
	assert.Equal(t, testTag+"No input provided. Please use: prompt parameter, file_path, GEMINI_INPUT env var, or clipboard.", text)
}

func TestDegradedSession(t *testing.T) {
	t.Setenv(input.EnvInput, "")
	reg := tools.NewRegistry(tools.Deps{Version: "1.0.0", InitError: "connection refused"})
	srv := New("gemini-coding", "1.0.0", testTag, reg)

	resps := serve(t, srv,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"gcask","arguments":{"prompt":"hi"}}}`,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"server_info","arguments":{}}}`,
	)
	require.Len(t, resps, 4)

	assert.Nil(t, resps[0].Error, "initialize succeeds without a backend")

	require.Nil(t, resps[1].Error, "tools/list succeeds without a backend")
	var listed protocol.ListResult
	require.NoError(t, json.Unmarshal(resps[1].Result, &listed))
	require.Len(t, listed.Tools, 1)
	assert.Equal(t, "server_info", listed.Tools[0].Name)

	require.NotNil(t, resps[2].Error)
	assert.Equal(t, protocol.CodeInternalError, resps[2].Error.Code)
	assert.Equal(t, "Unknown tool: gcask", resps[2].Error.Message)

	require.Nil(t, resps[3].Error)
	assert.Equal(t, testTag+"Server v1.0.0 - Gemini error: connection refused", resultText(t, resps[3]))
}

func TestIDEcho(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "ok"})

	t.Run("string id", func(t *testing.T) {
		resps := serve(t, srv, `{"jsonrpc":"2.0","id":"req-9","method":"tools/list"}`)
		require.Len(t, resps, 1)
		assert.Equal(t, `"req-9"`, string(resps[0].ID))
	})

	t.Run("numeric id", func(t *testing.T) {
		resps := serve(t, srv, `{"jsonrpc":"2.0","id":42,"method":"tools/list"}`)
		require.Len(t, resps, 1)
		assert.Equal(t, "42", string(resps[0].ID))
	})
}

func TestSessionSequence(t *testing.T) {
	srv := newTestServer(t, stubGen{reply: "fine"})
	resps := serve(t, srv,
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"gchelp","arguments":{}}}`,
	)
	require.Len(t, resps, 3, "one response line per request line, in order")
	assert.Equal(t, "1", string(resps[0].ID))
	assert.Equal(t, "2", string(resps[1].ID))
	assert.Equal(t, "3", string(resps[2].ID))
	assert.Contains(t, resultText(t, resps[2]), "gcask")
}
