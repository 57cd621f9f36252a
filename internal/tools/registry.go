// Package tools holds the static tool catalog, the per-tool prompt
// builders, and the handlers the dispatch engine invokes.
package tools

import (
	"context"
	"fmt"

	"codegem/internal/cache"
	"codegem/internal/gemini"
	"codegem/internal/input"
	"codegem/internal/logging"
	"codegem/internal/protocol"
)

// Handler executes one tool call and returns the textual result. All
// tool-level failures (missing input, backend errors) come back as text,
// never as errors; the protocol layer only sees errors for unknown tools.
type Handler func(ctx context.Context, args Args) string

// Deps are the collaborators a registry needs. A nil Generator puts the
// registry in degraded mode: only server_info is available.
type Deps struct {
	Generator gemini.Generator
	Cache     *cache.ResponseCache
	Resolver  *input.Resolver
	Version   string
	InitError string // recorded Gemini init failure, shown by server_info
}

// Registry is the immutable tool catalog, built exactly once at startup.
type Registry struct {
	tools    []protocol.Tool
	handlers map[string]Handler
}

// NewRegistry constructs the catalog. Availability of the generation
// backend is decided here, once; the registry never changes afterwards.
func NewRegistry(deps Deps) *Registry {
	r := &Registry{handlers: make(map[string]Handler)}

	degraded := deps.Generator == nil
	r.handlers["server_info"] = serverInfoHandler(deps, degraded)

	if degraded {
		r.tools = degradedCatalog()
		logging.Tools("registry built in degraded mode: %s", deps.InitError)
		return r
	}

	run := &runner{gen: deps.Generator, cache: deps.Cache}
	resolve := deps.Resolver.Resolve

	r.tools = fullCatalog()
	r.handlers["gchelp"] = func(ctx context.Context, args Args) string {
		return helpContent(args.String("category", "all"), deps.Version)
	}
	r.handlers["gcask"] = func(ctx context.Context, args Args) string {
		prompt := resolve(args, "prompt")
		if prompt == "" {
			return "No input provided. Please use: prompt parameter, file_path, GEMINI_INPUT env var, or clipboard."
		}
		return run.generate(ctx, askPrompt(prompt), 0.5, args.Bool("fast", false), true)
	}
	r.handlers["gcspec"] = func(ctx context.Context, args Args) string {
		spec := resolve(args, "specification")
		if spec == "" {
			return "No specification provided. Use specification parameter, file_path, or clipboard."
		}
		return run.generate(ctx, specPrompt(spec, args.String("type", "general")), 0.2, false, true)
	}
	r.handlers["gcarch"] = func(ctx context.Context, args Args) string {
		arch := resolve(args, "architecture")
		if arch == "" {
			return "No architecture description provided. Use architecture parameter, file_path, or clipboard."
		}
		return run.generate(ctx, archPrompt(arch, args.String("focus", "general")), 0.3, false, true)
	}
	r.handlers["gcapi"] = func(ctx context.Context, args Args) string {
		requirements := resolve(args, "requirements")
		if requirements == "" {
			return "No API requirements provided. Use requirements parameter, file_path, or clipboard."
		}
		return run.generate(ctx, apiPrompt(args.String("type", ""), requirements), 0.2, false, true)
	}
	r.handlers["gcreview"] = func(ctx context.Context, args Args) string {
		code := resolve(args, "code")
		if code == "" {
			return msgNoCode
		}
		return run.generate(ctx, reviewPrompt(code, args.String("focus", "general")), 0.2, false, true)
	}
	r.handlers["gcrefactor"] = func(ctx context.Context, args Args) string {
		code := resolve(args, "code")
		goal := args.String("goal", "")
		if code == "" {
			return msgNoCode
		}
		if goal == "" {
			return "No refactoring goal specified. Please provide a goal (readability, performance, maintainability, etc.)"
		}
		return run.generate(ctx, refactorPrompt(code, goal), 0.2, false, true)
	}
	r.handlers["gcperf"] = func(ctx context.Context, args Args) string {
		code := resolve(args, "code")
		if code == "" {
			return msgNoCode
		}
		return run.generate(ctx, perfPrompt(code, args.String("context", "general")), 0.2, false, true)
	}
	r.handlers["gcsecurity"] = func(ctx context.Context, args Args) string {
		code := resolve(args, "code")
		if code == "" {
			return msgNoCode
		}
		return run.generate(ctx, securityPrompt(code, args.String("level", "basic")), 0.1, false, true)
	}
	r.handlers["gctest"] = func(ctx context.Context, args Args) string {
		code := resolve(args, "code")
		if code == "" {
			return msgNoCode
		}
		return run.generate(ctx, testPrompt(code, args.String("type", "unit")), 0.3, false, true)
	}
	r.handlers["gcdebug"] = func(ctx context.Context, args Args) string {
		errMsg := resolve(args, "error")
		if errMsg == "" {
			return "No error message provided. Use error parameter or clipboard."
		}
		return run.generate(ctx, debugPrompt(errMsg, args.String("context", "")), 0.2, false, true)
	}
	r.handlers["gcexplain"] = func(ctx context.Context, args Args) string {
		code := resolve(args, "code")
		if code == "" {
			return msgNoCode
		}
		return run.generate(ctx, explainPrompt(code, args.String("level", "intermediate")), 0.3, false, true)
	}
	r.handlers["gcdeps"] = func(ctx context.Context, args Args) string {
		deps := resolve(args, "dependencies")
		if deps == "" {
			return "No dependencies provided. Use dependencies parameter, file_path, or clipboard."
		}
		return run.generate(ctx, depsPrompt(deps, args.String("focus", "general")), 0.2, false, true)
	}
	r.handlers["gccomplete"] = func(ctx context.Context, args Args) string {
		codeContext := resolve(args, "context")
		request := args.String("request", "")
		if request == "" {
			return "No completion request specified. Please provide what you want to complete."
		}
		return run.generate(ctx, completePrompt(codeContext, request), 0.2, false, true)
	}
	r.handlers["gcdocs"] = func(ctx context.Context, args Args) string {
		code := resolve(args, "code")
		if code == "" {
			return msgNoCode
		}
		return run.generate(ctx, docsPrompt(code, args.String("type", "comprehensive")), 0.3, false, true)
	}

	return r
}

const msgNoCode = "No code provided. Use code parameter, file_path, or clipboard."

// List returns the catalog snapshot served by tools/list.
func (r *Registry) List() []protocol.Tool {
	return r.tools
}

// Handler looks up a tool handler by exact, case-sensitive name.
func (r *Registry) Handler(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// serverInfoHandler reports status in both healthy and degraded modes.
func serverInfoHandler(deps Deps, degraded bool) Handler {
	return func(ctx context.Context, args Args) string {
		if degraded {
			return fmt.Sprintf("Server v%s - Gemini error: %s", deps.Version, deps.InitError)
		}
		clipboardStatus := "enabled"
		if !input.ClipboardAvailable() {
			clipboardStatus = "disabled"
		}
		return fmt.Sprintf("Gemini Coding MCP Server v%s - Connected and ready with 15 IDE-friendly tools! Clipboard support: %s",
			deps.Version, clipboardStatus)
	}
}

// runner funnels every generation through the response cache.
type runner struct {
	gen   gemini.Generator
	cache *cache.ResponseCache
}

// generate performs a cached backend call. Backend failures are converted
// to classified user-facing text and are never cached. Only responses at
// or below the low-temperature threshold are stored; with useCache false
// the cache is not consulted at all.
func (r *runner) generate(ctx context.Context, prompt string, temperature float64, fast, useCache bool) string {
	useCache = useCache && r.cache != nil

	var key string
	if useCache {
		key = cache.Fingerprint(prompt, temperature, fast)
		if text, ok := r.cache.Get(key); ok {
			logging.ToolsDebug("cache hit temp=%.2f fast=%t", temperature, fast)
			return text
		}
	}

	text, err := r.gen.Generate(ctx, prompt, gemini.Options{Temperature: temperature, Fast: fast})
	if err != nil {
		return gemini.Describe(err)
	}

	if useCache && temperature <= cache.LowTemperatureMax {
		r.cache.Put(key, text)
	}
	return text
}
