package tools

import "codegem/internal/protocol"

// The static tool catalog. Names are gc-prefixed to avoid conflicts with
// other MCP servers an IDE may have loaded. Every tool additionally honors
// the implicit file_path argument through the input resolver, whether or
// not its schema declares it.

func fullCatalog() []protocol.Tool {
	return []protocol.Tool{
		{
			Name:        "gchelp",
			Description: "Show available commands and usage examples",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"category": {Type: "string", Description: "Category to show help for (basic, spec, code, debug, ide, all)", Default: "all"},
				},
			},
		},
		{
			Name:        "gcask",
			Description: "Ask Gemini any question (supports clipboard/file input)",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"prompt":    {Type: "string", Description: "Your question (or leave empty to use clipboard/env/file)"},
					"file_path": {Type: "string", Description: "Path to file to read as input"},
					"fast":      {Type: "boolean", Description: "Use faster model", Default: false},
				},
			},
		},
		{
			Name:        "gcspec",
			Description: "Analyze requirements and specifications",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"specification": {Type: "string", Description: "The specification to analyze (or use file_path/clipboard)"},
					"file_path":     {Type: "string", Description: "Path to specification file"},
					"type":          {Type: "string", Description: "Type (api, feature, system)", Default: "general"},
				},
			},
		},
		{
			Name:        "gcarch",
			Description: "Review system architecture",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"architecture": {Type: "string", Description: "Architecture description (or use file_path/clipboard)"},
					"file_path":    {Type: "string", Description: "Path to architecture file"},
					"focus":        {Type: "string", Description: "Focus area (scalability, security, performance)", Default: "general"},
				},
			},
		},
		{
			Name:        "gcapi",
			Description: "Design API interfaces",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"type":         {Type: "string", Description: "API type (REST, GraphQL, etc.)"},
					"requirements": {Type: "string", Description: "API requirements (or use file_path/clipboard)"},
					"file_path":    {Type: "string", Description: "Path to requirements file"},
				},
				Required: []string{"type"},
			},
		},
		{
			Name:        "gcreview",
			Description: "Review code quality and best practices",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"code":      {Type: "string", Description: "Code to review (or use file_path/clipboard)"},
					"file_path": {Type: "string", Description: "Path to code file"},
					"focus":     {Type: "string", Description: "Focus (security, performance, style)", Default: "general"},
				},
			},
		},
		{
			Name:        "gcrefactor",
			Description: "Suggest code improvements",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"code":      {Type: "string", Description: "Code to refactor (or use file_path/clipboard)"},
					"file_path": {Type: "string", Description: "Path to code file"},
					"goal":      {Type: "string", Description: "Goal (readability, performance, maintainability)"},
				},
				Required: []string{"goal"},
			},
		},
		{
			Name:        "gcperf",
			Description: "Analyze code performance",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"code":      {Type: "string", Description: "Code to analyze (or use file_path/clipboard)"},
					"file_path": {Type: "string", Description: "Path to code file"},
					"context":   {Type: "string", Description: "Performance context", Default: "general"},
				},
			},
		},
		{
			Name:        "gcsecurity",
			Description: "Security audit and vulnerability analysis",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"code":      {Type: "string", Description: "Code to audit (or use file_path/clipboard)"},
					"file_path": {Type: "string", Description: "Path to code file"},
					"level":     {Type: "string", Description: "Security level (basic, enterprise, critical)", Default: "basic"},
				},
			},
		},
		{
			Name:        "gctest",
			Description: "Generate test strategies and cases",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"code":      {Type: "string", Description: "Code to test (or use file_path/clipboard)"},
					"file_path": {Type: "string", Description: "Path to code file"},
					"type":      {Type: "string", Description: "Test type (unit, integration, e2e)", Default: "unit"},
				},
			},
		},
		{
			Name:        "gcdebug",
			Description: "Debug errors and issues",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"error":   {Type: "string", Description: "Error message or stack trace (or use clipboard)"},
					"context": {Type: "string", Description: "Code context", Default: ""},
				},
			},
		},
		{
			Name:        "gcexplain",
			Description: "Explain code functionality",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"code":      {Type: "string", Description: "Code to explain (or use file_path/clipboard)"},
					"file_path": {Type: "string", Description: "Path to code file"},
					"level":     {Type: "string", Description: "Level (beginner, intermediate, advanced)", Default: "intermediate"},
				},
			},
		},
		{
			Name:        "gcdeps",
			Description: "Analyze project dependencies",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"dependencies": {Type: "string", Description: "Dependencies list (or use file_path/clipboard)"},
					"file_path":    {Type: "string", Description: "Path to package.json, requirements.txt, etc."},
					"focus":        {Type: "string", Description: "Focus (security, performance, size)", Default: "general"},
				},
			},
		},
		{
			Name:        "gccomplete",
			Description: "Complete code with AI assistance",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"context":   {Type: "string", Description: "Existing code context (or use file_path/clipboard)"},
					"file_path": {Type: "string", Description: "Path to context file"},
					"request":   {Type: "string", Description: "What to complete"},
				},
				Required: []string{"request"},
			},
		},
		{
			Name:        "gcdocs",
			Description: "Generate documentation",
			InputSchema: protocol.InputSchema{
				Type: "object",
				Properties: map[string]protocol.Property{
					"code":      {Type: "string", Description: "Code to document (or use file_path/clipboard)"},
					"file_path": {Type: "string", Description: "Path to code file"},
					"type":      {Type: "string", Description: "Doc type (api, readme, inline)", Default: "comprehensive"},
				},
			},
		},
	}
}

func degradedCatalog() []protocol.Tool {
	return []protocol.Tool{
		{
			Name:        "server_info",
			Description: "Get server status and error information",
			InputSchema: protocol.InputSchema{
				Type:       "object",
				Properties: map[string]protocol.Property{},
			},
		},
	}
}
