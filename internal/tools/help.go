package tools

import "fmt"

// Help content for the gc-prefixed commands. Served locally by gchelp;
// never touches the backend or the cache.

const helpBasic = `🚀 **BASIC COMMANDS**
• ` + "`gchelp`" + ` - Show this help (add category: basic, spec, code, debug)
• ` + "`gcask`" + ` - Ask Gemini any question
  Example: gcask prompt="How to optimize Python loops?"
  IDE Usage: Select text in editor → copy → gcask prompt="Explain this code"
`

const helpSpec = `📋 **SPECIFICATION & DESIGN**
• ` + "`gcspec`" + ` - Analyze requirements and specifications
  Example: gcspec specification="User auth with JWT" type="api"
  IDE Usage: gcspec file_path="requirements.md"
• ` + "`gcarch`" + ` - Review system architecture
  Example: gcarch architecture="Microservices with Docker"
  IDE Usage: Copy architecture diagram → gcarch focus="scalability"
• ` + "`gcapi`" + ` - Design API interfaces
  Example: gcapi type="REST" requirements="User CRUD operations"
`

const helpCode = `💻 **CODE ANALYSIS & IMPROVEMENT**
• ` + "`gcreview`" + ` - Review code quality
  Example: gcreview file_path="src/auth.py" focus="security"
  IDE Usage: Select code → copy → gcreview focus="performance"
• ` + "`gcrefactor`" + ` - Suggest code improvements
  Example: gcrefactor goal="readability" file_path="legacy.py"
  IDE Usage: Select function → copy → gcrefactor goal="performance"
• ` + "`gcperf`" + ` - Analyze code performance
  Example: gcperf file_path="slow_function.py"
  IDE Usage: Copy slow code → gcperf context="database"
• ` + "`gcsecurity`" + ` - Security audit
  Example: gcsecurity file_path="login.py" level="enterprise"
  IDE Usage: Select auth code → copy → gcsecurity level="critical"
• ` + "`gctest`" + ` - Generate test strategies
  Example: gctest file_path="utils.py" type="unit"
  IDE Usage: Copy function → gctest type="integration"
`

const helpDebug = `🔍 **DEBUG & UNDERSTANDING**
• ` + "`gcdebug`" + ` - Debug errors and issues
  Example: gcdebug error="TypeError: 'str' not callable"
  IDE Usage: Copy error from terminal → gcdebug
• ` + "`gcexplain`" + ` - Explain code functionality
  Example: gcexplain file_path="complex.py" level="beginner"
  IDE Usage: Select complex code → copy → gcexplain level="advanced"
`

const helpUtility = `🛠️ **UTILITY TOOLS**
• ` + "`gcdeps`" + ` - Analyze project dependencies
  Example: gcdeps file_path="package.json" focus="security"
• ` + "`gccomplete`" + ` - Complete code with AI
  Example: gccomplete context="class User:" request="add login method"
  IDE Usage: Select partial code → copy to context → gccomplete request="finish this"
• ` + "`gcdocs`" + ` - Generate documentation
  Example: gcdocs file_path="api.py" type="readme"
  IDE Usage: Select functions → copy → gcdocs type="api"
`

const helpIDE = `💡 **IDE WORKFLOW TIPS**
• All commands support multiple input methods:
  1. Direct text: gcask prompt="your question"
  2. File path: gcreview file_path="/path/to/file.py"
  3. Environment variable: GEMINI_INPUT="text" gcask
  4. Clipboard: Copy text in IDE → run command without text param

• Common IDE workflows:
  - Select code → Copy → gcreview (auto-uses clipboard)
  - Copy error message → gcdebug (auto-uses clipboard)
  - gcexplain file_path="complex_file.py" (reads entire file)
  - Use GEMINI_INPUT for IDE extensions

• Commands are prefixed with 'gc' to avoid conflicts with other tools
`

// helpContent renders help for a category; unknown categories get the full
// listing.
func helpContent(category, version string) string {
	categories := map[string]string{
		"basic":   helpBasic,
		"spec":    helpSpec,
		"code":    helpCode,
		"debug":   helpDebug,
		"utility": helpUtility,
		"ide":     helpIDE,
		"all":     helpBasic + helpSpec + helpCode + helpDebug + helpUtility + helpIDE,
	}

	body, ok := categories[category]
	if !ok {
		body = categories["all"]
	}

	return fmt.Sprintf(`
# 🤖 Gemini Coding MCP Server v%s

%s

🔗 **Quick Examples:**
- `+"`gcask prompt=\"Best Python frameworks\"`"+`
- `+"`gcreview focus=\"security\"`"+` (uses clipboard)
- `+"`gcdebug`"+` (uses clipboard for error)
- `+"`gchelp category=ide`"+` (IDE workflow tips)
`, version, body)
}
