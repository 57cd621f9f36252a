package tools

import "fmt"

// Prompt builders. Each renders a tool's resolved input into the backend
// prompt deterministically; no state, no I/O.

func askPrompt(question string) string {
	return question
}

func specPrompt(spec, specType string) string {
	return fmt.Sprintf(`As a requirements analyst, analyze this %s specification:

%s

Provide analysis covering:
1. Completeness - what's missing or unclear?
2. Consistency - any contradictions?
3. Testability - can requirements be verified?
4. Feasibility - technical considerations
5. Clarity - areas needing clarification
6. Recommendations for improvement`, specType, spec)
}

func archPrompt(arch, focus string) string {
	return fmt.Sprintf(`As a software architect, analyze this architecture with focus on %s:

%s

Provide analysis covering:
1. Strengths and weaknesses
2. Scalability considerations
3. Performance implications
4. Security architecture
5. Maintainability concerns
6. Improvement recommendations
7. Alternative patterns to consider`, focus, arch)
}

func apiPrompt(apiType, requirements string) string {
	return fmt.Sprintf(`As an API design expert, design a %s API:

Requirements: %s

Provide:
1. API structure and endpoints
2. Data models and schemas
3. Authentication approach
4. Error handling strategy
5. Example requests/responses
6. Best practices implementation`, apiType, requirements)
}

func reviewPrompt(code, focus string) string {
	return fmt.Sprintf("As an expert code reviewer, analyze this code with focus on %s:\n\n```\n%s\n```\n\nProvide structured feedback:\n1. Code quality and potential bugs\n2. Security vulnerabilities\n3. Performance opportunities\n4. Best practices adherence\n5. Maintainability improvements\n6. Specific recommendations with examples", focus, code)
}

func refactorPrompt(code, goal string) string {
	return fmt.Sprintf("As a refactoring expert, improve this code for %s:\n\n```\n%s\n```\n\nProvide:\n1. Specific refactoring recommendations\n2. Before/after code examples\n3. Explanation of improvements\n4. Impact on %s\n5. Step-by-step approach\n6. Testing considerations", goal, code, goal)
}

func perfPrompt(code, context string) string {
	return fmt.Sprintf("As a performance expert, analyze this code for %s performance:\n\n```\n%s\n```\n\nProvide analysis:\n1. Performance bottlenecks\n2. Time/space complexity\n3. Optimization recommendations\n4. Optimized code examples\n5. Profiling strategies\n6. Scalability considerations", context, code)
}

func securityPrompt(code, level string) string {
	return fmt.Sprintf("As a security expert, audit this code for %s-level security:\n\n```\n%s\n```\n\nProvide security analysis:\n1. Vulnerability identification\n2. Input validation issues\n3. Authentication/authorization flaws\n4. Data exposure risks\n5. Injection attack vectors\n6. Remediation recommendations\n7. Security testing strategies", level, code)
}

func testPrompt(code, testType string) string {
	return fmt.Sprintf("As a testing expert, create %s testing strategy:\n\n```\n%s\n```\n\nProvide:\n1. Test plan and strategy\n2. Specific test cases\n3. Edge cases and boundaries\n4. Mock/stub strategies\n5. Test data requirements\n6. Framework recommendations\n7. Coverage expectations", testType, code)
}

func debugPrompt(errMsg, context string) string {
	return fmt.Sprintf(`As a debugging expert, help solve this error:

Error: %s
Context: %s

Provide:
1. Root cause analysis
2. Step-by-step debugging approach
3. Specific solutions with examples
4. Prevention strategies
5. Debugging tools to use
6. Common variations of this error`, errMsg, context)
}

func explainPrompt(code, level string) string {
	return fmt.Sprintf("As a code mentor, explain this code at %s level:\n\n```\n%s\n```\n\nProvide explanation:\n1. High-level purpose and functionality\n2. Step-by-step logic breakdown\n3. Key concepts and patterns\n4. Data and control flow\n5. Important design decisions\n6. Potential gotchas\n7. Related concepts to learn", level, code)
}

func depsPrompt(dependencies, focus string) string {
	return fmt.Sprintf(`As a dependency expert, analyze these dependencies for %s:

%s

Provide analysis:
1. Security vulnerability assessment
2. Maintenance and community health
3. Performance impact
4. Size and bundle analysis
5. Alternative recommendations
6. Version compatibility
7. License compliance
8. Upgrade suggestions`, focus, dependencies)
}

func completePrompt(context, request string) string {
	return fmt.Sprintf("As a code completion expert, complete this code:\n\nContext:\n```\n%s\n```\n\nRequest: %s\n\nProvide:\n1. Complete implementation\n2. Explanation of approach\n3. Alternative options\n4. Best practices incorporated\n5. Error handling\n6. Testing suggestions", context, request)
}

func docsPrompt(code, docType string) string {
	return fmt.Sprintf("As a documentation expert, create %s documentation:\n\n```\n%s\n```\n\nGenerate documentation:\n1. Clear overview and purpose\n2. Installation/setup instructions\n3. Usage examples\n4. API reference\n5. Configuration options\n6. Common use cases\n7. Troubleshooting guide", docType, code)
}
