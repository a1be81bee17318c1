package diagnose

import "testing"

func classify(raw string) PatternID {
	return NewClassifier(DefaultRules()).Classify(Extract(raw))
}

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want PatternID
	}{
		{"module not found", missingModuleTrace, ModuleNotFound},
		{"read undefined", readUndefinedTrace, ReadUndefined},
		{"internal frames only", internalOnlyTrace, GenericRuntime},
		{"empty", "", Generic},
		{"garbage", "\x00\xff\xfe", Generic},
		{"unhandled rejection", "[UnhandledPromiseRejection: This error originated either by throwing inside of an async function without a catch block, or by rejecting a promise which was not handled with .catch().]", UnhandledRejection},
		{"then not a function", "TypeError: fetchUser(...).then is not a function", ThenNotFunction},
		{"callback not a function", "TypeError: callback is not a function", CallbackNotFunction},
		{"not a function", "TypeError: user.save is not a function", NotAFunction},
		{"read null", "TypeError: Cannot read properties of null (reading 'id')", ReadNull},
		{"destructure", "TypeError: Cannot destructure property 'a' of 'undefined' as it is undefined.", DestructureUndefined},
		{"invalid arg type", "TypeError [ERR_INVALID_ARG_TYPE]: The \"path\" argument must be of type string. Received undefined\n  code: 'ERR_INVALID_ARG_TYPE'", InvalidArgType},
		{"require in esm", "ReferenceError: require is not defined in ES module scope, you can use import instead", CommonJSGlobalInESM},
		{"tdz", "ReferenceError: Cannot access 'config' before initialization", TemporalDeadZone},
		{"not defined", "ReferenceError: foo is not defined", NotDefined},
		{"port in use", "Error: listen EADDRINUSE: address already in use :::3000", PortInUse},
		{"connection refused", "Error: connect ECONNREFUSED 127.0.0.1:5432\n  code: 'ECONNREFUSED'", ConnectionRefused},
		{"file not found", "Error: ENOENT: no such file or directory, open 'config.json'", FileNotFound},
		{"headers sent", "Error [ERR_HTTP_HEADERS_SENT]: Cannot set headers after they are sent to the client\n  code: 'ERR_HTTP_HEADERS_SENT'", HeadersAlreadySent},
		{"import outside module", "SyntaxError: Cannot use import statement outside a module", ImportOutsideModule},
		{"json end", "SyntaxError: Unexpected end of JSON input", JSONUnexpectedEnd},
		{"json token", "SyntaxError: Unexpected token } in JSON at position 4", JSONUnexpectedToken},
		{"json circular", "TypeError: Converting circular structure to JSON\n    --> starting at object with constructor 'Object'", JSONCircular},
		{"require esm without code field", "Error [ERR_REQUIRE_ESM]: require() of ES Module /app/node_modules/chalk/source/index.js not supported.", RequireESM},
		{"file extension without code field", "TypeError [ERR_UNKNOWN_FILE_EXTENSION]: Unknown file extension \".ts\" for /app/src/index.ts", UnknownFileExtension},
		{"package path not exported", "Error [ERR_PACKAGE_PATH_NOT_EXPORTED]: Package subpath './lib/util' is not defined by \"exports\" in /app/node_modules/pkg/package.json", PackagePathNotExported},
		{"esm module without code field", "Error [ERR_MODULE_NOT_FOUND]: Cannot find module '/app/lib.js' imported from /app/index.mjs", ESMModuleNotFound},
		{"require esm", "Error [ERR_REQUIRE_ESM]: require() of ES Module /app/node_modules/chalk/source/index.js not supported.\n  code: 'ERR_REQUIRE_ESM'", RequireESM},
		{"stack overflow", "RangeError: Maximum call stack size exceeded", StackOverflow},
		{"heap", "FATAL ERROR: Reached heap limit Allocation failed - JavaScript heap out of memory", HeapOutOfMemory},
		{"invalid regex", "SyntaxError: Invalid regular expression: /(/: Unterminated group", InvalidRegex},
		{"circular reference", "Error: circular reference detected in graph", CircularReference},
		{"mongo duplicate", "MongoServerError: E11000 duplicate key error collection: app.users index: email_1", MongoDuplicateKey},
		{"postgres auth", "error: password authentication failed for user \"app\"", PostgresAuth},
		{"reduce empty", "TypeError: Reduce of empty array with no initial value", ReduceEmptyArray},
		{"uri malformed", "URIError: URI malformed", MalformedURI},
		{"bad decrypt", "Error: error:1C800064:Provider routines::bad decrypt", BadDecrypt},
		{"jwt expired", "TokenExpiredError: jwt expired", JWTExpired},
		{"write after end", "Error [ERR_STREAM_WRITE_AFTER_END]: write after end", StreamWriteAfterEnd},
		{"unhandled error event", "Error: Unhandled 'error' event", UnhandledErrorEvent},
		{"assertion", "AssertionError [ERR_ASSERTION]: Expected values to be strictly equal:\n\n1 !== 2\n", AssertionFailed},
		{"syntax fallback", "SyntaxError: something odd", GenericSyntax},
		{"type fallback", "TypeError: something odd", GenericType},
		{"range fallback", "RangeError: something odd", GenericRange},
		{"plain error fallback", "Error: boom", GenericRuntime},
		{"unknown shape", "segmentation fault (core dumped)", Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.raw); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClassify_OverlapResolvedByOrder(t *testing.T) {
	// matches both the promise+catch and the promise+resolved rules
	raw := "Error: promise resolved after catch handler ran"
	if got := classify(raw); got != PromiseNotCaught {
		t.Fatalf("expected earlier rule %q to win, got %q", PromiseNotCaught, got)
	}
	if got := classify("Error: promise was already resolved"); got != PromiseResolvedTwice {
		t.Fatalf("expected %q, got %q", PromiseResolvedTwice, got)
	}
}

func TestClassify_AppendedRulesDoNotChangeEarlierResults(t *testing.T) {
	rules := append(DefaultRules(), Rule{
		ID:    "catch-all",
		Match: func(*Record) bool { return true },
	})
	c := NewClassifier(rules)

	rec := Extract("Error: promise resolved after catch handler ran")
	if got := c.Classify(rec); got != PromiseNotCaught {
		t.Errorf("expected %q, got %q", PromiseNotCaught, got)
	}
	if got := c.Classify(Extract("")); got != "catch-all" {
		t.Errorf("expected appended rule to catch unmatched input, got %q", got)
	}
}

func TestClassify_ReorderingChangesResult(t *testing.T) {
	a := Rule{ID: "a", Match: msgHas("boom")}
	b := Rule{ID: "b", Match: kindIs("Error")}
	rec := Extract("Error: boom")

	if got := NewClassifier([]Rule{a, b}).Classify(rec); got != "a" {
		t.Errorf("expected a, got %q", got)
	}
	if got := NewClassifier([]Rule{b, a}).Classify(rec); got != "b" {
		t.Errorf("expected b, got %q", got)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	c := NewClassifier(DefaultRules())
	for _, raw := range []string{missingModuleTrace, readUndefinedTrace, internalOnlyTrace, "", "TypeError: x is not iterable"} {
		first := c.Classify(Extract(raw))
		second := c.Classify(Extract(raw))
		if first != second {
			t.Errorf("classification changed between runs: %q vs %q", first, second)
		}
	}
}

func TestClassify_DoesNotMutateRecord(t *testing.T) {
	rec := Extract(readUndefinedTrace)
	before := rec.Message
	NewClassifier(DefaultRules()).Classify(rec)
	if rec.Message != before {
		t.Errorf("record message was mutated: %q", rec.Message)
	}
}

func TestClassifier_TraceAndPatterns(t *testing.T) {
	c := NewClassifier(DefaultRules())
	patterns := c.Patterns()
	if len(patterns) < 80 {
		t.Errorf("expected a taxonomy of 80+ patterns, got %d", len(patterns))
	}

	i := c.Trace(Extract(readUndefinedTrace))
	if i < 0 || patterns[i] != ReadUndefined {
		t.Errorf("expected trace to point at %q, got index %d", ReadUndefined, i)
	}
	if got := c.Trace(Extract("")); got != -1 {
		t.Errorf("expected -1 for unmatched input, got %d", got)
	}
}

func TestDefaultRules_UniqueIDs(t *testing.T) {
	seen := make(map[PatternID]bool)
	for _, r := range DefaultRules() {
		if seen[r.ID] {
			t.Errorf("duplicate pattern %q", r.ID)
		}
		if r.ID == Generic {
			t.Errorf("generic must stay the implicit default, not a rule")
		}
		seen[r.ID] = true
	}
}

func TestNewClassifier_CopiesRules(t *testing.T) {
	rules := []Rule{{ID: "a", Match: kindIs("Error")}}
	c := NewClassifier(rules)
	rules[0] = Rule{ID: "b", Match: kindIs("Error")}
	if got := c.Classify(Extract("Error: x")); got != "a" {
		t.Errorf("classifier must not see later edits to the input slice, got %q", got)
	}
}
