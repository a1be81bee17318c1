package diagnose

import (
	"regexp"
	"strconv"
	"strings"
)

// Node prints: TypeError [ERR_INVALID_ARG_TYPE]: The "path" argument must be...
var kindLineRe = regexp.MustCompile(
	`^\s*(?:Uncaught\s+)?(Error|TypeError|ReferenceError|SyntaxError|RangeError|URIError|EvalError|AggregateError|AssertionError|SystemError|InternalError|DOMException)(?:\s*\[([A-Za-z0-9_]+)\])?:\s*(.*)$`)

var (
	missingModuleRe = regexp.MustCompile(`Cannot find module '[^']*'`)
	codeFieldRe     = regexp.MustCompile(`code:\s*['"]([A-Z][A-Z0-9_]*)['"]`)
	errnoRe         = regexp.MustCompile(`\b(E[A-Z]{2,})\b`)
	frameRe         = regexp.MustCompile(`^\s*at\s`)
	parenLocRe      = regexp.MustCompile(`\(([^()]*?):(\d+):(\d+)\)`)
	bareLocRe       = regexp.MustCompile(`at\s+(\S+):(\d+):(\d+)`)
	looseLocRe      = regexp.MustCompile(`([\w.-]+\.[mc]?js):(\d+):(\d+)`)
)

// frame lines mentioning any of these belong to the runtime or to dependencies
var foreignFrameMarkers = []string{"node:", "node_modules"}

// runtime frames from Node versions before the "node:" prefix; the location
// itself must start with internal/ so user code under .../internal/ survives
var legacyInternalRe = regexp.MustCompile(`(?:\(|at\s+)internal/`)

// Extract turns raw diagnostic text into a Record. It never fails; anything
// it cannot recover keeps its default.
func Extract(raw string) Record {
	rec := Record{
		Kind:    UnknownKind,
		Message: DefaultMessage,
		Raw:     raw,
	}

	bracketCode := ""
	lines := strings.Split(raw, "\n")
	for _, line := range lines {
		m := kindLineRe.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		rec.Kind = m[1]
		bracketCode = m[2]
		if msg := strings.TrimSpace(m[3]); msg != "" {
			rec.Message = msg
		}
		break
	}

	explicitCode := ""
	if m := codeFieldRe.FindStringSubmatch(raw); m != nil {
		explicitCode = m[1]
	}

	if strings.Contains(raw, "Cannot find module") || strings.Contains(raw, "MODULE_NOT_FOUND") {
		rec.Kind = ModuleNotFoundKind
		if clause := missingModuleRe.FindString(raw); clause != "" {
			rec.Message = clause
		}
		rec.SystemCode = "MODULE_NOT_FOUND"
	}

	switch {
	case explicitCode != "":
		rec.SystemCode = explicitCode
	case bracketCode != "":
		rec.SystemCode = bracketCode
	case rec.SystemCode != "":
	default:
		rec.SystemCode = errnoToken(raw, rec.Message)
	}

	rec.Location = locate(lines)
	return rec
}

// shouting that looks like an errno but is not one ("FATAL ERROR", "npm ERR!")
var notErrno = map[string]bool{"ERR": true, "ERROR": true, "ERRORS": true}

func errnoToken(raw, message string) string {
	for _, text := range []string{raw, message} {
		for _, m := range errnoRe.FindAllStringSubmatch(text, -1) {
			if !notErrno[m[1]] {
				return m[1]
			}
		}
	}
	return ""
}

func locate(lines []string) *Location {
	var rest []string
	for _, line := range lines {
		if !frameRe.MatchString(line) {
			rest = append(rest, line)
			continue
		}
		if isForeignFrame(line) {
			continue
		}
		if loc := frameLocation(line); loc != nil {
			return loc
		}
		rest = append(rest, line)
	}

	// Filtered frames are dropped from the fallback scan so a runtime or
	// dependency position is never reported as the crime scene.
	m := looseLocRe.FindStringSubmatch(strings.Join(rest, "\n"))
	if m == nil {
		return nil
	}
	return newLocation(m[1], m[2], m[3])
}

func isForeignFrame(line string) bool {
	if legacyInternalRe.MatchString(line) {
		return true
	}
	for _, marker := range foreignFrameMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}

func frameLocation(line string) *Location {
	if m := parenLocRe.FindStringSubmatch(line); m != nil {
		return newLocation(m[1], m[2], m[3])
	}
	if m := bareLocRe.FindStringSubmatch(line); m != nil {
		return newLocation(m[1], m[2], m[3])
	}
	return nil
}

func newLocation(path, line, col string) *Location {
	ln, err := strconv.Atoi(line)
	if err != nil || ln < 1 {
		return nil
	}
	cn, err := strconv.Atoi(col)
	if err != nil || cn < 1 {
		return nil
	}
	return &Location{File: baseName(path), Line: ln, Column: cn}
}

// baseName strips both slash styles; stack traces from Windows hosts use
// backslashes and ESM frames use file:// URLs.
func baseName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
