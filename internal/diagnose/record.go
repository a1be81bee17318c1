package diagnose

import "fmt"

// UnknownKind is reported when no recognizable error line was found.
const UnknownKind = "UnknownError"

// ModuleNotFoundKind is the synthetic kind for module resolution failures.
const ModuleNotFoundKind = "ModuleNotFoundError"

// DefaultMessage is used when no message line could be extracted.
const DefaultMessage = "No error message available"

// Location is the crime-scene position: the first stack frame that belongs to
// the user's own code.
type Location struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Record is the structured form of a block of diagnostic text.
// Kind and Message are always set; SystemCode and Location are optional.
type Record struct {
	Kind       string    `json:"kind"`
	Message    string    `json:"message"`
	SystemCode string    `json:"system_code,omitempty"`
	Location   *Location `json:"location,omitempty"`
	Raw        string    `json:"-"`
}

// HasSystemCode reports whether an OS/runtime error code was found.
func (r Record) HasSystemCode() bool {
	return r.SystemCode != ""
}
