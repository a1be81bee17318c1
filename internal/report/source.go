package report

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasnoah/nodediag/internal/engine"
)

// CrimeScene finds the full path of the crime-scene file in the raw text and
// returns the trimmed source line it points at. It returns "" whenever the
// file cannot be found or read.
func CrimeScene(d engine.Diagnosis) string {
	loc := d.Record.Location
	if loc == nil {
		return ""
	}
	re, err := regexp.Compile(`([^\s()'"]*` + regexp.QuoteMeta(loc.File) + `):` + strconv.Itoa(loc.Line) + `:` + strconv.Itoa(loc.Column))
	if err != nil {
		return ""
	}
	m := re.FindStringSubmatch(d.Record.Raw)
	if m == nil {
		return ""
	}
	path := strings.TrimPrefix(m[1], "file://")
	return readLine(path, loc.Line)
}

func readLine(path string, n int) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for i := 1; sc.Scan(); i++ {
		if i == n {
			return strings.TrimSpace(sc.Text())
		}
	}
	return ""
}
