package langdetect

import (
	"bytes"
	"strings"
)

// hint recognizes one language from features that rarely occur elsewhere.
type hint struct {
	lang  string
	match func(code, trimmed []byte) bool
}

// hints are tried in order; earlier entries are more specific.
//
//nolint:gochecknoglobals // Read-only lookup table.
var hints = []hint{
	{"go", func(_, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"python", looksLikePython},
	{"html", func(_, trimmed []byte) bool {
		return containsAny(bytes.ToLower(trimmed), "<!doctype html", "<html", "<head>", "<body>")
	}},
	{"json", func(_, trimmed []byte) bool {
		return (trimmed[0] == '{' || trimmed[0] == '[') && bytes.IndexByte(trimmed, '"') >= 0
	}},
	{"dockerfile", func(code, trimmed []byte) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(containsAll(code, "\nFROM ", "\nRUN ")) ||
			(containsAll(code, "WORKDIR ", "COPY "))
	}},
	{"sql", func(_, trimmed []byte) bool {
		upper := bytes.ToUpper(trimmed)
		for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if bytes.HasPrefix(upper, []byte(verb)) {
				return true
			}
		}
		return false
	}},
	{"rust", func(code, _ []byte) bool {
		return containsAny(code, "fn main()", "println!", "let mut ")
	}},
	{"javascript", func(code, _ []byte) bool {
		return containsAny(code, "=>", "const ", "let ", "console.log")
	}},
	{"yaml", func(code, _ []byte) bool {
		return yamlPairs(code) >= 2
	}},
}

func matchHint(code []byte) string {
	trimmed := bytes.TrimSpace(code)
	for _, h := range hints {
		if h.match(code, trimmed) {
			return h.lang
		}
	}
	return ""
}

func looksLikePython(code, trimmed []byte) bool {
	src := string(code)
	if strings.Contains(src, "def ") && strings.Contains(src, "):") {
		return true
	}
	if strings.Contains(src, "__name__") || strings.Contains(src, "__main__") {
		return true
	}
	// Go spells multi-imports "import (".
	if strings.Contains(src, "import ") && !strings.Contains(src, "import (") {
		return strings.Contains(src, "from ") || bytes.HasPrefix(trimmed, []byte("import "))
	}
	return false
}

// yamlPairs counts lines shaped like "key: value" or "- item".
func yamlPairs(code []byte) int {
	count := 0
	for line := range bytes.SplitSeq(code, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
			continue
		}
		if bytes.Contains(line, []byte(": ")) && line[0] != '"' && !bytes.ContainsAny(line, "({") {
			count++
		}
	}
	return count
}

func containsAny(b []byte, needles ...string) bool {
	for _, n := range needles {
		if bytes.Contains(b, []byte(n)) {
			return true
		}
	}
	return false
}

func containsAll(b []byte, needles ...string) bool {
	for _, n := range needles {
		if !bytes.Contains(b, []byte(n)) {
			return false
		}
	}
	return true
}
