package grading

import (
	"encoding/json"

	"github.com/learnloop/learnloop/internal/tutor"
)

// scanResult salvages a verdict from prose-wrapped model output. It walks
// the raw bytes looking for balanced JSON objects and returns the first one
// that decodes with the is_correct field present.
func scanResult(raw []byte) (tutor.GradedAnswer, bool) {
	for i := 0; i < len(raw); i++ {
		if raw[i] != '{' {
			continue
		}
		end, ok := matchBrace(raw, i)
		if !ok {
			break
		}
		var rr rawResult
		if err := json.Unmarshal(raw[i:end+1], &rr); err == nil && rr.complete() {
			return rr.toVerdict(), true
		}
		// Not a verdict object, keep scanning after this block.
		i = end
	}
	return tutor.GradedAnswer{}, false
}

// matchBrace returns the index of the brace closing the object opened at
// start, skipping braces inside JSON strings.
func matchBrace(raw []byte, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
