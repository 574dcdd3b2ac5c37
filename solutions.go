package cards

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// SolutionsFile is the name of the optional sidecar file mapping
// lowercase image names to accepted answers.
const SolutionsFile = "sol_map.json"

// Solutions maps a lowercased card name to its accepted answer strings.
// A nil map means no sidecar file was present: the accepted answer is
// derived from the card's file name instead. Solutions are loaded once
// at startup and never mutated.
type Solutions map[string][]string

// LoadSolutions reads the sidecar mapping file from dir, if present.
// Returns a nil map (and no error) when the file does not exist.
func LoadSolutions(dir string) (Solutions, error) {
	data, err := os.ReadFile(filepath.Join(dir, SolutionsFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", SolutionsFile, err)
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse %s: invalid JSON", SolutionsFile)
	}

	sols := make(Solutions)
	var badEntry error
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		if !value.IsArray() {
			badEntry = fmt.Errorf("parse %s: entry %q is not an array", SolutionsFile, key.String())
			return false
		}
		var answers []string
		for _, v := range value.Array() {
			answers = append(answers, v.String())
		}
		sols[key.String()] = answers
		return true
	})
	if badEntry != nil {
		return nil, badEntry
	}
	return sols, nil
}

// Match reports whether typed is an accepted answer for the card name.
//
// With a solution map entry, typed is accepted if it exactly equals any
// raw entry (case- and space-sensitive), or if its normalized form
// (lowercased, spaces stripped) equals any entry's normalized form. The
// exact-match branch is intentionally asymmetric with the normalized
// one and is kept as-is.
//
// Without a map (or for a card missing from it), typed is accepted if
// it equals the card name ignoring case, spaces, and the hyphens file
// names use as word separators.
func (s Solutions) Match(name, typed string) bool {
	if s == nil {
		return normalizeName(typed) == normalizeName(name)
	}

	sols, ok := s[strings.ToLower(name)]
	if !ok {
		return normalizeName(typed) == normalizeName(name)
	}

	for _, sol := range sols {
		if typed == sol {
			return true
		}
	}
	norm := normalizeAnswer(typed)
	for _, sol := range sols {
		if normalizeAnswer(sol) == norm {
			return true
		}
	}
	return false
}

// normalizeAnswer lowercases the string and strips spaces.
func normalizeAnswer(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, " ", ""))
}

// normalizeName additionally strips hyphens, so "blue-jay.png" accepts
// "Blue Jay", "bluejay", and "blue-jay" alike.
func normalizeName(s string) string {
	return strings.ReplaceAll(normalizeAnswer(s), "-", "")
}
