package apps

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

var tableHeaderRegex = regexp.MustCompile(`^\s*\[`)

// readOptional returns the file content, or "" when the file does not exist.
func readOptional(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// writeFile overwrites path, creating its parent directory first.
func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// replaceOrAppendLine replaces the first line matching match with line and
// drops any later matches. Without a match, line is appended after the
// trimmed content.
func replaceOrAppendLine(content string, match *regexp.Regexp, line string) string {
	lines := splitLines(content)
	out := make([]string, 0, len(lines)+1)
	replaced := false

	for _, l := range lines {
		if !match.MatchString(l) {
			out = append(out, l)
			continue
		}
		if !replaced {
			out = append(out, line)
			replaced = true
		}
	}

	if replaced {
		return joinLines(out)
	}

	trimmed := strings.TrimRight(content, " \t\r\n")
	if trimmed == "" {
		return line + "\n"
	}
	return trimmed + "\n" + line + "\n"
}

// replaceOrInsertTopLevel sets a root-table TOML key. Only lines before the
// first table header are searched; a missing key is inserted just above it so
// it never lands inside a table.
func replaceOrInsertTopLevel(content string, match *regexp.Regexp, line string) string {
	lines := splitLines(content)

	firstTable := len(lines)
	for i, l := range lines {
		if tableHeaderRegex.MatchString(l) {
			firstTable = i
			break
		}
	}

	preamble := replaceOrAppendLine(joinLines(lines[:firstTable]), match, line)
	if firstTable == len(lines) {
		return preamble
	}
	return strings.TrimRight(preamble, " \t\r\n") + "\n\n" + joinLines(lines[firstTable:])
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
