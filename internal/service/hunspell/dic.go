package hunspell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Entry is one dictionary row: a root word and the flags naming the rule
// groups that may apply to it.
type Entry struct {
	Root  string
	Flags map[string]struct{}
}

// ParseDic parses a Hunspell .dic file. flagType controls how the segment
// after the first "/" decodes into flags.
func ParseDic(path string, flagType FlagType) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dic file: %w", err)
	}
	defer f.Close()
	return parseDic(f, flagType)
}

func parseDic(r io.Reader, flagType FlagType) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for sc.Scan() {
		line := stripComment(sc.Text())
		if line == "" {
			continue
		}
		if first {
			first = false
			// An optional leading integer is the declared word count.
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
		}

		token := strings.Fields(line)[0]
		root, segment := token, ""
		if idx := strings.IndexByte(token, '/'); idx >= 0 {
			root, segment = token[:idx], token[idx+1:]
		}
		// An invalid root can never yield a valid derived form; skipping
		// here avoids expanding it at all.
		if !IsValidToken(root) {
			continue
		}
		entries = append(entries, Entry{Root: root, Flags: splitFlags(segment, flagType)})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dic file: %w", err)
	}
	return entries, nil
}

// splitFlags decodes a flag segment according to the declared flag type.
func splitFlags(segment string, flagType FlagType) map[string]struct{} {
	flags := make(map[string]struct{})
	if segment == "" {
		return flags
	}
	switch flagType {
	case FlagLong:
		// Pairs of runes; a trailing odd rune is dropped.
		runes := []rune(segment)
		for i := 0; i+1 < len(runes); i += 2 {
			flags[string(runes[i:i+2])] = struct{}{}
		}
	case FlagNum:
		for _, part := range strings.Split(segment, ",") {
			if part = strings.TrimSpace(part); part != "" {
				flags[part] = struct{}{}
			}
		}
	default:
		for _, r := range segment {
			flags[string(r)] = struct{}{}
		}
	}
	return flags
}
