package hunspell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Diagnostic is a non-fatal event recorded while parsing permissive input.
// Malformed entry lines, flag mismatches and truncated rule blocks are
// expected in real dictionaries and must not abort parsing; only a missing
// file or an uncompilable condition pattern is an error.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// ParseAff parses a Hunspell .aff file. The file must exist; everything
// else degrades to diagnostics.
func ParseAff(path string) (*AffixSet, []Diagnostic, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open aff file: %w", err)
	}
	defer f.Close()
	return parseAff(f)
}

func parseAff(r io.Reader) (*AffixSet, []Diagnostic, error) {
	set := NewAffixSet()
	var diags []Diagnostic

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("read aff file: %w", err)
	}

	for i := 0; i < len(lines); i++ {
		line := stripComment(lines[i])
		if line == "" {
			continue
		}
		parts := strings.Fields(line)

		if parts[0] == "FLAG" && len(parts) >= 2 {
			// Last declaration wins; the format does not forbid repeats.
			set.FlagType = FlagType(strings.ToLower(parts[1]))
			continue
		}
		if (parts[0] != string(Prefix) && parts[0] != string(Suffix)) || len(parts) < 4 {
			continue
		}

		kind := Kind(parts[0])
		flag := parts[1]
		cross := strings.ToUpper(parts[2]) == "Y"
		count, err := strconv.Atoi(parts[3])
		if err != nil {
			diags = append(diags, Diagnostic{Line: i + 1, Message: "invalid entry count: " + line})
			continue
		}

		entries := make([]AffixEntry, 0, count)
		for len(entries) < count {
			i++
			if i >= len(lines) {
				diags = append(diags, Diagnostic{
					Line:    len(lines),
					Message: fmt.Sprintf("unexpected end of file inside %s %s block", kind, flag),
				})
				break
			}
			entryLine := stripComment(lines[i])
			if entryLine == "" {
				continue
			}
			fields := strings.Fields(entryLine)
			if len(fields) < 5 {
				diags = append(diags, Diagnostic{Line: i + 1, Message: "malformed affix entry: " + entryLine})
				continue
			}

			entryKind := kind
			switch Kind(fields[0]) {
			case Prefix, Suffix:
				entryKind = Kind(fields[0])
			}
			if fields[0] != string(kind) || fields[1] != flag {
				diags = append(diags, Diagnostic{
					Line: i + 1,
					Message: fmt.Sprintf("entry %s %s does not match header %s %s",
						fields[0], fields[1], kind, flag),
				})
			}

			strip := fields[2]
			if strip == "0" {
				strip = ""
			}
			add := fields[3]
			if add == "0" {
				add = ""
			}
			cond, err := CompileCondition(fields[4], entryKind)
			if err != nil {
				return nil, diags, fmt.Errorf("line %d: %w", i+1, err)
			}
			var morph string
			if len(fields) > 5 {
				morph = strings.Join(fields[5:], " ")
			}
			entries = append(entries, AffixEntry{Strip: strip, Add: add, Condition: cond, Morph: morph})
		}

		set.add(kind, flag, cross, entries)
	}

	return set, diags, nil
}

// stripComment removes a trailing #-comment and surrounding whitespace.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
