package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/rangemap/remap"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	headerSep    = "-to-"
)

// stageDraft accumulates one stage while its rule lines are read.
type stageDraft struct {
	line     int
	src, dst string
	triples  [][3]int64
}

// Parse reads an almanac from r.
//
// Errors:
//   - *ParseError (ErrParse) - missing or malformed seeds line, malformed
//     header, rule line without exactly three integers, negative length,
//     rule whose bounds or offset overflow int64, rule line before any
//     header. Rule errors carry the rule's own line.
//   - read errors from r, returned as is.
func Parse(r io.Reader) (*Almanac, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		a       Almanac
		seeded  bool
		drafts  []stageDraft
		lineNum int
	)
	for sc.Scan() {
		lineNum++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		switch {
		case !seeded:
			seeds, err := parseSeeds(line)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Msg: err.Error()}
			}
			a.Seeds = seeds
			seeded = true

		case strings.HasSuffix(line, headerSuffix):
			src, dst, err := parseHeader(line)
			if err != nil {
				return nil, &ParseError{Line: lineNum, Msg: err.Error()}
			}
			drafts = append(drafts, stageDraft{line: lineNum, src: src, dst: dst})

		default:
			if len(drafts) == 0 {
				return nil, &ParseError{Line: lineNum, Msg: "rule line before any map header"}
			}
			t, err := parseTriple(line)
			if err == nil {
				err = remap.CheckTriple(t)
			}
			if err != nil {
				return nil, &ParseError{Line: lineNum, Msg: err.Error()}
			}
			d := &drafts[len(drafts)-1]
			d.triples = append(d.triples, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !seeded {
		return nil, &ParseError{Msg: "missing seeds line"}
	}

	a.Stages = make(remap.Pipeline, 0, len(drafts))
	for _, d := range drafts {
		st, err := remap.NewStage(d.src, d.dst, d.triples)
		if err != nil {
			return nil, &ParseError{Line: d.line, Msg: err.Error()}
		}
		a.Stages = append(a.Stages, st)
	}
	return &a, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// parseSeeds reads "seeds: n n n ...".
func parseSeeds(line string) ([]int64, error) {
	rest, ok := strings.CutPrefix(line, seedsPrefix)
	if !ok {
		return nil, fmt.Errorf("expected %q line, got %q", seedsPrefix, line)
	}
	fields := strings.Fields(rest)
	seeds := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("seed %q: %w", f, err)
		}
		seeds = append(seeds, n)
	}
	return seeds, nil
}

// parseHeader reads "<src>-to-<dst> map:".
func parseHeader(line string) (src, dst string, err error) {
	name := strings.TrimSpace(strings.TrimSuffix(line, headerSuffix))
	src, dst, ok := strings.Cut(name, headerSep)
	if !ok || src == "" || dst == "" || strings.ContainsAny(name, " \t") {
		return "", "", fmt.Errorf("malformed map header %q", line)
	}
	return src, dst, nil
}

// parseTriple reads "destination source length".
func parseTriple(line string) ([3]int64, error) {
	var t [3]int64
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return t, fmt.Errorf("rule needs 3 numbers, got %d in %q", len(fields), line)
	}
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return t, fmt.Errorf("rule field %q: %w", f, err)
		}
		t[i] = n
	}
	return t, nil
}
