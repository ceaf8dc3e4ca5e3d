package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// MaxScore is the largest score the table accepts.
const MaxScore = 2_000_000_000

// maxDigits bounds the score field before conversion.
const maxDigits = 10

// ErrMalformed is wrapped by every Parse failure.
var ErrMalformed = errors.New("malformed high score table")

// Format encodes the table as one "III SCORE" line per entry.
func Format(entries [Size]Entry) []byte {
	var b bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %d\n", NormalizeInitials(e.Initials), e.Score)
	}
	return b.Bytes()
}

// Parse decodes a saved table. It accepts exactly Size records of three
// uppercase letters, one or more spaces and an unsigned decimal score.
// Both \n and \r\n terminators are accepted. Anything else fails as a whole
// so a damaged file never yields a partial table.
func Parse(data []byte) ([Size]Entry, error) {
	var entries [Size]Entry

	lines := bytes.Split(data, []byte("\n"))
	for len(lines) > 0 && len(bytes.TrimRight(lines[len(lines)-1], "\r")) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) != Size {
		return entries, fmt.Errorf("ledger: %w: %d records, want %d", ErrMalformed, len(lines), Size)
	}

	for i, line := range lines {
		e, err := parseRecord(bytes.TrimSuffix(line, []byte("\r")))
		if err != nil {
			return [Size]Entry{}, fmt.Errorf("ledger: line %d: %w", i+1, err)
		}
		entries[i] = e
	}

	sort.SliceStable(entries[:], func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries, nil
}

func parseRecord(line []byte) (Entry, error) {
	if len(line) < 5 {
		return Entry{}, fmt.Errorf("%w: record too short", ErrMalformed)
	}
	for _, c := range line[:3] {
		if c < 'A' || c > 'Z' {
			return Entry{}, fmt.Errorf("%w: initials %q", ErrMalformed, line[:3])
		}
	}

	rest := line[3:]
	spaces := 0
	for spaces < len(rest) && rest[spaces] == ' ' {
		spaces++
	}
	if spaces == 0 {
		return Entry{}, fmt.Errorf("%w: missing separator", ErrMalformed)
	}

	digits := rest[spaces:]
	if len(digits) == 0 || len(digits) > maxDigits {
		return Entry{}, fmt.Errorf("%w: score field width %d", ErrMalformed, len(digits))
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return Entry{}, fmt.Errorf("%w: score %q", ErrMalformed, digits)
		}
	}
	score, err := strconv.Atoi(string(digits))
	if err != nil || score > MaxScore {
		return Entry{}, fmt.Errorf("%w: score %q out of range", ErrMalformed, digits)
	}

	return Entry{Initials: string(line[:3]), Score: score}, nil
}

// Filler fabricates a plausible descending table from seed. The same seed
// always yields the same table.
func Filler(seed uint32) [Size]Entry {
	rng := core.NewLCG(seed)
	var entries [Size]Entry

	base := rng.Range(1200, 4800)
	for i := range entries {
		ini := []byte{
			byte('A' + rng.Intn(26)),
			byte('A' + rng.Intn(26)),
			byte('A' + rng.Intn(26)),
		}
		bump := rng.Range(0, 900)
		entries[i] = Entry{
			Initials: string(ini),
			Score:    base + bump + (Size-1-i)*rng.Range(200, 600),
		}
	}

	sort.SliceStable(entries[:], func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}
