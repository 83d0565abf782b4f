package coverage

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"
)

// The two line shapes gcov emits per annotated source file:
//
//	File 'src/foo.c'
//	Lines executed:75.00% of 40
var (
	reFileHeader    = regexp.MustCompile(`^File '([^']+)'`)
	reLinesExecuted = regexp.MustCompile(`Lines executed:(\d+\.\d+)% of (\d+)`)
)

// parseState tracks which of the two line shapes is expected next.
type parseState int

const (
	awaitHeader parseState = iota
	awaitPercent
)

// parseGcovOutput scans combined gcov stdout/stderr and records one table
// entry per File header / Lines executed pair. A header not yet consumed
// by a percentage line is re-armed by the next header; a percentage line
// with no preceding header is ignored rather than crashing the parse.
func parseGcovOutput(output string, table Table) {
	state := awaitHeader
	var current string

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if m := reFileHeader.FindStringSubmatch(line); m != nil {
			current = m[1]
			state = awaitPercent
			continue
		}

		if state != awaitPercent {
			continue
		}

		m := reLinesExecuted.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		percent, _ := strconv.ParseFloat(m[1], 64)
		total, _ := strconv.Atoi(m[2])
		covered := int(float64(total) * percent / 100)
		table.Record(current, covered, total)

		current = ""
		state = awaitHeader
	}
}
