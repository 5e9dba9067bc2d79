// Package prompt reads numbered selections and confirmations from the console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// Prompter writes questions to out and reads one answer line per question from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter over the given input and output streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Out returns the writer prompts are printed to.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// SelectNumber asks for a number in [min, max]. Out-of-range or unparsable input
// is clamped into range rather than re-prompted.
func (p *Prompter) SelectNumber(question string, min, max int) (int, error) {
	fmt.Fprint(p.out, question)
	line, err := p.readLine()
	if err != nil {
		return 0, err
	}
	return Clamp(ParseNumber(line), min, max), nil
}

// Confirm asks a yes/no question where an empty answer means yes.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprint(p.out, question)
	line, err := p.readLine()
	if err != nil {
		return false, err
	}
	answer := strings.ToLower(line)
	return answer == "" || answer == "y", nil
}

// readLine returns the next trimmed line. A final line without a newline is
// accepted; io.EOF is only returned once nothing at all could be read.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ParseNumber reads the leading decimal digits of s, folding full-width digits
// typed through a Japanese IME. Input without leading digits yields 0.
func ParseNumber(s string) int {
	s = width.Narrow.String(strings.TrimSpace(s))
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only overflow can fail here.
		if s[0] == '-' {
			return -1
		}
		return int(^uint(0) >> 1)
	}
	return n
}

// Clamp bounds n to [min, max].
func Clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
