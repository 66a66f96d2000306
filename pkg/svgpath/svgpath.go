// Package svgpath parses, measures, scales, and serializes SVG path data.
package svgpath

import (
	"fmt"
	"strconv"
	"strings"
)

// svg-path:
//     wsp* moveto-drawto-command-groups? wsp*
// moveto-drawto-command-group:
//     moveto wsp* drawto-commands?
// drawto-command:
//     closepath | lineto | horizontal-lineto | vertical-lineto | curveto
//     | smooth-curveto | quadratic-bezier-curveto
//     | smooth-quadratic-bezier-curveto | elliptical-arc
// elliptical-arc-argument:
//     nonnegative-number comma-wsp? nonnegative-number comma-wsp?
//         number comma-wsp flag comma-wsp? flag comma-wsp? coordinate-pair
// number:
//     sign? integer-constant
//     | sign? floating-point-constant
// flag:
//     "0" | "1"
// comma-wsp:
//     (wsp+ comma? wsp*) | (comma wsp*)
// wsp:
//     (#x20 | #x9 | #xD | #xA)
//
// The full grammar is at https://www.w3.org/TR/SVG11/paths.html#PathDataBNF.

// Command is one path command letter with its argument list. Repeated
// argument groups (e.g. "L 1 2 3 4") stay in a single Command.
type Command struct {
	Name byte
	Args []float64
}

// Path is a parsed path-data string. Commands keep their original
// letters, so absolute and relative forms survive a round trip.
type Path struct {
	Commands []*Command
}

// arity is the number of arguments in one argument group, keyed by
// upper-case command letter.
var arity = map[byte]int{
	'M': 2,
	'L': 2,
	'T': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'A': 7,
	'Z': 0,
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

type state struct {
	data  string
	index int
	path  *Path
}

func (s *state) parse() error {
	// svg-path:
	//     wsp* moveto-drawto-command-groups? wsp*
	for {
		s.whitespace()

		c := s.peek()
		if c != 'M' && c != 'm' {
			break
		}

		err := s.parseCommand()
		if err != nil {
			return err
		}
		s.whitespace()
		err = s.parseDrawToCommands()
		if err != nil {
			return err
		}
	}

	s.whitespace()

	if s.index != len(s.data) {
		return fmt.Errorf("unparsed data: %q", s.data[s.index:])
	}

	return nil
}

// parseDrawToCommands parses 0 or more Draw To commands.
func (s *state) parseDrawToCommands() error {
	first := true
	for {
		if !first {
			s.whitespace()
		}
		first = false

		switch upper(s.peek()) {
		case 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		default:
			return nil
		}

		if err := s.parseCommand(); err != nil {
			return err
		}
	}
}

// parseCommand parses a command letter followed by one or more argument
// groups (none for close path).
func (s *state) parseCommand() error {
	name := s.next()
	n, ok := arity[upper(name)]
	if !ok {
		return fmt.Errorf("unknown command %q", string(name))
	}
	cmd := &Command{Name: name}
	s.path.Commands = append(s.path.Commands, cmd)
	if n == 0 {
		return nil
	}

	s.whitespace()

	first := true
	for {
		oldIndex := s.index
		if !first {
			s.commaWhitespace()
		}

		args, err := s.parseArgumentGroup(upper(name), n)
		if err != nil {
			if !first {
				// backtrack.
				s.index = oldIndex
				return nil
			}
			return fmt.Errorf("command %q: %w", string(name), err)
		}
		cmd.Args = append(cmd.Args, args...)

		first = false
	}
}

func (s *state) parseArgumentGroup(name byte, n int) ([]float64, error) {
	args := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			s.commaWhitespace()
		}
		var v float64
		var err error
		if name == 'A' && (i == 3 || i == 4) {
			v, err = s.parseFlag()
		} else {
			v, err = s.parseNumber()
		}
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

func (s *state) parseFlag() (float64, error) {
	c := s.next()
	switch c {
	case '0':
		return 0, nil
	case '1':
		return 1, nil
	}
	return 0, fmt.Errorf("expected a flag, got %q", string(c))
}

// parseNumber parses a number
func (s *state) parseNumber() (float64, error) {
	// number:
	//     sign? integer-constant
	//     | sign? floating-point-constant
	// sign:
	//     "+" | "-"
	c := s.peek()
	if c == '+' || c == '-' {
		s.next()
		n, err := s.parseNonNegativeNumber()
		if c == '-' {
			n = -n
		}
		return n, err
	}
	return s.parseNonNegativeNumber()
}

func (s *state) parseNonNegativeNumber() (float64, error) {
	// nonnegative-number:
	//     (digit-sequence | fractional-constant) exponent?
	// fractional-constant:
	//     digit-sequence? "." digit-sequence
	//     | digit-sequence "."
	// exponent:
	//     ( "e" | "E" ) sign? digit-sequence

	number := s.digitSequence()
	if number == "" {
		// Possible fractional constant starting with a decimal point
		c := s.next()
		if c != '.' {
			return 0, fmt.Errorf("expected a number, got %q", string(c))
		}
		number = "." + s.digitSequence()
		if number == "." {
			return 0, fmt.Errorf("expected a number, got only a \".\"")
		}
	} else {
		// Check for possible fractional constant
		c := s.peek()
		if c == '.' {
			s.next()
			number += "." + s.digitSequence()
		}
	}

	// Check for possible exponent
	c := s.peek()
	if c == 'E' || c == 'e' {
		s.next()
		sign := ""
		c = s.peek()
		if c == '+' || c == '-' {
			s.next()
			sign = string(c)
		}
		exponent := s.digitSequence()
		if exponent == "" {
			return 0, fmt.Errorf("expected an exponent, got %q", string(c))
		}
		number += "E" + sign + exponent
	}

	return strconv.ParseFloat(number, 64)
}

func (s *state) digitSequence() string {
	start := s.index
	for {
		c := s.peek()
		if '0' <= c && c <= '9' {
			s.next()
		} else {
			break
		}
	}
	return s.data[start:s.index]
}

// whitespace consumes "wsp*", and returns the number of bytes consumed
func (s *state) whitespace() int {
	count := 0
	for {
		switch s.peek() {
		case ' ', '\t', '\n', '\r':
			s.next()
			count++
		default:
			return count
		}
	}
}

// commaWhitespace consumes an optional "(wsp+ comma? wsp*) | (comma wsp*)",
// and returns true if something was consumed
func (s *state) commaWhitespace() bool {
	if s.peek() == ',' {
		s.next()
		s.whitespace()
		return true
	}

	consumed := s.whitespace()
	if consumed > 0 {
		if s.peek() == ',' {
			s.next()
		}
		s.whitespace()
		return true
	}

	return false
}

// peek returns the next byte without consuming it, or 0 if at the end of stream
func (s *state) peek() byte {
	if s.index < len(s.data) {
		return s.data[s.index]
	}
	return 0
}

// next consumes and returns the next byte, or 0 if at the end of stream
func (s *state) next() byte {
	if s.index < len(s.data) {
		i := s.index
		s.index++
		return s.data[i]
	}
	return 0
}

// Parse parses a path string. Data that does not begin with a move-to
// command is rejected.
func Parse(path string) (*Path, error) {
	s := &state{
		data: path,
		path: &Path{},
	}
	if err := s.parse(); err != nil {
		return nil, err
	}
	return s.path, nil
}

// String serializes the path. Numbers are written in plain decimal
// notation, so the result never contains an exponent.
func (p *Path) String() string {
	var buf strings.Builder
	for i, cmd := range p.Commands {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteByte(cmd.Name)
		for _, arg := range cmd.Args {
			buf.WriteString(" " + formatNumber(arg))
		}
	}
	return buf.String()
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
