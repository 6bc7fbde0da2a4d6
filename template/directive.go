package template

import (
	"fmt"
	"strconv"

	"github.com/wippyai/ctypes/ctype"
	"github.com/wippyai/ctypes/errors"
)

const maxCount = 1 << 20

type directive struct {
	base    string
	ordered bool
}

// Numeric directives. Ordered ones default to native order and accept the
// < and > modifiers.
var directives = map[byte]directive{
	'c': {base: "int8"},
	'C': {base: "uint8"},
	's': {base: "int16", ordered: true},
	'S': {base: "uint16", ordered: true},
	'l': {base: "int32", ordered: true},
	'L': {base: "uint32", ordered: true},
	'q': {base: "int64", ordered: true},
	'Q': {base: "uint64", ordered: true},
	'n': {base: "uint16_be"},
	'N': {base: "uint32_be"},
	'v': {base: "uint16_le"},
	'V': {base: "uint32_le"},
	'f': {base: "float32_ne"},
	'd': {base: "float64_ne"},
	'e': {base: "float32_le"},
	'E': {base: "float64_le"},
	'g': {base: "float32_be"},
	'G': {base: "float64_be"},
}

var scalars = ctype.ScalarTable(ctype.Native)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func badFormat(format string, pos int, msg string, args ...any) error {
	return errors.New(errors.PhaseCompile, errors.KindInvalidInput).
		Value(format).
		Detail("format %q at %d: %s", format, pos, fmt.Sprintf(msg, args...)).
		Build()
}

// parseFormat turns a directive string into template entries.
func parseFormat(format string) ([]entry, error) {
	var out []entry
	for i := 0; i < len(format); {
		c, pos := format[i], i
		i++
		if isSpace(c) {
			continue
		}

		suffix := ""
		for i < len(format) && (format[i] == '<' || format[i] == '>') {
			if d, ok := directives[c]; !ok || !d.ordered {
				return nil, badFormat(format, i, "modifier %q not allowed after %q", format[i], c)
			}
			s := "_le"
			if format[i] == '>' {
				s = "_be"
			}
			if suffix != "" && suffix != s {
				return nil, badFormat(format, i, "conflicting byte order modifiers")
			}
			suffix = s
			i++
		}

		count, star := 1, false
		switch {
		case i < len(format) && format[i] == '*':
			star = true
			i++
		case i < len(format) && format[i] >= '0' && format[i] <= '9':
			j := i
			for j < len(format) && format[j] >= '0' && format[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(format[i:j])
			if err != nil || n > maxCount {
				return nil, badFormat(format, i, "count %s too large", format[i:j])
			}
			count, i = n, j
		}

		switch c {
		case 'x':
			if star {
				return nil, badFormat(format, pos, "x does not take *")
			}
			if count > 0 {
				out = append(out, entry{name: "x" + strconv.Itoa(count), skip: count})
			}
		case 'a', 'A', 'Z':
			if star {
				out = append(out, entry{name: string(c) + "*", str: c})
				continue
			}
			if count == 0 {
				return nil, badFormat(format, pos, "%c needs a positive width", c)
			}
			p := newPadded(c, count)
			out = append(out, entry{name: p.name, t: p})
		default:
			d, ok := directives[c]
			if !ok {
				return nil, badFormat(format, pos, "unknown directive %q", c)
			}
			name := d.base
			if d.ordered {
				if suffix == "" {
					suffix = "_ne"
				}
				name += suffix
			}
			t := scalars[name]
			if star {
				out = append(out, entry{name: name + "*", t: t, rest: true})
				continue
			}
			for i := 0; i < count; i++ {
				out = append(out, entry{name: name, t: t})
			}
		}
	}
	return out, nil
}
