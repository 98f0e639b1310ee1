package video

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCaps is wrapped by every caps parsing and layout error.
var ErrInvalidCaps = errors.New("invalid caps")

// ParseCaps parses caps text such as
//
//	video/x-raw, format=(string)BGRx, width=(int)[ 1, 4096 ], framerate=30/1; video/x-raw, format={ BGRx, GRAY8 }
//
// Type tags are optional; untagged values are read as fraction, int, then string.
// Blank text yields nil caps and "EMPTY" yields empty non-nil caps.
func ParseCaps(text string) (Caps, error) {
	text = strings.TrimSpace(text)
	switch text {
	case "":
		return nil, nil
	case "EMPTY":
		return Caps{}, nil
	}

	var caps Caps
	for _, part := range splitTopLevel(text, ';') {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		s, err := parseStructure(part)
		if err != nil {
			return nil, err
		}
		caps = append(caps, s)
	}
	return caps, nil
}

// MustParseCaps is like ParseCaps but panics on error. Intended for
// templates and tests.
func MustParseCaps(text string) Caps {
	caps, err := ParseCaps(text)
	if err != nil {
		panic(err)
	}
	return caps
}

func parseStructure(text string) (Structure, error) {
	tokens := splitTopLevel(text, ',')
	name := strings.TrimSpace(tokens[0])
	if name == "" || strings.Contains(name, "=") {
		return Structure{}, fmt.Errorf("%w: missing media type in %q", ErrInvalidCaps, text)
	}

	s := Structure{Name: name}
	for _, tok := range tokens[1:] {
		key, raw, ok := strings.Cut(tok, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return Structure{}, fmt.Errorf("%w: malformed field %q", ErrInvalidCaps, strings.TrimSpace(tok))
		}
		v, err := parseValue(strings.TrimSpace(raw))
		if err != nil {
			return Structure{}, fmt.Errorf("%w: field %s: %v", ErrInvalidCaps, key, err)
		}
		s.Set(key, v)
	}
	return s, nil
}

func parseValue(raw string) (Value, error) {
	tag := ""
	if strings.HasPrefix(raw, "(") {
		end := strings.IndexByte(raw, ')')
		if end < 0 {
			return nil, fmt.Errorf("unterminated type tag in %q", raw)
		}
		tag = normalizeTag(raw[1:end])
		raw = strings.TrimSpace(raw[end+1:])
	}
	if raw == "" {
		return nil, errors.New("empty value")
	}

	switch raw[0] {
	case '[':
		if !strings.HasSuffix(raw, "]") {
			return nil, fmt.Errorf("unterminated range %q", raw)
		}
		return parseRange(raw[1:len(raw)-1], tag)
	case '{':
		if !strings.HasSuffix(raw, "}") {
			return nil, fmt.Errorf("unterminated list %q", raw)
		}
		return parseList(raw[1:len(raw)-1], tag)
	default:
		return parseScalar(raw, tag)
	}
}

func parseRange(body, tag string) (Value, error) {
	bounds := strings.Split(body, ",")
	if len(bounds) != 2 {
		return nil, fmt.Errorf("range needs two bounds, got %q", body)
	}
	lo, err := parseScalar(strings.TrimSpace(bounds[0]), tag)
	if err != nil {
		return nil, err
	}
	hi, err := parseScalar(strings.TrimSpace(bounds[1]), tag)
	if err != nil {
		return nil, err
	}

	switch l := lo.(type) {
	case IntValue:
		h, ok := hi.(IntValue)
		if !ok || int(h) < int(l) {
			return nil, fmt.Errorf("bad int range [%s]", body)
		}
		return IntRange{Min: int(l), Max: int(h)}, nil
	case Fraction:
		h, ok := hi.(Fraction)
		if !ok || h.Compare(l) < 0 {
			return nil, fmt.Errorf("bad fraction range [%s]", body)
		}
		return FractionRange{Min: l, Max: h}, nil
	default:
		return nil, fmt.Errorf("ranges must be int or fraction, got [%s]", body)
	}
}

func parseList(body, tag string) (Value, error) {
	var out List
	for _, item := range strings.Split(body, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		v, err := parseScalar(item, tag)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty list")
	}
	return out, nil
}

func parseScalar(raw, tag string) (Value, error) {
	switch tag {
	case "int":
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("bad int %q", raw)
		}
		return IntValue(n), nil
	case "fraction":
		f, ok := parseFraction(raw)
		if !ok {
			return nil, fmt.Errorf("bad fraction %q", raw)
		}
		return f, nil
	case "string":
		return StringValue(unquote(raw)), nil
	case "":
		if f, ok := parseFraction(raw); ok {
			return f, nil
		}
		if n, err := strconv.Atoi(raw); err == nil {
			return IntValue(n), nil
		}
		return StringValue(unquote(raw)), nil
	default:
		return nil, fmt.Errorf("unsupported type %q", tag)
	}
}

func parseFraction(raw string) (Fraction, bool) {
	num, den, ok := strings.Cut(raw, "/")
	if !ok {
		return Fraction{}, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil {
		return Fraction{}, false
	}
	d, err := strconv.Atoi(strings.TrimSpace(den))
	if err != nil || d <= 0 {
		return Fraction{}, false
	}
	return Fraction{Num: n, Den: d}, true
}

func normalizeTag(tag string) string {
	switch strings.TrimSpace(tag) {
	case "int", "i", "gint":
		return "int"
	case "fraction", "GstFraction":
		return "fraction"
	case "string", "s", "gchararray":
		return "string"
	default:
		return tag
	}
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// splitTopLevel splits on sep outside of [] and {} brackets.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// ParseFraction parses "30/1" or a bare integer such as "25" (read as 25/1).
// Negative values are rejected.
func ParseFraction(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	f, ok := parseFraction(s)
	if !ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Fraction{}, fmt.Errorf("%w: bad fraction %q", ErrInvalidCaps, s)
		}
		f = Fraction{Num: n, Den: 1}
	}
	if f.Num < 0 {
		return Fraction{}, fmt.Errorf("%w: negative fraction %q", ErrInvalidCaps, s)
	}
	return f, nil
}
