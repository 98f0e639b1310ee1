package video

import (
	"fmt"
	"math"
	"strings"
)

// MaxDimension is the upper bound used by the open width/height ranges of
// the pad templates.
const MaxDimension = math.MaxInt32

// Value is a caps field value: a fixed scalar, a range, or a list.
type Value interface {
	// String renders the value in caps text form, including its type tag.
	String() string
	// IsFixed reports whether the value names exactly one point.
	IsFixed() bool
}

// StringValue is a fixed string field.
type StringValue string

func (v StringValue) String() string { return "(string)" + string(v) }
func (v StringValue) IsFixed() bool  { return true }

// IntValue is a fixed integer field.
type IntValue int

func (v IntValue) String() string { return fmt.Sprintf("(int)%d", int(v)) }
func (v IntValue) IsFixed() bool  { return true }

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int
	Max int
}

func (v IntRange) String() string { return fmt.Sprintf("(int)[ %d, %d ]", v.Min, v.Max) }
func (v IntRange) IsFixed() bool  { return false }

// Contains reports whether n lies within the range.
func (v IntRange) Contains(n int) bool { return n >= v.Min && n <= v.Max }

// Fraction is a rational number, used for framerates. Den is always > 0.
type Fraction struct {
	Num int `json:"num"`
	Den int `json:"den"`
}

func (v Fraction) String() string { return "(fraction)" + v.text() }
func (v Fraction) IsFixed() bool  { return true }

func (v Fraction) text() string { return fmt.Sprintf("%d/%d", v.Num, v.Den) }

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater than o.
func (v Fraction) Compare(o Fraction) int {
	l := int64(v.Num) * int64(o.Den)
	r := int64(o.Num) * int64(v.Den)
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	default:
		return 0
	}
}

// Float returns the fraction as a float64.
func (v Fraction) Float() float64 {
	if v.Den == 0 {
		return 0
	}
	return float64(v.Num) / float64(v.Den)
}

// FractionRange is an inclusive fraction range.
type FractionRange struct {
	Min Fraction
	Max Fraction
}

func (v FractionRange) String() string {
	return fmt.Sprintf("(fraction)[ %s, %s ]", v.Min.text(), v.Max.text())
}
func (v FractionRange) IsFixed() bool { return false }

// Contains reports whether f lies within the range.
func (v FractionRange) Contains(f Fraction) bool {
	return f.Compare(v.Min) >= 0 && f.Compare(v.Max) <= 0
}

// List is a set of alternative scalar values, in preference order.
type List []Value

func (v List) String() string {
	if len(v) == 0 {
		return "{ }"
	}
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = untyped(e)
	}
	return fmt.Sprintf("%s{ %s }", typeTag(v[0]), strings.Join(parts, ", "))
}
func (v List) IsFixed() bool { return false }

// Field is a named caps value.
type Field struct {
	Name  string
	Value Value
}

// Structure is a media type plus an ordered set of fields.
type Structure struct {
	Name   string
	Fields []Field
}

// NewStructure creates a structure with the given media type and fields.
func NewStructure(name string, fields ...Field) Structure {
	return Structure{Name: name, Fields: fields}
}

// Get returns the value of the named field.
func (s Structure) Get(name string) (Value, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Int returns a fixed integer field.
func (s Structure) Int(name string) (int, bool) {
	v, ok := s.Get(name)
	if !ok {
		return 0, false
	}
	iv, ok := v.(IntValue)
	return int(iv), ok
}

// Str returns a fixed string field.
func (s Structure) Str(name string) (string, bool) {
	v, ok := s.Get(name)
	if !ok {
		return "", false
	}
	sv, ok := v.(StringValue)
	return string(sv), ok
}

// Fraction returns a fixed fraction field.
func (s Structure) Fraction(name string) (Fraction, bool) {
	v, ok := s.Get(name)
	if !ok {
		return Fraction{}, false
	}
	fv, ok := v.(Fraction)
	return fv, ok
}

// Set replaces the named field in place, or appends it.
func (s *Structure) Set(name string, v Value) {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			s.Fields[i].Value = v
			return
		}
	}
	s.Fields = append(s.Fields, Field{Name: name, Value: v})
}

// Clone returns a deep copy of the structure.
func (s Structure) Clone() Structure {
	out := Structure{Name: s.Name, Fields: make([]Field, len(s.Fields))}
	for i, f := range s.Fields {
		if l, ok := f.Value.(List); ok {
			f.Value = append(List(nil), l...)
		}
		out.Fields[i] = f
	}
	return out
}

// IsFixed reports whether every field holds a single value.
func (s Structure) IsFixed() bool {
	for _, f := range s.Fields {
		if !f.Value.IsFixed() {
			return false
		}
	}
	return true
}

// Equal reports whether both structures render identically.
func (s Structure) Equal(o Structure) bool {
	return s.String() == o.String()
}

// Intersect returns the structure describing what both s and o accept.
// Fields present on only one side are carried over unchanged.
func (s Structure) Intersect(o Structure) (Structure, bool) {
	if s.Name != o.Name {
		return Structure{}, false
	}
	out := Structure{Name: s.Name}
	for _, f := range s.Fields {
		ov, ok := o.Get(f.Name)
		if !ok {
			out.Fields = append(out.Fields, f)
			continue
		}
		v, ok := intersectValues(f.Value, ov)
		if !ok {
			return Structure{}, false
		}
		out.Fields = append(out.Fields, Field{Name: f.Name, Value: v})
	}
	for _, f := range o.Fields {
		if _, ok := s.Get(f.Name); !ok {
			out.Fields = append(out.Fields, f)
		}
	}
	return out, true
}

// Fixate picks a single value for every field: the first list entry and
// the lower bound of ranges.
func (s Structure) Fixate() Structure {
	out := Structure{Name: s.Name, Fields: make([]Field, len(s.Fields))}
	for i, f := range s.Fields {
		out.Fields[i] = Field{Name: f.Name, Value: fixateValue(f.Value)}
	}
	return out
}

// String renders the structure in GStreamer caps text form.
func (s Structure) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	for _, f := range s.Fields {
		b.WriteString(", ")
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(f.Value.String())
	}
	return b.String()
}

// Caps is an ordered set of structures, most preferred first.
// Empty caps match nothing. Only a nil filter means "no filter".
type Caps []Structure

// IsEmpty reports whether the caps contain no structures.
func (c Caps) IsEmpty() bool { return len(c) == 0 }

// IsFixed reports whether the caps hold exactly one fixed structure.
func (c Caps) IsFixed() bool { return len(c) == 1 && c[0].IsFixed() }

// Clone returns a deep copy.
func (c Caps) Clone() Caps {
	if c == nil {
		return nil
	}
	out := make(Caps, len(c))
	for i, s := range c {
		out[i] = s.Clone()
	}
	return out
}

// Fixate returns single fixed caps derived from the first structure.
func (c Caps) Fixate() Caps {
	if len(c) == 0 {
		return nil
	}
	return Caps{c[0].Fixate()}
}

// IntersectFirst intersects c, acting as a filter, with candidates. For every
// structure of c, in order, it keeps the intersection with the first
// compatible candidate. Order follows the filter, never the candidates.
func (c Caps) IntersectFirst(candidates Caps) Caps {
	var out Caps
	for _, fs := range c {
		for _, cs := range candidates {
			is, ok := fs.Intersect(cs)
			if !ok {
				continue
			}
			if !out.contains(is) {
				out = append(out, is)
			}
			break
		}
	}
	return out
}

// CanIntersect reports whether any pair of structures is compatible.
func (c Caps) CanIntersect(o Caps) bool {
	for _, a := range c {
		for _, b := range o {
			if _, ok := a.Intersect(b); ok {
				return true
			}
		}
	}
	return false
}

func (c Caps) contains(s Structure) bool {
	for _, e := range c {
		if e.Equal(s) {
			return true
		}
	}
	return false
}

// String renders the caps, structures separated by "; ".
func (c Caps) String() string {
	if len(c) == 0 {
		return "EMPTY"
	}
	parts := make([]string, len(c))
	for i, s := range c {
		parts[i] = s.String()
	}
	return strings.Join(parts, "; ")
}

func intersectValues(a, b Value) (Value, bool) {
	if la, ok := a.(List); ok {
		return intersectList(la, b)
	}
	if lb, ok := b.(List); ok {
		return intersectList(lb, a)
	}

	switch av := a.(type) {
	case StringValue:
		if bv, ok := b.(StringValue); ok && av == bv {
			return av, true
		}
	case IntValue:
		switch bv := b.(type) {
		case IntValue:
			if av == bv {
				return av, true
			}
		case IntRange:
			if bv.Contains(int(av)) {
				return av, true
			}
		}
	case IntRange:
		switch bv := b.(type) {
		case IntValue:
			return intersectValues(bv, av)
		case IntRange:
			lo, hi := max(av.Min, bv.Min), min(av.Max, bv.Max)
			switch {
			case lo > hi:
				return nil, false
			case lo == hi:
				return IntValue(lo), true
			default:
				return IntRange{Min: lo, Max: hi}, true
			}
		}
	case Fraction:
		switch bv := b.(type) {
		case Fraction:
			if av.Compare(bv) == 0 {
				return av, true
			}
		case FractionRange:
			if bv.Contains(av) {
				return av, true
			}
		}
	case FractionRange:
		switch bv := b.(type) {
		case Fraction:
			return intersectValues(bv, av)
		case FractionRange:
			lo, hi := av.Min, av.Max
			if bv.Min.Compare(lo) > 0 {
				lo = bv.Min
			}
			if bv.Max.Compare(hi) < 0 {
				hi = bv.Max
			}
			switch lo.Compare(hi) {
			case 1:
				return nil, false
			case 0:
				return lo, true
			default:
				return FractionRange{Min: lo, Max: hi}, true
			}
		}
	}
	return nil, false
}

func intersectList(l List, other Value) (Value, bool) {
	var out List
	for _, e := range l {
		v, ok := intersectValues(e, other)
		if !ok {
			continue
		}
		if sub, isList := v.(List); isList {
			for _, s := range sub {
				out = appendUnique(out, s)
			}
			continue
		}
		out = appendUnique(out, v)
	}
	switch len(out) {
	case 0:
		return nil, false
	case 1:
		return out[0], true
	default:
		return out, true
	}
}

func appendUnique(l List, v Value) List {
	for _, e := range l {
		if e.String() == v.String() {
			return l
		}
	}
	return append(l, v)
}

func fixateValue(v Value) Value {
	switch t := v.(type) {
	case List:
		if len(t) == 0 {
			return t
		}
		return fixateValue(t[0])
	case IntRange:
		return IntValue(t.Min)
	case FractionRange:
		return t.Min
	default:
		return v
	}
}

func typeTag(v Value) string {
	switch v.(type) {
	case IntValue, IntRange:
		return "(int)"
	case Fraction, FractionRange:
		return "(fraction)"
	default:
		return "(string)"
	}
}

func untyped(v Value) string {
	s := v.String()
	return strings.TrimPrefix(s, typeTag(v))
}
