package table

import (
	"errors"
	"strconv"
	"strings"
)

// IsNullToken reports whether a raw cell denotes a missing value: the empty
// string or "na" in any case.
func IsNullToken(s string) bool {
	return s == "" || strings.EqualFold(s, "na")
}

// InferColumn classifies raw cells into exactly one column type and parses
// every cell to it. Candidates are tried in the order integer, float, boolean,
// string; a single unparsable non-null cell rejects a candidate.
func InferColumn(raw []string) Column {
	if c, ok := parseIntegers(raw); ok {
		return c
	}
	if c, ok := parseFloats(raw); ok {
		return c
	}
	if c, ok := parseBooleans(raw); ok {
		return c
	}
	return parseStrings(raw)
}

func parseIntegers(raw []string) (*IntegerColumn, bool) {
	var b IntegerBuilder
	b.reserve(len(raw))
	for _, s := range raw {
		if IsNullToken(s) {
			b.AppendNull()
			continue
		}
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false
		}
		b.Append(v)
	}
	return b.Build(), true
}

func parseFloats(raw []string) (*FloatColumn, bool) {
	var b FloatBuilder
	b.reserve(len(raw))
	for _, s := range raw {
		if IsNullToken(s) {
			b.AppendNull()
			continue
		}
		v, ok := ParseFloat(s)
		if !ok {
			return nil, false
		}
		b.Append(v)
	}
	return b.Build(), true
}

// ParseFloat accepts decimal and exponent notation plus inf, infinity and nan
// in any case. Out-of-range literals saturate to ±Inf. Hex floats and digit
// separators are rejected.
func ParseFloat(s string) (float64, bool) {
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	t := strings.TrimLeft(s, "+-")
	if len(t) > 1 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X') {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// ParseBool maps true/1/yes and false/0/no, case-insensitively.
func ParseBool(s string) (value, ok bool) {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true, true
	case "false", "0", "no":
		return false, true
	}
	return false, false
}

func parseBooleans(raw []string) (*BooleanColumn, bool) {
	var b BooleanBuilder
	b.reserve(len(raw))
	for _, s := range raw {
		if IsNullToken(s) {
			b.AppendNull()
			continue
		}
		v, ok := ParseBool(s)
		if !ok {
			return nil, false
		}
		b.Append(v)
	}
	return b.Build(), true
}

func parseStrings(raw []string) *StringColumn {
	var b StringBuilder
	b.reserve(len(raw))
	for _, s := range raw {
		if IsNullToken(s) {
			b.AppendNull()
			continue
		}
		b.Append(s)
	}
	return b.Build()
}
