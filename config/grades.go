package config

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Grades lists the acceptable grade tiers of a session. It is stored as a
// comma separated string such as "1, 2, 3".
type Grades []uint

// ParseGrades splits s on commas, trims each piece and parses it as a
// non-negative integer with an optional leading '+'. Every piece must parse,
// so "", "+" and "1,,3" fail.
func ParseGrades(s string) (Grades, error) {
	items := strings.Split(s, ",")
	ret := make(Grades, 0, len(items))
	for _, item := range items {
		v, err := strconv.ParseUint(unsigned(strings.TrimSpace(item)), 10, strconv.IntSize)
		if err != nil {
			return nil, &FieldFormatError{Field: "grades", Value: s, Err: err}
		}
		ret = append(ret, uint(v))
	}
	return ret, nil
}

// unsigned drops one leading '+' when a digit follows it.
func unsigned(s string) string {
	if len(s) > 1 && s[0] == '+' && s[1] >= '0' && s[1] <= '9' {
		return s[1:]
	}
	return s
}

// String returns the comma separated form.
func (g Grades) String() string {
	items := make([]string, len(g))
	for i, v := range g {
		items[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(items, ",")
}

func (g *Grades) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseGrades(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

func (g Grades) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.String())
}

func (g Grades) MarshalYAML() (interface{}, error) {
	return g.String(), nil
}
