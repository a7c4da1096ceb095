package apiclient

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

var null = []byte("null")

// Text decodes strings, numbers and booleans as text; null becomes "".
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(string(data))
	return nil
}

func (t Text) String() string { return string(t) }

// Int decodes integers sent as numbers or numeric strings; null becomes 0.
type Int int64

func (n *Int) UnmarshalJSON(data []byte) error {
	f, err := parseNumber(data)
	if err != nil {
		return err
	}
	*n = Int(int64(f))
	return nil
}

// Float decodes numbers sent as numbers or numeric strings; null becomes 0.
type Float float64

func (n *Float) UnmarshalJSON(data []byte) error {
	f, err := parseNumber(data)
	if err != nil {
		return err
	}
	*n = Float(f)
	return nil
}

// Flag decodes booleans sent as true/false, 0/1 or "0"/"1".
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true":
		*f = true
		return nil
	case "false", "null":
		*f = false
		return nil
	}
	n, err := parseNumber(data)
	if err != nil {
		text := strings.ToLower(strings.Trim(string(data), `"`))
		*f = Flag(text == "true" || text == "yes")
		return nil
	}
	*f = n != 0
	return nil
}

func parseNumber(data []byte) (float64, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, null) || len(data) == 0 {
		return 0, nil
	}
	raw := strings.TrimSpace(strings.Trim(string(data), `"`))
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}
