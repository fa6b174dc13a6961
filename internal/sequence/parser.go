package sequence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"osctest/internal/domain"

	"gopkg.in/yaml.v3"
)

// maxDelaySeconds is the first delay that no longer fits in a time.Duration.
const maxDelaySeconds = float64(math.MaxInt64) / float64(time.Second)

// Entry is the on-disk form of a test case. Delay is in seconds.
type Entry struct {
	Name    string  `json:"name" yaml:"name"`
	Address string  `json:"address" yaml:"address"`
	Args    []Arg   `json:"args" yaml:"args"`
	Delay   float64 `json:"delay" yaml:"delay"`
}

// Arg is a single OSC argument in a sequence file.
// Whole numbers decode to int32, other numbers to float32.
type Arg struct {
	Value any
}

// UnmarshalJSON keeps the literal form of numbers so 1.0 stays a float
func (a *Arg) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	value, err := normalize(v)
	if err != nil {
		return err
	}
	a.Value = value
	return nil
}

// MarshalJSON writes float32 values with a decimal point
func (a Arg) MarshalJSON() ([]byte, error) {
	if f, ok := a.Value.(float32); ok {
		return []byte(formatFloat(f)), nil
	}
	return json.Marshal(a.Value)
}

// UnmarshalYAML decodes a scalar argument
func (a *Arg) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	value, err := normalize(v)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	a.Value = value
	return nil
}

// MarshalYAML writes float32 values with an explicit float tag
func (a Arg) MarshalYAML() (any, error) {
	if f, ok := a.Value.(float32); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: formatFloat(f)}, nil
	}
	return a.Value, nil
}

// Parser converts between sequence file entries and test cases
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// ToCases validates entries and converts them to test cases
func (p *Parser) ToCases(entries []Entry) ([]domain.TestCase, error) {
	cases := make([]domain.TestCase, 0, len(entries))
	for i, e := range entries {
		if !strings.HasPrefix(e.Address, "/") {
			return nil, fmt.Errorf("entry %d: address %q must start with /", i+1, e.Address)
		}
		if e.Delay < 0 || math.IsNaN(e.Delay) || e.Delay >= maxDelaySeconds {
			return nil, fmt.Errorf("entry %d: invalid delay %v", i+1, e.Delay)
		}

		name := e.Name
		if name == "" {
			name = "Send " + e.Address
		}

		args := make([]any, 0, len(e.Args))
		for _, a := range e.Args {
			args = append(args, a.Value)
		}

		cases = append(cases, domain.TestCase{
			Name:    name,
			Address: e.Address,
			Args:    args,
			Delay:   time.Duration(e.Delay * float64(time.Second)),
		})
	}
	return cases, nil
}

// FromCases converts test cases to their on-disk form
func (p *Parser) FromCases(cases []domain.TestCase) []Entry {
	entries := make([]Entry, 0, len(cases))
	for _, tc := range cases {
		args := make([]Arg, 0, len(tc.Args))
		for _, v := range tc.Args {
			args = append(args, Arg{Value: v})
		}
		entries = append(entries, Entry{
			Name:    tc.Name,
			Address: tc.Address,
			Args:    args,
			Delay:   tc.Delay.Seconds(),
		})
	}
	return entries
}

// normalize maps decoded JSON/YAML values onto the OSC types the client encodes
func normalize(v any) (any, error) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return toInt32(i)
		}
		f, err := x.Float64()
		if err != nil {
			return nil, fmt.Errorf("invalid number %s", x)
		}
		return float32(f), nil
	case int:
		return toInt32(int64(x))
	case int64:
		return toInt32(x)
	case float64:
		return float32(x), nil
	case string, bool, nil:
		return x, nil
	default:
		return nil, fmt.Errorf("unsupported argument type %T", v)
	}
}

func toInt32(i int64) (any, error) {
	if i < math.MinInt32 || i > math.MaxInt32 {
		return nil, fmt.Errorf("integer %d out of int32 range", i)
	}
	return int32(i), nil
}

// formatFloat renders f the way an operator would type it: 1.0, 2.5, 1e+20
func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// FormatArgs renders an argument list like [128], [2.5], [1.0] or []
func FormatArgs(args []any) string {
	parts := make([]string, 0, len(args))
	for _, v := range args {
		switch x := v.(type) {
		case float32:
			parts = append(parts, formatFloat(x))
		case float64:
			parts = append(parts, formatFloat(float32(x)))
		case string:
			parts = append(parts, strconv.Quote(x))
		case nil:
			parts = append(parts, "nil")
		default:
			parts = append(parts, fmt.Sprint(x))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
