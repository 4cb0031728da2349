package statusline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/grovetools/statusline/errors"
)

// StatusInput is the JSON document Claude Code writes to the status line
// command's stdin. Empty strings and nil pointers mean "absent".
type StatusInput struct {
	CurrentDir     string
	ModelName      string
	ModelID        string
	TranscriptPath string
	SessionID      string

	CostUSD      *float64
	LinesAdded   *int64
	LinesRemoved *int64
}

type object map[string]json.RawMessage

// ParseInput decodes stdin. Only a document that is not a JSON object is an
// error; fields of an unexpected type are treated as absent.
func ParseInput(data []byte) (*StatusInput, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.InvalidInput(fmt.Errorf("expected a JSON object"))
	}

	var root object
	if err := json.Unmarshal(trimmed, &root); err != nil {
		return nil, errors.InvalidInput(err)
	}

	workspace := root.object("workspace")
	model := root.object("model")
	cost := root.object("cost")

	in := &StatusInput{
		CurrentDir:     workspace.string("current_dir"),
		ModelName:      model.string("display_name"),
		ModelID:        model.string("id"),
		TranscriptPath: root.string("transcript_path"),
		SessionID:      root.string("session_id"),
		CostUSD:        cost.number("total_cost_usd"),
		LinesAdded:     cost.integer("total_lines_added"),
		LinesRemoved:   cost.integer("total_lines_removed"),
	}
	if in.CurrentDir == "" {
		in.CurrentDir = root.string("cwd")
	}
	return in, nil
}

// field returns the raw value of key; JSON null counts as absent.
func (o object) field(key string) (json.RawMessage, bool) {
	raw, ok := o[key]
	if !ok {
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, false
	}
	return raw, true
}

func (o object) object(key string) object {
	raw, ok := o.field(key)
	if !ok {
		return nil
	}
	var nested object
	if err := json.Unmarshal(raw, &nested); err != nil {
		return nil
	}
	return nested
}

func (o object) string(key string) string {
	raw, ok := o.field(key)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// number accepts JSON numbers and numeric strings.
func (o object) number(key string) *float64 {
	raw, ok := o.field(key)
	if !ok {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return nil
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func (o object) integer(key string) *int64 {
	f := o.number(key)
	if f == nil {
		return nil
	}
	n := int64(*f)
	return &n
}
