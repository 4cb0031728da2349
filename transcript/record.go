package transcript

import (
	"encoding/json"
)

// Record is the part of a transcript line the analyzer uses. Each field is
// decoded on its own so that one malformed field does not discard the rest.
type Record struct {
	Type      string
	Timestamp Timestamp
	Role      string
	Usage     *Usage
}

// IsAssistant reports whether the record is an assistant message, by
// message.role or, for the simplified format, by the top-level type.
func (r Record) IsAssistant() bool {
	if r.Role != "" {
		return r.Role == "assistant"
	}
	return r.Type == "assistant"
}

type rawRecord struct {
	Type      json.RawMessage `json:"type"`
	Timestamp json.RawMessage `json:"timestamp"`
	Message   json.RawMessage `json:"message"`
}

type rawMessage struct {
	Role  json.RawMessage `json:"role"`
	Usage json.RawMessage `json:"usage"`
}

// ParseRecord decodes one transcript line. Only a line that is not a JSON
// object is an error.
func ParseRecord(line []byte) (Record, error) {
	var raw rawRecord
	if err := json.Unmarshal(line, &raw); err != nil {
		return Record{}, err
	}

	rec := Record{
		Type:      stringField(raw.Type),
		Timestamp: parseTimestamp(raw.Timestamp),
	}

	var msg rawMessage
	if len(raw.Message) > 0 && json.Unmarshal(raw.Message, &msg) == nil {
		rec.Role = stringField(msg.Role)
		if len(msg.Usage) > 0 && msg.Usage[0] == '{' {
			var u Usage
			_ = json.Unmarshal(msg.Usage, &u)
			rec.Usage = &u
		}
	}
	return rec, nil
}

func stringField(raw json.RawMessage) string {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return ""
	}
	return s
}
