package transcript

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// TimestampKind tells which representation a timestamp was written in.
type TimestampKind int

const (
	// TimestampInvalid is a missing or unparseable timestamp.
	TimestampInvalid TimestampKind = iota
	// TimestampRFC3339 is a string such as "2025-01-02T15:04:05.123Z".
	TimestampRFC3339
	// TimestampEpochMillis is a number of milliseconds since the Unix epoch.
	TimestampEpochMillis
)

// Timestamp is a transcript timestamp in either of its two representations.
// Decoding never fails; an unusable value is TimestampInvalid.
type Timestamp struct {
	Kind   TimestampKind
	text   string
	millis int64
}

// UnmarshalJSON implements json.Unmarshaler.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	*ts = parseTimestamp(data)
	return nil
}

// Time normalizes the timestamp to a time.Time. ok is false for invalid
// timestamps.
func (ts Timestamp) Time() (t time.Time, ok bool) {
	switch ts.Kind {
	case TimestampRFC3339:
		parsed, err := time.Parse(time.RFC3339Nano, ts.text)
		if err != nil {
			return time.Time{}, false
		}
		return parsed.UTC(), true
	case TimestampEpochMillis:
		return time.UnixMilli(ts.millis).UTC(), true
	default:
		return time.Time{}, false
	}
}

func parseTimestamp(data []byte) Timestamp {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Timestamp{}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Timestamp{}
		}
		if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return Timestamp{Kind: TimestampRFC3339, text: s}
		}
		// Some writers quote the epoch number.
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Timestamp{Kind: TimestampEpochMillis, millis: ms}
		}
		return Timestamp{}
	}

	// Only JSON numbers are epoch millis; null, bools and objects are invalid.
	if data[0] != '-' && (data[0] < '0' || data[0] > '9') {
		return Timestamp{}
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return Timestamp{}
	}
	return Timestamp{Kind: TimestampEpochMillis, millis: int64(f)}
}
