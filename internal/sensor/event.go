package sensor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Event is the canonical (timestamp, sensor, data) triple every source is
// normalized into. Timestamp is in milliseconds since the unix epoch.
type Event struct {
	Timestamp int64
	Sensor    Kind
	Data      Data
	// Raw is the data payload exactly as it was received or stored, if known.
	// When set it is what gets persisted and encoded in place of Data.
	Raw json.RawMessage
}

type eventJSON struct {
	Timestamp *int64          `json:"timestamp"`
	Sensor    Kind            `json:"sensor"`
	Data      json.RawMessage `json:"data"`
}

func (e Event) MarshalJSON() ([]byte, error) {
	data := e.Raw
	if len(data) == 0 {
		var err error
		if data, err = json.Marshal(e.Data); err != nil {
			return nil, err
		}
	}
	return json.Marshal(eventJSON{
		Timestamp: &e.Timestamp,
		Sensor:    e.Sensor,
		Data:      data,
	})
}

func (e *Event) UnmarshalJSON(b []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.Timestamp == nil {
		return fmt.Errorf("sensor event: missing timestamp")
	}

	data, err := DecodeData(raw.Sensor, raw.Data)
	if err != nil {
		return fmt.Errorf("sensor event data [%s]: %w", raw.Sensor, err)
	}

	e.Timestamp = *raw.Timestamp
	e.Sensor = raw.Sensor
	e.Data = data
	e.Raw = nil
	if data != nil {
		e.Raw = raw.Data
	}
	return nil
}

// DecodeData decodes a JSON payload into the Data variant dictated by kind.
// A payload that does not fit the kind's shape is kept as a Document; only
// malformed JSON is an error. An absent or null payload yields nil.
func DecodeData(kind Kind, raw json.RawMessage) (Data, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid json document")
	}

	switch {
	case kind.IsReading():
		var r Reading
		if err := json.Unmarshal(raw, &r); err == nil {
			return r, nil
		}
	case kind == KindContextualLocation:
		var cl ContextualLocation
		if err := json.Unmarshal(raw, &cl); err == nil {
			return cl, nil
		}
	}
	return Document(raw), nil
}

// Validate checks an event before it is written.
func (e Event) Validate() error {
	if !e.Sensor.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, e.Sensor)
	}
	if e.Timestamp < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTimestamp, e.Timestamp)
	}
	if e.Data == nil {
		return fmt.Errorf("%w: sensor [%s]", ErrMissingData, e.Sensor)
	}
	return nil
}

func (e Event) Time() time.Time {
	return time.UnixMilli(e.Timestamp).UTC()
}

// SortByTimestamp orders events by ascending timestamp, keeping the relative
// order of events with equal timestamps.
func SortByTimestamp(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
}

// Window is an optional time range in epoch milliseconds. Both bounds are
// inclusive, a nil bound is unbounded.
type Window struct {
	From *int64
	To   *int64
}

func (w Window) FromTime() *time.Time {
	return msToTime(w.From)
}

func (w Window) ToTime() *time.Time {
	return msToTime(w.To)
}

func (w Window) Contains(ts int64) bool {
	if w.From != nil && ts < *w.From {
		return false
	}
	if w.To != nil && ts > *w.To {
		return false
	}
	return true
}

func msToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}
