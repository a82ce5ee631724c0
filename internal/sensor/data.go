package sensor

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Data is the payload of an Event. The concrete type is determined by the
// event's sensor kind: Reading, ContextualLocation or Document.
type Data interface {
	isData()
}

type valueState uint8

const (
	valueAbsent valueState = iota
	valueNumber
	valueText
)

// Value is the value half of a reading: a number, a string, or absent.
// The zero Value is absent and encodes as JSON null.
type Value struct {
	state valueState
	num   float64
	text  string
}

func Number(f float64) Value {
	return Value{state: valueNumber, num: f}
}

func Text(s string) Value {
	return Value{state: valueText, text: s}
}

func (v Value) IsAbsent() bool {
	return v.state == valueAbsent
}

func (v Value) Float() (float64, bool) {
	return v.num, v.state == valueNumber
}

func (v Value) Text() (string, bool) {
	return v.text, v.state == valueText
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.state {
	case valueNumber:
		return json.Marshal(v.num)
	case valueText:
		return json.Marshal(v.text)
	default:
		return []byte("null"), nil
	}
}

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = Value{}
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Text(s)
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err != nil {
			return fmt.Errorf("reading value must be a number, a string or null: %w", err)
		}
		*v = Number(f)
	}
	return nil
}

// Reading is a {value, units} pair produced by the health metrics codecs.
// Units may be an empty string.
type Reading struct {
	Value Value  `json:"value"`
	Units string `json:"units"`
}

func (Reading) isData() {}

type LocationContext string

const (
	LocationHome     LocationContext = "home"
	LocationSchool   LocationContext = "school"
	LocationWork     LocationContext = "work"
	LocationHospital LocationContext = "hospital"
	LocationOutside  LocationContext = "outside"
	LocationShopping LocationContext = "shopping"
	LocationTransit  LocationContext = "transit"
)

type SocialContext string

const (
	SocialAlone   SocialContext = "alone"
	SocialFriends SocialContext = "friends"
	SocialFamily  SocialContext = "family"
	SocialPeers   SocialContext = "peers"
	SocialCrowd   SocialContext = "crowd"
)

// ContextualLocation is a GPS fix optionally annotated with a self-reported
// location and social context.
type ContextualLocation struct {
	Latitude        *float64         `json:"latitude"`
	Longitude       *float64         `json:"longitude"`
	Accuracy        *float64         `json:"accuracy,omitempty"`
	LocationContext *LocationContext `json:"location_context,omitempty"`
	SocialContext   *SocialContext   `json:"social_context,omitempty"`
}

func (ContextualLocation) isData() {}

// Document is a schema-free JSON payload kept verbatim, as stored by custom events.
type Document json.RawMessage

func (Document) isData() {}

func (d Document) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return json.RawMessage(d).MarshalJSON()
}

func (d *Document) UnmarshalJSON(b []byte) error {
	if d == nil {
		return fmt.Errorf("sensor.Document: UnmarshalJSON on nil pointer")
	}
	*d = append((*d)[0:0], b...)
	return nil
}
