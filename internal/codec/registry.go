package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mintra-ruensuk/LAMP-server/internal/crypt"
	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"
)

// notAvailable is what the app stores when a metric was not collected.
const notAvailable = "NA"

// Codec converts between the external encoded string of one health metric and
// its canonical reading.
type Codec struct {
	Units   string
	Numeric bool
	// ZeroIsAbsent marks kinds where a reading of 0 means "no data".
	ZeroIsAbsent bool
}

var codecs = map[sensor.Kind]Codec{
	sensor.KindHeight:          {Units: "cm", Numeric: true},
	sensor.KindWeight:          {Units: "kg", Numeric: true},
	sensor.KindHeartRate:       {Units: "bpm", Numeric: true},
	sensor.KindBloodPressure:   {Units: "mmhg"},
	sensor.KindRespiratoryRate: {Units: "breaths/min", Numeric: true},
	sensor.KindSleep:           {},
	sensor.KindSteps:           {Units: "steps", Numeric: true, ZeroIsAbsent: true},
	sensor.KindFlights:         {Units: "steps", Numeric: true, ZeroIsAbsent: true}, // stored with the steps suffix
	sensor.KindSegment:         {Numeric: true},
	sensor.KindDistance:        {Units: "meters", Numeric: true},
}

func (c Codec) suffix() string {
	if c.Units == "" {
		return ""
	}
	return " " + c.Units
}

// Decode turns a stored value into a reading. A value that cannot be decrypted,
// is empty, or is "NA" yields an absent reading value.
func (c Codec) Decode(cipher crypt.Cipher, raw string) sensor.Reading {
	reading := sensor.Reading{Units: c.Units}

	plaintext, ok := c.decrypt(cipher, raw)
	if !ok || plaintext == "" || plaintext == notAvailable {
		return reading
	}

	text := strings.TrimSuffix(plaintext, c.suffix())
	if !c.Numeric {
		reading.Value = sensor.Text(text)
		return reading
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return reading
	}
	if c.ZeroIsAbsent && f == 0 {
		return reading
	}
	reading.Value = sensor.Number(f)
	return reading
}

// decrypt handles both stored layouts: the whole "<value> <units>" string
// encrypted, and the layout Encode writes, where only the value is encrypted
// and the unit suffix is appended in the clear.
func (c Codec) decrypt(cipher crypt.Cipher, raw string) (string, bool) {
	if plaintext, ok := cipher.Decrypt(raw); ok {
		return plaintext, true
	}
	suffix := c.suffix()
	if suffix == "" || !strings.HasSuffix(raw, suffix) {
		return "", false
	}
	return cipher.Decrypt(strings.TrimSuffix(raw, suffix))
}

// Encode is the inverse of Decode: the formatted value is encrypted and the
// unit suffix is appended after the ciphertext.
func (c Codec) Encode(cipher crypt.Cipher, reading sensor.Reading) string {
	return cipher.Encrypt(formatValue(reading.Value)) + c.suffix()
}

func formatValue(v sensor.Value) string {
	if f, ok := v.Float(); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if s, ok := v.Text(); ok {
		return s
	}
	return notAvailable
}

// Registry binds the static codec table to a field cipher.
type Registry struct {
	cipher crypt.Cipher
}

func NewRegistry(cipher crypt.Cipher) *Registry {
	return &Registry{
		cipher: cipher,
	}
}

func Lookup(kind sensor.Kind) (Codec, bool) {
	c, ok := codecs[kind]
	return c, ok
}

func (r *Registry) Decode(kind sensor.Kind, raw string) (sensor.Reading, error) {
	c, ok := codecs[kind]
	if !ok {
		return sensor.Reading{}, fmt.Errorf("no codec for sensor [%s]", kind)
	}
	return c.Decode(r.cipher, raw), nil
}

func (r *Registry) Encode(kind sensor.Kind, reading sensor.Reading) (string, error) {
	c, ok := codecs[kind]
	if !ok {
		return "", fmt.Errorf("no codec for sensor [%s]", kind)
	}
	return c.Encode(r.cipher, reading), nil
}

// DecodeParameter maps an upstream parameter name to its sensor kind and
// decodes the raw value with that kind's codec.
func (r *Registry) DecodeParameter(paramName, raw string) (sensor.Kind, sensor.Reading, error) {
	kind, err := KindForParameter(paramName)
	if err != nil {
		return "", sensor.Reading{}, err
	}
	reading, err := r.Decode(kind, raw)
	if err != nil {
		return "", sensor.Reading{}, err
	}
	return kind, reading, nil
}
