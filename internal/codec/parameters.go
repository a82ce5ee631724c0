package codec

import (
	"errors"
	"fmt"

	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"
)

var ErrUnknownParameter = errors.New("unknown health metric parameter")

// parameterNames maps sensor kinds to the upstream column/parameter names used
// by the health metrics tables. The mapping is a bijection.
var parameterNames = map[sensor.Kind]string{
	sensor.KindHeight:          "Height",
	sensor.KindWeight:          "Weight",
	sensor.KindHeartRate:       "HeartRate",
	sensor.KindBloodPressure:   "BloodPressure",
	sensor.KindRespiratoryRate: "RespiratoryRate",
	sensor.KindSleep:           "Sleep",
	sensor.KindSteps:           "Steps",
	sensor.KindFlights:         "FlightClimbed",
	sensor.KindSegment:         "Segment",
	sensor.KindDistance:        "Distance",
}

var parameterKinds = func() map[string]sensor.Kind {
	m := make(map[string]sensor.Kind, len(parameterNames))
	for kind, name := range parameterNames {
		m[name] = kind
	}
	return m
}()

func ParameterForKind(kind sensor.Kind) (string, bool) {
	name, ok := parameterNames[kind]
	return name, ok
}

func KindForParameter(name string) (sensor.Kind, error) {
	kind, ok := parameterKinds[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownParameter, name)
	}
	return kind, nil
}
