package sensor

import "errors"

var (
	ErrInvalidKind      = errors.New("invalid sensor kind")
	ErrInvalidTimestamp = errors.New("invalid event timestamp")
	ErrMissingData      = errors.New("missing event data")
)

// IsInvalidEvent reports whether err was caused by a malformed event.
func IsInvalidEvent(err error) bool {
	return errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrInvalidTimestamp) ||
		errors.Is(err, ErrMissingData)
}

// Kind identifies the semantic type of an event's data, e.g. lamp.height.
type Kind string

const (
	KindHeight          Kind = "lamp.height"
	KindWeight          Kind = "lamp.weight"
	KindHeartRate       Kind = "lamp.heart_rate"
	KindBloodPressure   Kind = "lamp.blood_pressure"
	KindRespiratoryRate Kind = "lamp.respiratory_rate"
	KindSleep           Kind = "lamp.sleep"
	KindSteps           Kind = "lamp.steps"
	KindFlights         Kind = "lamp.flights"
	KindSegment         Kind = "lamp.segment"
	KindDistance        Kind = "lamp.distance"

	KindContextualLocation Kind = "lamp.gps.contextual"

	KindGPS             Kind = "lamp.gps"
	KindAccelerometer   Kind = "lamp.accelerometer"
	KindMotion          Kind = "lamp.accelerometer.motion"
	KindDeviceMotion    Kind = "lamp.accelerometer.device_motion"
	KindGyroscope       Kind = "lamp.gyroscope"
	KindMagnetometer    Kind = "lamp.magnetometer"
	KindAnalytics       Kind = "lamp.analytics"
	KindScreenState     Kind = "lamp.screen_state"
	KindCalls           Kind = "lamp.calls"
	KindSMS             Kind = "lamp.sms"
	KindBluetooth       Kind = "lamp.bluetooth"
	KindWiFi            Kind = "lamp.wifi"
	KindAudioRecordings Kind = "lamp.audio_recordings"
	KindSurvey          Kind = "lamp.survey"
	KindNearbyDevice    Kind = "lamp.nearby_device"
	KindTelephony       Kind = "lamp.telephony"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindHeight,
		KindWeight,
		KindHeartRate,
		KindBloodPressure,
		KindRespiratoryRate,
		KindSleep,
		KindSteps,
		KindFlights,
		KindSegment,
		KindDistance,
		KindContextualLocation,
		KindGPS,
		KindAccelerometer,
		KindMotion,
		KindDeviceMotion,
		KindGyroscope,
		KindMagnetometer,
		KindAnalytics,
		KindScreenState,
		KindCalls,
		KindSMS,
		KindBluetooth,
		KindWiFi,
		KindAudioRecordings,
		KindSurvey,
		KindNearbyDevice,
		KindTelephony:
		return true
	default:
		return false
	}
}

// IsReading reports whether events of this kind carry a {value, units} reading.
func (k Kind) IsReading() bool {
	switch k {
	case KindHeight,
		KindWeight,
		KindHeartRate,
		KindBloodPressure,
		KindRespiratoryRate,
		KindSleep,
		KindSteps,
		KindFlights,
		KindSegment,
		KindDistance:
		return true
	default:
		return false
	}
}
