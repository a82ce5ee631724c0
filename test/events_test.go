//go:build integration_test || all_tests

package test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseTS int64 = 1_700_000_000_000

func (s *IntegrationTestSuite) TestSelect_MergesSourcesInTimestampOrder() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	p := s.newParticipant(newAdminID())
	s.addSteps(p, baseTS+300, 4200)
	s.addWeight(p, baseTS+100, 72.5)
	s.addLocation(p, baseTS+200, "40.7128,-74.0060", "I am at work with peers")
	s.insertEvent(ctx, p, sensor.Event{
		Timestamp: baseTS + 150,
		Sensor:    sensor.KindAccelerometer,
		Data:      sensor.Document(`{"x":1,"y":2,"z":3}`),
	})

	events := s.selectEvents(ctx, fmt.Sprintf("/participant/%s/sensor_event", p.scopeID()))
	assert.Equal(t, []int64{baseTS + 100, baseTS + 150, baseTS + 200, baseTS + 300}, timestamps(events))
	assert.Equal(t, []sensor.Kind{
		sensor.KindWeight,
		sensor.KindAccelerometer,
		sensor.KindContextualLocation,
		sensor.KindSteps,
	}, kinds(events))

	weight, ok := events[0].Data.(sensor.Reading)
	require.True(t, ok)
	assert.Equal(t, "kg", weight.Units)
	kilos, ok := weight.Value.Float()
	require.True(t, ok)
	assert.Equal(t, 72.5, kilos)

	location, ok := events[2].Data.(sensor.ContextualLocation)
	require.True(t, ok)
	assert.Equal(t, 40.7128, *location.Latitude)
	assert.Equal(t, sensor.LocationWork, *location.LocationContext)
	assert.Equal(t, sensor.SocialPeers, *location.SocialContext)

	// sensor filter
	events = s.selectEvents(ctx, fmt.Sprintf("/participant/%s/sensor_event?sensor=lamp.steps", p.scopeID()))
	assert.Equal(t, []sensor.Kind{sensor.KindSteps}, kinds(events))
}

func (s *IntegrationTestSuite) TestSelect_ScopeIsolation() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	adminA, adminB := newAdminID(), newAdminID()
	a1 := s.newParticipant(adminA)
	a2 := s.newParticipant(adminA)
	b := s.newParticipant(adminB)
	s.addSteps(a1, baseTS, 10)
	s.addSteps(a2, baseTS+1, 20)
	s.addSteps(b, baseTS+2, 30)

	events := s.selectEvents(ctx, fmt.Sprintf("/participant/%s/sensor_event", a1.scopeID()))
	assert.Equal(t, []int64{baseTS}, timestamps(events))

	events = s.selectEvents(ctx, fmt.Sprintf("/study/%s/sensor_event", studyScopeID(adminA)))
	assert.Equal(t, []int64{baseTS, baseTS + 1}, timestamps(events))

	events = s.selectEvents(ctx, fmt.Sprintf("/researcher/%s/sensor_event", studyScopeID(adminB)))
	assert.Equal(t, []int64{baseTS + 2}, timestamps(events))

	// unscoped select sees everyone
	events = s.selectEvents(ctx, "/sensor_event")
	assert.Subset(t, timestamps(events), []int64{baseTS, baseTS + 1, baseTS + 2})
}

func (s *IntegrationTestSuite) TestSelect_WindowIsInclusive() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := s.newParticipant(newAdminID())
	for i := int64(0); i < 5; i++ {
		s.addWeight(p, baseTS+i*1000, 70+float64(i))
	}

	events := s.selectEvents(ctx, fmt.Sprintf(
		"/participant/%s/sensor_event?from=%d&to=%d", p.scopeID(), baseTS+1000, baseTS+3000,
	))
	assert.Equal(s.T(), []int64{baseTS + 1000, baseTS + 2000, baseTS + 3000}, timestamps(events))

	events = s.selectEvents(ctx, fmt.Sprintf("/participant/%s/sensor_event?from=%d", p.scopeID(), baseTS+4000))
	assert.Equal(s.T(), []int64{baseTS + 4000}, timestamps(events))
}

func (s *IntegrationTestSuite) TestSelect_WindowBoundsAreExactToTheMillisecond() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := s.newParticipant(newAdminID())
	from, to := baseTS+10, baseTS+20
	for _, ts := range []int64{from - 1, from, to, to + 1} {
		s.addWeight(p, ts, 70)
		s.addLocation(p, ts, "1,1", "I am home alone")
		s.insertEvent(ctx, p, sensor.Event{
			Timestamp: ts,
			Sensor:    sensor.KindAccelerometer,
			Data:      sensor.Document(`{"x":1}`),
		})
	}

	events := s.selectEvents(ctx, fmt.Sprintf("/participant/%s/sensor_event?from=%d&to=%d", p.scopeID(), from, to))
	assert.Equal(s.T(), []int64{from, from, from, to, to, to}, timestamps(events))
}

func (s *IntegrationTestSuite) TestInsert_ReadBack() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	p := s.newParticipant(newAdminID())
	path := fmt.Sprintf("/participant/%s/sensor_event", p.scopeID())
	status, body := s.do(ctx, "POST", path,
		[]byte(fmt.Sprintf(`{"timestamp":%d,"sensor":"lamp.steps","data":{"value":42,"units":"steps"}}`, baseTS)))
	require.Equal(t, http.StatusCreated, status, string(body))

	events := s.selectEvents(ctx, path)
	require.Len(t, events, 1)
	assert.Equal(t, baseTS, events[0].Timestamp)
	assert.Equal(t, sensor.KindSteps, events[0].Sensor)
	steps, ok := events[0].Data.(sensor.Reading)
	require.True(t, ok)
	assert.Equal(t, sensor.Number(42), steps.Value)
	assert.Equal(t, "steps", steps.Units)
}

func (s *IntegrationTestSuite) TestInsert_PayloadStoredVerbatim() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	payloads := []struct {
		kind sensor.Kind
		data string
	}{
		{kind: sensor.KindSteps, data: `{"value":42,"units":"steps","source":"watch"}`},
		{kind: sensor.KindHeight, data: `{"value":180}`},
		{kind: sensor.KindContextualLocation, data: `{"latitude":1.5,"longitude":2.5,"altitude":30}`},
		{kind: sensor.KindSleep, data: `{"value":true}`},
	}

	p := s.newParticipant(newAdminID())
	path := fmt.Sprintf("/participant/%s/sensor_event", p.scopeID())
	for i, payload := range payloads {
		body := fmt.Sprintf(`{"timestamp":%d,"sensor":%q,"data":%s}`, baseTS+int64(i), payload.kind, payload.data)
		status, respBody := s.do(ctx, "POST", path, []byte(body))
		require.Equal(t, http.StatusCreated, status, string(respBody))
	}

	status, body := s.do(ctx, "GET", path, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var stored []struct {
		Sensor sensor.Kind     `json:"sensor"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &stored))
	require.Len(t, stored, len(payloads))
	for i, payload := range payloads {
		assert.Equal(t, payload.kind, stored[i].Sensor)
		assert.JSONEq(t, payload.data, string(stored[i].Data))
	}
}

func (s *IntegrationTestSuite) TestRetract_LeavesCustomEvents() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	p := s.newParticipant(newAdminID())
	s.addSteps(p, baseTS, 100)
	s.addWeight(p, baseTS+10, 80)
	s.addLocation(p, baseTS+20, "1,1", "I am home alone")
	s.insertEvent(ctx, p, sensor.Event{
		Timestamp: baseTS + 30,
		Sensor:    sensor.KindScreenState,
		Data:      sensor.Document(`{"state":2}`),
	})

	path := fmt.Sprintf("/participant/%s/sensor_event", p.scopeID())
	status, body := s.do(ctx, "DELETE", path, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	events := s.selectEvents(ctx, path)
	assert.Equal(t, []sensor.Kind{sensor.KindScreenState}, kinds(events))

	// retracting twice is a no-op
	status, _ = s.do(ctx, "DELETE", path, nil)
	assert.Equal(t, http.StatusOK, status)
}

func (s *IntegrationTestSuite) TestErrors() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, _ := s.do(ctx, "GET", "/participant/@@@/sensor_event", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	unknown := participant{id: "U0000000000"}
	status, _ = s.do(ctx, "DELETE", fmt.Sprintf("/participant/%s/sensor_event", unknown.scopeID()), nil)
	assert.Equal(t, http.StatusNotFound, status)

	p := s.newParticipant(newAdminID())
	status, _ = s.do(ctx, "POST", fmt.Sprintf("/participant/%s/sensor_event", p.scopeID()),
		[]byte(`{"timestamp":1,"sensor":"lamp.unknown","data":{}}`))
	assert.Equal(t, http.StatusBadRequest, status)

	req, err := http.NewRequestWithContext(ctx, "GET", serverEndpoint+"/sensor_event", nil)
	require.NoError(t, err)
	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
