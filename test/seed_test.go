//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mintra-ruensuk/LAMP-server/internal/codec"
	"github.com/mintra-ruensuk/LAMP-server/internal/scope"
	"github.com/mintra-ruensuk/LAMP-server/internal/sensor"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

type participant struct {
	id      string
	adminID int64
	userID  int64
}

func (p participant) scopeID() string {
	return scope.Pack(scope.Identifier{Kind: scope.KindParticipant, ParticipantID: p.id})
}

func studyScopeID(adminID int64) string {
	return scope.Pack(scope.Identifier{Kind: scope.KindStudy, AdminID: adminID})
}

// newParticipant seeds a user under a fresh admin, so scoped selects only see
// what the calling test inserted.
func (s *IntegrationTestSuite) newParticipant(adminID int64) participant {
	p := participant{
		id:      "U" + gofakeit.DigitN(10),
		adminID: adminID,
	}
	err := s.DB.QueryRow(`
		INSERT INTO users (study_id, admin_id) VALUES ($1, $2) RETURNING user_id
	`, s.cipher.Encrypt(p.id), adminID).Scan(&p.userID)
	require.NoError(s.T(), err)
	return p
}

func newAdminID() int64 {
	return int64(gofakeit.Number(1_000, 1_000_000_000))
}

func (s *IntegrationTestSuite) addSteps(p participant, ts int64, steps float64) {
	encoded, err := codec.NewRegistry(s.cipher).Encode(sensor.KindSteps, sensor.Reading{Value: sensor.Number(steps)})
	require.NoError(s.T(), err)
	_, err = s.DB.Exec(`
		INSERT INTO health_kit_daily_value (user_id, created_on, steps) VALUES ($1, $2, $3)
	`, p.userID, time.UnixMilli(ts), encoded)
	require.NoError(s.T(), err)
}

func (s *IntegrationTestSuite) addWeight(p participant, ts int64, kilos float64) {
	encoded, err := codec.NewRegistry(s.cipher).Encode(sensor.KindWeight, sensor.Reading{Value: sensor.Number(kilos)})
	require.NoError(s.T(), err)
	_, err = s.DB.Exec(`
		INSERT INTO health_kit_param_value (user_id, param_id, param_value, created_on)
		SELECT $1, param_id, $2, $3 FROM health_kit_parameter WHERE param_name = 'Weight'
	`, p.userID, encoded, time.UnixMilli(ts))
	require.NoError(s.T(), err)
}

func (s *IntegrationTestSuite) addLocation(p participant, ts int64, coordinates, annotation string) {
	_, err := s.DB.Exec(`
		INSERT INTO location (user_id, created_on, coordinates, location_name) VALUES ($1, $2, $3, $4)
	`, p.userID, time.UnixMilli(ts), s.cipher.Encrypt(coordinates), s.cipher.Encrypt(annotation))
	require.NoError(s.T(), err)
}

func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, body []byte) (int, []byte) {
	t := s.T()

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testAPIToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) selectEvents(ctx context.Context, path string) []sensor.Event {
	status, body := s.do(ctx, "GET", path, nil)
	s.Require().Equal(http.StatusOK, status, string(body))

	var events []sensor.Event
	s.Require().NoError(json.Unmarshal(body, &events))
	return events
}

func (s *IntegrationTestSuite) insertEvent(ctx context.Context, p participant, event sensor.Event) {
	body, err := json.Marshal(event)
	s.Require().NoError(err)
	status, respBody := s.do(ctx, "POST", fmt.Sprintf("/participant/%s/sensor_event", p.scopeID()), body)
	s.Require().Equal(http.StatusCreated, status, string(respBody))
}

func kinds(events []sensor.Event) []sensor.Kind {
	out := make([]sensor.Kind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Sensor)
	}
	return out
}

func timestamps(events []sensor.Event) []int64 {
	out := make([]int64, 0, len(events))
	for _, e := range events {
		out = append(out, e.Timestamp)
	}
	return out
}
