package httpapi_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skyplan/httpapi"
	"github.com/katalvlaran/skyplan/itinerary"
	"github.com/katalvlaran/skyplan/network"
)

type pathJSON struct {
	Stops    []string `json:"stops"`
	Cost     float64  `json:"cost"`
	Duration int      `json:"duration"`
}

type itineraryJSON struct {
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	Criterion   string     `json:"criterion"`
	Found       bool       `json:"found"`
	Paths       []pathJSON `json:"paths"`
	Message     string     `json:"message"`
}

func newServer(t *testing.T, opts ...httpapi.Option) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard

	n := network.New()
	for _, e := range []struct {
		a, b     string
		cost     float64
		duration int
	}{
		{"A", "B", 100, 60},
		{"B", "C", 50, 10},
		{"A", "C", 200, 30},
	} {
		n.AddEdge(e.a, e.b, e.cost, e.duration)
		n.AddEdge(e.b, e.a, e.cost, e.duration)
	}
	n.UpsertLocation("D")

	logger := log.New()
	logger.SetOutput(io.Discard)
	entry := log.NewEntry(logger)

	p, err := itinerary.NewPlanner(n, itinerary.WithLogger(entry))
	require.NoError(t, err)
	s, err := httpapi.New(n, p, append([]httpapi.Option{httpapi.WithLogger(entry)}, opts...)...)
	require.NoError(t, err)

	return s.Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func TestHealthz(t *testing.T) {
	w := do(newServer(t), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLocations(t *testing.T) {
	w := do(newServer(t), http.MethodGet, "/locations", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"locations":["A","B","C","D"]}`, w.Body.String())
}

func TestItinerary_ByCost(t *testing.T) {
	w := do(newServer(t), http.MethodPost, "/itineraries",
		`{"origin":"A","destination":"C","criterion":"Cost"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got itineraryJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Cost", got.Criterion)
	assert.True(t, got.Found)
	assert.Empty(t, got.Message)
	assert.Equal(t, []pathJSON{
		{Stops: []string{"A", "B", "C"}, Cost: 150, Duration: 70},
		{Stops: []string{"A", "C"}, Cost: 200, Duration: 30},
	}, got.Paths)
}

func TestItinerary_DefaultCriterionIsTime(t *testing.T) {
	w := do(newServer(t), http.MethodPost, "/itineraries", `{"origin":"A","destination":"C"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got itineraryJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Time", got.Criterion)
	require.Len(t, got.Paths, 2)
	assert.Equal(t, []string{"A", "C"}, got.Paths[0].Stops)
}

func TestItinerary_NoPath(t *testing.T) {
	w := do(newServer(t), http.MethodPost, "/itineraries",
		`{"origin":"A","destination":"D","criterion":"Time"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"origin":"A","destination":"D","criterion":"Time","found":false,
		"paths":[],"message":"No viable path found"}`, w.Body.String())
}

func TestItinerary_BadRequests(t *testing.T) {
	h := newServer(t)
	for name, body := range map[string]string{
		"not json":            `{"origin":`,
		"missing destination": `{"origin":"A"}`,
		"numeric criterion":   `{"origin":"A","destination":"C","criterion":1}`,
	} {
		t.Run(name, func(t *testing.T) {
			w := do(h, http.MethodPost, "/itineraries", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestCORS(t *testing.T) {
	h := newServer(t, httpapi.WithAllowedOrigins([]string{"https://planner.example"}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://planner.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "https://planner.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNew_BadOrigin(t *testing.T) {
	n := network.New()
	p, err := itinerary.NewPlanner(n)
	require.NoError(t, err)

	_, err = httpapi.New(n, p, httpapi.WithAllowedOrigins([]string{"planner.example"}))
	assert.ErrorIs(t, err, httpapi.ErrBadOrigin)
}

func TestItineraryBest(t *testing.T) {
	w := do(newServer(t), http.MethodPost, "/itineraries/best",
		`{"origin":"A","destination":"C","criterion":"Cost"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got itineraryJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Found)
	assert.Equal(t, []pathJSON{{Stops: []string{"A", "B", "C"}, Cost: 150, Duration: 70}}, got.Paths)
}

func TestNew_NilDependencies(t *testing.T) {
	n := network.New()
	p, err := itinerary.NewPlanner(n)
	require.NoError(t, err)

	_, err = httpapi.New(nil, p)
	assert.ErrorIs(t, err, httpapi.ErrNilDependency)
	_, err = httpapi.New(n, nil)
	assert.ErrorIs(t, err, httpapi.ErrNilDependency)
}
