package buildstock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, "/api/v0/", Credentials{}, zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestGetBuildingsRegionParam(t *testing.T) {
	tests := []struct {
		name      string
		code      string
		wantParam string
	}{
		{name: "nuts3 region", code: "DE80N", wantParam: "nuts3"},
		{name: "lau region", code: "01058007", wantParam: "lau"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v0/buildings", r.URL.Path)
				assert.Equal(t, tt.code, r.URL.Query().Get(tt.wantParam))
				json.NewEncoder(w).Encode(pagedBuildings{})
			})

			_, err := client.GetBuildings(context.Background(), tt.code, AnyType(), "")
			require.NoError(t, err)
		})
	}
}

func TestGetBuildingsTooLongRegionCode(t *testing.T) {
	var requests atomic.Int64
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	})

	_, err := client.GetBuildings(context.Background(), "DE80N1", AnyType(), "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.EqualValues(t, 0, requests.Load())
}

func TestGetBuildingsPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		page := pagedBuildings{}
		if r.URL.Query().Get("page") == "2" {
			page.Results = []Building{{ID: "b3"}}
		} else {
			page.Results = []Building{{ID: "b1"}, {ID: "b2"}}
			page.Next = "http://ignored/api/v0/buildings?page=2"
		}
		json.NewEncoder(w).Encode(page)
	})

	buildings, err := client.GetBuildings(context.Background(), "DE", AnyType(), "")
	require.NoError(t, err)
	require.Len(t, buildings, 3)
	assert.Equal(t, "b3", buildings[2].ID)
}

func TestGetBuildingsDuplicateID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(pagedBuildings{Results: []Building{{ID: "b1"}, {ID: "b1"}}})
	})

	_, err := client.GetBuildings(context.Background(), "DE", AnyType(), "")
	var serverErr *ServerError
	assert.ErrorAs(t, err, &serverErr)
}

func TestGetBuildingsGeometryDoubleEncoded(t *testing.T) {
	inner := `{"id":"b1","footprint":{"type":"Polygon","coordinates":[[[0,0],[1,0],[0,1],[0,0]]]},"centroid":{"type":"Point","coordinates":[0.33,0.33]},"type":"residential"}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v0/buildings/geometry", r.URL.Path)
		// The endpoint double-encodes: an array of JSON strings.
		json.NewEncoder(w).Encode([]string{inner})
	})

	buildings, err := client.GetBuildingsGeometry(context.Background(), "DE", Type("residential"), nil)
	require.NoError(t, err)
	require.Len(t, buildings, 1)

	b := buildings[0]
	assert.Equal(t, "b1", b.ID)
	assert.Equal(t, "residential", b.Type)
	require.IsType(t, orb.Polygon{}, b.Footprint)
	assert.Equal(t, orb.Point{0.33, 0.33}, b.Centroid)
}

func TestGetBuildingsGeometrySendsGeom(t *testing.T) {
	polygon := orb.Polygon{{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POLYGON((0 0,1 0,0 1,0 0))", r.URL.Query().Get("geom"))
		fmt.Fprint(w, "[]")
	})

	_, err := client.GetBuildingsGeometry(context.Background(), "DE", AnyType(), polygon)
	require.NoError(t, err)
}

func TestGetBuildingsTypeFilterParams(t *testing.T) {
	tests := []struct {
		name       string
		filter     TypeFilter
		wantType   string
		wantIsNull string
	}{
		{name: "any", filter: AnyType(), wantType: "", wantIsNull: ""},
		{name: "untyped only", filter: UntypedOnly(), wantType: "", wantIsNull: "True"},
		{name: "residential", filter: Type("residential"), wantType: "residential", wantIsNull: "False"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				query := r.URL.Query()
				assert.Equal(t, tt.wantType, query.Get("type"))
				assert.Equal(t, tt.wantIsNull, query.Get("type__isnull"))
				json.NewEncoder(w).Encode(pagedBuildings{})
			})

			_, err := client.GetBuildings(context.Background(), "DE", tt.filter, "")
			require.NoError(t, err)
		})
	}
}
