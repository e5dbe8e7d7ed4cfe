package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datapio/buildstock/buildstock"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "simple comparison", expression: "area > 100"},
		{name: "combined conditions", expression: `building_type == "residential" and household_count >= 2`},
		{name: "empty expression", expression: "", wantErr: true},
		{name: "whitespace only", expression: "   ", wantErr: true},
		{name: "syntax error", expression: "area >", wantErr: true},
		{name: "non-boolean result", expression: "area + 1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	building := buildstock.Building{
		ID:               "b1",
		Area:             150.5,
		Height:           12,
		Type:             "residential",
		HouseholdCount:   3,
		HeatingCommodity: "gas",
	}

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{name: "area match", expression: "area > 100", want: true},
		{name: "area no match", expression: "area > 200", want: false},
		{name: "type and commodity", expression: `building_type == "residential" and heating_commodity == "gas"`, want: true},
		{name: "household count", expression: "household_count in 1..5", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := f.Match(building)
			require.NoError(t, err)
			assert.Equal(t, tt.want, matched)
		})
	}
}

func TestApply(t *testing.T) {
	buildings := []buildstock.Building{
		{ID: "b1", Area: 80, Type: "residential"},
		{ID: "b2", Area: 120, Type: "residential"},
		{ID: "b3", Area: 300, Type: "non-residential"},
	}

	f, err := Compile(`area > 100 and building_type == "residential"`)
	require.NoError(t, err)

	matched, err := f.Apply(buildings)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "b2", matched[0].ID)
}
