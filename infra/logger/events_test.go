package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/vehicles/core/vehicle"
)

func TestEventRecorder(t *testing.T) {
	var buf bytes.Buffer
	l, err := NewWithOptions("events", Options{Format: FormatJSON, Out: &buf})
	require.NoError(t, err)

	c := vehicle.NewCar("Toyota", "Camry", 4, vehicle.WithID("car-1"), vehicle.WithRecorder(EventRecorder{Log: l}))
	c.RemovePassenger()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "vehicle event", rec["message"])
	assert.Equal(t, "car-1", rec["vehicle_id"])
	assert.Equal(t, "Car", rec["vehicle_type"])
	assert.Equal(t, "remove_passenger", rec["operation"])
	assert.Equal(t, "noop", rec["outcome"])
}
