package shipment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/medicine"
	"medship/internal/core/domain/model/shipment"
)

func mustInsulin(t *testing.T) medicine.Medicine {
	t.Helper()
	med, err := medicine.NewInsulin("Glargine 100U/ml")
	require.NoError(t, err)
	return med
}

func TestNewShipment(t *testing.T) {
	med := mustInsulin(t)

	tests := []struct {
		name     string
		id       kernel.UUID
		med      shipment.Shippable
		distance int
		wantErr  bool
	}{
		{name: "valid shipment", id: kernel.NewUUID(), med: med, distance: 7},
		{name: "empty id", id: kernel.UUID{}, med: med, distance: 7, wantErr: true},
		{name: "nil medicine", id: kernel.NewUUID(), med: nil, distance: 7, wantErr: true},
		{name: "zero distance", id: kernel.NewUUID(), med: med, distance: 0, wantErr: true},
		{name: "negative distance", id: kernel.NewUUID(), med: med, distance: -3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := shipment.NewShipment(tt.id, tt.med, tt.distance)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, s.Validate())
			assert.Equal(t, tt.id, s.ID())
			assert.Equal(t, "Glargine 100U/ml", s.MedicineName())
			assert.InDelta(t, 2.0, s.MinimumTemperature(), 0)
			assert.InDelta(t, 8.0, s.MaximumTemperature(), 0)
			assert.Equal(t, tt.distance, s.Distance())
			assert.Equal(t, shipment.Created, s.Status())
			assert.Nil(t, s.Transporter())
		})
	}
}

func TestShipment_IsTemperatureRangeAcceptable(t *testing.T) {
	med := mustInsulin(t)
	s, err := shipment.NewShipment(kernel.NewUUID(), med, 5)
	require.NoError(t, err)

	tests := []struct {
		name string
		low  float64
		high float64
		want bool
	}{
		{name: "inside envelope", low: 3, high: 7, want: true},
		{name: "exact envelope", low: 2, high: 8, want: true},
		{name: "low below minimum", low: 1.9, high: 7, want: false},
		{name: "high above maximum", low: 3, high: 8.1, want: false},
		{name: "bounds checked independently", low: 8, high: 2, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.IsTemperatureRangeAcceptable(tt.low, tt.high))
			// The aggregate snapshot must agree with the medicine itself.
			assert.Equal(t, med.IsTemperatureRangeAcceptable(tt.low, tt.high),
				s.IsTemperatureRangeAcceptable(tt.low, tt.high))
		})
	}
}

func TestShipment_Dispatch(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), mustInsulin(t), 5)
	require.NoError(t, err)

	transporterID := kernel.NewUUID()

	require.NoError(t, s.ValidateDispatch())
	require.NoError(t, s.Dispatch(transporterID))

	assert.Equal(t, shipment.Dispatched, s.Status())
	require.NotNil(t, s.Transporter())
	assert.True(t, transporterID.IsEqual(*s.Transporter()))

	// Re-dispatch to another transporter is allowed.
	otherID := kernel.NewUUID()
	require.NoError(t, s.Dispatch(otherID))
	assert.True(t, otherID.IsEqual(*s.Transporter()))
}

func TestShipment_Dispatch_InvalidTransporter(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), mustInsulin(t), 5)
	require.NoError(t, err)

	assert.Error(t, s.Dispatch(kernel.UUID{}))
	assert.Equal(t, shipment.Created, s.Status())
	assert.Nil(t, s.Transporter())
}

func TestShipment_Advance(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), mustInsulin(t), 5)
	require.NoError(t, err)

	// Undispatched shipments do not move.
	assert.Error(t, s.Advance(1))

	require.NoError(t, s.Dispatch(kernel.NewUUID()))

	assert.Error(t, s.Advance(0))
	assert.Error(t, s.Advance(-1))

	require.NoError(t, s.Advance(2))
	assert.Equal(t, 3, s.Distance())
	assert.False(t, s.IsArrived())

	// Overshoot clamps at zero.
	require.NoError(t, s.Advance(10))
	assert.Equal(t, 0, s.Distance())
	assert.True(t, s.IsArrived())
}

func TestShipment_Deliver(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), mustInsulin(t), 2)
	require.NoError(t, err)

	// Cannot deliver before dispatch.
	assert.Error(t, s.Deliver())

	require.NoError(t, s.Dispatch(kernel.NewUUID()))
	require.NoError(t, s.Advance(2))
	require.True(t, s.IsArrived())

	require.NoError(t, s.Deliver())
	assert.Equal(t, shipment.Delivered, s.Status())

	// Delivered is final.
	assert.Error(t, s.Deliver())
	assert.Error(t, s.Dispatch(kernel.NewUUID()))
}

func TestRestoreShipment(t *testing.T) {
	id := kernel.NewUUID()
	transporterID := kernel.NewUUID()

	tests := []struct {
		name          string
		medicineName  string
		distance      int
		status        shipment.Status
		transporterID *kernel.UUID
		wantErr       bool
	}{
		{
			name:         "created without transporter",
			medicineName: "Amoxicillin 500mg",
			distance:     4,
			status:       shipment.Created,
		},
		{
			name:          "dispatched with transporter",
			medicineName:  "Amoxicillin 500mg",
			distance:      4,
			status:        shipment.Dispatched,
			transporterID: &transporterID,
		},
		{
			name:          "delivered with zero distance",
			medicineName:  "Amoxicillin 500mg",
			distance:      0,
			status:        shipment.Delivered,
			transporterID: &transporterID,
		},
		{
			name:         "empty medicine name",
			medicineName: "",
			distance:     4,
			status:       shipment.Created,
			wantErr:      true,
		},
		{
			name:         "negative distance",
			medicineName: "Amoxicillin 500mg",
			distance:     -1,
			status:       shipment.Created,
			wantErr:      true,
		},
		{
			name:         "invalid status",
			medicineName: "Amoxicillin 500mg",
			distance:     4,
			status:       shipment.Unknown,
			wantErr:      true,
		},
		{
			name:          "created with transporter",
			medicineName:  "Amoxicillin 500mg",
			distance:      4,
			status:        shipment.Created,
			transporterID: &transporterID,
			wantErr:       true,
		},
		{
			name:         "dispatched without transporter",
			medicineName: "Amoxicillin 500mg",
			distance:     4,
			status:       shipment.Dispatched,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := shipment.RestoreShipment(
				id, tt.medicineName, 0, 25, tt.distance, tt.status, tt.transporterID)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, s.ID())
			assert.Equal(t, tt.medicineName, s.MedicineName())
			assert.InDelta(t, 0.0, s.MinimumTemperature(), 0)
			assert.InDelta(t, 25.0, s.MaximumTemperature(), 0)
			assert.Equal(t, tt.distance, s.Distance())
			assert.Equal(t, tt.status, s.Status())
			assert.Equal(t, tt.transporterID, s.Transporter())
		})
	}
}

func TestShipment_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	med := mustInsulin(t)

	first, err := shipment.NewShipment(id, med, 3)
	require.NoError(t, err)
	second, err := shipment.NewShipment(id, med, 9)
	require.NoError(t, err)
	third, err := shipment.NewShipment(kernel.NewUUID(), med, 3)
	require.NoError(t, err)

	assert.True(t, first.IsEqual(second))
	assert.False(t, first.IsEqual(third))
	assert.False(t, first.IsEqual(nil))
}

func TestShipment_Validate(t *testing.T) {
	var notConstructed shipment.Shipment
	assert.ErrorIs(t, notConstructed.Validate(), shipment.ErrShipmentIsNotConstructed)

	s, err := shipment.NewShipment(kernel.NewUUID(), mustInsulin(t), 1)
	require.NoError(t, err)
	assert.NoError(t, s.Validate())
}
