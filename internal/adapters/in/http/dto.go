package http

import "github.com/google/uuid"

// CreateShipmentRequest is the body for POST /api/v1/shipments.
type CreateShipmentRequest struct {
	MedicineKind string `json:"medicineKind" validate:"required"`
	MedicineName string `json:"medicineName" validate:"required,max=255"`
	Distance     int    `json:"distance" validate:"required,gt=0"`
}

// RegisterTransporterRequest is the body for POST /api/v1/transporters.
type RegisterTransporterRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Speed int    `json:"speed" validate:"required,gt=0"`
}

// AddCargoBayRequest is the body for POST /api/v1/transporters/:id/cargo-bays.
// Temperatures are pointers so zero and sub-zero bounds survive validation.
type AddCargoBayRequest struct {
	Name               string   `json:"name" validate:"required,max=255"`
	MinimumTemperature *float64 `json:"minimumTemperature" validate:"required"`
	MaximumTemperature *float64 `json:"maximumTemperature" validate:"required"`
}

// TransporterResponse is a single transporter in GET /api/v1/transporters.
type TransporterResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Speed          int       `json:"speed"`
	FreeCargoBays  int       `json:"freeCargoBays"`
	TotalCargoBays int       `json:"totalCargoBays"`
}

// ShipmentResponse is a single shipment in GET /api/v1/shipments/active.
type ShipmentResponse struct {
	ID           uuid.UUID `json:"id"`
	MedicineName string    `json:"medicineName"`
	Status       string    `json:"status"`
	Distance     int       `json:"distance"`
}

// ErrorResponse is the error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
