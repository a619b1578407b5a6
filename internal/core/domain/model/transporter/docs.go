// Package transporter contains the Transporter aggregate root and the CargoBay
// entity. A transporter is a refrigerated vehicle that carries medicine
// shipments in temperature-controlled cargo bays; each bay maintains a fixed
// temperature range and holds at most one shipment at a time.
package transporter
