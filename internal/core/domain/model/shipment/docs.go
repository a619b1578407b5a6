// Package shipment contains the Shipment aggregate root and its lifecycle.
//
// A shipment carries one medicine consignment from the pharmacy to its
// destination. At creation the shipment snapshots the medicine's identity and
// safe-transport temperature envelope through the Shippable capability, so the
// shipping side never needs to re-resolve the concrete medicine variant. The
// lifecycle is a small state machine: Created -> Dispatched -> Delivered, with
// re-dispatch allowed while a shipment is still in transit.
package shipment
