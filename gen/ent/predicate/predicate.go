// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DeliveryNoteCapture is the predicate function for deliverynotecapture builders.
type DeliveryNoteCapture func(*sql.Selector)

// OCRSetting is the predicate function for ocrsetting builders.
type OCRSetting func(*sql.Selector)

// Toll is the predicate function for toll builders.
type Toll func(*sql.Selector)

// TollCapture is the predicate function for tollcapture builders.
type TollCapture func(*sql.Selector)

// TollPageResult is the predicate function for tollpageresult builders.
type TollPageResult func(*sql.Selector)

// TollsStaging is the predicate function for tollsstaging builders.
type TollsStaging func(*sql.Selector)

// TransportationAsset is the predicate function for transportationasset builders.
type TransportationAsset func(*sql.Selector)

// Trip is the predicate function for trip builders.
type Trip func(*sql.Selector)

// TripDrop is the predicate function for tripdrop builders.
type TripDrop func(*sql.Selector)
