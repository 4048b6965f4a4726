package models

// TimeSlot is a discrete bookable interval derived from an expert's weekly
// availability rules. Slots are ephemeral: computed on demand for one
// (expert, date, service) triple and regenerated on every date or service
// change. IDs are only unique within a single resolver invocation.
type TimeSlot struct {
	ID              string  `json:"id"`        // "{date}-{hour}-{minute}"
	StartTime       string  `json:"startTime"` // SlotTimeLayout, expert-local
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"duration"`
	Available       bool    `json:"available"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
	BufferBefore    int     `json:"bufferTimeStart"`
	BufferAfter     int     `json:"bufferTimeEnd"`
}

// AvailabilityResponse is the payload served for
// GET /api/experts/:id/availability.
type AvailabilityResponse struct {
	AvailableSlots []string   `json:"availableSlots"` // "HH:MM" start times
	Slots          []TimeSlot `json:"slots"`
	Timezone       string     `json:"timezone"`
	Duration       int        `json:"duration"`
}
