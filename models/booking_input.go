package models

// Session update actions. One PUT per workflow interaction; the action
// selects which transition to apply.
const (
	ActionSelectService = "selectService"
	ActionSelectDate    = "selectDate"
	ActionSelectSlot    = "selectSlot"
	ActionSetDetails    = "setDetails"
	ActionBack          = "back"
)

// SessionUpdateRequest carries one workflow step's input.
type SessionUpdateRequest struct {
	Action       string `json:"action" binding:"required,oneof=selectService selectDate selectSlot setDetails back"`
	ServiceID    string `json:"serviceId,omitempty"`
	Date         string `json:"date,omitempty"` // DateLayout
	SlotID       string `json:"slotId,omitempty"`
	Participants int    `json:"participants,omitempty"`
	LocationType string `json:"location,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// InitiateSessionRequest starts a workflow against one expert.
type InitiateSessionRequest struct {
	ExpertID string `json:"expertId" binding:"required"`
}
