package models

import "time"

// Time layouts used on the wire. Dates travel as "2025-03-14", rule times
// as "09:00", and slot times as local ISO timestamps without offset.
const (
	DateLayout     = "2006-01-02"
	RuleTimeLayout = "15:04"
	SlotTimeLayout = "2006-01-02T15:04:05"
)

// AvailabilityRule is one weekday entry of an expert's recurring schedule.
type AvailabilityRule struct {
	ID            string `bson:"id" json:"id"`
	DayOfWeek     int    `bson:"dayOfWeek" json:"dayOfWeek" binding:"min=0,max=6"` // 0 = Sunday
	StartTime     string `bson:"startTime" json:"startTime"`                       // "09:00"
	EndTime       string `bson:"endTime" json:"endTime"`                           // "17:00"
	IsAvailable   bool   `bson:"isAvailable" json:"isAvailable"`
	BufferMinutes int    `bson:"bufferMinutes" json:"bufferMinutes"` // gap enforced between consecutive slots
}

// ExpertService is a bookable offering (duration, price) on an expert profile.
type ExpertService struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64 `bson:"price" json:"price"`
	Currency        string  `bson:"currency" json:"currency"`
	MaxParticipants int     `bson:"maxParticipants" json:"maxParticipants"`
	IsActive        bool    `bson:"isActive" json:"isActive"`
	Category        string  `bson:"category,omitempty" json:"category,omitempty"`
}

// Expert is a service-providing professional bookable by clients.
type Expert struct {
	ID           string             `bson:"id" json:"id"`
	UserID       string             `bson:"userId" json:"userId"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Expertise    []string           `bson:"expertise,omitempty" json:"expertise,omitempty"`
	Timezone     string             `bson:"timezone" json:"timezone"` // IANA name, e.g. "Europe/Berlin"
	Availability []AvailabilityRule `bson:"availability" json:"availability"`
	Services     []ExpertService    `bson:"services" json:"services"`
	Status       string             `bson:"status" json:"status"` // "active", "away", "busy", "offline"
	Featured     bool               `bson:"featured" json:"featured"`
	Verified     bool               `bson:"verified" json:"verified"`
	Rating       float64            `bson:"rating" json:"rating"`
	TotalReviews int                `bson:"totalReviews" json:"totalReviews"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ServiceByID returns the expert's service with the given ID.
func (e *Expert) ServiceByID(serviceID string) (ExpertService, bool) {
	for _, svc := range e.Services {
		if svc.ID == serviceID {
			return svc, true
		}
	}
	return ExpertService{}, false
}

// DefaultService returns the first active service, falling back to the
// first listed one. Used when availability is requested with no explicit
// service selection.
func (e *Expert) DefaultService() (ExpertService, bool) {
	for _, svc := range e.Services {
		if svc.IsActive {
			return svc, true
		}
	}
	if len(e.Services) > 0 {
		return e.Services[0], true
	}
	return ExpertService{}, false
}

// ExpertFilter captures list query parameters.
type ExpertFilter struct {
	Category string  `form:"category"`
	Search   string  `form:"search"`
	MinPrice float64 `form:"minPrice"`
	MaxPrice float64 `form:"maxPrice"`
	SortBy   string  `form:"sortBy"` // "rating", "price", "experience"
	Page     int     `form:"page"`
	Limit    int     `form:"limit"`
}

// UpdateAvailabilityRequest replaces an expert's weekly rules.
type UpdateAvailabilityRequest struct {
	Availability []AvailabilityRule `json:"availability" binding:"required,dive"`
	Timezone     string             `json:"timezone,omitempty"`
}
