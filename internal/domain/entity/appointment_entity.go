package entity

import "time"

// Appointment statuses. New appointments default to StatusScheduled.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// Appointment types.
const (
	TypeInPerson = "in-person"
	TypeVirtual  = "virtual"
)

// TimeSlot is the requested window of an appointment, stored as plain
// clock strings the way the booking front-end submits them.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Appointment links a patient to a doctor at a date and time slot.
type Appointment struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Date      time.Time `json:"date"`
	TimeSlot  TimeSlot  `json:"time_slot"`
	Type      string    `json:"type"`
	Reason    string    `json:"reason"`
	Symptoms  []string  `json:"symptoms,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
