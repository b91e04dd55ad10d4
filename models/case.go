package models

import "time"

// CaseStatus enumerates the review states of a case. Overdue is derived
// at read time from due_date and is never written to storage.
type CaseStatus string

// Case status values
const (
	CaseStatusPending  CaseStatus = "pending"
	CaseStatusApproved CaseStatus = "approved"
	CaseStatusRejected CaseStatus = "rejected"
	CaseStatusOverdue  CaseStatus = "overdue"
)

// CaseImage holds a single piece of photo evidence attached to a case
type CaseImage struct {
	URL         string `json:"url" bson:"url"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Case holds the structure for the cases collection in mongo
type Case struct {
	ID             string      `json:"id" bson:"id"`
	CaseNumber     string      `json:"case_number" bson:"case_number"`
	Title          string      `json:"title" bson:"title"`
	Description    string      `json:"description" bson:"description"`
	LicensePlate   string      `json:"license_plate" bson:"license_plate"`
	Location       string      `json:"location" bson:"location"`
	Coordinates    string      `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	Images         []CaseImage `json:"images" bson:"images"`
	Status         CaseStatus  `json:"status" bson:"status"`
	TrafficLaw     *TrafficLaw `json:"traffic_law,omitempty" bson:"traffic_law,omitempty"`
	FineAmount     *float64    `json:"fine_amount,omitempty" bson:"fine_amount,omitempty"`
	SubmittedBy    string      `json:"submitted_by,omitempty" bson:"submitted_by,omitempty"`
	SubmittedAt    time.Time   `json:"submitted_at" bson:"submitted_at"`
	ReviewedAt     *time.Time  `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
	ReviewedBy     string      `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	ReviewComments string      `json:"review_comments,omitempty" bson:"review_comments,omitempty"`
	DueDate        time.Time   `json:"due_date" bson:"due_date"`
}

// CaseCreate is the request body for creating a case
type CaseCreate struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	LicensePlate string      `json:"license_plate"`
	Location     string      `json:"location"`
	Coordinates  string      `json:"coordinates,omitempty"`
	Images       []CaseImage `json:"images"`
}

// CaseReview is the request body for reviewing a case
type CaseReview struct {
	Status       CaseStatus `json:"status"`
	Comments     *string    `json:"comments,omitempty"`
	TrafficLawID string     `json:"traffic_law_id,omitempty"`
}
