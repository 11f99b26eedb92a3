package models

import "time"

type ContextKey string

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type InsertUser struct {
	Username string
	Password string
}

type Booking struct {
	ID              int       `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	NucsCount       int       `json:"nucsCount"`
	QueensCount     int       `json:"queensCount"`
	PreferredMonth  string    `json:"preferredMonth"`
	Notes           string    `json:"notes,omitempty"`
	DepositAmount   string    `json:"depositAmount"`
	Reference       string    `json:"reference"`
	StripePaymentID string    `json:"stripePaymentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type InsertBooking struct {
	FullName       string
	Email          string
	Phone          string
	NucsCount      int
	QueensCount    int
	PreferredMonth string
	Notes          string
	DepositAmount  string
}

type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type InsertContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

const (
	NotificationBooking = "booking"
	NotificationContact = "contact"
)

// Notification is the message published to the notification sink and
// consumed by the notifier service.
type Notification struct {
	Kind           string    `json:"kind"`
	Reference      string    `json:"reference,omitempty"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Subject        string    `json:"subject,omitempty"`
	Message        string    `json:"message,omitempty"`
	DepositAmount  string    `json:"deposit_amount,omitempty"`
	PreferredMonth string    `json:"preferred_month,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
