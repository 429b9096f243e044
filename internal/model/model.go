package model

import "time"

type Category string

const (
	CategoryInfo    Category = "info"
	CategorySuccess Category = "success"
	CategoryWarning Category = "warning"
)

// Notification text fields may hold translation keys; they are rendered per locale.
type Notification struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Category       Category `json:"category"`
	Timestamp      string   `json:"timestamp"`
	Read           bool     `json:"read"`
	Details        string   `json:"details,omitempty"`
	ActionRequired bool     `json:"actionRequired,omitempty"`
}

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Message is one transcript turn. Bot content and suggestions are translation keys.
type Message struct {
	ID          string    `json:"id"`
	Role        Role      `json:"role"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	Suggestions []string  `json:"suggestions,omitempty"`
}

type DocumentStatus string

const (
	StatusExpired  DocumentStatus = "expired"
	StatusExpiring DocumentStatus = "expiring"
	StatusValid    DocumentStatus = "valid"
)

// Document is a mock identity document. Status and DaysUntilExpiry are derived from
// ExpiryDate by the dashboard service.
type Document struct {
	ID              string         `json:"id"`
	Type            string         `json:"type"`
	Number          string         `json:"number"`
	ExpiryDate      string         `json:"expiryDate"`
	Status          DocumentStatus `json:"status"`
	DaysUntilExpiry int            `json:"daysUntilExpiry"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Recommendation struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	DueDate     string   `json:"dueDate"`
	Location    string   `json:"location"`
	Apps        []string `json:"apps"`
	Category    string   `json:"category"`
}

type Stat struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Value       int    `json:"value"`
	Description string `json:"description"`
}

type Citizen struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	CitizenID string `json:"citizenId"`
}
