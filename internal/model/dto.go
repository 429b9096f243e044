package model

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  Citizen `json:"user"`
}

type ChatRequest struct {
	Text string `json:"text"`
}

type ChatResponse struct {
	User MessageView `json:"user"`
	Bot  MessageView `json:"bot"`
}

type TranscriptResponse struct {
	Messages         []MessageView `json:"messages"`
	PopularQuestions []string      `json:"popularQuestions"`
	Typing           bool          `json:"typing"`
}

type MessageView struct {
	ID          string   `json:"id"`
	Role        Role     `json:"role"`
	Content     string   `json:"content"`
	Time        string   `json:"time"`
	CreatedAt   string   `json:"createdAt"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type NotificationView struct {
	Notification
	CategoryLabel string `json:"categoryLabel"`
}

type NotificationList struct {
	Items       []NotificationView `json:"items"`
	UnreadCount int                `json:"unreadCount"`
}

type DocumentView struct {
	Document
	StatusText string `json:"statusText"`
	Renewable  bool   `json:"renewable"`
}

type RecommendationView struct {
	Recommendation
	PriorityLabel string `json:"priorityLabel"`
}

type DashboardResponse struct {
	Greeting        string               `json:"greeting"`
	Citizen         Citizen              `json:"citizen"`
	Stats           []Stat               `json:"stats"`
	Documents       []DocumentView       `json:"documents"`
	Recommendations []RecommendationView `json:"recommendations"`
}

type LocaleRequest struct {
	Locale string `json:"locale" binding:"required"`
}

// RegistrationRequest is the full profile form. Age stays a string so that
// non-numeric input reaches validation instead of failing JSON decoding.
type RegistrationRequest struct {
	FullName             string `json:"fullName" binding:"required,min=2"`
	Age                  string `json:"age" binding:"required,positive-age"`
	Gender               string `json:"gender" binding:"required,is-gender"`
	MaritalStatus        string `json:"maritalStatus" binding:"required,is-marital-status"`
	PhoneNumber          string `json:"phoneNumber" binding:"required,phone-digits"`
	IDCard               string `json:"idCard" binding:"required,id-card-digits"`
	DrivingLicenseExpiry string `json:"drivingLicenseExpiry" binding:"required,datetime=2006-01-02"`
	IDCardExpiry         string `json:"idCardExpiry" binding:"required,datetime=2006-01-02"`
}

// QuickRegistrationRequest is the name/age variant that asks the webhook for a recommendation.
type QuickRegistrationRequest struct {
	FullName string `json:"fullName" binding:"required,min=2"`
	Age      string `json:"age" binding:"required,positive-age"`
}

// RegistrationPayload is the JSON body sent to the webhook.
type RegistrationPayload struct {
	FullName             string `json:"fullName"`
	Age                  int    `json:"age"`
	Gender               string `json:"gender,omitempty"`
	MaritalStatus        string `json:"maritalStatus,omitempty"`
	PhoneNumber          string `json:"phoneNumber,omitempty"`
	IDCard               string `json:"idCard,omitempty"`
	DrivingLicenseExpiry string `json:"drivingLicenseExpiry,omitempty"`
	IDCardExpiry         string `json:"idCardExpiry,omitempty"`
	Timestamp            string `json:"timestamp"`
}

type RegistrationResponse struct {
	OK             bool   `json:"ok"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation,omitempty"`
	Reset          bool   `json:"reset"`
}

type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}
