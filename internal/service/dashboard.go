package service

import (
	"time"

	"citizen-services/internal/model"
)

// ExpiringWithinDays is the threshold between the expiring and valid buckets.
const ExpiringWithinDays = 90

const dateLayout = "2006-01-02"

// DocumentSeed describes a mock document by its offset from the session start.
type DocumentSeed struct {
	ID        string
	Type      string
	Number    string
	ExpiresIn int
}

// Classify maps a day count onto a status bucket.
func Classify(days int) model.DocumentStatus {
	switch {
	case days < 0:
		return model.StatusExpired
	case days <= ExpiringWithinDays:
		return model.StatusExpiring
	default:
		return model.StatusValid
	}
}

// DaysUntil counts calendar days from now to expiry, both taken in now's location.
func DaysUntil(now, expiry time.Time) int {
	y, m, d := now.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = expiry.In(now.Location()).Date()
	to := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// DashboardService renders the home view: documents, stats and recommendation cards.
type DashboardService struct {
	documents       []model.Document
	recommendations []model.Recommendation
	now             func() time.Time
}

// NewDashboardService derives status and day counts from each document's expiry date.
// Unparseable dates keep whatever status the record was authored with.
func NewDashboardService(docs []model.Document, recs []model.Recommendation, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}
	d := make([]model.Document, len(docs))
	copy(d, docs)
	r := make([]model.Recommendation, len(recs))
	copy(r, recs)
	return &DashboardService{documents: d, recommendations: r, now: now}
}

func (s *DashboardService) Documents() []model.Document {
	now := s.now()
	out := make([]model.Document, len(s.documents))
	for i, doc := range s.documents {
		if exp, err := time.ParseInLocation(dateLayout, doc.ExpiryDate, now.Location()); err == nil {
			doc.DaysUntilExpiry = DaysUntil(now, exp)
			doc.Status = Classify(doc.DaysUntilExpiry)
		}
		out[i] = doc
	}
	return out
}

func (s *DashboardService) Recommendations() []model.Recommendation {
	out := make([]model.Recommendation, len(s.recommendations))
	copy(out, s.recommendations)
	return out
}

// Stats counts the current documents per bucket. Titles are translation keys.
func (s *DashboardService) Stats() []model.Stat {
	var expiring, valid, expired int
	docs := s.Documents()
	for _, d := range docs {
		switch d.Status {
		case model.StatusExpiring:
			expiring++
		case model.StatusValid:
			valid++
		case model.StatusExpired:
			expired++
		}
	}
	return []model.Stat{
		{Key: "total", Title: "stats.totalDocs", Value: len(docs), Description: "stats.totalDocs.desc"},
		{Key: "expiring", Title: "stats.actionNeeded", Value: expiring, Description: "stats.actionNeeded.desc"},
		{Key: "valid", Title: "stats.validDocs", Value: valid, Description: "stats.validDocs.desc"},
		{Key: "expired", Title: "stats.expiredDocs", Value: expired, Description: "stats.expiredDocs.desc"},
	}
}

// SeedDocuments turns offsets into absolute expiry dates relative to start.
func SeedDocuments(start time.Time, seeds []DocumentSeed) []model.Document {
	out := make([]model.Document, len(seeds))
	for i, sd := range seeds {
		out[i] = model.Document{
			ID:         sd.ID,
			Type:       sd.Type,
			Number:     sd.Number,
			ExpiryDate: start.AddDate(0, 0, sd.ExpiresIn).Format(dateLayout),
		}
	}
	return out
}

// DefaultDocumentSeeds mirrors the mock cards: ID card in 45 days, driver license
// in 15 days, passport in 890 days.
func DefaultDocumentSeeds() []DocumentSeed {
	return []DocumentSeed{
		{ID: "1", Type: "docs.idCard", Number: "1-2345-67890-12-3", ExpiresIn: 45},
		{ID: "2", Type: "docs.driverLicense", Number: "12345678", ExpiresIn: 15},
		{ID: "3", Type: "docs.passport", Number: "AB1234567", ExpiresIn: 890},
	}
}

// DefaultRecommendations are due on the matching document expiry dates.
func DefaultRecommendations(start time.Time) []model.Recommendation {
	due := func(days int) string { return start.AddDate(0, 0, days).Format(dateLayout) }
	return []model.Recommendation{
		{
			ID:          "1",
			Title:       "rec.driverLicense.title",
			Description: "rec.driverLicense.desc",
			Priority:    model.PriorityHigh,
			DueDate:     due(15),
			Location:    "rec.driverLicense.location",
			Apps:        []string{"DLT Smart Queue", "QueQ"},
			Category:    "rec.driverLicense.category",
		},
		{
			ID:          "2",
			Title:       "rec.idCard.title",
			Description: "rec.idCard.desc",
			Priority:    model.PriorityMedium,
			DueDate:     due(45),
			Location:    "rec.idCard.location",
			Apps:        []string{"Promptpay", "MOI Service"},
			Category:    "rec.idCard.category",
		},
		{
			ID:          "3",
			Title:       "rec.healthCheckup.title",
			Description: "rec.healthCheckup.desc",
			Priority:    model.PriorityLow,
			DueDate:     due(60),
			Location:    "rec.healthCheckup.location",
			Apps:        []string{"SSO Connect", "ตรวจสุขภาพ 40"},
			Category:    "rec.healthCheckup.category",
		},
	}
}
