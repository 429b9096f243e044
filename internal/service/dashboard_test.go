package service

import (
	"testing"
	"time"

	"citizen-services/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, model.StatusExpired, Classify(-1))
	assert.Equal(t, model.StatusExpiring, Classify(0))
	assert.Equal(t, model.StatusExpiring, Classify(15))
	assert.Equal(t, model.StatusExpiring, Classify(ExpiringWithinDays))
	assert.Equal(t, model.StatusValid, Classify(ExpiringWithinDays+1))
	assert.Equal(t, model.StatusValid, Classify(890))
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, 8, 31, 23, 59, 0, 0, time.UTC)
	exp := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 15, DaysUntil(now, exp))
	assert.Equal(t, -15, DaysUntil(exp, now))
}

func TestDefaultDocumentsMatchMockCards(t *testing.T) {
	start := time.Date(2024, 8, 31, 9, 0, 0, 0, time.UTC)
	svc := NewDashboardService(SeedDocuments(start, DefaultDocumentSeeds()), DefaultRecommendations(start), func() time.Time { return start })

	docs := svc.Documents()
	require.Len(t, docs, 3)
	assert.Equal(t, "2024-10-15", docs[0].ExpiryDate)
	assert.Equal(t, 45, docs[0].DaysUntilExpiry)
	assert.Equal(t, model.StatusExpiring, docs[0].Status)
	assert.Equal(t, "2024-09-15", docs[1].ExpiryDate)
	assert.Equal(t, 15, docs[1].DaysUntilExpiry)
	assert.Equal(t, model.StatusExpiring, docs[1].Status)
	assert.Equal(t, 890, docs[2].DaysUntilExpiry)
	assert.Equal(t, model.StatusValid, docs[2].Status)

	recs := svc.Recommendations()
	require.Len(t, recs, 3)
	assert.Equal(t, docs[1].ExpiryDate, recs[0].DueDate)
	assert.Equal(t, model.PriorityHigh, recs[0].Priority)
}

func TestStatusFollowsClock(t *testing.T) {
	docs := []model.Document{
		{ID: "1", ExpiryDate: "2024-09-15", Status: model.StatusValid},
		{ID: "2", ExpiryDate: "not-a-date", Status: model.StatusValid, DaysUntilExpiry: 7},
	}
	now := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	svc := NewDashboardService(docs, nil, func() time.Time { return now })

	got := svc.Documents()
	assert.Equal(t, model.StatusExpiring, got[0].Status)
	// authored values survive when the date cannot be parsed
	assert.Equal(t, model.StatusValid, got[1].Status)
	assert.Equal(t, 7, got[1].DaysUntilExpiry)

	now = time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC)
	got = svc.Documents()
	assert.Equal(t, model.StatusExpired, got[0].Status)
	assert.Equal(t, -5, got[0].DaysUntilExpiry)
}

func TestStatsCountBuckets(t *testing.T) {
	now := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	docs := SeedDocuments(now, []DocumentSeed{
		{ID: "a", ExpiresIn: -3},
		{ID: "b", ExpiresIn: 10},
		{ID: "c", ExpiresIn: 30},
		{ID: "d", ExpiresIn: 400},
	})
	svc := NewDashboardService(docs, nil, func() time.Time { return now })

	values := map[string]int{}
	for _, st := range svc.Stats() {
		values[st.Key] = st.Value
	}
	assert.Equal(t, map[string]int{"total": 4, "expiring": 2, "valid": 1, "expired": 1}, values)
}
