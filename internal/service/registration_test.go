package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"citizen-services/internal/i18n"
	"citizen-services/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoster struct {
	calls []model.RegistrationPayload
	reply string
	err   error
}

func (f *fakePoster) PostJSON(_ context.Context, body, out any) error {
	f.calls = append(f.calls, body.(model.RegistrationPayload))
	if f.err != nil {
		return f.err
	}
	if out != nil && f.reply != "" {
		return json.Unmarshal([]byte(f.reply), out)
	}
	return nil
}

var fixedNow = func() time.Time { return time.Date(2024, 9, 1, 3, 4, 5, 600_000_000, time.UTC) }

func fullForm() model.RegistrationRequest {
	return model.RegistrationRequest{
		FullName:             " สมชาย ใจดี ",
		Age:                  "35",
		Gender:               "Male",
		MaritalStatus:        "married",
		PhoneNumber:          "081-234-5678",
		IDCard:               "1 2345 67890 12 3",
		DrivingLicenseExpiry: "2024-09-15",
		IDCardExpiry:         "2024-12-31",
	}
}

func TestRegisterSendsNormalizedPayloadOnce(t *testing.T) {
	p := &fakePoster{}
	svc := NewRegistrationService(p, i18n.Default("th"), fixedNow)

	resp := svc.Register(context.Background(), i18n.EN, fullForm())

	require.Len(t, p.calls, 1)
	got := p.calls[0]
	assert.Equal(t, "สมชาย ใจดี", got.FullName)
	assert.Equal(t, 35, got.Age)
	assert.Equal(t, "male", got.Gender)
	assert.Equal(t, "0812345678", got.PhoneNumber)
	assert.Equal(t, "1234567890123", got.IDCard)
	assert.Equal(t, "2024-09-15", got.DrivingLicenseExpiry)
	assert.Equal(t, "2024-09-01T03:04:05.600Z", got.Timestamp)

	assert.True(t, resp.OK)
	assert.True(t, resp.Reset)
	assert.Equal(t, "Registration completed", resp.Message)
	assert.Empty(t, resp.Recommendation)
}

func TestRegisterFailureKeepsForm(t *testing.T) {
	p := &fakePoster{err: errors.New("status 500")}
	svc := NewRegistrationService(p, i18n.Default("th"), fixedNow)

	resp := svc.Register(context.Background(), i18n.TH, fullForm())
	assert.Len(t, p.calls, 1)
	assert.False(t, resp.OK)
	assert.False(t, resp.Reset)
	assert.Equal(t, "ไม่สามารถลงทะเบียนได้ กรุณาลองใหม่อีกครั้ง", resp.Message)
}

func TestQuickRegistrationUsesServerRecommendation(t *testing.T) {
	p := &fakePoster{reply: `{"recommendation":"  ต่ออายุใบขับขี่ภายในเดือนนี้ "}`}
	svc := NewRegistrationService(p, i18n.Default("th"), fixedNow)

	resp := svc.RegisterQuick(context.Background(), i18n.TH, model.QuickRegistrationRequest{FullName: "สมหญิง", Age: "28"})
	require.Len(t, p.calls, 1)
	assert.Equal(t, 28, p.calls[0].Age)
	assert.Empty(t, p.calls[0].IDCard)
	assert.True(t, resp.OK)
	assert.Equal(t, "ต่ออายุใบขับขี่ภายในเดือนนี้", resp.Recommendation)
}

func TestQuickRegistrationGenericWhenServerSilent(t *testing.T) {
	p := &fakePoster{reply: `{}`}
	svc := NewRegistrationService(p, i18n.Default("th"), fixedNow)

	resp := svc.RegisterQuick(context.Background(), i18n.EN, model.QuickRegistrationRequest{FullName: "Somying", Age: "28"})
	assert.True(t, resp.OK)
	assert.Equal(t, "You are registered. We will recommend services for you shortly.", resp.Recommendation)
}

func TestQuickRegistrationFallbackMentionsName(t *testing.T) {
	p := &fakePoster{err: errors.New("dial tcp: connection refused")}
	svc := NewRegistrationService(p, i18n.Default("th"), fixedNow)

	resp := svc.RegisterQuick(context.Background(), i18n.TH, model.QuickRegistrationRequest{FullName: "สมหญิง รักดี", Age: "41"})
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Recommendation, "สมหญิง รักดี")
	assert.Contains(t, resp.Recommendation, "41")
}

func TestUnconfiguredWebhookTakesFailurePath(t *testing.T) {
	svc := NewRegistrationService(nil, i18n.Default("en"), fixedNow)

	resp := svc.RegisterQuick(context.Background(), i18n.EN, model.QuickRegistrationRequest{FullName: "Somchai", Age: "35"})
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Recommendation, "Somchai")
	assert.ErrorIs(t, svc.post(context.Background(), model.RegistrationPayload{}, nil), ErrWebhookNotConfigured)
}
