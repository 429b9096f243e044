package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"citizen-services/internal/i18n"
	"citizen-services/internal/logger"
	"citizen-services/internal/model"
	"citizen-services/internal/validator"
)

var ErrWebhookNotConfigured = errors.New("registration webhook not configured")

// isoMillis matches JavaScript's Date.toISOString.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Poster sends one JSON document and decodes the JSON reply into out, if any.
type Poster interface {
	PostJSON(ctx context.Context, body, out any) error
}

type webhookReply struct {
	Recommendation string `json:"recommendation"`
}

// RegistrationService forwards validated registrations to the webhook. Each call
// makes exactly one request; there is no retry.
type RegistrationService struct {
	poster Poster
	tr     *i18n.Store
	now    func() time.Time
}

func NewRegistrationService(poster Poster, tr *i18n.Store, now func() time.Time) *RegistrationService {
	if now == nil {
		now = time.Now
	}
	return &RegistrationService{poster: poster, tr: tr, now: now}
}

// Payload normalizes a full form. Validation has already run, so the age parses.
func (s *RegistrationService) Payload(req model.RegistrationRequest) model.RegistrationPayload {
	age, _ := validator.ParseAge(req.Age)
	return model.RegistrationPayload{
		FullName:             strings.TrimSpace(req.FullName),
		Age:                  age,
		Gender:               strings.ToLower(req.Gender),
		MaritalStatus:        strings.ToLower(req.MaritalStatus),
		PhoneNumber:          validator.Digits(req.PhoneNumber),
		IDCard:               validator.Digits(req.IDCard),
		DrivingLicenseExpiry: req.DrivingLicenseExpiry,
		IDCardExpiry:         req.IDCardExpiry,
		Timestamp:            s.now().UTC().Format(isoMillis),
	}
}

// Register submits the full profile form. On success the form should be reset.
func (s *RegistrationService) Register(ctx context.Context, l i18n.Locale, req model.RegistrationRequest) model.RegistrationResponse {
	payload := s.Payload(req)
	if err := s.post(ctx, payload, nil); err != nil {
		logger.Warn("register.webhook.failed", "variant", "profile", "err", err)
		return s.failed(l)
	}
	logger.Info("register.ok", "variant", "profile")
	resp := s.succeeded(l)
	resp.Reset = true
	return resp
}

// RegisterQuick submits name and age and surfaces the webhook's recommendation.
// When the webhook fails, a local recommendation is built from the submitted values.
func (s *RegistrationService) RegisterQuick(ctx context.Context, l i18n.Locale, req model.QuickRegistrationRequest) model.RegistrationResponse {
	age, _ := validator.ParseAge(req.Age)
	name := strings.TrimSpace(req.FullName)
	payload := model.RegistrationPayload{FullName: name, Age: age, Timestamp: s.now().UTC().Format(isoMillis)}

	var reply webhookReply
	if err := s.post(ctx, payload, &reply); err != nil {
		logger.Warn("register.webhook.failed", "variant", "quick", "err", err)
		resp := s.failed(l)
		resp.Recommendation = s.tr.Tf(l, "register.recommendation.fallback", name, age)
		return resp
	}
	resp := s.succeeded(l)
	resp.Recommendation = strings.TrimSpace(reply.Recommendation)
	if resp.Recommendation == "" {
		resp.Recommendation = s.tr.T(l, "register.recommendation.generic")
	}
	logger.Info("register.ok", "variant", "quick")
	return resp
}

func (s *RegistrationService) post(ctx context.Context, payload model.RegistrationPayload, out any) error {
	if s.poster == nil {
		return ErrWebhookNotConfigured
	}
	return s.poster.PostJSON(ctx, payload, out)
}

func (s *RegistrationService) succeeded(l i18n.Locale) model.RegistrationResponse {
	return model.RegistrationResponse{OK: true, Title: s.tr.T(l, "register.success.title"), Message: s.tr.T(l, "register.success")}
}

func (s *RegistrationService) failed(l i18n.Locale) model.RegistrationResponse {
	return model.RegistrationResponse{OK: false, Title: s.tr.T(l, "register.error.title"), Message: s.tr.T(l, "register.error")}
}
