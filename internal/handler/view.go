package handler

import (
	"time"

	"citizen-services/internal/i18n"
	"citizen-services/internal/model"
)

const clockLayout = "15:04"

// views renders records whose text fields hold translation keys.
type views struct {
	tr *i18n.Store
	l  i18n.Locale
}

func (v views) t(key string) string { return v.tr.T(v.l, key) }

// tOr translates key, or fallback when key has no entry.
func (v views) tOr(key, fallback string) string {
	if s := v.tr.T(v.l, key); s != key {
		return s
	}
	return v.t(fallback)
}

func (v views) all(keys []string) []string {
	if len(keys) == 0 {
		return nil
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = v.t(k)
	}
	return out
}

// message leaves user text as typed; bot content and suggestions are keys.
func (v views) message(m model.Message) model.MessageView {
	content := m.Content
	if m.Role == model.RoleBot {
		content = v.t(content)
	}
	return model.MessageView{
		ID:          m.ID,
		Role:        m.Role,
		Content:     content,
		Time:        m.CreatedAt.Format(clockLayout),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		Suggestions: v.all(m.Suggestions),
	}
}

func (v views) messages(ms []model.Message) []model.MessageView {
	out := make([]model.MessageView, len(ms))
	for i, m := range ms {
		out[i] = v.message(m)
	}
	return out
}

func (v views) notification(n model.Notification) model.NotificationView {
	n.Title = v.t(n.Title)
	n.Message = v.t(n.Message)
	n.Timestamp = v.t(n.Timestamp)
	if n.Details != "" {
		n.Details = v.t(n.Details)
	}
	return model.NotificationView{Notification: n, CategoryLabel: v.tOr("notif.category."+string(n.Category), "notif.category.info")}
}

func (v views) notifications(ns []model.Notification, unread int) model.NotificationList {
	items := make([]model.NotificationView, len(ns))
	for i, n := range ns {
		items[i] = v.notification(n)
	}
	return model.NotificationList{Items: items, UnreadCount: unread}
}

func (v views) document(d model.Document) model.DocumentView {
	var status string
	switch d.Status {
	case model.StatusExpired:
		status = v.t("docs.status.expired")
	case model.StatusExpiring:
		status = v.tr.Tf(v.l, "docs.status.expiring", d.DaysUntilExpiry)
	case model.StatusValid:
		status = v.tr.Tf(v.l, "docs.status.valid", d.DaysUntilExpiry)
	default:
		status = v.t("docs.status.unknown")
	}
	d.Type = v.t(d.Type)
	return model.DocumentView{Document: d, StatusText: status, Renewable: d.Status != model.StatusValid}
}

func (v views) recommendation(r model.Recommendation) model.RecommendationView {
	r.Title = v.t(r.Title)
	r.Description = v.t(r.Description)
	r.Location = v.t(r.Location)
	r.Category = v.t(r.Category)
	return model.RecommendationView{Recommendation: r, PriorityLabel: v.tOr("rec.priority."+string(r.Priority), "rec.priority.unknown")}
}

func (v views) stat(s model.Stat) model.Stat {
	s.Title = v.t(s.Title)
	s.Description = v.t(s.Description)
	return s
}

func (v views) citizen(c model.Citizen) model.Citizen {
	c.Name = v.t(c.Name)
	return c
}
