package handler

import (
	"testing"
	"time"

	"citizen-services/internal/i18n"
	"citizen-services/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestViewsLeaveUserTextAlone(t *testing.T) {
	v := views{tr: i18n.Default("th"), l: i18n.EN}
	at := time.Date(2024, 9, 1, 14, 5, 0, 0, time.UTC)

	user := v.message(model.Message{ID: "1", Role: model.RoleUser, Content: "header.home", CreatedAt: at})
	assert.Equal(t, "header.home", user.Content)
	assert.Equal(t, "14:05", user.Time)
	assert.Nil(t, user.Suggestions)

	bot := v.message(model.Message{ID: "2", Role: model.RoleBot, Content: "header.home", CreatedAt: at, Suggestions: []string{"suggestion.bookQueue", "free text"}})
	assert.Equal(t, "Home", bot.Content)
	assert.Equal(t, "free text", bot.Suggestions[1])
}

func TestViewsFallbackLabels(t *testing.T) {
	v := views{tr: i18n.Default("th"), l: i18n.EN}

	rec := v.recommendation(model.Recommendation{Title: "Custom card", Priority: "someday"})
	assert.Equal(t, "Custom card", rec.Title)
	assert.Equal(t, v.t("rec.priority.unknown"), rec.PriorityLabel)

	doc := v.document(model.Document{Type: "docs.passport", Status: "lost"})
	assert.Equal(t, "Passport", doc.Type)
	assert.Equal(t, v.t("docs.status.unknown"), doc.StatusText)
	assert.True(t, doc.Renewable)

	n := v.notification(model.Notification{Title: "plain", Category: "odd"})
	assert.Equal(t, v.t("notif.category.info"), n.CategoryLabel)
	assert.Empty(t, n.Details)
}
