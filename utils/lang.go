package utils

import (
	"os"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

var bundle *i18n.Bundle

// defaultMessages are the english notification texts. Message files in the
// i18n directory override them and add other languages.
var defaultMessages = []*i18n.Message{
	{ID: "notification.broadcast_help.heading", Other: "Someone nearby needs help"},
	{ID: "notification.broadcast_help.content", Other: "{{.Title}} ({{.HelpType}}) in {{.Location}}"},
	{ID: "notification.help_accepted.heading", Other: "Your request was accepted"},
	{ID: "notification.help_accepted.content", Other: "{{.Helper}} will help you with request #{{.RequestID}}"},
	{ID: "notification.help_completed.heading", Other: "Request completed"},
	{ID: "notification.help_completed.content", Other: "Request #{{.RequestID}} is completed. Leave a review for {{.Counterparty}}"},
	{ID: "notification.review_submitted.heading", Other: "You received a review"},
	{ID: "notification.review_submitted.content", Other: "{{.Reviewer}} rated you {{.Rating}} of 5 for request #{{.RequestID}}"},
	{ID: "notification.account_registered.heading", Other: "Welcome"},
	{ID: "notification.account_registered.content", Other: "Your account starts with {{.Balance}} credits"},
}

var messageFiles = []string{"en.yaml", "zh_tw.yaml"}

// InitI18NBundle builds the message bundle from the built-in english texts
// and the message files found in dir
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	if err := b.AddMessages(language.English, defaultMessages...); err != nil {
		return err
	}

	if dir != "" {
		for _, name := range messageFiles {
			file := path.Join(dir, name)
			if _, err := os.Stat(file); os.IsNotExist(err) {
				continue
			}
			if _, err := b.LoadMessageFile(file); err != nil {
				return err
			}
		}
	}

	bundle = b
	return nil
}

func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		if err := InitI18NBundle(""); err != nil {
			panic(err)
		}
	}
	return i18n.NewLocalizer(bundle, lang)
}

// Localize renders a message, falling back to its id when the message
// cannot be found
func Localize(lang, id string, data map[string]interface{}) string {
	msg, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
