package background

import (
	"context"
	"time"

	"github.com/bitmark-inc/helpledger/external/webhook"
)

const sendTimeout = 15 * time.Second

// NotificationCenter delivers localized texts to accounts. headings and
// contents are keyed by delivery language code.
type NotificationCenter interface {
	NotifyAccountByText(identity string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyLocationByText(location string, headings, contents map[string]string, data map[string]interface{}) error
}

type WebhookNotificationCenter struct {
	client webhook.Client
}

func NewWebhookNotificationCenter(client webhook.Client) *WebhookNotificationCenter {
	return &WebhookNotificationCenter{
		client: client,
	}
}

func (w *WebhookNotificationCenter) NotifyAccountByText(identity string, headings, contents map[string]string, data map[string]interface{}) error {
	return w.send(webhook.Target{Identities: []string{identity}}, headings, contents, data)
}

func (w *WebhookNotificationCenter) NotifyLocationByText(location string, headings, contents map[string]string, data map[string]interface{}) error {
	return w.send(webhook.Target{Location: location}, headings, contents, data)
}

func (w *WebhookNotificationCenter) send(target webhook.Target, headings, contents map[string]string, data map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	return w.client.Send(ctx, webhook.Notification{
		Target:   target,
		Headings: headings,
		Contents: contents,
		Data:     data,
	})
}

// LogNotificationCenter writes notifications to the log. It is used when
// no delivery gateway is configured.
type LogNotificationCenter struct{}

func (LogNotificationCenter) NotifyAccountByText(identity string, headings, contents map[string]string, data map[string]interface{}) error {
	log.WithField("identity", identity).
		WithField("data", data).
		Infof("%s: %s", headings[defaultLanguage], contents[defaultLanguage])
	return nil
}

func (LogNotificationCenter) NotifyLocationByText(location string, headings, contents map[string]string, data map[string]interface{}) error {
	log.WithField("location", location).
		WithField("data", data).
		Infof("%s: %s", headings[defaultLanguage], contents[defaultLanguage])
	return nil
}
