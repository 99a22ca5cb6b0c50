package webhook_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/helpledger/external/webhook"
)

func TestSend(t *testing.T) {
	var received webhook.Notification
	var auth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer ts.Close()

	c := webhook.New(ts.URL, "secret", nil)
	err := c.Send(context.Background(), webhook.Notification{
		Target:   webhook.Target{Identities: []string{"alice"}},
		Headings: map[string]string{"en": "Help accepted"},
		Contents: map[string]string{"en": "bob accepted your request"},
		Data:     map[string]interface{}{"request_id": float64(1)},
	})
	assert.Nil(t, err, "wrong Send")
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, []string{"alice"}, received.Target.Identities)
	assert.Equal(t, "Help accepted", received.Headings["en"])
	assert.Equal(t, float64(1), received.Data["request_id"])
}

func TestSendRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"error","message":"unknown target"}`))
	}))
	defer ts.Close()

	c := webhook.New(ts.URL, "", nil)
	err := c.Send(context.Background(), webhook.Notification{Target: webhook.Target{Location: "Paris"}})
	assert.Error(t, err)
}

func TestSendHTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := webhook.New(ts.URL, "", nil)
	assert.Error(t, c.Send(context.Background(), webhook.Notification{}))
}

func TestSendEmptyURL(t *testing.T) {
	c := webhook.New("", "", nil)
	assert.Error(t, c.Send(context.Background(), webhook.Notification{}))
}
