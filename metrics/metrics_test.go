package metrics

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveCommand(t *testing.T) {
	before := testutil.ToFloat64(commands.WithLabelValues("register", "OK"))
	ObserveCommand("register", "OK", time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(commands.WithLabelValues("register", "OK")))
}

func TestCreditMoved(t *testing.T) {
	before := testutil.ToFloat64(credits.WithLabelValues(Debit))
	CreditMoved(Debit, 5)
	assert.Equal(t, before+5, testutil.ToFloat64(credits.WithLabelValues(Debit)))
}

func TestOpenRequests(t *testing.T) {
	SetOpenRequests(3)
	OpenRequestsChanged(1)
	OpenRequestsChanged(-2)
	assert.Equal(t, float64(2), testutil.ToFloat64(openRequests))
}

func TestNotificationSent(t *testing.T) {
	before := testutil.ToFloat64(notifications.WithLabelValues("RequestCreated", "false"))
	NotificationSent("RequestCreated", fmt.Errorf("broker down"))
	assert.Equal(t, before+1, testutil.ToFloat64(notifications.WithLabelValues("RequestCreated", "false")))
}

func TestHandler(t *testing.T) {
	ObserveCommand("createRequest", "InsufficientCredit", time.Millisecond)

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "helpledger_ledger_commands_total"))
}
