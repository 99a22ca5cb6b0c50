package background

import (
	"github.com/bitmark-inc/helpledger/metrics"
)

const (
	TaskBroadcastHelp           = "broadcast_help"
	TaskNotifyHelpAccepted      = "notify_help_accepted"
	TaskNotifyHelpCompleted     = "notify_help_completed"
	TaskNotifyReviewSubmitted   = "notify_review_submitted"
	TaskNotifyAccountRegistered = "notify_account_registered"
)

// BroadcastNewHelp is a background job to tell the people around a new
// help request that it waits for a helper
func (m *BackgroundManager) BroadcastNewHelp(requestID int64, requester, title, helpType, location string) error {
	data := map[string]interface{}{
		"RequestID": requestID,
		"Title":     title,
		"HelpType":  helpType,
		"Location":  location,
	}
	headings, contents := localizedTexts("broadcast_help", data)
	err := m.notifier.NotifyLocationByText(location, headings, contents, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_HELP",
		"help_id":           requestID,
		"requester":         requester,
	})
	return m.sent(TaskBroadcastHelp, err)
}

// NotifyHelpAccepted is a background job to send notification to the
// requester of an accepted help request
func (m *BackgroundManager) NotifyHelpAccepted(requestID int64, requester, helper string) error {
	headings, contents := localizedTexts("help_accepted", map[string]interface{}{
		"RequestID": requestID,
		"Helper":    helper,
	})
	err := m.notifier.NotifyAccountByText(requester, headings, contents, map[string]interface{}{
		"notification_type": "NOTIFY_HELP_ACCEPTED",
		"help_id":           requestID,
	})
	return m.sent(TaskNotifyHelpAccepted, err)
}

// NotifyHelpCompleted is a background job to ask both parties of a
// completed help request for a review
func (m *BackgroundManager) NotifyHelpCompleted(requestID int64, requester, helper string) error {
	parties := [][2]string{{requester, helper}, {helper, requester}}
	for _, p := range parties {
		headings, contents := localizedTexts("help_completed", map[string]interface{}{
			"RequestID":    requestID,
			"Counterparty": p[1],
		})
		if err := m.notifier.NotifyAccountByText(p[0], headings, contents, map[string]interface{}{
			"notification_type": "NOTIFY_HELP_COMPLETED",
			"help_id":           requestID,
		}); err != nil {
			return m.sent(TaskNotifyHelpCompleted, err)
		}
	}
	return m.sent(TaskNotifyHelpCompleted, nil)
}

// NotifyReviewSubmitted is a background job to tell an account it was reviewed
func (m *BackgroundManager) NotifyReviewSubmitted(requestID int64, reviewed, reviewer string, rating int64) error {
	headings, contents := localizedTexts("review_submitted", map[string]interface{}{
		"RequestID": requestID,
		"Reviewer":  reviewer,
		"Rating":    rating,
	})
	err := m.notifier.NotifyAccountByText(reviewed, headings, contents, map[string]interface{}{
		"notification_type": "NOTIFY_REVIEW_SUBMITTED",
		"help_id":           requestID,
		"rating":            rating,
	})
	return m.sent(TaskNotifyReviewSubmitted, err)
}

// NotifyAccountRegistered is a background job to welcome a new account
func (m *BackgroundManager) NotifyAccountRegistered(identity string, balance int64) error {
	headings, contents := localizedTexts("account_registered", map[string]interface{}{
		"Balance": balance,
	})
	err := m.notifier.NotifyAccountByText(identity, headings, contents, map[string]interface{}{
		"notification_type": "NOTIFY_ACCOUNT_REGISTERED",
	})
	return m.sent(TaskNotifyAccountRegistered, err)
}

func (m *BackgroundManager) sent(task string, err error) error {
	metrics.NotificationSent(task, err)
	if err != nil {
		log.WithField("task", task).WithError(err).Error("send notification")
	}
	return err
}
