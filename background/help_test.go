package background

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type notification struct {
	target   string
	headings map[string]string
	contents map[string]string
	data     map[string]interface{}
}

type fakeNotifier struct {
	accounts  []notification
	locations []notification
	err       error
}

func (f *fakeNotifier) NotifyAccountByText(identity string, headings, contents map[string]string, data map[string]interface{}) error {
	f.accounts = append(f.accounts, notification{identity, headings, contents, data})
	return f.err
}

func (f *fakeNotifier) NotifyLocationByText(location string, headings, contents map[string]string, data map[string]interface{}) error {
	f.locations = append(f.locations, notification{location, headings, contents, data})
	return f.err
}

type NotificationTaskTestSuite struct {
	suite.Suite
	notifier *fakeNotifier
	manager  *BackgroundManager
}

func (s *NotificationTaskTestSuite) SetupTest() {
	s.notifier = &fakeNotifier{}
	s.manager = New(s.notifier, nil)
}

func (s *NotificationTaskTestSuite) TestBroadcastNewHelp() {
	s.NoError(s.manager.BroadcastNewHelp(3, "alice", "Ride to the station", "pickup", "Paris"))

	s.Len(s.notifier.locations, 1)
	n := s.notifier.locations[0]
	s.Equal("Paris", n.target)
	s.Equal("Someone nearby needs help", n.headings["en"])
	s.Equal("Ride to the station (pickup) in Paris", n.contents["en"])
	s.Equal("BROADCAST_NEW_HELP", n.data["notification_type"])
	s.Equal(int64(3), n.data["help_id"])
	s.Contains(n.headings, "zh-Hant")
}

func (s *NotificationTaskTestSuite) TestNotifyHelpAccepted() {
	s.NoError(s.manager.NotifyHelpAccepted(1, "alice", "bob"))

	s.Len(s.notifier.accounts, 1)
	n := s.notifier.accounts[0]
	s.Equal("alice", n.target)
	s.Equal("bob will help you with request #1", n.contents["en"])
	s.Equal("NOTIFY_HELP_ACCEPTED", n.data["notification_type"])
}

func (s *NotificationTaskTestSuite) TestNotifyHelpCompleted() {
	s.NoError(s.manager.NotifyHelpCompleted(1, "alice", "bob"))

	s.Len(s.notifier.accounts, 2)
	s.Equal("alice", s.notifier.accounts[0].target)
	s.Equal("Request #1 is completed. Leave a review for bob", s.notifier.accounts[0].contents["en"])
	s.Equal("bob", s.notifier.accounts[1].target)
	s.Equal("Request #1 is completed. Leave a review for alice", s.notifier.accounts[1].contents["en"])
}

func (s *NotificationTaskTestSuite) TestNotifyReviewSubmitted() {
	s.NoError(s.manager.NotifyReviewSubmitted(1, "bob", "alice", 4))

	s.Len(s.notifier.accounts, 1)
	n := s.notifier.accounts[0]
	s.Equal("bob", n.target)
	s.Equal("alice rated you 4 of 5 for request #1", n.contents["en"])
	s.Equal(int64(4), n.data["rating"])
}

func (s *NotificationTaskTestSuite) TestNotifyAccountRegistered() {
	s.NoError(s.manager.NotifyAccountRegistered("alice", 10))

	s.Len(s.notifier.accounts, 1)
	s.Equal("Welcome", s.notifier.accounts[0].headings["en"])
	s.Equal("Your account starts with 10 credits", s.notifier.accounts[0].contents["en"])
}

func (s *NotificationTaskTestSuite) TestDeliveryError() {
	s.notifier.err = errors.New("gateway down")

	s.Error(s.manager.NotifyHelpAccepted(1, "alice", "bob"))
	s.Error(s.manager.NotifyHelpCompleted(1, "alice", "bob"))
	s.Len(s.notifier.accounts, 2)
}

func (s *NotificationTaskTestSuite) TestTaskTable() {
	tasks := s.manager.tasks()
	s.Len(tasks, 5)
	for _, name := range []string{
		TaskBroadcastHelp,
		TaskNotifyHelpAccepted,
		TaskNotifyHelpCompleted,
		TaskNotifyReviewSubmitted,
		TaskNotifyAccountRegistered,
	} {
		s.Contains(tasks, name)
	}
}

func TestNotificationTaskTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationTaskTestSuite))
}
