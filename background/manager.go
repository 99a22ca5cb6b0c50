package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// BackgroundManager runs the notification tasks of the ledger
type BackgroundManager struct {
	notifier NotificationCenter

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(notifier NotificationCenter, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		notifier:   notifier,
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// RegisterTasks registers every notification task with the task server
func (m *BackgroundManager) RegisterTasks() error {
	for name, fn := range m.tasks() {
		if err := m.RegisterTask(name, fn); err != nil {
			return err
		}
	}
	return nil
}

func (m *BackgroundManager) tasks() map[string]interface{} {
	return map[string]interface{}{
		TaskBroadcastHelp:           m.BroadcastNewHelp,
		TaskNotifyHelpAccepted:      m.NotifyHelpAccepted,
		TaskNotifyHelpCompleted:     m.NotifyHelpCompleted,
		TaskNotifyReviewSubmitted:   m.NotifyReviewSubmitted,
		TaskNotifyAccountRegistered: m.NotifyAccountRegistered,
	}
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run(concurrency int) error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("helpledger-worker", concurrency)
	return m.worker.Launch()
}

// Quit stops a running worker
func (m *BackgroundManager) Quit() {
	if m.worker != nil {
		m.worker.Quit()
	}
}
