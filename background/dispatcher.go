package background

import (
	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/google/uuid"

	"github.com/bitmark-inc/helpledger/schema"
)

// TaskSender enqueues task signatures. *machinery.Server implements it.
type TaskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// RequestLookup reads the request details a notification needs
type RequestLookup interface {
	GetRequest(requestID int64) (*schema.HelpRequest, error)
}

// TaskDispatcher turns ledger events into notification tasks
type TaskDispatcher struct {
	sender   TaskSender
	requests RequestLookup
}

func NewTaskDispatcher(sender TaskSender, requests RequestLookup) *TaskDispatcher {
	return &TaskDispatcher{
		sender:   sender,
		requests: requests,
	}
}

func (d *TaskDispatcher) Notify(e schema.Event) {
	signature, err := d.signature(e)
	if err != nil {
		log.WithField("kind", e.Kind).WithField("request_id", e.RequestID).WithError(err).Error("build notification task")
		return
	}
	if signature == nil {
		return
	}

	if _, err := d.sender.SendTask(signature); err != nil {
		log.WithField("task", signature.Name).WithError(err).Error("send notification task")
		return
	}
	log.WithField("task", signature.Name).WithField("uuid", signature.UUID).Debug("notification task sent")
}

func (d *TaskDispatcher) signature(e schema.Event) (*tasks.Signature, error) {
	switch e.Kind {
	case schema.EventAccountRegistered:
		return newSignature(TaskNotifyAccountRegistered,
			stringArg("identity", e.Identity),
			int64Arg("balance", schema.InitialBalance),
		), nil

	case schema.EventRequestCreated:
		r, err := d.requests.GetRequest(e.RequestID)
		if err != nil {
			return nil, err
		}
		return newSignature(TaskBroadcastHelp,
			int64Arg("requestID", r.ID),
			stringArg("requester", r.Requester),
			stringArg("title", r.Title),
			stringArg("helpType", r.HelpType.String()),
			stringArg("location", r.Location),
		), nil

	case schema.EventRequestMatched:
		return newSignature(TaskNotifyHelpAccepted,
			int64Arg("requestID", e.RequestID),
			stringArg("requester", e.Counterparty),
			stringArg("helper", e.Identity),
		), nil

	case schema.EventRequestCompleted:
		r, err := d.requests.GetRequest(e.RequestID)
		if err != nil {
			return nil, err
		}
		return newSignature(TaskNotifyHelpCompleted,
			int64Arg("requestID", r.ID),
			stringArg("requester", r.Requester),
			stringArg("helper", r.Helper),
		), nil

	case schema.EventReviewSubmitted:
		return newSignature(TaskNotifyReviewSubmitted,
			int64Arg("requestID", e.RequestID),
			stringArg("reviewed", e.Identity),
			stringArg("reviewer", e.Counterparty),
			int64Arg("rating", int64(e.Rating)),
		), nil
	}

	log.WithField("kind", e.Kind).Warn("no notification task for event")
	return nil, nil
}

func newSignature(name string, args ...tasks.Arg) *tasks.Signature {
	return &tasks.Signature{
		UUID: "task_" + uuid.New().String(),
		Name: name,
		Args: args,
	}
}

func stringArg(name, value string) tasks.Arg {
	return tasks.Arg{Name: name, Type: "string", Value: value}
}

func int64Arg(name string, value int64) tasks.Arg {
	return tasks.Arg{Name: name, Type: "int64", Value: value}
}
