package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/famjamjam/pkg/mailer/templates"
)

var (
	errMissingRecipient = errors.New("notification has no recipient")
	errMissingEvent     = errors.New("new_event notification has no event")
	errUnknownType      = errors.New("unknown notification type")
)

// Outcome tells the consumer what to do with a delivery.
type Outcome int

const (
	Ack     Outcome = iota
	Reject          // drop, the payload can never succeed
	Requeue         // transient failure, try again
)

func (o Outcome) String() string {
	switch o {
	case Ack:
		return "ack"
	case Reject:
		return "reject"
	default:
		return "requeue"
	}
}

// Processor turns queued notification jobs into sent emails.
type Processor struct {
	Sender      Sender
	Site        templates.Site
	Logger      *logrus.Logger
	SendTimeout time.Duration
}

// Handle decodes, renders and sends one message body.
func (p *Processor) Handle(ctx context.Context, body []byte) Outcome {
	var job NotificationJob
	if err := json.Unmarshal(body, &job); err != nil {
		p.warn("bad message", err, nil)
		return Reject
	}
	if err := job.Validate(); err != nil {
		p.warn("invalid notification", err, logrus.Fields{"type": job.Type})
		return Reject
	}
	subject, text, html, err := p.Render(job)
	if err != nil {
		p.warn("render failed", err, logrus.Fields{"type": job.Type})
		return Reject
	}

	timeout := p.SendTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	c, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := p.Sender.Send(c, job.To, subject, text, html); err != nil {
		p.warn("send failed", err, logrus.Fields{"type": job.Type})
		return Requeue
	}
	if p.Logger != nil {
		p.Logger.WithField("type", job.Type).Info("notification sent")
	}
	return Ack
}

// Render produces subject, text and html for job.
func (p *Processor) Render(job NotificationJob) (string, string, string, error) {
	data := templates.Data{
		Site:       p.Site,
		FamilyName: job.FamilyName,
		Email:      job.To,
	}
	if job.Event != nil {
		data.Event = &templates.EventData{
			Title:        job.Event.Title,
			Description:  job.Event.Description,
			Location:     job.Event.Location,
			GroupTitle:   job.Event.GroupTitle,
			Date:         job.Event.EventDate,
			MaxAttendees: job.Event.MaxAttendees,
			URL:          fmt.Sprintf("%s/groups/%s/events/%s", p.Site.URL, job.Event.GroupID, job.Event.EventID),
		}
	}
	return templates.Render(job.Type, data)
}

func (p *Processor) warn(msg string, err error, fields logrus.Fields) {
	if p.Logger == nil {
		return
	}
	p.Logger.WithFields(fields).WithError(err).Warn(msg)
}
