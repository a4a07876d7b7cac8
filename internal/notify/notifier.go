package notify

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/BruksfildServices01/physio-clinic/internal/models"
)

// Notifier tells the clinic about new inbound requests.
type Notifier interface {
	BookingCreated(b models.Booking, therapyName string)
	ContactReceived(c models.Contact)
}

// Clinic queues e-mails to the clinic inbox and sends them from a single
// worker.
type Clinic struct {
	sender Sender
	inbox  string
	log    *slog.Logger
	queue  chan Message
	wg     sync.WaitGroup
	once   sync.Once
}

func NewClinic(sender Sender, inbox string, log *slog.Logger) *Clinic {
	if log == nil {
		log = slog.Default()
	}
	n := &Clinic{
		sender: sender,
		inbox:  inbox,
		log:    log,
		queue:  make(chan Message, 50),
	}
	n.wg.Add(1)
	go n.worker()
	return n
}

func (n *Clinic) worker() {
	defer n.wg.Done()
	for m := range n.queue {
		if err := n.sender.Send(m); err != nil {
			n.log.Error("notification send failed", "subject", m.Subject, "error", err)
		}
	}
}

func (n *Clinic) enqueue(m Message) {
	select {
	case n.queue <- m:
	default:
		n.log.Warn("notification queue full, dropping message", "subject", m.Subject)
	}
}

func (n *Clinic) BookingCreated(b models.Booking, therapyName string) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "New booking request %s\n\n", b.ID)
	fmt.Fprintf(&sb, "Patient: %s\n", b.PatientName)
	fmt.Fprintf(&sb, "Phone: %s\n", b.PatientPhone)
	writeOptional(&sb, "E-mail", b.PatientEmail)
	if b.PatientAge != nil {
		fmt.Fprintf(&sb, "Age: %d\n", *b.PatientAge)
	}
	fmt.Fprintf(&sb, "Therapy: %s\n", therapyName)
	writeOptional(&sb, "Date", b.AppointmentDate)
	writeOptional(&sb, "Time", b.AppointmentTime)
	writeOptional(&sb, "Notes", b.AdditionalNotes)
	if b.AppointmentDate == nil && b.AppointmentTime == nil {
		sb.WriteString("\nNo slot requested: call the patient back to schedule.\n")
	}

	m := Message{
		To:      n.inbox,
		Subject: fmt.Sprintf("Booking request: %s (%s)", b.PatientName, therapyName),
		Body:    sb.String(),
	}
	if b.PatientEmail != nil {
		m.ReplyTo = *b.PatientEmail
	}
	n.enqueue(m)
}

func (n *Clinic) ContactReceived(c models.Contact) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "From: %s <%s>\n", c.Name, c.Email)
	writeOptional(&sb, "Phone", c.Phone)
	fmt.Fprintf(&sb, "\n%s\n", c.Message)

	n.enqueue(Message{
		To:      n.inbox,
		ReplyTo: c.Email,
		Subject: "Contact form: " + c.Subject,
		Body:    sb.String(),
	})
}

// Close drains pending messages.
func (n *Clinic) Close() {
	n.once.Do(func() {
		close(n.queue)
		n.wg.Wait()
	})
}

func writeOptional(sb *strings.Builder, label string, v *string) {
	if v != nil && *v != "" {
		fmt.Fprintf(sb, "%s: %s\n", label, *v)
	}
}

// Nop drops every notification.
type Nop struct{}

func (Nop) BookingCreated(models.Booking, string) {}
func (Nop) ContactReceived(models.Contact)        {}
