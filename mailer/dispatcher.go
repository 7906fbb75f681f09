// Package mailer renders site events into emails and hands them to the
// transactional email provider without holding up the HTTP response.
package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"sync"

	"github.com/cenkalti/backoff/v4"

	"github.com/abhurtya/real-deal-server-side/models"
	"github.com/abhurtya/real-deal-server-side/utils"
)

type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

var templates = template.Must(template.Must(template.New("booking").Parse(bookingHTML)).New("listing").Parse(listingHTML))

// Dispatcher sends notifications in the background. Delivery failures are
// logged and never reported to the caller.
type Dispatcher struct {
	sender Sender
	from   string
	to     string
	policy utils.RetryPolicy
	logger *slog.Logger
	wg     sync.WaitGroup
}

func NewDispatcher(sender Sender, from, to string, policy utils.RetryPolicy, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		from:   from,
		to:     to,
		policy: policy,
		logger: logger,
	}
}

func (d *Dispatcher) BookAppointment(req models.BookingRequest) error {
	return d.dispatch("booking", "New appointment booking",
		fmt.Sprintf("New appointment booking from %s on %s at %s.", req.Name, req.Date, req.Time), req)
}

func (d *Dispatcher) RequestListing(req models.ListingRequest) error {
	return d.dispatch("listing", "New Property Listing Request",
		fmt.Sprintf("New %s listing request from %s %s.", req.PropertyType, req.FirstName, req.LastName), req)
}

// dispatch renders synchronously so template errors surface to the caller,
// then delivers asynchronously.
func (d *Dispatcher) dispatch(tmpl, subject, text string, data any) error {
	var html bytes.Buffer
	if err := templates.ExecuteTemplate(&html, tmpl, data); err != nil {
		return fmt.Errorf("mailer: render %s: %w", tmpl, err)
	}
	msg := Message{From: d.from, To: d.to, Subject: subject, Text: text, HTML: html.String()}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.deliver(msg)
	}()
	return nil
}

func (d *Dispatcher) deliver(msg Message) {
	err := d.policy.Do(context.Background(), func(ctx context.Context) error {
		err := d.sender.Send(ctx, msg)
		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Temporary() {
			return backoff.Permanent(err)
		}
		return err
	})
	if err != nil {
		d.logger.Error("email delivery failed", "subject", msg.Subject, "error", err)
		return
	}
	d.logger.Info("email sent", "subject", msg.Subject)
}

// Close waits for in-flight deliveries or until ctx is done.
func (d *Dispatcher) Close(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

const bookingHTML = `<div style="font-family: Arial, sans-serif; color: #444;">
  <h2 style="color: #007bff;">New Appointment Booking</h2>
  <p style="margin: 0 0 20px;">A new appointment has been booked on your real estate website:</p>
  <table style="border-collapse: collapse; width: 100%;">
    <tr><td style="border: 1px solid #ccc; padding: 10px;">Name:</td><td style="border: 1px solid #ccc; padding: 10px;">{{.Name}}</td></tr>
    <tr><td style="border: 1px solid #ccc; padding: 10px;">Email:</td><td style="border: 1px solid #ccc; padding: 10px;">{{.Email}}</td></tr>
    <tr><td style="border: 1px solid #ccc; padding: 10px;">Phone:</td><td style="border: 1px solid #ccc; padding: 10px;">{{.Phone}}</td></tr>
    <tr><td style="border: 1px solid #ccc; padding: 10px;">Date:</td><td style="border: 1px solid #ccc; padding: 10px;">{{.Date}}</td></tr>
    <tr><td style="border: 1px solid #ccc; padding: 10px;">Time:</td><td style="border: 1px solid #ccc; padding: 10px;">{{.Time}}</td></tr>
    <tr><td style="border: 1px solid #ccc; padding: 10px;">Note:</td><td style="border: 1px solid #ccc; padding: 10px;">{{.Note}}</td></tr>
  </table>
  <p style="margin: 20px 0 0;">Thank you,</p>
  <p style="margin: 0;">Your Real Estate Team</p>
</div>`

const listingHTML = `<h2 style="color: #007bff;">New Property Listing Request</h2>
<p>Hello Real Estate Team,</p>
<p>A new property listing has been requested on your website:</p>
<table>
  <tr><td style="border: 1px solid #ccc; padding: 10px;"><b>First Name:</b></td><td style="border: 1px solid #ccc; padding: 10px;">{{.FirstName}}</td></tr>
  <tr><td style="border: 1px solid #ccc; padding: 10px;"><b>Last Name:</b></td><td style="border: 1px solid #ccc; padding: 10px;">{{.LastName}}</td></tr>
  <tr><td style="border: 1px solid #ccc; padding: 10px;"><b>Email:</b></td><td style="border: 1px solid #ccc; padding: 10px;">{{.Email}}</td></tr>
  <tr><td style="border: 1px solid #ccc; padding: 10px;"><b>Phone:</b></td><td style="border: 1px solid #ccc; padding: 10px;">{{.Phone}}</td></tr>
  <tr><td style="border: 1px solid #ccc; padding: 10px;"><b>Property Type:</b></td><td style="border: 1px solid #ccc; padding: 10px;">{{.PropertyType}}</td></tr>
  <tr><td style="border: 1px solid #ccc; padding: 10px;"><b>Property History:</b></td><td style="border: 1px solid #ccc; padding: 10px;">{{.PropertyHistory}}</td></tr>
  <tr><td style="border: 1px solid #ccc; padding: 10px;"><b>Neighbour Benefits:</b></td><td style="border: 1px solid #ccc; padding: 10px;">{{.NeighbourBenefits}}</td></tr>
  <tr><td style="border: 1px solid #ccc; padding: 10px;"><b>Is Walkable:</b></td><td style="border: 1px solid #ccc; padding: 10px;">{{.IsWalkable}}</td></tr>
  <tr><td style="border: 1px solid #ccc; padding: 10px;"><b>Has Schools Nearby:</b></td><td style="border: 1px solid #ccc; padding: 10px;">{{.HasSchoolsNearby}}</td></tr>
</table>
<p>Thank you for your attention,</p>
<p>Your Real Estate Team</p>`
