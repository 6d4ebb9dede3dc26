package mail

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/planner-app/backend/internal/dateutil"
)

// The two mails this system sends: the owner's creation confirmation and the
// participant invitation. Both link to a confirmation endpoint on this API.

var tripCreatedTmpl = template.Must(template.New("trip_created").Parse(strings.TrimSpace(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
	<h1>Your trip to {{.Destination}} has been created!</h1>
	<p>Your trip is scheduled from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
	<p></p>
	<a href="{{.ConfirmLink}}">Confirm trip</a>
	<p></p>
	<p>In case you did not create this trip, please ignore this email.</p>
</div>
`)))

var invitationTmpl = template.Must(template.New("invitation").Parse(strings.TrimSpace(`
<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
	<p>You have been invited to a trip to <strong>{{.Destination}}</strong> from <strong>{{.StartsAt}}</strong> to <strong>{{.EndsAt}}</strong>.</p>
	<p></p>
	<p>We are waiting for your confirmation to join the trip to {{.Destination}}. Please confirm your participation at your earliest convenience.</p>
	<p></p>
	<a href="{{.ConfirmLink}}">Confirm trip</a>
	<p></p>
	<p>In case you did not create this trip, please ignore this email.</p>
</div>
`)))

type mailData struct {
	Destination string
	StartsAt    string
	EndsAt      string
	ConfirmLink string
}

// TripCreated renders the mail sent to the trip owner right after creation.
// confirmLink points at the trip confirmation endpoint of this API.
func TripCreated(destination string, startsAt, endsAt time.Time, confirmLink string) (subject, html string, err error) {
	subject = "Your trip has been created!"
	html, err = render(tripCreatedTmpl, destination, startsAt, endsAt, confirmLink)
	return subject, html, err
}

// Invitation renders the mail sent to an invited participant.
// confirmLink points at the participant confirmation endpoint of this API.
func Invitation(destination string, startsAt, endsAt time.Time, confirmLink string) (subject, html string, err error) {
	subject = fmt.Sprintf("Confirm your presence in the trip to %s on %s",
		destination, dateutil.FormatLong(startsAt))
	html, err = render(invitationTmpl, destination, startsAt, endsAt, confirmLink)
	return subject, html, err
}

func render(tmpl *template.Template, destination string, startsAt, endsAt time.Time, confirmLink string) (string, error) {
	var b strings.Builder
	err := tmpl.Execute(&b, mailData{
		Destination: destination,
		StartsAt:    dateutil.FormatLong(startsAt),
		EndsAt:      dateutil.FormatLong(endsAt),
		ConfirmLink: confirmLink,
	})
	if err != nil {
		return "", fmt.Errorf("mail: render %s: %w", tmpl.Name(), err)
	}
	return b.String(), nil
}
