package utils

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io"
	texttemplate "text/template"
	"time"

	"makeyou-digital/backend/models"
)

const (
	brandSender = "MakeYou Digital"
	botSender   = "MakeYou Bot"
	siteURL     = "https://makeyou.online"
)

type contactView struct {
	models.ContactSubmission
	Callback string
	Year     int
	SiteURL  string
}

var confirmationText = texttemplate.Must(texttemplate.New("confirmation").Parse(
	`Hi {{.Name}},

Thanks for reaching out! I've received your message regarding:
"{{.Message}}"

I'll get back to you shortly.

Best,
Ronak Kumar Singh
`))

var confirmationHTML = htmltemplate.Must(htmltemplate.New("confirmation").Parse(`<!DOCTYPE html>
<html>
  <head><meta charset="utf-8"><title>Thank You - MakeYou Digital</title></head>
  <body style="margin:0;padding:20px;background:#f5f7fa;font-family:-apple-system,'Segoe UI',Roboto,Arial,sans-serif;">
    <table width="100%" cellpadding="0" cellspacing="0" style="max-width:600px;margin:0 auto;background:#fff;border-radius:16px;">
      <tr><td style="background:#000;padding:40px 30px;text-align:center;">
        <h1 style="margin:0;color:#fff;font-size:28px;letter-spacing:2px;text-transform:uppercase;">MakeYou</h1>
        <p style="margin:8px 0 0;color:#a0a0a0;font-size:14px;">Digital Solutions</p>
      </td></tr>
      <tr><td style="padding:50px 40px;">
        <h2 style="margin:0 0 20px;font-size:24px;">Hi {{.Name}}!</h2>
        <p style="font-size:16px;line-height:1.6;">Thank you for reaching out to <strong>MakeYou Digital</strong>! We've received your message and are excited to help your business grow online.</p>
        <div style="margin:30px 0;background:#f8f9fa;border-left:5px solid #000;border-radius:8px;padding:25px;">
          <p style="margin:0 0 10px;color:#666;font-size:13px;text-transform:uppercase;">Your Message:</p>
          <p style="margin:0;font-size:15px;font-style:italic;">"{{.Message}}"</p>
        </div>
        <p style="font-size:16px;line-height:1.6;">I'll personally review your inquiry and get back to you within <strong>24 hours</strong>.</p>
        <p><a href="{{.SiteURL}}" style="display:inline-block;padding:16px 40px;background:#000;color:#fff;text-decoration:none;border-radius:8px;">Visit Our Website</a></p>
        {{- if .CallbackTime}}
        <p style="margin:10px 0 0;padding:12px;background:#f8f9fa;border-radius:8px;color:#666;font-size:13px;">Preferred callback time: <strong style="color:#000;">{{.CallbackTime}}</strong></p>
        {{- end}}
      </td></tr>
      <tr><td style="background:#f8f9fa;padding:30px 40px;text-align:center;">
        <p style="margin:0 0 10px;font-size:14px;font-weight:600;">MakeYou Digital</p>
        <p style="margin:0 0 15px;color:#666;font-size:13px;">Affordable websites for Indian local businesses</p>
        <p style="margin:0;color:#999;font-size:12px;">&copy; {{.Year}} MakeYou Digital. All rights reserved.</p>
      </td></tr>
    </table>
  </body>
</html>
`))

var notificationText = texttemplate.Must(texttemplate.New("notification").Parse(
	`New contact form submission:

Name: {{.Name}}
Email: {{.Email}}
Phone: {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}
Preferred Callback Time: {{.Callback}}

Message:
{{.Message}}
`))

var notificationHTML = htmltemplate.Must(htmltemplate.New("notification").Parse(
	`<div style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;padding:20px;background:#f9f9f9;border-radius:10px;">
  <h2 style="margin-bottom:20px;">New Lead from Website</h2>
  <div style="background:#fff;padding:20px;border-radius:8px;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
    <p><strong>Preferred Callback Time:</strong> <span style="background:#fff3cd;padding:4px 8px;border-radius:4px;">{{.Callback}}</span></p>
    <hr style="margin:20px 0;border:none;border-top:1px solid #eee;">
    <p><strong>Message:</strong></p>
    <p style="background:#f8f9fa;padding:15px;border-left:4px solid #000;">{{.Message}}</p>
  </div>
</div>
`))

type template interface {
	Execute(w io.Writer, data any) error
}

func render(t template, data any) (string, error) {
	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderPair(text, html template, data any) (string, string, error) {
	t, err := render(text, data)
	if err != nil {
		return "", "", err
	}
	h, err := render(html, data)
	if err != nil {
		return "", "", err
	}
	return t, h, nil
}

func newContactView(s models.ContactSubmission, now time.Time) contactView {
	return contactView{ContactSubmission: s, Callback: s.CallbackOrDefault(), Year: now.Year(), SiteURL: siteURL}
}

// ContactConfirmation is the thank-you email sent to the visitor.
func ContactConfirmation(s models.ContactSubmission, now time.Time) (Email, error) {
	text, html, err := renderPair(confirmationText, confirmationHTML, newContactView(s, now))
	if err != nil {
		return Email{}, fmt.Errorf("render confirmation: %w", err)
	}
	return Email{
		FromName: brandSender,
		To:       s.Email,
		Subject:  "Thank you for contacting MakeYou Digital",
		Text:     text,
		HTML:     html,
	}, nil
}

// LeadNotification tells the site owner about a new submission.
func LeadNotification(s models.ContactSubmission, recipient string, now time.Time) (Email, error) {
	text, html, err := renderPair(notificationText, notificationHTML, newContactView(s, now))
	if err != nil {
		return Email{}, fmt.Errorf("render notification: %w", err)
	}
	return Email{
		FromName: botSender,
		To:       recipient,
		Subject:  "New Lead: " + s.Name,
		Text:     text,
		HTML:     html,
	}, nil
}
