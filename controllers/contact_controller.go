package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"makeyou-digital/backend/models"
	"makeyou-digital/backend/utils"
)

// ContactDeps wires the optional collaborators of the contact pipeline. A nil
// Sheet or Mailer means that side effect is not configured.
type ContactDeps struct {
	Sheet          utils.RowAppender
	Mailer         utils.Mailer
	AdminRecipient string
	Location       *time.Location
	SheetTimeout   time.Duration
	MailTimeout    time.Duration
	Logger         *zap.Logger
	Now            func() time.Time
}

func (d ContactDeps) withDefaults() ContactDeps {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Location == nil {
		d.Location = time.UTC
	}
	if d.SheetTimeout <= 0 {
		d.SheetTimeout = 10 * time.Second
	}
	if d.MailTimeout <= 0 {
		d.MailTimeout = 15 * time.Second
	}
	return d
}

// ContactSubmit validates a contact form submission, then appends it to the
// spreadsheet and sends the two emails. Only validation decides the outcome.
func ContactSubmit(deps ContactDeps) gin.HandlerFunc {
	RegisterValidators()
	d := deps.withDefaults()
	return func(c *gin.Context) {
		var sub models.ContactSubmission
		if err := c.ShouldBindJSON(&sub); err != nil {
			if isSchemaError(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
				return
			}
			d.Logger.Error("contact_handler_failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			return
		}

		d.deliver(sub)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// deliver runs both side effects concurrently and waits for them. Their
// contexts are detached from the request so a dropped client cannot cut a
// send short.
func (d ContactDeps) deliver(sub models.ContactSubmission) {
	at := d.Now()
	var g errgroup.Group
	g.Go(func() error {
		d.isolate("sheet", func() { d.appendToSheet(sub, at) })
		return nil
	})
	g.Go(func() error {
		d.isolate("mail", func() { d.sendEmails(sub, at) })
		return nil
	})
	_ = g.Wait()
}

func (d ContactDeps) isolate(step string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.Logger.Error("contact_step_panicked", zap.String("step", step), zap.Any("panic", r))
		}
	}()
	fn()
}

func (d ContactDeps) appendToSheet(sub models.ContactSubmission, at time.Time) {
	if d.Sheet == nil {
		d.Logger.Warn("contact_sheet_skipped", zap.String("reason", "sheets credentials missing"))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), d.SheetTimeout)
	defer cancel()
	if err := d.Sheet.AppendRow(ctx, utils.ContactRow(sub, at, d.Location)); err != nil {
		d.Logger.Warn("contact_sheet_append_failed", zap.Error(err), zap.String("email", sub.Email))
		return
	}
	d.Logger.Info("contact_sheet_appended")
}

func (d ContactDeps) sendEmails(sub models.ContactSubmission, at time.Time) {
	if d.Mailer == nil {
		d.Logger.Warn("contact_mail_skipped", zap.String("reason", "smtp credentials missing"))
		return
	}
	emails, err := contactEmails(sub, d.AdminRecipient, at)
	if err != nil {
		d.Logger.Warn("contact_mail_render_failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), d.MailTimeout)
	defer cancel()
	if err := d.Mailer.Send(ctx, emails...); err != nil {
		d.Logger.Warn("contact_mail_failed", zap.Error(err), zap.String("email", sub.Email))
		return
	}
	d.Logger.Info("contact_mail_sent", zap.Int("count", len(emails)))
}

func contactEmails(sub models.ContactSubmission, recipient string, at time.Time) ([]utils.Email, error) {
	confirmation, err := utils.ContactConfirmation(sub, at)
	if err != nil {
		return nil, err
	}
	if recipient == "" {
		return []utils.Email{confirmation}, nil
	}
	notification, err := utils.LeadNotification(sub, recipient, at)
	if err != nil {
		return nil, err
	}
	return []utils.Email{confirmation, notification}, nil
}
