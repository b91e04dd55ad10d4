package scheduler

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/plataforma-367/traffic-case-api/databases"
	"github.com/plataforma-367/traffic-case-api/models"
)

// Scheduler handles periodic background jobs for the review queue
type Scheduler struct {
	cron   *cron.Cron
	CaseDB databases.CaseDatabase
}

// NewScheduler creates a new scheduler instance
func NewScheduler(caseDB databases.CaseDatabase) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(time.UTC)),
		CaseDB: caseDB,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Send the overdue review digest daily at 6 AM UTC
	_, err := s.cron.AddFunc("0 6 * * *", s.sendOverdueDigest)
	if err != nil {
		zap.S().Errorw("failed to register overdue digest job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Review queue scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Review queue scheduler stopped")
}

// sendOverdueDigest emails the review team a summary of every pending case
// that has passed its due date. Cases are only reported, never mutated; the
// overdue state stays derived from the due date.
func (s *Scheduler) sendOverdueDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	overdue, err := s.CaseDB.FindPendingPastDue(ctx, time.Now().UTC())
	if err != nil {
		zap.S().Errorw("failed to find overdue cases", "error", err)
		return
	}
	if len(overdue) == 0 {
		zap.S().Debug("No overdue cases, skipping digest")
		return
	}

	recipient := os.Getenv("OVERDUE_DIGEST_EMAIL")
	if recipient == "" {
		zap.S().Warnw("OVERDUE_DIGEST_EMAIL not set, skipping digest",
			"overdue_count", len(overdue))
		return
	}

	subject := fmt.Sprintf("%d cases are overdue for review", len(overdue))
	if err := s.sendEmail(recipient, "Review Team", subject, digestHTML(overdue), digestPlainText(overdue)); err != nil {
		zap.S().Errorw("failed to send overdue digest", "error", err)
		return
	}
	zap.S().Infow("Sent overdue digest", "overdue_count", len(overdue), "recipient", recipient)
}

func digestPlainText(cases []models.Case) string {
	var b strings.Builder
	b.WriteString("Pending cases past their review due date:\n\n")
	for _, c := range cases {
		fmt.Fprintf(&b, "%s  %s  submitted %s  due %s\n",
			c.CaseNumber, c.Title,
			c.SubmittedAt.Format("2006-01-02"),
			c.DueDate.Format("2006-01-02"))
	}
	return b.String()
}

func digestHTML(cases []models.Case) string {
	var b strings.Builder
	b.WriteString("<h2>Pending cases past their review due date</h2><ul>")
	for _, c := range cases {
		fmt.Fprintf(&b, "<li><strong>%s</strong> %s (due %s)</li>",
			c.CaseNumber, c.Title, c.DueDate.Format("2006-01-02"))
	}
	b.WriteString("</ul>")
	return b.String()
}

func (s *Scheduler) sendEmail(toEmail, toName, subject, htmlContent, plainText string) error {
	from := mail.NewEmail("Plataforma 367", "no-reply@plataforma367.do")
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}
