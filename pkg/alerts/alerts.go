package alerts

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../mocks/mock_alerts.go -package=pkgmocks github.com/mailfleet/mailfleet/pkg/alerts Mailer

// Mailer is the interface for sending operator alerts about delivery health
type Mailer interface {
	// SendCircuitBreakerAlert notifies the operator that an account's circuit
	// breaker opened and sending through it is paused until openUntil
	SendCircuitBreakerAlert(accountName string, accountID int64, failures int, openUntil time.Time) error
	// SendInterruptedCampaignsAlert reports campaigns found mid-flight after a
	// restart, with the progress counters they were interrupted at
	SendInterruptedCampaignsAlert(campaigns []InterruptedCampaign) error
}

// InterruptedCampaign describes a campaign that was still in the sending
// state when the process started.
type InterruptedCampaign struct {
	ID         int64
	Name       string
	Successful int
	Failed     int
	Queued     int
	Total      int
}

// Config holds the configuration for the alert mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	AdminEmail   string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP alert mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP alert mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// SendCircuitBreakerAlert notifies the operator that an account's circuit breaker opened
func (m *SMTPMailer) SendCircuitBreakerAlert(accountName string, accountID int64, failures int, openUntil time.Time) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(m.config.AdminEmail); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	subject := fmt.Sprintf("🚨 Sender Account Paused - %s", accountName)
	msg.Subject(subject)

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1 style="color: #d32f2f;">🚨 Sender Account Automatically Paused</h1>
			<p>Hello,</p>
			<p>The sender account <strong>%s</strong> (id %d) reached %d consecutive delivery
			failures and its circuit breaker has opened.</p>

			<div style="background-color: #fff3cd; border: 1px solid #ffeaa7; padding: 15px; border-radius: 5px; margin: 20px 0;">
				<p style="margin-bottom: 0; color: #856404;">Sending through this account resumes automatically after
				<strong>%s</strong>. Campaigns keep running on the remaining accounts.</p>
			</div>

			<p>Check the provider credentials and its dashboard if failures persist.</p>
		</body>
	</html>`, accountName, accountID, failures, openUntil.UTC().Format(time.RFC1123))

	plainBody := fmt.Sprintf(
		"SENDER ACCOUNT AUTOMATICALLY PAUSED\n\n"+
			"The sender account %q (id %d) reached %d consecutive delivery failures\n"+
			"and its circuit breaker has opened.\n\n"+
			"Sending through this account resumes automatically after %s.\n"+
			"Campaigns keep running on the remaining accounts.\n\n"+
			"Check the provider credentials and its dashboard if failures persist.\n",
		accountName, accountID, failures, openUntil.UTC().Format(time.RFC1123))

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// For testing - log information if client is nil
	if client == nil {
		log.Printf("Sending circuit breaker alert to: %s", m.config.AdminEmail)
		log.Printf("Subject: %s", subject)
		log.Printf("Account: %s (id %d), failures: %d, open until: %s", accountName, accountID, failures, openUntil)
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send circuit breaker alert email: %w", err)
	}

	return nil
}

// SendInterruptedCampaignsAlert reports campaigns found mid-flight after a restart
func (m *SMTPMailer) SendInterruptedCampaignsAlert(campaigns []InterruptedCampaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(m.config.AdminEmail); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	subject := fmt.Sprintf("⚠️ %d campaign(s) interrupted by restart", len(campaigns))
	msg.Subject(subject)

	var htmlRows strings.Builder
	var plainRows strings.Builder
	for _, c := range campaigns {
		htmlRows.WriteString(fmt.Sprintf(
			"<tr><td>%d</td><td>%s</td><td>%d / %d sent, %d failed, %d queued</td></tr>\n",
			c.ID, c.Name, c.Successful, c.Total, c.Failed, c.Queued))
		plainRows.WriteString(fmt.Sprintf(
			"- campaign %d %q: %d / %d sent, %d failed, %d queued\n",
			c.ID, c.Name, c.Successful, c.Total, c.Failed, c.Queued))
	}

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1 style="color: #856404;">⚠️ Campaigns Interrupted</h1>
			<p>Hello,</p>
			<p>The engine restarted while the following campaigns were still sending.
			They were NOT resumed automatically; review and re-send the remainder manually.</p>

			<table border="1" cellpadding="6" cellspacing="0">
				<tr><th>ID</th><th>Name</th><th>Progress at interruption</th></tr>
				%s
			</table>
		</body>
	</html>`, htmlRows.String())

	plainBody := fmt.Sprintf(
		"CAMPAIGNS INTERRUPTED BY RESTART\n\n"+
			"The engine restarted while the following campaigns were still sending.\n"+
			"They were NOT resumed automatically; review and re-send the remainder manually.\n\n%s",
		plainRows.String())

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// For testing - log information if client is nil
	if client == nil {
		log.Printf("Sending interrupted campaigns alert to: %s", m.config.AdminEmail)
		log.Printf("Subject: %s", subject)
		log.Printf("Campaigns:\n%s", plainRows.String())
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send interrupted campaigns alert email: %w", err)
	}

	return nil
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	// In test mode, return nil client to avoid SMTP connections
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Only add authentication if username and password are provided
	// This allows for unauthenticated SMTP servers (e.g., local relays, port 25)
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer is a development implementation that just logs alerts
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// SendCircuitBreakerAlert logs the circuit breaker alert details to console
func (m *ConsoleMailer) SendCircuitBreakerAlert(accountName string, accountID int64, failures int, openUntil time.Time) error {
	fmt.Println("==============================================================")
	fmt.Println("                  CIRCUIT BREAKER ALERT                       ")
	fmt.Println("==============================================================")
	fmt.Printf("Account: %s (id %d)\n", accountName, accountID)
	fmt.Printf("Consecutive failures: %d\n", failures)
	fmt.Printf("Paused until: %s\n", openUntil.UTC().Format(time.RFC1123))
	fmt.Println("==============================================================")

	return nil
}

// SendInterruptedCampaignsAlert logs the interrupted campaigns to console
func (m *ConsoleMailer) SendInterruptedCampaignsAlert(campaigns []InterruptedCampaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	fmt.Println("==============================================================")
	fmt.Println("              CAMPAIGNS INTERRUPTED BY RESTART                ")
	fmt.Println("==============================================================")
	for _, c := range campaigns {
		fmt.Printf("- campaign %d %q: %d / %d sent, %d failed, %d queued\n",
			c.ID, c.Name, c.Successful, c.Total, c.Failed, c.Queued)
	}
	fmt.Println("==============================================================")

	return nil
}
