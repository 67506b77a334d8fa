package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/wneessen/go-mail"
)

var (
	// ErrInvalidConfig reports an unusable mailer [Config].
	ErrInvalidConfig = errors.New("invalid mailer config")
	// ErrSendFailed reports that the SMTP relay rejected or failed a delivery.
	ErrSendFailed = errors.New("email send failed")
)

const (
	defaultSMTPPort = 587

	verifyPath = "/verify/"
	resetPath  = "/reset-password/"

	verificationSubject = "Verifikasi Email Geboy Mujair"
	resetSubject        = "Reset Password Geboy Mujair"
)

const verificationBodyTemplate = `<h2>Verifikasi Email Geboy Mujair</h2>
<p>Terima kasih telah mendaftar!</p>
<p>Klik link di bawah untuk melanjutkan pendaftaran:</p>
<p><a href="%s">Verifikasi Email</a></p>
<p>Link ini berlaku selama 1 jam.</p>
`

const resetBodyTemplate = `<h2>Reset Password Geboy Mujair</h2>
<p>Anda meminta reset password.</p>
<p>Klik link di bawah untuk membuat password baru:</p>
<p><a href="%s">Reset Password</a></p>
<p>Link ini berlaku selama 1 jam.</p>
<p>Jika Anda tidak meminta reset password, abaikan email ini.</p>
`

// Config holds SMTP relay settings and the public base URL that verification
// and reset links are built against.
type Config struct {
	// Host is the SMTP relay hostname.
	Host string
	// Port is the SMTP relay port. Zero selects 587.
	Port int
	// Username and Password authenticate against the relay. An empty
	// Username disables authentication.
	Username string
	Password string
	// From is the sender address on all outgoing mail.
	From string
	// BaseURL is the public origin links point back to, for example
	// "https://mujair.example.com". A trailing slash is ignored.
	BaseURL string
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("%w: host required", ErrInvalidConfig)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port out of range", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.From) == "" {
		return fmt.Errorf("%w: from address required", ErrInvalidConfig)
	}
	base, err := url.Parse(strings.TrimSpace(c.BaseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("%w: base URL must be absolute", ErrInvalidConfig)
	}
	return nil
}

// SMTP delivers verification and reset mail through an SMTP relay.
type SMTP struct {
	client  *mail.Client
	from    string
	baseURL string
}

// NewSMTP builds an [SMTP] mailer from cfg. The relay connection is
// established lazily on the first send.
func NewSMTP(cfg Config) (*SMTP, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	port := cfg.Port
	if port == 0 {
		port = defaultSMTPPort
	}

	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &SMTP{
		client:  client,
		from:    cfg.From,
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
	}, nil
}

// SendVerification mails the registration verification link for token to
// email.
func (m *SMTP) SendVerification(ctx context.Context, email, token string) error {
	body := fmt.Sprintf(verificationBodyTemplate, verificationLink(m.baseURL, token))
	return m.send(ctx, email, verificationSubject, body)
}

// SendPasswordReset mails the password reset link for token to email.
func (m *SMTP) SendPasswordReset(ctx context.Context, email, token string) error {
	body := fmt.Sprintf(resetBodyTemplate, resetLink(m.baseURL, token))
	return m.send(ctx, email, resetSubject, body)
}

func (m *SMTP) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("%w: sender %q: %v", ErrSendFailed, m.from, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: recipient %q: %v", ErrSendFailed, to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}

func verificationLink(baseURL, token string) string {
	return baseURL + verifyPath + url.PathEscape(token)
}

func resetLink(baseURL, token string) string {
	return baseURL + resetPath + url.PathEscape(token)
}
