package mailer

import (
	"fmt"

	"sistem-pengajuan/config"

	"gopkg.in/gomail.v2"
)

// Sender dipisah jadi interface supaya handler bisa dites tanpa SMTP.
type Sender interface {
	SendInvite(to, fullName, role, tempPassword string) error
}

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg config.AppConfig) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}
}

// SendInvite mengirim email undangan berisi password sementara.
func (m *Mailer) SendInvite(to, fullName, role, tempPassword string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Undangan Akun Sistem Pengajuan")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Halo %s,</p>"+
			"<p>Anda diundang sebagai <b>%s</b> di Sistem Pengajuan kantor.</p>"+
			"<p>Silakan login dengan email ini dan password sementara: <b>%s</b></p>"+
			"<p>Segera ganti password setelah login pertama.</p>",
		fullName, role, tempPassword))

	return m.dialer.DialAndSend(msg)
}
