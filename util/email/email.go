package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/yatrasetgo/packyourbags/util"
)

//go:embed templates
var templateFS embed.FS

type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// render executes the named template's "subject" and "htmlBody" blocks with
// util.TemplateFuncs in scope.
func render(templateFile string, data map[string]interface{}) (string, string, error) {
	tmpl, err := template.New(templateFile).Funcs(util.TemplateFuncs).ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return "", "", fmt.Errorf("parsing email template %s: %w", templateFile, err)
	}

	subject := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subject, "subject", data); err != nil {
		return "", "", fmt.Errorf("rendering subject: %w", err)
	}

	body := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(body, "htmlBody", data); err != nil {
		return "", "", fmt.Errorf("rendering body: %w", err)
	}

	return subject.String(), body.String(), nil
}

// Send renders the named template with data and mails it.
func (m *Mailer) Send(to string, data map[string]interface{}, templateFile string) error {
	subject, body, err := render(templateFile, data)
	if err != nil {
		return err
	}

	msg := new(bytes.Buffer)
	fmt.Fprintf(msg, "From: %s\r\n", m.from)
	fmt.Fprintf(msg, "To: %s\r\n", to)
	fmt.Fprintf(msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	return smtp.SendMail(addr, auth, m.from, []string{to}, msg.Bytes())
}
