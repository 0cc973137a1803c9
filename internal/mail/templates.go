package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

var (
	verifyHTML = template.Must(template.New("verify").Parse(
		`<p>Welcome{{if .Name}} {{.Name}}{{end}},</p>
<p>Please confirm your address by following <a href="{{.Link}}">this link</a>.</p>
<p>The link stays valid for {{.Valid}}.</p>`))

	resetHTML = template.Must(template.New("reset").Parse(
		`<p>Hello{{if .Name}} {{.Name}}{{end}},</p>
<p>A password reset was requested for your account. <a href="{{.Link}}">Choose a new password</a>.</p>
<p>The link stays valid for {{.Valid}}. Ignore this mail if you did not ask for it.</p>`))
)

// LinkData fills a link template.
type LinkData struct {
	Name  string
	Link  string
	Valid string
}

// VerifyMessage builds the account verification mail.
func VerifyMessage(to string, data LinkData) (Message, error) {
	return render(to, "Confirm your account", verifyHTML, data,
		fmt.Sprintf("Confirm your account: %s (valid for %s)", data.Link, data.Valid))
}

// ResetMessage builds the password reset mail.
func ResetMessage(to string, data LinkData) (Message, error) {
	return render(to, "Reset your password", resetHTML, data,
		fmt.Sprintf("Reset your password: %s (valid for %s)", data.Link, data.Valid))
}

func render(to, subject string, tpl *template.Template, data LinkData, text string) (Message, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", tpl.Name(), err)
	}
	return Message{To: to, Subject: subject, Text: text, HTML: buf.String()}, nil
}
