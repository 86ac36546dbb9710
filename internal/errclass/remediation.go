package errclass

import (
	"context"
	"errors"
	"strings"
	"text/template"
)

var remediationTemplates = template.Must(template.New("remediation").Parse(`
{{- define "NETWORK_UNREACHABLE" -}}
Cannot reach {{.Server}}.
  - Check that this computer is connected to the network.
  - Check that the server address is spelled correctly.
  - If you use a VPN or proxy, make sure it is running.
  - Try again in a few minutes; the server may be restarting.
{{- end -}}
{{- define "TIMEOUT" -}}
{{.Server}} did not answer in time.
  - Your connection may be slow or unstable.
  - Large projects take longer to transfer; try again on a faster network.
  - If the problem persists, the server may be overloaded.
{{- end -}}
{{- define "INTERRUPTED" -}}
{{.Operation}} was interrupted.
{{- end -}}
{{- define "GENERIC" -}}
{{.Operation}} failed: {{.Detail}}
{{- end -}}
`))

type remediationData struct {
	Detail    string
	Operation string
	Server    string
}

// UserMessage renders the text shown to a user for err.
// AUTH and VALIDATION show the server's literal message; unreachable and
// timeout failures show a remediation checklist instead of the raw error.
// A canceled operation is reported as interrupted.
func UserMessage(err error, server string) string {
	if err == nil {
		return ""
	}
	if server == "" {
		server = "the server"
	}

	var classified *Error
	if !errors.As(err, &classified) {
		classified = FromError("", err)
	}

	switch classified.Kind {
	case KindAuth, KindValidation:
		if classified.Message != "" {
			return classified.Message
		}
		return err.Error()
	case KindNetworkUnreachable, KindTimeout:
		return render(string(classified.Kind), remediationData{Server: server})
	}

	op := classified.Op
	if op == "" {
		op = "Operation"
	}
	if errors.Is(err, context.Canceled) {
		return render("INTERRUPTED", remediationData{Operation: op, Server: server})
	}
	detail := classified.Message
	if detail == "" {
		detail = err.Error()
	}
	return render("GENERIC", remediationData{Operation: op, Detail: detail, Server: server})
}

func render(name string, data remediationData) string {
	var b strings.Builder
	if err := remediationTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return data.Detail
	}
	return b.String()
}
