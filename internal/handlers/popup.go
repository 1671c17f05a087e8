package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"

	"storefront-bff/internal/middlewares"
	"storefront-bff/internal/models"
)

// popupTemplate posts the auth result to the window that opened the
// popup and then closes it. The target origin is pinned to the app URL
// so no other page can read the message.
var popupTemplate = template.Must(template.New("popup").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Authentication</title></head>
<body>
<script>
  (function () {
    var message = {{.Message}};
    if (window.opener) {
      window.opener.postMessage(message, {{.TargetOrigin}});
    }
    window.close();
  })();
</script>
<p>You can close this window.</p>
</body>
</html>
`))

type popupData struct {
	Message      models.PopupMessage
	TargetOrigin string
}

// appOrigin reduces the configured app URL to its origin.
func appOrigin(appURL string) string {
	parsed, err := url.Parse(appURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return appURL
	}
	return parsed.Scheme + "://" + parsed.Host
}

func writePopup(ctx *middlewares.AppContext, msg models.PopupMessage) {
	var buf bytes.Buffer

	data := popupData{
		Message:      msg,
		TargetOrigin: appOrigin(ctx.Config.CustomerAuth.AppURL),
	}

	if err := popupTemplate.Execute(&buf, data); err != nil {
		ctx.Logger.Error("failed to render popup page", "error", err)
		ctx.SetJSONError(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	ctx.WriteHTML(http.StatusOK, buf.Bytes())
}
