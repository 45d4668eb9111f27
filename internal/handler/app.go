package handler

import (
	"net/http"
)

// helloPage is the built-in application. It keeps a fresh deployment
// serving something sensible before a real bundle is attached.
const helloPage = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>slipway</title>
</head>
<body>
  <h1>Hello from slipway</h1>
  <p>The runtime is up. Point it at an application bundle to replace this page.</p>
</body>
</html>
`

func (h *Handler) helloApp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(helloPage))
}
