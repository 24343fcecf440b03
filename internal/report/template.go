package report

// documentTemplate is the HTML shell for the multi-page report.
// Embedded as a Go constant, no external file dependencies. Each page
// renders as one print-paginated section in fixed order.
const documentTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>{{.Title}}</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: #1a1a2e;
    background: #ffffff;
    line-height: 1.5;
    max-width: 900px;
    margin: 0 auto;
    padding: 20px;
  }
  .header {
    border-bottom: 3px solid #2563eb;
    padding-bottom: 10px;
    margin-bottom: 18px;
  }
  .header h1 { color: #2563eb; font-size: 1.4rem; }
  .muted { color: #6b7280; font-size: 0.85rem; }
  .page {
    page-break-after: always;
    padding: 12px 0;
  }
  .page:last-child { page-break-after: auto; }
  .page h2 {
    font-size: 1.1rem;
    margin-bottom: 10px;
    padding-bottom: 5px;
    border-bottom: 2px solid #2563eb;
  }
  .page .caption {
    color: #6b7280;
    font-size: 0.8rem;
    margin-top: 6px;
  }
  svg { max-width: 100%; height: auto; }
</style>
</head>
<body>
<div class="header">
  <h1>{{.Title}}</h1>
  <p class="muted">{{.Subtitle}} &middot; generated {{.GeneratedAt}}</p>
</div>
{{range .Pages}}
<div class="page">
  <h2>{{.Title}}</h2>
  {{.SVG}}
  {{if .Extra}}{{.Extra}}{{end}}
  {{if .Caption}}<p class="caption">{{.Caption}}</p>{{end}}
</div>
{{end}}
</body>
</html>`
