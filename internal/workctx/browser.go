package workctx

import (
	"regexp"
	"strings"

	"github.com/hirose30/screen-logger/internal/textnorm"
)

var (
	fullURLRe = regexp.MustCompile(`https?://[a-zA-Z0-9\-.]+[^\s\n]*`)
	domainRe  = regexp.MustCompile(`[a-zA-Z0-9\-]+\.(?:com|co\.jp|io|org|dev|ai|app|net)`)
	repoRe    = regexp.MustCompile(`github\.com/([a-zA-Z0-9\-_]+/[a-zA-Z0-9\-_]+)`)
)

// bareBrowserTitles are window titles that name the browser itself rather
// than a page.
var bareBrowserTitles = map[string]bool{
	"Google Chrome": true,
	"Arc":           true,
	"Safari":        true,
	"Firefox":       true,
}

// extractBrowser fills the context for a browser observation. URL and domain
// detection runs on the raw text because noise removal can eat URLs; service
// detection gets both raw and cleaned text.
func (e *Extractor) extractBrowser(rawOCR, window string, ctx *Context) {
	if url := fullURLRe.FindString(rawOCR); url != "" {
		ctx.URLDomain = truncRunes(url, 100)
	}
	detectedDomain := domainRe.FindString(rawOCR)

	if title := windowTitle(window); title != "" {
		title = truncRunes(title, 50)
		if !bareBrowserTitles[title] {
			ctx.PageTitle = title
		}
	}

	detectServices(rawOCR, ctx)

	// OCR came back empty: fall back to the window title and flag the miss
	// so the segmenter can lean on the previous session's context.
	if ctx.Description == "" && strings.TrimSpace(rawOCR) == "" {
		if ctx.PageTitle != "" {
			ctx.Description = "browsing: " + ctx.PageTitle
		}
		ctx.OCRFailed = true
	}

	if ctx.Description == "" && detectedDomain != "" {
		describeDomain(detectedDomain, textnorm.Clean(rawOCR), ctx)
	}
}

// describeDomain supplies a description from the detected domain when no
// known service matched.
func describeDomain(domain, cleaned string, ctx *Context) {
	switch {
	case strings.Contains(domain, "github.com"):
		ctx.Description = "GitHub"
		if m := repoRe.FindStringSubmatch(cleaned); m != nil {
			ctx.Project = m[1]
			ctx.Description = "GitHub: " + m[1]
		}
	case strings.Contains(domain, "stackoverflow.com"):
		ctx.Description = "Stack Overflow research"
	case strings.Contains(domain, "google.com") || strings.Contains(domain, "google.co.jp"):
		if ctx.PageTitle != "" {
			ctx.Description = "Google search: " + truncRunes(ctx.PageTitle, 30)
		} else {
			ctx.Description = "Google search"
		}
	case strings.Contains(domain, "notion.so"):
		ctx.Description = "Notion"
	case strings.Contains(domain, "slack.com"):
		ctx.Description = "Slack (Web)"
	case strings.Contains(domain, "claude.ai"):
		ctx.Description = "Claude chat"
	case strings.Contains(domain, "docs.google.com"):
		if ctx.PageTitle != "" {
			ctx.Description = "Google Docs: " + truncRunes(ctx.PageTitle, 25)
		} else {
			ctx.Description = "Google Docs"
		}
	case strings.Contains(domain, "calendar.google.com"):
		ctx.Description = "Google Calendar"
	case strings.Contains(domain, "anthropic.com"):
		ctx.Description = "Anthropic docs"
	case strings.Contains(domain, "openai.com"):
		ctx.Description = "OpenAI docs"
	default:
		if ctx.PageTitle != "" {
			ctx.Description = truncRunes(ctx.PageTitle, 40)
		} else {
			ctx.Description = domain
		}
	}
}
