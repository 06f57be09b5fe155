package workctx

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hirose30/screen-logger/internal/textnorm"
)

// maxDetectedServices caps how many services one screen may contribute to
// the description (multiple browser tabs are often visible at once).
const maxDetectedServices = 3

var (
	notebookDocRes = []*regexp.Regexp{
		regexp.MustCompile(`[^\n]+\.md`),
		regexp.MustCompile(`[^\n]+\.pdf`),
	}
	slackChannelRe   = regexp.MustCompile(`#([a-zA-Z0-9\-_]+)`)
	qiitaSkipRe      = regexp.MustCompile(`https?://|\.com|^[<>]`)
	genericDomainRe  = regexp.MustCompile(`(?:https?://)?([a-zA-Z0-9\-]+(?:\.[a-zA-Z0-9\-]+)+)`)
	knownTLDs        = []string{".com", ".co.jp", ".io", ".org", ".dev", ".ai", ".app", ".net", ".jp"}
	noiseDomains     = []string{"google.com", "gstatic.com", "googleapis.com", "cloudflare.com"}
	minContentLength = 30
)

// serviceRule is one entry of the service detector table. match decides on
// the lowercased raw text and the cleaned text; refine may record project or
// document on the context and return a more specific display name.
type serviceRule struct {
	name   string
	match  func(rawLower, cleaned string) bool
	refine func(raw, cleaned string, ctx *Context) string
}

// serviceRules run in priority order; every matching rule contributes, up to
// maxDetectedServices.
var serviceRules = []serviceRule{
	{
		name:  "NotebookLM",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "notebooklm") },
		refine: func(_, cleaned string, ctx *Context) string {
			name := "NotebookLM"
			for _, re := range notebookDocRes {
				doc := strings.TrimSpace(re.FindString(cleaned))
				doc = truncRunes(doc, 40)
				if utf8.RuneCountInString(doc) > 3 {
					ctx.Document = doc
					name = "NotebookLM: " + truncRunes(doc, 30)
					break
				}
			}
			if strings.Contains(cleaned, "Deep Research") {
				name = "NotebookLM Deep Research"
			}
			return name
		},
	},
	{
		name: "Gmail",
		match: func(rawLower, cleaned string) bool {
			return strings.Contains(rawLower, "mail.google") || strings.Contains(cleaned, "受信トレイ")
		},
		refine: func(_, cleaned string, _ *Context) string {
			if strings.Contains(cleaned, "受信トレイ") {
				return "Gmail: inbox"
			}
			if strings.Contains(cleaned, "下書き") {
				return "Gmail: compose"
			}
			return "Gmail"
		},
	},
	{
		name: "Google Calendar",
		match: func(rawLower, cleaned string) bool {
			return strings.Contains(rawLower, "calendar.google") || strings.Contains(cleaned, "Googleカレンダー")
		},
	},
	{
		name: "Google Drive",
		match: func(rawLower, cleaned string) bool {
			return strings.Contains(rawLower, "drive.google") || strings.Contains(cleaned, "マイドライブ")
		},
	},
	{
		name:  "Google Docs",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "docs.google") },
	},
	{
		name: "Google Sheets",
		match: func(rawLower, cleaned string) bool {
			return strings.Contains(rawLower, "sheets.google") || strings.Contains(cleaned, "スプレッドシート")
		},
	},
	{
		name:  "GitHub",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "github.com") },
		refine: func(raw, cleaned string, ctx *Context) string {
			name := "GitHub"
			if m := repoRe.FindStringSubmatch(raw); m != nil {
				ctx.Project = m[1]
				name = "GitHub: " + m[1]
			}
			rawLower := strings.ToLower(raw)
			if strings.Contains(cleaned, "Pull Request") || strings.Contains(rawLower, "pull/") {
				name = "GitHub PR: " + ctx.Project
			} else if strings.Contains(cleaned, "Issue") || strings.Contains(rawLower, "issues/") {
				name = "GitHub Issue: " + ctx.Project
			}
			return name
		},
	},
	{
		name: "Slack (Web)",
		match: func(rawLower, _ string) bool {
			return strings.Contains(rawLower, "slack.com") || strings.Contains(rawLower, "app.slack")
		},
		refine: func(_, cleaned string, _ *Context) string {
			if m := slackChannelRe.FindStringSubmatch(cleaned); m != nil {
				return "Slack: #" + m[1]
			}
			return "Slack (Web)"
		},
	},
	{
		name:  "Claude",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "claude.ai") },
	},
	{
		name: "X (Twitter)",
		match: func(rawLower, _ string) bool {
			return strings.Contains(rawLower, "x.com") || strings.Contains(rawLower, "twitter.com")
		},
	},
	{
		name: "YouTube",
		match: func(rawLower, _ string) bool {
			return strings.Contains(rawLower, "youtube.com") || strings.Contains(rawLower, "youtu.be")
		},
	},
	{
		name:  "Notion",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "notion.so") },
	},
	{
		name:  "Qiita",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "qiita.com") },
		refine: func(_, cleaned string, _ *Context) string {
			// Prefer the article title: the first contentful Japanese line
			for _, line := range strings.Split(cleaned, "\n") {
				line = strings.TrimSpace(line)
				if utf8.RuneCountInString(line) >= 10 && hasJapanese(line) && !qiitaSkipRe.MatchString(line) {
					return "Qiita: " + truncRunes(line, 35)
				}
			}
			return "Qiita"
		},
	},
	{
		name: "Confluence",
		match: func(rawLower, _ string) bool {
			return strings.Contains(rawLower, "confluence") || strings.Contains(rawLower, "atlassian.net")
		},
	},
	{
		name:  "JIRA",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "jira") },
	},
	{
		name: "AWS Console",
		match: func(rawLower, _ string) bool {
			return strings.Contains(rawLower, "aws.amazon.com") || strings.Contains(rawLower, "console.aws")
		},
	},
	{
		name:  "GCP Console",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "console.cloud.google") },
	},
	{
		name:  "Anthropic Console",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "console.anthropic") },
	},
	{
		name: "OpenAI",
		match: func(rawLower, _ string) bool {
			return strings.Contains(rawLower, "platform.openai") || strings.Contains(rawLower, "openai.com")
		},
	},
	{
		name:  "Figma",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "figma.com") },
	},
	{
		name:  "Vercel",
		match: func(rawLower, _ string) bool { return strings.Contains(rawLower, "vercel.com") },
	},
}

// detectServices scans the raw text for known services and joins the
// detected names into the context description. When nothing matches it
// falls back to a generic domain, then to the longest contentful line.
func detectServices(raw string, ctx *Context) {
	rawLower := strings.ToLower(raw)
	cleaned := textnorm.Clean(raw)

	var detected []string
	seen := make(map[string]bool)
	for _, rule := range serviceRules {
		if !rule.match(rawLower, cleaned) {
			continue
		}
		name := rule.name
		if rule.refine != nil {
			name = rule.refine(raw, cleaned, ctx)
		}
		if !seen[name] {
			seen[name] = true
			detected = append(detected, name)
		}
		if len(detected) >= maxDetectedServices {
			break
		}
	}

	if len(detected) > 0 {
		ctx.Description = strings.Join(detected, ", ")
		return
	}

	// Fallback: a domain-looking token anywhere in the raw text
	if m := genericDomainRe.FindStringSubmatch(raw); m != nil {
		domain := m[1]
		if hasKnownTLD(domain) && !isNoiseDomain(domain) {
			ctx.Description = "Web: " + domain
			return
		}
	}

	// Fallback: the longest contentful line
	var longest string
	for _, line := range strings.Split(cleaned, "\n") {
		if utf8.RuneCountInString(line) > minContentLength && len(line) > len(longest) {
			longest = line
		}
	}
	if longest != "" {
		ctx.Description = "viewing: " + truncRunes(longest, 60)
	}
}

func hasKnownTLD(domain string) bool {
	for _, tld := range knownTLDs {
		if strings.Contains(domain, tld) {
			return true
		}
	}
	return false
}

func isNoiseDomain(domain string) bool {
	for _, noise := range noiseDomains {
		if strings.Contains(domain, noise) {
			return true
		}
	}
	return false
}
