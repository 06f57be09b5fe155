package workctx

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/prose/v3"
)

// Emails holds mail-related artifacts mined from an inbox screen
type Emails struct {
	Labels   []string `json:"labels,omitempty"`
	Contacts []string `json:"contacts,omitempty"`
}

// ContentDetails are the fine-grained artifacts mined from one observation's
// raw text. They enrich sessions but never influence session boundaries.
type ContentDetails struct {
	Keywords      []string `json:"keywords,omitempty"`
	Repos         []string `json:"repos,omitempty"`
	Documents     []string `json:"documents,omitempty"`
	Emails        Emails   `json:"emails,omitempty"`
	SearchQueries []string `json:"search_queries,omitempty"`
	Topics        []string `json:"topics,omitempty"`
	RawSnippets   []string `json:"raw_snippets,omitempty"`
}

// Empty reports whether nothing was mined
func (d ContentDetails) Empty() bool {
	return len(d.Keywords) == 0 && len(d.Repos) == 0 && len(d.Documents) == 0 &&
		len(d.Emails.Labels) == 0 && len(d.Emails.Contacts) == 0 &&
		len(d.SearchQueries) == 0 && len(d.Topics) == 0 && len(d.RawSnippets) == 0
}

// minContentTextLength skips mining entirely for very short captures
const minContentTextLength = 50

var (
	contentRepoRes = []*regexp.Regexp{
		regexp.MustCompile(`github\.com/([a-zA-Z0-9\-_]+/[a-zA-Z0-9\-_]+)`),
		regexp.MustCompile(`([a-zA-Z0-9\-_]+/[a-zA-Z0-9\-_]+)\s*[-–]\s*GitHub`),
	}
	issuePRRe      = regexp.MustCompile(`(?:Issue|PR|#)[\s#]*(\d{1,5})`)
	contentDocRes  = []*regexp.Regexp{
		regexp.MustCompile(`(?i)([^\s/\\]+\.(?:pdf|docx?|xlsx?|pptx?|md|txt))`),
		regexp.MustCompile(`(?i)([^\s/\\]+\.(?:py|js|ts|tsx|jsx|go|rs|java|rb|php))`),
	}
	searchQueryRes = []*regexp.Regexp{
		regexp.MustCompile(`google\.com/search\?q=([^&\s]+)`),
		regexp.MustCompile(`search\?q=([^&\s]+)`),
		regexp.MustCompile(`検索[:：]\s*([^\n]+)`),
	}
	mailLabelRe   = regexp.MustCompile(`(?i)(?:^|\s)(Amazon|GitHub|Qiita|Newsletter|Updates|Notifications)(?:\s|$)`)
	mailContactRe = regexp.MustCompile(`([A-Za-z]+(?: [A-Za-z]+)?)\s*<`)
	hashtagRe     = regexp.MustCompile(`#([a-zA-Z0-9\x{3040}-\x{309f}\x{30a0}-\x{30ff}\x{4e00}-\x{9fff}]+)`)
	qiitaTopicSkipRe = regexp.MustCompile(`https?://|\.com|^[<>＜＞]|ファイル|編集|表示`)
	twitterUISkipRe  = regexp.MustCompile(`ホーム|話題を検索|通知|チャット|もっと見る|プロフィール|ポストする|フォロー|リスト`)
	notebookAnyDocRe = regexp.MustCompile(`(?i)([^\n]+\.(?:pdf|md|docx?))`)
)

// techKeywords are always scanned for; hits surface in session keywords
var techKeywords = []string{
	"BigQuery", "Cloud Run", "Firebase", "OAuth", "API",
	"Python", "TypeScript", "React", "Next.js", "Claude", "GPT",
}

// proseEntityLabels are the prose NER labels worth surfacing as keywords
var proseEntityLabels = map[string]bool{
	"PERSON":  true,
	"ORG":     true,
	"GPE":     true,
	"PRODUCT": true,
}

// ExtractContentDetails mines the raw OCR text for concrete artifacts:
// repositories, issue numbers, filenames, search queries, mail labels,
// hashtags, article topics, and notable keywords.
func (e *Extractor) ExtractContentDetails(rawOCR string) ContentDetails {
	var d ContentDetails
	if utf8.RuneCountInString(rawOCR) < minContentTextLength {
		return d
	}

	rawLower := strings.ToLower(rawOCR)

	// GitHub repositories and issue/PR numbers
	for _, re := range contentRepoRes {
		for _, m := range re.FindAllStringSubmatch(rawOCR, -1) {
			if strings.Contains(m[1], "/") {
				d.Repos = appendUnique(d.Repos, m[1])
			}
		}
	}
	for i, m := range issuePRRe.FindAllStringSubmatch(rawOCR, -1) {
		if i >= 3 {
			break
		}
		d.Keywords = append(d.Keywords, "#"+m[1])
	}

	// Document and source file names
	for _, re := range contentDocRes {
		for _, m := range re.FindAllStringSubmatch(rawOCR, -1) {
			if utf8.RuneCountInString(m[1]) > 3 {
				d.Documents = appendUnique(d.Documents, m[1])
			}
		}
	}

	// Search queries
	for _, re := range searchQueryRes {
		for _, m := range re.FindAllStringSubmatch(rawOCR, -1) {
			query := strings.NewReplacer("+", " ", "%20", " ").Replace(m[1])
			query = truncRunes(query, 50)
			if query != "" {
				d.SearchQueries = appendUnique(d.SearchQueries, query)
			}
		}
	}

	// Mail labels and contacts
	if strings.Contains(rawLower, "mail.google") || strings.Contains(rawOCR, "受信トレイ") {
		for _, m := range mailLabelRe.FindAllStringSubmatch(rawOCR, -1) {
			d.Emails.Labels = appendUnique(d.Emails.Labels, m[1])
		}
		for _, m := range mailContactRe.FindAllStringSubmatch(rawOCR, -1) {
			if len(d.Emails.Contacts) >= 3 {
				break
			}
			d.Emails.Contacts = appendUnique(d.Emails.Contacts, m[1])
		}
	}

	// Qiita article title
	if strings.Contains(rawLower, "qiita.com") {
		for _, line := range strings.Split(rawOCR, "\n") {
			line = strings.TrimSpace(line)
			if utf8.RuneCountInString(line) >= 15 && hasJapanese(line) && !qiitaTopicSkipRe.MatchString(line) {
				d.Topics = append(d.Topics, truncRunes(line, 60))
				break
			}
		}
	}

	// X/Twitter hashtags and post snippets
	if strings.Contains(rawLower, "x.com") || strings.Contains(rawLower, "twitter") {
		for i, m := range hashtagRe.FindAllStringSubmatch(rawOCR, -1) {
			if i >= 5 {
				break
			}
			d.Keywords = append(d.Keywords, "#"+m[1])
		}
		for _, line := range strings.Split(rawOCR, "\n") {
			line = strings.TrimSpace(line)
			if utf8.RuneCountInString(line) >= 20 && hasJapanese(line) && !twitterUISkipRe.MatchString(line) {
				d.RawSnippets = append(d.RawSnippets, truncRunes(line, 80))
				if len(d.RawSnippets) >= 2 {
					break
				}
			}
		}
	}

	// NotebookLM source document
	if strings.Contains(rawLower, "notebooklm") {
		if m := notebookAnyDocRe.FindStringSubmatch(rawOCR); m != nil {
			d.Documents = append(d.Documents, truncRunes(m[1], 50))
		}
		if strings.Contains(rawLower, "deep research") {
			d.Keywords = append(d.Keywords, "Deep Research")
		}
	}

	// Configured project names and well-known tech keywords
	for _, kw := range e.projects {
		if strings.Contains(rawLower, strings.ToLower(kw)) {
			d.Keywords = appendUniqueFold(d.Keywords, kw)
		}
	}
	for _, kw := range techKeywords {
		if strings.Contains(rawLower, strings.ToLower(kw)) {
			d.Keywords = appendUnique(d.Keywords, kw)
		}
	}

	// NER pass: named entities the pattern battery has no rule for
	d.Keywords = append(d.Keywords, extractEntities(rawOCR)...)

	d.Keywords = dedupCap(d.Keywords, 10)
	d.Repos = dedupCap(d.Repos, 5)
	d.Documents = dedupCap(d.Documents, 5)
	d.Topics = dedupCap(d.Topics, 3)
	d.RawSnippets = dedupCap(d.RawSnippets, 3)
	return d
}

// maxNERRunes bounds the NER pass on large dumps
const maxNERRunes = 1000

// extractEntities runs prose NER over the leading text and returns entity
// names for person/org/place/product mentions.
func extractEntities(text string) []string {
	doc, err := prose.NewDocument(truncRunes(text, maxNERRunes))
	if err != nil {
		return nil
	}
	var names []string
	for _, ent := range doc.Entities() {
		if proseEntityLabels[strings.ToUpper(ent.Label)] {
			names = append(names, ent.Text)
		}
	}
	return names
}

// appendUnique appends item if not already present
func appendUnique(list []string, item string) []string {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

// appendUniqueFold appends item if not already present, case-insensitively
func appendUniqueFold(list []string, item string) []string {
	for _, existing := range list {
		if strings.EqualFold(existing, item) {
			return list
		}
	}
	return append(list, item)
}

// dedupCap removes duplicates preserving first-seen order and caps the length
func dedupCap(list []string, max int) []string {
	seen := make(map[string]bool, len(list))
	var out []string
	for _, item := range list {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
		if len(out) >= max {
			break
		}
	}
	return out
}
