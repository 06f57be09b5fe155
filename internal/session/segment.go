package session

import (
	"time"

	"github.com/hirose30/screen-logger/internal/classify"
	"github.com/hirose30/screen-logger/internal/workctx"
)

// MaxSessionMinutes caps session length; one key held longer than this is
// split so a single never-ending "session" cannot dominate the report.
const MaxSessionMinutes = 30

// appDefaults supply a description when a session's context yields nothing
// better than the app name.
var appDefaults = map[string]string{
	"Google Chrome": "web browsing",
	"Arc":           "web browsing",
	"Safari":        "web browsing",
	"Obsidian":      "note taking",
	"Electron":      "editor work",
	"Antigravity":   "Claude Code work",
	"ghostty":       "terminal work",
	"Slack":         "chat",
	"Finder":        "file management",
}

// key is the identity a session is grouped by
type key struct {
	app       string
	project   string
	document  string
	urlDomain string
}

// Segmenter turns classified observations into work sessions
type Segmenter struct {
	extractor *workctx.Extractor
}

// NewSegmenter creates a segmenter using the given context extractor
func NewSegmenter(extractor *workctx.Extractor) *Segmenter {
	return &Segmenter{extractor: extractor}
}

// Detect scans active observations in order, keeping a single open session.
// A new session starts when no session is open, the context key changes, or
// the open session has run for MaxSessionMinutes.
func (s *Segmenter) Detect(entries []classify.Entry) []Session {
	var sessions []Session
	var current *openSession

	for _, e := range entries {
		if !e.IsActive {
			continue
		}

		ctx := s.extractor.Extract(e.OCRText, e.Window, e.AppName)
		k := key{e.AppName, ctx.Project, ctx.Document, ctx.URLDomain}
		details := s.extractor.ExtractContentDetails(e.OCRText)

		startNew := current == nil || k != current.key ||
			e.Timestamp.Sub(current.startTS) >= MaxSessionMinutes*time.Minute

		if startNew {
			if current != nil {
				sessions = append(sessions, current.finalize())
			}
			current = newOpenSession(e.Timestamp, e.AppName, ctx, k)
			current.content.add(details)
			continue
		}

		current.extend(e.Timestamp, ctx.Description)
		current.content.add(details)
	}

	if current != nil {
		sessions = append(sessions, current.finalize())
	}

	return sessions
}

// openSession is the mutable builder for the session being accumulated; it
// is finalized into an immutable Session on close.
type openSession struct {
	startTS time.Time
	endTS   time.Time
	app     string
	ctx     workctx.Context
	key     key

	entryCount    int
	subActivities []SubActivity
	descSeen      map[string]bool
	descOrder     []string
	content       contentAccumulator
}

func newOpenSession(ts time.Time, app string, ctx workctx.Context, k key) *openSession {
	o := &openSession{
		startTS:    ts,
		endTS:      ts,
		app:        app,
		ctx:        ctx,
		key:        k,
		entryCount: 1,
		descSeen:   make(map[string]bool),
	}
	if ctx.Description != "" {
		o.descSeen[ctx.Description] = true
		o.descOrder = append(o.descOrder, ctx.Description)
	}
	return o
}

// extend continues the open session with another observation, recording a
// sub-activity whenever a description not yet seen in this session appears.
func (o *openSession) extend(ts time.Time, description string) {
	o.endTS = ts
	o.entryCount++

	if description != "" && !o.descSeen[description] {
		o.descSeen[description] = true
		o.descOrder = append(o.descOrder, description)
		o.subActivities = append(o.subActivities, SubActivity{
			Time:        ts.Format("15:04"),
			Description: description,
		})
	}
}

// finalize computes the duration, resolves the description fallback chain,
// and flattens the content accumulator.
func (o *openSession) finalize() Session {
	minutes := int(o.endTS.Sub(o.startTS).Minutes())
	if minutes < 1 {
		minutes = 1
	}

	description := o.ctx.Description
	if description == "" || description == o.app {
		switch {
		case o.ctx.Document != "":
			description = o.ctx.Document
		case o.ctx.PageTitle != "":
			description = o.ctx.PageTitle
		case o.ctx.Project != "":
			description = "project: " + o.ctx.Project
		case o.ctx.URLDomain != "":
			description = "browsing: " + o.ctx.URLDomain
		case appDefaults[o.app] != "":
			description = appDefaults[o.app]
		default:
			description = o.app + " work"
		}
	}

	sess := Session{
		Start:           o.startTS.Format("15:04"),
		End:             o.endTS.Format("15:04"),
		DurationMinutes: minutes,
		DurationDisplay: FormatDuration(minutes),
		App:             o.app,
		Description:     description,
		Project:         o.ctx.Project,
		Document:        o.ctx.Document,
		URLDomain:       o.ctx.URLDomain,
		PageTitle:       o.ctx.PageTitle,
		SubActivities:   o.subActivities,
	}
	if len(o.descOrder) > 1 {
		sess.AllActivities = o.descOrder
	}
	sess.ContentDetails = o.content.summary()
	return sess
}

// contentAccumulator merges per-observation content details while a session
// is open. Every list field deduplicates; snippets are capped during merge.
type contentAccumulator struct {
	keywords      []string
	repos         []string
	documents     []string
	searchQueries []string
	topics        []string
	snippets      []string
	mailLabels    []string
	mailContacts  []string
}

const maxMergedSnippets = 10

func (c *contentAccumulator) add(d workctx.ContentDetails) {
	c.keywords = mergeUnique(c.keywords, d.Keywords)
	c.repos = mergeUnique(c.repos, d.Repos)
	c.documents = mergeUnique(c.documents, d.Documents)
	c.searchQueries = mergeUnique(c.searchQueries, d.SearchQueries)
	c.topics = mergeUnique(c.topics, d.Topics)
	c.mailLabels = mergeUnique(c.mailLabels, d.Emails.Labels)
	c.mailContacts = mergeUnique(c.mailContacts, d.Emails.Contacts)

	for _, snippet := range d.RawSnippets {
		if len(c.snippets) >= maxMergedSnippets {
			break
		}
		c.snippets = mergeUnique(c.snippets, []string{snippet})
	}
}

// summary flattens the accumulator into the capped output form, or nil when
// nothing was collected.
func (c *contentAccumulator) summary() *ContentSummary {
	s := ContentSummary{
		Keywords:      capList(c.keywords, 10),
		Repos:         capList(c.repos, 5),
		Documents:     capList(c.documents, 5),
		SearchQueries: capList(c.searchQueries, 5),
		Topics:        capList(c.topics, 3),
		Snippets:      capList(c.snippets, 5),
	}
	if len(c.mailLabels) > 0 || len(c.mailContacts) > 0 {
		s.Emails = &workctx.Emails{
			Labels:   capList(c.mailLabels, 10),
			Contacts: capList(c.mailContacts, 5),
		}
	}
	if len(s.Keywords) == 0 && len(s.Repos) == 0 && len(s.Documents) == 0 &&
		len(s.SearchQueries) == 0 && len(s.Topics) == 0 && len(s.Snippets) == 0 &&
		s.Emails == nil {
		return nil
	}
	return &s
}

func mergeUnique(dst []string, items []string) []string {
	for _, item := range items {
		found := false
		for _, existing := range dst {
			if existing == item {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, item)
		}
	}
	return dst
}

func capList(list []string, max int) []string {
	if len(list) > max {
		return list[:max]
	}
	return list
}
