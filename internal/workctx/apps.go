package workctx

import (
	"regexp"

	"github.com/hirose30/screen-logger/internal/textnorm"
)

// Terminal prompt shapes: "[user@host dir]" and "cd dir"
var dirPromptRes = []*regexp.Regexp{
	regexp.MustCompile(`\[.+@.+\s+([^\]\s]+)\]`),
	regexp.MustCompile(`cd\s+[~/]?([^\s\n]+)`),
}

// uninformativeDirs are prompt directories that say nothing about the project
var uninformativeDirs = map[string]bool{
	"~":         true,
	".":         true,
	"..":        true,
	"Dropbox":   true,
	"Documents": true,
	"dev":       true,
	"private":   true,
}

// commandRule maps a recognizable shell command to a description label
type commandRule struct {
	re    *regexp.Regexp
	label string
}

var commandRules = []commandRule{
	{regexp.MustCompile(`\bgit\s+(push|pull|commit|checkout|branch)`), "Git ops"},
	{regexp.MustCompile(`\bnpm\s+(run|install|test)`), "npm ops"},
	{regexp.MustCompile(`\bpython3?\s+`), "Python run"},
	{regexp.MustCompile(`\bclaude\s+`), "Claude Code"},
}

// extractNotes treats the window title segment as the open note
func extractNotes(window string, ctx *Context) {
	doc := windowTitle(window)
	if doc == "" {
		return
	}
	ctx.Document = truncRunes(doc, 60)
	ctx.Description = "note: " + truncRunes(doc, 40)
}

// extractTerminal mines the cleaned text for a working directory and a
// recognizable command.
func extractTerminal(rawOCR string, ctx *Context) {
	cleaned := textnorm.Clean(rawOCR)

	for _, re := range dirPromptRes {
		m := re.FindStringSubmatch(cleaned)
		if m == nil {
			continue
		}
		proj := truncRunes(m[1], 30)
		if !uninformativeDirs[proj] {
			ctx.Project = proj
			ctx.Description = "terminal: " + proj
		}
		break
	}

	for _, rule := range commandRules {
		if rule.re.MatchString(cleaned) {
			if ctx.Project != "" {
				ctx.Description = rule.label + ": " + ctx.Project
			} else {
				ctx.Description = rule.label
			}
			break
		}
	}
}

// extractEditor takes the window title as the open file and scans the text
// for configured project names.
func (e *Extractor) extractEditor(rawOCR, window string, ctx *Context) {
	if file := windowTitle(window); file != "" && file != "Electron" {
		ctx.Document = truncRunes(file, 50)
		ctx.Description = "editing: " + truncRunes(file, 35)
	}

	if proj := e.findKnownProject(textnorm.Clean(rawOCR)); proj != "" {
		ctx.Project = proj
		if ctx.Description == "" {
			ctx.Description = "dev: " + proj
		}
	}
}
