package capture

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// frontWindowScript asks System Events for the frontmost app and its first
// window title. The title read is wrapped in try because some apps expose no
// windows at all. Electron shells all report the same generic process name,
// so the bundle's displayed name is resolved through Finder when possible.
const frontWindowScript = `
tell application "System Events"
	set frontProcess to first application process whose frontmost is true
	set processName to name of frontProcess
	set windowTitle to ""
	try
		tell frontProcess
			set windowTitle to name of front window
		end tell
	end try
end tell

set appName to processName
try
	tell application "Finder"
		set appPath to (application file of application process processName) as alias
		set appName to displayed name of appPath
		if appName ends with ".app" then
			set appName to text 1 thru -5 of appName
		end if
	end tell
end try

return appName & linefeed & windowTitle
`

// activeDisplayScript finds the 1-indexed display containing the frontmost
// window's left edge, falling back to 1. JXA is used because AppleScript has
// no view of screen frames.
const activeDisplayScript = `
ObjC.import('AppKit');
let x = 0;
try {
	const se = Application('System Events');
	const proc = se.applicationProcesses.whose({ frontmost: true })[0];
	x = proc.windows[0].position()[0];
} catch (e) {}
const screens = $.NSScreen.screens;
let display = 1;
for (let i = 0; i < screens.count; i++) {
	const f = screens.objectAtIndex(i).frame;
	if (x >= f.origin.x && x < f.origin.x + f.size.width) {
		display = i + 1;
		break;
	}
}
display;
`

// OSAScriptWindows reads the frontmost window via osascript
type OSAScriptWindows struct{}

func (OSAScriptWindows) FrontWindow(ctx context.Context) (string, string, error) {
	out, err := exec.CommandContext(ctx, "osascript", "-e", frontWindowScript).Output()
	if err != nil {
		return "", "", fmt.Errorf("osascript: %w", err)
	}
	lines := strings.SplitN(strings.TrimRight(string(out), "\n"), "\n", 2)
	app := strings.TrimSpace(lines[0])
	title := ""
	if len(lines) > 1 {
		title = strings.TrimSpace(lines[1])
	}
	if app == "" {
		return "", "", fmt.Errorf("osascript returned no frontmost app")
	}
	return app, title, nil
}

// ScreencaptureScreen shells out to the system screencapture tool
type ScreencaptureScreen struct{}

func (ScreencaptureScreen) Capture(ctx context.Context, path string, display int) error {
	if display < 1 {
		display = 1
	}
	// -x: no sound, -D: only the display holding the active window
	if err := exec.CommandContext(ctx, "screencapture", "-x", fmt.Sprintf("-D%d", display), path).Run(); err != nil {
		return fmt.Errorf("screencapture: %w", err)
	}
	return nil
}

func (ScreencaptureScreen) ActiveDisplay(ctx context.Context) int {
	out, err := exec.CommandContext(ctx, "osascript", "-l", "JavaScript", "-e", activeDisplayScript).Output()
	if err != nil {
		return 1
	}
	display, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil || display < 1 {
		return 1
	}
	return display
}

func (ScreencaptureScreen) DisplayAsleep(ctx context.Context) bool {
	out, err := exec.CommandContext(ctx, "pmset", "-g", "powerstate", "IODisplayWrangler").Output()
	if err != nil {
		return false
	}
	// Power state 4 means the display is awake
	return !strings.Contains(string(out), "USEABLE")
}

// CommandOCR runs a configured OCR command with the image path appended and
// returns its stdout. Empty command means OCR is unavailable.
type CommandOCR struct {
	Command string
}

func (o CommandOCR) Recognize(ctx context.Context, imagePath string) (string, error) {
	if o.Command == "" {
		return "", fmt.Errorf("no OCR command configured")
	}
	parts := strings.Fields(o.Command)
	args := append(parts[1:], imagePath)
	out, err := exec.CommandContext(ctx, parts[0], args...).Output()
	if err != nil {
		return "", fmt.Errorf("ocr command: %w", err)
	}
	return string(out), nil
}
