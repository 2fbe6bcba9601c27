package logger

// Diagnostics are modeled on clang's error format: each message can carry the
// file, line, and the text of the offending line. Messages are collected
// through a Log value so callers can either stream them to stderr as they
// happen or defer them and inspect them later.

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
)

type Log struct {
	AddMsg    func(Msg)
	HasErrors func() bool
	Done      func() []Msg
}

type LogLevel int8

const (
	LevelNone LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelSilent
)

type MsgKind uint8

const (
	Error MsgKind = iota
	Warning
)

type Msg struct {
	Kind     MsgKind
	Text     string
	Location *MsgLocation
}

type MsgLocation struct {
	File     string
	Line     int // 1-based
	Column   int // 0-based, in bytes
	Length   int // in bytes
	LineText string
}

type Loc struct {
	// 0-based byte offset from the start of the file
	Start int32
}

type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

// This type is just so we can use Go's native sort function
type msgsArray []Msg

func (a msgsArray) Len() int          { return len(a) }
func (a msgsArray) Swap(i int, j int) { a[i], a[j] = a[j], a[i] }

func (a msgsArray) Less(i int, j int) bool {
	ai := a[i]
	aj := a[j]

	li := ai.Location
	lj := aj.Location

	if li == nil && lj != nil {
		return true
	}
	if li != nil && lj == nil {
		return false
	}

	if li != nil && lj != nil {
		if li.File != lj.File {
			return li.File < lj.File
		}
		if li.Line != lj.Line {
			return li.Line < lj.Line
		}
		if li.Column != lj.Column {
			return li.Column < lj.Column
		}
		if li.Length != lj.Length {
			return li.Length < lj.Length
		}
	}

	if ai.Kind != aj.Kind {
		return ai.Kind < aj.Kind
	}
	return ai.Text < aj.Text
}

// Source is one input file (or virtual module) that diagnostics can point
// into. PrettyPath is what gets shown to the user; IdentifierName is mixed
// into generated symbol names.
type Source struct {
	Index          uint32
	PrettyPath     string
	IdentifierName string
	Contents       string
}

func (s *Source) TextForRange(r Range) string {
	return s.Contents[r.Loc.Start : r.Loc.Start+r.Len]
}

func (s *Source) RangeOfString(loc Loc) Range {
	text := s.Contents[loc.Start:]
	if len(text) == 0 {
		return Range{Loc: loc, Len: 0}
	}

	quote := text[0]
	if quote == '"' || quote == '\'' {
		// Search for the matching quote character
		for i := 1; i < len(text); i++ {
			c := text[i]
			if c == quote {
				return Range{Loc: loc, Len: int32(i + 1)}
			} else if c == '\\' {
				i += 1
			}
		}
	}

	return Range{Loc: loc, Len: 0}
}

func plural(prefix string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, prefix)
	}
	return fmt.Sprintf("%d %ss", count, prefix)
}

type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
	Width           int
	Height          int
}

type Colors struct {
	Reset     string
	Bold      string
	Dim       string
	Underline string

	Red     string
	Green   string
	Blue    string
	Cyan    string
	Magenta string
	Yellow  string
}

var TerminalColors = Colors{
	Reset:     "\033[0m",
	Bold:      "\033[1m",
	Dim:       "\033[37m",
	Underline: "\033[4m",

	Red:     "\033[31m",
	Green:   "\033[32m",
	Blue:    "\033[34m",
	Cyan:    "\033[36m",
	Magenta: "\033[35m",
	Yellow:  "\033[33m",
}

func hasNoColorEnvironmentVariable() bool {
	// https://no-color.org/
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

type StderrColor uint8

const (
	ColorIfTerminal StderrColor = iota
	ColorNever
	ColorAlways
)

type StderrOptions struct {
	IncludeSource bool
	ErrorLimit    int
	Color         StderrColor
	LogLevel      LogLevel
}

func NewStderrLog(options StderrOptions) Log {
	var mutex sync.Mutex
	var msgs msgsArray
	terminalInfo := GetTerminalInfo(os.Stderr)
	errors := 0
	errorLimitWasHit := false

	switch options.Color {
	case ColorNever:
		terminalInfo.UseColorEscapes = false
	case ColorAlways:
		terminalInfo.UseColorEscapes = SupportsColorEscapes
	}

	return Log{
		AddMsg: func(msg Msg) {
			mutex.Lock()
			defer mutex.Unlock()
			msgs = append(msgs, msg)

			if msg.Kind == Error {
				errors++
			}

			// Be silent once the error limit has been hit
			if errorLimitWasHit {
				return
			}
			if options.ErrorLimit != 0 && errors >= options.ErrorLimit {
				errorLimitWasHit = true
				writeStringWithColor(os.Stderr, fmt.Sprintf(
					"%s reached (disable error limit with --error-limit=0)\n",
					plural("error", options.ErrorLimit)))
				return
			}

			shown := (msg.Kind == Error && options.LogLevel <= LevelError) ||
				(msg.Kind == Warning && options.LogLevel <= LevelWarning)
			if shown {
				writeStringWithColor(os.Stderr, msg.String(options, terminalInfo))
			}
		},
		HasErrors: func() bool {
			mutex.Lock()
			defer mutex.Unlock()
			return errors > 0
		},
		Done: func() []Msg {
			mutex.Lock()
			defer mutex.Unlock()
			sort.Stable(msgs)
			return msgs
		},
	}
}

func NewDeferLog() Log {
	var mutex sync.Mutex
	var msgs msgsArray
	hasErrors := false

	return Log{
		AddMsg: func(msg Msg) {
			mutex.Lock()
			defer mutex.Unlock()
			if msg.Kind == Error {
				hasErrors = true
			}
			msgs = append(msgs, msg)
		},
		HasErrors: func() bool {
			mutex.Lock()
			defer mutex.Unlock()
			return hasErrors
		},
		Done: func() []Msg {
			mutex.Lock()
			defer mutex.Unlock()
			sort.Stable(msgs)
			return msgs
		},
	}
}

func PrintErrorToStderr(text string) {
	log := NewStderrLog(StderrOptions{Color: ColorIfTerminal})
	log.AddMsg(Msg{Kind: Error, Text: text})
}

func (msg Msg) String(options StderrOptions, terminalInfo TerminalInfo) string {
	kind := "error"
	kindColor := TerminalColors.Red
	if msg.Kind == Warning {
		kind = "warning"
		kindColor = TerminalColors.Magenta
	}

	var colors Colors
	if terminalInfo.UseColorEscapes {
		colors = TerminalColors
	}

	location := msg.Location
	if location == nil {
		return fmt.Sprintf("%s%s%s%s: %s%s\n",
			colors.Bold, kindColor, kind, colors.Reset+colors.Bold, msg.Text, colors.Reset)
	}

	if !options.IncludeSource {
		return fmt.Sprintf("%s%s:%d:%d: %s%s%s: %s%s\n",
			colors.Bold, location.File, location.Line, location.Column,
			kindColor, kind, colors.Reset+colors.Bold, msg.Text, colors.Reset)
	}

	// Render a caret (or a run of tildes) underneath the offending range
	gutter := fmt.Sprintf("%d", location.Line)
	marker := "^"
	if location.Length > 1 {
		marker = strings.Repeat("~", location.Length)
	}

	return fmt.Sprintf("%s%s:%d:%d: %s%s%s: %s%s\n%s%s │%s %s\n%s%s ╵%s %s%s%s\n",
		colors.Bold, location.File, location.Line, location.Column,
		kindColor, kind, colors.Reset+colors.Bold, msg.Text, colors.Reset,
		colors.Dim, gutter, colors.Reset, location.LineText,
		colors.Dim, strings.Repeat(" ", len(gutter)), colors.Reset,
		colors.Green+strings.Repeat(" ", location.Column)+marker, colors.Reset, "")
}

func locationOrNil(source *Source, r Range) *MsgLocation {
	if source == nil {
		return nil
	}

	lineCount, columnCount, lineStart, lineEnd := computeLineAndColumn(source.Contents, int(r.Loc.Start))
	return &MsgLocation{
		File:     source.PrettyPath,
		Line:     lineCount + 1, // 0-based to 1-based
		Column:   columnCount,
		Length:   int(r.Len),
		LineText: source.Contents[lineStart:lineEnd],
	}
}

func computeLineAndColumn(contents string, offset int) (lineCount int, columnCount int, lineStart int, lineEnd int) {
	var prevCodePoint rune
	for i, codePoint := range contents[:offset] {
		switch codePoint {
		case '\n':
			lineStart = i + 1
			if prevCodePoint != '\r' {
				lineCount++
			}
		case '\r', ' ', ' ':
			lineStart = i + len(string(codePoint))
			lineCount++
		}
		prevCodePoint = codePoint
	}

	// Scan to the end of the line (or end of file if this is the last line)
	lineEnd = len(contents)
loop:
	for i, codePoint := range contents[lineStart:] {
		switch codePoint {
		case '\r', '\n', ' ', ' ':
			lineEnd = lineStart + i
			break loop
		}
	}

	columnCount = offset - lineStart
	return
}

func (log Log) AddError(source *Source, loc Loc, text string) {
	log.AddMsg(Msg{
		Kind:     Error,
		Text:     text,
		Location: locationOrNil(source, Range{Loc: loc}),
	})
}

func (log Log) AddWarning(source *Source, loc Loc, text string) {
	log.AddMsg(Msg{
		Kind:     Warning,
		Text:     text,
		Location: locationOrNil(source, Range{Loc: loc}),
	})
}

func (log Log) AddRangeError(source *Source, r Range, text string) {
	log.AddMsg(Msg{
		Kind:     Error,
		Text:     text,
		Location: locationOrNil(source, r),
	})
}

func (log Log) AddRangeWarning(source *Source, r Range, text string) {
	log.AddMsg(Msg{
		Kind:     Warning,
		Text:     text,
		Location: locationOrNil(source, r),
	})
}
