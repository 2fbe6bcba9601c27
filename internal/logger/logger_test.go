package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeferLogCollectsAndSorts(t *testing.T) {
	log := NewDeferLog()
	source := &Source{PrettyPath: "b.js", Contents: "import x from './x'\n"}

	log.AddWarning(nil, Loc{}, "no location")
	log.AddError(source, Loc{Start: 7}, "second")
	log.AddError(&Source{PrettyPath: "a.js", Contents: "let y\n"}, Loc{Start: 4}, "first")

	require.True(t, log.HasErrors())

	msgs := log.Done()
	require.Len(t, msgs, 3)

	// Messages without a location sort first, then by file
	require.Nil(t, msgs[0].Location)
	require.Equal(t, "a.js", msgs[1].Location.File)
	require.Equal(t, "b.js", msgs[2].Location.File)
}

func TestDeferLogHasErrors(t *testing.T) {
	log := NewDeferLog()
	require.False(t, log.HasErrors())
	log.AddWarning(nil, Loc{}, "just a warning")
	require.False(t, log.HasErrors())
	log.AddError(nil, Loc{}, "now an error")
	require.True(t, log.HasErrors())
}

func TestMsgLocation(t *testing.T) {
	source := &Source{PrettyPath: "m.js", Contents: "let a\nimport x from './x'\nlet b\n"}
	log := NewDeferLog()
	log.AddRangeError(source, Range{Loc: Loc{Start: 20}, Len: 5}, "oops")

	msgs := log.Done()
	location := msgs[0].Location
	require.Equal(t, 2, location.Line)
	require.Equal(t, 14, location.Column)
	require.Equal(t, 5, location.Length)
	require.Equal(t, "import x from './x'", location.LineText)
}

func TestMsgStringWithoutColor(t *testing.T) {
	msg := Msg{Kind: Error, Text: "something broke"}
	require.Equal(t, "error: something broke\n", msg.String(StderrOptions{}, TerminalInfo{}))

	msg.Location = &MsgLocation{File: "m.js", Line: 2, Column: 14}
	require.Equal(t, "m.js:2:14: error: something broke\n", msg.String(StderrOptions{}, TerminalInfo{}))
}

func TestRangeOfString(t *testing.T) {
	source := &Source{Contents: `import x from "./x"`}
	r := source.RangeOfString(Loc{Start: 14})
	require.Equal(t, int32(14), r.Loc.Start)
	require.Equal(t, int32(5), r.Len)
	require.Equal(t, `"./x"`, source.TextForRange(r))
}
