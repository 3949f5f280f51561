// Package console prints operator-facing messages.
//
// Every line carries an emoji marker that signals its severity (informational,
// success, warning, error). Markers and headings are styled with lipgloss; the
// renderer inspects the destination writer, so output redirected to a file or
// buffer is plain text.
//
// # Usage
//
//	out := console.New(os.Stdout)
//	out.Title("🏠", "SplitNest Setup Script")
//	out.Success("Created .env.local file with default configuration")
//	out.Detail("Please update the MongoDB URI as needed.")
package console
