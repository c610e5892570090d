// Package formatter renders commit messages and file listings.
package formatter

import (
	"strings"

	"github.com/samzong/commitx/internal/commit"
)

// BodyLineBreak is typed by the user in the body answer to start a new line.
const BodyLineBreak = "|"

// AssembleMessage builds a conventional commit message from intent:
//
//	<type>[(<scope>)][!]: <subject>
//
//	[<body>]
//
//	[BREAKING CHANGE: <breaking>]
//
//	[closed: <closed issue>]
//
// Optional sections are omitted when empty. The header carries "!" exactly
// when a breaking note is present.
func AssembleMessage(intent commit.Intent) string {
	var b strings.Builder

	b.WriteString(intent.Type)
	if intent.Scope != "" {
		b.WriteString("(" + intent.Scope + ")")
	}
	if intent.IsBreaking() {
		b.WriteString("!")
	}
	b.WriteString(": " + intent.Subject)

	if intent.Body != "" {
		b.WriteString("\n\n" + strings.ReplaceAll(intent.Body, BodyLineBreak, "\n"))
	}
	if intent.IsBreaking() {
		b.WriteString("\n\nBREAKING CHANGE: " + intent.Breaking)
	}
	if intent.ClosedIssue != "" {
		b.WriteString("\n\nclosed: " + intent.ClosedIssue)
	}

	return b.String()
}
