// Package commit defines the conventional commit vocabulary and the intent
// collected from the user before a message is assembled.
package commit

import "unicode/utf8"

// MaxSubjectLength is the longest subject accepted, in characters.
const MaxSubjectLength = 50

// Type is a conventional commit change type.
type Type struct {
	Name string
	Hint string
}

// Types lists the selectable change types in presentation order.
var Types = []Type{
	{Name: "feat", Hint: "A new feature"},
	{Name: "fix", Hint: "A bug fix"},
	{Name: "docs", Hint: "Documentation only changes"},
	{Name: "style", Hint: "Changes that do not affect the meaning of the code"},
	{Name: "refactor", Hint: "A code change that neither fixes a bug nor adds a feature"},
	{Name: "test", Hint: "Adding missing tests or correcting existing tests"},
	{Name: "perf", Hint: "A code change that improves performance"},
	{Name: "ci", Hint: "Changes to our CI configuration files and scripts"},
	{Name: "build", Hint: "Changes that affect the build system or external dependencies"},
	{Name: "chore", Hint: "Other changes that don't modify src or test files"},
	{Name: "revert", Hint: "Reverts a previous commit"},
}

// IsType reports whether name is one of Types.
func IsType(name string) bool {
	for _, t := range Types {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Intent holds the answers a commit message is assembled from.
// Optional fields are empty when the user skipped them.
type Intent struct {
	Type        string
	Scope       string
	Subject     string
	Body        string
	Breaking    string
	ClosedIssue string
}

// IsBreaking reports whether the intent carries a breaking change note.
func (i Intent) IsBreaking() bool {
	return i.Breaking != ""
}

// SubjectLength counts the subject in characters rather than bytes.
func SubjectLength(subject string) int {
	return utf8.RuneCountInString(subject)
}
