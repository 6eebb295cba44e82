package render

import "fmt"

// Style selects the voice of a blog post.
type Style string

const (
	StyleTechnical Style = "technical"
	StyleCasual    Style = "casual"

	// DefaultStyle is used for any value that is not a known style.
	DefaultStyle = StyleTechnical
)

// Styles lists the recognized styles.
var Styles = []Style{StyleTechnical, StyleCasual}

// ParseStyle maps s to a known style, falling back to DefaultStyle.
func ParseStyle(s string) Style {
	switch Style(s) {
	case StyleTechnical, StyleCasual:
		return Style(s)
	default:
		return DefaultStyle
	}
}

// Valid reports whether s is one of Styles.
func (s Style) Valid() bool {
	return ParseStyle(string(s)) == s
}

type voice struct {
	Intro   string
	heading string
	lead    string
}

func (v voice) Heading(name string) string { return fmt.Sprintf(v.heading, name) }

func (v voice) Lead(name string) string { return fmt.Sprintf(v.lead, name) }

var voices = map[Style]voice{
	StyleTechnical: {
		Intro:   "This post outlines the recent additions to the codebase.",
		heading: "### New Function: `%s`",
		lead:    "The `%s` function has been added to the API. Below is a usage example:",
	},
	StyleCasual: {
		Intro:   "We've been hard at work on some exciting new updates. Here's a look at what's new:",
		heading: "## Say Hello to `%s`!",
		lead:    "We've just added the `%s` function. It's a great new way to interact with our application. Here's how you can use it:",
	},
}

func voiceFor(style Style) voice {
	return voices[ParseStyle(string(style))]
}
