// Package i18n provides the message catalog for game log text and win alerts.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Every key is registered for each supported language.
const (
	KeyPlayerOne   = "player.one"
	KeyPlayerTwo   = "player.two"
	KeyWelcome     = "log.welcome"
	KeyRolled      = "log.rolled"
	KeyRolledOut   = "log.rolled_out"
	KeyHolds       = "log.holds"
	KeyHasWon      = "log.has_won"
	KeyWinTitle    = "win.title"
	KeyWinMessage  = "win.message"
	KeyWinAction   = "win.action"
	KeyRollPending = "log.roll_pending"
)

var supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default language tag
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the best supported match of tag
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag))
}

// Match returns the supported tag closest to tag
func Match(tag language.Tag) language.Tag {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default()
	}
	return supported[idx]
}

// ParseLanguage resolves a BCP 47 string such as "de-AT" to a supported tag.
// Empty or unparseable input yields the default language.
func ParseLanguage(s string) language.Tag {
	s = strings.TrimSpace(s)
	if s == "" {
		return Default()
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default()
	}
	return Match(tag)
}
