package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Players
	message.SetString(lang, KeyPlayerOne, "Player One")
	message.SetString(lang, KeyPlayerTwo, "Player Two")

	// Game log
	message.SetString(lang, KeyWelcome, "Welcome to Pig, %s!\nPress 'Roll' to begin.")
	message.SetString(lang, KeyRolled, "%s rolled a %d.")
	message.SetString(lang, KeyRolledOut, "%s rolled a %d.\n%s, you're up!")
	message.SetString(lang, KeyHolds, "%s holds %d points.\n%s, you're up!")
	message.SetString(lang, KeyHasWon, "%s has won!")
	message.SetString(lang, KeyRollPending, "%s is rolling...")

	// Winner alert
	message.SetString(lang, KeyWinTitle, "Winner!")
	message.SetString(lang, KeyWinMessage, "%s,\nyou won with a score of %d in %d rolls.")
	message.SetString(lang, KeyWinAction, "New Game")
}
