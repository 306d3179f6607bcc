package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.German

	// Players
	message.SetString(lang, KeyPlayerOne, "Spieler Eins")
	message.SetString(lang, KeyPlayerTwo, "Spieler Zwei")

	// Game log
	message.SetString(lang, KeyWelcome, "Willkommen bei Pig, %s!\nDrücke 'Würfeln', um zu beginnen.")
	message.SetString(lang, KeyRolled, "%s hat eine %d gewürfelt.")
	message.SetString(lang, KeyRolledOut, "%s hat eine %d gewürfelt.\n%s, du bist dran!")
	message.SetString(lang, KeyHolds, "%s behält %d Punkte.\n%s, du bist dran!")
	message.SetString(lang, KeyHasWon, "%s hat gewonnen!")
	message.SetString(lang, KeyRollPending, "%s würfelt...")

	// Winner alert
	message.SetString(lang, KeyWinTitle, "Gewonnen!")
	message.SetString(lang, KeyWinMessage, "%s,\ndu hast mit %d Punkten in %d Würfen gewonnen.")
	message.SetString(lang, KeyWinAction, "Neues Spiel")
}
