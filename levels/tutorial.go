package levels

import (
	"github.com/oliverbestmann/shapeshifter/orion"
)

// SpawnInstruction asks the UI to show a line of instruction text.
type SpawnInstruction struct {
	Text string
}

var tutorialTexts = []string{
	"The goal is the fit the polygon inside of the target area",
	"Rotate the polygon using either the right mouse button or the scroll wheel",
	"Perform a cut by holding either the Ctrl key or the C key, and then using the mouse",
	"The number of remaining cuts for the level is shown in the top left corner",
	"There is a \"restart level\" option in the pause menu accessible via the escape or M key",
	"Your are on your own now! Good luck!",
}

// TutorialText returns the instruction for the given level of the
// simplicity tier, or an empty string if there is none.
func TutorialText(simplicityLevel int) string {
	if simplicityLevel < 0 || simplicityLevel >= len(tutorialTexts) {
		return ""
	}

	return tutorialTexts[simplicityLevel]
}

// SendTutorialText sends the tutorial text for the level, if any.
func SendTutorialText(simplicityLevel int, events *orion.Events[SpawnInstruction]) bool {
	text := TutorialText(simplicityLevel)
	if text == "" {
		return false
	}

	events.Send(SpawnInstruction{Text: text})
	return true
}
