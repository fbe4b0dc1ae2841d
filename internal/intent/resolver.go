package intent

import (
	"fmt"

	"github.com/xaenox/gallery-bot/internal/models"
)

// ResolveSub maps a sub-intent label to a sentence about the profile's
// current painting. Pure lookup; the caller is responsible for checking
// that a painting has been identified first.
func ResolveSub(sub SubKind, profile *models.UserProfile) string {
	switch sub {
	case SubAuthor:
		return fmt.Sprintf("Author of the painting is %s.", profile.PaintingAuthor)
	case SubDate:
		return fmt.Sprintf("The painting is dated %s.", profile.PaintingYear)
	case SubName:
		return fmt.Sprintf("The name of the painting is %s.", profile.PaintingTitle)
	case SubStyle:
		return fmt.Sprintf("The style of the painting is %s.", profile.PaintingStyle)
	case SubTechnique:
		return fmt.Sprintf("The technique used is %s.", profile.PaintingTechnique)
	default:
		return "Sorry, I didn't understand that. You can ask about the author, date, name, style or technique."
	}
}
