package scenario

import (
	"fmt"
	"strings"
)

// SceneKind classifies a row by the segment code in its scene identifier.
type SceneKind int

const (
	// KindDialogue is an ordinary spoken line.
	KindDialogue SceneKind = iota
	// KindTitle is a chapter title card (segment code "T").
	KindTitle
	// KindChoice is a choice prompt whose text lines are the options (segment code "Q").
	KindChoice
	// KindEnding is a chapter end card (segment code "E"); it renders like
	// dialogue but advancing past the final row returns to the title screen.
	KindEnding
)

func (k SceneKind) String() string {
	switch k {
	case KindTitle:
		return "title"
	case KindChoice:
		return "choice"
	case KindEnding:
		return "ending"
	default:
		return "dialogue"
	}
}

// Row is one unit of script content with its media references. JSON field
// names match the external tabular schema so the compiled bundle stays
// readable by the embedded player.
type Row struct {
	SceneID        string `json:"scene_id"`
	Speaker        string `json:"person_name"`
	Text           string `json:"text"`
	Effect         string `json:"effect"`
	Background     string `json:"background_image"`
	PortraitCenter string `json:"center_standing_portrait_image"`
	PortraitLeft   string `json:"left_standing_portrait_image"`
	PortraitRight  string `json:"right_standing_portrait_image"`
	Sound          string `json:"sounds"`
	Music          string `json:"bgm"`

	Kind SceneKind `json:"-"`
}

// idSeparator splits scene identifier tokens: chapter, segment code, ordinal.
const idSeparator = "-"

// Classify derives the scene kind from the identifier's second token.
// "1-T" is a title card, "1-Q" a choice, "1-E" a chapter end; anything else,
// including branch identifiers like "1-A-1", is dialogue.
func Classify(sceneID string) SceneKind {
	parts := strings.Split(sceneID, idSeparator)
	if len(parts) >= 2 {
		switch parts[1] {
		case "T":
			return KindTitle
		case "Q":
			return KindChoice
		case "E":
			return KindEnding
		}
	}
	return KindDialogue
}

// Chapter returns the identifier's leading chapter token.
func Chapter(sceneID string) string {
	if i := strings.Index(sceneID, idSeparator); i >= 0 {
		return sceneID[:i]
	}
	return sceneID
}

// BranchTarget computes the identifier a choice option jumps to: the current
// chapter, the branch letter for the zero-based option index ('A' + index),
// and the ordinal 1.
func BranchTarget(sceneID string, optionIndex int) string {
	return fmt.Sprintf("%s%s%c%s1", Chapter(sceneID), idSeparator, 'A'+rune(optionIndex), idSeparator)
}
