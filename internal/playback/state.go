package playback

import (
	"encoding/json"
	"errors"
	"fmt"
)

// State identifies what the session is currently presenting.
type State int

const (
	// StateTitleScreen is the idle title menu, before a session starts and
	// after content runs out.
	StateTitleScreen State = iota
	// StateTitleCard shows a chapter title; input is ignored and the card
	// advances on its own.
	StateTitleCard
	// StateDialogue shows a spoken line gated behind the click delay.
	StateDialogue
	// StateChoice presents branch options.
	StateChoice
	// StateEnding renders like dialogue; advancing past the last row returns
	// to the title screen.
	StateEnding
)

func (s State) String() string {
	switch s {
	case StateTitleScreen:
		return "title-screen"
	case StateTitleCard:
		return "title-card"
	case StateDialogue:
		return "dialogue"
	case StateChoice:
		return "choice"
	case StateEnding:
		return "ending"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Settings are the reader-adjustable playback preferences.
type Settings struct {
	TextSpeed int `json:"textSpeed"`
	BGMVolume int `json:"bgmVolume"`
	SEVolume  int `json:"seVolume"`
}

// DefaultSettings returns the initial preferences for a fresh session.
func DefaultSettings() Settings {
	return Settings{TextSpeed: 5, BGMVolume: 70, SEVolume: 70}
}

// ChoiceRecord captures which option the reader picked at a choice prompt.
type ChoiceRecord struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// GameState is the mutable session state owned by the runtime and mutated
// only through its transition handlers.
type GameState struct {
	CurrentSceneID string                  `json:"currentSceneId"`
	VisitedScenes  []string                `json:"visitedScenes"`
	Choices        map[string]ChoiceRecord `json:"choices"`
	Settings       Settings                `json:"settings"`
}

func newGameState() GameState {
	return GameState{
		Choices:  make(map[string]ChoiceRecord),
		Settings: DefaultSettings(),
	}
}

func (g GameState) clone() GameState {
	out := g
	out.VisitedScenes = append([]string(nil), g.VisitedScenes...)
	out.Choices = make(map[string]ChoiceRecord, len(g.Choices))
	for k, v := range g.Choices {
		out.Choices[k] = v
	}
	return out
}

// HistoryEntry is one displayed unit of text, appended in strict display
// order and never edited afterwards.
type HistoryEntry struct {
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// Snapshot is the durable form of a session: everything save() persists and
// load() restores.
type Snapshot struct {
	SceneIndex int            `json:"sceneIndex"`
	State      GameState      `json:"state"`
	History    []HistoryEntry `json:"history"`
}

// ErrSaveCorrupt marks save data that fails to parse or references an
// impossible position. It is recovered locally, never fatal.
var ErrSaveCorrupt = errors.New("save data corrupt")

// ErrNoSave marks an absent save slot.
var ErrNoSave = errors.New("no save data")

// EncodeSnapshot serializes a snapshot for the save store.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// DecodeSnapshot parses stored save data, tagging parse failures with
// ErrSaveCorrupt.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrSaveCorrupt, err)
	}
	if snap.State.Choices == nil {
		snap.State.Choices = make(map[string]ChoiceRecord)
	}
	return snap, nil
}
