package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"luminas/internal/logging"
	"luminas/internal/scenario"
)

// Fixed advancement delays.
const (
	// ClickGateDelay is the dwell time before a dialogue scene accepts an
	// advance trigger.
	ClickGateDelay = 500 * time.Millisecond
	// AutoAdvanceDelay is how long auto mode waits after the gate opens.
	AutoAdvanceDelay = 3000 * time.Millisecond
	// TitleCardDelay is how long a chapter title card stays up.
	TitleCardDelay = 2000 * time.Millisecond
)

// maxDialogueLines caps dialogue display; lines beyond the cap are dropped,
// not wrapped.
const maxDialogueLines = 4

// History markers for choice prompts and selections.
const (
	choicePromptMarker    = "【選択肢】"
	choiceSelectionPrefix = "→ "
)

// DefaultSaveSlot is used when the caller does not name a slot.
const DefaultSaveSlot = "quicksave"

// SaveStore is the durable keyed storage snapshots persist to. The SQLite
// save store satisfies it.
type SaveStore interface {
	Put(ctx context.Context, slot string, payload []byte) error
	Get(ctx context.Context, slot string) ([]byte, bool, error)
}

// Options configures a session. Presenter is required for anything
// interactive; Scheduler defaults to the wall-clock implementation, Logger
// to a no-op, and SaveSlot to DefaultSaveSlot.
type Options struct {
	Presenter Presenter
	Scheduler Scheduler
	Logger    *slog.Logger
	Saves     SaveStore
	SaveSlot  string
}

// Session drives one reader through a compiled script. All exported methods
// are safe to call from the trigger source and from timer callbacks; the
// session serializes them internally.
type Session struct {
	mu        sync.Mutex
	id        string
	script    *scenario.Script
	presenter Presenter
	sched     Scheduler
	logger    *slog.Logger
	saves     SaveStore
	slot      string

	state    State
	index    int
	game     GameState
	history  []HistoryEntry
	options  []string
	auto     bool
	gateOpen bool
	// epoch identifies the current scene instance; timer callbacks armed for
	// an earlier epoch are ignored when they fire late.
	epoch uint64
}

// NewSession builds a session over script. The session starts at the title
// screen; call Start to begin reading.
func NewSession(script *scenario.Script, opts Options) *Session {
	presenter := opts.Presenter
	if presenter == nil {
		presenter = nopPresenter{}
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = NewTimerScheduler()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	slot := strings.TrimSpace(opts.SaveSlot)
	if slot == "" {
		slot = DefaultSaveSlot
	}
	return &Session{
		id:        uuid.NewString(),
		script:    script,
		presenter: presenter,
		sched:     sched,
		logger:    logger,
		saves:     opts.Saves,
		slot:      slot,
		state:     StateTitleScreen,
		index:     script.Len(),
		game:      newGameState(),
	}
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string { return s.id }

// State reports the current presentation state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Index reports the current position in the row sequence; Len() of the
// script is the terminal sentinel.
func (s *Session) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Auto reports whether auto mode is enabled.
func (s *Session) Auto() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auto
}

// GameState returns a copy of the mutable session state.
func (s *Session) GameState() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.clone()
}

// History returns a copy of the displayed-text log.
func (s *Session) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// ChoiceOptions returns the option strings of the current choice prompt, or
// nil outside a choice scene.
func (s *Session) ChoiceOptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateChoice {
		return nil
	}
	out := make([]string, len(s.options))
	copy(out, s.options)
	return out
}

// CurrentRow returns the row under the cursor when one exists.
func (s *Session) CurrentRow() (scenario.Row, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index < 0 || s.index >= s.script.Len() {
		return scenario.Row{}, false
	}
	return s.script.Row(s.index), true
}

// Start begins a fresh read-through from the first row, discarding any
// previous state.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = newGameState()
	s.history = nil
	s.auto = false
	s.logger.Info("session started", "session_id", s.id, "rows", s.script.Len())
	s.enterLocked(0, true)
}

// Advance is the reader's explicit advance trigger. It is accepted only in
// dialogue scenes whose click-delay gate has elapsed; everywhere else it is
// ignored. The return value reports whether the trigger advanced the scene.
func (s *Session) Advance() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateDialogue && s.state != StateEnding {
		return false
	}
	if !s.gateOpen {
		return false
	}
	s.advanceLocked()
	return true
}

// Select resolves the choice option at the given zero-based index: the
// branch target is <chapter>-<'A'+index>-1, searched across the whole row
// sequence. A missing target falls back to sequential advance.
func (s *Session) Select(optionIndex int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateChoice {
		return errors.New("no choice is being presented")
	}
	if optionIndex < 0 || optionIndex >= len(s.options) {
		return fmt.Errorf("option %d out of range (have %d options)", optionIndex, len(s.options))
	}

	row := s.script.Row(s.index)
	text := s.options[optionIndex]
	s.game.Choices[row.SceneID] = ChoiceRecord{Index: optionIndex, Text: text}
	s.appendHistoryLocked("", choiceSelectionPrefix+text)

	target := scenario.BranchTarget(row.SceneID, optionIndex)
	next := s.script.IndexOf(target)
	if next < 0 {
		s.logger.Warn("branch target not found, falling through",
			"session_id", s.id, "scene_id", row.SceneID, "target", target)
		next = s.index + 1
	}
	s.enterLocked(next, true)
	return nil
}

// SetAuto toggles auto mode. Enabling it during an open-gated dialogue
// scene arms the auto-advance timer immediately; disabling it cancels any
// pending auto advance.
func (s *Session) SetAuto(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auto == enabled {
		return
	}
	s.auto = enabled
	if !enabled {
		s.sched.Cancel(TimerAutoAdvance)
		return
	}
	if (s.state == StateDialogue || s.state == StateEnding) && s.gateOpen {
		s.scheduleAutoLocked(s.epoch)
	}
}

// Save serializes the session wholesale to its save slot.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	snap := Snapshot{
		SceneIndex: s.index,
		State:      s.game.clone(),
		History:    append([]HistoryEntry(nil), s.history...),
	}
	saves := s.saves
	slot := s.slot
	s.mu.Unlock()

	if saves == nil {
		return errors.New("no save store configured")
	}
	payload, err := EncodeSnapshot(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := saves.Put(ctx, slot, payload); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	s.logger.Info("session saved", "session_id", s.id, "slot", slot, "scene_index", snap.SceneIndex)
	return nil
}

// Load restores the session from its save slot and resumes at the saved
// position with identical state and history. Absent or corrupt save data is
// reported to the reader and leaves the session where it was; it never
// interrupts playback.
func (s *Session) Load(ctx context.Context) error {
	if s.saves == nil {
		return errors.New("no save store configured")
	}
	payload, ok, err := s.saves.Get(ctx, s.slot)
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}
	if !ok {
		s.presenter.Notify("no save data found")
		return ErrNoSave
	}
	snap, err := DecodeSnapshot(payload)
	if err == nil && (snap.SceneIndex < 0 || snap.SceneIndex > s.script.Len()) {
		err = fmt.Errorf("%w: scene index %d out of range", ErrSaveCorrupt, snap.SceneIndex)
	}
	if err != nil {
		s.logger.Warn("save data rejected", "session_id", s.id, "slot", s.slot, "error", err)
		s.presenter.Notify("save data could not be read")
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = snap.State
	s.history = snap.History
	s.auto = false
	s.logger.Info("session restored", "session_id", s.id, "slot", s.slot, "scene_index", snap.SceneIndex)
	s.enterLocked(snap.SceneIndex, false)
	return nil
}

// Stop cancels all pending timers and invalidates in-flight callbacks. The
// session keeps its state and can be resumed with Start or Load.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sched.CancelAll()
	s.epoch++
	s.gateOpen = false
}

// Settings returns the reader preferences.
func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Settings
}

// UpdateSettings replaces the reader preferences.
func (s *Session) UpdateSettings(settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Settings = settings
}

func (s *Session) advanceLocked() {
	s.enterLocked(s.index+1, true)
}

// enterLocked moves the cursor to idx and dispatches on the row's kind.
// record is false when resuming from a snapshot, where visited scenes and
// history must stay exactly as saved.
func (s *Session) enterLocked(idx int, record bool) {
	s.sched.CancelAll()
	s.epoch++
	s.gateOpen = false
	s.options = nil

	if idx >= s.script.Len() {
		s.returnToTitleLocked()
		return
	}

	s.index = idx
	row := s.script.Row(idx)
	s.game.CurrentSceneID = row.SceneID
	if record {
		s.game.VisitedScenes = append(s.game.VisitedScenes, row.SceneID)
	}
	epoch := s.epoch

	switch row.Kind {
	case scenario.KindTitle:
		s.state = StateTitleCard
		s.presenter.ShowTitleCard(row.Text)
		if record {
			s.appendHistoryLocked("", row.Text)
		}
		s.sched.Schedule(TimerTitleAdvance, TitleCardDelay, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.epoch != epoch {
				return
			}
			s.advanceLocked()
		})

	case scenario.KindChoice:
		s.state = StateChoice
		s.options = splitOptions(row.Text)
		s.presenter.ShowChoices(append([]string(nil), s.options...))
		if record {
			s.appendHistoryLocked("", choicePromptMarker)
		}

	default:
		if row.Kind == scenario.KindEnding {
			s.state = StateEnding
		} else {
			s.state = StateDialogue
		}
		text := truncateLines(row.Text, maxDialogueLines)
		s.presenter.ShowDialogue(row.Speaker, text)
		if record {
			s.appendHistoryLocked(row.Speaker, text)
		}
		s.sched.Schedule(TimerGate, ClickGateDelay, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if s.epoch != epoch {
				return
			}
			s.gateOpen = true
			if s.auto {
				s.scheduleAutoLocked(epoch)
			}
		})
	}
}

func (s *Session) scheduleAutoLocked(epoch uint64) {
	s.sched.Schedule(TimerAutoAdvance, AutoAdvanceDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.epoch != epoch || !s.auto || !s.gateOpen {
			return
		}
		s.advanceLocked()
	})
}

func (s *Session) returnToTitleLocked() {
	s.index = s.script.Len()
	s.state = StateTitleScreen
	s.auto = false
	s.logger.Info("end of content, returning to title", "session_id", s.id)
	s.presenter.ShowTitleScreen()
}

// appendHistoryLocked records one displayed unit of text. Blank text never
// produces an entry, so every displayed unit maps to at most one entry.
func (s *Session) appendHistoryLocked(speaker, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	s.history = append(s.history, HistoryEntry{Speaker: speaker, Text: text})
}

// splitOptions turns a choice row's text into option strings, one per
// non-blank line.
func splitOptions(text string) []string {
	var options []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			options = append(options, trimmed)
		}
	}
	return options
}

// truncateLines drops lines beyond max; it never wraps.
func truncateLines(text string, max int) string {
	lines := strings.Split(text, "\n")
	if len(lines) <= max {
		return text
	}
	return strings.Join(lines[:max], "\n")
}
