package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"luminas/internal/playback"
	"luminas/internal/savestore"
	"luminas/internal/scenario"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	var slot string

	cmd := &cobra.Command{
		Use:   "play [script.csv]",
		Short: "Play a scenario script in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			csvName := "scenario.csv"
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				csvName = strings.TrimSpace(args[0])
			}

			script, err := scenario.Load(filepath.Join(cfg.Paths.InputDir, csvName))
			if err != nil {
				return err
			}

			saves, err := savestore.Open(cfg.SaveDBPath())
			if err != nil {
				return err
			}
			defer saves.Close()

			return runPlayer(cmd, script, saves, strings.TrimSpace(slot))
		},
	}

	cmd.Flags().StringVar(&slot, "slot", playback.DefaultSaveSlot, "Save slot used by save and load")
	return cmd
}

func runPlayer(cmd *cobra.Command, script *scenario.Script, saves *savestore.Store, slot string) error {
	out := cmd.OutOrStdout()
	presenter := &terminalPresenter{out: out}

	sess := playback.NewSession(script, playback.Options{
		Presenter: presenter,
		Saves:     saves,
		SaveSlot:  slot,
	})
	defer sess.Stop()

	fmt.Fprintln(out, "Commands: enter=advance  1-9=choose  a=auto  h=history  s=save  l=load  q=quit")
	sess.Start()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "q":
			return nil
		case line == "":
			if sess.State() == playback.StateTitleScreen {
				sess.Start()
				continue
			}
			sess.Advance()
		case line == "a":
			sess.SetAuto(!sess.Auto())
			fmt.Fprintf(out, "[auto %s]\n", onOff(sess.Auto()))
		case line == "h":
			printHistory(out, sess.History())
		case line == "s":
			if err := sess.Save(cmd.Context()); err != nil {
				fmt.Fprintf(out, "[save failed: %v]\n", err)
			}
		case line == "l":
			if err := sess.Load(cmd.Context()); err != nil && !errors.Is(err, playback.ErrNoSave) {
				fmt.Fprintf(out, "[load failed: %v]\n", err)
			}
		default:
			if n, err := strconv.Atoi(line); err == nil {
				if err := sess.Select(n - 1); err != nil {
					fmt.Fprintf(out, "[%v]\n", err)
				}
				continue
			}
			fmt.Fprintf(out, "[unknown command %q]\n", line)
		}
	}
	return scanner.Err()
}

func printHistory(out io.Writer, entries []playback.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "[history empty]")
		return
	}
	for _, entry := range entries {
		if entry.Speaker != "" {
			fmt.Fprintf(out, "  %s: %s\n", entry.Speaker, strings.ReplaceAll(entry.Text, "\n", " "))
			continue
		}
		fmt.Fprintf(out, "  %s\n", strings.ReplaceAll(entry.Text, "\n", " "))
	}
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}

// terminalPresenter renders session output as plain lines. Session timers
// fire on background goroutines, so writes are serialized.
type terminalPresenter struct {
	mu  sync.Mutex
	out io.Writer
}

func (p *terminalPresenter) ShowTitleCard(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "\n=== %s ===\n", strings.ReplaceAll(text, "\n", " "))
}

func (p *terminalPresenter) ShowDialogue(speaker, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out)
	if speaker != "" {
		fmt.Fprintf(p.out, "%s\n", speaker)
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(p.out, "  %s\n", line)
	}
}

func (p *terminalPresenter) ShowChoices(options []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out)
	for i, option := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, option)
	}
	fmt.Fprint(p.out, "choose> ")
}

func (p *terminalPresenter) ShowTitleScreen() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, "\n--- title screen (enter to start, l to load, q to quit) ---")
}

func (p *terminalPresenter) Notify(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "[%s]\n", message)
}

var _ playback.Presenter = (*terminalPresenter)(nil)
