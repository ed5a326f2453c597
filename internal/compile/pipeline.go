package compile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"luminas/internal/assets"
	"luminas/internal/bundle"
	"luminas/internal/config"
	"luminas/internal/logging"
	"luminas/internal/scenario"
)

// lockFileName guards the output directory against concurrent builds.
const lockFileName = ".luminas-build.lock"

// ErrBuildLocked reports that another build currently holds the output lock.
var ErrBuildLocked = errors.New("another build is in progress")

// ErrUnresolvedAssets is returned in strict mode when any referenced asset
// cannot be located.
var ErrUnresolvedAssets = errors.New("unresolved asset references")

// Report summarizes one completed build.
type Report struct {
	BuildID      string
	ScriptPath   string
	Rows         int
	Assets       int
	Unresolved   []string
	ArtifactPath string
	ArtifactSize int64
	Elapsed      time.Duration
}

// Pipeline compiles scenario scripts into artifacts.
type Pipeline struct {
	cfg    *config.Config
	logger *slog.Logger
}

// New returns a pipeline over the given configuration. A nil logger
// discards output.
func New(cfg *config.Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// Compile builds csvName from the input directory into the configured
// artifact and returns its path. Fatal errors (missing script, undecodable
// encoding, unwritable artifact) abort with no partial artifact written;
// unresolved assets only warn unless strict mode is on.
func (p *Pipeline) Compile(ctx context.Context, csvName string) (*Report, error) {
	start := time.Now()
	report := &Report{
		BuildID:    uuid.NewString(),
		ScriptPath: filepath.Join(p.cfg.Paths.InputDir, csvName),
	}

	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	lock := flock.New(filepath.Join(p.cfg.Paths.OutputDir, lockFileName))
	locked, err := lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return nil, fmt.Errorf("acquire build lock: %w", err)
	}
	if !locked {
		return nil, ErrBuildLocked
	}
	defer func() {
		_ = lock.Unlock()
	}()

	p.logger.Info("build started",
		"build_id", report.BuildID, "script", report.ScriptPath)

	script, err := scenario.Load(report.ScriptPath)
	if err != nil {
		return nil, err
	}
	report.Rows = script.Len()
	p.logger.Info("script loaded", "build_id", report.BuildID, "rows", report.Rows)

	game, found, err := config.LoadGameOverrides(p.cfg.Paths.InputDir, p.cfg.Game)
	if err != nil {
		p.logger.Warn("game config unreadable, using defaults",
			"build_id", report.BuildID, "error", err)
		game = p.cfg.Game
	} else if !found {
		p.logger.Debug("no game config override in input directory", "build_id", report.BuildID)
	}

	assetBundle, unresolved := p.collectAssets(script, game)
	report.Assets = assetBundle.Len()
	report.Unresolved = unresolved
	for _, name := range unresolved {
		p.logger.Warn("asset unresolved, slot will render empty",
			"build_id", report.BuildID, "asset", name)
	}
	if p.cfg.Build.StrictAssets && len(unresolved) > 0 {
		return nil, fmt.Errorf("%w: %d reference(s), first is %q",
			ErrUnresolvedAssets, len(unresolved), unresolved[0])
	}

	artifactPath := filepath.Join(p.cfg.Paths.OutputDir, p.cfg.Build.ArtifactName)
	b := bundle.Assemble(script, assetBundle, game)
	if err := b.WriteArtifact(artifactPath); err != nil {
		return nil, err
	}
	report.ArtifactPath = artifactPath
	if info, err := os.Stat(artifactPath); err == nil {
		report.ArtifactSize = info.Size()
	}
	report.Elapsed = time.Since(start)

	p.logger.Info("build finished",
		"build_id", report.BuildID,
		"artifact", artifactPath,
		"assets", report.Assets,
		"unresolved", len(unresolved),
		"elapsed", report.Elapsed)
	return report, nil
}

// collectAssets resolves every referenced name once, in first-reference
// order: backgrounds across rows, then the title background, then the three
// portrait slots across rows.
func (p *Pipeline) collectAssets(script *scenario.Script, game config.Game) (*assets.Bundle, []string) {
	collector := assets.NewCollector()
	bgDir := p.cfg.BackgroundsDir()
	charDir := p.cfg.CharactersDir()

	for _, row := range script.Rows() {
		collector.Add(bgDir, row.Background)
	}
	collector.Add(bgDir, game.TitleBackground)
	for _, row := range script.Rows() {
		collector.Add(charDir, row.PortraitCenter)
		collector.Add(charDir, row.PortraitLeft)
		collector.Add(charDir, row.PortraitRight)
	}

	return collector.Bundle(), collector.Unresolved()
}
