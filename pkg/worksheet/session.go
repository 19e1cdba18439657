package worksheet

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/worksheets/pkg/aids"
	"github.com/matzehuels/worksheets/pkg/bond"
	"github.com/matzehuels/worksheets/pkg/errors"
	"github.com/matzehuels/worksheets/pkg/observability"
	"github.com/matzehuels/worksheets/pkg/surface"
)

// Tool is the name reported to observability hooks.
const Tool = "bonds"

// State is the lifecycle state of a Session.
type State int

const (
	StateIdle State = iota
	StateConfiguring
	StatePreviewing
	StateGenerating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConfiguring:
		return "configuring"
	case StatePreviewing:
		return "previewing"
	case StateGenerating:
		return "generating"
	}
	return "unknown"
}

// Busy is shown while a document is generated. Stop is always called once
// Start was, including when generation fails or panics.
type Busy interface {
	Start()
	Stop()
}

type noBusy struct{}

func (noBusy) Start() {}
func (noBusy) Stop()  {}

// Result describes a generated document.
type Result struct {
	RunID    string
	Problems []bond.Problem
	Pages    int
	Filename string
	Size     int
	Duration time.Duration
}

// Session holds one worksheet being edited: its validated configuration, the
// problem generator and the preview scene.
//
// Sessions are safe for concurrent use, but only one operation runs at a
// time. Calls made while a document is being generated fail with a BUSY
// error instead of waiting.
type Session struct {
	// DocumentOptions are passed to every document the session creates.
	DocumentOptions []surface.DocumentOption

	logger *log.Logger
	scene  *surface.Scene

	mu         sync.Mutex
	state      State
	configured bool
	cfg        Config
	notice     Notice
	preview    *bond.Generator // preview draws only; documents start from cfg.Seed
}

// NewSession creates an idle, unconfigured session.
func NewSession(logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{logger: logger, scene: surface.NewPreviewScene()}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Config returns the active configuration and whether Configure succeeded.
func (s *Session) Config() (Config, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg, s.configured
}

// Notice returns the adjustments made by the last successful Configure.
func (s *Session) Notice() Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}

// Scene returns the preview canvas. Read it only between operations.
func (s *Session) Scene() *surface.Scene { return s.scene }

// Configure validates f and makes it the active configuration. On error the
// previous configuration stays active. A zero seed is replaced by a random
// one, recorded in the returned Config so a run can be repeated.
func (s *Session) Configure(ctx context.Context, f Form) (Config, Notice, error) {
	if err := s.enter(StateConfiguring); err != nil {
		return Config{}, Notice{}, err
	}
	defer s.leave()

	cfg, n, err := f.Resolve()
	observability.Worksheet().OnConfigure(ctx, Tool, n.Adjusted(), err)
	if err != nil {
		return Config{}, n, err
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	if n.TenFrameIgnored {
		s.logger.Warn("ten frame aid is not supported, ignoring")
	}
	s.logger.Debug("configured worksheet",
		"range", fmt.Sprintf("%d-%d", cfg.Range.Min, cfg.Range.Max),
		"kinds", bond.KindNames(cfg.Kinds),
		"layout", cfg.Layout,
		"count", cfg.Count,
		"seed", cfg.Seed)

	s.mu.Lock()
	s.cfg, s.notice, s.configured = cfg, n, true
	s.preview = bond.NewGenerator(rand.NewPCG(cfg.Seed, ^cfg.Seed))
	s.mu.Unlock()
	return cfg, n, nil
}

// Preview draws one fresh problem onto the preview scene, replacing the
// previous diagram in place and clearing the old aids.
func (s *Session) Preview(ctx context.Context) (bond.Problem, error) {
	if err := s.enter(StatePreviewing); err != nil {
		return bond.Problem{}, err
	}
	defer s.leave()

	start := time.Now()
	cfg, gen, err := s.active()
	if err != nil {
		return bond.Problem{}, err
	}

	p := gen.Generate(cfg.Range, cfg.Kinds)
	region := s.scene.Region(0)
	pl, err := cfg.place(region, 0)
	if err == nil {
		s.scene.ClearAids()
		err = renderProblem(s.scene, p, region, cfg, previewLineStyle(), pl)
	}

	observability.Worksheet().OnPreview(ctx, p.Kind.String(), time.Since(start), err)
	return p, err
}

func previewLineStyle() aids.LineStyle {
	ls := aids.DefaultLineStyle
	ls.FixedWidth = PreviewLineWidth
	return ls
}

// Generate renders Count problems into a paginated document and writes it
// to w. The busy indicator runs for the whole call. The problems depend only
// on the configured seed, never on earlier previews.
func (s *Session) Generate(ctx context.Context, w io.Writer, busy Busy) (res *Result, err error) {
	if err := s.enter(StateGenerating); err != nil {
		return nil, err
	}
	defer s.leave()

	cfg, _, err := s.active()
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	notice := s.notice
	s.mu.Unlock()

	if busy == nil {
		busy = noBusy{}
	}
	busy.Start()
	defer busy.Stop()

	start := time.Now()
	runID := uuid.NewString()
	pages := 0
	hooks := observability.Worksheet()
	hooks.OnGenerateStart(ctx, Tool, cfg.Count)
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(errors.ErrCodeRender, fmt.Errorf("%v", r), "document backend failed")
			res = nil
		}
		hooks.OnGenerateComplete(ctx, Tool, pages, time.Since(start), err)
	}()

	logger := s.logger.With("run", runID)
	problems := bond.NewSeededGenerator(cfg.Seed).Batch(cfg.Range, cfg.Kinds, cfg.Count)
	doc := surface.NewDocument(cfg.Grid(), cfg.Header(), s.DocumentOptions...)
	if err := cfg.CheckPage(doc.PageSize()); err != nil {
		return nil, err
	}

	for i, p := range problems {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "generation interrupted")
		}
		if err := RenderProblem(doc, p, doc.Region(i), cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeRender, err, "render problem %d", i+1)
		}
	}

	var buf bytes.Buffer
	if err := doc.Close(&buf); err != nil {
		return nil, err
	}
	pages = doc.PageCount()

	n, err := w.Write(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDelivery, err, "write document").
			WithHint("check that the output directory exists and is writable, or pass -o - to write to stdout")
	}

	res = &Result{
		RunID:    runID,
		Problems: problems,
		Pages:    pages,
		Filename: cfg.Filename(notice),
		Size:     n,
		Duration: time.Since(start),
	}
	logger.Info("generated worksheet", "problems", len(problems), "pages", pages, "bytes", n, "duration", res.Duration)
	return res, nil
}

// enter moves an idle session into state. Anything but idle means another
// operation is in flight.
func (s *Session) enter(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return errors.New(errors.ErrCodeBusy, "cannot start %s while %s", state, s.state).
			WithHint("wait for the current worksheet to finish")
	}
	s.state = state
	return nil
}

func (s *Session) leave() {
	s.mu.Lock()
	s.state = StateIdle
	s.mu.Unlock()
}

func (s *Session) active() (Config, *bond.Generator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.configured {
		return Config{}, nil, errors.New(errors.ErrCodeInvalidConfig, "worksheet is not configured")
	}
	return s.cfg, s.preview, nil
}
