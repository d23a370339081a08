// Package pipeline runs one generation: it discovers the configured SVG files,
// resolves their names, validates them, decides which artifacts to emit and
// writes those artifacts concurrently.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ideamans/iconforge/pkg/config"
	"github.com/ideamans/iconforge/pkg/discovery"
	"github.com/ideamans/iconforge/pkg/emitter"
	"github.com/ideamans/iconforge/pkg/icon"
	"github.com/ideamans/iconforge/pkg/output"
	"github.com/ideamans/iconforge/pkg/policy"
	"github.com/ideamans/iconforge/pkg/shared/logging"
)

// Pipeline generates icon artifacts for one configuration
type Pipeline struct {
	cfg    *config.Config
	logger logging.Logger
	fsys   fs.FS
	writer output.Writer
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithFS reads sources from fsys instead of the project root
func WithFS(fsys fs.FS) Option {
	return func(p *Pipeline) {
		p.fsys = fsys
	}
}

// WithWriter writes artifacts through w instead of the project root
func WithWriter(w output.Writer) Option {
	return func(p *Pipeline) {
		p.writer = w
	}
}

// New creates a Pipeline. Sources are read from and artifacts written below
// cfg.Root unless overridden by options.
func New(cfg *config.Config, logger logging.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		cfg:    cfg,
		logger: logger.WithModule("pipeline"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.fsys == nil {
		p.fsys = os.DirFS(cfg.Root)
	}
	if p.writer == nil {
		p.writer = output.NewFSWriter(cfg.Root)
	}
	return p
}

// Plan is everything decided before the first write
type Plan struct {
	Matches  []discovery.Match
	Groups   []icon.GroupEntry
	Decision policy.Decision
	Emitters []emitter.ComponentEmitter
}

// Plan discovers, names and validates the icons and evaluates the inclusion
// policy. Any error here means nothing may be written.
func (p *Pipeline) Plan() (*Plan, error) {
	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	decision, err := p.cfg.Decision()
	if err != nil {
		return nil, err
	}

	matches, err := discovery.Discover(p.fsys, p.cfg.InputPaths)
	if err != nil {
		return nil, err
	}

	groups := icon.ResolveGroups(discovery.PathLists(matches))
	if err := icon.Validate(groups); err != nil {
		return nil, err
	}

	return &Plan{
		Matches:  matches,
		Groups:   groups,
		Decision: decision,
		Emitters: emitter.ForDecision(decision),
	}, nil
}

// Result summarizes a run
type Result struct {
	Plan         *Plan
	Written      []string          // paths relative to the project root, sorted
	Descriptions map[string]string // written path to what the artifact is
	Failed       []*ArtifactError  // sorted by path
	Skipped      int               // artifacts never attempted after cancellation
}

// ArtifactError is a failed directory creation or file write
type ArtifactError struct {
	Class emitter.Class
	Path  string
	Err   error
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Class, e.Path, e.Err)
}

func (e *ArtifactError) Unwrap() error {
	return e.Err
}

// task renders and writes one artifact
type task struct {
	class       emitter.Class
	path        string // relative to the project root
	description string
	render      func() (string, error)
}

// Run executes the whole generation. Planning errors are returned before
// anything is written. Write failures do not stop the run unless fail_fast
// is set; they are all returned, joined, alongside the Result.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	p.logger.Info("Generating icon components", "output", p.cfg.OutputPath)

	plan, err := p.Plan()
	if err != nil {
		return nil, err
	}

	p.logger.Info(fmt.Sprintf("Converting %d files in %d directories", icon.CountFiles(plan.Groups), len(plan.Groups)))
	p.logger.Debug("Inclusion decided", "decision", plan.Decision.String())

	tasks, err := p.tasks(plan)
	if err != nil {
		return nil, err
	}

	progress := newProgress(p.logger, tasks)
	if err := ctx.Err(); err != nil {
		for range tasks {
			progress.skip()
		}
		return progress.result(plan), err
	}
	blocked := p.ensureDirs(plan)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())

	for _, t := range tasks {
		if dirErr := blocked.lookup(path.Dir(t.path)); dirErr != nil {
			progress.abandon(t, dirErr)
			continue
		}
		if gctx.Err() != nil {
			progress.skip()
			continue
		}

		t := t // per-iteration copy (go 1.21 loop semantics)
		g.Go(func() error {
			if gctx.Err() != nil {
				progress.skip()
				return nil
			}
			if err := p.execute(t); err != nil {
				progress.fail(t, err)
				if p.cfg.FailFast {
					return err
				}
				return nil
			}
			progress.succeed(t)
			return nil
		})
	}
	_ = g.Wait()

	result := progress.result(plan)
	errs := make([]error, 0, len(result.Failed)+1)
	for _, f := range result.Failed {
		errs = append(errs, f)
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return result, errors.Join(errs...)
}

func (p *Pipeline) concurrency() int {
	if p.cfg.Concurrency > 0 {
		return p.cfg.Concurrency
	}
	return config.DefaultConcurrency
}

func (p *Pipeline) options() emitter.Options {
	return emitter.Options{
		ImportBase: emitter.ImportBase(p.cfg.OutputPath, p.cfg.ImportAlias.Source, p.cfg.ImportAlias.Alias),
		PublicDir:  p.cfg.PublicDir,
	}
}

// tasks lists every artifact of the plan in emission order. Aggregators and
// the stylesheet are rendered here; per-icon files read their source when
// executed.
func (p *Pipeline) tasks(plan *Plan) ([]task, error) {
	outDir := p.cfg.OutputDir()
	static := func(a emitter.Artifact) task {
		return task{
			class:       a.Class,
			path:        path.Join(outDir, a.RelPath),
			description: a.Description,
			render:      func() (string, error) { return a.Content, nil },
		}
	}

	tasks := []task{static(emitter.TypeUnion(plan.Groups))}

	if plan.Decision.Stylesheet {
		tasks = append(tasks, static(emitter.StylesheetModule(plan.Groups, p.cfg.PublicDir)))
	}

	for _, e := range plan.Emitters {
		for _, g := range plan.Groups {
			for _, f := range g.Files {
				tasks = append(tasks, p.iconTask(e, g, f))
			}
		}

		aggregator, err := e.Aggregator(plan.Groups, p.options())
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, static(aggregator))
	}

	return tasks, nil
}

func (p *Pipeline) iconTask(e emitter.ComponentEmitter, g icon.GroupEntry, f icon.FileEntry) task {
	// The artifact path does not depend on the markup
	probe := e.IconFile(g, f, "")
	return task{
		class:       probe.Class,
		path:        path.Join(p.cfg.OutputDir(), probe.RelPath),
		description: probe.Description,
		render: func() (string, error) {
			data, err := fs.ReadFile(p.fsys, f.Path)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", f.Path, err)
			}
			return e.IconFile(g, f, string(data)).Content, nil
		},
	}
}

func (p *Pipeline) execute(t task) error {
	content, err := t.render()
	if err != nil {
		return err
	}
	return p.writer.WriteFile(t.path, []byte(content))
}

// blockedDirs remembers directories that could not be created
type blockedDirs map[string]error

// lookup returns the error of dir or its nearest failed ancestor, or nil
func (b blockedDirs) lookup(dir string) error {
	for d := path.Clean(dir); ; d = path.Dir(d) {
		if err, ok := b[d]; ok {
			return err
		}
		if d == "." || d == "/" {
			return nil
		}
	}
}

// ensureDirs creates the output root and every per-group subfolder before
// any file is scheduled.
func (p *Pipeline) ensureDirs(plan *Plan) blockedDirs {
	outDir := p.cfg.OutputDir()
	dirs := []string{outDir}
	for _, e := range plan.Emitters {
		for _, d := range emitter.Directories(e, plan.Groups) {
			dirs = append(dirs, path.Join(outDir, d))
		}
	}

	blocked := blockedDirs{}
	seen := make(map[string]bool, len(dirs))
	for _, dir := range dirs {
		if seen[dir] {
			continue
		}
		seen[dir] = true
		if blocked.lookup(dir) != nil {
			continue
		}
		if err := p.writer.EnsureDir(dir); err != nil {
			blocked[dir] = err
			p.logger.Error("Failed to create directory", "path", dir, "error", err)
			continue
		}
		p.logger.Debug("Directory ready", "path", dir)
	}
	return blocked
}

// progress tracks the outcome of every task and logs per-class success
type progress struct {
	logger logging.Logger

	mu           sync.Mutex
	total        map[emitter.Class]int
	succeeded    map[emitter.Class]int
	written      []string
	descriptions map[string]string
	failed    []*ArtifactError
	skipped   int
}

func newProgress(logger logging.Logger, tasks []task) *progress {
	r := &progress{
		logger:       logger,
		total:        make(map[emitter.Class]int),
		succeeded:    make(map[emitter.Class]int),
		descriptions: make(map[string]string),
	}
	for _, t := range tasks {
		r.total[t.class]++
	}
	return r
}

func (r *progress) succeed(t task) {
	r.mu.Lock()
	r.written = append(r.written, t.path)
	r.descriptions[t.path] = t.description
	r.succeeded[t.class]++
	done := r.succeeded[t.class] == r.total[t.class]
	r.mu.Unlock()

	r.logger.Debug("Artifact written", "path", t.path, "artifact", t.description)
	if done {
		r.logger.Info("✓ " + t.class.SuccessMessage())
	}
}

func (r *progress) fail(t task, err error) {
	r.abandon(t, err)
	r.logger.Error("Failed to write artifact", "path", t.path, "error", err)
}

// abandon records a failure that was not attempted, so nothing is logged
func (r *progress) abandon(t task, err error) {
	r.mu.Lock()
	r.failed = append(r.failed, &ArtifactError{Class: t.class, Path: t.path, Err: err})
	r.mu.Unlock()
}

func (r *progress) skip() {
	r.mu.Lock()
	r.skipped++
	r.mu.Unlock()
}

func (r *progress) result(plan *Plan) *Result {
	r.mu.Lock()
	defer r.mu.Unlock()

	sort.Strings(r.written)
	sort.Slice(r.failed, func(i, j int) bool { return r.failed[i].Path < r.failed[j].Path })

	return &Result{
		Plan:         plan,
		Written:      r.written,
		Descriptions: r.descriptions,
		Failed:       r.failed,
		Skipped:      r.skipped,
	}
}
