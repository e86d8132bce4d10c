package inspect

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/deps/manifests"
	"github.com/matzehuels/depscope/pkg/errors"
	"github.com/matzehuels/depscope/pkg/integrations/github"
	"github.com/matzehuels/depscope/pkg/observability"
)

// Source is the code-hosting side of a run. *github.Client implements it.
type Source interface {
	FindManifest(ctx context.Context, owner, repo string, match func(name string) bool) (*github.ContentItem, error)
	Download(ctx context.Context, item *github.ContentItem) (string, error)
	FetchAlerts(ctx context.Context, owner, repo string) (*github.AlertsResult, error)
}

// Runner executes inspection runs: fetch manifest, parse, resolve latest
// versions, fetch alerts, join.
//
// The Runner holds no per-run state. Multiple goroutines can safely call Run
// concurrently.
type Runner struct {
	Source     Source
	Registries deps.Registries
	Logger     *log.Logger

	// Progress, when set, is called on every state change of a run.
	Progress func(State)
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(src Source, regs deps.Registries, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Source: src, Registries: regs, Logger: logger}
}

type run struct {
	id    string
	state State
	r     *Runner
	ctx   context.Context
}

func (x *run) transition(next State) {
	if !x.state.CanTransition(next) {
		x.r.Logger.Warn("invalid state transition", "run", x.id, "from", x.state, "to", next)
		return
	}
	x.r.Logger.Debug("state", "run", x.id, "from", x.state, "to", next)
	x.state = next
	observability.Inspect().OnStateChange(x.ctx, x.id, string(next))
	if x.r.Progress != nil {
		x.r.Progress(next)
	}
}

// Run inspects the repository at repoURL.
//
// Errors carry a code: INVALID_INPUT for a malformed URL (before any
// request), UNSUPPORTED_FORMAT when no manifest is found, PARSE_ERROR for a
// malformed manifest, LOOKUP_FAILURE for failed contents or alerts requests.
// Version lookups never fail a run; they degrade to "Unknown".
func (r *Runner) Run(ctx context.Context, repoURL string) (res *Result, err error) {
	start := time.Now()
	x := &run{id: uuid.NewString(), state: StateIdle, r: r, ctx: ctx}
	res = &Result{RunID: x.id}

	defer func() {
		elapsed := time.Since(start)
		if err != nil {
			x.transition(StateFailed)
			r.Logger.Debug("run failed", "run", x.id, "error", err)
			observability.Inspect().OnRunComplete(ctx, x.id, res.FileType, 0, 0, elapsed, err)
			res = nil
			return
		}
		res.Duration = elapsed
		x.transition(StateDone)
		observability.Inspect().OnRunComplete(ctx, x.id, res.FileType, len(res.Dependencies), len(res.Vulnerable()), elapsed, nil)
	}()

	owner, repo, err := github.ParseRepoURL(repoURL)
	if err != nil {
		return res, err
	}
	res.Owner, res.Repo = owner, repo

	x.transition(StateLoadingManifest)
	parser, content, err := r.loadManifest(ctx, owner, repo)
	if err != nil {
		return res, err
	}
	fileType := parser.Type()
	res.FileType = fileType

	tokens, err := parser.Parse(content)
	if err != nil {
		return res, err
	}
	list := deps.ToDependencies(parser, tokens)
	eco, err := manifests.EcosystemFor(fileType)
	if err != nil {
		return res, err
	}
	res.Ecosystem = eco
	r.Logger.Info("parsed manifest", "repo", res.Repository(), "file", fileType, "deps", len(list))

	x.transition(StateLoadingEnrichment)
	enrichStart := time.Now()
	list = r.Enrich(ctx, list, eco)
	r.Logger.Info("resolved versions", "deps", len(list), "duration", time.Since(enrichStart))

	alerts, err := r.Source.FetchAlerts(ctx, owner, repo)
	if err != nil {
		return res, errors.Wrap(errors.ErrCodeLookupFailure, err, "Failed to fetch vulnerabilities")
	}
	res.AlertsDisabled = alerts.Disabled
	res.AlertsMessage = alerts.Message
	if alerts.Disabled {
		r.Logger.Warn(alerts.Message, "repo", res.Repository())
	}

	res.Dependencies = Join(list, alerts.Alerts)
	for i := range res.Dependencies {
		d := &res.Dependencies[i]
		d.Outdated = deps.IsOutdated(d.Version, d.LatestVersion)
	}
	return res, nil
}

// loadManifest picks the first root file a parser supports and downloads it.
func (r *Runner) loadManifest(ctx context.Context, owner, repo string) (deps.ManifestParser, string, error) {
	r.Logger.Debug("looking for manifest", "repo", owner+"/"+repo, "files", manifests.SupportedFiles())
	item, err := r.Source.FindManifest(ctx, owner, repo, manifests.Supported)
	if err != nil {
		if stderrors.Is(err, github.ErrNoManifest) {
			return nil, "", errors.Wrap(errors.ErrCodeUnsupportedFormat, err, "No dependency file found")
		}
		return nil, "", errors.Wrap(errors.ErrCodeLookupFailure, err, "Failed to list repository contents")
	}
	parser, err := manifests.Detect(item.Name)
	if err != nil {
		return nil, "", err
	}
	content, err := r.Source.Download(ctx, item)
	if err != nil {
		return nil, "", errors.Wrap(errors.ErrCodeLookupFailure, err, "Failed to download %s", item.Name)
	}
	return parser, content, nil
}

// Enrich resolves the latest version of every dependency concurrently, one
// goroutine per dependency. Each task writes only its own index, so the output
// order equals the input order. Failed lookups become "Unknown"; the input
// slice is not modified.
func (r *Runner) Enrich(ctx context.Context, list []deps.Dependency, eco deps.Ecosystem) []deps.Dependency {
	out := make([]deps.Dependency, len(list))
	copy(out, list)

	var g errgroup.Group
	for i := range out {
		g.Go(func() error {
			start := time.Now()
			v, err := r.Registries.Lookup(ctx, out[i].Name, eco)
			if err != nil {
				r.Logger.Debug("version lookup failed", "package", out[i].Name, "ecosystem", eco, "error", err)
			}
			observability.Inspect().OnVersionLookup(ctx, string(eco), err == nil, time.Since(start))
			out[i].LatestVersion = v
			return nil
		})
	}
	_ = g.Wait()
	return out
}
