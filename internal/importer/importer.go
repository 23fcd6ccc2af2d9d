// Package importer orchestrates one campaign import run end to end:
// fetch, mapping resolution, extraction, validation, rule checking,
// assembly and persistence.
package importer

import (
	"context"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/promoops/campaigner/internal/alert"
	"github.com/promoops/campaigner/internal/assemble"
	"github.com/promoops/campaigner/internal/board"
	"github.com/promoops/campaigner/internal/configrule"
	"github.com/promoops/campaigner/internal/extract"
	"github.com/promoops/campaigner/internal/mapping"
	"github.com/promoops/campaigner/internal/store"
	"github.com/promoops/campaigner/internal/validate"
	"github.com/promoops/campaigner/pkg/types"
)

// RoundsGroupName is the fixed group on a campaign board that holds
// the round items. Theme, offer and configuration group names come
// from the campaign item itself.
const RoundsGroupName = "Rounds"

// Importer runs campaign imports. Safe for concurrent use; each run
// operates on its own snapshot and produces its own result.
type Importer struct {
	board        board.Source
	store        store.Store
	alerts       *alert.Dispatcher
	infraBoardID string
	logger       *slog.Logger
	now          func() time.Time
	tracer       trace.Tracer
	runs         metric.Int64Counter
}

// Option configures an Importer.
type Option func(*Importer)

// WithLogger sets the run logger.
func WithLogger(l *slog.Logger) Option {
	return func(i *Importer) { i.logger = l }
}

// WithClock fixes the "today" used by the date-window checks.
func WithClock(now func() time.Time) Option {
	return func(i *Importer) { i.now = now }
}

// New creates an Importer. alerts may be nil when no sinks are
// configured.
func New(src board.Source, st store.Store, alerts *alert.Dispatcher, infraBoardID string, opts ...Option) *Importer {
	i := &Importer{
		board:        src,
		store:        st,
		alerts:       alerts,
		infraBoardID: infraBoardID,
		logger:       slog.Default(),
		now:          time.Now,
		tracer:       otel.Tracer("campaigner/importer"),
	}
	for _, o := range opts {
		o(i)
	}
	runs, err := otel.Meter("campaigner/importer").Int64Counter(
		"campaigner.import.runs",
		metric.WithDescription("Completed import runs by outcome."),
	)
	if err == nil {
		i.runs = runs
	}
	return i
}

// Import executes one run for a webhook event and reports the outcome.
func (i *Importer) Import(ctx context.Context, event types.Event) types.Result[types.AssembledCampaign] {
	runID := ulid.Make().String()
	ctx, span := i.tracer.Start(ctx, "import",
		trace.WithAttributes(
			attribute.String("campaign.run_id", runID),
			attribute.String("campaign.board_id", event.BoardID),
			attribute.String("campaign.item_id", event.ItemID),
		))
	defer span.End()

	res := i.run(ctx, runID, event)
	i.finish(ctx, span, runID, event, res)
	return res
}

func (i *Importer) run(ctx context.Context, runID string, event types.Event) types.Result[types.AssembledCampaign] {
	// The infra snapshot and the campaign item are independent reads.
	var (
		snap *types.Snapshot
		item *types.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		snap, err = i.board.GetSnapshot(gctx, i.infraBoardID)
		return err
	})
	g.Go(func() error {
		var err error
		item, err = i.board.GetItem(gctx, event.ItemID)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.Faultf[types.AssembledCampaign]("fetching board data: %v", err)
	}

	table, err := mapping.Build(snap)
	if err != nil {
		return types.Faultf[types.AssembledCampaign]("resolving field mappings: %v", err)
	}
	ex := extract.New(table)

	fields, err := ex.Campaign(item)
	if err != nil {
		return types.Faultf[types.AssembledCampaign]("extracting campaign: %v", err)
	}
	campRes := validate.Campaign(fields, i.now())
	if !campRes.IsSuccess() {
		// A broken campaign aborts the run before any group fetch.
		return types.Recast[types.Campaign, types.AssembledCampaign](campRes)
	}
	camp := campRes.Data

	fetches := i.fetchGroups(ctx, event.BoardID, &camp)
	for _, f := range fetches {
		if f.err != nil {
			return types.Faultf[types.AssembledCampaign]("fetching group %q: %v", f.name, f.err)
		}
	}

	in, stageRes := i.processGroups(ex, &camp, fetches)
	if !stageRes.IsSuccess() {
		return types.Recast[struct{}, types.AssembledCampaign](stageRes)
	}

	out, err := assemble.Build(ctx, in, i.board)
	if err != nil {
		return types.Faultf[types.AssembledCampaign]("assembling campaign: %v", err)
	}

	rec := store.Record{
		RunID:      runID,
		BoardID:    event.BoardID,
		ItemID:     event.ItemID,
		ImportedAt: i.now().UTC(),
		Campaign:   out,
	}
	if err := i.store.PutCampaign(ctx, rec); err != nil {
		return types.Faultf[types.AssembledCampaign]("persisting campaign: %v", err)
	}
	return types.Success(out)
}

// groupFetch is one concurrent group read. A fetch with an empty name
// is skipped: the campaign does not use that group.
type groupFetch struct {
	name  string
	group *types.Group
	err   error
}

func (f *groupFetch) skipped() bool { return f.name == "" }

// fetchGroups reads the round, theme, offer and configuration groups
// concurrently. Every fetch runs to completion even when a sibling
// fails; the caller inspects the errors afterward.
func (i *Importer) fetchGroups(ctx context.Context, boardID string, camp *types.Campaign) []*groupFetch {
	fetches := []*groupFetch{
		{name: RoundsGroupName},
		{name: camp.ThemeGroup},
		{name: camp.OfferGroup},
		{name: camp.ConfigGroup},
	}

	var g errgroup.Group
	for _, f := range fetches {
		if f.skipped() {
			continue
		}
		g.Go(func() error {
			f.group, f.err = i.board.GetGroup(ctx, boardID, f.name)
			return nil
		})
	}
	_ = g.Wait()
	return fetches
}

// processGroups extracts and validates every fetched group. Stage
// violations aggregate across stages; a Fault from any stage wins.
func (i *Importer) processGroups(ex *extract.Extractor, camp *types.Campaign, fetches []*groupFetch) (assemble.Input, types.Result[struct{}]) {
	in := assemble.Input{Campaign: *camp}
	var errs []types.FieldError

	roundsRaw, err := ex.Rounds(fetches[0].group)
	if err != nil {
		return in, types.Faultf[struct{}]("extracting rounds: %v", err)
	}
	roundsRes := validate.Rounds(roundsRaw, camp.OneTime)
	errs = append(errs, roundsRes.Errors...)
	in.Rounds = roundsRes.Data

	if f := fetches[1]; !f.skipped() {
		raw, err := ex.ThemeParams(f.group, camp.Segments)
		if err != nil {
			return in, types.Faultf[struct{}]("extracting theme parameters: %v", err)
		}
		themeRes := validate.ThemeParams(raw)
		errs = append(errs, themeRes.Errors...)
		in.Params = themeRes.Data
	}

	if f := fetches[2]; !f.skipped() {
		raw, err := ex.Offers(f.group, camp.Segments)
		if err != nil {
			return in, types.Faultf[struct{}]("extracting offers: %v", err)
		}
		offerRes := validate.Offers(raw)
		errs = append(errs, offerRes.Errors...)
		in.Offers = offerRes.Data
	}

	if f := fetches[3]; !f.skipped() {
		raw, err := ex.Configs(f.group, camp.Segments)
		if err != nil {
			return in, types.Faultf[struct{}]("extracting configuration items: %v", err)
		}
		// Rule checking needs validated round names; when the round
		// stage failed the run is discarded anyway.
		if roundsRes.IsSuccess() {
			names := make([]string, 0, len(in.Rounds))
			for _, r := range in.Rounds {
				names = append(names, r.Name)
			}
			configRes := configrule.Validate(raw, names)
			errs = append(errs, configRes.Errors...)
			in.Configs = configRes.Data
		}
	}

	if len(errs) > 0 {
		return in, types.Failure[struct{}](errs)
	}
	return in, types.Success(struct{}{})
}

func (i *Importer) finish(ctx context.Context, span trace.Span, runID string, event types.Event, res types.Result[types.AssembledCampaign]) {
	if i.runs != nil {
		i.runs.Add(ctx, 1, metric.WithAttributes(
			attribute.String("outcome", string(res.Outcome)),
		))
	}
	span.SetAttributes(attribute.String("campaign.outcome", string(res.Outcome)))

	log := i.logger.With("run_id", runID, "board_id", event.BoardID, "item_id", event.ItemID)
	switch {
	case res.IsSuccess():
		log.Info("campaign imported", "rounds", len(res.Data.Rounds))
	case res.IsFailure():
		log.Warn("campaign import failed validation", "violations", len(res.Errors))
		i.alert(ctx, runID, event, types.Alert{
			Level:   types.AlertLevelWarning,
			Message: "campaign import failed validation",
			Details: map[string]interface{}{"violations": res.Errors},
		})
	default:
		log.Error("campaign import fault", "fault", res.Fault)
		i.alert(ctx, runID, event, types.Alert{
			Level:   types.AlertLevelError,
			Message: res.Fault,
		})
	}
}

func (i *Importer) alert(ctx context.Context, runID string, event types.Event, a types.Alert) {
	if i.alerts == nil {
		return
	}
	a.RunID = runID
	a.BoardID = event.BoardID
	a.ItemID = event.ItemID
	a.Timestamp = i.now().UTC()
	i.alerts.Dispatch(ctx, a)
}
