package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
)

var (
	ErrInvalidProjectID  = errors.New("invalid project id")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidAssessment = errors.New("invalid assessment")
	ErrProjectNotFound   = errors.New("project not found")
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrLinkNotFound      = errors.New("shareable link not found")
	ErrMalformedQuote    = errors.New("stored quote payload is malformed")
)

const (
	modifiedBySystem = "System"
	quoteDateLayout  = "January 2, 2006"
	quoteValidDays   = 30
)

// QuoteIDResult reports whether GetOrCreateQuoteID minted a new id.
type QuoteIDResult struct {
	QuoteID string
	Created bool
}

// SendResult carries the shareable token and the link built from it.
type SendResult struct {
	Token         string
	ShareableLink string
}

// Decision is a customer's accept/reject choice on a sent quote. Reason is
// retained only in logs, never on the persisted quote.
type Decision struct {
	QuoteID   string
	ProjectID string
	Accept    bool
	Reason    string
}

// IQuoteUseCase exposes quote generation and lifecycle operations.
type IQuoteUseCase interface {
	GenerateQuote(ctx context.Context, form entities.Assessment) (entities.Quote, error)
	GetOrCreateQuoteID(ctx context.Context, projectID string) (QuoteIDResult, error)
	GetCurrentQuote(ctx context.Context, quoteID string) (entities.Quote, error)
	ListVersions(ctx context.Context, quoteID string) ([]entities.QuoteVersion, error)
	ListQuotes(ctx context.Context, status string) ([]entities.QuoteVersion, error)
	SendQuote(ctx context.Context, quoteID, projectID string) (SendResult, error)
	ViewQuoteByToken(ctx context.Context, token string) (entities.Quote, error)
	SubmitDecision(ctx context.Context, decision Decision) (entities.QuoteStatus, error)
}

type QuoteUseCase struct {
	projects interfaces.IProjectRepository
	quotes   interfaces.IQuoteRepository
	config   interfaces.IConfigRepository
	specs    interfaces.IVehicleSpecRepository
	links    interfaces.ILinkStore
	baseURL  string
	logger   zerolog.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	projects interfaces.IProjectRepository,
	quotes interfaces.IQuoteRepository,
	config interfaces.IConfigRepository,
	specs interfaces.IVehicleSpecRepository,
	links interfaces.ILinkStore,
	baseURL string,
	logger zerolog.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{
		projects: projects,
		quotes:   quotes,
		config:   config,
		specs:    specs,
		links:    links,
		baseURL:  strings.TrimRight(baseURL, "/"),
		logger:   logger,
	}
}

// GenerateQuote prices an assessment and persists it as a new quote version.
// The quote id is stable per project: an existing id is reused, otherwise a
// fresh one is minted and written back to the project.
func (u *QuoteUseCase) GenerateQuote(ctx context.Context, form entities.Assessment) (entities.Quote, error) {
	if err := validateAssessment(&form); err != nil {
		return entities.Quote{}, err
	}

	// Project, config, and vehicle specs are independent reads.
	var (
		project entities.Project
		cfg     entities.CompanyConfig
		specs   map[string]entities.VehicleSpec
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		project, err = u.projects.GetByID(gctx, form.ProjectID)
		return err
	})
	g.Go(func() error {
		var err error
		cfg, err = u.config.Resolve(gctx)
		return err
	})
	g.Go(func() error {
		// Vehicle specs are best-effort enrichment; the quote still
		// generates without them.
		resolved, err := u.specs.Resolve(gctx)
		if err != nil {
			u.logger.Warn().Err(err).Msg("vehicle specs unavailable, quote will use the generic recommendation")
			resolved = map[string]entities.VehicleSpec{}
		}
		specs = resolved
		return nil
	})
	if err := g.Wait(); err != nil {
		return entities.Quote{}, err
	}
	if project.ID == "" {
		return entities.Quote{}, ErrProjectNotFound
	}

	quoteID := project.QuoteID
	if quoteID == "" {
		quoteID = newQuoteID()
		if err := u.projects.AssignQuoteID(ctx, project.ID, quoteID); err != nil {
			return entities.Quote{}, err
		}
	}

	quote := u.assembleQuote(form, cfg, specs, project, quoteID)

	if _, err := u.persistQuote(ctx, quote, true); err != nil {
		return entities.Quote{}, err
	}
	if _, err := u.projects.UpdateStatus(ctx, project.ID, entities.ProjectStatusQuoteDraft); err != nil {
		u.logger.Error().Err(err).
			Str("quote_id", quoteID).
			Str("project_id", project.ID).
			Msg("quote version saved but project status update failed; stores are inconsistent")
		return entities.Quote{}, err
	}
	return quote, nil
}

func validateAssessment(form *entities.Assessment) error {
	form.ProjectID = strings.TrimSpace(form.ProjectID)
	if form.ProjectID == "" {
		return fmt.Errorf("%w: project id is required", ErrInvalidAssessment)
	}
	if form.Distance < 0 {
		return fmt.Errorf("%w: distance must not be negative", ErrInvalidAssessment)
	}
	switch form.ConduitType {
	case entities.ConduitSurface, entities.ConduitConcealed, entities.ConduitUnderground:
	default:
		return fmt.Errorf("%w: unknown conduit type %q", ErrInvalidAssessment, form.ConduitType)
	}
	switch form.ChargerType {
	case entities.ChargerHardwired, entities.ChargerNEMA:
	default:
		return fmt.Errorf("%w: unknown charger type %q", ErrInvalidAssessment, form.ChargerType)
	}
	switch form.PanelAge {
	case entities.PanelAgeNew, entities.PanelAgeOld:
	default:
		return fmt.Errorf("%w: unknown panel age %q", ErrInvalidAssessment, form.PanelAge)
	}
	if form.LaborRate <= 0 {
		return fmt.Errorf("%w: labor rate must be positive", ErrInvalidAssessment)
	}
	if form.Markup < 0 {
		return fmt.Errorf("%w: markup must not be negative", ErrInvalidAssessment)
	}
	return nil
}

func (u *QuoteUseCase) assembleQuote(
	form entities.Assessment,
	cfg entities.CompanyConfig,
	specs map[string]entities.VehicleSpec,
	project entities.Project,
	quoteID string,
) entities.Quote {
	customer := entities.Customer{
		Name:    orNA(project.CustomerName),
		Email:   orNA(project.CustomerEmail),
		Phone:   orNA(project.CustomerPhone),
		Address: orNA(project.CustomerAddress),
	}

	var vehicle *entities.Vehicle
	if fullName := strings.TrimSpace(project.EVMake + " " + project.EVModel); fullName != "" {
		requirements := entities.DefaultChargerRecommendation
		if spec, ok := specs[fullName]; ok && spec.RecommendedCharger != "" {
			requirements = spec.RecommendedCharger
		}
		vehicle = &entities.Vehicle{
			Make:                 project.EVMake,
			Model:                project.EVModel,
			ChargingRequirements: requirements,
		}
	}

	installation := entities.Installation{
		Location:    InstallLocationLabel(form.InstallLocation),
		Distance:    form.Distance,
		ConduitType: ConduitTypeLabel(form.ConduitType),
		ChargerType: ChargerTypeLabel(form.ChargerType),
	}

	pricing := ComputePrice(form, cfg, project)

	financing := make([]entities.FinancingOption, 0, len(cfg.FinancingPlans))
	for _, plan := range cfg.FinancingPlans {
		financing = append(financing, entities.FinancingOption{
			Term:           plan.Term,
			MonthlyPayment: MonthlyPayment(pricing.Total, plan.APR, termMonths(plan.Term)),
			APR:            plan.APR,
		})
	}

	now := time.Now()
	return entities.Quote{
		QuoteID:          quoteID,
		ProjectID:        form.ProjectID,
		Date:             now.Format(quoteDateLayout),
		ValidUntil:       now.AddDate(0, 0, quoteValidDays).Format(quoteDateLayout),
		Customer:         customer,
		Vehicle:          vehicle,
		Installation:     installation,
		Pricing:          pricing,
		Rebates:          cfg.Rebates,
		FinancingOptions: financing,
		Status:           entities.QuoteStatusDraft,
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// termMonths reads the leading integer of a term label ("12 months" -> 12),
// falling back to 12 when the label has no leading digits.
func termMonths(term string) int {
	n := 0
	seen := false
	for _, r := range strings.TrimSpace(term) {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen || n == 0 {
		return 12
	}
	return n
}

// persistQuote writes an immutable version record. With isRevision the
// version number is max existing + 1; otherwise, or when no versions exist,
// numbering starts at 1.
func (u *QuoteUseCase) persistQuote(ctx context.Context, quote entities.Quote, isRevision bool) (entities.QuoteVersion, error) {
	version := 1
	if isRevision {
		versions, err := u.quotes.Versions(ctx, quote.QuoteID)
		if err != nil {
			return entities.QuoteVersion{}, err
		}
		maxVersion := 0
		for _, v := range versions {
			if v.Version > maxVersion {
				maxVersion = v.Version
			}
		}
		if maxVersion > 0 {
			version = maxVersion + 1
		}
	}
	return u.quotes.SaveVersion(ctx, quote, version, modifiedBySystem)
}

const quoteIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newQuoteID mints a globally unique quote id: a fixed prefix, the current
// millisecond timestamp, and a short random uppercase suffix.
func newQuoteID() string {
	suffix := make([]byte, 5)
	rand.Read(suffix)
	for i, b := range suffix {
		suffix[i] = quoteIDAlphabet[int(b)%len(quoteIDAlphabet)]
	}
	return fmt.Sprintf("EV-%d-%s", time.Now().UnixMilli(), suffix)
}

// GetOrCreateQuoteID is idempotent: a project that already carries a quote
// id gets it back unchanged, and only the first call ever persists one.
func (u *QuoteUseCase) GetOrCreateQuoteID(ctx context.Context, projectID string) (QuoteIDResult, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return QuoteIDResult{}, ErrInvalidProjectID
	}

	project, err := u.projects.GetByID(ctx, projectID)
	if err != nil {
		return QuoteIDResult{}, err
	}
	if project.ID == "" {
		return QuoteIDResult{}, ErrProjectNotFound
	}
	if project.QuoteID != "" {
		return QuoteIDResult{QuoteID: project.QuoteID, Created: false}, nil
	}

	quoteID := newQuoteID()
	if err := u.projects.AssignQuoteID(ctx, project.ID, quoteID); err != nil {
		return QuoteIDResult{}, err
	}
	return QuoteIDResult{QuoteID: quoteID, Created: true}, nil
}

// GetCurrentQuote returns the highest-version quote document for the id.
func (u *QuoteUseCase) GetCurrentQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	versions, err := u.quotes.Versions(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if len(versions) == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}

	current := versions[0]
	for _, v := range versions[1:] {
		if v.Version > current.Version {
			current = v
		}
	}
	if current.Quote == nil {
		return entities.Quote{}, fmt.Errorf("%w: quote %s version %d (record %s)", ErrMalformedQuote, quoteID, current.Version, current.RecordID)
	}
	return *current.Quote, nil
}

// ListVersions returns the full revision history, newest version first.
// Records with malformed payloads are included with a nil payload.
func (u *QuoteUseCase) ListVersions(ctx context.Context, quoteID string) ([]entities.QuoteVersion, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}

	versions, err := u.quotes.Versions(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Version > versions[j].Version
	})
	return versions, nil
}

// ListQuotes returns the latest version of every distinct quote id,
// optionally restricted by status. An empty filter or "All" means no filter.
func (u *QuoteUseCase) ListQuotes(ctx context.Context, status string) ([]entities.QuoteVersion, error) {
	var filter entities.QuoteStatus
	if status != "" && status != "All" {
		filter = entities.QuoteStatus(status)
	}

	records, err := u.quotes.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	latest := make(map[string]entities.QuoteVersion, len(records))
	for _, rec := range records {
		if existing, ok := latest[rec.QuoteID]; !ok || rec.Version > existing.Version {
			latest[rec.QuoteID] = rec
		}
	}

	quotes := make([]entities.QuoteVersion, 0, len(latest))
	for _, rec := range latest {
		quotes = append(quotes, rec)
	}
	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].DateCreated.After(quotes[j].DateCreated)
	})
	return quotes, nil
}

// SendQuote mints a shareable token and moves quote and project to Sent.
func (u *QuoteUseCase) SendQuote(ctx context.Context, quoteID, projectID string) (SendResult, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return SendResult{}, ErrInvalidQuoteID
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return SendResult{}, ErrInvalidProjectID
	}

	token, err := u.links.Put(ctx, quoteID)
	if err != nil {
		return SendResult{}, err
	}

	if err := u.transition(ctx, quoteID, projectID, entities.QuoteStatusSent, entities.ProjectStatusQuoteSent); err != nil {
		return SendResult{}, err
	}

	return SendResult{Token: token, ShareableLink: u.shareableLink(token)}, nil
}

// ViewQuoteByToken resolves a customer's shareable link to the current
// quote. The first view while the quote is Sent moves it to Viewed; any
// other current status (including Accepted/Rejected) is left untouched.
func (u *QuoteUseCase) ViewQuoteByToken(ctx context.Context, token string) (entities.Quote, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Quote{}, ErrLinkNotFound
	}

	quoteID, err := u.links.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, interfaces.ErrTokenNotFound) {
			return entities.Quote{}, ErrLinkNotFound
		}
		return entities.Quote{}, err
	}

	quote, err := u.GetCurrentQuote(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	quote.ShareableLink = u.shareableLink(token)

	project, err := u.projects.GetByID(ctx, quote.ProjectID)
	if err != nil {
		return entities.Quote{}, err
	}
	if project.ID != "" && project.Status == entities.ProjectStatusQuoteSent {
		if err := u.transition(ctx, quoteID, project.ID, entities.QuoteStatusViewed, entities.ProjectStatusQuoteViewed); err != nil {
			return entities.Quote{}, err
		}
		quote.Status = entities.QuoteStatusViewed
	}
	return quote, nil
}

// SubmitDecision records the customer's accept/reject choice on both the
// quote and the project. The free-text reason goes to the log only.
func (u *QuoteUseCase) SubmitDecision(ctx context.Context, decision Decision) (entities.QuoteStatus, error) {
	decision.QuoteID = strings.TrimSpace(decision.QuoteID)
	if decision.QuoteID == "" {
		return "", ErrInvalidQuoteID
	}
	decision.ProjectID = strings.TrimSpace(decision.ProjectID)
	if decision.ProjectID == "" {
		return "", ErrInvalidProjectID
	}

	quoteStatus := entities.QuoteStatusRejected
	projectStatus := entities.ProjectStatusRejected
	if decision.Accept {
		quoteStatus = entities.QuoteStatusAccepted
		projectStatus = entities.ProjectStatusAccepted
	}

	if err := u.transition(ctx, decision.QuoteID, decision.ProjectID, quoteStatus, projectStatus); err != nil {
		return "", err
	}

	event := u.logger.Info().
		Str("quote_id", decision.QuoteID).
		Str("project_id", decision.ProjectID).
		Str("decision", string(quoteStatus))
	if decision.Reason != "" {
		event = event.Str("reason", decision.Reason)
	}
	event.Msg("customer decision recorded")

	return quoteStatus, nil
}

// transition updates the project status and then the quote status. The two
// writes are not atomic; if the second fails after the first succeeded the
// stores have drifted and the error is logged loudly before propagating.
func (u *QuoteUseCase) transition(ctx context.Context, quoteID, projectID string, quoteStatus entities.QuoteStatus, projectStatus entities.ProjectStatus) error {
	if _, err := u.projects.UpdateStatus(ctx, projectID, projectStatus); err != nil {
		return err
	}
	if err := u.quotes.UpdateStatusByQuoteID(ctx, quoteID, quoteStatus); err != nil {
		u.logger.Error().Err(err).
			Str("quote_id", quoteID).
			Str("project_id", projectID).
			Str("quote_status", string(quoteStatus)).
			Str("project_status", string(projectStatus)).
			Msg("project status updated but quote status update failed; statuses have drifted")
		return err
	}
	return nil
}

func (u *QuoteUseCase) shareableLink(token string) string {
	return u.baseURL + "/quote/" + token
}
