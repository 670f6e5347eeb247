package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/gems85/bolt-quotes-proxy/internal/domain/entities"
	"github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces"
	mock_interfaces "github.com/gems85/bolt-quotes-proxy/internal/usecase/interfaces/mocks"
)

var quoteIDPattern = regexp.MustCompile(`^EV-\d+-[0-9A-Z]{5}$`)

type quoteMocks struct {
	projects *mock_interfaces.MockIProjectRepository
	quotes   *mock_interfaces.MockIQuoteRepository
	config   *mock_interfaces.MockIConfigRepository
	specs    *mock_interfaces.MockIVehicleSpecRepository
	links    *mock_interfaces.MockILinkStore
}

func newQuoteUseCaseForTest(t *testing.T) (*QuoteUseCase, quoteMocks) {
	ctrl := gomock.NewController(t)
	m := quoteMocks{
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		quotes:   mock_interfaces.NewMockIQuoteRepository(ctrl),
		config:   mock_interfaces.NewMockIConfigRepository(ctrl),
		specs:    mock_interfaces.NewMockIVehicleSpecRepository(ctrl),
		links:    mock_interfaces.NewMockILinkStore(ctrl),
	}
	uc := NewQuoteUseCase(m.projects, m.quotes, m.config, m.specs, m.links, "http://localhost:8080/", zerolog.Nop())
	return uc, m
}

func validAssessment() entities.Assessment {
	return entities.Assessment{
		ProjectID:      "rec123",
		Distance:       10,
		ConduitType:    entities.ConduitSurface,
		ChargerType:    entities.ChargerHardwired,
		PanelCapacity:  200,
		AvailableSlots: 2,
		PanelAge:       entities.PanelAgeNew,
		State:          "GA",
		LaborRate:      95,
		Markup:         20,
		PropertyType:   "residential",
	}
}

func TestQuoteUseCase_GenerateQuote(t *testing.T) {
	t.Run("invalid assessment skips all reads", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, "", zerolog.Nop())

		a := validAssessment()
		a.ProjectID = "   "
		if _, err := uc.GenerateQuote(context.Background(), a); !errors.Is(err, ErrInvalidAssessment) {
			t.Fatalf("expected ErrInvalidAssessment, got %v", err)
		}

		a = validAssessment()
		a.ConduitType = "tunnel"
		if _, err := uc.GenerateQuote(context.Background(), a); !errors.Is(err, ErrInvalidAssessment) {
			t.Fatalf("expected ErrInvalidAssessment, got %v", err)
		}

		a = validAssessment()
		a.LaborRate = 0
		if _, err := uc.GenerateQuote(context.Background(), a); !errors.Is(err, ErrInvalidAssessment) {
			t.Fatalf("expected ErrInvalidAssessment, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		m.projects.EXPECT().GetByID(gomock.Any(), "rec123").Return(entities.Project{}, nil)
		m.config.EXPECT().Resolve(gomock.Any()).Return(entities.DefaultCompanyConfig(), nil)
		m.specs.EXPECT().Resolve(gomock.Any()).Return(map[string]entities.VehicleSpec{}, nil)

		if _, err := uc.GenerateQuote(context.Background(), validAssessment()); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("reuses existing quote id and bumps version", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		project := entities.Project{
			ID:           "rec123",
			QuoteID:      "EV-1700000000000-AB12C",
			CustomerName: "Dana",
			Status:       entities.ProjectStatusQuoteSent,
		}
		m.projects.EXPECT().GetByID(gomock.Any(), "rec123").Return(project, nil)
		m.config.EXPECT().Resolve(gomock.Any()).Return(entities.DefaultCompanyConfig(), nil)
		m.specs.EXPECT().Resolve(gomock.Any()).Return(map[string]entities.VehicleSpec{}, nil)
		m.quotes.EXPECT().Versions(gomock.Any(), "EV-1700000000000-AB12C").Return([]entities.QuoteVersion{
			{Version: 1}, {Version: 2},
		}, nil)
		m.quotes.EXPECT().SaveVersion(gomock.Any(), gomock.AssignableToTypeOf(entities.Quote{}), 3, "System").DoAndReturn(
			func(_ context.Context, q entities.Quote, version int, _ string) (entities.QuoteVersion, error) {
				if q.QuoteID != "EV-1700000000000-AB12C" {
					t.Fatalf("unexpected quote id %q", q.QuoteID)
				}
				if q.Status != entities.QuoteStatusDraft {
					t.Fatalf("new versions must start as Draft, got %q", q.Status)
				}
				if q.Customer.Name != "Dana" {
					t.Fatalf("unexpected customer %+v", q.Customer)
				}
				return entities.QuoteVersion{QuoteID: q.QuoteID, Version: version}, nil
			},
		)
		m.projects.EXPECT().UpdateStatus(gomock.Any(), "rec123", entities.ProjectStatusQuoteDraft).Return(project, nil)

		quote, err := uc.GenerateQuote(context.Background(), validAssessment())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Vehicle != nil {
			t.Fatalf("expected no vehicle block, got %+v", quote.Vehicle)
		}
	})

	t.Run("mints quote id when project has none", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		project := entities.Project{ID: "rec123", EVMake: "Tesla", EVModel: "Model 3"}
		specs := map[string]entities.VehicleSpec{
			"Tesla Model 3": {RecommendedCharger: "48A Wall Connector"},
		}
		m.projects.EXPECT().GetByID(gomock.Any(), "rec123").Return(project, nil)
		m.config.EXPECT().Resolve(gomock.Any()).Return(entities.DefaultCompanyConfig(), nil)
		m.specs.EXPECT().Resolve(gomock.Any()).Return(specs, nil)

		var minted string
		m.projects.EXPECT().AssignQuoteID(gomock.Any(), "rec123", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, quoteID string) error {
				minted = quoteID
				return nil
			},
		)
		m.quotes.EXPECT().Versions(gomock.Any(), gomock.Any()).Return(nil, nil)
		m.quotes.EXPECT().SaveVersion(gomock.Any(), gomock.Any(), 1, "System").Return(entities.QuoteVersion{}, nil)
		m.projects.EXPECT().UpdateStatus(gomock.Any(), "rec123", entities.ProjectStatusQuoteDraft).Return(project, nil)

		quote, err := uc.GenerateQuote(context.Background(), validAssessment())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !quoteIDPattern.MatchString(minted) {
			t.Fatalf("minted id %q does not match pattern", minted)
		}
		if quote.QuoteID != minted {
			t.Fatalf("quote id %q != minted %q", quote.QuoteID, minted)
		}
		if quote.Vehicle == nil || quote.Vehicle.ChargingRequirements != "48A Wall Connector" {
			t.Fatalf("unexpected vehicle block %+v", quote.Vehicle)
		}
	})

	t.Run("spec lookup failure degrades to generic recommendation", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		project := entities.Project{ID: "rec123", QuoteID: "EV-1-AAAAA", EVMake: "Kia", EVModel: "EV6"}
		m.projects.EXPECT().GetByID(gomock.Any(), "rec123").Return(project, nil)
		m.config.EXPECT().Resolve(gomock.Any()).Return(entities.DefaultCompanyConfig(), nil)
		m.specs.EXPECT().Resolve(gomock.Any()).Return(nil, errors.New("specs table down"))
		m.quotes.EXPECT().Versions(gomock.Any(), "EV-1-AAAAA").Return(nil, nil)
		m.quotes.EXPECT().SaveVersion(gomock.Any(), gomock.Any(), 1, "System").Return(entities.QuoteVersion{}, nil)
		m.projects.EXPECT().UpdateStatus(gomock.Any(), "rec123", entities.ProjectStatusQuoteDraft).Return(project, nil)

		quote, err := uc.GenerateQuote(context.Background(), validAssessment())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Vehicle == nil || quote.Vehicle.ChargingRequirements != entities.DefaultChargerRecommendation {
			t.Fatalf("unexpected vehicle block %+v", quote.Vehicle)
		}
	})

	t.Run("status update failure propagates", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		project := entities.Project{ID: "rec123", QuoteID: "EV-1-AAAAA"}
		m.projects.EXPECT().GetByID(gomock.Any(), "rec123").Return(project, nil)
		m.config.EXPECT().Resolve(gomock.Any()).Return(entities.DefaultCompanyConfig(), nil)
		m.specs.EXPECT().Resolve(gomock.Any()).Return(map[string]entities.VehicleSpec{}, nil)
		m.quotes.EXPECT().Versions(gomock.Any(), "EV-1-AAAAA").Return(nil, nil)
		m.quotes.EXPECT().SaveVersion(gomock.Any(), gomock.Any(), 1, "System").Return(entities.QuoteVersion{}, nil)
		m.projects.EXPECT().UpdateStatus(gomock.Any(), "rec123", entities.ProjectStatusQuoteDraft).Return(entities.Project{}, errors.New("store down"))

		if _, err := uc.GenerateQuote(context.Background(), validAssessment()); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestQuoteUseCase_GetOrCreateQuoteID(t *testing.T) {
	t.Run("invalid project id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, "", zerolog.Nop())
		if _, err := uc.GetOrCreateQuoteID(context.Background(), "  "); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "recX").Return(entities.Project{}, nil)

		if _, err := uc.GetOrCreateQuoteID(context.Background(), "recX"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("existing id is returned untouched", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "rec123").Return(entities.Project{ID: "rec123", QuoteID: "EV-1-AAAAA"}, nil)

		res, err := uc.GetOrCreateQuoteID(context.Background(), "rec123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.QuoteID != "EV-1-AAAAA" || res.Created {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("mints and persists on first call", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)
		m.projects.EXPECT().GetByID(gomock.Any(), "rec123").Return(entities.Project{ID: "rec123"}, nil)

		var minted string
		m.projects.EXPECT().AssignQuoteID(gomock.Any(), "rec123", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, quoteID string) error {
				minted = quoteID
				return nil
			},
		)

		res, err := uc.GetOrCreateQuoteID(context.Background(), "rec123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Created || res.QuoteID != minted || !quoteIDPattern.MatchString(res.QuoteID) {
			t.Fatalf("unexpected result %+v", res)
		}
	})
}

func TestQuoteUseCase_GetCurrentQuote(t *testing.T) {
	t.Run("invalid quote id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, "", zerolog.Nop())
		if _, err := uc.GetCurrentQuote(context.Background(), " "); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("no versions", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)
		m.quotes.EXPECT().Versions(gomock.Any(), "EV-1-AAAAA").Return(nil, nil)

		if _, err := uc.GetCurrentQuote(context.Background(), "EV-1-AAAAA"); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("picks the highest version", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)
		m.quotes.EXPECT().Versions(gomock.Any(), "EV-1-AAAAA").Return([]entities.QuoteVersion{
			{Version: 2, Quote: &entities.Quote{QuoteID: "EV-1-AAAAA", Status: entities.QuoteStatusSent}},
			{Version: 3, Quote: &entities.Quote{QuoteID: "EV-1-AAAAA", Status: entities.QuoteStatusDraft}},
			{Version: 1, Quote: &entities.Quote{QuoteID: "EV-1-AAAAA", Status: entities.QuoteStatusViewed}},
		}, nil)

		quote, err := uc.GetCurrentQuote(context.Background(), "EV-1-AAAAA")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Status != entities.QuoteStatusDraft {
			t.Fatalf("expected version 3 (Draft), got %q", quote.Status)
		}
	})

	t.Run("malformed current payload", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)
		m.quotes.EXPECT().Versions(gomock.Any(), "EV-1-AAAAA").Return([]entities.QuoteVersion{
			{Version: 1, Quote: &entities.Quote{}},
			{Version: 2, Quote: nil, RecordID: "recBad"},
		}, nil)

		if _, err := uc.GetCurrentQuote(context.Background(), "EV-1-AAAAA"); !errors.Is(err, ErrMalformedQuote) {
			t.Fatalf("expected ErrMalformedQuote, got %v", err)
		}
	})
}

func TestQuoteUseCase_ListVersions(t *testing.T) {
	uc, m := newQuoteUseCaseForTest(t)
	m.quotes.EXPECT().Versions(gomock.Any(), "EV-1-AAAAA").Return([]entities.QuoteVersion{
		{Version: 1}, {Version: 3}, {Version: 2},
	}, nil)

	versions, err := uc.ListVersions(context.Background(), "EV-1-AAAAA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(versions) != 3 || versions[0].Version != 3 || versions[1].Version != 2 || versions[2].Version != 1 {
		t.Fatalf("expected newest first, got %+v", versions)
	}
}

func TestQuoteUseCase_ListQuotes(t *testing.T) {
	t.Run("groups by quote id keeping the latest version", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
		newer := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
		m.quotes.EXPECT().ListAll(gomock.Any(), entities.QuoteStatus("")).Return([]entities.QuoteVersion{
			{QuoteID: "EV-1-AAAAA", Version: 1, DateCreated: older},
			{QuoteID: "EV-1-AAAAA", Version: 2, DateCreated: newer},
			{QuoteID: "EV-2-BBBBB", Version: 1, DateCreated: older},
		}, nil)

		quotes, err := uc.ListQuotes(context.Background(), "All")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(quotes) != 2 {
			t.Fatalf("expected 2 quotes, got %+v", quotes)
		}
		if quotes[0].QuoteID != "EV-1-AAAAA" || quotes[0].Version != 2 {
			t.Fatalf("expected latest version of newest quote first, got %+v", quotes[0])
		}
	})

	t.Run("passes the status filter through", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)
		m.quotes.EXPECT().ListAll(gomock.Any(), entities.QuoteStatusSent).Return(nil, nil)

		if _, err := uc.ListQuotes(context.Background(), "Sent"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_SendQuote(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, "", zerolog.Nop())
		if _, err := uc.SendQuote(context.Background(), "", "rec123"); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
		if _, err := uc.SendQuote(context.Background(), "EV-1-AAAAA", " "); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("mints token and transitions both stores", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		m.links.EXPECT().Put(gomock.Any(), "EV-1-AAAAA").Return("tok-1", nil)
		m.projects.EXPECT().UpdateStatus(gomock.Any(), "rec123", entities.ProjectStatusQuoteSent).Return(entities.Project{ID: "rec123"}, nil)
		m.quotes.EXPECT().UpdateStatusByQuoteID(gomock.Any(), "EV-1-AAAAA", entities.QuoteStatusSent).Return(nil)

		res, err := uc.SendQuote(context.Background(), "EV-1-AAAAA", "rec123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Token != "tok-1" {
			t.Fatalf("unexpected token %q", res.Token)
		}
		if res.ShareableLink != "http://localhost:8080/quote/tok-1" {
			t.Fatalf("unexpected link %q", res.ShareableLink)
		}
	})

	t.Run("quote status failure after project update propagates", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		m.links.EXPECT().Put(gomock.Any(), "EV-1-AAAAA").Return("tok-1", nil)
		m.projects.EXPECT().UpdateStatus(gomock.Any(), "rec123", entities.ProjectStatusQuoteSent).Return(entities.Project{ID: "rec123"}, nil)
		m.quotes.EXPECT().UpdateStatusByQuoteID(gomock.Any(), "EV-1-AAAAA", entities.QuoteStatusSent).Return(errors.New("store down"))

		if _, err := uc.SendQuote(context.Background(), "EV-1-AAAAA", "rec123"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestQuoteUseCase_ViewQuoteByToken(t *testing.T) {
	t.Run("unknown token", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)
		m.links.EXPECT().Resolve(gomock.Any(), "tok-x").Return("", interfaces.ErrTokenNotFound)

		if _, err := uc.ViewQuoteByToken(context.Background(), "tok-x"); !errors.Is(err, ErrLinkNotFound) {
			t.Fatalf("expected ErrLinkNotFound, got %v", err)
		}
	})

	t.Run("first view transitions sent to viewed", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		m.links.EXPECT().Resolve(gomock.Any(), "tok-1").Return("EV-1-AAAAA", nil)
		m.quotes.EXPECT().Versions(gomock.Any(), "EV-1-AAAAA").Return([]entities.QuoteVersion{
			{Version: 1, Quote: &entities.Quote{QuoteID: "EV-1-AAAAA", ProjectID: "rec123", Status: entities.QuoteStatusSent}},
		}, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "rec123").Return(entities.Project{ID: "rec123", Status: entities.ProjectStatusQuoteSent}, nil)
		m.projects.EXPECT().UpdateStatus(gomock.Any(), "rec123", entities.ProjectStatusQuoteViewed).Return(entities.Project{ID: "rec123"}, nil)
		m.quotes.EXPECT().UpdateStatusByQuoteID(gomock.Any(), "EV-1-AAAAA", entities.QuoteStatusViewed).Return(nil)

		quote, err := uc.ViewQuoteByToken(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Status != entities.QuoteStatusViewed {
			t.Fatalf("expected Viewed, got %q", quote.Status)
		}
		if quote.ShareableLink != "http://localhost:8080/quote/tok-1" {
			t.Fatalf("unexpected link %q", quote.ShareableLink)
		}
	})

	t.Run("repeat view leaves a decided quote untouched", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		m.links.EXPECT().Resolve(gomock.Any(), "tok-1").Return("EV-1-AAAAA", nil)
		m.quotes.EXPECT().Versions(gomock.Any(), "EV-1-AAAAA").Return([]entities.QuoteVersion{
			{Version: 1, Quote: &entities.Quote{QuoteID: "EV-1-AAAAA", ProjectID: "rec123", Status: entities.QuoteStatusAccepted}},
		}, nil)
		m.projects.EXPECT().GetByID(gomock.Any(), "rec123").Return(entities.Project{ID: "rec123", Status: entities.ProjectStatusAccepted}, nil)

		quote, err := uc.ViewQuoteByToken(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.Status != entities.QuoteStatusAccepted {
			t.Fatalf("expected Accepted, got %q", quote.Status)
		}
	})
}

func TestQuoteUseCase_SubmitDecision(t *testing.T) {
	t.Run("accept", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		m.projects.EXPECT().UpdateStatus(gomock.Any(), "rec123", entities.ProjectStatusAccepted).Return(entities.Project{ID: "rec123"}, nil)
		m.quotes.EXPECT().UpdateStatusByQuoteID(gomock.Any(), "EV-1-AAAAA", entities.QuoteStatusAccepted).Return(nil)

		status, err := uc.SubmitDecision(context.Background(), Decision{QuoteID: "EV-1-AAAAA", ProjectID: "rec123", Accept: true, Reason: "looks good"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.QuoteStatusAccepted {
			t.Fatalf("expected Accepted, got %q", status)
		}
	})

	t.Run("reject", func(t *testing.T) {
		uc, m := newQuoteUseCaseForTest(t)

		m.projects.EXPECT().UpdateStatus(gomock.Any(), "rec123", entities.ProjectStatusRejected).Return(entities.Project{ID: "rec123"}, nil)
		m.quotes.EXPECT().UpdateStatusByQuoteID(gomock.Any(), "EV-1-AAAAA", entities.QuoteStatusRejected).Return(nil)

		status, err := uc.SubmitDecision(context.Background(), Decision{QuoteID: "EV-1-AAAAA", ProjectID: "rec123", Accept: false})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != entities.QuoteStatusRejected {
			t.Fatalf("expected Rejected, got %q", status)
		}
	})

	t.Run("invalid ids", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, nil, "", zerolog.Nop())
		if _, err := uc.SubmitDecision(context.Background(), Decision{ProjectID: "rec123"}); !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
		if _, err := uc.SubmitDecision(context.Background(), Decision{QuoteID: "EV-1-AAAAA"}); !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})
}
