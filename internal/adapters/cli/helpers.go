package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"reflect"

	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/jplacht/prunplanner-go/internal/adapters/persistence"
	"github.com/jplacht/prunplanner-go/internal/application/common"
	"github.com/jplacht/prunplanner-go/internal/application/gamedata"
	habitationQuery "github.com/jplacht/prunplanner-go/internal/application/habitation/queries"
	planningQuery "github.com/jplacht/prunplanner-go/internal/application/planning/queries"
	roiQuery "github.com/jplacht/prunplanner-go/internal/application/roi/queries"
	"github.com/jplacht/prunplanner-go/internal/domain/exchange"
	"github.com/jplacht/prunplanner-go/internal/domain/plan"
	"github.com/jplacht/prunplanner-go/internal/infrastructure/config"
	"github.com/jplacht/prunplanner-go/internal/infrastructure/database"
)

// services bundles everything a command needs to run queries.
type services struct {
	cfg      *config.Config
	db       *gorm.DB
	mediator common.Mediator
	logger   common.Logger
}

// openServices loads configuration, connects the database, wires the
// game-data loader and registers all query handlers on the mediator.
func openServices() (*services, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	loader := gamedata.NewLoader(
		persistence.NewBuildingRepository(db),
		persistence.NewRecipeRepository(db),
		persistence.NewMaterialRepository(db),
		persistence.NewExchangeRepository(db),
		persistence.NewPlanetRepository(db),
	)

	var limiter *rate.Limiter
	if cfg.ROI.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.ROI.RateLimit), cfg.ROI.Burst)
	}

	mediator := common.NewMediator()
	if err := mediator.Register(reflect.TypeOf(&planningQuery.CalculatePlanQuery{}),
		planningQuery.NewCalculatePlanHandler(loader)); err != nil {
		return nil, fmt.Errorf("failed to register handler: %w", err)
	}
	if err := mediator.Register(reflect.TypeOf(&habitationQuery.OptimizeHabitationQuery{}),
		habitationQuery.NewOptimizeHabitationHandler(loader)); err != nil {
		return nil, fmt.Errorf("failed to register handler: %w", err)
	}
	if err := mediator.Register(reflect.TypeOf(&roiQuery.ScanROIQuery{}),
		roiQuery.NewScanROIHandler(loader, limiter)); err != nil {
		return nil, fmt.Errorf("failed to register handler: %w", err)
	}

	return &services{
		cfg:      cfg,
		db:       db,
		mediator: mediator,
		logger:   newStderrLogger(cfg.Logging.Level),
	}, nil
}

// cmdContext returns the base context for command execution.
func cmdContext() context.Context {
	return context.Background()
}

// loadPlan reads a plan definition from a JSON file.
func loadPlan(path string) (*plan.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file: %w", err)
	}

	var p plan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan file: %w", err)
	}
	return &p, nil
}

// cxDocument is the on-disk layout of an exchange preference file.
type cxDocument struct {
	Name          string `json:"name"`
	TickerPlanets []struct {
		Planet      string             `json:"planet"`
		Preferences []tickerPreference `json:"preferences"`
	} `json:"ticker_planets"`
	TickerEmpire []tickerPreference `json:"ticker_empire"`
	CXPlanets    []struct {
		Planet      string               `json:"planet"`
		Preferences []exchangePreference `json:"preferences"`
	} `json:"cx_planets"`
	CXEmpire []exchangePreference `json:"cx_empire"`
}

type tickerPreference struct {
	Ticker string  `json:"ticker"`
	Type   string  `json:"type"`
	Value  float64 `json:"value"`
}

type exchangePreference struct {
	Type     string `json:"type"`
	Exchange string `json:"exchange"`
}

// loadCX reads exchange preferences from the --cx flag if one was
// given; a missing flag means universe average pricing.
func loadCX() (*exchange.CXData, error) {
	if cxPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(cxPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read exchange preference file: %w", err)
	}

	var doc cxDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse exchange preference file: %w", err)
	}

	cx := &exchange.CXData{Name: doc.Name}
	for _, planetPrefs := range doc.TickerPlanets {
		cx.TickerPlanets = append(cx.TickerPlanets, exchange.PlanetTickerPreferences{
			Planet:      planetPrefs.Planet,
			Preferences: tickerPreferences(planetPrefs.Preferences),
		})
	}
	cx.TickerEmpire = tickerPreferences(doc.TickerEmpire)
	for _, planetPrefs := range doc.CXPlanets {
		cx.CXPlanets = append(cx.CXPlanets, exchange.PlanetExchangePreferences{
			Planet:      planetPrefs.Planet,
			Preferences: exchangePreferences(planetPrefs.Preferences),
		})
	}
	cx.CXEmpire = exchangePreferences(doc.CXEmpire)

	return cx, nil
}

func tickerPreferences(docs []tickerPreference) []exchange.TickerPreference {
	prefs := make([]exchange.TickerPreference, len(docs))
	for i, doc := range docs {
		prefs[i] = exchange.TickerPreference{
			Ticker: doc.Ticker,
			Type:   exchange.Direction(doc.Type),
			Value:  doc.Value,
		}
	}
	return prefs
}

func exchangePreferences(docs []exchangePreference) []exchange.ExchangePreference {
	prefs := make([]exchange.ExchangePreference, len(docs))
	for i, doc := range docs {
		prefs[i] = exchange.ExchangePreference{
			Type:     exchange.Direction(doc.Type),
			Exchange: doc.Exchange,
		}
	}
	return prefs
}

// stderrLogger adapts the standard library logger to the calculation
// logger port.
type stderrLogger struct {
	logger  *log.Logger
	verbose bool
}

func newStderrLogger(level string) common.Logger {
	return &stderrLogger{
		logger:  log.New(os.Stderr, "", log.LstdFlags),
		verbose: level == "debug",
	}
}

// Log writes one line per event; debug events are dropped unless the
// configured level enables them.
func (l *stderrLogger) Log(level string, message string, metadata map[string]interface{}) {
	if level == "debug" && !l.verbose {
		return
	}
	if len(metadata) == 0 {
		l.logger.Printf("%s: %s", level, message)
		return
	}
	l.logger.Printf("%s: %s %v", level, message, metadata)
}
