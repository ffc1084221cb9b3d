package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/andrescamacho/bakery-go/internal/domain/production"
	"github.com/andrescamacho/bakery-go/internal/infrastructure/config"
	"github.com/andrescamacho/bakery-go/internal/infrastructure/logging"
)

// flavorDisplayNames holds the human-readable flavor names shown in tables
var flavorDisplayNames = map[production.Flavor]string{
	production.FlavorVanilla:    "Vanilla",
	production.FlavorChocolate:  "Chocolate",
	production.FlavorStrawberry: "Strawberry",
	production.FlavorCaramel:    "Caramel",
	production.FlavorBlueberry:  "Blueberry",
}

func displayName(flavor production.Flavor) string {
	if name, ok := flavorDisplayNames[flavor]; ok {
		return name
	}
	return flavor.String()
}

// parsePlan turns "flavor=quantity" specs into plan items.
// Entries with a non-positive quantity are skipped, like unchecked rows;
// malformed entries and unknown flavors are errors.
func parsePlan(specs []string) ([]production.PlanItem, error) {
	plan := make([]production.PlanItem, 0, len(specs))
	for _, spec := range specs {
		name, qty, found := strings.Cut(spec, "=")
		if !found {
			return nil, fmt.Errorf("invalid plan entry %q: expected flavor=quantity", spec)
		}

		flavor, err := production.ParseFlavor(name)
		if err != nil {
			return nil, err
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in plan entry %q: %w", spec, err)
		}
		if quantity <= 0 {
			continue
		}

		item, err := production.NewPlanItem(flavor, quantity)
		if err != nil {
			return nil, err
		}
		plan = append(plan, item)
	}
	return plan, nil
}

// loadRuntime loads configuration and builds the logger for a command
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	return cfg, logger, nil
}
