package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"distribution-service/internal/config"
	"distribution-service/internal/db"
	"distribution-service/internal/logger"
	"distribution-service/internal/model"
	"distribution-service/internal/repository"
)

// Seeds the record store with sample stations, distributions and pump
// transactions for local development.
func main() {
	stations := flag.Int("stations", 5, "number of active stations to create")
	pending := flag.Int("pending", 2, "number of pending stations to create")
	days := flag.Int("days", 180, "how many days of history to generate")
	perDay := flag.Int("per-day", 4, "distribution events per day")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	stationRepo := repository.NewStationRepository(database)
	distributionRepo := repository.NewDistributionRepository(database)
	pumpRepo := repository.NewPumpRepository(database)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fuelTypes := []model.FuelType{model.FuelPetrol, model.FuelDiesel}

	created := make([]model.Station, 0, *stations)
	for i := 0; i < *stations; i++ {
		st := model.Station{
			ID:          uuid.New(),
			Name:        fmt.Sprintf("Station %02d", i+1),
			Address:     fmt.Sprintf("%d Depot Road", 100+i),
			PhoneNumber: fmt.Sprintf("+1-555-01%02d", i),
			Status:      model.StationActive,
			CreatedAt:   time.Now().AddDate(0, 0, -*days),
		}
		if err := stationRepo.CreateStation(ctx, &st); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to create station")
		}
		created = append(created, st)
	}
	for i := 0; i < *pending; i++ {
		st := model.Station{
			ID:          uuid.New(),
			Name:        fmt.Sprintf("Pending Station %02d", i+1),
			Address:     fmt.Sprintf("%d Outer Road", 200+i),
			PhoneNumber: fmt.Sprintf("+1-555-02%02d", i),
			Status:      model.StationPending,
			CreatedAt:   time.Now(),
		}
		if err := stationRepo.CreateStation(ctx, &st); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to create pending station")
		}
	}

	if len(created) == 0 {
		appLogger.Info().Msg("no active stations requested, skipping events")
		return
	}

	var events int
	for d := 0; d < *days; d++ {
		day := time.Now().AddDate(0, 0, -d)
		for e := 0; e < *perDay; e++ {
			station := created[rng.Intn(len(created))]
			at := time.Date(day.Year(), day.Month(), day.Day(), rng.Intn(24), rng.Intn(60), 0, 0, day.Location())

			rec := model.DistributionRecord{
				ID:         uuid.New(),
				StationID:  station.ID,
				FuelAmount: 500 + rng.Float64()*4500,
				FuelType:   fuelTypes[rng.Intn(len(fuelTypes))],
				Timestamp:  at,
			}
			if err := distributionRepo.CreateDistribution(ctx, &rec); err != nil {
				appLogger.Fatal().Err(err).Msg("failed to create distribution")
			}

			tx := model.PumpTransaction{
				ID:           uuid.New(),
				StationID:    station.ID,
				PumpedAmount: 200 + rng.Float64()*2000,
				RecordedAt:   at.Add(time.Duration(rng.Intn(120)) * time.Minute),
			}
			if err := pumpRepo.CreatePumpTransaction(ctx, &tx); err != nil {
				appLogger.Fatal().Err(err).Msg("failed to create pump transaction")
			}
			events += 2
		}
	}

	appLogger.Info().
		Int("stations", len(created)).
		Int("events", events).
		Msg("seed complete")
}
