package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jaswdr/faker"
	"github.com/peve-dev/peve-backend/internal/config"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/infrastructure/database"
	"github.com/peve-dev/peve-backend/internal/logger"
	"github.com/peve-dev/peve-backend/internal/repository/postgres"
	"github.com/peve-dev/peve-backend/internal/usecase/auth"
	"github.com/peve-dev/peve-backend/internal/usecase/badge"
)

var (
	skillPool    = []string{"Go", "TypeScript", "React", "PostgreSQL", "Docker", "Kubernetes", "Python", "Figma", "Rust", "GraphQL", "Swift", "Kotlin"}
	rolePool     = []string{"backend", "frontend", "designer", "product", "devops", "data", "mobile"}
	interestPool = []string{"AI", "fintech", "climate", "education", "gaming", "health", "open source", "music"}
	timeZones    = []string{"Europe/Berlin", "Europe/London", "America/New_York", "Asia/Tokyo", "Asia/Kolkata"}
)

func main() {
	demoUsers := flag.Int("demo-users", 0, "number of random demo users to create")
	printTokens := flag.Bool("tokens", false, "print a 24h access token for each demo user")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	badgeRepo := postgres.NewBadgeRepository(db)
	for _, b := range badge.DefaultCatalog() {
		b.IsActive = true
		if err := badgeRepo.Upsert(ctx, b); err != nil {
			logger.Error("failed to upsert badge %s: %v", b.Key, err)
			os.Exit(1)
		}
	}
	logger.Success("badge catalog seeded (%d badges)", len(badge.DefaultCatalog()))

	if *demoUsers <= 0 {
		return
	}

	userRepo := postgres.NewUserRepository(db)
	tokens := auth.NewTokenUseCase(cfg.JWT.AccessSecret)
	fake := faker.New()

	for i := 0; i < *demoUsers; i++ {
		user := randomUser(fake, i)
		if err := userRepo.Create(ctx, user); err != nil {
			logger.Error("failed to create demo user %s: %v", user.Username, err)
			continue
		}

		if *printTokens {
			token, _, err := tokens.IssueToken(user.ID, 24*time.Hour)
			if err != nil {
				logger.Error("failed to issue token for %s: %v", user.Username, err)
				continue
			}
			fmt.Printf("%s\t%s\t%s\n", user.ID, user.Username, token)
		}
	}
	logger.Success("created %d demo users", *demoUsers)
}

func randomUser(fake faker.Faker, n int) *domain.User {
	first := fake.Person().FirstName()
	last := fake.Person().LastName()
	bio := fake.Lorem().Sentence(10)

	return &domain.User{
		Username:          fmt.Sprintf("%s.%s%d", strings.ToLower(first), strings.ToLower(last), n),
		DisplayName:       first + " " + last,
		Bio:               &bio,
		Skills:            pick(fake, skillPool, fake.IntBetween(1, 5)),
		PreferredRoles:    pick(fake, rolePool, fake.IntBetween(1, 2)),
		Interests:         pick(fake, interestPool, fake.IntBetween(1, 4)),
		AvailabilityHours: float64(fake.IntBetween(2, 40)),
		TimeZone:          fake.RandomStringElement(timeZones),
		WorkStyle: domain.WorkStyle{
			TeamPreference: domain.TeamPreference(fake.RandomStringElement([]string{"solo", "small_team", "large_team"})),
			Pace:           domain.Pace(fake.RandomStringElement([]string{"relaxed", "steady", "fast"})),
			Communication:  domain.Communication(fake.RandomStringElement([]string{"async", "sync", "mixed"})),
			DecisionStyle:  domain.DecisionStyle(fake.RandomStringElement([]string{"data_driven", "intuitive", "collaborative"})),
		},
		IsEarlyAdopter: fake.IntBetween(0, 4) == 0,
	}
}

// pick returns n distinct values from pool.
func pick(fake faker.Faker, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	chosen := make([]string, 0, n)
	seen := make(map[string]struct{}, n)
	for len(chosen) < n {
		v := fake.RandomStringElement(pool)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		chosen = append(chosen, v)
	}
	return chosen
}
