// Seed command: upserts demo accounts and projects and books one sample
// investment so a fresh environment has data to click through.
//
//	go run ./scripts/seed
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dgeemedia/chrenis/database"
	"github.com/dgeemedia/chrenis/models"
	"github.com/dgeemedia/chrenis/services"
	"github.com/dgeemedia/chrenis/stores"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if envMap, err := godotenv.Read(); err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	users := stores.NewUserStore(db)
	projects := stores.NewProjectStore(db)
	investments := stores.NewInvestmentStore(db)
	transactions := stores.NewTransactionStore(db)
	notifications := stores.NewNotificationStore(db)

	admin := ensureUser(ctx, users, "admin@chrenis.example", "Chrenis Admin", models.RoleAdmin, envOr("SEED_ADMIN_PASSWORD", "admin-change-me"))
	demo := ensureUser(ctx, users, "demo@chrenis.example", "Demo Investor", models.RoleUser, envOr("SEED_DEMO_PASSWORD", "demo-change-me"))
	log.Printf("[seed] admin=%d demo=%d", admin.ID, demo.ID)

	mango := ensureProject(ctx, projects, &models.Project{
		Slug:           "mango-farm",
		Title:          "Mango Farm Expansion",
		Description:    "Orchard expansion with irrigation and cold storage.",
		MinInvestment:  10000,
		ROI4moPercent:  12,
		ROI12moPercent: 35,
		DurationMonths: 4,
		Currency:       "NGN",
		Status:         models.ProjectStatusActive,
		Images:         models.StringList{"https://cdn.chrenis.example/projects/mango-farm.jpg"},
	})
	ensureProject(ctx, projects, &models.Project{
		Slug:           "solar-mini-grid",
		Title:          "Solar Mini-Grid",
		Description:    "Community mini-grid serving two rural clusters.",
		MinInvestment:  25000,
		ROI4moPercent:  12,
		ROI12moPercent: 35,
		DurationMonths: 12,
		Currency:       "NGN",
		Status:         models.ProjectStatusActive,
		Images:         models.StringList{"https://cdn.chrenis.example/projects/solar-mini-grid.jpg"},
	})

	// Book one sample investment through the real workflow so the demo user
	// has an investment with its linked pending deposit.
	existing, err := investments.ListByUser(ctx, demo.ID)
	if err != nil {
		log.Fatalf("[seed] listing demo investments: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("[seed] demo user already has %d investment(s), skipping sample", len(existing))
		return
	}
	svc := services.NewInvestmentService(investments, transactions, projects, notifications).
		WithUnitOfWork(func(ctx context.Context, fn func(services.InvestmentStore, services.TransactionStore) error) error {
			return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return fn(stores.NewInvestmentStore(tx), stores.NewTransactionStore(tx))
			})
		})
	result, err := svc.CreateInvestment(ctx, services.Identity{UserID: demo.ID, Role: demo.Role}, services.CreateInvestmentInput{
		ProjectID: models.FormatID(mango.ID),
		Amount:    50000,
		Term:      services.Term4Mo,
	})
	if err != nil {
		log.Fatalf("[seed] sample investment failed: %v", err)
	}
	log.Printf("[seed] sample investment=%d transaction=%d", result.Investment.ID, result.Transaction.ID)
}

func ensureUser(ctx context.Context, users *stores.UserStore, email, name, role, password string) *models.User {
	if u, err := users.FindByEmail(ctx, email); err == nil {
		return u
	} else if !errors.Is(err, stores.ErrNotFound) {
		log.Fatalf("[seed] lookup %s: %v", email, err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("[seed] hashing password: %v", err)
	}
	u := &models.User{Email: email, Name: name, Role: role, PasswordHash: string(hash)}
	if err := users.Create(ctx, u); err != nil {
		log.Fatalf("[seed] creating %s: %v", email, err)
	}
	log.Printf("[seed] created user %s", email)
	return u
}

func ensureProject(ctx context.Context, projects *stores.ProjectStore, p *models.Project) *models.Project {
	active, err := projects.ListActive(ctx)
	if err != nil {
		log.Fatalf("[seed] listing projects: %v", err)
	}
	for i := range active {
		if active[i].Slug == p.Slug {
			return &active[i]
		}
	}
	if err := projects.Create(ctx, p); err != nil {
		log.Fatalf("[seed] creating project %s: %v", p.Slug, err)
	}
	log.Printf("[seed] created project %s", p.Slug)
	return p
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
