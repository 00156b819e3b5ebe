package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"projectboard/internal/config"
	"projectboard/internal/domain"
	"projectboard/internal/domain/services"
	"projectboard/internal/repository/remote"
	"projectboard/internal/service"
	"projectboard/internal/service/dashboard"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	username := flag.String("username", "", "Demo user to seed (default: random demo-<uuid>)")
	password := flag.String("password", "demo-password", "Password for the demo user")
	register := flag.Bool("register", true, "Register the demo user before logging in")
	clearData := flag.Bool("clear-data", false, "Delete the user's existing projects before seeding")
	count := flag.Int("count", 0, "Number of demo projects to create (default: all)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.IsProduction() && *clearData {
		log.Fatalf("🚫 BLOCKED: Cannot run --clear-data in production environment")
	}

	logger := config.NewLogger(cfg.Environment, os.Stdout)

	if *username == "" {
		*username = "demo-" + uuid.NewString()[:8]
	}

	log.Printf("🌱 Seeding projects for %q (environment: %s, api: %s)", *username, cfg.Environment, cfg.ProjectAPIURL)

	client, err := remote.NewClient(remote.ClientConfig{
		BaseURL:   cfg.ProjectAPIURL,
		Timeout:   cfg.ProjectAPITimeout,
		RateLimit: cfg.ProjectAPIRateLimit,
		Burst:     cfg.ProjectAPIBurst,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to create project API client: %v", err)
	}

	accounts := service.NewAccountService(remote.NewAccountRepository(client), logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if *register {
		log.Println("👤 Registering demo user...")
		if err := accounts.Register(ctx, &services.RegisterRequest{Username: *username, Password: *password}); err != nil {
			log.Printf("Warning: Could not register user (may already exist): %v", err)
		}
	}

	session, err := accounts.Login(ctx, &services.LoginRequest{Username: *username, Password: *password})
	if err != nil {
		log.Fatalf("Failed to log in as %q: %v", *username, err)
	}
	log.Printf("✅ Logged in (owner id: %s)", session.OwnerID)

	store := dashboard.NewStore(remote.NewProjectRepository(client), *session, logger)
	if err := store.Load(ctx); err != nil {
		log.Fatalf("Failed to load projects: %v", err)
	}

	if *clearData {
		log.Println("🧹 Clearing existing projects...")
		for _, project := range store.Snapshot().Projects {
			if err := store.Remove(ctx, project.ID.String()); err != nil {
				log.Printf("Warning: Could not delete project %s: %v", project.ID, err)
			}
		}
		log.Println("✅ Projects cleared")
	}

	projects := getSeedProjects()
	if *count > 0 && *count < len(projects) {
		projects = projects[:*count]
	}

	log.Println("📝 Creating demo projects...")
	created := 0
	for i, req := range projects {
		project, err := store.Create(ctx, req)
		if err != nil {
			var opErr *domain.OperationError
			if errors.As(err, &opErr) {
				log.Printf("❌ Failed to create project '%s': %s (%v)", req.ClientName, opErr.UserMessage(), opErr.Err)
			} else {
				log.Printf("❌ Failed to create project '%s': %v", req.ClientName, err)
			}
			continue
		}
		created++
		log.Printf("✅ Created project %d/%d: %s (ID: %s, Status: %s)",
			i+1, len(projects), project.ClientName, project.ID, project.Status)
	}

	log.Printf("🎉 Seeding complete! %d project(s) created, %d total", created, store.Snapshot().Total)
}
