package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/aspyra/jobboard-api/config"
	"github.com/aspyra/jobboard-api/internal/domain/entity"
	"github.com/aspyra/jobboard-api/internal/domain/repository"
	"github.com/aspyra/jobboard-api/internal/infrastructure/storage"
	"github.com/aspyra/jobboard-api/pkg/helpers"
)

// seed creates the admin account, or resets its password and role when the
// email is already registered. Registration never grants admin.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env, cfg.LogLevel)

	if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}
	if cfg.StoreDriver == storage.DriverMemory {
		log.Fatal("seeding the in-memory store has no lasting effect; set STORE_DRIVER")
	}

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer repos.Close()

	hash, err := helpers.NewBcryptHasher(0).Hash(cfg.SeedAdminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u, err := repos.Users.GetByEmail(ctx, cfg.SeedAdminEmail)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		u = &entity.User{FullName: cfg.SeedAdminName, Email: cfg.SeedAdminEmail, PasswordHash: hash, Role: entity.RoleAdmin}
		if err := repos.Users.Create(ctx, u); err != nil {
			log.Fatalf("failed to seed admin: %v", err)
		}
		fmt.Printf("seeded admin: id=%s email=%s\n", u.ID, u.Email)
	case err != nil:
		log.Fatalf("failed to look up admin: %v", err)
	default:
		u.PasswordHash = hash
		u.Role = entity.RoleAdmin
		if err := repos.Users.Update(ctx, u); err != nil {
			log.Fatalf("failed to update admin: %v", err)
		}
		fmt.Printf("updated admin: id=%s email=%s\n", u.ID, u.Email)
	}
}
