package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/famjamjam/config"
	"github.com/oksasatya/famjamjam/internal/domain/entity"
	pginfra "github.com/oksasatya/famjamjam/internal/infrastructure/postgres"
	"github.com/oksasatya/famjamjam/internal/infrastructure/search"
	"github.com/oksasatya/famjamjam/pkg/helpers"
)

// demoUserID is fixed so repeated seeding updates the same family.
const demoUserID = "6c2b8f5e-3d1a-4a8e-9c55-0f6f1d3b2a10"

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()
	store := pginfra.NewSeedStore(pool)

	email := "demo@famjamjam.local"
	bio := "Two kids, one dog, always up for a park day."
	hood := "Indiranagar"
	if err := store.UpsertProfile(ctx, entity.ProfileInsert{
		ID:           demoUserID,
		FamilyName:   "The Demo Family",
		Email:        email,
		Bio:          &bio,
		Interests:    []string{"Outdoor Activities", "Arts & Crafts"},
		Neighborhood: &hood,
	}); err != nil {
		log.Fatalf("failed to seed profile: %v", err)
	}
	fmt.Printf("seeded profile: id=%s email=%s\n", demoUserID, email)

	owner := demoUserID
	groups, err := store.UpsertGroups(ctx, []entity.GroupInsert{
		{Title: "Indiranagar Toddler Playdates", Description: "Weekly meetups for families with kids under four.", Locality: "Indiranagar", Tags: []string{"toddlers", "playdates"}, CreatedBy: &owner},
		{Title: "Koramangala Weekend Hikers", Description: "Easy family hikes around the city every other Sunday.", Locality: "Koramangala", Tags: []string{"outdoors", "hiking"}, CreatedBy: &owner},
		{Title: "HSR Layout Board Game Nights", Description: "Board games for parents and kids aged six and up.", Locality: "HSR Layout", Tags: []string{"games", "indoor"}, CreatedBy: &owner},
	})
	if err != nil {
		log.Fatalf("failed to seed groups: %v", err)
	}
	fmt.Printf("seeded %d groups\n", len(groups))

	limit := 20
	start := time.Now().Add(7 * 24 * time.Hour).Truncate(time.Hour)
	events := make([]entity.EventInsert, 0, len(groups))
	for i, g := range groups {
		events = append(events, entity.EventInsert{
			GroupID:      g.ID,
			Title:        "Meetup #" + fmt.Sprint(i+1),
			Description:  "Say hello to the neighbours. " + g.Description,
			EventDate:    start.Add(time.Duration(i) * 24 * time.Hour),
			Location:     g.Locality,
			MaxAttendees: &limit,
			CreatedBy:    &owner,
		})
	}
	if err := store.InsertEvents(ctx, events); err != nil {
		log.Fatalf("failed to seed events: %v", err)
	}
	fmt.Printf("seeded %d events\n", len(events))

	reindex(ctx, cfg, store)

	if cfg.SupabaseJWTSecret == "" {
		fmt.Println("SUPABASE_JWT_SECRET not set; skipping dev token")
		return
	}
	token, exp, err := helpers.NewJWTVerifier(cfg.SupabaseJWTSecret).Sign(demoUserID, email, 24*time.Hour)
	if err != nil {
		log.Fatalf("failed to sign dev token: %v", err)
	}
	fmt.Printf("dev token (expires %s):\n%s\n", exp.Format(time.RFC3339), token)
}

// reindex pushes every stored group into the search index. Failures are reported, not fatal.
func reindex(ctx context.Context, cfg *config.Config, store *pginfra.SeedStore) {
	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		fmt.Printf("skipping search reindex: %v\n", err)
		return
	}
	index := search.NewGroupIndex(es, cfg.ESGroupsIndex)
	if err := index.Ensure(ctx); err != nil {
		fmt.Printf("skipping search reindex: %v\n", err)
		return
	}
	all, err := store.AllGroups(ctx)
	if err != nil {
		log.Fatalf("failed to list groups: %v", err)
	}
	for _, g := range all {
		if err := index.Index(ctx, g); err != nil {
			fmt.Printf("index group %s: %v\n", g.ID, err)
		}
	}
	fmt.Printf("reindexed %d groups into %s\n", len(all), cfg.ESGroupsIndex)
}
