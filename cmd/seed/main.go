package main

import (
	"context"
	"flag"
	"log"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/snapjobs/snapjobs-back/ent"
	"github.com/snapjobs/snapjobs-back/ent/plan"
	"github.com/snapjobs/snapjobs-back/ent/planfeature"
	"github.com/snapjobs/snapjobs-back/ent/user"
	"github.com/snapjobs/snapjobs-back/pkg/auth"
	"github.com/snapjobs/snapjobs-back/pkg/database"
	"github.com/snapjobs/snapjobs-back/pkg/secrets"
)

type planSeed struct {
	code          string
	name          string
	price         int
	stripePriceID string
	apiKeyLimit   int
	requestLimit  int
	recommended   bool
	colorFrom     string
	colorTo       string
	features      []string
}

// The pricing page catalog. Issuance quotas mirror the static policy
// table; this is the marketing view of the same numbers.
var catalog = []planSeed{
	{
		code: "free", name: "Free", price: 0,
		apiKeyLimit: 1, requestLimit: 1000,
		colorFrom: "gray-400", colorTo: "gray-600",
		features: []string{
			"1 API key",
			"1,000 requests/month",
			"Community support",
			"Playground access",
		},
	},
	{
		code: "pro", name: "Pro", price: 49,
		stripePriceID: "price_pro_monthly",
		apiKeyLimit:   3, requestLimit: 50000,
		recommended: true,
		colorFrom:   "blue-500", colorTo: "purple-600",
		features: []string{
			"3 API keys",
			"50,000 requests/month",
			"Priority email support",
			"Skill verification endpoints",
			"AI interview endpoints",
		},
	},
	{
		code: "enterprise", name: "Enterprise", price: 199,
		stripePriceID: "price_enterprise_monthly",
		apiKeyLimit:   10, requestLimit: 1000000,
		colorFrom: "purple-600", colorTo: "pink-600",
		features: []string{
			"10 API keys",
			"1,000,000 requests/month",
			"Dedicated support",
			"Custom matching models",
			"SLA guarantee",
		},
	},
}

func main() {
	demoUsers := flag.Int("demo-users", 0, "number of fake demo accounts to create (development only)")
	flag.Parse()

	secretsManager, err := secrets.NewManager(secrets.AutoDetectConfig())
	if err != nil {
		log.Fatalf("❌ Failed to initialize secrets manager: %v", err)
	}
	defer secretsManager.Close()

	ctx := context.Background()
	databaseURL, err := secrets.LoadStringRequired(ctx, secretsManager, "DATABASE_URL")
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	db, err := database.NewClient(databaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := seedPlans(ctx, db.Ent); err != nil {
		log.Fatalf("❌ Failed to seed plans: %v", err)
	}

	if *demoUsers > 0 {
		if err := seedDemoUsers(ctx, db.Ent, *demoUsers); err != nil {
			log.Fatalf("❌ Failed to seed demo users: %v", err)
		}
	}

	log.Println("✅ Seed complete")
}

func seedPlans(ctx context.Context, client *ent.Client) error {
	for _, p := range catalog {
		existing, err := client.Plan.Query().Where(plan.CodeEQ(p.code)).Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return err
		}

		if existing != nil {
			// Re-runs refresh the catalog in place
			if _, err := existing.Update().
				SetName(p.name).
				SetPrice(p.price).
				SetStripePriceID(p.stripePriceID).
				SetAPIKeyLimit(p.apiKeyLimit).
				SetRequestLimit(p.requestLimit).
				SetIsRecommended(p.recommended).
				SetColorFrom(p.colorFrom).
				SetColorTo(p.colorTo).
				Save(ctx); err != nil {
				return err
			}

			if _, err := client.PlanFeature.Delete().
				Where(planfeature.PlanIDEQ(existing.ID)).
				Exec(ctx); err != nil {
				return err
			}
			if err := seedFeatures(ctx, client, existing.ID, p.features); err != nil {
				return err
			}
			log.Printf("🔄 Updated plan %q", p.code)
			continue
		}

		created, err := client.Plan.Create().
			SetCode(p.code).
			SetName(p.name).
			SetPrice(p.price).
			SetStripePriceID(p.stripePriceID).
			SetAPIKeyLimit(p.apiKeyLimit).
			SetRequestLimit(p.requestLimit).
			SetIsRecommended(p.recommended).
			SetColorFrom(p.colorFrom).
			SetColorTo(p.colorTo).
			Save(ctx)
		if err != nil {
			return err
		}
		if err := seedFeatures(ctx, client, created.ID, p.features); err != nil {
			return err
		}
		log.Printf("✨ Created plan %q", p.code)
	}
	return nil
}

func seedFeatures(ctx context.Context, client *ent.Client, planID int, features []string) error {
	for i, f := range features {
		if _, err := client.PlanFeature.Create().
			SetPlanID(planID).
			SetFeature(f).
			SetFeatureOrder(i).
			Save(ctx); err != nil {
			return err
		}
	}
	return nil
}

func seedDemoUsers(ctx context.Context, client *ent.Client, n int) error {
	hash, err := auth.HashPassword("demo-password-1")
	if err != nil {
		return err
	}

	tiers := []user.PlanTier{user.PlanTierFree, user.PlanTierPro, user.PlanTierEnterprise}
	for i := 0; i < n; i++ {
		email := gofakeit.Email()
		_, err := client.User.Create().
			SetEmail(email).
			SetName(gofakeit.Name()).
			SetPasswordHash(hash).
			SetPlanTier(tiers[i%len(tiers)]).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				continue
			}
			return err
		}
		log.Printf("👤 Created demo user %s", email)
	}
	return nil
}
