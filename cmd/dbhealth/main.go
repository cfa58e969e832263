// dbhealth verifies the record store is reachable and reports its current
// column set against the schema the engine extracts with.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/finefaser/ordertrack/internal/record"
	repo "github.com/finefaser/ordertrack/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "file:orders.db"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := repo.Open(ctx, repo.Config{
		DSN:         dsn,
		DialTimeout: 3 * time.Second,
	}, nil)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}
	defer repo.Close(db, nil)

	if err := repo.HealthCheck(ctx, db, 1*time.Second, nil); err != nil {
		log.Fatalf("store health: FAIL (%v)", err)
	}
	log.Println("store health: OK")

	schema := record.Current()
	dialect := repo.DialectFor(dsn)
	if err := repo.Reconcile(ctx, db, dialect, schema, nil); err != nil {
		log.Fatalf("reconcile: %v", err)
	}

	orders := repo.NewOrderRepository(db, dialect, schema, nil)
	cols, err := orders.Columns(ctx)
	if err != nil {
		log.Fatalf("listing columns: %v", err)
	}

	log.Printf("schema version: v%d (%d fields)", schema.Version(), len(schema.Fields()))
	log.Printf("store columns: %d", len(cols))
	for _, c := range cols {
		log.Printf("- %s", c)
	}
}
