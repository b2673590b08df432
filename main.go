package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shipx-dispatch-service/config"
	"shipx-dispatch-service/core"
	"shipx-dispatch-service/workers/dispatch"
	"shipx-dispatch-service/workers/dispatch/models"
	"shipx-dispatch-service/workers/dispatch/repositories"
	"shipx-dispatch-service/workers/dispatch/shipx"
)

func main() {
	watch := flag.Bool("watch", false, "run the dispatch workflow on a cron schedule instead of once")
	history := flag.Int("history", 0, "print the N most recent workflow runs and exit (requires DATABASE_DSN)")
	flag.Parse()

	cfg := config.LoadConfig()

	// Reading run history is a local database query, no provider credentials needed
	if *history > 0 {
		runHistory(cfg, *history)
		return
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger, err := core.NewLogger(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Run history is optional; without a DSN the workflow only logs
	var runs *repositories.Repository
	if cfg.DSN != "" {
		db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
		if err != nil {
			log.Fatal(err)
		}
		runs = repositories.NewRepository(db)
		if err := runs.Migrate(); err != nil {
			log.Fatal(err)
		}
	}

	client := shipx.NewClient(cfg.ShipXApi)
	workflow := dispatch.NewWorkflow(logger, client, runs, cfg.OutputDirectory, cfg.Poll)

	if *watch {
		runWatch(logger, workflow, cfg.DispatchSchedule)
		return
	}

	result, err := workflow.ProcessShipment(context.Background(), dispatch.ExampleShipmentRequest())
	if err != nil {
		fmt.Println("Dispatch workflow failed:", err)
		os.Exit(1)
	}

	fmt.Printf("Dispatch workflow completed: shipment %d, dispatch order %d\n",
		result.ShipmentID, result.DispatchOrderID)
	fmt.Println("Label:", result.LabelPath)
	fmt.Println("Printout:", result.PrintoutPath)
}

func runHistory(cfg *config.Config, limit int) {
	if cfg.DSN == "" {
		log.Fatal("DATABASE_DSN must be set to read run history")
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		log.Fatal(err)
	}

	runs, err := repositories.NewRepository(db).GetRecentRuns(limit)
	if err != nil {
		log.Fatal(err)
	}
	printRuns(os.Stdout, runs)
}

func printRuns(w io.Writer, runs []models.WorkflowRun) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No workflow runs recorded")
		return
	}
	for _, run := range runs {
		fmt.Fprintf(w, "%s shipment=%d dispatch_order=%d status=%s",
			run.StartedAt.Format(time.RFC3339), run.ShipmentID, run.DispatchOrderID, run.Status)
		if run.Error != "" {
			fmt.Fprintf(w, " error=%q", run.Error)
		}
		fmt.Fprintln(w)
	}
}

func runWatch(logger *zap.Logger, workflow *dispatch.Workflow, schedule string) {
	orchestrator := core.NewOrchestrator([]core.Worker{
		dispatch.NewWorker(logger, workflow, schedule),
	})

	c, err := orchestrator.Start(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	defer c.Stop()

	// Wait for termination signal to exit gracefully
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
}
