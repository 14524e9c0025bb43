// Scriptor orchestration server — runs the workflow worker pool, the
// background pipelines, and the event streaming infrastructure.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scriptor-ai/scriptor/pkg/agent"
	"github.com/scriptor-ai/scriptor/pkg/agent/flow"
	"github.com/scriptor-ai/scriptor/pkg/checkpoint"
	"github.com/scriptor-ai/scriptor/pkg/config"
	"github.com/scriptor-ai/scriptor/pkg/database"
	"github.com/scriptor-ai/scriptor/pkg/editor"
	"github.com/scriptor-ai/scriptor/pkg/events"
	"github.com/scriptor-ai/scriptor/pkg/feeds"
	"github.com/scriptor-ai/scriptor/pkg/masking"
	"github.com/scriptor-ai/scriptor/pkg/memory"
	"github.com/scriptor-ai/scriptor/pkg/messaging"
	"github.com/scriptor-ai/scriptor/pkg/notify"
	"github.com/scriptor-ai/scriptor/pkg/pipelines"
	"github.com/scriptor-ai/scriptor/pkg/services"
	"github.com/scriptor-ai/scriptor/pkg/tools"
	"github.com/scriptor-ai/scriptor/pkg/version"
	"github.com/scriptor-ai/scriptor/pkg/workflow"
)

const shutdownTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica
// coordination. Priority: POD_ID env > HOSTNAME env > "local".
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	podID := resolvePodID()
	slog.Info("Starting scriptor",
		"version", version.Full(),
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	// Fail fast on a malformed room encryption key. An absent key only
	// disables the messaging surface; a present-but-broken one is a
	// deployment mistake.
	if os.Getenv(cfg.Messaging.MasterKeyEnv) == "" {
		slog.Warn("Room message master key not set; messaging encryption unavailable",
			"env", cfg.Messaging.MasterKeyEnv)
	} else if _, err := messaging.LoadMasterKey(cfg.Messaging.MasterKeyEnv); err != nil {
		slog.Error("Invalid room message master key", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	if health, err := dbClient.Health(ctx); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	} else {
		slog.Info("Connected to PostgreSQL database",
			"ping", health.PingTime,
			"max_open_conns", health.MaxOpenConns)
	}

	// 3. One-time startup recovery: workflows this pod abandoned and
	// feed polling claims nobody will release.
	if err := workflow.CleanupStartupOrphans(ctx, dbClient.Client, podID); err != nil {
		slog.Error("Failed to recover orphaned workflows", "error", err)
		// Non-fatal: the watchdog covers whatever this pass missed.
	}
	if n, err := pipelines.ClearStartupPollingFlags(ctx, dbClient.Client); err != nil {
		slog.Error("Failed to clear stale feed polling flags", "error", err)
	} else if n > 0 {
		slog.Info("Cleared stale feed polling flags", "count", n)
	}

	// 4. Event streaming: persist+notify publisher, hub with catchup,
	// dedicated LISTEN connection.
	publisher := events.NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	hub := events.NewHub(slog.Default(), eventService)
	listener := events.NewNotifyListener(dbConfig.DSN(), hub)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start notify listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	hub.SetListener(listener)
	slog.Info("Event streaming initialized")

	// 5. Tool servers
	masker := masking.NewService(nil)
	toolsClient := tools.NewClient(cfg.ToolServers)
	serverIDs := cfg.ToolServers.Names()
	if len(serverIDs) > 0 {
		toolsClient.Initialize(ctx, serverIDs)
		if failed := toolsClient.FailedServers(); len(failed) > 0 {
			slog.Error("Tool servers failed startup initialization", "failed_servers", failed)
			os.Exit(1)
		}
		slog.Info("Tool servers initialized", "count", len(serverIDs))
	}
	defer func() {
		if err := toolsClient.Close(); err != nil {
			slog.Error("Error closing tool client", "error", err)
		}
	}()
	toolExecutor := tools.NewExecutor(toolsClient, cfg.ToolServers, masker)

	// 6. Agents and the workflow engine
	agentRegistry := agent.NewRegistry(cfg.Agents)
	flow.RegisterBuiltins(agentRegistry, cfg.Agents)

	mem := memory.NewStore()
	checkpoints := checkpoint.NewStore(dbClient.Client)
	llmFactory := func(provider *config.LLMProviderConfig) (agent.LLMClient, error) {
		return agent.NewGRPCLLMClient(provider.Endpoint)
	}

	// Proposal registry: agent-emitted edits become durable proposals
	// here. Document, vector, and graph backends are host services; the
	// daemon files and sweeps proposals, it does not apply them.
	proposals := services.NewProposalService(dbClient.Client)
	proposalRegistry := editor.NewRegistry(slog.Default(), proposals, nil, nil, nil)

	engine := workflow.NewEngine(dbClient.Client, cfg, agentRegistry, mem, checkpoints, publisher, toolExecutor, proposalRegistry, llmFactory)
	defer engine.Close()

	pool := workflow.NewPool(podID, dbClient.Client, cfg.WorkerPool, engine)
	pool.Start(ctx)
	slog.Info("Worker pool started", "max_concurrent", cfg.WorkerPool.MaxConcurrent)

	// 7. Background pipelines
	notifier := notify.NewNotifier(cfg.Slack)
	runner := pipelines.NewRunner(notifier)
	poller := feeds.NewPoller(dbClient.Client, feeds.NewFetcher(version.GitCommit), feeds.NewEnricher())

	for _, p := range []pipelines.Pipeline{
		pipelines.NewFeedPollPipeline(dbClient.Client, poller, cfg.Pipelines),
		pipelines.NewFeedFlagWatchdogPipeline(dbClient.Client, cfg.Pipelines),
		pipelines.NewPresenceReaperPipeline(dbClient.Client, cfg.Pipelines),
		pipelines.NewRetentionPipeline(dbClient.Client, checkpoints, eventService, cfg.Pipelines),
		pipelines.NewProposalSweepPipeline(proposalRegistry, cfg.Pipelines),
	} {
		if err := runner.Register(p); err != nil {
			slog.Error("Failed to register pipeline", "pipeline", p.Name, "error", err)
			os.Exit(1)
		}
	}
	runner.Start()
	slog.Info("Background pipelines started")

	slog.Info("Scriptor started successfully", "pod_id", podID)

	// 8. Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigCh
	slog.Info("Shutdown signal received", "signal", sig)

	// 9. Graceful shutdown: stop taking new work, then drain.
	runner.Stop()
	slog.Info("Background pipelines stopped")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Worker pool shutdown timeout exceeded")
	}

	slog.Info("Scriptor shutdown complete")
}
