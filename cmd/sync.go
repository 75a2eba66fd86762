package cmd

import (
	"context"
	"fmt"
	"time"

	"voice-sync/core/config"
	"voice-sync/core/database"
	"voice-sync/core/logger"
	"voice-sync/core/provider"
	"voice-sync/feature/voices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for sync/retry commands
	syncOwnerID   string
	syncVoiceName string
)

// syncCmd propagates one voice to all active credentials from the CLI.
var syncCmd = &cobra.Command{
	Use:   "sync <voice-id>",
	Short: "Sync a voice to all active credentials",
	Long: `Propagates the voice to every active credential's provider account.

Each (credential, voice) pair gets a ledger row with the outcome; pairs that
already synced are skipped without a provider call.

Examples:
  # Sync a voice
  voice-sync sync v-abc123 --owner o-xyz789

  # Sync with a display name override
  voice-sync sync v-abc123 --owner o-xyz789 --name "Narrator v2"`,
	Args: cobra.ExactArgs(1),
	RunE: runSync,
}

// retryCmd re-attempts a voice's failed syncs from the CLI.
var retryCmd = &cobra.Command{
	Use:   "retry <voice-id>",
	Short: "Retry a voice's failed syncs",
	Long: `Re-attempts every failed sync for the voice whose credential is still
active. Pairs that synced in the meantime are no-ops.`,
	Args: cobra.ExactArgs(1),
	RunE: runRetry,
}

func init() {
	for _, c := range []*cobra.Command{syncCmd, retryCmd} {
		c.Flags().StringVar(&syncOwnerID, "owner", "", "Owner (creator) account id of the voice")
		c.Flags().StringVar(&syncVoiceName, "name", "", "Display name override for the voice")
	}
	_ = syncCmd.MarkFlagRequired("owner")

	RootCmd.AddCommand(syncCmd)
	RootCmd.AddCommand(retryCmd)
}

// setupService builds a voices service wired to the configured database and
// provider, shared by the sync and retry commands.
func setupService() (*voices.Service, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	providerClient := provider.NewClient(cfg.Provider)
	delay := time.Duration(cfg.Provider.SyncDelayMS) * time.Millisecond

	return voices.NewService(db, providerClient, l, delay), l, nil
}

func runSync(cmd *cobra.Command, args []string) error {
	voiceID := args[0]

	svc, l, err := setupService()
	if err != nil {
		return err
	}
	defer l.Sync()

	l.Info("Starting voice sync", zap.String("voice_id", voiceID))

	summary, err := svc.SyncVoice(context.Background(), voiceID, syncOwnerID, syncVoiceName)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	l.Info("Sync finished",
		zap.Int("synced", summary.Synced),
		zap.Int("failed", summary.Failed),
		zap.Int("skipped", summary.Skipped))

	if summary.Failed > 0 {
		l.Warn("Some accounts failed; inspect the ledger and run retry",
			zap.String("hint", fmt.Sprintf("voice-sync retry %s", voiceID)))
	}
	return nil
}

func runRetry(cmd *cobra.Command, args []string) error {
	voiceID := args[0]

	svc, l, err := setupService()
	if err != nil {
		return err
	}
	defer l.Sync()

	l.Info("Retrying failed syncs", zap.String("voice_id", voiceID))

	summary, err := svc.RetryVoice(context.Background(), voiceID, syncOwnerID, syncVoiceName)
	if err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}

	l.Info("Retry finished",
		zap.Int("retried", summary.Retried),
		zap.Int("succeeded", summary.Succeeded))
	return nil
}
