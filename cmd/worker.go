/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chamados-hub/apiserver/config"
	"github.com/chamados-hub/apiserver/internal/mq"
	"github.com/chamados-hub/apiserver/types"
	"github.com/spf13/cobra"
)

// workerCmd represents the worker command. It consumes ticket lifecycle
// events from the configured bus and logs them; notification delivery
// hangs off this loop.
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consumes ticket events from the message bus",
	Long: `Consumes ticket lifecycle events from the configured message bus
and logs them. Requires MQ_BACKEND to be set. Usage:

	chamados worker
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfig()

		bus, err := mq.NewFromConfig(cmd.Context(), cfg.MQ)
		if err != nil {
			return fmt.Errorf("init message bus failed: %w", err)
		}
		if bus == nil {
			return errors.New("MQ_BACKEND must be set to run the worker")
		}
		defer func() {
			_ = bus.Close()
		}()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.Printf("worker consuming from %q", cfg.MQ.Channel)
		err = bus.Subscribe(ctx, cfg.MQ.Channel, handleTicketEvent)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

func handleTicketEvent(ctx context.Context, msg mq.Message) error {
	var event types.TicketEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		// Malformed payloads are dropped, not redelivered.
		log.Printf("discarding malformed event %s: %v", msg.ID, err)
		return nil
	}

	log.Printf("event %s: ticket %d", event.Event, event.TicketID)
	return nil
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
