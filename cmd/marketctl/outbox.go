package main

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/light-bringer/aptmart-service/internal/app/outbox/queries/list_events"
	outboxrepo "github.com/light-bringer/aptmart-service/internal/app/outbox/repo"
	"github.com/light-bringer/aptmart-service/internal/app/outbox/usecases/cleanup_events"
)

func newCleanupOutboxCmd(e *env) *cobra.Command {
	var (
		dryRun             bool
		completedRetention time.Duration
		failedRetention    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "cleanup-outbox",
		Short: "Delete processed outbox events past their retention",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("completed-retention") {
				completedRetention = e.cfg.Outbox.CompletedRetention
			}
			if !cmd.Flags().Changed("failed-retention") {
				failedRetention = e.cfg.Outbox.FailedRetention
			}

			uc := cleanup_events.NewInteractor(outboxrepo.NewOutboxRepo(e.client), e.clock, e.log)
			res, err := uc.Execute(cmd.Context(), &cleanup_events.Request{
				CompletedRetention: completedRetention,
				FailedRetention:    failedRetention,
				DryRun:             dryRun,
			})
			if err != nil {
				return err
			}

			e.log.WithFields(logrus.Fields{
				"completed_cutoff": res.CompletedCutoff.Format(time.RFC3339),
				"failed_cutoff":    res.FailedCutoff.Format(time.RFC3339),
				"expired":          res.Expired.Total(),
				"deleted":          res.Deleted,
				"dry_run":          res.DryRun,
			}).Info("outbox cleanup finished")
			return nil
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "count expired events without deleting them")
	cmd.Flags().DurationVar(&completedRetention, "completed-retention", 720*time.Hour, "retention for completed events (defaults to OUTBOX_COMPLETED_RETENTION)")
	cmd.Flags().DurationVar(&failedRetention, "failed-retention", 2160*time.Hour, "retention for failed events (defaults to OUTBOX_FAILED_RETENTION)")
	return cmd
}

func newEventsCmd(e *env) *cobra.Command {
	req := &list_events.Request{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print outbox events as JSON lines, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := list_events.NewQuery(outboxrepo.NewEventsReadModel(e.client)).Execute(cmd.Context(), req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for _, ev := range events {
				if err := enc.Encode(ev); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&req.EventType, "type", "", "filter by event type, e.g. booking.placed")
	cmd.Flags().StringVar(&req.AggregateID, "aggregate", "", "filter by aggregate ID")
	cmd.Flags().StringVar(&req.Status, "status", "", "filter by status: pending, completed or failed")
	cmd.Flags().Int64Var(&req.Limit, "limit", list_events.DefaultLimit, "maximum number of events")
	return cmd
}
