package summary

import (
	"context"
	"sync"
	"time"

	"github.com/marketsmojo/accounts/internal/config"
	"github.com/marketsmojo/accounts/internal/domain"
	"github.com/marketsmojo/accounts/internal/service/accountservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var repairingAccounts sync.Map

// Reconciler periodically sweeps for summary projection rows that are missing
// or disagree with the authoritative account balance, and repairs them. The
// per-request transaction already keeps the projection in step; this closes
// the gap for rows touched out-of-band.
type Reconciler struct {
	summaryRepo    accountservice.SummaryRepo
	limit          int
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, summaryRepo accountservice.SummaryRepo) *Reconciler {
	return &Reconciler{
		summaryRepo:    summaryRepo,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: cfg.ReconcileInterval,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	zap.L().Info("Summary reconciler started")
	go r.run(ctx)
}

func (r *Reconciler) run(ctx context.Context) {
	ticker := time.NewTicker(r.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping reconciler")
			return
		case <-ticker.C:
			r.reconcile(ctx)
		}
	}
}

func (r *Reconciler) reconcile(ctx context.Context) {
	accounts, err := r.summaryRepo.FindDrift(ctx, r.limit)
	if err != nil {
		zap.L().Error("Failed to fetch drifted accounts", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, account := range accounts {
		account := account

		if _, loaded := repairingAccounts.LoadOrStore(account.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := r.workerPool.AddTask(ctx, func() error {
				defer repairingAccounts.Delete(account.ID)
				return r.repair(ctx, account)
			})
			if err != nil {
				repairingAccounts.Delete(account.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error repairing summary entries", zap.Error(err))
	}
}

func (r *Reconciler) repair(ctx context.Context, account domain.Account) error {
	err := r.summaryRepo.Upsert(ctx, &domain.SummaryEntry{
		UserID:        account.UserID,
		AccountID:     account.ID,
		CurrentAmount: account.CurrentAmount,
		MerchantType:  account.MerchantType,
	})
	if err != nil {
		return err
	}
	zap.L().Info("Summary entry repaired", zap.Int64("accountID", account.ID), zap.Int64("amount", account.CurrentAmount))
	return nil
}
