// Package core has core logic for aggregation, comparison and classification.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fairlens/fairlens/internal/contract"
	"github.com/fairlens/fairlens/internal/outwriter"
	"github.com/fairlens/fairlens/schema"
)

// ErrComplianceNotMet is returned by ExecuteCompliance when a compliance
// predicate fails, so callers can map it to a non-zero exit code.
var ErrComplianceNotMet = errors.New("compliance checks not met")

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// GetSnapshotResults fetches a company's records and headcount and builds the
// analytics snapshot for the configured window. This is the shared entry
// point for the CLI commands and the MCP tools.
func GetSnapshotResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*schema.Snapshot, error) {
	// The full record set is fetched on purpose: the trailing trend and
	// recurrence detection read outside the reporting window.
	records, err := mgr.GetRecordStore().FetchRecords(ctx, cfg.CompanyID, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	employees := cfg.Employees
	if employees == 0 {
		employees, err = mgr.GetEmployeeDirectory().CountActiveEmployees(ctx, cfg.CompanyID)
		if err != nil {
			return nil, err
		}
	}

	return BuildSnapshot(Input{
		Records:         records,
		Start:           cfg.StartTime,
		End:             cfg.EndTime,
		Now:             cfg.Now,
		ActiveEmployees: employees,
	})
}

// ExecuteReport builds the snapshot and prints the full report.
// It serves as the main entry point for the 'report' command.
func ExecuteReport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	snap, err := GetSnapshotResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteReport(snap, cfg)
}

// ExecuteTrends builds the snapshot and prints the trailing monthly trend
// together with recurring-category flags.
func ExecuteTrends(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	snap, err := GetSnapshotResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteTrends(snap, cfg)
}

// ExecuteCompare builds the snapshot and prints the period-over-period
// comparison with ranked categories and effectiveness scoring.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	snap, err := GetSnapshotResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteComparison(snap, cfg)
}

// ExecuteCompliance builds the snapshot and prints the compliance evaluation.
// The output is always written; ErrComplianceNotMet is returned afterwards
// when a predicate fails.
func ExecuteCompliance(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	snap, err := GetSnapshotResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	if err := outwriter.NewOutWriter().WriteCompliance(snap, cfg); err != nil {
		return err
	}

	if !snap.Compliance.GRICompliant || !snap.Compliance.ResolutionQualityMet {
		return fmt.Errorf("%w for company %s", ErrComplianceNotMet, cfg.CompanyID)
	}
	return nil
}

// ExecuteRecords fetches the window's raw records and prints them.
func ExecuteRecords(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	records, err := mgr.GetRecordStore().FetchRecords(ctx, cfg.CompanyID, cfg.StartTime, cfg.EndTime)
	if err != nil {
		return err
	}
	return outwriter.NewOutWriter().WriteRecords(records, cfg)
}
