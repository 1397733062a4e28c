// Command backcore is the operator CLI for the dashboard data core: seed
// sample data, reset state, print collection stats, or export the snapshot.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"backcore/internal/blob"
	"backcore/internal/core"
	"backcore/internal/infra/config"
	"backcore/internal/infra/logger"
	"backcore/internal/infra/persistence/memory"
	"backcore/pkg/timeutil"
)

var exitFunc = os.Exit

func main() {
	exitFunc(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(stderr io.Writer) {
	fmt.Fprintln(stderr, "usage: backcore <seed|reset|stats|export|files> [flags]")
	fmt.Fprintln(stderr, "  seed    load sample data into an unseeded store")
	fmt.Fprintln(stderr, "  reset   wipe all collections")
	fmt.Fprintln(stderr, "  stats   print collection counts")
	fmt.Fprintln(stderr, "  export  write the full snapshot as JSON (-out <file>, default stdout)")
	fmt.Fprintln(stderr, "  files   manage uploads: put [-type <mime>] <key> <path>, get [-out <file>] <key>, ls [prefix], rm <key>")
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output})
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	if args[0] == "files" {
		return runFiles(ctx, cfg.Blob, args[1:], stdout, stderr)
	}

	store, err := core.OpenPersistentStore(core.StorageOptions{
		Driver:      core.StorageDriver(cfg.Storage.Driver),
		SQLitePath:  cfg.Storage.SQLitePath,
		PostgresDSN: cfg.Storage.PostgresDSN,
		Logger:      log,
	}, core.NewDefaultRulesEngine())
	if err != nil {
		fmt.Fprintf(stderr, "open store: %v\n", err)
		return 1
	}
	defer closeStore(store, log)

	svc := core.NewService(store, core.WithLogger(core.NewZapLogger(log)))

	switch args[0] {
	case "seed":
		return runSeed(ctx, svc, stdout, stderr)
	case "reset":
		return runReset(ctx, svc, stdout, stderr)
	case "stats":
		return runStats(svc, stdout)
	case "export":
		return runExport(args[1:], store, stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func closeStore(store core.PersistentStore, log *zap.Logger) {
	if closer, ok := store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Warn("store close failed", zap.Error(err))
		}
	}
}

func runSeed(ctx context.Context, svc *core.Service, stdout, stderr io.Writer) int {
	summary, err := svc.LoadSampleData(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "seed: %v\n", err)
		return 1
	}
	if summary.AlreadySeeded {
		fmt.Fprintln(stdout, "store already seeded, nothing to do")
		return 0
	}
	fmt.Fprintf(stdout, "seeded %d teams, %d members, %d customers, %d categories, %d transactions\n",
		summary.Teams, summary.Members, summary.Customers, summary.Categories, summary.Transactions)
	return 0
}

func runReset(ctx context.Context, svc *core.Service, stdout, stderr io.Writer) int {
	if err := svc.ResetAllData(ctx); err != nil {
		fmt.Fprintf(stderr, "reset: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, "all collections cleared")
	return 0
}

func runStats(svc *core.Service, stdout io.Writer) int {
	rows := []struct {
		name  string
		count int
	}{
		{"teams", len(svc.ListTeams())},
		{"members", len(svc.ListMembers())},
		{"customers", len(svc.ListCustomers())},
		{"categories", len(svc.ListCategories())},
		{"transactions", len(svc.ListTransactions())},
		{"salaries", len(svc.ListSalaries())},
		{"bonuses", len(svc.ListBonuses())},
		{"commissions", len(svc.ListCommissions())},
		{"customer_transactions", len(svc.ListCustomerTransactions())},
		{"customer_counts", len(svc.ListCustomerCounts())},
		{"users", len(svc.ListUsers())},
		{"audit_logs", len(svc.ListAuditLogs())},
	}
	for _, row := range rows {
		fmt.Fprintf(stdout, "%-22s %d\n", row.name, row.count)
	}
	meta := svc.Meta()
	now := timeutil.Now()
	if meta.SeededAt != nil {
		fmt.Fprintf(stdout, "seeded_at: %s (%s)\n", meta.SeededAt.Format(time.RFC3339), timeutil.Relative(*meta.SeededAt, now))
	}
	if meta.LastSavedAt != nil {
		fmt.Fprintf(stdout, "last_saved_at: %s (%s)\n", meta.LastSavedAt.Format(time.RFC3339), timeutil.Relative(*meta.LastSavedAt, now))
	}
	return 0
}

func runExport(args []string, store core.PersistentStore, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	exporter, ok := store.(interface{ ExportState() memory.Snapshot })
	if !ok {
		fmt.Fprintln(stderr, "export: store does not support snapshot export")
		return 1
	}
	snapshot := exporter.ExportState()

	w := stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(stderr, "export: %v\n", err)
			return 1
		}
		defer func() { _ = file.Close() }()
		w = file
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		fmt.Fprintf(stderr, "export: %v\n", err)
		return 1
	}
	return 0
}

func runFiles(ctx context.Context, cfg config.BlobConfig, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}
	store, err := blob.Open(ctx, blob.Options{
		Driver:      blob.Driver(cfg.Driver),
		FSRoot:      cfg.FSRoot,
		S3Bucket:    cfg.S3Bucket,
		S3Region:    cfg.S3Region,
		S3Endpoint:  cfg.S3Endpoint,
		S3PathStyle: cfg.S3PathStyle,
	})
	if err != nil {
		fmt.Fprintf(stderr, "files: %v\n", err)
		return 1
	}

	switch args[0] {
	case "put":
		return runFilesPut(ctx, store, args[1:], stdout, stderr)
	case "get":
		return runFilesGet(ctx, store, args[1:], stdout, stderr)
	case "ls":
		return runFilesList(ctx, store, args[1:], stdout, stderr)
	case "rm":
		return runFilesRemove(ctx, store, args[1:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}
}

func runFilesPut(ctx context.Context, store blob.Store, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("files put", flag.ContinueOnError)
	fs.SetOutput(stderr)
	contentType := fs.String("type", "", "content type stored with the upload")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: backcore files put [-type <mime>] <key> <path>")
		return 2
	}
	key, path := fs.Arg(0), fs.Arg(1)

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "files put: %v\n", err)
		return 1
	}
	defer func() { _ = file.Close() }()

	info, err := store.Put(ctx, key, file, blob.PutOptions{ContentType: *contentType})
	if err != nil {
		fmt.Fprintf(stderr, "files put: %v\n", err)
		return 1
	}
	fmt.Fprintf(stdout, "stored %s (%d bytes)\n", info.Key, info.Size)
	return 0
}

func runFilesGet(ctx context.Context, store blob.Store, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("files get", flag.ContinueOnError)
	fs.SetOutput(stderr)
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: backcore files get [-out <file>] <key>")
		return 2
	}

	_, rc, err := store.Get(ctx, fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "files get: %v\n", err)
		return 1
	}
	defer func() { _ = rc.Close() }()

	w := stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(stderr, "files get: %v\n", err)
			return 1
		}
		defer func() { _ = file.Close() }()
		w = file
	}
	if _, err := io.Copy(w, rc); err != nil {
		fmt.Fprintf(stderr, "files get: %v\n", err)
		return 1
	}
	return 0
}

func runFilesList(ctx context.Context, store blob.Store, args []string, stdout, stderr io.Writer) int {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	infos, err := store.List(ctx, prefix)
	if err != nil {
		fmt.Fprintf(stderr, "files ls: %v\n", err)
		return 1
	}
	for _, info := range infos {
		fmt.Fprintf(stdout, "%-40s %10d  %s\n", info.Key, info.Size, info.LastModified.Format(time.RFC3339))
	}
	return 0
}

func runFilesRemove(ctx context.Context, store blob.Store, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: backcore files rm <key>")
		return 2
	}
	removed, err := store.Delete(ctx, args[0])
	if err != nil {
		fmt.Fprintf(stderr, "files rm: %v\n", err)
		return 1
	}
	if !removed {
		fmt.Fprintf(stdout, "%s not found\n", args[0])
		return 1
	}
	fmt.Fprintf(stdout, "removed %s\n", args[0])
	return 0
}
