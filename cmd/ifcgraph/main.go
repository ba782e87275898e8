package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/meshwerk/ifcgraph/internal/timing"
	"github.com/meshwerk/ifcgraph/internal/util"
	"github.com/meshwerk/ifcgraph/pkg/graph"
	"github.com/meshwerk/ifcgraph/pkg/loader"
	loaderio "github.com/meshwerk/ifcgraph/pkg/loader/io"
	loaders3 "github.com/meshwerk/ifcgraph/pkg/loader/s3"
	"github.com/meshwerk/ifcgraph/pkg/logger"
	"github.com/meshwerk/ifcgraph/pkg/logger/console"
	"github.com/meshwerk/ifcgraph/pkg/model/schema"
	"github.com/meshwerk/ifcgraph/pkg/model/step"
	"github.com/meshwerk/ifcgraph/pkg/sink/neo4j"
)

func main() {
	util.LoadEnv()
	logger.Init(console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: util.GetEnvBool("DEBUG", false),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Fatal("conversion failed", "error", err)
	}
}

func run(ctx context.Context) error {
	modelPath := util.GetEnv("MODEL_PATH")
	if modelPath == "" {
		return errors.New("MODEL_PATH is required")
	}

	fileLoader, err := newModelFileLoader(ctx)
	if err != nil {
		return fmt.Errorf("failed to create model file loader: %w", err)
	}
	file := loader.NewModelFile(loader.NewModelFileParams{
		ID:       "model",
		FilePath: modelPath,
		Loader:   fileLoader,
	})

	span := timing.Start("parse")
	data, err := file.GetText(ctx)
	if err != nil {
		return fmt.Errorf("failed to read model file %s: %w", modelPath, err)
	}
	src, err := step.Parse(data, schema.IFC())
	if err != nil {
		return fmt.Errorf("failed to parse model file %s: %w", modelPath, err)
	}
	span.End("entities", src.Len(), "schema", src.SchemaName())

	client, err := util.RetryWithContext(ctx, 3, func(ctx context.Context) (*neo4j.Client, error) {
		return neo4j.New(ctx, neo4j.Config{
			URI:      util.GetEnvString("NEO4J_URI", "bolt://localhost:7687"),
			Username: util.GetEnvString("NEO4J_USERNAME", "neo4j"),
			Password: util.GetEnv("NEO4J_PASSWORD"),
			Database: util.GetEnv("NEO4J_DATABASE"),
		})
	})
	if err != nil {
		return fmt.Errorf("failed to connect to neo4j: %w", err)
	}
	defer client.Close(ctx)

	// The target database is replaced wholesale on every run.
	if err := client.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear database: %w", err)
	}

	opts := graph.DefaultOptions()
	opts.AuxiliaryTypes = []string{"IfcOwnerHistory"}
	opts.RootType = "IfcProject"
	opts.HierarchyLabels = util.GetEnvBool("HIERARCHY_LABELS", true)

	g := graph.NewGraph()
	span = timing.Start("build")
	if util.GetEnvBool("PARALLEL_EXTRACT", false) {
		workers := util.GetEnvInt("EXTRACT_WORKERS", runtime.NumCPU())
		err = graph.BuildFullGraphParallel(ctx, src, g, opts, workers)
	} else {
		err = graph.BuildFullGraph(ctx, src, g, opts)
	}
	if err != nil {
		return err
	}
	span.End("nodes", g.NodeCount(), "relationships", g.RelationshipCount())

	span = timing.Start("emit")
	if err := graph.Emit(ctx, g, client); err != nil {
		return err
	}
	span.End()

	return nil
}

func newModelFileLoader(ctx context.Context) (loader.ModelFileLoader, error) {
	switch source := util.GetEnvString("MODEL_SOURCE", "file"); source {
	case "file":
		return loaderio.NewIOModelFileLoader(), nil
	case "s3":
		return loaders3.NewS3ModelFileLoader(ctx, loaders3.NewS3ModelFileLoaderParams{
			Bucket:    util.GetEnv("AWS_BUCKET"),
			Endpoint:  util.GetEnv("AWS_ENDPOINT"),
			Region:    util.GetEnvString("AWS_REGION", "us-east-1"),
			AccessKey: util.GetEnv("AWS_ACCESS_KEY"),
			SecretKey: util.GetEnv("AWS_SECRET_KEY"),
		})
	default:
		return nil, fmt.Errorf("unknown MODEL_SOURCE %q", source)
	}
}
