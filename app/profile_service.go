// Package app wires the reader and the analysis engines into a single
// profiling pipeline. The service holds no cross-call state; every Analyze
// call works on a fresh Table built from the input bytes.
package app

import (
	"context"

	"equiprof/adapters/excel"
	"equiprof/domain/core"
	"equiprof/internal"
	"equiprof/internal/analysis"
	"equiprof/internal/config"
)

// ProfileService runs the full analytics pipeline over one byte buffer
type ProfileService struct {
	params config.Params
	log    *internal.Logger
}

// NewProfileService creates a service with the given engine parameters
func NewProfileService(params config.Params) *ProfileService {
	return &ProfileService{
		params: params,
		log:    internal.DefaultLogger,
	}
}

// AnalyzeOptions carries the per-request knobs of the pipeline
type AnalyzeOptions struct {
	// PreviousHeader, when set, feeds schema-drift detection.
	PreviousHeader []string

	// FeatureColumns selects the clustering feature subset; defaults to the
	// inferred numeric columns.
	FeatureColumns []string

	// MaxClusters overrides the configured k-sweep ceiling when positive.
	MaxClusters int
}

// Analyze decodes the bytes, validates the schema, and runs every engine,
// merging the results into one Profile. Decode and validation failures are
// fatal; every statistical engine degrades gracefully on thin data.
func (s *ProfileService) Analyze(ctx context.Context, data []byte, filename string, opts AnalyzeOptions) (*analysis.Profile, error) {
	table, err := excel.NewDataReader(filename).Read(data)
	if err != nil {
		return nil, err
	}
	if err := analysis.ValidateSchema(table, s.params); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	numeric := analysis.InferNumericColumns(table, s.params)
	numericNames := analysis.NumericColumnNames(numeric)
	s.log.Info("[Profiler] analyzing %s: %d rows, %d numeric columns", filename, len(table.Rows), len(numeric))

	params := s.params
	if opts.MaxClusters > 0 {
		params.MaxClusters = opts.MaxClusters
	}
	features := opts.FeatureColumns
	if len(features) == 0 {
		features = numericNames
	}

	summary := analysis.ComputeSummary(table, numeric, params)
	quality := analysis.ComputeQuality(table, opts.PreviousHeader, params)
	correlation := analysis.ComputeCorrelations(table, numericNames, params)
	moments := analysis.ComputeMoments(table, numericNames)
	outliers := analysis.ComputeOutliers(table, numericNames, params)
	anomalies := analysis.DetectAnomalies(table, params.AnomalyColumns, params)
	clusters := analysis.ComputeClusters(table, features, params)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &analysis.Profile{
		ProfileID:   core.NewProfileID(),
		GeneratedAt: core.Now(),
		Summary:     summary,
		Quality:     quality,
		Correlation: correlation,
		Moments:     moments,
		Outliers:    outliers,
		Anomalies:   anomalies,
		Clusters:    clusters,
		Insights:    analysis.BuildInsights(numericNames, summary, moments, correlation, outliers, anomalies),
		Preview:     analysis.BuildPreview(table, params.PreviewRows),
	}, nil
}
