// Package config holds the immutable tuning parameters of the analytics
// engine. Thresholds are heuristic; they are configuration, not statistical
// guarantees.
package config

import (
	"os"
	"strconv"
)

// Params carries every threshold and constant the engines consume. A Params
// value is passed in explicitly; nothing reads process-wide state.
type Params struct {
	// RequiredColumns must all be present in the header or validation fails.
	RequiredColumns []string

	// BaseNumericColumns must parse as floats wherever non-empty, and serve
	// as the fallback numeric set when ratio-based inference finds nothing.
	BaseNumericColumns []string

	// CategoricalAnchors are never considered for numeric inference.
	CategoricalAnchors []string

	// TypeColumn feeds the categorical type distribution.
	TypeColumn string

	// AnomalyColumns are the columns scanned by z-score anomaly detection.
	AnomalyColumns []string

	// NumericDetectRatio is the minimum fraction of non-empty values that
	// must parse as floats for a column to be classified numeric.
	NumericDetectRatio float64

	ZScoreThreshold float64
	IQRMultiplier   float64

	MaxClusters    int
	KMeansRestarts int
	KMeansSeed     int64

	DuplicateSampleLimit int
	OutlierSampleLimit   int
	StrongestPairLimit   int
	PreviewRows          int
}

// DefaultParams returns the engine defaults
func DefaultParams() Params {
	return Params{
		RequiredColumns:      []string{"Equipment Name", "Type", "Flowrate", "Pressure", "Temperature"},
		BaseNumericColumns:   []string{"Flowrate", "Pressure", "Temperature"},
		CategoricalAnchors:   []string{"Type", "Equipment Name"},
		TypeColumn:           "Type",
		AnomalyColumns:       []string{"Flowrate", "Pressure", "Temperature"},
		NumericDetectRatio:   0.8,
		ZScoreThreshold:      3.0,
		IQRMultiplier:        1.5,
		MaxClusters:          4,
		KMeansRestarts:       10,
		KMeansSeed:           42,
		DuplicateSampleLimit: 3,
		OutlierSampleLimit:   8,
		StrongestPairLimit:   3,
		PreviewRows:          10,
	}
}

// FromEnv returns DefaultParams with numeric knobs overridable via
// EQUIPROF_* environment variables.
func FromEnv() Params {
	p := DefaultParams()
	p.NumericDetectRatio = getEnvFloatOrDefault("EQUIPROF_NUMERIC_RATIO", p.NumericDetectRatio)
	p.ZScoreThreshold = getEnvFloatOrDefault("EQUIPROF_ZSCORE_THRESHOLD", p.ZScoreThreshold)
	p.IQRMultiplier = getEnvFloatOrDefault("EQUIPROF_IQR_MULTIPLIER", p.IQRMultiplier)
	p.MaxClusters = getEnvIntOrDefault("EQUIPROF_MAX_CLUSTERS", p.MaxClusters)
	p.KMeansRestarts = getEnvIntOrDefault("EQUIPROF_KMEANS_RESTARTS", p.KMeansRestarts)
	p.PreviewRows = getEnvIntOrDefault("EQUIPROF_PREVIEW_ROWS", p.PreviewRows)
	return p
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
