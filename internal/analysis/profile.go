package analysis

import (
	"equiprof/domain/core"
)

// Profile is the merged output of every engine for one analytics invocation.
// The nested field names are consumed by external collaborators and are
// preserved exactly.
type Profile struct {
	ProfileID   core.ProfileID           `json:"profile_id"`
	GeneratedAt core.Timestamp           `json:"generated_at"`
	Summary     Summary                  `json:"summary"`
	Quality     QualityReport            `json:"quality"`
	Correlation CorrelationReport        `json:"correlation"`
	Moments     map[string]Moments       `json:"variance_skewness"`
	Outliers    map[string]OutlierReport `json:"outliers"`
	Anomalies   AnomalyReport            `json:"anomalies"`
	Clusters    ClusterAssignment        `json:"clusters"`
	Insights    []string                 `json:"insights"`
	Preview     string                   `json:"preview"`
}
