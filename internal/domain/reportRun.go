package domain

import "time"

// Status possíveis de uma execução de geração de relatórios
const (
	ReportRunStatusCompleted = "completed"
	ReportRunStatusFailed    = "failed"
)

// ReportRun registra o resultado de uma execução do pipeline de relatórios
type ReportRun struct {
	ID            string    `json:"id"`
	ReferenceDate time.Time `json:"reference_date"`
	Status        string    `json:"status"`
	SnapshotCount int       `json:"snapshot_count"`
	ReportsSent   int       `json:"reports_sent"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	StartedAt     time.Time `json:"started_at"`
	CompletedAt   time.Time `json:"completed_at"`
}
