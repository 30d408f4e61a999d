package constants

// AnalysisStatus is the canonical status for rows in dce_analyses.
type AnalysisStatus string

// Stable values (store these exact strings in DB).
const (
	AnalysisPending  AnalysisStatus = "PENDING"  // created, pipeline running
	AnalysisPartial  AnalysisStatus = "PARTIAL"  // some sections analyzed, some failed
	AnalysisComplete AnalysisStatus = "COMPLETE" // every section analyzed
	AnalysisFailed   AnalysisStatus = "FAILED"   // terminal failure, nothing usable
)

// Terminal reports whether the status can no longer change.
func (s AnalysisStatus) Terminal() bool {
	return s == AnalysisPartial || s == AnalysisComplete || s == AnalysisFailed
}

// Exportable reports whether a result in this status has content to render.
func (s AnalysisStatus) Exportable() bool {
	return s == AnalysisComplete || s == AnalysisPartial
}

// ReservationState is the lifecycle of a provisional quota debit.
type ReservationState string

const (
	ReservationReserved  ReservationState = "RESERVED"
	ReservationCommitted ReservationState = "COMMITTED"
	ReservationReleased  ReservationState = "RELEASED"
)
