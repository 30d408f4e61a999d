// Package analysis orchestrates the document analysis pipeline: extract,
// chunk, reserve quota, fan out reasoning calls, merge, and persist the
// terminal result atomically with the quota settlement.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bidkiller/dce-analyzer/constants"
	"github.com/bidkiller/dce-analyzer/internal/chunk"
	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
	"github.com/bidkiller/dce-analyzer/internal/extract"
	"github.com/bidkiller/dce-analyzer/internal/llm"
	"github.com/bidkiller/dce-analyzer/internal/quota"
	"github.com/bidkiller/dce-analyzer/internal/repository"
)

// generalInfoTokenCap bounds how much of the document feeds the
// project-metadata pass. The opening pages carry the metadata.
const generalInfoTokenCap = 30000

// Pipeline runs one full document analysis. Construction wires the stages;
// Analyze is safe for concurrent use.
type Pipeline struct {
	cfg       common.PipelineConfig
	extractor *extract.Extractor
	chunker   *chunk.Chunker
	gate      *quota.Gate
	analyzer  llm.Analyzer
	documents repository.DocumentRepository
	analyses  repository.AnalysisRepository
	audit     repository.AuditRepository
	logger    *slog.Logger

	// tracks in-flight background runs for graceful shutdown
	wg sync.WaitGroup
}

func NewPipeline(
	cfg common.PipelineConfig,
	extractor *extract.Extractor,
	chunker *chunk.Chunker,
	gate *quota.Gate,
	analyzer llm.Analyzer,
	documents repository.DocumentRepository,
	analyses repository.AnalysisRepository,
	audit repository.AuditRepository,
	logger *slog.Logger,
) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:       cfg,
		extractor: extractor,
		chunker:   chunker,
		gate:      gate,
		analyzer:  analyzer,
		documents: documents,
		analyses:  analyses,
		audit:     audit,
		logger:    logger,
	}
}

// Analyze validates and prepares the upload synchronously, reserves one
// quota unit, persists the document and a PENDING result, then continues
// the reasoning fan-out in the background. Validation failures surface
// before any quota is touched.
func (p *Pipeline) Analyze(ctx context.Context, accountID uuid.UUID, filename string, content []byte) (*entity.AnalysisResult, error) {
	start := time.Now()

	format, err := formatFor(filename)
	if err != nil {
		return nil, err
	}

	extracted, err := p.extractor.Extract(content, format)
	if err != nil {
		return nil, err
	}

	chunks, err := p.chunker.Chunk(extracted)
	if err != nil {
		return nil, err
	}

	// quota is only consumed once the input is known to be analyzable
	reservationID, err := p.gate.Reserve(ctx, accountID, 1)
	if err != nil {
		return nil, err
	}

	doc, err := p.documents.Create(ctx, &repository.CreateDocumentRequest{
		AccountID: accountID,
		Filename:  filename,
		Format:    format,
		SizeBytes: int64(len(content)),
	})
	if err != nil {
		// undo the reservation; the unit was never used
		if relErr := p.gate.Release(ctx, reservationID); relErr != nil {
			p.logger.Error("release after failed document create", "reservation_id", reservationID, "error", relErr)
		}
		return nil, err
	}
	p.audit.Record(ctx, accountID, entity.AuditUploadAccepted, "document", &doc.ID, map[string]any{
		"filename": filename, "format": format, "size_bytes": len(content), "chunks": len(chunks),
	})
	p.audit.Record(ctx, accountID, entity.AuditQuotaReserved, "reservation", &reservationID, map[string]any{"units": 1})

	result, err := p.analyses.Create(ctx, accountID, doc.ID, reservationID)
	if err != nil {
		if relErr := p.gate.Release(ctx, reservationID); relErr != nil {
			p.logger.Error("release after failed analysis create", "reservation_id", reservationID, "error", relErr)
		}
		return nil, err
	}

	p.logger.Info("pipeline.accepted",
		"analysis_id", result.ID,
		"account_id", accountID,
		"document_id", doc.ID,
		"chunks", len(chunks),
		"elapsed_ms", time.Since(start).Milliseconds())

	// the run outlives the request; detach from its cancellation but keep
	// request-scoped values for logging
	runCtx := context.WithoutCancel(ctx)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(runCtx, result.ID, accountID, doc, extracted, chunks)
	}()

	return result, nil
}

// Wait blocks until all in-flight background runs have finished.
func (p *Pipeline) Wait() {
	p.wg.Wait()
}

// run executes the reasoning stages and finalizes the result. All paths
// reach Finalize exactly once; panics are converted into a FAILED result so
// the reservation is never left dangling.
func (p *Pipeline) run(ctx context.Context, resultID, accountID uuid.UUID, doc *entity.Document, extracted *entity.ExtractedText, chunks []entity.Chunk) {
	start := time.Now()
	log := p.logger.With("analysis_id", resultID, "account_id", accountID)

	defer func() {
		if r := recover(); r != nil {
			log.Error("pipeline.panic", "panic", r)
			msg := fmt.Sprintf("internal error: %v", r)
			p.finalize(ctx, log, accountID, &repository.FinalizeRequest{
				ResultID:     resultID,
				Status:       constants.AnalysisFailed,
				ErrorMessage: &msg,
			})
		}
	}()

	p.setProgress(ctx, resultID, 5, "extracting_metadata")
	general := p.generalInfoPass(ctx, log, doc.Filename, extracted)

	p.setProgress(ctx, resultID, 10, "analyzing_chunks")
	results, chunkErrs := p.fanOut(ctx, log, resultID, accountID, doc.Filename, chunks)

	p.setProgress(ctx, resultID, 95, "merging")
	merged := mergeChunkResults(chunks, results, chunkErrs)

	req := &repository.FinalizeRequest{
		ResultID:   resultID,
		Status:     merged.status,
		Findings:   merged.findings,
		Summary:    merged.summary,
		General:    general,
		Unanalyzed: merged.unanalyzed,
	}
	if merged.status == constants.AnalysisFailed {
		msg := merged.failureMessage
		req.ErrorMessage = &msg
	}
	if ok := p.finalize(ctx, log, accountID, req); ok && merged.status.Exportable() {
		p.audit.Record(ctx, accountID, entity.AuditResultCommitted, "analysis", &resultID, map[string]any{
			"status": string(merged.status), "findings": len(merged.findings),
		})
	}

	log.Info("pipeline.finished",
		"status", string(merged.status),
		"findings", len(merged.findings),
		"unanalyzed", len(merged.unanalyzed),
		"elapsed_ms", time.Since(start).Milliseconds())
}

// generalInfoPass extracts project metadata from the document opening. A
// failure here never fails the run; metadata is best-effort.
func (p *Pipeline) generalInfoPass(ctx context.Context, log *slog.Logger, filename string, extracted *entity.ExtractedText) entity.GeneralInfo {
	var b strings.Builder
	budget := generalInfoTokenCap
	for _, sec := range extracted.Sections {
		n := chunk.TokenCount(sec.Text)
		if n > budget {
			break
		}
		budget -= n
		b.WriteString(sec.Text)
		b.WriteString("\n\n")
	}
	if b.Len() == 0 && len(extracted.Sections) > 0 {
		b.WriteString(extracted.Sections[0].Text)
	}

	info, err := p.analyzer.ExtractGeneralInfo(ctx, filename, b.String())
	if err != nil {
		log.Warn("llm.general_info.failed", "error", err)
		return entity.GeneralInfo{}
	}
	return entity.GeneralInfo{
		ProjectName: info.ProjectName,
		ClientName:  info.ClientName,
		BudgetHT:    info.BudgetHT,
		Deadline:    info.Deadline,
	}
}

// fanOut analyzes all chunks with bounded concurrency. The result and error
// slices are indexed by chunk index so the merge stays deterministic
// regardless of completion order.
func (p *Pipeline) fanOut(ctx context.Context, log *slog.Logger, resultID, accountID uuid.UUID, filename string, chunks []entity.Chunk) ([]llm.ChunkResponse, []error) {
	results := make([]llm.ChunkResponse, len(chunks))
	chunkErrs := make([]error, len(chunks))

	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.MaxConcurrency)
	for _, ch := range chunks {
		ch := ch
		g.Go(func() error {
			resp, err := p.analyzeWithRetry(gctx, log, accountID, resultID, filename, ch)
			results[ch.Index] = resp
			chunkErrs[ch.Index] = err

			// 10..95 band is owned by the fan-out stage
			n := done.Add(1)
			progress := 10 + int(n)*85/len(chunks)
			p.setProgress(ctx, resultID, progress, "analyzing_chunks")
			return nil // chunk failures degrade the result, never cancel siblings
		})
	}
	_ = g.Wait()
	return results, chunkErrs
}

// analyzeWithRetry runs one chunk call with bounded retries. Only transient
// provider errors are retried; schema violations and other permanent errors
// fail the chunk immediately.
func (p *Pipeline) analyzeWithRetry(ctx context.Context, log *slog.Logger, accountID, resultID uuid.UUID, filename string, ch entity.Chunk) (llm.ChunkResponse, error) {
	req := llm.ChunkRequest{
		DocumentName: filename,
		Section:      ch.Section,
		ChunkIndex:   ch.Index,
		Text:         ch.Text,
		AllowedLots:  constants.LotsAsStringSlice(),
	}

	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		p.audit.Record(ctx, accountID, entity.AuditAICallAttempt, "analysis", &resultID, map[string]any{
			"chunk_index": ch.Index, "attempt": attempt,
		})

		resp, _, err := p.analyzer.AnalyzeChunk(ctx, req)
		if err == nil {
			p.audit.Record(ctx, accountID, entity.AuditAICallSucceeded, "analysis", &resultID, map[string]any{
				"chunk_index": ch.Index, "attempt": attempt, "findings": len(resp.Findings),
			})
			return resp, nil
		}
		lastErr = err
		log.Warn("llm.chunk.attempt_failed",
			"chunk_index", ch.Index, "attempt", attempt, "transient", llm.IsTransient(err), "error", err)

		if !llm.IsTransient(err) || attempt == p.cfg.MaxAttempts {
			break
		}
		delay := p.cfg.RetryBaseDelay << (attempt - 1)
		select {
		case <-ctx.Done():
			lastErr = ctx.Err()
			attempt = p.cfg.MaxAttempts
		case <-time.After(delay):
		}
	}

	p.audit.Record(ctx, accountID, entity.AuditAICallFailed, "analysis", &resultID, map[string]any{
		"chunk_index": ch.Index, "error": lastErr.Error(),
	})
	return llm.ChunkResponse{}, lastErr
}

func (p *Pipeline) setProgress(ctx context.Context, resultID uuid.UUID, progress int, step string) {
	if err := p.analyses.SetProgress(ctx, resultID, progress, step); err != nil {
		p.logger.Warn("progress update failed", "analysis_id", resultID, "error", err)
	}
}

// finalize persists the terminal result. The repository settles the quota
// reservation in the same transaction. A persistence failure here means the
// result row and the reservation may be inconsistent, which an operator has
// to reconcile by hand, so it is the one path that records a
// needs_manual_review audit entry.
func (p *Pipeline) finalize(ctx context.Context, log *slog.Logger, accountID uuid.UUID, req *repository.FinalizeRequest) bool {
	if err := p.analyses.Finalize(ctx, req); err != nil {
		log.Error("pipeline.finalize_failed", "status", string(req.Status), "error", err)
		p.audit.Record(ctx, accountID, entity.AuditNeedsReview, "analysis", &req.ResultID, map[string]any{
			"status": string(req.Status), "error": err.Error(),
		})
		return false
	}
	return true
}

// mergedResult is the deterministic merge of all chunk outcomes.
type mergedResult struct {
	status         constants.AnalysisStatus
	findings       []entity.Finding
	summary        string
	unanalyzed     []string
	failureMessage string
}

// mergeChunkResults combines per-chunk responses in chunk index order.
// Findings keep their source attribution; sections of failed chunks are
// listed once each in the unanalyzed manifest.
func mergeChunkResults(chunks []entity.Chunk, results []llm.ChunkResponse, chunkErrs []error) mergedResult {
	var m mergedResult
	var summaries []string
	failedSections := make(map[string]bool)
	succeeded := 0

	for i, ch := range chunks {
		if chunkErrs[i] != nil {
			failedSections[ch.Section] = true
			if m.failureMessage == "" {
				m.failureMessage = chunkErrs[i].Error()
			}
			continue
		}
		succeeded++
		for _, f := range results[i].Findings {
			lot, ok := constants.CanonicalizeLot(f.Lot)
			if !ok {
				// the model's label missed the taxonomy; fall back to lot
				// vocabulary in the finding itself before giving up
				if detected := constants.DetectLots(f.Title + " " + f.Content); len(detected) > 0 {
					lot = detected[0]
				}
			}
			m.findings = append(m.findings, entity.Finding{
				Lot:        string(lot),
				Title:      f.Title,
				Content:    f.Content,
				Confidence: f.Confidence,
				Section:    ch.Section,
				ChunkIndex: ch.Index,
			})
		}
		if s := strings.TrimSpace(results[i].Summary); s != "" {
			summaries = append(summaries, s)
		}
	}

	m.summary = strings.Join(summaries, "\n")
	for sec := range failedSections {
		m.unanalyzed = append(m.unanalyzed, sec)
	}
	sort.Strings(m.unanalyzed)

	switch {
	case succeeded == len(chunks):
		m.status = constants.AnalysisComplete
	case succeeded > 0:
		m.status = constants.AnalysisPartial
	default:
		m.status = constants.AnalysisFailed
		if m.failureMessage == "" {
			m.failureMessage = "all chunks failed"
		}
	}
	return m
}

func formatFor(filename string) (string, error) {
	ext := filepath.Ext(filename)
	format := constants.MapExtToFormat(ext)
	if format == "" {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
	return format, nil
}
