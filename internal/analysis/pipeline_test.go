package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/bidkiller/dce-analyzer/constants"
	"github.com/bidkiller/dce-analyzer/internal/chunk"
	"github.com/bidkiller/dce-analyzer/internal/common"
	"github.com/bidkiller/dce-analyzer/internal/entity"
	"github.com/bidkiller/dce-analyzer/internal/extract"
	"github.com/bidkiller/dce-analyzer/internal/llm"
	"github.com/bidkiller/dce-analyzer/internal/quota"
	"github.com/bidkiller/dce-analyzer/internal/repository"
)

// fakeDocs keeps documents in memory.
type fakeDocs struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*entity.Document
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{docs: make(map[uuid.UUID]*entity.Document)}
}

func (f *fakeDocs) Create(_ context.Context, req *repository.CreateDocumentRequest) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := &entity.Document{
		ID:         uuid.New(),
		AccountID:  req.AccountID,
		Filename:   req.Filename,
		Format:     req.Format,
		SizeBytes:  req.SizeBytes,
		UploadedAt: time.Now(),
	}
	f.docs[d.ID] = d
	return d, nil
}

func (f *fakeDocs) GetByID(_ context.Context, documentID, _ uuid.UUID) (*entity.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.docs[documentID]; ok {
		return d, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeDocs) Delete(_ context.Context, documentID, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, documentID)
	return nil
}

func (f *fakeDocs) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

// fakeAnalyses stores results in memory and settles reservations through
// the quota store on finalize, matching the persistence contract.
type fakeAnalyses struct {
	mu      sync.Mutex
	store   quota.Store
	results map[uuid.UUID]*entity.AnalysisResult
	resv    map[uuid.UUID]uuid.UUID // result -> reservation
}

func newFakeAnalyses(store quota.Store) *fakeAnalyses {
	return &fakeAnalyses{
		store:   store,
		results: make(map[uuid.UUID]*entity.AnalysisResult),
		resv:    make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeAnalyses) Create(_ context.Context, accountID, documentID, reservationID uuid.UUID) (*entity.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res := &entity.AnalysisResult{
		ID:         uuid.New(),
		AccountID:  accountID,
		DocumentID: documentID,
		Status:     constants.AnalysisPending,
		CreatedAt:  time.Now(),
	}
	f.results[res.ID] = res
	f.resv[res.ID] = reservationID
	return res, nil
}

func (f *fakeAnalyses) SetProgress(_ context.Context, resultID uuid.UUID, progress int, step string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if res, ok := f.results[resultID]; ok && res.Status == constants.AnalysisPending {
		res.Progress = progress
		res.CurrentStep = step
	}
	return nil
}

func (f *fakeAnalyses) Finalize(ctx context.Context, req *repository.FinalizeRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.results[req.ResultID]
	if !ok {
		return common.ErrNotFound
	}
	if res.Status != constants.AnalysisPending {
		return common.ErrInvalidInput
	}
	res.Status = req.Status
	res.Findings = req.Findings
	res.Summary = req.Summary
	res.General = req.General
	res.Unanalyzed = req.Unanalyzed
	res.Error = req.ErrorMessage
	now := time.Now()
	res.CompletedAt = &now

	if id, ok := f.resv[req.ResultID]; ok {
		if req.Status.Exportable() {
			return f.store.Commit(ctx, id)
		}
		return f.store.Release(ctx, id)
	}
	return nil
}

func (f *fakeAnalyses) Get(_ context.Context, resultID, _ uuid.UUID) (*entity.AnalysisResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if res, ok := f.results[resultID]; ok {
		return res, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeAnalyses) List(_ context.Context, _ uuid.UUID, _, _ int) ([]*entity.AnalysisResult, error) {
	return nil, nil
}

func (f *fakeAnalyses) Delete(_ context.Context, resultID, _ uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.results, resultID)
	return nil
}

func (f *fakeAnalyses) FailStale(context.Context, time.Duration) (int, error) {
	return 0, nil
}

// fakeAudit counts events per action.
type fakeAudit struct {
	mu      sync.Mutex
	actions map[string]int
}

func newFakeAudit() *fakeAudit {
	return &fakeAudit{actions: make(map[string]int)}
}

func (f *fakeAudit) Record(_ context.Context, _ uuid.UUID, action, _ string, _ *uuid.UUID, _ map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions[action]++
}

func (f *fakeAudit) ListByAccount(context.Context, uuid.UUID, int) ([]*entity.AuditLogEntry, error) {
	return nil, nil
}

func (f *fakeAudit) count(action string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.actions[action]
}

// fakeAnalyzer delegates chunk calls to a function.
type fakeAnalyzer struct {
	analyze func(req llm.ChunkRequest) (llm.ChunkResponse, error)
	general func() (llm.GeneralInfo, error)
}

func (f *fakeAnalyzer) AnalyzeChunk(_ context.Context, req llm.ChunkRequest) (llm.ChunkResponse, []byte, error) {
	resp, err := f.analyze(req)
	return resp, nil, err
}

func (f *fakeAnalyzer) ExtractGeneralInfo(context.Context, string, string) (llm.GeneralInfo, error) {
	if f.general != nil {
		return f.general()
	}
	return llm.GeneralInfo{}, nil
}

type testEnv struct {
	pipeline *Pipeline
	store    *quota.MemoryStore
	docs     *fakeDocs
	analyses *fakeAnalyses
	audit    *fakeAudit
}

func newTestEnv(t *testing.T, allowance int, analyzer llm.Analyzer) *testEnv {
	t.Helper()
	store := quota.NewMemoryStore()
	gate := quota.NewGate(store, fixedAllowance(allowance), nil)
	docs := newFakeDocs()
	analyses := newFakeAnalyses(store)
	audit := newFakeAudit()

	cfg := common.PipelineConfig{
		MaxChunkTokens: 8,
		MaxConcurrency: 2,
		MaxAttempts:    2,
		RetryBaseDelay: time.Millisecond,
	}
	p := NewPipeline(cfg,
		extract.NewExtractor(0, nil),
		chunk.NewChunker(cfg.MaxChunkTokens),
		gate,
		analyzer,
		docs,
		analyses,
		audit,
		nil,
	)
	return &testEnv{pipeline: p, store: store, docs: docs, analyses: analyses, audit: audit}
}

type fixedAllowance int

func (f fixedAllowance) GetAllowance(context.Context, uuid.UUID) (int, error) {
	return int(f), nil
}

const testDoc = `# Lot 3 - Plomberie
Alimentation en eau froide et eau chaude sanitaire pour tous les niveaux du batiment.

# Lot 8 - Peinture
Deux couches de peinture acrylique sur murs et plafonds de toutes les pieces.
`

func finalResult(t *testing.T, env *testEnv, id uuid.UUID) *entity.AnalysisResult {
	t.Helper()
	env.pipeline.Wait()
	res, err := env.analyses.Get(context.Background(), id, uuid.Nil)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if !res.Status.Terminal() {
		t.Fatalf("result is still %s after Wait", res.Status)
	}
	return res
}

func TestPipeline_CompleteRun(t *testing.T) {
	analyzer := &fakeAnalyzer{
		analyze: func(req llm.ChunkRequest) (llm.ChunkResponse, error) {
			return llm.ChunkResponse{
				Findings: []llm.Finding{{
					Lot:     "Plomberie",
					Title:   fmt.Sprintf("Point %d", req.ChunkIndex),
					Content: req.Section,
				}},
				Summary: fmt.Sprintf("résumé %d", req.ChunkIndex),
			}, nil
		},
		general: func() (llm.GeneralInfo, error) {
			budget := 350000.0
			return llm.GeneralInfo{ProjectName: "Gymnase municipal", BudgetHT: &budget, Deadline: "2026-10-01"}, nil
		},
	}
	env := newTestEnv(t, 10, analyzer)
	accountID := uuid.New()

	res, err := env.pipeline.Analyze(context.Background(), accountID, "cctp.md", []byte(testDoc))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Status != constants.AnalysisPending {
		t.Fatalf("initial status = %s, want PENDING", res.Status)
	}

	final := finalResult(t, env, res.ID)
	if final.Status != constants.AnalysisComplete {
		t.Fatalf("status = %s, want COMPLETE (error: %v)", final.Status, final.Error)
	}
	if len(final.Findings) == 0 {
		t.Fatal("no findings")
	}
	for i := 1; i < len(final.Findings); i++ {
		if final.Findings[i].ChunkIndex < final.Findings[i-1].ChunkIndex {
			t.Fatal("findings are not in chunk index order")
		}
	}
	for _, f := range final.Findings {
		if f.Section == "" {
			t.Error("finding lost its section attribution")
		}
		if f.Lot != string(constants.Plomberie) {
			t.Errorf("lot = %q, want %q", f.Lot, constants.Plomberie)
		}
	}
	if final.General.ProjectName != "Gymnase municipal" {
		t.Errorf("general info lost: %+v", final.General)
	}

	committed, reserved := env.store.Usage(accountID, quota.PeriodStart(time.Now()))
	if committed != 1 || reserved != 0 {
		t.Errorf("usage = (committed %d, reserved %d), want (1, 0)", committed, reserved)
	}
	if env.audit.count(entity.AuditResultCommitted) != 1 {
		t.Error("missing result_committed audit event")
	}
}

func TestPipeline_PartialRun(t *testing.T) {
	analyzer := &fakeAnalyzer{
		analyze: func(req llm.ChunkRequest) (llm.ChunkResponse, error) {
			if strings.Contains(req.Section, "Peinture") {
				return llm.ChunkResponse{}, llm.NewPermanentError(400, errors.New("rejected"))
			}
			return llm.ChunkResponse{
				Findings: []llm.Finding{{Lot: "Plomberie", Title: "EFS", Content: "réseau"}},
			}, nil
		},
	}
	env := newTestEnv(t, 10, analyzer)
	accountID := uuid.New()

	res, err := env.pipeline.Analyze(context.Background(), accountID, "cctp.md", []byte(testDoc))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	final := finalResult(t, env, res.ID)
	if final.Status != constants.AnalysisPartial {
		t.Fatalf("status = %s, want PARTIAL", final.Status)
	}
	found := false
	for _, sec := range final.Unanalyzed {
		if strings.Contains(sec, "Peinture") {
			found = true
		}
	}
	if !found {
		t.Errorf("unanalyzed = %v, want the Peinture section listed", final.Unanalyzed)
	}

	// a partial result still consumes the unit
	committed, reserved := env.store.Usage(accountID, quota.PeriodStart(time.Now()))
	if committed != 1 || reserved != 0 {
		t.Errorf("usage = (committed %d, reserved %d), want (1, 0)", committed, reserved)
	}
	// degraded-but-persisted results are covered by the unanalyzed manifest,
	// not by the manual-review trail
	if n := env.audit.count(entity.AuditNeedsReview); n != 0 {
		t.Errorf("needs_manual_review recorded %d times for a persisted PARTIAL, want 0", n)
	}
	if env.audit.count(entity.AuditResultCommitted) != 1 {
		t.Error("missing result_committed audit event")
	}
}

func TestPipeline_AllChunksFailReleasesQuota(t *testing.T) {
	analyzer := &fakeAnalyzer{
		analyze: func(llm.ChunkRequest) (llm.ChunkResponse, error) {
			return llm.ChunkResponse{}, llm.NewPermanentError(400, errors.New("rejected"))
		},
	}
	env := newTestEnv(t, 10, analyzer)
	accountID := uuid.New()

	res, err := env.pipeline.Analyze(context.Background(), accountID, "cctp.md", []byte(testDoc))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	final := finalResult(t, env, res.ID)
	if final.Status != constants.AnalysisFailed {
		t.Fatalf("status = %s, want FAILED", final.Status)
	}
	if final.Error == nil {
		t.Error("failed result carries no error message")
	}

	committed, reserved := env.store.Usage(accountID, quota.PeriodStart(time.Now()))
	if committed != 0 || reserved != 0 {
		t.Errorf("usage = (committed %d, reserved %d), want (0, 0) after release", committed, reserved)
	}
}

func TestPipeline_TransientErrorsAreRetried(t *testing.T) {
	var mu sync.Mutex
	attempts := make(map[int]int)
	analyzer := &fakeAnalyzer{
		analyze: func(req llm.ChunkRequest) (llm.ChunkResponse, error) {
			mu.Lock()
			attempts[req.ChunkIndex]++
			n := attempts[req.ChunkIndex]
			mu.Unlock()
			if n == 1 {
				return llm.ChunkResponse{}, llm.NewTransientError(429, errors.New("rate limited"))
			}
			return llm.ChunkResponse{Findings: []llm.Finding{{Lot: "CVC", Title: "VMC", Content: "double flux"}}}, nil
		},
	}
	env := newTestEnv(t, 10, analyzer)

	res, err := env.pipeline.Analyze(context.Background(), uuid.New(), "cctp.md", []byte(testDoc))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	final := finalResult(t, env, res.ID)
	if final.Status != constants.AnalysisComplete {
		t.Fatalf("status = %s, want COMPLETE after retry", final.Status)
	}
	for idx, n := range attempts {
		if n != 2 {
			t.Errorf("chunk %d took %d attempts, want 2", idx, n)
		}
	}
}

// brokenFinalize simulates a persistence failure at the atomic
// finalize-plus-settle step.
type brokenFinalize struct {
	*fakeAnalyses
}

func (b *brokenFinalize) Finalize(context.Context, *repository.FinalizeRequest) error {
	return fmt.Errorf("%w: connection reset", common.ErrDatabase)
}

func TestPipeline_FinalizeFailureNeedsManualReview(t *testing.T) {
	analyzer := &fakeAnalyzer{
		analyze: func(llm.ChunkRequest) (llm.ChunkResponse, error) {
			return llm.ChunkResponse{Findings: []llm.Finding{{Lot: "Plomberie", Title: "EFS", Content: "réseau"}}}, nil
		},
	}
	env := newTestEnv(t, 10, analyzer)
	env.pipeline.analyses = &brokenFinalize{fakeAnalyses: env.analyses}

	res, err := env.pipeline.Analyze(context.Background(), uuid.New(), "cctp.md", []byte(testDoc))
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	env.pipeline.Wait()

	if n := env.audit.count(entity.AuditNeedsReview); n != 1 {
		t.Errorf("needs_manual_review recorded %d times, want 1", n)
	}
	if n := env.audit.count(entity.AuditResultCommitted); n != 0 {
		t.Errorf("result_committed recorded %d times for an unpersisted result, want 0", n)
	}

	// the row itself is still PENDING; the janitor owns recovery
	stuck, err := env.analyses.Get(context.Background(), res.ID, uuid.Nil)
	if err != nil {
		t.Fatalf("get result: %v", err)
	}
	if stuck.Status != constants.AnalysisPending {
		t.Errorf("status = %s, want PENDING after failed finalize", stuck.Status)
	}
}

func TestPipeline_InputErrorsDoNotConsumeQuota(t *testing.T) {
	env := newTestEnv(t, 10, &fakeAnalyzer{analyze: func(llm.ChunkRequest) (llm.ChunkResponse, error) {
		t.Error("analyzer must not be called for rejected inputs")
		return llm.ChunkResponse{}, nil
	}})
	accountID := uuid.New()

	if _, err := env.pipeline.Analyze(context.Background(), accountID, "dossier.rtf", []byte("x")); !errors.Is(err, common.ErrUnsupportedFormat) {
		t.Errorf("got %v, want ErrUnsupportedFormat", err)
	}
	if _, err := env.pipeline.Analyze(context.Background(), accountID, "vide.txt", []byte("   ")); !errors.Is(err, common.ErrEmptyContent) {
		t.Errorf("got %v, want ErrEmptyContent", err)
	}

	committed, reserved := env.store.Usage(accountID, quota.PeriodStart(time.Now()))
	if committed != 0 || reserved != 0 {
		t.Errorf("usage = (committed %d, reserved %d), want (0, 0)", committed, reserved)
	}
	if env.docs.count() != 0 {
		t.Error("rejected input must not persist a document")
	}
}

func TestPipeline_QuotaExceeded(t *testing.T) {
	env := newTestEnv(t, 0, &fakeAnalyzer{analyze: func(llm.ChunkRequest) (llm.ChunkResponse, error) {
		return llm.ChunkResponse{}, nil
	}})

	if _, err := env.pipeline.Analyze(context.Background(), uuid.New(), "cctp.md", []byte(testDoc)); !errors.Is(err, common.ErrQuotaExceeded) {
		t.Fatalf("got %v, want ErrQuotaExceeded", err)
	}
	if env.docs.count() != 0 {
		t.Error("denied upload must not persist a document")
	}
}

func TestMergeChunkResults(t *testing.T) {
	chunks := []entity.Chunk{
		{Index: 0, Section: "Page 1"},
		{Index: 1, Section: "Page 2"},
		{Index: 2, Section: "Page 2"},
	}

	t.Run("deterministic order and attribution", func(t *testing.T) {
		results := []llm.ChunkResponse{
			{Findings: []llm.Finding{{Lot: "peinture", Title: "a", Content: "x"}}, Summary: "s0"},
			{Findings: []llm.Finding{{Lot: "Plomberie", Title: "b", Content: "y"}}, Summary: "s1"},
			{Findings: []llm.Finding{{Lot: "inconnu", Title: "c", Content: "z"}}},
		}
		m := mergeChunkResults(chunks, results, make([]error, 3))
		if m.status != constants.AnalysisComplete {
			t.Fatalf("status = %s", m.status)
		}
		if len(m.findings) != 3 {
			t.Fatalf("findings = %d, want 3", len(m.findings))
		}
		// keyword canonicalization and fallback lot
		if m.findings[0].Lot != string(constants.Revetements) {
			t.Errorf("lot[0] = %q, want %q", m.findings[0].Lot, constants.Revetements)
		}
		if m.findings[2].Lot != string(constants.LotUncategorized) {
			t.Errorf("lot[2] = %q, want %q", m.findings[2].Lot, constants.LotUncategorized)
		}
		for i, f := range m.findings {
			if f.ChunkIndex != i {
				t.Errorf("finding %d has chunk index %d", i, f.ChunkIndex)
			}
		}
		if m.summary != "s0\ns1" {
			t.Errorf("summary = %q", m.summary)
		}
	})

	t.Run("unknown label salvaged from finding vocabulary", func(t *testing.T) {
		results := []llm.ChunkResponse{
			{Findings: []llm.Finding{{Lot: "réseaux divers", Title: "Alimentation EFS", Content: "raccordement plomberie sanitaire"}}},
			{Findings: []llm.Finding{{Lot: "divers", Title: "Finitions", Content: "rien de classable"}}},
			{},
		}
		m := mergeChunkResults(chunks, results, make([]error, 3))
		if m.findings[0].Lot != string(constants.Plomberie) {
			t.Errorf("lot[0] = %q, want %q", m.findings[0].Lot, constants.Plomberie)
		}
		if m.findings[1].Lot != string(constants.LotUncategorized) {
			t.Errorf("lot[1] = %q, want %q", m.findings[1].Lot, constants.LotUncategorized)
		}
	})

	t.Run("failed chunks listed once per section", func(t *testing.T) {
		errs := []error{nil, errors.New("boom"), errors.New("boom")}
		m := mergeChunkResults(chunks, make([]llm.ChunkResponse, 3), errs)
		if m.status != constants.AnalysisPartial {
			t.Fatalf("status = %s, want PARTIAL", m.status)
		}
		if len(m.unanalyzed) != 1 || m.unanalyzed[0] != "Page 2" {
			t.Errorf("unanalyzed = %v, want [Page 2]", m.unanalyzed)
		}
	})

	t.Run("all failed", func(t *testing.T) {
		errs := []error{errors.New("a"), errors.New("b"), errors.New("c")}
		m := mergeChunkResults(chunks, make([]llm.ChunkResponse, 3), errs)
		if m.status != constants.AnalysisFailed {
			t.Fatalf("status = %s, want FAILED", m.status)
		}
		if m.failureMessage == "" {
			t.Error("failure message is empty")
		}
	})
}
