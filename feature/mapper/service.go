package mapper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"

	"sku-mapper/core/catalog"
	"sku-mapper/core/inventory"
	"sku-mapper/core/mapping"
	"sku-mapper/core/match"
	"sku-mapper/core/session"
	"sku-mapper/core/storage"
)

// ErrSessionNotFound is returned for operations on an unknown session ID.
var ErrSessionNotFound = errors.New("session not found")

// sessionEntry pairs a session with the lock that serializes its operations.
type sessionEntry struct {
	mu   sync.Mutex
	sess *session.Session
}

// Service manages mapping sessions and their storage checkpoints.
type Service struct {
	logger    *zap.Logger
	scorer    match.Scorer
	threshold int

	// client is nil when snapshot storage is disabled.
	client storage.Client
	bucket string

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewService creates a new mapper service. client may be nil to disable
// checkpointing.
func NewService(logger *zap.Logger, scorer match.Scorer, threshold int, client storage.Client, bucket string) *Service {
	return &Service{
		logger:    logger,
		scorer:    scorer,
		threshold: threshold,
		client:    client,
		bucket:    bucket,
		sessions:  make(map[string]*sessionEntry),
	}
}

// CreateSession creates an independent session and returns its ID. A
// threshold of 0 uses the service default.
func (s *Service) CreateSession(threshold int) (string, int) {
	if threshold <= 0 {
		threshold = s.threshold
	}

	id := uuid.NewString()
	sess := session.New(s.scorer, threshold, s.logger.With(zap.String("session", id)))

	s.mu.Lock()
	s.sessions[id] = &sessionEntry{sess: sess}
	s.mu.Unlock()

	s.logger.Info("Created mapping session", zap.String("session", id), zap.Int("threshold", threshold))
	return id, threshold
}

// DeleteSession drops a session's state.
func (s *Service) DeleteSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.logger.Info("Deleted mapping session", zap.String("session", id))
	return nil
}

// entry looks up a session entry by ID.
func (s *Service) entry(id string) (*sessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return e, nil
}

// LoadMaster replaces the session's master catalog. A failed parse leaves the
// previous catalog untouched.
func (s *Service) LoadMaster(id string, r io.Reader, name string) error {
	e, err := s.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.LoadMaster(r, name)
}

// AddSalesBatch appends one sales batch to the session.
func (s *Service) AddSalesBatch(id string, r io.Reader, name string) error {
	e, err := s.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.AddSalesBatch(r, name)
}

// MapResult summarizes an auto-mapping pass.
type MapResult struct {
	// Mapped is the total number of resolved SKUs after the pass.
	Mapped int `json:"mapped"`
	// Unmapped is the number of SKUs pending manual resolution.
	Unmapped int `json:"unmapped"`
}

// MapCodes runs the fuzzy auto-mapping pass for a session.
func (s *Service) MapCodes(id string) (*MapResult, error) {
	e, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.MapCodes()
	return &MapResult{Mapped: e.sess.Table.Len(), Unmapped: e.sess.Queue.Len()}, nil
}

// Unmapped returns the SKUs pending manual resolution for a session.
func (s *Service) Unmapped(id string) ([]string, error) {
	e, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.Unmapped(), nil
}

// Assign records a manual SKU to MSKU mapping, then checkpoints the mapping
// table to storage when enabled. Checkpoint failures are logged, not fatal:
// the in-memory state is already correct.
func (s *Service) Assign(ctx context.Context, id, sku, msku string) error {
	e, err := s.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.Assign(sku, msku)

	if s.client != nil {
		if err := s.checkpointMappings(ctx, id, e.sess); err != nil {
			s.logger.Warn("Failed to checkpoint mappings", zap.String("session", id), zap.Error(err))
		}
	}
	return nil
}

// Reconcile recomputes available quantities for a session.
func (s *Service) Reconcile(id string) (*inventory.Report, error) {
	e, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess.Reconcile(), nil
}

// WriteMappings streams the session's mapping table as CSV into w.
func (s *Service) WriteMappings(id string, w io.Writer) error {
	e, err := s.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return mapping.WriteTable(w, e.sess.Table)
}

// WriteInventory runs a reconcile pass and streams the snapshot as CSV.
func (s *Service) WriteInventory(id string, w io.Writer) error {
	e, err := s.entry(id)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	report := e.sess.Reconcile()
	return catalog.WriteInventory(w, report.Snapshot)
}

// checkpointMappings uploads the current mapping table as a CSV object.
// Callers must hold the session lock.
func (s *Service) checkpointMappings(ctx context.Context, id string, sess *session.Session) error {
	var buf bytes.Buffer
	if err := mapping.WriteTable(&buf, sess.Table); err != nil {
		return err
	}

	object := fmt.Sprintf("checkpoints/%s/mappings.csv", id)
	_, err := s.client.PutObject(ctx, s.bucket, object, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return err
	}

	s.logger.Info("Checkpointed mappings", zap.String("session", id), zap.String("object", object))
	return nil
}
