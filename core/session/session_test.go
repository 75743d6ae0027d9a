package session_test

import (
	"strings"
	"testing"

	"sku-mapper/core/match"
	"sku-mapper/core/session"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const masterCSV = "MSKU,Quantity\nABC-100,20\nABC-200,10\n"

func newSession() *session.Session {
	return session.New(match.TokenSortScorer{}, 80, zap.NewNop())
}

func TestSession_EndToEnd(t *testing.T) {
	s := newSession()

	assert.NoError(t, s.LoadMaster(strings.NewReader(masterCSV), "master.csv"))
	assert.NoError(t, s.AddSalesBatch(strings.NewReader("SKU,Quantity\nABC100,5\nCST-01,2\n"), "sales.csv"))

	s.MapCodes()

	// ABC100 auto-maps (86 > 80); CST-01 needs manual help.
	msku, ok := s.Table.Get("ABC100")
	assert.True(t, ok)
	assert.Equal(t, "ABC-100", msku)
	assert.Equal(t, []string{"CST-01"}, s.Unmapped())

	s.Assign("CST-01", "ABC-200")
	assert.Empty(t, s.Unmapped())

	report := s.Reconcile()
	assert.Equal(t, 15, report.Snapshot[0].Available)
	assert.Equal(t, 8, report.Snapshot[1].Available)
	assert.Empty(t, report.Warnings)
}

func TestSession_LoadMasterIsAtomic(t *testing.T) {
	s := newSession()
	assert.NoError(t, s.LoadMaster(strings.NewReader(masterCSV), "master.csv"))

	err := s.LoadMaster(strings.NewReader("wrong,header\n1,2\n"), "broken.csv")
	assert.Error(t, err)

	// The previous catalog survives a failed reload.
	assert.Len(t, s.Catalog, 2)
}

func TestSession_AddSalesBatchIsAtomic(t *testing.T) {
	s := newSession()
	assert.NoError(t, s.AddSalesBatch(strings.NewReader("SKU,Quantity\nA-1,1\n"), "batch1.csv"))

	err := s.AddSalesBatch(strings.NewReader("SKU,Quantity\nA-2,nope\n"), "batch2.csv")
	assert.Error(t, err)

	assert.Len(t, s.Batches, 1)
}

func TestSession_MapCodesDeduplicatesAcrossBatches(t *testing.T) {
	s := newSession()
	assert.NoError(t, s.LoadMaster(strings.NewReader(masterCSV), "master.csv"))
	assert.NoError(t, s.AddSalesBatch(strings.NewReader("SKU,Quantity\nABC100,1\nABC100,2\n"), "b1.csv"))
	assert.NoError(t, s.AddSalesBatch(strings.NewReader("SKU,Quantity\nABC100,3\n"), "b2.csv"))

	s.MapCodes()

	assert.Equal(t, 1, s.Table.Len())
	assert.Zero(t, s.Queue.Len())
}

func TestSession_IndependentSessions(t *testing.T) {
	a := newSession()
	b := newSession()

	a.Assign("CST-01", "ABC-100")

	assert.Equal(t, 1, a.Table.Len())
	assert.Zero(t, b.Table.Len())
}
