package similar

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/ayatlab/verseref/internal/domain"
	"github.com/ayatlab/verseref/internal/domain/simquery"
)

type fakeEngine struct {
	calls int
	resp  domain.SimilarityResponse
	err   error
}

func (f *fakeEngine) Similar(
	_ context.Context, _ domain.VerseAddress, _ *simquery.Request,
) (domain.SimilarityResponse, error) {
	f.calls++
	return f.resp, f.err
}

type fakeCache struct {
	entries map[string]domain.SimilarityResponse
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string]domain.SimilarityResponse)}
}

func (f *fakeCache) key(addr domain.VerseAddress, req *simquery.Request) string {
	return addr.String() + "|" + req.CacheKeyFields()
}

func (f *fakeCache) Get(
	_ context.Context, addr domain.VerseAddress, req *simquery.Request,
) (domain.SimilarityResponse, bool) {
	resp, ok := f.entries[f.key(addr, req)]
	return resp, ok
}

func (f *fakeCache) Set(
	_ context.Context, addr domain.VerseAddress, req *simquery.Request, resp domain.SimilarityResponse,
) {
	f.sets++
	f.entries[f.key(addr, req)] = resp
}

func testResponse(total int) domain.SimilarityResponse {
	return domain.SimilarityResponse{
		SourceVerse:  domain.Verse{Address: domain.VerseAddress{Surah: 1, Ayah: 1}},
		TotalSimilar: total,
	}
}

func mustQuery(t *testing.T) *simquery.Request {
	t.Helper()
	req, err := simquery.New(0, 0, "", "", false)
	if err != nil {
		t.Fatalf("simquery.New: %v", err)
	}
	return &req
}

func TestSimilar_NoCache(t *testing.T) {
	engine := &fakeEngine{resp: testResponse(7)}
	s := New(engine, zap.NewNop())

	resp, err := s.Similar(context.Background(), domain.VerseAddress{Surah: 1, Ayah: 1}, mustQuery(t))
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if resp.TotalSimilar != 7 {
		t.Errorf("TotalSimilar = %d, want 7", resp.TotalSimilar)
	}
	if engine.calls != 1 {
		t.Errorf("engine calls = %d, want 1", engine.calls)
	}
}

func TestSimilar_CachesResponses(t *testing.T) {
	engine := &fakeEngine{resp: testResponse(3)}
	cache := newFakeCache()
	s := New(engine, zap.NewNop()).WithCache(cache)
	addr := domain.VerseAddress{Surah: 1, Ayah: 1}

	if _, err := s.Similar(context.Background(), addr, mustQuery(t)); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	// Second identical call is served from the cache.
	resp, err := s.Similar(context.Background(), addr, mustQuery(t))
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if engine.calls != 1 {
		t.Errorf("engine calls = %d, want 1 (cache hit expected)", engine.calls)
	}
	if resp.TotalSimilar != 3 {
		t.Errorf("TotalSimilar = %d, want 3", resp.TotalSimilar)
	}
}

func TestSimilar_DistinctQueriesMissCache(t *testing.T) {
	engine := &fakeEngine{resp: testResponse(3)}
	cache := newFakeCache()
	s := New(engine, zap.NewNop()).WithCache(cache)
	addr := domain.VerseAddress{Surah: 1, Ayah: 1}

	if _, err := s.Similar(context.Background(), addr, mustQuery(t)); err != nil {
		t.Fatal(err)
	}
	other, err := simquery.New(10, 0.5, "", "", true)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Similar(context.Background(), addr, &other); err != nil {
		t.Fatal(err)
	}
	if engine.calls != 2 {
		t.Errorf("engine calls = %d, want 2 (different parameters)", engine.calls)
	}
}

func TestSimilar_EngineErrorNotCached(t *testing.T) {
	engine := &fakeEngine{err: domain.ErrVerseNotFound}
	cache := newFakeCache()
	s := New(engine, zap.NewNop()).WithCache(cache)

	_, err := s.Similar(context.Background(), domain.VerseAddress{Surah: 3, Ayah: 1}, mustQuery(t))
	if !errors.Is(err, domain.ErrVerseNotFound) {
		t.Fatalf("err = %v, want ErrVerseNotFound", err)
	}
	if cache.sets != 0 {
		t.Error("errors must not be cached")
	}
}
