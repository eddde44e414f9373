package serviceImp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kisan/entities"
)

type fakeKBRepo struct {
	docs   []entities.KBDocument
	chunks []entities.KBChunk
}

func (f *fakeKBRepo) CreateDoc(d *entities.KBDocument) error {
	d.DocID = uint(len(f.docs) + 1)
	f.docs = append(f.docs, *d)
	return nil
}

func (f *fakeKBRepo) BulkInsertChunks(cs []entities.KBChunk) error {
	f.chunks = append(f.chunks, cs...)
	return nil
}

func (f *fakeKBRepo) ListDocs() ([]entities.KBDocument, error) { return f.docs, nil }
func (f *fakeKBRepo) AllChunks() ([]entities.KBChunk, error)   { return f.chunks, nil }

func (f *fakeKBRepo) DocsByIDs(ids []uint) (map[uint]entities.KBDocument, error) {
	m := map[uint]entities.KBDocument{}
	for _, d := range f.docs {
		for _, id := range ids {
			if d.DocID == id {
				m[id] = d
			}
		}
	}
	return m, nil
}

func TestChunkTextSplitsOnNewlines(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString(strings.Repeat("x", 80))
		sb.WriteString("\n")
	}
	parts := chunkText(sb.String(), 1000)
	require.Greater(t, len(parts), 1)
	for _, p := range parts {
		assert.NotEmpty(t, p)
	}
	assert.Equal(t, sb.String(), strings.Join(parts, ""))
}

func TestChunkTextShortInput(t *testing.T) {
	parts := chunkText("short note", 1000)
	assert.Equal(t, []string{"short note"}, parts)
	assert.Empty(t, chunkText("", 1000))
}

func TestUpsertDocumentWithoutEmbedder(t *testing.T) {
	repo := &fakeKBRepo{}
	svc := New(repo, nil, zap.NewNop())

	doc, n, err := svc.UpsertDocument("Rice guide", "rice,kharif", "Transplant seedlings after 25 days.\nKeep fields flooded.", "")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "Rice guide", doc.Title)
	require.Len(t, repo.chunks, 1)
	assert.Nil(t, repo.chunks[0].Embedding)
	assert.Equal(t, doc.DocID, repo.chunks[0].DocID)
}

func TestSearchKeywordFallback(t *testing.T) {
	repo := &fakeKBRepo{}
	svc := New(repo, nil, zap.NewNop())

	_, _, err := svc.UpsertDocument("Rice", "", "Transplant rice seedlings after 25 days.", "")
	require.NoError(t, err)
	_, _, err = svc.UpsertDocument("Cotton", "", "Monitor cotton for bollworms weekly.", "")
	require.NoError(t, err)

	hits, err := svc.Search("bollworms", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Contains(t, hits[0].Text, "bollworms")

	none, err := svc.Search("submarines", 5)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSearchEmptyQuery(t *testing.T) {
	svc := New(&fakeKBRepo{}, nil, zap.NewNop())
	hits, err := svc.Search("   ", 5)
	require.NoError(t, err)
	assert.Nil(t, hits)
}

func TestDocsMeta(t *testing.T) {
	repo := &fakeKBRepo{}
	svc := New(repo, nil, zap.NewNop())
	doc, _, err := svc.UpsertDocument("Rice", "", "text", "https://example.org/rice")
	require.NoError(t, err)

	meta, err := svc.DocsMeta([]uint{doc.DocID})
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/rice", meta[doc.DocID].SourceURL)
}
