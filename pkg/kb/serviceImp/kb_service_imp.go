package serviceImp

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"kisan/entities"
	"kisan/pkg/kb/embedder"
	"kisan/pkg/kb/repository"
)

type KBSvc struct {
	repo repository.KBRepository
	emb  *embedder.Client
	log  *zap.Logger
}

// New builds the knowledge-base service. emb may be nil, in which case
// chunks are stored without vectors and search degrades to keyword match.
func New(repo repository.KBRepository, emb *embedder.Client, log *zap.Logger) *KBSvc {
	return &KBSvc{repo: repo, emb: emb, log: log}
}

// chunkText splits on newline boundaries once a chunk reaches maxRunes.
func chunkText(text string, maxRunes int) []string {
	if maxRunes <= 0 {
		maxRunes = 1000
	}
	var parts []string
	var cur strings.Builder
	count := 0
	for _, r := range text {
		cur.WriteRune(r)
		count++
		if count >= maxRunes && r == '\n' {
			parts = append(parts, cur.String())
			cur.Reset()
			count = 0
		}
	}
	if cur.Len() > 0 {
		parts = append(parts, cur.String())
	}
	return parts
}

func (s *KBSvc) UpsertDocument(title, tags, text, sourceURL string) (*entities.KBDocument, int, error) {
	d := &entities.KBDocument{Title: title, Tags: tags, SourceURL: sourceURL}
	if err := s.repo.CreateDoc(d); err != nil {
		return nil, 0, err
	}

	chunks := chunkText(text, 1000)
	if len(chunks) == 0 {
		return d, 0, nil
	}

	var vecs [][]float32
	if s.emb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		var err error
		vecs, err = s.emb.Embed(ctx, chunks)
		if err != nil {
			s.log.Warn("embedding failed, storing chunks without vectors", zap.Error(err))
			vecs = nil
		}
	}

	rows := make([]entities.KBChunk, len(chunks))
	for i := range chunks {
		var emb []byte
		if vecs != nil && i < len(vecs) {
			emb = embedder.FloatsToBytes(vecs[i])
		}
		rows[i] = entities.KBChunk{DocID: d.DocID, Ord: i, Text: chunks[i], Embedding: emb}
	}
	if err := s.repo.BulkInsertChunks(rows); err != nil {
		return nil, 0, err
	}
	return d, len(rows), nil
}

func (s *KBSvc) Search(query string, k int) ([]entities.KBChunk, error) {
	q := strings.TrimSpace(query)
	if q == "" || k <= 0 {
		return nil, nil
	}

	var qvec []float32
	if s.emb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if vecs, err := s.emb.Embed(ctx, []string{q}); err == nil && len(vecs) > 0 {
			qvec = vecs[0]
		}
	}

	chunks, err := s.repo.AllChunks()
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, nil
	}

	type scored struct {
		ch entities.KBChunk
		sc float64
	}
	list := make([]scored, 0, len(chunks))
	if len(qvec) > 0 {
		for _, ch := range chunks {
			v := embedder.BytesToFloats(ch.Embedding)
			if len(v) != len(qvec) || len(v) == 0 {
				continue
			}
			list = append(list, scored{ch: ch, sc: cosine(qvec, v)})
		}
	}
	if len(list) == 0 {
		// keyword fallback when no vectors matched
		qlow := strings.ToLower(q)
		for _, ch := range chunks {
			if strings.Contains(strings.ToLower(ch.Text), qlow) {
				list = append(list, scored{ch: ch, sc: 1.0})
			}
		}
	}
	if len(list) == 0 {
		return nil, nil
	}

	sort.SliceStable(list, func(i, j int) bool { return list[i].sc > list[j].sc })
	if k > len(list) {
		k = len(list)
	}
	out := make([]entities.KBChunk, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, list[i].ch)
	}
	return out, nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	for i := 0; i < len(a) && i < len(b); i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

func (s *KBSvc) DocsMeta(ids []uint) (map[uint]entities.KBDocument, error) {
	return s.repo.DocsByIDs(ids)
}
