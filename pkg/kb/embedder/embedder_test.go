package embedder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectorBytesRoundtrip(t *testing.T) {
	in := []float32{0.25, -1.5, 3.14159, 0}
	assert.Equal(t, in, BytesToFloats(FloatsToBytes(in)))
}

func TestBytesToFloatsEmpty(t *testing.T) {
	assert.Empty(t, BytesToFloats(nil))
}
