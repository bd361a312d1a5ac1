package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, cap(bb.B))
}

func TestByteBuffer_Writes(t *testing.T) {
	bb := NewByteBuffer(4)

	_, _ = bb.WriteString("ab")
	_ = bb.WriteByte('c')
	_, _ = bb.Write([]byte("def"))

	assert.Equal(t, "abcdef", bb.String())
	assert.Equal(t, 6, bb.Len())
}

func TestByteBuffer_Clone(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.WriteString("data")

	clone := bb.Clone()
	bb.Reset()
	_, _ = bb.WriteString("xxxx")

	assert.Equal(t, []byte("data"), clone)
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(2)
	_, _ = bb.WriteString("ab")

	bb.Grow(100)

	assert.GreaterOrEqual(t, cap(bb.B)-bb.Len(), 100)
	assert.Equal(t, "ab", bb.String(), "grow must keep contents")
}

func TestByteBufferPool_PutResets(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	_, _ = bb.WriteString("payload")
	p.Put(bb)

	got := p.Get()
	assert.Equal(t, 0, got.Len())
}

func TestByteBufferPool_DropsOversized(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // discarded, must not panic
	p.Put(nil)

	require.NotNil(t, p.Get())
}

func TestTextBuffer_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				bb := GetTextBuffer()
				_, _ = bb.WriteString("x")
				PutTextBuffer(bb)
			}
		}()
	}
	wg.Wait()
}
