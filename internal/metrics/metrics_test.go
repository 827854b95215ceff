package metrics

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/aretw0/z340/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)

	hooks := c.Hooks()
	hooks.OnBlockDone(context.Background(), &domain.BlockEvent{
		Type:     domain.EventBlockDone,
		Block:    "z340-2",
		Mode:     domain.ModeDiagonal,
		Emitted:  147,
		Skipped:  6,
		Duration: time.Millisecond,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(c.blocks.WithLabelValues("z340-2", "diagonal")))
	assert.Equal(t, 147.0, testutil.ToFloat64(c.emitted.WithLabelValues("z340-2")))
	assert.Equal(t, 6.0, testutil.ToFloat64(c.skipped.WithLabelValues("z340-2")))
}

func TestNew_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg)
	require.NoError(t, err)
	c.Hooks().OnBlockDone(context.Background(), &domain.BlockEvent{Block: "z340-3", Mode: domain.ModeVerbatim, Emitted: 34})

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))

	out := buf.String()
	assert.Contains(t, out, `z340_blocks_total{block="z340-3",mode="verbatim"} 1`)
	assert.Contains(t, out, `z340_symbols_emitted_total{block="z340-3"} 34`)
}
