package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/pants/pkg/explore"
	"github.com/matzehuels/pants/pkg/observability"
	"github.com/matzehuels/pants/pkg/pants"
)

func sampleCount(t *testing.T, reg *prometheus.Registry, name string) uint64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}

func TestHooksRecordWalk(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)
	observability.SetExploreHooks(h)
	defer observability.Reset()

	if _, err := explore.Walk(context.Background(), pants.NewState(0, 1, 2, 3), explore.Options{}); err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if got := testutil.ToFloat64(h.WalksTotal.WithLabelValues(resultOK)); got != 1 {
		t.Errorf("walks_total{result=ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.DeepestLayer); got != 4 {
		t.Errorf("deepest_layer = %v, want 4", got)
	}
	// Layers 1 to 4 each discover two states; the final expansion finds none.
	if got := sampleCount(t, reg, "pants_explore_frontier_states"); got != 4 {
		t.Errorf("frontier samples = %d, want 4", got)
	}
	if got := sampleCount(t, reg, "pants_explore_states"); got != 1 {
		t.Errorf("states samples = %d, want 1", got)
	}
}

func TestHooksRecordWalkError(t *testing.T) {
	h := New(prometheus.NewRegistry())
	h.OnExploreComplete(context.Background(), 0, time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(h.WalksTotal.WithLabelValues(resultError)); got != 1 {
		t.Errorf("walks_total{result=error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.WalksTotal.WithLabelValues(resultOK)); got != 0 {
		t.Errorf("walks_total{result=ok} = %v, want 0", got)
	}
}

func TestHooksRecordRender(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)
	ctx := context.Background()

	h.OnRenderStart(ctx, "svg", 9)
	h.OnRenderComplete(ctx, "svg", 4096, time.Millisecond, nil)
	h.OnRenderComplete(ctx, "svg", 0, time.Millisecond, errors.New("bad dot"))

	if got := testutil.ToFloat64(h.RendersTotal.WithLabelValues("svg", resultOK)); got != 1 {
		t.Errorf("render_total{svg,ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(h.RendersTotal.WithLabelValues("svg", resultError)); got != 1 {
		t.Errorf("render_total{svg,error} = %v, want 1", got)
	}
}

func TestNewRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Error("registering the collectors twice should panic")
		}
	}()
	New(reg)
}

func TestWriteToTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)
	h.OnExploreComplete(context.Background(), 9, time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "pants.prom")
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		t.Fatalf("WriteToTextfile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `pants_explore_walks_total{result="ok"} 1`) {
		t.Errorf("textfile missing walk counter:\n%s", data)
	}
}
