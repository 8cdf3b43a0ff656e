package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livp123/evplot/internal/event"
	"github.com/livp123/evplot/pkg/errors"
)

// TestParsePolicy tests policy parsing
// TestParsePolicy 测试策略解析
func TestParsePolicy(t *testing.T) {
	t.Run("Empty defaults to ignore", func(t *testing.T) {
		p, err := ParsePolicy("")
		require.NoError(t, err)
		assert.Equal(t, PolicyIgnore, p)
	})

	t.Run("Ignore", func(t *testing.T) {
		p, err := ParsePolicy("ignore")
		require.NoError(t, err)
		assert.Equal(t, PolicyIgnore, p)
	})

	t.Run("Reject", func(t *testing.T) {
		p, err := ParsePolicy("reject")
		require.NoError(t, err)
		assert.Equal(t, PolicyReject, p)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := ParsePolicy("drop")
		assert.ErrorIs(t, err, errors.ErrInvalidPolicy)
	})
}

// TestAccumulator_CumulativeCounts tests the count invariant
// TestAccumulator_CumulativeCounts 测试累计计数不变量
func TestAccumulator_CumulativeCounts(t *testing.T) {
	a := NewAccumulator(nil, PolicyIgnore)

	for _, ts := range []int64{10, 15, 30} {
		added, err := a.Add(event.Record{Kind: "pipeline", Timestamp: ts})
		require.NoError(t, err)
		require.True(t, added)
	}

	snap := a.Snapshot()
	require.Len(t, snap, 1)
	// Counter column is strictly 1, 2, 3, ... in input order
	assert.Equal(t, []Point{{10, 1}, {15, 2}, {30, 3}}, snap[0].Points)
}

// TestAccumulator_Scenario replays the reference input
// TestAccumulator_Scenario 重放参考输入
func TestAccumulator_Scenario(t *testing.T) {
	a := NewAccumulator([]string{"pipeline", "audio_engine"}, PolicyIgnore)

	records := []event.Record{
		{Kind: "pipeline", Timestamp: 10},
		{Kind: "audio_engine", Timestamp: 12},
		{Kind: "pipeline", Timestamp: 15},
		{Kind: "unknown_kind", Timestamp: 20},
		{Kind: "pipeline", Timestamp: 30},
	}
	require.NoError(t, a.AddAll(records))

	snap := a.Snapshot()
	require.Len(t, snap, 2)

	assert.Equal(t, "pipeline", snap[0].Kind)
	assert.Equal(t, []Point{{10, 1}, {15, 2}, {30, 3}}, snap[0].Points)

	assert.Equal(t, "audio_engine", snap[1].Kind)
	assert.Equal(t, []Point{{12, 1}}, snap[1].Points)

	assert.Equal(t, uint64(1), a.Ignored())
	assert.Equal(t, uint64(4), a.Total())
}

// TestAccumulator_OrderPreservation tests that timestamps keep input order
// TestAccumulator_OrderPreservation 测试时间戳保持输入顺序
func TestAccumulator_OrderPreservation(t *testing.T) {
	a := NewAccumulator(nil, PolicyIgnore)

	// Out-of-order timestamps must not be sorted
	for _, ts := range []int64{30, 10, 20} {
		_, err := a.Add(event.Record{Kind: "pipeline", Timestamp: ts})
		require.NoError(t, err)
	}

	snap := a.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, []Point{{30, 1}, {10, 2}, {20, 3}}, snap[0].Points)
}

// TestAccumulator_RejectPolicy tests the reject policy
// TestAccumulator_RejectPolicy 测试 reject 策略
func TestAccumulator_RejectPolicy(t *testing.T) {
	a := NewAccumulator([]string{"pipeline"}, PolicyReject)

	added, err := a.Add(event.Record{Kind: "pipeline", Timestamp: 10})
	require.NoError(t, err)
	require.True(t, added)

	added, err = a.Add(event.Record{Kind: "audio_engine", Timestamp: 12})
	assert.ErrorIs(t, err, errors.ErrUntrackedKind)
	assert.False(t, added)
}

// TestAccumulator_DynamicKinds tests tracking all kinds in first-seen order
// TestAccumulator_DynamicKinds 测试按首次出现顺序跟踪所有类别
func TestAccumulator_DynamicKinds(t *testing.T) {
	a := NewAccumulator(nil, PolicyIgnore)

	records := []event.Record{
		{Kind: "audio_engine", Timestamp: 1},
		{Kind: "pipeline", Timestamp: 2},
		{Kind: "sampler", Timestamp: 3},
		{Kind: "pipeline", Timestamp: 4},
	}
	require.NoError(t, a.AddAll(records))

	assert.Equal(t, []string{"audio_engine", "pipeline", "sampler"}, a.Kinds())
	assert.Equal(t, uint64(0), a.Ignored())
}

// TestAccumulator_ConfiguredOrder tests that configured kinds keep their slot
// TestAccumulator_ConfiguredOrder 测试配置的类别保持顺序
func TestAccumulator_ConfiguredOrder(t *testing.T) {
	a := NewAccumulator([]string{"pipeline", "audio_engine"}, PolicyIgnore)

	// audio_engine arrives first, pipeline still leads the snapshot
	_, err := a.Add(event.Record{Kind: "audio_engine", Timestamp: 5})
	require.NoError(t, err)

	snap := a.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "pipeline", snap[0].Kind)
	assert.Empty(t, snap[0].Points)
	assert.Equal(t, "audio_engine", snap[1].Kind)
}

// TestAccumulator_Idempotence tests that replaying input yields equal series
// TestAccumulator_Idempotence 测试重放输入产生相同序列
func TestAccumulator_Idempotence(t *testing.T) {
	records := []event.Record{
		{Kind: "pipeline", Timestamp: 10},
		{Kind: "audio_engine", Timestamp: 12},
		{Kind: "pipeline", Timestamp: 15},
	}

	a := NewAccumulator(nil, PolicyIgnore)
	b := NewAccumulator(nil, PolicyIgnore)
	require.NoError(t, a.AddAll(records))
	require.NoError(t, b.AddAll(records))

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

// TestAccumulator_SnapshotIsolation tests that snapshots are deep copies
// TestAccumulator_SnapshotIsolation 测试快照是深拷贝
func TestAccumulator_SnapshotIsolation(t *testing.T) {
	a := NewAccumulator(nil, PolicyIgnore)
	_, err := a.Add(event.Record{Kind: "pipeline", Timestamp: 10})
	require.NoError(t, err)

	snap := a.Snapshot()
	snap[0].Points[0].Count = 99

	again := a.Snapshot()
	assert.Equal(t, uint64(1), again[0].Points[0].Count)
}

// TestSeries_Helpers tests First/Last/Total
// TestSeries_Helpers 测试 First/Last/Total
func TestSeries_Helpers(t *testing.T) {
	s := Series{Kind: "pipeline", Points: []Point{{10, 1}, {15, 2}, {30, 3}}}
	assert.Equal(t, int64(10), s.First())
	assert.Equal(t, int64(30), s.Last())
	assert.Equal(t, uint64(3), s.Total())

	empty := Series{Kind: "audio_engine"}
	assert.Equal(t, int64(0), empty.First())
	assert.Equal(t, int64(0), empty.Last())
	assert.Equal(t, uint64(0), empty.Total())
}
