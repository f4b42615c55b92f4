package notify

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummaryPayload(t *testing.T) {
	s := Summary{RunID: "r1", Items: 12, GeneratedAt: "2025-09-10T12:00:00+09:00"}
	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "r1", decoded["run_id"])
	require.Equal(t, float64(12), decoded["items"])
	require.Equal(t, "2025-09-10T12:00:00+09:00", decoded["generated_at"])
}
