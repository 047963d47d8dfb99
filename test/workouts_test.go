//go:build integration_test || all_tests

package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/Varshini0817/Ject/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) do(ctx context.Context, method, path string, body any) (int, []byte) {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) TestWorkouts_JohnDoe() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	entry := map[string]any{
		"activity": "Running",
		"date":     "2025-11-19T07:00:00Z",
		"duration": 32,
		"distance": 5.2,
	}

	status, body := s.do(ctx, "POST", "/api/user/entries/John%20Doe", entry)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Goal not set for this activity"}`, string(body))

	status, body = s.do(ctx, "POST", "/api/user/goals/John%20Doe", map[string]any{
		"activity": "Running",
		"duration": 30,
		"distance": 5,
		"steps":    1000,
		"age":      25,
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var saveGoalResp workouts.SaveGoalResponse
	require.NoError(t, json.Unmarshal(body, &saveGoalResp))
	assert.Equal(t, "Goal saved", saveGoalResp.Message)
	// steps do not apply to running
	assert.Equal(t, 0, saveGoalResp.Goal.Steps)

	status, body = s.do(ctx, "POST", "/api/user/goals/John%20Doe", map[string]any{
		"activity": "Running",
		"duration": 35,
		"distance": 6,
	})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &saveGoalResp))
	assert.Equal(t, "Goal updated", saveGoalResp.Message)

	status, body = s.do(ctx, "POST", "/api/user/entries/John%20Doe", entry)
	require.Equal(t, http.StatusOK, status, string(body))

	entry["duration"] = 50
	status, body = s.do(ctx, "POST", "/api/user/entries/John%20Doe", entry)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"An entry for this activity already exists on this date"}`, string(body))

	status, _ = s.do(ctx, "POST", "/api/user/entries/John%20Doe", map[string]any{
		"activity": "Running",
		"date":     "2025-11-20",
		"duration": 28,
		"distance": 4.8,
	})
	require.Equal(t, http.StatusOK, status)

	status, body = s.do(ctx, "GET", "/api/user/stats/John%20Doe/Running?startDate=2025-11-01&endDate=2025-11-30", nil)
	require.Equal(t, http.StatusOK, status)
	var stats workouts.Stats
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 60.0, stats.TotalDuration)
	assert.InDelta(t, 10.0, stats.TotalDistance, 0.0001)
	assert.Equal(t, 600, stats.TotalCalories)
	assert.Equal(t, 2, stats.EntryCount)
	assert.True(t, stats.HasData)

	status, body = s.do(ctx, "GET", "/api/user/stats/John%20Doe/Running?startDate=2024-01-01&endDate=2024-01-31", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.False(t, stats.HasData)
	assert.Zero(t, stats.TotalDuration)

	status, body = s.do(ctx, "GET", "/api/user/stats/John%20Doe/Running?startDate=bad&endDate=2024-01-31", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.JSONEq(t, `{"error":"Invalid date format for startDate or endDate"}`, string(body))

	status, body = s.do(ctx, "GET", "/api/user/summary/John%20Doe", nil)
	require.Equal(t, http.StatusOK, status)
	var summary workouts.Summary
	require.NoError(t, json.Unmarshal(body, &summary))
	require.NotNil(t, summary.Age)
	assert.Equal(t, 25, *summary.Age)
	assert.Len(t, summary.Goals, 1)
	assert.Len(t, summary.Activities, 2)
}

func (s *IntegrationTestSuite) TestWorkouts_ConcurrentDuplicateEntries() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()

	status, _ := s.do(ctx, "POST", "/api/user/goals/Jane%20Smith", map[string]any{
		"activity": "Walking",
		"distance": 6,
		"steps":    8000,
	})
	require.Equal(t, http.StatusOK, status)

	const writers = 8
	statuses := make(chan int, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			raw, _ := json.Marshal(map[string]any{
				"activity": "Walking",
				"date":     "2025-11-16",
				"duration": 50 + i,
				"distance": 6.5,
				"steps":    8500,
			})
			req, err := http.NewRequestWithContext(ctx, "POST", serverEndpoint+"/api/user/entries/Jane%20Smith", bytes.NewBuffer(raw))
			if err != nil {
				statuses <- 0
				return
			}
			req.Header.Set("Content-Type", "application/json")
			resp, err := s.httpClient.Do(req)
			if err != nil {
				statuses <- 0
				return
			}
			_ = resp.Body.Close()
			statuses <- resp.StatusCode
		}(i)
	}
	wg.Wait()
	close(statuses)

	counts := make(map[int]int)
	for st := range statuses {
		counts[st]++
	}
	assert.Equal(t, 1, counts[http.StatusOK], fmt.Sprintf("statuses: %v", counts))
	assert.Equal(t, writers-1, counts[http.StatusBadRequest], fmt.Sprintf("statuses: %v", counts))

	status, body := s.do(ctx, "GET", "/api/user/workouts/Jane%20Smith", nil)
	require.Equal(t, http.StatusOK, status)
	var entries []workouts.Entry
	require.NoError(t, json.Unmarshal(body, &entries))
	assert.Len(t, entries, 1)
}
