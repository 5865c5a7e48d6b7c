package storage

import (
	"encoding/json"
	"fmt"
	"sort"
)

func encodeRun(run *Run) ([]byte, error) {
	data, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to encode run: %w", err)
	}
	return data, nil
}

func decodeRun(data []byte) (*Run, error) {
	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to decode run: %w", err)
	}
	return &run, nil
}

func sortNewestFirst(runs []*Run) {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
}
