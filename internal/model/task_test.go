package model

import (
	"testing"
	"time"
)

func TestFetchTask_GetDisplayName(t *testing.T) {
	tests := []struct {
		output   string
		url      string
		expected string
	}{
		{"/tmp/out.mp4", "https://youtube.com/watch?v=123", "out.mp4"},
		{`C:\Users\me\Videos\clip.webm`, "https://youtube.com/watch?v=123", "clip.webm"},
		{"", "https://youtube.com/watch?v=456", "https://youtube.com/watch?v=456"},
		{"/tmp/song.%(ext)s", "https://youtube.com/watch?v=789", "https://youtube.com/watch?v=789"},
	}

	for _, test := range tests {
		task := &FetchTask{
			OutputPath: test.output,
			URL:        test.url,
		}
		result := task.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with output='%s', url='%s' = '%s', expected '%s'",
				test.output, test.url, result, test.expected)
		}
	}
}

func TestFetchTask_Duration(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	task := &FetchTask{StartedAt: start}
	if d := task.Duration(); d != 0 {
		t.Errorf("Expected zero duration for unfinished task, got %v", d)
	}

	task.FinishedAt = start.Add(90 * time.Second)
	if d := task.Duration(); d != 90*time.Second {
		t.Errorf("Expected 90s, got %v", d)
	}
}
