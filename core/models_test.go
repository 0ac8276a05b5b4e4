package core

import (
	"encoding/json"
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "hebrew content",
			content: "קפה תל אביב\x00\x00תל אביב",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestItem_Fingerprint(t *testing.T) {
	a := Item{Name: "a", Description: "b", Location: "c"}
	b := Item{Name: "ab", Description: "", Location: "c"}

	if a.Fingerprint() == b.Fingerprint() {
		t.Errorf("fingerprints collide across field boundaries: %q", a.Fingerprint())
	}
	if IDFromContent(a.Fingerprint()) == IDFromContent(b.Fingerprint()) {
		t.Errorf("content IDs collide for distinct items")
	}
}

func TestLabels_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want Labels
	}{
		{
			name: "single string becomes one-element list",
			data: `"מסעדה"`,
			want: Labels{"מסעדה"},
		},
		{
			name: "list of strings preserved in order",
			data: `["מסעדה", "בית קפה"]`,
			want: Labels{"מסעדה", "בית קפה"},
		},
		{
			name: "empty list",
			data: `[]`,
			want: Labels{},
		},
		{
			name: "null treated as absent",
			data: `null`,
			want: nil,
		},
		{
			name: "number treated as absent",
			data: `42`,
			want: nil,
		},
		{
			name: "object treated as absent",
			data: `{"label": "x"}`,
			want: nil,
		},
		{
			name: "mixed list treated as absent",
			data: `["x", 1]`,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Labels
			if err := json.Unmarshal([]byte(tt.data), &got); err != nil {
				t.Fatalf("UnmarshalJSON() returned error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("UnmarshalJSON() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("UnmarshalJSON()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
