package storage

import (
	"errors"
	"testing"

	"github.com/sandeepkv93/todo/internal/model"
)

func TestSnapshotRoundTripKeepsOrder(t *testing.T) {
	tasks := []model.Task{
		{ID: 3, Name: "Water plants", Completed: true},
		{ID: 1, Name: "Buy milk"},
		{ID: 2, Name: "Call mom", Completed: true},
	}
	payload, err := EncodeSnapshot(tasks)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSnapshot(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(tasks) {
		t.Fatalf("expected %d tasks, got %d", len(tasks), len(got))
	}
	for i := range tasks {
		if got[i] != tasks[i] {
			t.Fatalf("task %d = %+v, want %+v", i, got[i], tasks[i])
		}
	}
}

func TestEncodeSnapshotUsesPersistedFieldNames(t *testing.T) {
	payload, err := EncodeSnapshot([]model.Task{{ID: 1, Name: "Buy milk"}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `[{"id":1,"task_name":"Buy milk","is_done":false}]`
	if string(payload) != want {
		t.Fatalf("payload = %s, want %s", payload, want)
	}
}

func TestDecodeSnapshotRejectsMalformed(t *testing.T) {
	cases := []string{
		`{not json`,
		`{"id":1}`,
		`[{"id":"one","task_name":"a","is_done":false}]`,
		`[{"id":1,"is_done":false}]`,
		`[{"id":0,"task_name":"a","is_done":false}]`,
		`[{"id":1,"task_name":"   ","is_done":false}]`,
		`null`,
	}
	for _, raw := range cases {
		_, err := DecodeSnapshot([]byte(raw))
		if !errors.Is(err, ErrMalformedSnapshot) {
			t.Fatalf("decode %s: expected ErrMalformedSnapshot, got %v", raw, err)
		}
	}
}
