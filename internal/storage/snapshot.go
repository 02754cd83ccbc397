package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/sandeepkv93/todo/internal/model"
)

var ErrMalformedSnapshot = errors.New("storage: malformed snapshot")

//go:embed snapshot.schema.json
var snapshotSchemaText string

var snapshotSchema = jsonschema.MustCompileString("snapshot.schema.json", snapshotSchemaText)

// Record is the persisted shape of one task.
type Record struct {
	ID       int    `json:"id"`
	TaskName string `json:"task_name"`
	IsDone   bool   `json:"is_done"`
}

func EncodeSnapshot(tasks []model.Task) ([]byte, error) {
	records := make([]Record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, Record{ID: t.ID, TaskName: t.Name, IsDone: t.Completed})
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return payload, nil
}

func DecodeSnapshot(data []byte) ([]model.Task, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	if err := snapshotSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSnapshot, err)
	}
	out := make([]model.Task, 0, len(records))
	for _, rec := range records {
		out = append(out, model.Task{ID: rec.ID, Name: rec.TaskName, Completed: rec.IsDone})
	}
	return out, nil
}
