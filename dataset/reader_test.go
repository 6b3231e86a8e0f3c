package dataset

import (
	"errors"
	"testing"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name    string
		opts    QueryOptions
		want    string
		wantErr bool
	}{
		{"neither query nor table", QueryOptions{}, "", true},
		{"both query and table", QueryOptions{Query: "SELECT 1", Table: "t"}, "", true},
		{"raw query passes through", QueryOptions{Query: "SELECT a FROM b WHERE c > 1"}, "SELECT a FROM b WHERE c > 1", false},
		{"table only", QueryOptions{Table: "t"}, "SELECT * FROM t", false},
		{"table with limit", QueryOptions{Table: "t", Limit: 5}, "SELECT * FROM t LIMIT 5", false},
		{"table with schema", QueryOptions{Table: "t", Schema: "analysis"}, "SELECT * FROM analysis.t", false},
		{"table with schema and limit", QueryOptions{Table: "t", Schema: "analysis", Limit: 100}, "SELECT * FROM analysis.t LIMIT 100", false},
		{"schema ignored for raw query", QueryOptions{Query: "SELECT 1", Schema: "analysis"}, "SELECT 1", false},
	}

	for _, tc := range tests {
		got, err := buildQuery(tc.opts)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidArguments) {
				t.Errorf("%s: expected ErrInvalidArguments, got %v", tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: buildQuery = %q, want %q", tc.name, got, tc.want)
		}
	}
}

// argument validation happens before any config or connection work
func TestGetDatasetInvalidArguments(t *testing.T) {
	accessor := NewWithConfig("no-such-config.json")

	_, err := accessor.GetDataset("demo", QueryOptions{})
	if !errors.Is(err, ErrInvalidArguments) {
		t.Fatalf("expected ErrInvalidArguments, got %v", err)
	}

	_, err = accessor.GetDataset("demo", QueryOptions{Query: "SELECT 1", Table: "t"})
	if !errors.Is(err, ErrInvalidArguments) {
		t.Fatalf("expected ErrInvalidArguments, got %v", err)
	}
}
