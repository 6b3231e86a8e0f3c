package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MinjaeKwon/DataAccessTool/database"
)

// tests validateInput function
func TestValidateInput(t *testing.T) {
	tests := []struct {
		list   bool
		tables bool
		db     string
		query  string
		table  string
		expect bool
	}{
		{true, false, "", "", "", true},
		{true, false, "demo", "", "", false},
		{true, true, "", "", "", false},
		{false, false, "", "", "", false},
		{false, false, "", "SELECT 1", "", false},
		{false, false, "demo", "", "", false},
		{false, false, "demo", "SELECT 1", "", true},
		{false, false, "demo", "", "t", true},
		{false, false, "demo", "SELECT 1", "t", false},
		{false, true, "demo", "", "", true},
		{false, true, "demo", "SELECT 1", "", false},
		{false, true, "demo", "", "t", false},
		{false, true, "", "", "", false},
	}

	for i, tc := range tests {
		err := validateInput(tc.list, tc.tables, tc.db, tc.query, tc.table)
		if (err == nil) != tc.expect {
			t.Errorf("[Test case: %d] validateInput(%v,%v,%q,%q,%q) expected success: %v, got error: %v",
				i+1, tc.list, tc.tables, tc.db, tc.query, tc.table, tc.expect, err)
		}
	}
}

func TestPrintResult(t *testing.T) {
	result := &database.Result{
		Columns: []string{"id", "name"},
		Rows: []map[string]interface{}{
			{"id": int64(1), "name": "alice"},
			{"id": int64(2), "name": nil},
		},
	}

	var buf bytes.Buffer
	printResult(&buf, result)

	out := buf.String()
	for _, want := range []string{"id", "name", "alice", "NULL", "(2 rows)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
}
