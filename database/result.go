package database

import (
	"database/sql"
	"fmt"
)

// Result is an eagerly materialized query result. Columns preserves the
// result set's column order; each row maps column name to value.
type Result struct {
	Columns []string
	Rows    []map[string]interface{}
}

// Len returns the number of rows.
func (r *Result) Len() int {
	return len(r.Rows)
}

// Values returns the row's values in column order.
func (r *Result) Values(row map[string]interface{}) []interface{} {
	values := make([]interface{}, len(r.Columns))
	for i, col := range r.Columns {
		values[i] = row[col]
	}
	return values
}

// FetchResult drains rows into a Result. It does not close rows.
func FetchResult(rows *sql.Rows) (*Result, error) {
	//Get column names
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get column names, %v", err)
	}

	result := &Result{Columns: columns}

	//iterate through rows
	for rows.Next() {
		//create a slice of interface{} to hold values
		values := make([]interface{}, len(columns))
		valuesPtr := make([]interface{}, len(columns))

		//setup pointers
		for i := range values {
			valuesPtr[i] = &values[i]
		}

		//scan row into the pointers
		if err := rows.Scan(valuesPtr...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %v", err)
		}

		//create a map for this row
		rowMap := make(map[string]interface{}, len(columns))

		//convert any []byte to a string for storing
		for i, colName := range columns {
			val := values[i]
			if b, ok := val.([]byte); ok {
				rowMap[colName] = string(b)
			} else {
				rowMap[colName] = val
			}
		}
		result.Rows = append(result.Rows, rowMap)
	}
	//Check for error after iterating through rows
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during the row iteration, %v", err)
	}
	return result, nil
}

// RunQuery executes query on client and materializes the full result set.
// Execution errors are wrapped as ErrQueryFailed with the driver message kept.
func RunQuery(client DatabaseClient, query string) (*Result, error) {
	rows, err := client.ExecuteQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	result, err := FetchResult(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return result, nil
}
