package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/MinjaeKwon/DataAccessTool/database"
	"github.com/MinjaeKwon/DataAccessTool/dataset"
)

//validate the flag combination before touching any database

func validateInput(list, tables bool, db, query, table string) error {
	if list {
		if tables || db != "" || query != "" || table != "" {
			return fmt.Errorf("-list cannot be combined with other actions")
		}
		return nil
	}

	if db == "" {
		return fmt.Errorf("a database must be specified with -db")
	}

	if tables {
		if query != "" || table != "" {
			return fmt.Errorf("-tables cannot be combined with -query or -table")
		}
		return nil
	}

	//exactly one of query or table selects what to read
	if query == "" && table == "" {
		return fmt.Errorf("either -query or -table must be specified")
	}
	if query != "" && table != "" {
		return fmt.Errorf("-query and -table cannot be combined")
	}
	return nil
}

// printResult writes the rows as aligned columns
func printResult(w io.Writer, result *database.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for i, col := range result.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, col)
	}
	fmt.Fprintln(tw)

	for _, row := range result.Rows {
		for i, val := range result.Values(row) {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			if val == nil {
				fmt.Fprint(tw, "NULL")
			} else {
				fmt.Fprintf(tw, "%v", val)
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
	fmt.Fprintf(w, "(%d rows)\n", result.Len())
}

func main() {

	//defining CLI for user input
	configPath := flag.String("config", "", "path to the config file (defaults to DB_CONFIG_FILE or db_config.json)")
	list := flag.Bool("list", false, "list the configured databases")
	dbName := flag.String("db", "", "database profile name")
	query := flag.String("query", "", "SQL query to execute")
	table := flag.String("table", "", "table to read")
	schema := flag.String("schema", "", "schema for -table or -tables")
	limit := flag.Int("limit", 0, "maximum rows to read with -table")
	tables := flag.Bool("tables", false, "list the tables of the database")

	//parsing the user input
	flag.Parse()

	//validate input
	if err := validateInput(*list, *tables, *dbName, *query, *table); err != nil {
		fmt.Println("Error:", err)
		flag.Usage()
		os.Exit(1)
	}

	accessor := dataset.New()
	if *configPath != "" {
		accessor = dataset.NewWithConfig(*configPath)
	}

	if *list {
		if err := accessor.ListDatabases(os.Stdout); err != nil {
			log.Fatalf("Error listing databases, %v", err)
		}
		return
	}

	var result *database.Result
	var err error

	switch {
	case *tables:
		result, err = accessor.ListTables(*dbName, *schema)
	case *query != "":
		result, err = accessor.GetDataset(*dbName, dataset.QueryOptions{Query: *query})
	default:
		result, err = accessor.GetDataset(*dbName, dataset.QueryOptions{Table: *table, Schema: *schema, Limit: *limit})
	}
	if err != nil {
		log.Fatalf("Error querying %q, %v", *dbName, err)
	}

	printResult(os.Stdout, result)
}
