package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// Dumps the raw session records of a hotel-admin store, even while the CLI holds it.
func main() {
	dbPath := flag.String("db", ".hotel-admin", "Path to the session store")
	prefix := flag.String("prefix", "session:", "Prefix to scan")
	full := flag.Bool("full", false, "Show whole tokens instead of their first characters")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Version", "Bytes", "Record"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			err := item.Value(func(v []byte) error {
				table.Append([]string{
					string(item.Key()),
					fmt.Sprint(item.Version()),
					fmt.Sprint(len(v)),
					render(v, *full),
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

// render prints a record as compact JSON, keeping unreadable ones visible.
func render(v []byte, full bool) string {
	var st structpb.Struct
	if err := proto.Unmarshal(v, &st); err != nil {
		return fmt.Sprintf("<unreadable: %v>", err)
	}
	if token := st.GetFields()["token"].GetStringValue(); !full && len(token) > 12 {
		st.Fields["token"] = structpb.NewStringValue(token[:12] + "...")
	}
	return protojson.MarshalOptions{}.Format(&st)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil {
		// A store left dirty by a killed CLI needs one writable open to truncate its log
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			_ = db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
