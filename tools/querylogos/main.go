// querylogos dumps the logo cache metadata so stale or missing assets can be
// spotted without attaching a debugger to the daemon.
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"scoreboardd/internal/config"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load error:", err)
		os.Exit(1)
	}
	if _, err := os.Stat(cfg.DBPath); err != nil {
		fmt.Fprintf(os.Stderr, "logo db not found at %s: %v\n", cfg.DBPath, err)
		os.Exit(1)
	}
	db, err := sql.Open("sqlite", cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "open db error:", err)
		os.Exit(1)
	}
	defer db.Close()

	rows, err := db.Query("SELECT key, url, length(png), fetched_at FROM logos ORDER BY fetched_at DESC")
	if err != nil {
		fmt.Fprintln(os.Stderr, "query error:", err)
		os.Exit(1)
	}
	defer rows.Close()

	out := make([]map[string]any, 0)
	for rows.Next() {
		var key, url, fetchedAt string
		var size int64
		if err := rows.Scan(&key, &url, &size, &fetchedAt); err != nil {
			fmt.Fprintln(os.Stderr, "scan error:", err)
			continue
		}
		out = append(out, map[string]any{"key": key, "url": url, "bytes": size, "fetched_at": fetchedAt})
	}
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
