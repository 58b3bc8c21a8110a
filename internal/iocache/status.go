package iocache

import (
	"fmt"

	"github.com/huangsam/gazer/schema"
)

// PrintCacheStatus prints cache status information.
func PrintCacheStatus(name string, status schema.CacheStatus) {
	fmt.Printf("%s Backend: %s\n", name, status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Last Entry: %s\n", status.LastEntryTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
}
