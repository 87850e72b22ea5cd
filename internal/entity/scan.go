package entity

import "time"

// ScanResult is a value reported by the QR scanner.
type ScanResult struct {
	ID        string    `json:"id"`
	Data      string    `json:"data"`
	ScannedAt time.Time `json:"scanned_at"`
}
