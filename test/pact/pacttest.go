//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "orders-api"
	ConsumerName = "order-portal"

	StateOrdersBaseline = "orders baseline"
	StateOrderExists    = "order 6f1c2b1e exists"
	StateOrderMissing   = "no order 0b5e9d3a"
)

const (
	ExistingOrderID = "6f1c2b1e-4a7d-4c55-9b1e-2f3a8c9d0e11"
	CreatedOrderID  = "a3d4e5f6-0718-4293-a4b5-c6d7e8f90a1b"
	MissingOrderID  = "0b5e9d3a-1c2f-4e6a-8b7d-9f0a1b2c3d4e"
	CustomerID      = "c0ffee00-1234-4abc-8def-0123456789ab"
	ProductID       = "deadbeef-5678-4abc-9def-abcdefabcdef"
	ExampleDate     = "2024-06-12T10:00:00Z"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the order portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderPayload provides stable test data for order interactions.
func ExampleOrderPayload(id string) map[string]any {
	return map[string]any{
		"orderID":    id,
		"customerID": CustomerID,
		"orderItems": []map[string]any{
			{"productID": ProductID, "quantity": 2, "totalPrice": 49.9},
		},
		"orderDate": ExampleDate,
		"status":    "Pending",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
