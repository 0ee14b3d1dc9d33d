package memory_test

import (
	"testing"

	"parley/pkg/adapters/memory"
	"parley/pkg/ports"
)

func TestMemoryStore_Contract(t *testing.T) {
	ports.RunSessionStoreContract(t, memory.NewStore())
}
