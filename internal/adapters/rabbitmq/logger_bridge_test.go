package rabbitmq

import (
	"testing"

	"property-search-service/internal/core/port"

	"github.com/stretchr/testify/assert"
)

func TestKVToFields(t *testing.T) {
	tests := []struct {
		name     string
		kv       []interface{}
		expected port.Fields
	}{
		{name: "empty", kv: nil, expected: nil},
		{name: "pairs", kv: []interface{}{"exchange", "property_events", "attempt", 2}, expected: port.Fields{"exchange": "property_events", "attempt": 2}},
		{name: "non-string key", kv: []interface{}{42, "v"}, expected: port.Fields{"42": "v"}},
		{name: "dangling value", kv: []interface{}{"a", 1, "orphan"}, expected: port.Fields{"a": 1, "!BADKEY": "orphan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, kvToFields(tt.kv))
		})
	}
}
