package utils_test

import (
	"strings"
	"testing"

	"wasset-admin/src/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestEncodeCSV(t *testing.T) {
	t.Run("empty input yields empty string", func(t *testing.T) {
		assert.Equal(t, "", utils.EncodeCSV(nil))
		assert.Equal(t, "", utils.EncodeCSV([]map[string]interface{}{}))
	})

	t.Run("headers come from the first record, sorted", func(t *testing.T) {
		records := []map[string]interface{}{
			{"title": "هاتف", "amount": 150.5, "status": "completed"},
		}

		out := utils.EncodeCSV(records)
		lines := strings.Split(out, "\n")

		assert.Equal(t, "amount,status,title", lines[0])
		assert.Equal(t, `150.5,"completed","هاتف"`, lines[1])
	})

	t.Run("strings are quoted, nil renders empty", func(t *testing.T) {
		records := []map[string]interface{}{
			{"a": "x", "b": nil, "c": 3},
			{"a": "y", "b": "z", "c": nil},
		}

		out := utils.EncodeCSV(records)
		lines := strings.Split(out, "\n")

		assert.Len(t, lines, 3)
		assert.Equal(t, `"x",,3`, lines[1])
		assert.Equal(t, `"y","z",`, lines[2])
	})

	t.Run("every row has the header arity", func(t *testing.T) {
		records := []map[string]interface{}{
			{"a": 1, "b": 2},
			{"a": 3}, // missing b
		}

		out := utils.EncodeCSV(records)
		for _, line := range strings.Split(out, "\n") {
			assert.Equal(t, 1, strings.Count(line, ","))
		}
	})
}
