package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggerStampsServiceField(t *testing.T) {
	InitLogger("marketplace-test")

	var buf bytes.Buffer
	Logger.SetOutput(&buf)
	Logger.Info("inventory reconciled")

	assert.Contains(t, buf.String(), "service=marketplace-test")
	assert.Contains(t, buf.String(), "inventory reconciled")
}
