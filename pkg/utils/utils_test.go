package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/bakery-go/pkg/utils"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, utils.Min(3, 7))
	assert.Equal(t, -1, utils.Min(4, -1))
	assert.Equal(t, 7, utils.Max(3, 7))
	assert.Equal(t, 0, utils.Max(0, -20))
}

func TestGenerateRunID_Format(t *testing.T) {
	id := utils.GenerateRunID("Produce")

	assert.Regexp(t, regexp.MustCompile(`^produce-[0-9a-f]{8}$`), id)
}

func TestGenerateRunID_Unique(t *testing.T) {
	assert.NotEqual(t, utils.GenerateRunID("produce"), utils.GenerateRunID("produce"))
}
