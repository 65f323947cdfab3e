package model_test

import (
	"skyline/internal/domains/room/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestType_Valid(t *testing.T) {
	for _, valid := range []model.Type{model.TypeSingle, model.TypeDouble, model.TypeSuite, model.TypeDeluxe, model.TypePresidential} {
		assert.True(t, valid.Valid(), valid)
	}

	assert.False(t, model.Type("Penthouse").Valid())
	assert.False(t, model.Type("suite").Valid())
	assert.False(t, model.Type("").Valid())
}
