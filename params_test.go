package cm256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexTagHelpers(t *testing.T) {
	params := Params{BlockBytes: 1, OriginalCount: 10, RecoveryCount: 5}
	assert.Equal(t, byte(0), OriginalIndexTag(params, 0))
	assert.Equal(t, byte(9), OriginalIndexTag(params, 9))
	assert.Equal(t, byte(10), RecoveryIndexTag(params, 0))
	assert.Equal(t, byte(14), RecoveryIndexTag(params, 4))
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, Params{BlockBytes: 1, OriginalCount: 1, RecoveryCount: 1}.validate())
	assert.NoError(t, Params{BlockBytes: 1400, OriginalCount: 255, RecoveryCount: 1}.validate())
	assert.Error(t, Params{BlockBytes: 0, OriginalCount: 1, RecoveryCount: 1}.validate())
	assert.Error(t, Params{BlockBytes: 1, OriginalCount: 0, RecoveryCount: 1}.validate())
	assert.Error(t, Params{BlockBytes: 1, OriginalCount: 200, RecoveryCount: 57}.validate())
	assert.Error(t, Params{BlockBytes: 1, OriginalCount: 1, RecoveryCount: 256}.validate())
}
