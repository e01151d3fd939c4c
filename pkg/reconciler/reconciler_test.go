package reconciler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/checkmate-dev/checkmate/pkg/checktypes"
)

func TestMergeDownvote_NilExisting(t *testing.T) {
	got := mergeDownvote(nil)
	assert.True(t, got.Downvoted)
	assert.Equal(t, "", got.En)
}

func TestMergeDownvote_PreservesOtherFields(t *testing.T) {
	existing := &checktypes.ShortformResponse{En: "Mostly false.", Cn: "大致错误。", ID: "abc"}
	got := mergeDownvote(existing)
	assert.True(t, got.Downvoted)
	assert.Equal(t, "Mostly false.", got.En)
	assert.Equal(t, "大致错误。", got.Cn)
	assert.Equal(t, "abc", got.ID)
}
