package controllerImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormOptions(t *testing.T) {
	ref := []string{"畑A", "畑B", "畑C"}

	assert.Equal(t, ref, formOptions(ref, nil))
	assert.Equal(t, []string{"畑C", "畑A", "畑B"}, formOptions(ref, []string{"畑C", "畑A"}))
	assert.Equal(t, []string{"畑Z", "畑A", "畑B", "畑C"}, formOptions(ref, []string{"畑Z", "畑A"}))
	assert.Equal(t, []string{"畑Z", "読み込み失敗"}, formOptions([]string{"読み込み失敗"}, []string{"畑Z"}))
}
