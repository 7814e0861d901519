package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalysisRequest_FlagDefaults(t *testing.T) {
	req := &AnalysisRequest{Code: "x = 1", Language: "python"}

	flags := req.Flags()
	assert.True(t, flags.CheckSyntax)
	assert.True(t, flags.CheckComplexity)
	assert.True(t, flags.SuggestImprovements)
	assert.False(t, flags.FormatCode)
}

func TestAnalysisRequest_FlagOverrides(t *testing.T) {
	tr := true
	f := false
	req := &AnalysisRequest{
		Code:            "x = 1",
		Language:        "python",
		CheckSyntax:     &f,
		CheckComplexity: &f,
		FormatCode:      &tr,
	}

	flags := req.Flags()
	assert.False(t, flags.CheckSyntax)
	assert.False(t, flags.CheckComplexity)
	assert.True(t, flags.SuggestImprovements)
	assert.True(t, flags.FormatCode)
}
