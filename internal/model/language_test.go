package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguage_Valid(t *testing.T) {
	for _, lang := range Languages {
		assert.True(t, lang.Valid(), "lang: %s", lang)
	}
	assert.False(t, Language("cobol").Valid())
	assert.False(t, Language("").Valid())
}

func TestNaturalLanguage_Valid(t *testing.T) {
	for _, lang := range NaturalLanguages {
		assert.True(t, lang.Valid(), "lang: %s", lang)
	}
	assert.False(t, NaturalLanguage("klingon").Valid())
}

func TestDefaultTestFramework(t *testing.T) {
	assert.Equal(t, "testing", DefaultTestFramework(LangGo))
	assert.Equal(t, "pytest", DefaultTestFramework(LangPython))
	assert.Equal(t, "unittest", DefaultTestFramework(Language("cobol")))
}

func TestTestFrameworks_CoverAllLanguages(t *testing.T) {
	for _, lang := range Languages {
		assert.NotEmpty(t, TestFrameworks[lang], "lang: %s", lang)
	}
}
