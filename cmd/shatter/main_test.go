package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagSizeValue(t *testing.T) {
	var fs flagSizeValue
	assert.NoError(t, fs.Set("1024, 768"))
	assert.Equal(t, flagSizeValue{1024, 768}, fs)
	assert.Equal(t, "1024,768", fs.String())
	assert.Error(t, fs.Set("1024"))
	assert.Error(t, fs.Set("a,b"))
	assert.Error(t, fs.Set("0,10"))
}

func TestFlagResizeValue(t *testing.T) {
	var fr flagResizeValue
	assert.NoError(t, fr.Set("100:640,480"))
	assert.NoError(t, fr.Set("250:800,800"))
	assert.Len(t, fr, 2)
	assert.Equal(t, resizeEvent{Frame: 250, Size: flagSizeValue{800, 800}}, fr[1])
	assert.Equal(t, "100:640,480 250:800,800", fr.String())
	assert.Error(t, fr.Set("640,480"))
	assert.Error(t, fr.Set("x:640,480"))
}
