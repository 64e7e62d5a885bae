package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssets(t *testing.T) {
	assets, err := parseAssets("VUSA:0.1:0.3, CNDX:0.15:0.4")

	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "VUSA", assets[0].Name)
	assert.Equal(t, 0.1, assets[0].ExpectedReturn)
	assert.Equal(t, 0.3, assets[0].Risk)
	assert.Equal(t, "CNDX", assets[1].Name)
}

func TestParseAssets_Invalid(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "missing risk", spec: "VUSA:0.1"},
		{name: "non-numeric return", spec: "VUSA:ten:0.3"},
		{name: "non-numeric risk", spec: "VUSA:0.1:high"},
		{name: "empty entry", spec: "VUSA:0.1:0.3,,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAssets(tt.spec)
			assert.Error(t, err)
		})
	}
}
