package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequiresAnAnalysis(t *testing.T) {
	c := analyzeCmd()
	c.SetArgs([]string{"--config", "run.yaml"})
	err := c.Execute()
	assert.ErrorContains(t, err, "pass --clusters and/or --components")
}

func TestPlotRequiresASlice(t *testing.T) {
	c := plotCmd()
	c.SetArgs([]string{"--config", "run.yaml"})
	err := c.Execute()
	assert.ErrorContains(t, err, "pass --species and/or --triplet")
}
