package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanPrintsStepsWithoutRunning(t *testing.T) {
	fake := stubCLI(t, t.TempDir(), false)

	var out bytes.Buffer
	require.NoError(t, execute([]string{"provision", "plan"}, &out, &out))

	text := out.String()
	assert.Empty(t, fake.calls)
	assert.Contains(t, text, "Provisioning plan (6 steps, config: built-in)")
	assert.Contains(t, text, "[1/6] Upgrading pip, setuptools, and wheel")
	assert.Contains(t, text, "      pip install --upgrade pip setuptools wheel\n")
	assert.Contains(t, text, "      pip install ray[default]==2.31.0\n")
	assert.Contains(t, text, "Verify: python --version; pip list (filter: streamlit, ray, yfinance, pandas, numpy, plotly, requests)")
	assert.Contains(t, text, "Launch: streamlit run app.py")
}

func TestPlanRejectsArgs(t *testing.T) {
	stubCLI(t, t.TempDir(), false)
	var out bytes.Buffer
	assert.Error(t, execute([]string{"provision", "plan", "now"}, &out, &out))
}
