package transactions

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"csv", FormatCSV},
		{"JSON", FormatJSON},
		{" xlsx ", FormatXLSX},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, "ParseFormat(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"yaml"`)
}

func TestWrite_Dispatch(t *testing.T) {
	var csvBuf, jsonBuf bytes.Buffer
	require.NoError(t, Write(&csvBuf, FormatCSV, sample()))
	require.NoError(t, Write(&jsonBuf, FormatJSON, sample()))

	assert.True(t, strings.HasPrefix(csvBuf.String(), Header+"\n"))
	assert.True(t, strings.HasPrefix(jsonBuf.String(), "["))

	var xlsxBuf bytes.Buffer
	require.NoError(t, Write(&xlsxBuf, FormatXLSX, sample()))
	// XLSX is a zip archive.
	assert.True(t, bytes.HasPrefix(xlsxBuf.Bytes(), []byte("PK")))

	assert.Error(t, Write(&bytes.Buffer{}, Format("pdf"), sample()))
}
