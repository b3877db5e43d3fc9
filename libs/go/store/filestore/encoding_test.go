package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeProfileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"home", "home"},
		{"my budget", "my%20budget"},
		{"v1.2", "v1%2e2"},
		{"..", "%2e%2e"},
		{"a/b", "a%2Fb"},
		{"(joint)!", "(joint)!"},
		{"épargne", "%C3%A9pargne"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeProfileName(tt.name)
			assert.Equal(t, tt.want, encoded)

			decoded, err := DecodeProfileName(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.name, decoded)
		})
	}
}

func TestDecodeProfileName_Invalid(t *testing.T) {
	_, err := DecodeProfileName("bad%zz")
	assert.Error(t, err)
}
