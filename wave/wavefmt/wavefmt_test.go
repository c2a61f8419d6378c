package wavefmt

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestOpenUnsupported(t *testing.T) {
	wf, err := Open("trace.vcd")
	require.Error(t, err)
	assert.Nil(t, wf)
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Contains(t, err.Error(), "trace.vcd")
}

func TestMalformedError(t *testing.T) {
	err := MalformedError(12, "short read")
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.False(t, errors.Is(err, ErrUnsupported))
	assert.Equal(t, "record 12: short read: malformed record", err.Error())
}

func TestFieldTypeString(t *testing.T) {
	assert.Equal(t, "Timestamp", FieldTimestamp.String())
	assert.Equal(t, "Digital", FieldDigital.String())
	assert.Equal(t, "DigiBus", FieldDigiBus.String())
	assert.Equal(t, "Analog", FieldAnalog.String())
	assert.Equal(t, "FieldType(9)", FieldType(9).String())
}
